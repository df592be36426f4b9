package jwt_test

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/quincaillerie-api/pkg/jwt"
)

var testCfg = jwt.Config{
	Secret:   "test-secret-key-for-unit-tests",
	Issuer:   "quincaillerie-test",
	Audience: "quincaillerie-test-client",
	ExpHours: 1,
}

const (
	testUserID   = "00000000-0000-0000-0000-000000000001"
	testUsername = "moussa"
)

func TestGenerateAndParse(t *testing.T) {
	tok, err := jwt.Generate(testCfg, testUserID, testUsername, "MANAGER")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := jwt.Parse(testCfg, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, claims.Subject)
	assert.Equal(t, testUsername, claims.Username)
	assert.Equal(t, "MANAGER", claims.Role)
	assert.Equal(t, testCfg.Issuer, claims.Issuer)
}

func TestParse_SecretIncorrecto_TokenInvalido(t *testing.T) {
	tok, err := jwt.Generate(testCfg, testUserID, testUsername, "MANAGER")
	require.NoError(t, err)

	otherCfg := testCfg
	otherCfg.Secret = "otro-secret-completamente-distinto"
	_, err = jwt.Parse(otherCfg, tok)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalid)
}

func TestParse_IssuerIncorrecto_TokenInvalido(t *testing.T) {
	otherCfg := testCfg
	otherCfg.Issuer = "otro-emisor"
	tok, err := jwt.Generate(otherCfg, testUserID, testUsername, "MANAGER")
	require.NoError(t, err)

	_, err = jwt.Parse(testCfg, tok)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalid)
}

func TestParse_AudienceIncorrecta_TokenInvalido(t *testing.T) {
	otherCfg := testCfg
	otherCfg.Audience = "otra-audiencia"
	tok, err := jwt.Generate(otherCfg, testUserID, testUsername, "MANAGER")
	require.NoError(t, err)

	_, err = jwt.Parse(testCfg, tok)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalid)
}

func TestParse_TokenExpirado_ErrorDistinguible(t *testing.T) {
	// Token firmado con el mismo secret pero vencido hace una hora: debe
	// distinguirse de un token inválido.
	now := time.Now()
	claims := jwt.Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			Issuer:    testCfg.Issuer,
			Audience:  gojwt.ClaimStrings{testCfg.Audience},
			Subject:   testUserID,
			IssuedAt:  gojwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: gojwt.NewNumericDate(now.Add(-1 * time.Hour)),
		},
		Username: testUsername,
		Role:     "MANAGER",
	}
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(testCfg.Secret))
	require.NoError(t, err)

	_, err = jwt.Parse(testCfg, tok)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParse_TokenMalformado_TokenInvalido(t *testing.T) {
	_, err := jwt.Parse(testCfg, "token.invalido.aqui")
	assert.ErrorIs(t, err, jwt.ErrTokenInvalid)
}

// El header debe ser exactamente "Bearer <token>": dos partes separadas por
// un espacio, primera parte el literal Bearer.
func TestExtractFromHeader(t *testing.T) {
	cases := []struct {
		nombre string
		header string
		token  string
		ok     bool
	}{
		{"bien formado", "Bearer abc.def.ghi", "abc.def.ghi", true},
		{"header vacío", "", "", false},
		{"sin esquema", "abc.def.ghi", "", false},
		{"esquema en minúsculas", "bearer abc.def.ghi", "", false},
		{"token vacío", "Bearer ", "", false},
		{"tres partes", "Bearer abc def", "", false},
		{"esquema distinto", "Basic abc.def.ghi", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.nombre, func(t *testing.T) {
			token, ok := jwt.ExtractFromHeader(tc.header)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.token, token)
		})
	}
}
