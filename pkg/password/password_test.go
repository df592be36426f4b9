package password_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/quincaillerie-api/pkg/password"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("Secreto123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "Secreto123", hash, "el hash nunca debe ser el password en claro")

	assert.True(t, password.Verify("Secreto123", hash))
	assert.False(t, password.Verify("otro-password", hash))
	assert.False(t, password.Verify("", hash))
}

func TestHash_PasswordCorto_RetornaError(t *testing.T) {
	_, err := password.Hash("ab1")
	assert.ErrorIs(t, err, password.ErrWeakPassword)
}

// bcrypt rechaza entradas de más de 72 bytes; Hash debe devolver un error de
// validación propio en vez de dejar pasar el de la librería.
func TestHash_PasswordMuyLargo_RetornaError(t *testing.T) {
	_, err := password.Hash(strings.Repeat("a1", 50))
	assert.ErrorIs(t, err, password.ErrPasswordTooLong)
}

// La política y Hash deben coincidir: nada que ValidateStrength acepte puede
// hacer fallar a Hash.
func TestValidateStrength_CoherenteConHash(t *testing.T) {
	pwd := strings.Repeat("a1", 50) // 100 bytes: dentro de la vieja política, fuera del límite de bcrypt
	valid, violations := password.ValidateStrength(pwd)
	assert.False(t, valid)
	assert.Contains(t, violations, "el password no puede superar 72 bytes")

	limite := strings.Repeat("a1", 36) // exactamente 72 bytes
	valid, _ = password.ValidateStrength(limite)
	require.True(t, valid)
	hash, err := password.Hash(limite)
	require.NoError(t, err)
	assert.True(t, password.Verify(limite, hash))
}

func TestVerify_HashCorrupto_NoVerifica(t *testing.T) {
	assert.False(t, password.Verify("Secreto123", "no-es-un-hash-bcrypt"))
}

// ValidateStrength debe reportar TODAS las reglas violadas, no solo la primera.
func TestValidateStrength(t *testing.T) {
	cases := []struct {
		nombre     string
		password   string
		valido     bool
		violations int
	}{
		{"válido", "abc123", true, 0},
		{"corto y sin dígito", "abc", false, 2},
		{"muy corto pero con letra y dígito", "a1", false, 1},
		{"sin dígito", "abcdef", false, 1},
		{"sin letra", "123456", false, 1},
		{"corto, sin letra y sin dígito", "---", false, 3},
		{"5 caracteres multibyte no pasan por ocupar más bytes", "ññ12á", false, 1},
		{"6 caracteres multibyte válidos", "ññ123á", true, 0},
		{"vacío", "", false, 1},
	}
	for _, tc := range cases {
		t.Run(tc.nombre, func(t *testing.T) {
			valid, violations := password.ValidateStrength(tc.password)
			assert.Equal(t, tc.valido, valid)
			assert.Len(t, violations, tc.violations,
				"deben reportarse todas las reglas violadas: %v", violations)
		})
	}
}
