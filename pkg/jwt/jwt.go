package jwt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Errores de verificación. Se distinguen porque el cliente recibe mensajes
// distintos: sesión expirada vs token inválido.
var (
	ErrTokenExpired = errors.New("token expirado")
	ErrTokenInvalid = errors.New("token inválido")
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Role viaja en el token pero el middleware siempre re-valida contra la DB.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Role     string `json:"role"` // MANAGER | PURCHASE_OFFICER | PAYMENT_OFFICER
}

// Config parámetros de firma y validación de tokens.
type Config struct {
	Secret   string
	Issuer   string
	Audience string
	ExpHours int // default 24
}

// Generate genera un token JWT HS256 firmado con subject = userID, username y role.
func Generate(cfg Config, userID, username, role string) (string, error) {
	if cfg.Secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	exp := cfg.ExpHours
	if exp <= 0 {
		exp = 24
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Audience:  jwt.ClaimStrings{cfg.Audience},
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(exp) * time.Hour)),
		},
		Username: username,
		Role:     role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// Parse valida firma, expiración, issuer y audience, y devuelve los claims.
// Retorna ErrTokenExpired si el token venció; ErrTokenInvalid para cualquier
// otro problema (firma, estructura, issuer o audience incorrectos).
func Parse(cfg Config, tokenString string) (*Claims, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	},
		jwt.WithIssuer(cfg.Issuer),
		jwt.WithAudience(cfg.Audience),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// ExtractFromHeader extrae el token del header Authorization.
// El header debe ser exactamente dos partes separadas por espacio, la primera
// el literal "Bearer". Cualquier otra forma devuelve ok=false (credencial
// ausente, no un error: el caller decide si la ruta exige auth).
func ExtractFromHeader(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
