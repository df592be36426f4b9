package password

import (
	"errors"
	"unicode"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

// Cost de bcrypt fijado en 12: verificación ~100ms en hardware típico.
const hashCost = 12

const (
	// Mínimo en caracteres (runas), no en bytes: un password acentuado de 5
	// caracteres no pasa aunque ocupe más de 6 bytes.
	minRunes = 6
	// bcrypt trunca/rechaza entradas de más de 72 bytes; la política nunca
	// debe aceptar un password que Hash no pueda procesar.
	maxBytes = 72
)

// ErrWeakPassword se retorna cuando el password no cumple el mínimo para ser hasheado.
var ErrWeakPassword = errors.New("el password debe tener al menos 6 caracteres")

// ErrPasswordTooLong se retorna cuando el password excede el límite de bcrypt.
var ErrPasswordTooLong = errors.New("el password no puede superar 72 bytes")

// Hash genera un hash bcrypt (salt aleatorio incluido en el propio hash).
// Falla con ErrWeakPassword si el password tiene menos de 6 caracteres y con
// ErrPasswordTooLong si excede los 72 bytes que bcrypt acepta.
func Hash(password string) (string, error) {
	if utf8.RuneCountInString(password) < minRunes {
		return "", ErrWeakPassword
	}
	if len(password) > maxBytes {
		return "", ErrPasswordTooLong
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify compara password contra un hash bcrypt. Nunca retorna error:
// un hash malformado o un password incorrecto dan false. La comparación
// en tiempo constante la hace bcrypt internamente.
func Verify(password, hash string) bool {
	if password == "" || hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidateStrength evalúa la política de passwords y retorna TODAS las
// reglas violadas, no solo la primera (la UI las muestra completas).
// Política: al menos 6 caracteres, no más de 72 bytes (límite de bcrypt),
// al menos una letra y al menos un dígito.
func ValidateStrength(password string) (bool, []string) {
	var violations []string

	if password == "" {
		return false, []string{"el password es requerido"}
	}
	if utf8.RuneCountInString(password) < minRunes {
		violations = append(violations, "el password debe tener al menos 6 caracteres")
	}
	if len(password) > maxBytes {
		violations = append(violations, "el password no puede superar 72 bytes")
	}

	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter {
		violations = append(violations, "el password debe contener al menos una letra")
	}
	if !hasDigit {
		violations = append(violations, "el password debe contener al menos un dígito")
	}

	return len(violations) == 0, violations
}
