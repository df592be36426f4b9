package entity

import "time"

// Roles válidos para User. Conjunto cerrado: no hay jerarquía entre roles,
// cada endpoint lista explícitamente los roles permitidos.
const (
	RoleManager         = "MANAGER"
	RolePurchaseOfficer = "PURCHASE_OFFICER"
	RolePaymentOfficer  = "PAYMENT_OFFICER"
)

// ValidRoles lista los roles aceptados en creación de usuarios.
var ValidRoles = []string{RoleManager, RolePurchaseOfficer, RolePaymentOfficer}

// IsValidRole verifica pertenencia exacta al conjunto de roles.
func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}

// User representa un usuario del sistema. Nunca se borra físicamente:
// Active=false lo desactiva y bloquea su autenticación de inmediato.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // MANAGER, PURCHASE_OFFICER, PAYMENT_OFFICER
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
