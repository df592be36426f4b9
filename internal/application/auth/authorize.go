package auth

import "github.com/jhoicas/quincaillerie-api/internal/domain"

// RequireRole verifica pertenencia exacta del rol de la identidad al conjunto
// permitido. No hay jerarquía: MANAGER no es superconjunto de los otros roles.
// Puro y síncrono: nunca toca la DB.
func RequireRole(identity *Identity, allowedRoles ...string) error {
	if identity == nil {
		return domain.ErrUnauthorized
	}
	for _, role := range allowedRoles {
		if identity.Role == role {
			return nil
		}
	}
	return domain.ErrForbidden
}

// RequireSelfOrRole permite la operación si la identidad es el propio usuario
// objetivo O si su rol pertenece al conjunto permitido. Para operaciones de
// perfil con override administrativo.
func RequireSelfOrRole(identity *Identity, targetUserID string, allowedRoles ...string) error {
	if identity == nil {
		return domain.ErrUnauthorized
	}
	if identity.UserID == targetUserID {
		return nil
	}
	return RequireRole(identity, allowedRoles...)
}
