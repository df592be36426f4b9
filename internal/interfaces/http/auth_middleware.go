package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/quincaillerie-api/internal/application/auth"
	"github.com/jhoicas/quincaillerie-api/internal/application/dto"
	"github.com/jhoicas/quincaillerie-api/pkg/jwt"
)

// Local key para la identidad resuelta en Fiber.
const localIdentity = "identity"

// AuthMiddleware valida el Bearer Token y resuelve la identidad VIVA del
// usuario (token verificado + usuario existente y activo en DB). La identidad
// queda en c.Locals para los handlers; un usuario desactivado recibe 401
// aunque su token siga vigente.
func AuthMiddleware(identities *auth.IdentityService, errs *ErrorWriter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := jwt.ExtractFromHeader(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Authorization header requerido: Bearer <token>"))
		}
		identity, err := identities.Resolve(c.UserContext(), token)
		if err != nil {
			return errs.Write(c, err)
		}
		c.Locals(localIdentity, identity)
		return c.Next()
	}
}

// RequirePermission autoriza la operación contra la tabla central de
// permisos. Se encadena DESPUÉS de AuthMiddleware.
func RequirePermission(op auth.Operation, errs *ErrorWriter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := auth.Authorize(GetIdentity(c), op); err != nil {
			return errs.Write(c, err)
		}
		return c.Next()
	}
}

// GetIdentity devuelve la identidad del contexto (después del middleware de
// auth); nil si la ruta no está protegida.
func GetIdentity(c *fiber.Ctx) *auth.Identity {
	v := c.Locals(localIdentity)
	if v == nil {
		return nil
	}
	identity, _ := v.(*auth.Identity)
	return identity
}
