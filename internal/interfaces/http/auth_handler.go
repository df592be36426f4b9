package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/quincaillerie-api/internal/application/auth"
	"github.com/jhoicas/quincaillerie-api/internal/application/dto"
)

// AuthHandler maneja login, perfil y cambio de password.
type AuthHandler struct {
	uc   *auth.AuthUseCase
	errs *ErrorWriter
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase, errs *ErrorWriter) *AuthHandler {
	return &AuthHandler{uc: uc, errs: errs}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.Response
// @Failure      401   {object}  dto.Response
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	if details := validateStruct(in); details != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FailDetails("validación fallida", details))
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return h.errs.Write(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Profile godoc
// @Summary      Perfil del usuario autenticado
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response
// @Failure      401  {object}  dto.Response
// @Router       /api/auth/profile [get]
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	identity := GetIdentity(c)
	out, err := h.uc.Profile(c.UserContext(), identity.UserID)
	if err != nil {
		return h.errs.Write(c, err)
	}
	return c.JSON(dto.OK(out))
}

// ChangePassword godoc
// @Summary      Cambiar password propio
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChangePasswordRequest  true  "Passwords"
// @Success      200   {object}  dto.Response
// @Failure      400   {object}  dto.Response
// @Router       /api/auth/password [put]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	if details := validateStruct(in); details != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FailDetails("validación fallida", details))
	}
	identity := GetIdentity(c)
	if err := h.uc.ChangePassword(c.UserContext(), identity.UserID, in); err != nil {
		return h.errs.Write(c, err)
	}
	return c.JSON(dto.OKMessage(nil, "password actualizado"))
}
