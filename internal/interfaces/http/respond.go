package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/quincaillerie-api/internal/application/dto"
	"github.com/jhoicas/quincaillerie-api/internal/domain"
	"github.com/jhoicas/quincaillerie-api/pkg/jwt"
	"github.com/jhoicas/quincaillerie-api/pkg/logger"
)

// ErrorWriter traduce errores de dominio al envelope HTTP estable
// {success:false, error, details?}. Los errores no clasificados se loguean y
// se responden como 500 genérico: el detalle interno nunca viaja al cliente
// en producción.
type ErrorWriter struct {
	log  *logger.Logger
	prod bool
}

// NewErrorWriter construye el traductor de errores.
func NewErrorWriter(log *logger.Logger, prod bool) *ErrorWriter {
	return &ErrorWriter{log: log, prod: prod}
}

// Write mapea el error a su estatus HTTP y escribe el envelope de error.
func (w *ErrorWriter) Write(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(err.Error()))
	case errors.Is(err, jwt.ErrTokenExpired):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("token expirado"))
	case errors.Is(err, jwt.ErrTokenInvalid):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("token inválido"))
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("no autenticado"))
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.Fail("acceso denegado"))
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("recurso no encontrado"))
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.Fail("el recurso ya existe"))
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.Fail(err.Error()))
	default:
		w.log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
		msg := "error interno del servidor"
		if !w.prod {
			msg = err.Error()
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail(msg))
	}
}
