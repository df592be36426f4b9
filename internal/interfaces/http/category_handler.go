package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/quincaillerie-api/internal/application/catalog"
	"github.com/jhoicas/quincaillerie-api/internal/application/dto"
)

// CategoryHandler CRUD de categorías. El archivado cascada a sub-categorías
// y productos en una sola transacción.
type CategoryHandler struct {
	uc   *catalog.CategoryUseCase
	errs *ErrorWriter
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *catalog.CategoryUseCase, errs *ErrorWriter) *CategoryHandler {
	return &CategoryHandler{uc: uc, errs: errs}
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "Datos de la categoría"
// @Success      201   {object}  dto.Response
// @Failure      409   {object}  dto.Response
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	if details := validateStruct(in); details != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FailDetails("validación fallida", details))
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return h.errs.Write(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// List godoc
// @Summary      Listar categorías activas
// @Tags         categories
// @Produce      json
// @Success      200  {object}  dto.Response
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return h.errs.Write(c, err)
	}
	return c.JSON(dto.OKList(out, len(out)))
}

// GetByID godoc
// @Summary      Obtener categoría con sus sub-categorías activas
// @Tags         categories
// @Produce      json
// @Param        id  path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/categories/{id} [get]
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.errs.Write(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Update godoc
// @Summary      Actualizar categoría
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la categoría"
// @Param        body  body  dto.UpdateCategoryRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	if details := validateStruct(in); details != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FailDetails("validación fallida", details))
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return h.errs.Write(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Archive godoc
// @Summary      Archivar categoría (cascada)
// @Description  Archiva la categoría, sus sub-categorías y los productos de éstas en una transacción.
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Archive(c *fiber.Ctx) error {
	if err := h.uc.Archive(c.UserContext(), c.Params("id")); err != nil {
		return h.errs.Write(c, err)
	}
	return c.JSON(dto.OKMessage(nil, "categoría archivada"))
}
