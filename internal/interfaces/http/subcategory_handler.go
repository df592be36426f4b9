package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/quincaillerie-api/internal/application/catalog"
	"github.com/jhoicas/quincaillerie-api/internal/application/dto"
)

// SubCategoryHandler CRUD de sub-categorías.
type SubCategoryHandler struct {
	uc   *catalog.SubCategoryUseCase
	errs *ErrorWriter
}

// NewSubCategoryHandler construye el handler.
func NewSubCategoryHandler(uc *catalog.SubCategoryUseCase, errs *ErrorWriter) *SubCategoryHandler {
	return &SubCategoryHandler{uc: uc, errs: errs}
}

// Create godoc
// @Summary      Crear sub-categoría
// @Tags         subcategories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSubCategoryRequest  true  "Datos de la sub-categoría"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.Response
// @Router       /api/subcategories [post]
func (h *SubCategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSubCategoryRequest
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
// @Summary      Listar sub-categorías activas
// @Tags         subcategories
// @Produce      json
// @Param        category_id  query  string  false  "Filtrar por categoría"
// @Success      200  {object}  dto.Response
// @Router       /api/subcategories [get]
func (h *SubCategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Query("category_id"))
	if err != nil {
		return h.errs.Write(c, err)
	}
	return c.JSON(dto.OKList(out, len(out)))
}

// GetByID godoc
// @Summary      Obtener sub-categoría
// @Tags         subcategories
// @Produce      json
// @Param        id  path  string  true  "ID de la sub-categoría"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/subcategories/{id} [get]
func (h *SubCategoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.errs.Write(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Update godoc
// @Summary      Actualizar sub-categoría
// @Tags         subcategories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la sub-categoría"
// @Param        body  body  dto.UpdateSubCategoryRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/subcategories/{id} [put]
func (h *SubCategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSubCategoryRequest
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
// @Summary      Archivar sub-categoría (cascada a productos)
// @Tags         subcategories
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la sub-categoría"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/subcategories/{id} [delete]
func (h *SubCategoryHandler) Archive(c *fiber.Ctx) error {
	if err := h.uc.Archive(c.UserContext(), c.Params("id")); err != nil {
		return h.errs.Write(c, err)
	}
	return c.JSON(dto.OKMessage(nil, "sub-categoría archivada"))
}
