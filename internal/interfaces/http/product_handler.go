package http

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/quincaillerie-api/internal/application/catalog"
	"github.com/jhoicas/quincaillerie-api/internal/application/dto"
	"github.com/jhoicas/quincaillerie-api/internal/domain/repository"
)

// maxImageSize límite de la imagen de producto (5 MiB).
const maxImageSize = 5 << 20

// ProductHandler CRUD de productos, stock e imágenes.
type ProductHandler struct {
	uc     *catalog.ProductUseCase
	images *catalog.ImageUseCase
	errs   *ErrorWriter
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *catalog.ProductUseCase, images *catalog.ImageUseCase, errs *ErrorWriter) *ProductHandler {
	return &ProductHandler{uc: uc, images: images, errs: errs}
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.Response
// @Failure      409   {object}  dto.Response
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
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
// @Summary      Listar productos activos
// @Tags         products
// @Produce      json
// @Param        sub_category_id  query  string  false  "Filtrar por sub-categoría"
// @Param        category_id      query  string  false  "Filtrar por categoría"
// @Param        search           query  string  false  "Buscar por código o designación"
// @Success      200  {object}  dto.Response
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	filter := repository.ProductFilter{
		SubCategoryID: c.Query("sub_category_id"),
		CategoryID:    c.Query("category_id"),
		Search:        c.Query("search"),
	}
	out, err := h.uc.List(c.UserContext(), filter)
	if err != nil {
		return h.errs.Write(c, err)
	}
	return c.JSON(dto.OKList(out, len(out)))
}

// GetByCode godoc
// @Summary      Obtener producto por código
// @Tags         products
// @Produce      json
// @Param        code  path  string  true  "Código del producto"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/products/{code} [get]
func (h *ProductHandler) GetByCode(c *fiber.Ctx) error {
	out, err := h.uc.GetByCode(c.UserContext(), c.Params("code"))
	if err != nil {
		return h.errs.Write(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        code  path  string  true  "Código del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/products/{code} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	if details := validateStruct(in); details != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FailDetails("validación fallida", details))
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("code"), in)
	if err != nil {
		return h.errs.Write(c, err)
	}
	return c.JSON(dto.OK(out))
}

// UpdateStock godoc
// @Summary      Ajustar stock del producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        code  path  string  true  "Código del producto"
// @Param        body  body  dto.UpdateStockRequest  true  "Nuevo stock"
// @Success      200   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/products/{code}/stock [patch]
func (h *ProductHandler) UpdateStock(c *fiber.Ctx) error {
	var in dto.UpdateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	if details := validateStruct(in); details != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FailDetails("validación fallida", details))
	}
	out, err := h.uc.UpdateStock(c.UserContext(), c.Params("code"), in.Stock)
	if err != nil {
		return h.errs.Write(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Archive godoc
// @Summary      Archivar producto
// @Description  Rechazado con 409 si el producto figura en órdenes de compra abiertas (ENCOURS, LIVRE).
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        code  path  string  true  "Código del producto"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Failure      409  {object}  dto.Response
// @Router       /api/products/{code} [delete]
func (h *ProductHandler) Archive(c *fiber.Ctx) error {
	if err := h.uc.Archive(c.UserContext(), c.Params("code")); err != nil {
		return h.errs.Write(c, err)
	}
	return c.JSON(dto.OKMessage(nil, "producto archivado"))
}

// UploadImage godoc
// @Summary      Subir imagen del producto
// @Tags         products
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        code   path      string  true  "Código del producto"
// @Param        image  formData  file    true  "Imagen"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      404    {object}  dto.Response
// @Router       /api/products/{code}/image [post]
func (h *ProductHandler) UploadImage(c *fiber.Ctx) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("campo 'image' requerido (multipart/form-data)"))
	}
	if fh.Size > maxImageSize {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("la imagen supera el límite de 5 MiB"))
	}
	f, err := fh.Open()
	if err != nil {
		return h.errs.Write(c, err)
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, maxImageSize+1))
	if err != nil {
		return h.errs.Write(c, err)
	}
	out, err := h.images.Upload(c.UserContext(), c.Params("code"), data)
	if err != nil {
		return h.errs.Write(c, err)
	}
	return c.JSON(dto.OK(out))
}

// GetImage godoc
// @Summary      Consultar imagen del producto
// @Tags         products
// @Produce      json
// @Param        code  path  string  true  "Código del producto"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/products/{code}/image [get]
func (h *ProductHandler) GetImage(c *fiber.Ctx) error {
	out, err := h.images.Info(c.UserContext(), c.Params("code"))
	if err != nil {
		return h.errs.Write(c, err)
	}
	return c.JSON(dto.OK(out))
}

// DeleteImage godoc
// @Summary      Eliminar imagen del producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        code  path  string  true  "Código del producto"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/products/{code}/image [delete]
func (h *ProductHandler) DeleteImage(c *fiber.Ctx) error {
	out, err := h.images.Delete(c.UserContext(), c.Params("code"))
	if err != nil {
		return h.errs.Write(c, err)
	}
	return c.JSON(dto.OK(out))
}
