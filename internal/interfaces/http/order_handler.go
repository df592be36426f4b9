package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/quincaillerie-api/internal/application/dto"
	"github.com/jhoicas/quincaillerie-api/internal/application/order"
)

// OrderHandler órdenes de compra a proveedores.
type OrderHandler struct {
	uc   *order.OrderUseCase
	errs *ErrorWriter
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *order.OrderUseCase, errs *ErrorWriter) *OrderHandler {
	return &OrderHandler{uc: uc, errs: errs}
}

// Create godoc
// @Summary      Crear orden de compra
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Proveedor y líneas"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.Response
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
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
// @Summary      Listar órdenes de compra
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Filtrar por estado (ENCOURS, LIVRE, LIVRE_PAYE, ANNULE)"
// @Success      200  {object}  dto.Response
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Query("status"))
	if err != nil {
		return h.errs.Write(c, err)
	}
	return c.JSON(dto.OKList(out, len(out)))
}

// GetByID godoc
// @Summary      Obtener orden con sus líneas
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.errs.Write(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Cancel godoc
// @Summary      Anular orden de compra
// @Description  Solo una orden ENCOURS puede anularse; cualquier otro estado da 409.
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Failure      409  {object}  dto.Response
// @Router       /api/orders/{id}/cancel [post]
func (h *OrderHandler) Cancel(c *fiber.Ctx) error {
	if err := h.uc.Cancel(c.UserContext(), c.Params("id")); err != nil {
		return h.errs.Write(c, err)
	}
	return c.JSON(dto.OKMessage(nil, "orden anulada"))
}
