package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest alta de orden de compra: proveedor + líneas.
type CreateOrderRequest struct {
	SupplierID string                   `json:"supplier_id" validate:"required"`
	Lines      []CreateOrderLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// CreateOrderLineRequest línea de la orden.
type CreateOrderLineRequest struct {
	ProductCode string          `json:"product_code" validate:"required"`
	Quantity    int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// OrderResponse orden de compra con sus líneas.
type OrderResponse struct {
	ID         string              `json:"id"`
	SupplierID string              `json:"supplier_id"`
	Status     string              `json:"status"`
	Total      decimal.Decimal     `json:"total"`
	OrderDate  time.Time           `json:"order_date"`
	Lines      []OrderLineResponse `json:"lines"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// OrderLineResponse línea de una orden.
type OrderLineResponse struct {
	ID          string          `json:"id"`
	ProductCode string          `json:"product_code"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}
