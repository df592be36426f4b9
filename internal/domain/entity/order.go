package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra (valores de wire y de storage).
// ENCOURS y LIVRE son estados abiertos: un producto referenciado por una
// orden abierta no puede archivarse.
const (
	OrderStatusEnCours   = "ENCOURS"    // en curso
	OrderStatusLivre     = "LIVRE"      // entregada, pago pendiente
	OrderStatusLivrePaye = "LIVRE_PAYE" // entregada y pagada (cerrada)
	OrderStatusAnnule    = "ANNULE"     // anulada (cerrada)
)

// OpenOrderStatuses estados no terminales de una orden.
var OpenOrderStatuses = []string{OrderStatusEnCours, OrderStatusLivre}

// PurchaseOrder representa una orden de compra a un proveedor.
type PurchaseOrder struct {
	ID         string
	SupplierID string
	Status     string
	Total      decimal.Decimal
	OrderDate  time.Time
	Lines      []OrderLine
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// OrderLine línea de una orden: producto, cantidad y precio pactado.
type OrderLine struct {
	ID          string
	OrderID     string
	ProductCode string
	Quantity    int
	UnitPrice   decimal.Decimal
}
