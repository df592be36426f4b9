package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario. La clave de negocio es Code
// (normalizado a mayúsculas); pertenece siempre a una SubCategory.
type Product struct {
	Code          string // clave de negocio, única, en mayúsculas
	Designation   string
	Stock         int             // cantidad en stock, >= 0
	UnitPrice     decimal.Decimal // precio unitario, > 0
	ImageURL      string          // opcional, URL en el CDN
	SubCategoryID string
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NormalizeCode aplica la normalización de códigos de producto: trim + mayúsculas.
// Se aplica tanto en creación como en actualización.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
