package entity

import "time"

// Category representa una categoría de productos. Nombre único global.
// Archivarla archiva en cascada sus sub-categorías y los productos de éstas.
type Category struct {
	ID          string
	Name        string
	Description string // opcional
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SubCategory representa una sub-categoría, siempre colgada de una Category.
// El nombre es único dentro de su categoría padre.
type SubCategory struct {
	ID          string
	CategoryID  string
	Name        string
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
