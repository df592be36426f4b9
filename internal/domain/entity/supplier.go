package entity

import "time"

// Supplier representa un proveedor de la quincallería.
type Supplier struct {
	ID        string
	Name      string
	Phone     string
	Address   string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
