package repository

import (
	"context"

	"github.com/jhoicas/quincaillerie-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para PurchaseOrder (DIP).
type OrderRepository interface {
	// Create persiste la orden y sus líneas en una sola transacción.
	Create(ctx context.Context, order *entity.PurchaseOrder) error
	// GetByID devuelve la orden con sus líneas; (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.PurchaseOrder, error)
	List(ctx context.Context, status string) ([]*entity.PurchaseOrder, error)
	UpdateStatus(ctx context.Context, id, status string) error
	// CountOpenByProduct cuenta líneas del producto en órdenes con estado
	// abierto (ENCOURS, LIVRE). Precondición de archivado de productos.
	CountOpenByProduct(ctx context.Context, productCode string) (int, error)
	// CountOpenBySupplier cuenta órdenes abiertas del proveedor.
	CountOpenBySupplier(ctx context.Context, supplierID string) (int, error)
}
