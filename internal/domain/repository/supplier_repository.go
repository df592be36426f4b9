package repository

import (
	"context"

	"github.com/jhoicas/quincaillerie-api/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetActiveByID(ctx context.Context, id string) (*entity.Supplier, error)
	Update(ctx context.Context, supplier *entity.Supplier) error
	ListActive(ctx context.Context) ([]*entity.Supplier, error)
	Archive(ctx context.Context, id string) error
}
