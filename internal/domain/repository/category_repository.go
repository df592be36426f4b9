package repository

import (
	"context"

	"github.com/jhoicas/quincaillerie-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	// GetActiveByID devuelve (nil, nil) si la categoría no existe o está archivada.
	GetActiveByID(ctx context.Context, id string) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	ListActive(ctx context.Context) ([]*entity.Category, error)
	// Archive marca la categoría como inactiva (sin cascada; la cascada la
	// orquesta el caso de uso dentro de una transacción).
	Archive(ctx context.Context, id string) error
}

// SubCategoryRepository define el puerto de persistencia para SubCategory (DIP).
type SubCategoryRepository interface {
	Create(ctx context.Context, sub *entity.SubCategory) error
	GetActiveByID(ctx context.Context, id string) (*entity.SubCategory, error)
	Update(ctx context.Context, sub *entity.SubCategory) error
	ListActive(ctx context.Context, categoryID string) ([]*entity.SubCategory, error)
	Archive(ctx context.Context, id string) error
	// ArchiveByCategory archiva todas las sub-categorías de una categoría.
	ArchiveByCategory(ctx context.Context, categoryID string) error
}
