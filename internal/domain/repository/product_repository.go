package repository

import (
	"context"

	"github.com/jhoicas/quincaillerie-api/internal/domain/entity"
)

// ProductFilter filtros opcionales para listados de productos.
type ProductFilter struct {
	SubCategoryID string
	CategoryID    string
	Search        string // busca en code y designation, case-insensitive
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	// GetActiveByCode devuelve (nil, nil) si el producto no existe o está archivado.
	GetActiveByCode(ctx context.Context, code string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	UpdateStock(ctx context.Context, code string, stock int) error
	UpdateImageURL(ctx context.Context, code, imageURL string) error
	ListActive(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	Archive(ctx context.Context, code string) error
	// ArchiveBySubCategory archiva todos los productos de una sub-categoría.
	ArchiveBySubCategory(ctx context.Context, subCategoryID string) error
	// ArchiveByCategory archiva todos los productos colgados (vía sub-categoría)
	// de una categoría.
	ArchiveByCategory(ctx context.Context, categoryID string) error
}
