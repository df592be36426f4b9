package catalog

import (
	"context"

	"github.com/jhoicas/quincaillerie-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repos atados a una misma transacción.
// Las cascadas de archivado (productos -> sub-categorías -> categoría) deben
// aplicarse todas o ninguna; el runner garantiza commit/rollback atómico.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		catRepo repository.CategoryRepository,
		subRepo repository.SubCategoryRepository,
		prodRepo repository.ProductRepository,
	) error) error
}

// UploadOptions opciones de subida al CDN de imágenes.
type UploadOptions struct {
	Folder   string
	PublicID string
}

// UploadResult metadatos del asset subido al CDN.
type UploadResult struct {
	URL      string
	PublicID string
	Width    int
	Height   int
	Format   string
	Bytes    int64
}

// ImageStorage contrato del CDN de imágenes (colaborador externo).
// Un upload fallido nunca debe tocar el estado del producto; un asset
// subido que quede huérfano se limpia best-effort con Delete.
type ImageStorage interface {
	Upload(ctx context.Context, data []byte, opts UploadOptions) (*UploadResult, error)
	Delete(ctx context.Context, publicID string) error
	// ExtractPublicID deriva el public id de una URL del CDN; "" si la URL
	// no pertenece al CDN.
	ExtractPublicID(url string) string
}
