package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/quincaillerie-api/internal/application/dto"
	"github.com/jhoicas/quincaillerie-api/internal/domain"
	"github.com/jhoicas/quincaillerie-api/internal/domain/entity"
	"github.com/jhoicas/quincaillerie-api/internal/domain/repository"
	"github.com/jhoicas/quincaillerie-api/pkg/logger"
)

// ImageUseCase gestión de imágenes de producto contra el CDN.
// Invariantes: un upload fallido no modifica el producto; si la escritura en
// DB falla después de subir, el asset nuevo se elimina best-effort.
type ImageUseCase struct {
	repo    repository.ProductRepository
	storage ImageStorage
	folder  string
	log     *logger.Logger
}

// NewImageUseCase construye el caso de uso.
func NewImageUseCase(repo repository.ProductRepository, storage ImageStorage, folder string, log *logger.Logger) *ImageUseCase {
	return &ImageUseCase{repo: repo, storage: storage, folder: folder, log: log}
}

// Upload sube una imagen para el producto y actualiza su image_url.
// La imagen anterior (si la hay) se borra best-effort.
func (uc *ImageUseCase) Upload(ctx context.Context, code string, data []byte) (*dto.ProductImageResponse, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: ninguna imagen recibida", domain.ErrInvalidInput)
	}
	normalized := entity.NormalizeCode(code)
	product, err := uc.repo.GetActiveByCode(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	result, err := uc.storage.Upload(ctx, data, UploadOptions{
		Folder:   uc.folder,
		PublicID: fmt.Sprintf("produit_%s_%d", normalized, time.Now().UnixMilli()),
	})
	if err != nil {
		return nil, fmt.Errorf("subir imagen al CDN: %w", err)
	}

	// Borrar la imagen anterior; si falla solo se registra.
	if product.ImageURL != "" {
		if oldID := uc.storage.ExtractPublicID(product.ImageURL); oldID != "" {
			if err := uc.storage.Delete(ctx, oldID); err != nil {
				uc.log.Warn().Err(err).Str("public_id", oldID).Msg("no se pudo borrar la imagen anterior")
			}
		}
	}

	if err := uc.repo.UpdateImageURL(ctx, normalized, result.URL); err != nil {
		// La DB rechazó la escritura: limpiar el asset recién subido para no
		// dejarlo huérfano en el CDN.
		if delErr := uc.storage.Delete(ctx, result.PublicID); delErr != nil {
			uc.log.Error().Err(delErr).Str("public_id", result.PublicID).Msg("limpieza de asset huérfano fallida")
		}
		return nil, err
	}

	product.ImageURL = result.URL
	return &dto.ProductImageResponse{
		Product: *toProductResponse(product),
		URL:     result.URL,
		Width:   result.Width,
		Height:  result.Height,
		Format:  result.Format,
		Bytes:   result.Bytes,
	}, nil
}

// Info devuelve el estado de la imagen actual del producto.
func (uc *ImageUseCase) Info(ctx context.Context, code string) (*dto.ProductImageInfoResponse, error) {
	normalized := entity.NormalizeCode(code)
	product, err := uc.repo.GetActiveByCode(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	info := &dto.ProductImageInfoResponse{ProductCode: normalized}
	if product.ImageURL != "" {
		info.HasImage = true
		info.URL = product.ImageURL
		info.PublicID = uc.storage.ExtractPublicID(product.ImageURL)
	}
	return info, nil
}

// Delete elimina la imagen del producto: borra el asset del CDN (best-effort)
// y limpia image_url.
func (uc *ImageUseCase) Delete(ctx context.Context, code string) (*dto.ProductResponse, error) {
	normalized := entity.NormalizeCode(code)
	product, err := uc.repo.GetActiveByCode(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.ImageURL == "" {
		return nil, fmt.Errorf("%w: el producto no tiene imagen", domain.ErrInvalidInput)
	}
	if publicID := uc.storage.ExtractPublicID(product.ImageURL); publicID != "" {
		if err := uc.storage.Delete(ctx, publicID); err != nil {
			uc.log.Warn().Err(err).Str("public_id", publicID).Msg("no se pudo borrar la imagen del CDN")
		}
	}
	if err := uc.repo.UpdateImageURL(ctx, normalized, ""); err != nil {
		return nil, err
	}
	product.ImageURL = ""
	return toProductResponse(product), nil
}
