package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/quincaillerie-api/internal/application/dto"
	"github.com/jhoicas/quincaillerie-api/internal/domain"
	"github.com/jhoicas/quincaillerie-api/internal/domain/entity"
	"github.com/jhoicas/quincaillerie-api/internal/domain/repository"
)

// CategoryUseCase casos de uso para categorías, incluida la cascada de archivado.
type CategoryUseCase struct {
	repo     repository.CategoryRepository
	subRepo  repository.SubCategoryRepository
	prodRepo repository.ProductRepository
	tx       TxRunner
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, subRepo repository.SubCategoryRepository, prodRepo repository.ProductRepository, tx TxRunner) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, subRepo: subRepo, prodRepo: prodRepo, tx: tx}
}

// Create crea una categoría. Nombre requerido (no en blanco) y único:
// la violación de unicidad del store se traduce a ErrDuplicate.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre de la categoría es requerido", domain.ErrInvalidInput)
	}
	now := time.Now()
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category, nil), nil
}

// GetByID devuelve la categoría activa con sus sub-categorías y productos
// activos.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	subs, err := uc.subRepo.ListActive(ctx, id)
	if err != nil {
		return nil, err
	}
	products, err := uc.prodRepo.ListActive(ctx, repository.ProductFilter{CategoryID: id})
	if err != nil {
		return nil, err
	}
	resp := toCategoryResponse(category, subs)
	for _, p := range products {
		resp.Products = append(resp.Products, *toProductResponse(p))
	}
	return resp, nil
}

// List lista las categorías activas con sus sub-categorías activas.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	categories, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		subs, err := uc.subRepo.ListActive(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, *toCategoryResponse(c, subs))
	}
	return out, nil
}

// Update actualiza nombre y descripción. Mismas validaciones que Create.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre de la categoría es requerido", domain.ErrInvalidInput)
	}
	category.Name = name
	category.Description = strings.TrimSpace(in.Description)
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category, nil), nil
}

// Archive archiva la categoría en cascada, en una sola transacción:
// primero los productos de todas sus sub-categorías, luego las
// sub-categorías, por último la categoría. Archivar una categoría ya
// archivada (o inexistente) da ErrNotFound: la cascada nunca se repite.
func (uc *CategoryUseCase) Archive(ctx context.Context, id string) error {
	category, err := uc.repo.GetActiveByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	return uc.tx.Run(ctx, func(
		catRepo repository.CategoryRepository,
		subRepo repository.SubCategoryRepository,
		prodRepo repository.ProductRepository,
	) error {
		if err := prodRepo.ArchiveByCategory(ctx, id); err != nil {
			return err
		}
		if err := subRepo.ArchiveByCategory(ctx, id); err != nil {
			return err
		}
		return catRepo.Archive(ctx, id)
	})
}

func toCategoryResponse(c *entity.Category, subs []*entity.SubCategory) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	resp := &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Active:      c.Active,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	for _, s := range subs {
		resp.SubCategories = append(resp.SubCategories, *toSubCategoryResponse(s))
	}
	return resp
}
