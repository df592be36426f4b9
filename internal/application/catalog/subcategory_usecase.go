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

// SubCategoryUseCase casos de uso para sub-categorías.
type SubCategoryUseCase struct {
	repo    repository.SubCategoryRepository
	catRepo repository.CategoryRepository
	tx      TxRunner
}

// NewSubCategoryUseCase construye el caso de uso.
func NewSubCategoryUseCase(repo repository.SubCategoryRepository, catRepo repository.CategoryRepository, tx TxRunner) *SubCategoryUseCase {
	return &SubCategoryUseCase{repo: repo, catRepo: catRepo, tx: tx}
}

// Create crea una sub-categoría. La categoría padre debe existir y estar
// activa; el nombre es único dentro del padre (23505 -> ErrDuplicate).
func (uc *SubCategoryUseCase) Create(ctx context.Context, in dto.CreateSubCategoryRequest) (*dto.SubCategoryResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre de la sub-categoría es requerido", domain.ErrInvalidInput)
	}
	parent, err := uc.catRepo.GetActiveByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, fmt.Errorf("%w: categoría padre no encontrada", domain.ErrInvalidInput)
	}
	now := time.Now()
	sub := &entity.SubCategory{
		ID:          uuid.New().String(),
		CategoryID:  in.CategoryID,
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, sub); err != nil {
		return nil, err
	}
	return toSubCategoryResponse(sub), nil
}

// GetByID devuelve la sub-categoría activa con el nombre de su categoría padre.
func (uc *SubCategoryUseCase) GetByID(ctx context.Context, id string) (*dto.SubCategoryResponse, error) {
	sub, err := uc.repo.GetActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, domain.ErrNotFound
	}
	resp := toSubCategoryResponse(sub)
	parent, err := uc.catRepo.GetActiveByID(ctx, sub.CategoryID)
	if err != nil {
		return nil, err
	}
	if parent != nil {
		resp.CategoryName = parent.Name
	}
	return resp, nil
}

// List lista sub-categorías activas; categoryID vacío lista todas.
func (uc *SubCategoryUseCase) List(ctx context.Context, categoryID string) ([]dto.SubCategoryResponse, error) {
	subs, err := uc.repo.ListActive(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SubCategoryResponse, 0, len(subs))
	for _, s := range subs {
		out = append(out, *toSubCategoryResponse(s))
	}
	return out, nil
}

// Update actualiza la sub-categoría. Si cambia el padre, el nuevo padre debe
// existir y estar activo.
func (uc *SubCategoryUseCase) Update(ctx context.Context, id string, in dto.UpdateSubCategoryRequest) (*dto.SubCategoryResponse, error) {
	sub, err := uc.repo.GetActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, domain.ErrNotFound
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre de la sub-categoría es requerido", domain.ErrInvalidInput)
	}
	if in.CategoryID != "" && in.CategoryID != sub.CategoryID {
		parent, err := uc.catRepo.GetActiveByID(ctx, in.CategoryID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, fmt.Errorf("%w: categoría padre no encontrada", domain.ErrInvalidInput)
		}
		sub.CategoryID = in.CategoryID
	}
	sub.Name = name
	sub.Description = strings.TrimSpace(in.Description)
	sub.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, sub); err != nil {
		return nil, err
	}
	return toSubCategoryResponse(sub), nil
}

// Archive archiva la sub-categoría y sus productos en una sola transacción.
// Ya archivada o inexistente da ErrNotFound.
func (uc *SubCategoryUseCase) Archive(ctx context.Context, id string) error {
	sub, err := uc.repo.GetActiveByID(ctx, id)
	if err != nil {
		return err
	}
	if sub == nil {
		return domain.ErrNotFound
	}
	return uc.tx.Run(ctx, func(
		_ repository.CategoryRepository,
		subRepo repository.SubCategoryRepository,
		prodRepo repository.ProductRepository,
	) error {
		if err := prodRepo.ArchiveBySubCategory(ctx, id); err != nil {
			return err
		}
		return subRepo.Archive(ctx, id)
	})
}

func toSubCategoryResponse(s *entity.SubCategory) *dto.SubCategoryResponse {
	if s == nil {
		return nil
	}
	return &dto.SubCategoryResponse{
		ID:          s.ID,
		CategoryID:  s.CategoryID,
		Name:        s.Name,
		Description: s.Description,
		Active:      s.Active,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
