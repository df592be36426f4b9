package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/quincaillerie-api/internal/application/dto"
	"github.com/jhoicas/quincaillerie-api/internal/domain"
	"github.com/jhoicas/quincaillerie-api/internal/domain/entity"
	"github.com/jhoicas/quincaillerie-api/internal/domain/repository"
)

// ProductUseCase casos de uso para productos, incluida la precondición de
// archivado contra órdenes abiertas.
type ProductUseCase struct {
	repo      repository.ProductRepository
	subRepo   repository.SubCategoryRepository
	orderRepo repository.OrderRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, subRepo repository.SubCategoryRepository, orderRepo repository.OrderRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, subRepo: subRepo, orderRepo: orderRepo}
}

// Create crea un producto. Código normalizado (trim + mayúsculas), designación
// requerida, precio > 0, stock >= 0 y sub-categoría padre existente y activa.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	code := entity.NormalizeCode(in.Code)
	if code == "" {
		return nil, fmt.Errorf("%w: el código del producto es requerido", domain.ErrInvalidInput)
	}
	designation := strings.TrimSpace(in.Designation)
	if designation == "" {
		return nil, fmt.Errorf("%w: la designación del producto es requerida", domain.ErrInvalidInput)
	}
	if !in.UnitPrice.IsPositive() {
		return nil, fmt.Errorf("%w: el precio unitario debe ser mayor que 0", domain.ErrInvalidInput)
	}
	if in.Stock < 0 {
		return nil, fmt.Errorf("%w: el stock no puede ser negativo", domain.ErrInvalidInput)
	}
	sub, err := uc.subRepo.GetActiveByID(ctx, in.SubCategoryID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, fmt.Errorf("%w: sub-categoría no encontrada", domain.ErrInvalidInput)
	}
	now := time.Now()
	product := &entity.Product{
		Code:          code,
		Designation:   designation,
		Stock:         in.Stock,
		UnitPrice:     in.UnitPrice,
		ImageURL:      strings.TrimSpace(in.ImageURL),
		SubCategoryID: in.SubCategoryID,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByCode devuelve el producto activo. El código buscado también se normaliza.
func (uc *ProductUseCase) GetByCode(ctx context.Context, code string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetActiveByCode(ctx, entity.NormalizeCode(code))
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List lista productos activos con filtros opcionales.
func (uc *ProductUseCase) List(ctx context.Context, filter repository.ProductFilter) ([]dto.ProductResponse, error) {
	products, err := uc.repo.ListActive(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// Update actualiza un producto. Re-valida las mismas reglas que Create; si
// cambia la sub-categoría, la nueva debe existir y estar activa.
func (uc *ProductUseCase) Update(ctx context.Context, code string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetActiveByCode(ctx, entity.NormalizeCode(code))
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	designation := strings.TrimSpace(in.Designation)
	if designation == "" {
		return nil, fmt.Errorf("%w: la designación del producto es requerida", domain.ErrInvalidInput)
	}
	if !in.UnitPrice.IsPositive() {
		return nil, fmt.Errorf("%w: el precio unitario debe ser mayor que 0", domain.ErrInvalidInput)
	}
	if in.Stock < 0 {
		return nil, fmt.Errorf("%w: el stock no puede ser negativo", domain.ErrInvalidInput)
	}
	if in.SubCategoryID != "" && in.SubCategoryID != product.SubCategoryID {
		sub, err := uc.subRepo.GetActiveByID(ctx, in.SubCategoryID)
		if err != nil {
			return nil, err
		}
		if sub == nil {
			return nil, fmt.Errorf("%w: sub-categoría no encontrada", domain.ErrInvalidInput)
		}
		product.SubCategoryID = in.SubCategoryID
	}
	product.Designation = designation
	product.Stock = in.Stock
	product.UnitPrice = in.UnitPrice
	product.ImageURL = strings.TrimSpace(in.ImageURL)
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// UpdateStock ajusta el stock del producto (>= 0).
func (uc *ProductUseCase) UpdateStock(ctx context.Context, code string, stock int) (*dto.ProductResponse, error) {
	if stock < 0 {
		return nil, fmt.Errorf("%w: el stock debe ser un número positivo o cero", domain.ErrInvalidInput)
	}
	normalized := entity.NormalizeCode(code)
	product, err := uc.repo.GetActiveByCode(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.UpdateStock(ctx, normalized, stock); err != nil {
		return nil, err
	}
	product.Stock = stock
	return toProductResponse(product), nil
}

// Archive archiva el producto. Precondiciones: el producto existe y está
// activo (si no, ErrNotFound) y NO está referenciado por órdenes abiertas
// (ENCOURS o LIVRE); si lo está, ErrConflict. La verificación corre antes de
// la escritura; una creación de orden concurrente entre ambas puede colarse
// (limitación conocida, pendiente de cerrar con una transacción serializable).
func (uc *ProductUseCase) Archive(ctx context.Context, code string) error {
	normalized := entity.NormalizeCode(code)
	product, err := uc.repo.GetActiveByCode(ctx, normalized)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	open, err := uc.orderRepo.CountOpenByProduct(ctx, normalized)
	if err != nil {
		return err
	}
	if open > 0 {
		return fmt.Errorf("%w: el producto está presente en órdenes en curso", domain.ErrConflict)
	}
	return uc.repo.Archive(ctx, normalized)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		Code:          p.Code,
		Designation:   p.Designation,
		Stock:         p.Stock,
		UnitPrice:     p.UnitPrice,
		ImageURL:      p.ImageURL,
		SubCategoryID: p.SubCategoryID,
		Active:        p.Active,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
