package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/quincaillerie-api/internal/application/dto"
	"github.com/jhoicas/quincaillerie-api/internal/domain"
	"github.com/jhoicas/quincaillerie-api/internal/domain/entity"
	"github.com/jhoicas/quincaillerie-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// OrderUseCase ciclo de vida mínimo de órdenes de compra: creación, consulta
// y anulación. Entregas y pagos quedan fuera de este caso de uso.
type OrderUseCase struct {
	repo         repository.OrderRepository
	supplierRepo repository.SupplierRepository
	productRepo  repository.ProductRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository, supplierRepo repository.SupplierRepository, productRepo repository.ProductRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo, supplierRepo: supplierRepo, productRepo: productRepo}
}

// Create crea una orden en estado ENCOURS. El proveedor y todos los productos
// referenciados deben existir y estar activos; al menos una línea con
// cantidad > 0. El total se calcula de las líneas.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if len(in.Lines) == 0 {
		return nil, fmt.Errorf("%w: la orden requiere al menos una línea", domain.ErrInvalidInput)
	}
	supplier, err := uc.supplierRepo.GetActiveByID(ctx, in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, fmt.Errorf("%w: proveedor no encontrado", domain.ErrInvalidInput)
	}

	orderID := uuid.New().String()
	now := time.Now()
	total := decimal.Zero
	lines := make([]entity.OrderLine, 0, len(in.Lines))
	for _, l := range in.Lines {
		if l.Quantity <= 0 {
			return nil, fmt.Errorf("%w: la cantidad de cada línea debe ser mayor que 0", domain.ErrInvalidInput)
		}
		code := entity.NormalizeCode(l.ProductCode)
		product, err := uc.productRepo.GetActiveByCode(ctx, code)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, fmt.Errorf("%w: producto %s no encontrado", domain.ErrInvalidInput, code)
		}
		unitPrice := l.UnitPrice
		if !unitPrice.IsPositive() {
			// Sin precio pactado se usa el precio vigente del producto.
			unitPrice = product.UnitPrice
		}
		total = total.Add(unitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
		lines = append(lines, entity.OrderLine{
			ID:          uuid.New().String(),
			OrderID:     orderID,
			ProductCode: code,
			Quantity:    l.Quantity,
			UnitPrice:   unitPrice,
		})
	}

	order := &entity.PurchaseOrder{
		ID:         orderID,
		SupplierID: in.SupplierID,
		Status:     entity.OrderStatusEnCours,
		Total:      total,
		OrderDate:  now,
		Lines:      lines,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// GetByID devuelve la orden con sus líneas.
func (uc *OrderUseCase) GetByID(ctx context.Context, id string) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return toOrderResponse(order), nil
}

// List lista órdenes, opcionalmente filtradas por estado.
func (uc *OrderUseCase) List(ctx context.Context, status string) ([]dto.OrderResponse, error) {
	orders, err := uc.repo.List(ctx, status)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, *toOrderResponse(o))
	}
	return out, nil
}

// Cancel anula una orden. Solo ENCOURS puede anularse; cualquier otro estado
// da ErrConflict.
func (uc *OrderUseCase) Cancel(ctx context.Context, id string) error {
	order, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	if order.Status != entity.OrderStatusEnCours {
		return fmt.Errorf("%w: solo una orden en curso puede anularse", domain.ErrConflict)
	}
	return uc.repo.UpdateStatus(ctx, id, entity.OrderStatusAnnule)
}

func toOrderResponse(o *entity.PurchaseOrder) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	resp := &dto.OrderResponse{
		ID:         o.ID,
		SupplierID: o.SupplierID,
		Status:     o.Status,
		Total:      o.Total,
		OrderDate:  o.OrderDate,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
	for _, l := range o.Lines {
		resp.Lines = append(resp.Lines, dto.OrderLineResponse{
			ID:          l.ID,
			ProductCode: l.ProductCode,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
		})
	}
	return resp
}
