package order_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/quincaillerie-api/internal/application/dto"
	"github.com/jhoicas/quincaillerie-api/internal/application/order"
	"github.com/jhoicas/quincaillerie-api/internal/domain"
	"github.com/jhoicas/quincaillerie-api/internal/domain/entity"
	"github.com/jhoicas/quincaillerie-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos
// ──────────────────────────────────────────────────────────────────────────────

type fakeOrderRepo struct {
	orders map[string]*entity.PurchaseOrder
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*entity.PurchaseOrder)}
}

func (r *fakeOrderRepo) Create(_ context.Context, o *entity.PurchaseOrder) error {
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id string) (*entity.PurchaseOrder, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) List(_ context.Context, status string) ([]*entity.PurchaseOrder, error) {
	var out []*entity.PurchaseOrder
	for _, o := range r.orders {
		if status == "" || o.Status == status {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, id, status string) error {
	if o, ok := r.orders[id]; ok {
		o.Status = status
	}
	return nil
}

func (r *fakeOrderRepo) CountOpenByProduct(_ context.Context, code string) (int, error) {
	count := 0
	for _, o := range r.orders {
		if o.Status != entity.OrderStatusEnCours && o.Status != entity.OrderStatusLivre {
			continue
		}
		for _, l := range o.Lines {
			if l.ProductCode == code {
				count++
			}
		}
	}
	return count, nil
}

func (r *fakeOrderRepo) CountOpenBySupplier(_ context.Context, supplierID string) (int, error) {
	count := 0
	for _, o := range r.orders {
		if o.SupplierID == supplierID &&
			(o.Status == entity.OrderStatusEnCours || o.Status == entity.OrderStatusLivre) {
			count++
		}
	}
	return count, nil
}

type fakeSupplierRepo struct {
	items map[string]*entity.Supplier
}

func (r *fakeSupplierRepo) Create(_ context.Context, s *entity.Supplier) error {
	r.items[s.ID] = s
	return nil
}

func (r *fakeSupplierRepo) GetActiveByID(_ context.Context, id string) (*entity.Supplier, error) {
	s, ok := r.items[id]
	if !ok || !s.Active {
		return nil, nil
	}
	return s, nil
}

func (r *fakeSupplierRepo) Update(_ context.Context, s *entity.Supplier) error {
	r.items[s.ID] = s
	return nil
}

func (r *fakeSupplierRepo) ListActive(_ context.Context) ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	for _, s := range r.items {
		if s.Active {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSupplierRepo) Archive(_ context.Context, id string) error {
	if s, ok := r.items[id]; ok {
		s.Active = false
	}
	return nil
}

type fakeProductRepo struct {
	items map[string]*entity.Product
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.items[p.Code] = p
	return nil
}

func (r *fakeProductRepo) GetActiveByCode(_ context.Context, code string) (*entity.Product, error) {
	p, ok := r.items[code]
	if !ok || !p.Active {
		return nil, nil
	}
	return p, nil
}

func (r *fakeProductRepo) Update(_ context.Context, _ *entity.Product) error      { return nil }
func (r *fakeProductRepo) UpdateStock(_ context.Context, _ string, _ int) error   { return nil }
func (r *fakeProductRepo) UpdateImageURL(_ context.Context, _, _ string) error    { return nil }
func (r *fakeProductRepo) Archive(_ context.Context, _ string) error              { return nil }
func (r *fakeProductRepo) ArchiveBySubCategory(_ context.Context, _ string) error { return nil }
func (r *fakeProductRepo) ArchiveByCategory(_ context.Context, _ string) error    { return nil }
func (r *fakeProductRepo) ListActive(_ context.Context, _ repository.ProductFilter) ([]*entity.Product, error) {
	return nil, nil
}

func setup(t *testing.T) (*order.OrderUseCase, *fakeOrderRepo) {
	t.Helper()
	now := time.Now()
	suppliers := &fakeSupplierRepo{items: map[string]*entity.Supplier{
		"sup1": {ID: "sup1", Name: "Diallo & Frères", Active: true, CreatedAt: now, UpdatedAt: now},
	}}
	products := &fakeProductRepo{items: map[string]*entity.Product{
		"P001": {Code: "P001", Designation: "Tubo", UnitPrice: decimal.NewFromInt(100), Active: true},
		"P002": {Code: "P002", Designation: "Codo", UnitPrice: decimal.NewFromInt(50), Active: true},
	}}
	repo := newFakeOrderRepo()
	return order.NewOrderUseCase(repo, suppliers, products), repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderCreate_CalculaTotalYEstadoInicial(t *testing.T) {
	uc, _ := setup(t)
	out, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		SupplierID: "sup1",
		Lines: []dto.CreateOrderLineRequest{
			{ProductCode: "P001", Quantity: 3, UnitPrice: decimal.NewFromInt(90)},
			{ProductCode: "p002", Quantity: 2}, // sin precio: usa el del producto
		},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusEnCours, out.Status)
	// 3*90 + 2*50 = 370
	assert.True(t, out.Total.Equal(decimal.NewFromInt(370)), "total = %s", out.Total)
	require.Len(t, out.Lines, 2)
	assert.Equal(t, "P002", out.Lines[1].ProductCode, "el código de línea también se normaliza")
	assert.True(t, out.Lines[1].UnitPrice.Equal(decimal.NewFromInt(50)))
}

func TestOrderCreate_SinLineas(t *testing.T) {
	uc, _ := setup(t)
	_, err := uc.Create(context.Background(), dto.CreateOrderRequest{SupplierID: "sup1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrderCreate_ProveedorInexistente(t *testing.T) {
	uc, _ := setup(t)
	_, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		SupplierID: "fantasma",
		Lines:      []dto.CreateOrderLineRequest{{ProductCode: "P001", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrderCreate_ProductoArchivado(t *testing.T) {
	uc, _ := setup(t)
	_, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		SupplierID: "sup1",
		Lines:      []dto.CreateOrderLineRequest{{ProductCode: "NO-EXISTE", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrderCreate_CantidadCero(t *testing.T) {
	uc, _ := setup(t)
	_, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		SupplierID: "sup1",
		Lines:      []dto.CreateOrderLineRequest{{ProductCode: "P001", Quantity: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cancel — solo ENCOURS es anulable
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderCancel_SoloEnCours(t *testing.T) {
	uc, repo := setup(t)
	out, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		SupplierID: "sup1",
		Lines:      []dto.CreateOrderLineRequest{{ProductCode: "P001", Quantity: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, uc.Cancel(context.Background(), out.ID))
	assert.Equal(t, entity.OrderStatusAnnule, repo.orders[out.ID].Status)

	// Ya anulada: segunda anulación es conflicto.
	err = uc.Cancel(context.Background(), out.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestOrderCancel_EstadosNoAnulables(t *testing.T) {
	uc, repo := setup(t)
	for _, status := range []string{entity.OrderStatusLivre, entity.OrderStatusLivrePaye} {
		out, err := uc.Create(context.Background(), dto.CreateOrderRequest{
			SupplierID: "sup1",
			Lines:      []dto.CreateOrderLineRequest{{ProductCode: "P001", Quantity: 1}},
		})
		require.NoError(t, err)
		repo.orders[out.ID].Status = status

		err = uc.Cancel(context.Background(), out.ID)
		assert.ErrorIs(t, err, domain.ErrConflict, "estado %s no debe ser anulable", status)
	}
}

func TestOrderCancel_Inexistente(t *testing.T) {
	uc, _ := setup(t)
	assert.ErrorIs(t, uc.Cancel(context.Background(), "no-existe"), domain.ErrNotFound)
}

func TestOrderList_FiltroPorEstado(t *testing.T) {
	uc, repo := setup(t)
	for i := 0; i < 3; i++ {
		_, err := uc.Create(context.Background(), dto.CreateOrderRequest{
			SupplierID: "sup1",
			Lines:      []dto.CreateOrderLineRequest{{ProductCode: "P001", Quantity: 1}},
		})
		require.NoError(t, err)
	}
	// Marcar una como entregada.
	for id := range repo.orders {
		repo.orders[id].Status = entity.OrderStatusLivre
		break
	}

	encours, err := uc.List(context.Background(), entity.OrderStatusEnCours)
	require.NoError(t, err)
	assert.Len(t, encours, 2)

	todas, err := uc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, todas, 3)
}
