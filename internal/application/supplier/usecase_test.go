package supplier_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/quincaillerie-api/internal/application/dto"
	"github.com/jhoicas/quincaillerie-api/internal/application/supplier"
	"github.com/jhoicas/quincaillerie-api/internal/domain"
	"github.com/jhoicas/quincaillerie-api/internal/domain/entity"
)

type fakeSupplierRepo struct {
	items map[string]*entity.Supplier
}

func newFakeSupplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{items: make(map[string]*entity.Supplier)}
}

func (r *fakeSupplierRepo) Create(_ context.Context, s *entity.Supplier) error {
	for _, existing := range r.items {
		if existing.Name == s.Name {
			return domain.ErrDuplicate
		}
	}
	cp := *s
	r.items[s.ID] = &cp
	return nil
}

func (r *fakeSupplierRepo) GetActiveByID(_ context.Context, id string) (*entity.Supplier, error) {
	s, ok := r.items[id]
	if !ok || !s.Active {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSupplierRepo) Update(_ context.Context, s *entity.Supplier) error {
	cp := *s
	r.items[s.ID] = &cp
	return nil
}

func (r *fakeSupplierRepo) ListActive(_ context.Context) ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	for _, s := range r.items {
		if s.Active {
			cp := *s
			out = append(out, &cp)
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

// fakeOrderCounts solo responde a los contadores de órdenes abiertas.
type fakeOrderCounts struct {
	bySupplier map[string]int
}

func (r *fakeOrderCounts) Create(_ context.Context, _ *entity.PurchaseOrder) error { return nil }
func (r *fakeOrderCounts) GetByID(_ context.Context, _ string) (*entity.PurchaseOrder, error) {
	return nil, nil
}
func (r *fakeOrderCounts) List(_ context.Context, _ string) ([]*entity.PurchaseOrder, error) {
	return nil, nil
}
func (r *fakeOrderCounts) UpdateStatus(_ context.Context, _, _ string) error { return nil }
func (r *fakeOrderCounts) CountOpenByProduct(_ context.Context, _ string) (int, error) {
	return 0, nil
}
func (r *fakeOrderCounts) CountOpenBySupplier(_ context.Context, id string) (int, error) {
	return r.bySupplier[id], nil
}

func setup(t *testing.T) (*supplier.SupplierUseCase, *fakeSupplierRepo, *fakeOrderCounts) {
	t.Helper()
	repo := newFakeSupplierRepo()
	now := time.Now()
	require.NoError(t, repo.Create(context.Background(), &entity.Supplier{
		ID: "sup1", Name: "Diallo & Frères", Phone: "+221 77 000 00 00",
		Active: true, CreatedAt: now, UpdatedAt: now,
	}))
	orders := &fakeOrderCounts{bySupplier: make(map[string]int)}
	return supplier.NewSupplierUseCase(repo, orders), repo, orders
}

func TestSupplierCreate_NombreEnBlanco(t *testing.T) {
	uc, _, _ := setup(t)
	_, err := uc.Create(context.Background(), dto.CreateSupplierRequest{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSupplierCreate_NombreDuplicado(t *testing.T) {
	uc, _, _ := setup(t)
	_, err := uc.Create(context.Background(), dto.CreateSupplierRequest{Name: "Diallo & Frères"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestSupplierArchive_BloqueadoPorOrdenesAbiertas(t *testing.T) {
	uc, repo, orders := setup(t)
	orders.bySupplier["sup1"] = 1

	err := uc.Archive(context.Background(), "sup1")
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.True(t, repo.items["sup1"].Active, "el proveedor debe seguir activo tras el rechazo")
}

func TestSupplierArchive_SinOrdenesAbiertas(t *testing.T) {
	uc, repo, _ := setup(t)
	require.NoError(t, uc.Archive(context.Background(), "sup1"))
	assert.False(t, repo.items["sup1"].Active)

	// Ya archivado: el segundo intento da ErrNotFound.
	assert.ErrorIs(t, uc.Archive(context.Background(), "sup1"), domain.ErrNotFound)
}

func TestSupplierGetByID_Archivado_NotFound(t *testing.T) {
	uc, _, _ := setup(t)
	require.NoError(t, uc.Archive(context.Background(), "sup1"))

	_, err := uc.GetByID(context.Background(), "sup1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
