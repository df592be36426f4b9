package catalog_test

import (
	"context"
	"strings"

	"github.com/jhoicas/quincaillerie-api/internal/application/catalog"
	"github.com/jhoicas/quincaillerie-api/internal/domain"
	"github.com/jhoicas/quincaillerie-api/internal/domain/entity"
	"github.com/jhoicas/quincaillerie-api/internal/domain/repository"
)

// Fakes en memoria de los repos del catálogo. Respetan los contratos de los
// puertos: Get* activos devuelven (nil, nil) para registros inexistentes o
// archivados, y Create falla con ErrDuplicate ante claves repetidas.

type fakeCategoryRepo struct {
	items map[string]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{items: make(map[string]*entity.Category)}
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	for _, existing := range r.items {
		if existing.Name == c.Name {
			return domain.ErrDuplicate
		}
	}
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) GetActiveByID(_ context.Context, id string) (*entity.Category, error) {
	c, ok := r.items[id]
	if !ok || !c.Active {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) ListActive(_ context.Context) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.items {
		if c.Active {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) Archive(_ context.Context, id string) error {
	if c, ok := r.items[id]; ok {
		c.Active = false
	}
	return nil
}

type fakeSubCategoryRepo struct {
	items map[string]*entity.SubCategory
}

func newFakeSubCategoryRepo() *fakeSubCategoryRepo {
	return &fakeSubCategoryRepo{items: make(map[string]*entity.SubCategory)}
}

func (r *fakeSubCategoryRepo) Create(_ context.Context, s *entity.SubCategory) error {
	cp := *s
	r.items[s.ID] = &cp
	return nil
}

func (r *fakeSubCategoryRepo) GetActiveByID(_ context.Context, id string) (*entity.SubCategory, error) {
	s, ok := r.items[id]
	if !ok || !s.Active {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSubCategoryRepo) Update(_ context.Context, s *entity.SubCategory) error {
	cp := *s
	r.items[s.ID] = &cp
	return nil
}

func (r *fakeSubCategoryRepo) ListActive(_ context.Context, categoryID string) ([]*entity.SubCategory, error) {
	var out []*entity.SubCategory
	for _, s := range r.items {
		if s.Active && (categoryID == "" || s.CategoryID == categoryID) {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeSubCategoryRepo) Archive(_ context.Context, id string) error {
	if s, ok := r.items[id]; ok {
		s.Active = false
	}
	return nil
}

func (r *fakeSubCategoryRepo) ArchiveByCategory(_ context.Context, categoryID string) error {
	for _, s := range r.items {
		if s.CategoryID == categoryID {
			s.Active = false
		}
	}
	return nil
}

type fakeProductRepo struct {
	items map[string]*entity.Product // por código
	owner map[string]string          // sub_category_id -> category_id
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		items: make(map[string]*entity.Product),
		owner: make(map[string]string),
	}
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	if _, ok := r.items[p.Code]; ok {
		return domain.ErrDuplicate
	}
	cp := *p
	r.items[p.Code] = &cp
	return nil
}

func (r *fakeProductRepo) GetActiveByCode(_ context.Context, code string) (*entity.Product, error) {
	p, ok := r.items[code]
	if !ok || !p.Active {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	cp := *p
	r.items[p.Code] = &cp
	return nil
}

func (r *fakeProductRepo) UpdateStock(_ context.Context, code string, stock int) error {
	if p, ok := r.items[code]; ok {
		p.Stock = stock
	}
	return nil
}

func (r *fakeProductRepo) UpdateImageURL(_ context.Context, code, imageURL string) error {
	p, ok := r.items[code]
	if !ok {
		return domain.ErrNotFound
	}
	p.ImageURL = imageURL
	return nil
}

func (r *fakeProductRepo) ListActive(_ context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.items {
		if !p.Active {
			continue
		}
		if filter.SubCategoryID != "" && p.SubCategoryID != filter.SubCategoryID {
			continue
		}
		if filter.CategoryID != "" && r.owner[p.SubCategoryID] != filter.CategoryID {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(p.Code), needle) &&
				!strings.Contains(strings.ToLower(p.Designation), needle) {
				continue
			}
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) Archive(_ context.Context, code string) error {
	if p, ok := r.items[code]; ok {
		p.Active = false
	}
	return nil
}

func (r *fakeProductRepo) ArchiveBySubCategory(_ context.Context, subCategoryID string) error {
	for _, p := range r.items {
		if p.SubCategoryID == subCategoryID {
			p.Active = false
		}
	}
	return nil
}

func (r *fakeProductRepo) ArchiveByCategory(_ context.Context, categoryID string) error {
	for _, p := range r.items {
		if r.owner[p.SubCategoryID] == categoryID {
			p.Active = false
		}
	}
	return nil
}

// fakeOrderRepo solo implementa los contadores que el catálogo necesita.
type fakeOrderRepo struct {
	openByProduct  map[string]int
	openBySupplier map[string]int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		openByProduct:  make(map[string]int),
		openBySupplier: make(map[string]int),
	}
}

func (r *fakeOrderRepo) Create(_ context.Context, _ *entity.PurchaseOrder) error { return nil }
func (r *fakeOrderRepo) GetByID(_ context.Context, _ string) (*entity.PurchaseOrder, error) {
	return nil, nil
}
func (r *fakeOrderRepo) List(_ context.Context, _ string) ([]*entity.PurchaseOrder, error) {
	return nil, nil
}
func (r *fakeOrderRepo) UpdateStatus(_ context.Context, _, _ string) error { return nil }

func (r *fakeOrderRepo) CountOpenByProduct(_ context.Context, productCode string) (int, error) {
	return r.openByProduct[productCode], nil
}

func (r *fakeOrderRepo) CountOpenBySupplier(_ context.Context, supplierID string) (int, error) {
	return r.openBySupplier[supplierID], nil
}

// fakeTx ejecuta el callback con los mismos fakes, sin transacción real.
type fakeTx struct {
	cat  *fakeCategoryRepo
	sub  *fakeSubCategoryRepo
	prod *fakeProductRepo
}

func (t *fakeTx) Run(ctx context.Context, fn func(
	catRepo repository.CategoryRepository,
	subRepo repository.SubCategoryRepository,
	prodRepo repository.ProductRepository,
) error) error {
	return fn(t.cat, t.sub, t.prod)
}

var _ catalog.TxRunner = (*fakeTx)(nil)
