package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/quincaillerie-api/internal/domain"
	"github.com/jhoicas/quincaillerie-api/internal/domain/entity"
	"github.com/jhoicas/quincaillerie-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `code, designation, stock, unit_price, image_url, sub_category_id, active, created_at, updated_at`

// Create persiste un producto. Código único (23505 -> ErrDuplicate).
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		product.Code, product.Designation, product.Stock, product.UnitPrice,
		product.ImageURL, product.SubCategoryID, product.Active,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetActiveByCode obtiene un producto activo por código; (nil, nil) si no existe o está archivado.
func (r *ProductRepo) GetActiveByCode(ctx context.Context, code string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE code = $1 AND active = true`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, code).Scan(
		&p.Code, &p.Designation, &p.Stock, &p.UnitPrice, &p.ImageURL,
		&p.SubCategoryID, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update actualiza un producto.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET designation = $2, stock = $3, unit_price = $4, image_url = $5, sub_category_id = $6, updated_at = $7
		WHERE code = $1`
	_, err := r.q.Exec(ctx, query,
		product.Code, product.Designation, product.Stock, product.UnitPrice,
		product.ImageURL, product.SubCategoryID, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateStock ajusta el stock del producto.
func (r *ProductRepo) UpdateStock(ctx context.Context, code string, stock int) error {
	_, err := r.q.Exec(ctx,
		`UPDATE products SET stock = $2, updated_at = now() WHERE code = $1`,
		code, stock,
	)
	if err != nil {
		return fmt.Errorf("update product stock: %w", err)
	}
	return nil
}

// UpdateImageURL actualiza solo la URL de imagen; "" la limpia (NULL lógico).
func (r *ProductRepo) UpdateImageURL(ctx context.Context, code, imageURL string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE products SET image_url = $2, updated_at = now() WHERE code = $1`,
		code, imageURL,
	)
	if err != nil {
		return fmt.Errorf("update product image: %w", err)
	}
	return nil
}

// ListActive lista productos activos con filtros opcionales.
func (r *ProductRepo) ListActive(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	query := `
		SELECT p.code, p.designation, p.stock, p.unit_price, p.image_url, p.sub_category_id, p.active, p.created_at, p.updated_at
		FROM products p
		JOIN sub_categories sc ON sc.id = p.sub_category_id
		WHERE p.active = true`
	args := []any{}
	n := 0
	if filter.SubCategoryID != "" {
		n++
		query += fmt.Sprintf(" AND p.sub_category_id = $%d", n)
		args = append(args, filter.SubCategoryID)
	}
	if filter.CategoryID != "" {
		n++
		query += fmt.Sprintf(" AND sc.category_id = $%d", n)
		args = append(args, filter.CategoryID)
	}
	if filter.Search != "" {
		n++
		query += fmt.Sprintf(" AND (p.code ILIKE $%d OR p.designation ILIKE $%d)", n, n)
		args = append(args, "%"+filter.Search+"%")
	}
	query += " ORDER BY p.designation ASC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.Code, &p.Designation, &p.Stock, &p.UnitPrice, &p.ImageURL,
			&p.SubCategoryID, &p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Archive marca el producto como inactivo.
func (r *ProductRepo) Archive(ctx context.Context, code string) error {
	_, err := r.q.Exec(ctx, `UPDATE products SET active = false, updated_at = now() WHERE code = $1`, code)
	if err != nil {
		return fmt.Errorf("archive product: %w", err)
	}
	return nil
}

// ArchiveBySubCategory archiva todos los productos de una sub-categoría.
func (r *ProductRepo) ArchiveBySubCategory(ctx context.Context, subCategoryID string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE products SET active = false, updated_at = now() WHERE sub_category_id = $1`,
		subCategoryID,
	)
	if err != nil {
		return fmt.Errorf("archive products by sub_category: %w", err)
	}
	return nil
}

// ArchiveByCategory archiva todos los productos colgados de una categoría
// (vía sus sub-categorías).
func (r *ProductRepo) ArchiveByCategory(ctx context.Context, categoryID string) error {
	query := `
		UPDATE products SET active = false, updated_at = now()
		WHERE sub_category_id IN (SELECT id FROM sub_categories WHERE category_id = $1)`
	_, err := r.q.Exec(ctx, query, categoryID)
	if err != nil {
		return fmt.Errorf("archive products by category: %w", err)
	}
	return nil
}
