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

var _ repository.SubCategoryRepository = (*SubCategoryRepo)(nil)

// SubCategoryRepo implementación del puerto SubCategoryRepository sobre PostgreSQL.
type SubCategoryRepo struct {
	q Querier
}

// NewSubCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSubCategoryRepository(q Querier) *SubCategoryRepo {
	return &SubCategoryRepo{q: q}
}

const subCategoryColumns = `id, category_id, name, description, active, created_at, updated_at`

// Create persiste una sub-categoría. Nombre único por categoría
// (constraint (category_id, name), 23505 -> ErrDuplicate).
func (r *SubCategoryRepo) Create(ctx context.Context, sub *entity.SubCategory) error {
	query := `
		INSERT INTO sub_categories (` + subCategoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		sub.ID, sub.CategoryID, sub.Name, sub.Description, sub.Active,
		sub.CreatedAt, sub.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sub_category: %w", err)
	}
	return nil
}

// GetActiveByID obtiene una sub-categoría activa; (nil, nil) si no existe o está archivada.
func (r *SubCategoryRepo) GetActiveByID(ctx context.Context, id string) (*entity.SubCategory, error) {
	query := `SELECT ` + subCategoryColumns + ` FROM sub_categories WHERE id = $1 AND active = true`
	var s entity.SubCategory
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.CategoryID, &s.Name, &s.Description, &s.Active, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sub_category: %w", err)
	}
	return &s, nil
}

// Update actualiza la sub-categoría (incluido un posible cambio de padre).
func (r *SubCategoryRepo) Update(ctx context.Context, sub *entity.SubCategory) error {
	query := `
		UPDATE sub_categories SET category_id = $2, name = $3, description = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		sub.ID, sub.CategoryID, sub.Name, sub.Description, sub.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update sub_category: %w", err)
	}
	return nil
}

// ListActive lista sub-categorías activas; categoryID vacío lista todas.
func (r *SubCategoryRepo) ListActive(ctx context.Context, categoryID string) ([]*entity.SubCategory, error) {
	query := `SELECT ` + subCategoryColumns + ` FROM sub_categories WHERE active = true`
	args := []any{}
	if categoryID != "" {
		query += ` AND category_id = $1`
		args = append(args, categoryID)
	}
	query += ` ORDER BY name ASC`
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sub_categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.SubCategory
	for rows.Next() {
		var s entity.SubCategory
		if err := rows.Scan(&s.ID, &s.CategoryID, &s.Name, &s.Description, &s.Active, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan sub_category: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Archive marca la sub-categoría como inactiva (sin cascada).
func (r *SubCategoryRepo) Archive(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `UPDATE sub_categories SET active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("archive sub_category: %w", err)
	}
	return nil
}

// ArchiveByCategory archiva todas las sub-categorías de una categoría.
func (r *SubCategoryRepo) ArchiveByCategory(ctx context.Context, categoryID string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE sub_categories SET active = false, updated_at = now() WHERE category_id = $1`,
		categoryID,
	)
	if err != nil {
		return fmt.Errorf("archive sub_categories by category: %w", err)
	}
	return nil
}
