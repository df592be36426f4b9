package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/quincaillerie-api/internal/application/catalog"
	"github.com/jhoicas/quincaillerie-api/internal/domain/repository"
)

var _ catalog.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// Las cascadas de archivado del catálogo corren aquí: commit solo si los
// tres niveles (productos, sub-categorías, categoría) se escribieron.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	catRepo repository.CategoryRepository,
	subRepo repository.SubCategoryRepository,
	prodRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	catRepo := NewCategoryRepository(tx)
	subRepo := NewSubCategoryRepository(tx)
	prodRepo := NewProductRepository(tx)

	if err := fn(catRepo, subRepo, prodRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
