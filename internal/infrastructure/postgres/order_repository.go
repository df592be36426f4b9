package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/quincaillerie-api/internal/domain/entity"
	"github.com/jhoicas/quincaillerie-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
// Recibe el pool (no un Querier genérico) porque Create abre su propia
// transacción para insertar la orden y sus líneas de forma atómica.
type OrderRepo struct {
	pool *pgxpool.Pool
}

// NewOrderRepository construye el adaptador.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

const orderColumns = `id, supplier_id, status, total, order_date, created_at, updated_at`

// Create inserta la orden y todas sus líneas en una transacción.
func (r *OrderRepo) Create(ctx context.Context, order *entity.PurchaseOrder) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	insertOrder := `
		INSERT INTO purchase_orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = tx.Exec(ctx, insertOrder,
		order.ID, order.SupplierID, order.Status, order.Total, order.OrderDate,
		order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	insertLine := `
		INSERT INTO order_lines (id, order_id, product_code, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5)`
	for _, line := range order.Lines {
		_, err = tx.Exec(ctx, insertLine,
			line.ID, line.OrderID, line.ProductCode, line.Quantity, line.UnitPrice,
		)
		if err != nil {
			return fmt.Errorf("insert order line: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// GetByID obtiene la orden con sus líneas; (nil, nil) si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.PurchaseOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM purchase_orders WHERE id = $1`
	var o entity.PurchaseOrder
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.SupplierID, &o.Status, &o.Total, &o.OrderDate, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	lines, err := r.linesByOrder(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Lines = lines
	return &o, nil
}

func (r *OrderRepo) linesByOrder(ctx context.Context, orderID string) ([]entity.OrderLine, error) {
	query := `
		SELECT id, order_id, product_code, quantity, unit_price
		FROM order_lines WHERE order_id = $1 ORDER BY product_code ASC`
	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order lines: %w", err)
	}
	defer rows.Close()
	var lines []entity.OrderLine
	for rows.Next() {
		var l entity.OrderLine
		if err := rows.Scan(&l.ID, &l.OrderID, &l.ProductCode, &l.Quantity, &l.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan order line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

// List lista órdenes, opcionalmente filtradas por estado, de la más reciente
// a la más antigua. Las líneas no se cargan en el listado.
func (r *OrderRepo) List(ctx context.Context, status string) ([]*entity.PurchaseOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM purchase_orders`
	var args []any
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY order_date DESC, created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseOrder
	for rows.Next() {
		var o entity.PurchaseOrder
		if err := rows.Scan(&o.ID, &o.SupplierID, &o.Status, &o.Total, &o.OrderDate, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado de la orden.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE purchase_orders SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

// CountOpenByProduct cuenta líneas del producto en órdenes abiertas
// (ENCOURS, LIVRE). Un resultado > 0 bloquea el archivado del producto.
func (r *OrderRepo) CountOpenByProduct(ctx context.Context, productCode string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM order_lines l
		JOIN purchase_orders o ON o.id = l.order_id
		WHERE l.product_code = $1 AND o.status = ANY($2)`
	var count int
	err := r.pool.QueryRow(ctx, query, productCode, entity.OpenOrderStatuses).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count open orders by product: %w", err)
	}
	return count, nil
}

// CountOpenBySupplier cuenta órdenes abiertas del proveedor.
func (r *OrderRepo) CountOpenBySupplier(ctx context.Context, supplierID string) (int, error) {
	query := `
		SELECT COUNT(*) FROM purchase_orders
		WHERE supplier_id = $1 AND status = ANY($2)`
	var count int
	err := r.pool.QueryRow(ctx, query, supplierID, entity.OpenOrderStatuses).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count open orders by supplier: %w", err)
	}
	return count, nil
}
