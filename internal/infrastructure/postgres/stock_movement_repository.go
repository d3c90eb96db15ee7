package postgres

import (
	"context"
	"fmt"

	"github.com/invorya/pos-api/internal/domain/entity"
	"github.com/invorya/pos-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación sobre PostgreSQL (usable con pool o tx).
// El log es append-only: no hay Update ni Delete.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste un movimiento de stock.
func (r *StockMovementRepo) Create(ctx context.Context, movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, product_id, type, quantity, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	reason := (*string)(nil)
	if movement.Reason != "" {
		reason = &movement.Reason
	}
	_, err := r.q.Exec(ctx, query,
		movement.ID, movement.ProductID, movement.Type, movement.Quantity,
		reason, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

const movementSelect = `
	SELECT m.id, m.product_id, m.type, m.quantity, m.reason, m.created_at, p.name
	FROM stock_movements m
	JOIN products p ON p.id = m.product_id`

// ListByProduct lista el historial de un producto, más reciente primero.
func (r *StockMovementRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.MovementWithProduct, error) {
	query := movementSelect + `
		WHERE m.product_id = $1
		ORDER BY m.created_at DESC, m.id DESC`
	return r.list(ctx, query, productID)
}

// ListAll lista los últimos movimientos de todos los productos.
func (r *StockMovementRepo) ListAll(ctx context.Context, limit int) ([]*entity.MovementWithProduct, error) {
	query := movementSelect + `
		ORDER BY m.created_at DESC, m.id DESC
		LIMIT $1`
	return r.list(ctx, query, limit)
}

func (r *StockMovementRepo) list(ctx context.Context, query string, args ...any) ([]*entity.MovementWithProduct, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovementWithProduct
	for rows.Next() {
		var m entity.MovementWithProduct
		var reason *string
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Type, &m.Quantity, &reason, &m.CreatedAt, &m.ProductName); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		if reason != nil {
			m.Reason = *reason
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
