package repository

import (
	"context"

	"github.com/invorya/pos-api/internal/domain/entity"
)

// StockMovementRepository define el puerto de persistencia del libro de
// movimientos. Solo inserciones y lecturas: los movimientos son inmutables.
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	// ListByProduct retorna el historial de un producto, más reciente primero.
	ListByProduct(ctx context.Context, productID string) ([]*entity.MovementWithProduct, error)
	// ListAll retorna los últimos movimientos de todos los productos.
	ListAll(ctx context.Context, limit int) ([]*entity.MovementWithProduct, error)
}
