package stock

import (
	"context"

	"github.com/invorya/pos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el stock ledger:
// la actualización de stock y la inserción del movimiento confirman juntas
// o ninguna confirma.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}
