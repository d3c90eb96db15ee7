package sales

import (
	"context"
	"time"

	"github.com/invorya/pos-api/internal/application/stock"
	"github.com/invorya/pos-api/internal/domain/entity"
	"github.com/invorya/pos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción que incluye los
// repositorios de stock y de ventas: la venta, sus líneas y los descuentos
// de stock confirman como una sola unidad.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// StockLedger integra el procesador de ventas con el libro de movimientos.
// RecordMovementInTx usa los repositorios del caller (misma transacción);
// si retorna error (ej: ErrInsufficientStock) el caller hace rollback.
type StockLedger interface {
	RecordMovementInTx(
		ctx context.Context,
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		input stock.MovementInput,
		now time.Time,
	) (*entity.Product, error)
}
