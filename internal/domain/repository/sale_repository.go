package repository

import (
	"context"
	"time"

	"github.com/invorya/pos-api/internal/domain/entity"
)

// SaleFilter enumera exactamente los filtros soportados en listados de ventas.
// Los filtros presentes se combinan con AND. Nil/vacío = sin filtrar.
type SaleFilter struct {
	DateFrom  *time.Time
	DateTo    *time.Time // inclusivo; el handler amplía fechas sin hora a fin de día
	ProductID string     // ventas que contengan este producto entre sus líneas
}

// SaleRepository define el puerto de persistencia para ventas.
// Create inserta cabecera y líneas; debe ejecutarse dentro de la misma
// transacción que los movimientos de stock de la venta.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	// GetByID retorna la venta con sus líneas (nombre de producto incluido).
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	// List retorna ventas filtradas, más reciente primero, con líneas.
	List(ctx context.Context, filter SaleFilter) ([]*entity.Sale, error)
}
