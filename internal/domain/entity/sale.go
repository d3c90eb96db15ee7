package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta finalizada. Inmutable después de creada
// (no hay edición ni cancelación de ventas).
type Sale struct {
	ID         string
	Total      decimal.Decimal
	CustomerID string // opcional; vacío = venta sin cliente
	Items      []SaleItem
	CreatedAt  time.Time
}

// SaleItem es una línea de venta: producto + cantidad, con el precio
// capturado al momento de la venta (cambios de precio posteriores no
// alteran ventas históricas).
type SaleItem struct {
	ID          string
	SaleID      string
	ProductID   string
	ProductName string // join para presentación
	Quantity    int64
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal // UnitPrice * Quantity
}
