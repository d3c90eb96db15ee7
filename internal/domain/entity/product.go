package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del punto de venta.
// Stock se modifica únicamente a través del libro de movimientos (stock ledger);
// el catálogo solo lo lee. NameNormalized es el nombre sin acentos para búsquedas.
type Product struct {
	ID             string
	Name           string
	NameNormalized string
	Price          decimal.Decimal // precio de venta, nunca negativo
	Stock          int64           // unidades actuales, nunca negativo
	Barcodes       []Barcode
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Barcode es un código de barras alterno de un producto.
// El código es único en todo el catálogo (no solo por producto).
type Barcode struct {
	ID        string
	ProductID string
	Code      string
}
