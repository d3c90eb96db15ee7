package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Name     string          `json:"name"`
	Barcodes []string        `json:"barcodes"`
	Price    decimal.Decimal `json:"price"`
	Stock    int64           `json:"stock"` // stock inicial; después solo mutable vía movimientos
}

// UpdateProductRequest body para PUT /api/products/:id.
// Campos nil no se modifican. Stock no es editable aquí: usar
// /api/stock/correction para que quede rastro en la auditoría.
type UpdateProductRequest struct {
	Name     *string          `json:"name,omitempty"`
	Barcodes []string         `json:"barcodes,omitempty"` // reemplaza todos los códigos
	Price    *decimal.Decimal `json:"price,omitempty"`
}

// ProductResponse respuesta con un producto y sus códigos.
type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Barcodes  []string        `json:"barcodes"`
	Price     decimal.Decimal `json:"price"`
	Stock     int64           `json:"stock"`
	CreatedAt time.Time       `json:"created_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Products []*ProductResponse `json:"products"`
	Total    int                `json:"total"`
}
