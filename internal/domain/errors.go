package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// InsufficientStockLine detalla una línea rechazada por falta de stock.
type InsufficientStockLine struct {
	ProductID   string
	ProductName string
	Requested   int64
	Available   int64
}

// InsufficientStockError reporta todas las líneas sin stock suficiente de una
// operación, con las cantidades solicitadas y disponibles. Unwrap retorna
// ErrInsufficientStock para que errors.Is siga funcionando.
type InsufficientStockError struct {
	Lines []InsufficientStockLine
}

func (e *InsufficientStockError) Error() string {
	parts := make([]string, 0, len(e.Lines))
	for _, l := range e.Lines {
		name := l.ProductName
		if name == "" {
			name = l.ProductID
		}
		parts = append(parts, fmt.Sprintf("%s: solicitado %d, disponible %d", name, l.Requested, l.Available))
	}
	return "stock insuficiente: " + strings.Join(parts, "; ")
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// NewInsufficientStock construye el error para una sola línea.
func NewInsufficientStock(productID, productName string, requested, available int64) *InsufficientStockError {
	return &InsufficientStockError{Lines: []InsufficientStockLine{{
		ProductID:   productID,
		ProductName: productName,
		Requested:   requested,
		Available:   available,
	}}}
}
