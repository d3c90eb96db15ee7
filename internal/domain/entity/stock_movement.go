package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeIncoming       = "INCOMING"        // entrada de mercancía
	MovementTypeOutgoing       = "OUTGOING"        // salida (ventas)
	MovementTypeLoss           = "LOSS"            // pérdida, merma o vencimiento
	MovementTypeAdjustIncoming = "ADJUST_INCOMING" // corrección hacia arriba
	MovementTypeAdjustOutgoing = "ADJUST_OUTGOING" // corrección hacia abajo
)

// IsDecreasingType indica si el tipo descuenta stock.
func IsDecreasingType(t string) bool {
	return t == MovementTypeOutgoing || t == MovementTypeLoss || t == MovementTypeAdjustOutgoing
}

// IsValidMovementType valida el tipo contra el enum.
func IsValidMovementType(t string) bool {
	switch t {
	case MovementTypeIncoming, MovementTypeOutgoing, MovementTypeLoss,
		MovementTypeAdjustIncoming, MovementTypeAdjustOutgoing:
		return true
	}
	return false
}

// StockMovement es una entrada del libro de movimientos: un cambio atómico y
// tipado al stock de un producto. Inmutable una vez creado (log de auditoría,
// solo inserciones; nunca se actualiza ni se borra).
type StockMovement struct {
	ID        string
	ProductID string
	Type      string
	Quantity  int64 // siempre positivo; el signo lo da el tipo
	Reason    string
	CreatedAt time.Time
}

// MovementWithProduct es un movimiento junto con el nombre del producto
// para listados (el historial se muestra con contexto del producto).
type MovementWithProduct struct {
	StockMovement
	ProductName string
}
