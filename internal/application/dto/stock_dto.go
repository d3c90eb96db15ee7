package dto

import "time"

// RecordMovementRequest body para POST /api/stock/movements.
type RecordMovementRequest struct {
	ProductID string `json:"product_id"`
	Type      string `json:"type"` // INCOMING, OUTGOING, LOSS, ADJUST_INCOMING, ADJUST_OUTGOING
	Quantity  int64  `json:"quantity"`
	Reason    string `json:"reason,omitempty"`
}

// CorrectStockRequest body para POST /api/stock/correction.
type CorrectStockRequest struct {
	ProductID   string `json:"product_id"`
	TargetStock int64  `json:"target_stock"`
	Reason      string `json:"reason"`
}

// MovementResponse una entrada del historial de movimientos.
type MovementResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	Type        string    `json:"type"`
	Quantity    int64     `json:"quantity"`
	Reason      string    `json:"reason,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
