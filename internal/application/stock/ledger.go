package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/invorya/pos-api/internal/domain"
	"github.com/invorya/pos-api/internal/domain/entity"
	"github.com/invorya/pos-api/internal/domain/repository"
)

// CorrectionReasonPrefix marca en la auditoría las salidas por corrección
// manual, para distinguirlas de salidas orgánicas (ventas, pérdidas).
const CorrectionReasonPrefix = "Corrección de stock: "

// Ledger es el libro de movimientos de stock: mantiene el invariante
// stock = stock inicial + suma con signo de todos los movimientos, nunca
// negativo. Toda mutación de Product.Stock pasa por aquí, dentro de una
// transacción con bloqueo de fila (SELECT FOR UPDATE).
type Ledger struct {
	txRunner     TxRunner
	movementRepo repository.StockMovementRepository // lecturas fuera de tx
}

// NewLedger construye el ledger.
func NewLedger(txRunner TxRunner, movementRepo repository.StockMovementRepository) *Ledger {
	return &Ledger{txRunner: txRunner, movementRepo: movementRepo}
}

// MovementInput entrada para registrar un movimiento.
type MovementInput struct {
	ProductID string
	Type      string // INCOMING, OUTGOING, LOSS, ADJUST_INCOMING, ADJUST_OUTGOING
	Quantity  int64  // siempre positivo
	Reason    string // opcional
}

// RecordMovement registra un movimiento en su propia transacción:
// bloquea la fila del producto, verifica disponibilidad para tipos de salida
// y aplica stock + movimiento de forma atómica (Commit o Rollback).
func (l *Ledger) RecordMovement(ctx context.Context, input MovementInput) error {
	if input.Quantity <= 0 {
		return domain.ErrInvalidInput
	}
	if !entity.IsValidMovementType(input.Type) {
		return domain.ErrInvalidInput
	}
	now := time.Now()
	return l.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		_, err := l.RecordMovementInTx(ctx, movRepo, productRepo, input, now)
		return err
	})
}

// RecordMovementInTx aplica un movimiento usando los repositorios del caller
// (misma transacción). Es el contexto de ejecución compartido con el
// procesador de ventas: los descuentos de stock de una venta confirman
// atómicamente con la venta misma. Retorna el producto con el stock ya
// actualizado para que el caller reutilice precio y nombre.
func (l *Ledger) RecordMovementInTx(
	ctx context.Context,
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
	input MovementInput,
	now time.Time,
) (*entity.Product, error) {
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if !entity.IsValidMovementType(input.Type) {
		return nil, domain.ErrInvalidInput
	}

	// Bloquea la fila del producto: el check de disponibilidad y la escritura
	// quedan protegidos por el mismo lock frente a operaciones concurrentes.
	product, err := productRepo.GetByIDForUpdate(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	newStock := product.Stock
	if entity.IsDecreasingType(input.Type) {
		if product.Stock < input.Quantity {
			return nil, domain.NewInsufficientStock(product.ID, product.Name, input.Quantity, product.Stock)
		}
		newStock -= input.Quantity
	} else {
		newStock += input.Quantity
	}

	if err := productRepo.UpdateStock(ctx, product.ID, newStock); err != nil {
		return nil, err
	}
	product.Stock = newStock

	mov := &entity.StockMovement{
		ID:        uuid.New().String(),
		ProductID: product.ID,
		Type:      input.Type,
		Quantity:  input.Quantity,
		Reason:    input.Reason,
		CreatedAt: now,
	}
	if err := movRepo.Create(ctx, mov); err != nil {
		return nil, err
	}
	return product, nil
}

// CorrectStock lleva el stock de un producto a un valor absoluto observado
// (reconciliación manual). Delta cero no deja rastro; delta positivo registra
// ADJUST_INCOMING; delta negativo registra ADJUST_OUTGOING con el motivo
// prefijado para distinguir correcciones de salidas orgánicas.
func (l *Ledger) CorrectStock(ctx context.Context, productID string, targetStock int64, reason string) error {
	if targetStock < 0 {
		return domain.ErrInvalidInput
	}
	now := time.Now()
	return l.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		product, err := productRepo.GetByIDForUpdate(ctx, productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		delta := targetStock - product.Stock
		if delta == 0 {
			return nil
		}

		input := MovementInput{ProductID: productID}
		if delta > 0 {
			input.Type = entity.MovementTypeAdjustIncoming
			input.Quantity = delta
			input.Reason = reason
		} else {
			input.Type = entity.MovementTypeAdjustOutgoing
			input.Quantity = -delta
			input.Reason = CorrectionReasonPrefix + reason
		}
		_, err = l.RecordMovementInTx(ctx, movRepo, productRepo, input, now)
		return err
	})
}

// History retorna el historial de movimientos de un producto, más reciente
// primero, con el nombre del producto para presentación.
func (l *Ledger) History(ctx context.Context, productID string) ([]*entity.MovementWithProduct, error) {
	return l.movementRepo.ListByProduct(ctx, productID)
}

// ListAll retorna los últimos movimientos de todos los productos.
func (l *Ledger) ListAll(ctx context.Context, limit int) ([]*entity.MovementWithProduct, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return l.movementRepo.ListAll(ctx, limit)
}
