package stock_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/pos-api/internal/application/stock"
	"github.com/invorya/pos-api/internal/domain"
	"github.com/invorya/pos-api/internal/domain/entity"
	"github.com/invorya/pos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
//
// memStore simula la base de datos; fakeTxRunner simula la transacción con
// snapshot + restore: si el callback falla, el estado vuelve exactamente al
// punto de partida (equivalente al Rollback de PostgreSQL). El mutex del
// runner serializa las "transacciones", como lo hace el SELECT FOR UPDATE
// sobre la fila del producto.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu        sync.Mutex
	products  map[string]*entity.Product
	movements []*entity.StockMovement
}

func newMemStore(products ...*entity.Product) *memStore {
	s := &memStore{products: make(map[string]*entity.Product)}
	for _, p := range products {
		s.products[p.ID] = p
	}
	return s
}

type fakeProductRepo struct{ s *memStore }

func (r *fakeProductRepo) Create(ctx context.Context, p *entity.Product) error {
	r.s.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeProductRepo) FindByBarcode(ctx context.Context, code string) (*entity.Product, error) {
	for _, p := range r.s.products {
		for _, b := range p.Barcodes {
			if b.Code == code {
				cp := *p
				return &cp, nil
			}
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, p *entity.Product) error {
	r.s.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) UpdateStock(ctx context.Context, productID string, newStock int64) error {
	p, ok := r.s.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = newStock
	return nil
}

func (r *fakeProductRepo) List(ctx context.Context, q string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id string) error {
	delete(r.s.products, id)
	return nil
}

type fakeMovementRepo struct{ s *memStore }

func (r *fakeMovementRepo) Create(ctx context.Context, m *entity.StockMovement) error {
	r.s.movements = append(r.s.movements, m)
	return nil
}

func (r *fakeMovementRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.MovementWithProduct, error) {
	var out []*entity.MovementWithProduct
	for i := len(r.s.movements) - 1; i >= 0; i-- {
		m := r.s.movements[i]
		if m.ProductID != productID {
			continue
		}
		name := ""
		if p, ok := r.s.products[productID]; ok {
			name = p.Name
		}
		out = append(out, &entity.MovementWithProduct{StockMovement: *m, ProductName: name})
	}
	return out, nil
}

func (r *fakeMovementRepo) ListAll(ctx context.Context, limit int) ([]*entity.MovementWithProduct, error) {
	var out []*entity.MovementWithProduct
	for i := len(r.s.movements) - 1; i >= 0 && len(out) < limit; i-- {
		m := r.s.movements[i]
		name := ""
		if p, ok := r.s.products[m.ProductID]; ok {
			name = p.Name
		}
		out = append(out, &entity.MovementWithProduct{StockMovement: *m, ProductName: name})
	}
	return out, nil
}

type fakeTxRunner struct{ s *memStore }

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stocks := make(map[string]int64, len(r.s.products))
	for id, p := range r.s.products {
		stocks[id] = p.Stock
	}
	movCount := len(r.s.movements)

	if err := fn(&fakeMovementRepo{s: r.s}, &fakeProductRepo{s: r.s}); err != nil {
		for id, st := range stocks {
			r.s.products[id].Stock = st
		}
		r.s.movements = r.s.movements[:movCount]
		return err
	}
	return nil
}

func newLedger(products ...*entity.Product) (*stock.Ledger, *memStore) {
	s := newMemStore(products...)
	return stock.NewLedger(&fakeTxRunner{s: s}, &fakeMovementRepo{s: s}), s
}

func testProduct(id string, stockQty int64) *entity.Product {
	return &entity.Product{
		ID:    id,
		Name:  "Arroz 5kg",
		Price: decimal.RequireFromString("25.90"),
		Stock: stockQty,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordMovement
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordMovement_CantidadInvalida(t *testing.T) {
	ledger, _ := newLedger(testProduct("p1", 10))

	for _, qty := range []int64{0, -5} {
		err := ledger.RecordMovement(context.Background(), stock.MovementInput{
			ProductID: "p1",
			Type:      entity.MovementTypeIncoming,
			Quantity:  qty,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad %d debe rechazarse", qty)
	}
}

func TestRecordMovement_TipoInvalido(t *testing.T) {
	ledger, _ := newLedger(testProduct("p1", 10))

	err := ledger.RecordMovement(context.Background(), stock.MovementInput{
		ProductID: "p1",
		Type:      "TRANSFER",
		Quantity:  1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecordMovement_ProductoInexistente(t *testing.T) {
	ledger, _ := newLedger()

	err := ledger.RecordMovement(context.Background(), stock.MovementInput{
		ProductID: "no-existe",
		Type:      entity.MovementTypeIncoming,
		Quantity:  5,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordMovement_EntradaSumaStock(t *testing.T) {
	ledger, store := newLedger(testProduct("p1", 10))

	err := ledger.RecordMovement(context.Background(), stock.MovementInput{
		ProductID: "p1",
		Type:      entity.MovementTypeIncoming,
		Quantity:  15,
		Reason:    "Reposición semanal",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(25), store.products["p1"].Stock)
	require.Len(t, store.movements, 1)
	assert.Equal(t, entity.MovementTypeIncoming, store.movements[0].Type)
	assert.Equal(t, int64(15), store.movements[0].Quantity, "la cantidad se guarda positiva; el signo lo da el tipo")
}

func TestRecordMovement_SalidaDescuentaStock(t *testing.T) {
	ledger, store := newLedger(testProduct("p1", 10))

	err := ledger.RecordMovement(context.Background(), stock.MovementInput{
		ProductID: "p1",
		Type:      entity.MovementTypeLoss,
		Quantity:  4,
		Reason:    "Producto vencido",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(6), store.products["p1"].Stock)
}

// El caso central del invariante: una salida mayor al disponible no debe
// dejar rastro alguno — ni stock alterado ni movimiento registrado.
func TestRecordMovement_StockInsuficienteNoDejaRastro(t *testing.T) {
	ledger, store := newLedger(testProduct("p1", 3))

	err := ledger.RecordMovement(context.Background(), stock.MovementInput{
		ProductID: "p1",
		Type:      entity.MovementTypeOutgoing,
		Quantity:  5,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	var insufficientErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficientErr)
	require.Len(t, insufficientErr.Lines, 1)
	assert.Equal(t, int64(5), insufficientErr.Lines[0].Requested)
	assert.Equal(t, int64(3), insufficientErr.Lines[0].Available)

	assert.Equal(t, int64(3), store.products["p1"].Stock, "el stock no debe cambiar")
	assert.Empty(t, store.movements, "no debe registrarse ningún movimiento")
}

func TestRecordMovement_SalidaExactaDejaCero(t *testing.T) {
	ledger, store := newLedger(testProduct("p1", 5))

	err := ledger.RecordMovement(context.Background(), stock.MovementInput{
		ProductID: "p1",
		Type:      entity.MovementTypeOutgoing,
		Quantity:  5,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), store.products["p1"].Stock)
}

// ──────────────────────────────────────────────────────────────────────────────
// CorrectStock
// ──────────────────────────────────────────────────────────────────────────────

func TestCorrectStock_ObjetivoNegativoInvalido(t *testing.T) {
	ledger, _ := newLedger(testProduct("p1", 10))

	err := ledger.CorrectStock(context.Background(), "p1", -1, "conteo")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCorrectStock_SinDiferenciaNoRegistraNada(t *testing.T) {
	ledger, store := newLedger(testProduct("p1", 10))

	err := ledger.CorrectStock(context.Background(), "p1", 10, "conteo físico")
	require.NoError(t, err)

	assert.Equal(t, int64(10), store.products["p1"].Stock)
	assert.Empty(t, store.movements, "delta cero no debe generar movimiento")
}

func TestCorrectStock_HaciaArriba(t *testing.T) {
	ledger, store := newLedger(testProduct("p1", 10))

	err := ledger.CorrectStock(context.Background(), "p1", 14, "conteo físico")
	require.NoError(t, err)

	assert.Equal(t, int64(14), store.products["p1"].Stock)
	require.Len(t, store.movements, 1)
	assert.Equal(t, entity.MovementTypeAdjustIncoming, store.movements[0].Type)
	assert.Equal(t, int64(4), store.movements[0].Quantity)
	assert.Equal(t, "conteo físico", store.movements[0].Reason)
}

func TestCorrectStock_HaciaAbajoConPrefijo(t *testing.T) {
	ledger, store := newLedger(testProduct("p1", 10))

	err := ledger.CorrectStock(context.Background(), "p1", 7, "merma detectada")
	require.NoError(t, err)

	assert.Equal(t, int64(7), store.products["p1"].Stock)
	require.Len(t, store.movements, 1)
	assert.Equal(t, entity.MovementTypeAdjustOutgoing, store.movements[0].Type)
	assert.Equal(t, int64(3), store.movements[0].Quantity)
	assert.True(t, strings.HasPrefix(store.movements[0].Reason, stock.CorrectionReasonPrefix),
		"la corrección hacia abajo debe llevar el prefijo de auditoría")
	assert.Contains(t, store.movements[0].Reason, "merma detectada")
}

func TestCorrectStock_ACeroEsValido(t *testing.T) {
	ledger, store := newLedger(testProduct("p1", 6))

	err := ledger.CorrectStock(context.Background(), "p1", 0, "inventario agotado")
	require.NoError(t, err)
	assert.Equal(t, int64(0), store.products["p1"].Stock)
}

// ──────────────────────────────────────────────────────────────────────────────
// Historial
// ──────────────────────────────────────────────────────────────────────────────

func TestHistory_MasRecientePrimero(t *testing.T) {
	ledger, _ := newLedger(testProduct("p1", 0))

	for i, qty := range []int64{10, 20, 30} {
		err := ledger.RecordMovement(context.Background(), stock.MovementInput{
			ProductID: "p1",
			Type:      entity.MovementTypeIncoming,
			Quantity:  qty,
		})
		require.NoError(t, err, "movimiento %d", i)
		time.Sleep(time.Millisecond)
	}

	history, err := ledger.History(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, int64(30), history[0].Quantity, "el más reciente primero")
	assert.Equal(t, int64(10), history[2].Quantity)
	assert.Equal(t, "Arroz 5kg", history[0].ProductName)
}

func TestListAll_RespetaLimite(t *testing.T) {
	ledger, _ := newLedger(testProduct("p1", 0))

	for i := 0; i < 5; i++ {
		err := ledger.RecordMovement(context.Background(), stock.MovementInput{
			ProductID: "p1",
			Type:      entity.MovementTypeIncoming,
			Quantity:  1,
		})
		require.NoError(t, err)
	}

	list, err := ledger.ListAll(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

// Un error dentro del callback transaccional debe revertir el stock aunque ya
// se haya escrito (equivale al Rollback de la tx real).
func TestRecordMovementInTx_RollbackRestauraEstado(t *testing.T) {
	ledger, store := newLedger(testProduct("p1", 10))
	runner := &fakeTxRunner{s: store}

	sentinel := errors.New("falla posterior")
	err := runner.Run(context.Background(), func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		_, err := ledger.RecordMovementInTx(context.Background(), movRepo, productRepo, stock.MovementInput{
			ProductID: "p1",
			Type:      entity.MovementTypeOutgoing,
			Quantity:  4,
		}, time.Now())
		require.NoError(t, err)
		require.Equal(t, int64(6), store.products["p1"].Stock, "dentro de la tx el stock ya bajó")
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	assert.Equal(t, int64(10), store.products["p1"].Stock, "el rollback debe restaurar el stock")
	assert.Empty(t, store.movements, "el rollback debe descartar el movimiento")
}
