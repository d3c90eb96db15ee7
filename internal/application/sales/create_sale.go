package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/invorya/pos-api/internal/application/dto"
	"github.com/invorya/pos-api/internal/application/stock"
	"github.com/invorya/pos-api/internal/domain"
	"github.com/invorya/pos-api/internal/domain/entity"
	"github.com/invorya/pos-api/internal/domain/repository"
)

// CreateSaleUseCase crea una venta y descuenta el stock en una sola
// transacción, vía el stock ledger.
type CreateSaleUseCase struct {
	txRunner     TxRunner
	ledger       StockLedger
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	saleRepo     repository.SaleRepository
}

// NewCreateSaleUseCase construye el caso de uso.
func NewCreateSaleUseCase(
	txRunner TxRunner,
	ledger StockLedger,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	saleRepo repository.SaleRepository,
) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		txRunner:     txRunner,
		ledger:       ledger,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		saleRepo:     saleRepo,
	}
}

// CreateSale valida todas las líneas antes de mutar nada, y dentro de una
// transacción registra una salida (OUTGOING) por línea con el precio
// capturado al momento de la venta, crea la venta con sus líneas y confirma
// todo junto. Si cualquier paso falla (ej: una carrera agotó el stock entre
// el pre-chequeo y el commit) se hace rollback completo: nunca queda una
// venta parcial.
func (uc *CreateSaleUseCase) CreateSale(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("venta sin líneas: %w", domain.ErrInvalidInput)
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	var customer *entity.Customer
	if in.CustomerID != "" {
		c, err := uc.customerRepo.GetByID(ctx, in.CustomerID)
		if err != nil {
			return nil, err
		}
		if c == nil {
			return nil, fmt.Errorf("cliente %s: %w", in.CustomerID, domain.ErrNotFound)
		}
		customer = c
	}

	// Pre-chequeo de disponibilidad fuera de la tx: recorre TODAS las líneas
	// (sumando cantidades del mismo producto) para que el caller reciba el
	// rechazo completo en lugar de fallar en la primera línea. La verificación
	// definitiva ocurre dentro de la tx con la fila bloqueada.
	requested := make(map[string]int64, len(in.Items))
	order := make([]string, 0, len(in.Items))
	for _, item := range in.Items {
		if _, seen := requested[item.ProductID]; !seen {
			order = append(order, item.ProductID)
		}
		requested[item.ProductID] += item.Quantity
	}
	var insufficient []domain.InsufficientStockLine
	for _, productID := range order {
		product, err := uc.productRepo.GetByID(ctx, productID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, fmt.Errorf("producto %s: %w", productID, domain.ErrNotFound)
		}
		if product.Stock < requested[productID] {
			insufficient = append(insufficient, domain.InsufficientStockLine{
				ProductID:   product.ID,
				ProductName: product.Name,
				Requested:   requested[productID],
				Available:   product.Stock,
			})
		}
	}
	if len(insufficient) > 0 {
		return nil, &domain.InsufficientStockError{Lines: insufficient}
	}

	now := time.Now()
	saleID := uuid.New().String()
	var sale *entity.Sale

	err := uc.txRunner.RunSale(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error {
		// Una salida por línea (líneas repetidas del mismo producto no se
		// fusionan). El ledger bloquea la fila y re-verifica disponibilidad:
		// si otra venta la agotó entre el pre-chequeo y aquí, retorna error
		// y toda la venta hace rollback.
		reason := "Venta #" + saleID
		total := decimal.Zero
		items := make([]entity.SaleItem, 0, len(in.Items))
		for _, item := range in.Items {
			product, err := uc.ledger.RecordMovementInTx(ctx, movRepo, productRepo, stock.MovementInput{
				ProductID: item.ProductID,
				Type:      entity.MovementTypeOutgoing,
				Quantity:  item.Quantity,
				Reason:    reason,
			}, now)
			if err != nil {
				return err
			}
			// Precio re-leído de la fila bloqueada: queda capturado en la
			// línea y cambios de precio posteriores no alteran esta venta.
			subtotal := product.Price.Mul(decimal.NewFromInt(item.Quantity))
			total = total.Add(subtotal)
			items = append(items, entity.SaleItem{
				ID:          uuid.New().String(),
				SaleID:      saleID,
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    item.Quantity,
				UnitPrice:   product.Price,
				Subtotal:    subtotal,
			})
		}

		sale = &entity.Sale{
			ID:         saleID,
			Total:      total,
			CustomerID: in.CustomerID,
			Items:      items,
			CreatedAt:  now,
		}
		return saleRepo.Create(ctx, sale)
	})
	if err != nil {
		return nil, err
	}

	return toSaleResponse(sale, customer), nil
}

func toSaleResponse(sale *entity.Sale, customer *entity.Customer) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:         sale.ID,
		Total:      sale.Total,
		CustomerID: sale.CustomerID,
		Items:      make([]dto.SaleItemResponse, 0, len(sale.Items)),
		CreatedAt:  sale.CreatedAt,
	}
	if customer != nil {
		resp.CustomerName = customer.Name
	}
	for _, item := range sale.Items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal,
		})
	}
	return resp
}
