package sales

import (
	"context"
	"fmt"

	"github.com/invorya/pos-api/internal/domain"
	"github.com/invorya/pos-api/internal/domain/entity"
	"github.com/invorya/pos-api/internal/domain/repository"
)

// ReceiptPDFGenerator puerto para la representación en PDF de un recibo de venta.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(sale *entity.Sale, customerName string, store *entity.StoreSettings) ([]byte, error)
}

// ReceiptUseCase genera el recibo PDF de una venta con la identidad de la tienda.
type ReceiptUseCase struct {
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
	storeRepo    repository.StoreSettingsRepository
	generator    ReceiptPDFGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(
	saleRepo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
	storeRepo repository.StoreSettingsRepository,
	generator ReceiptPDFGenerator,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		storeRepo:    storeRepo,
		generator:    generator,
	}
}

// GetReceiptPDF genera el recibo de una venta existente.
func (uc *ReceiptUseCase) GetReceiptPDF(ctx context.Context, saleID string) ([]byte, error) {
	sale, err := uc.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, fmt.Errorf("venta %s: %w", saleID, domain.ErrNotFound)
	}
	customerName := ""
	if sale.CustomerID != "" {
		if customer, err := uc.customerRepo.GetByID(ctx, sale.CustomerID); err == nil && customer != nil {
			customerName = customer.Name
		}
	}
	store, err := uc.storeRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if store == nil {
		store = &entity.StoreSettings{Name: "Punto de venta"}
	}
	return uc.generator.GenerateReceiptPDF(sale, customerName, store)
}
