package sales

import (
	"context"
	"fmt"

	"github.com/invorya/pos-api/internal/application/dto"
	"github.com/invorya/pos-api/internal/domain"
	"github.com/invorya/pos-api/internal/domain/entity"
	"github.com/invorya/pos-api/internal/domain/repository"
)

// ListSales retorna ventas filtradas (rango de fechas inclusivo y/o producto
// presente entre las líneas, combinados con AND), más reciente primero.
func (uc *CreateSaleUseCase) ListSales(ctx context.Context, filter repository.SaleFilter) ([]*dto.SaleResponse, error) {
	list, err := uc.saleRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SaleResponse, 0, len(list))
	for _, sale := range list {
		out = append(out, toSaleResponse(sale, uc.customerFor(ctx, sale)))
	}
	return out, nil
}

// GetSale obtiene una venta por ID con líneas y cliente.
func (uc *CreateSaleUseCase) GetSale(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, fmt.Errorf("venta %s: %w", id, domain.ErrNotFound)
	}
	return toSaleResponse(sale, uc.customerFor(ctx, sale)), nil
}

func (uc *CreateSaleUseCase) customerFor(ctx context.Context, sale *entity.Sale) *entity.Customer {
	if sale.CustomerID == "" {
		return nil
	}
	customer, _ := uc.customerRepo.GetByID(ctx, sale.CustomerID)
	return customer
}
