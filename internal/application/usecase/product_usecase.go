package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/invorya/pos-api/internal/application/dto"
	"github.com/invorya/pos-api/internal/domain"
	"github.com/invorya/pos-api/internal/domain/entity"
	"github.com/invorya/pos-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para el catálogo. Stock se maneja vía
// el stock ledger; aquí solo se fija el stock inicial al crear.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto con sus códigos de barras.
// Un código ya usado por otro producto retorna ErrDuplicate.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Price.LessThan(decimal.Zero) || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:             uuid.New().String(),
		Name:           in.Name,
		NameNormalized: NormalizeName(in.Name),
		Price:          in.Price,
		Stock:          in.Stock,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for _, code := range dedupe(in.Barcodes) {
		product.Barcodes = append(product.Barcodes, entity.Barcode{
			ID:        uuid.New().String(),
			ProductID: product.ID,
			Code:      code,
		})
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// FindByBarcode obtiene un producto por cualquiera de sus códigos de barras.
func (uc *ProductUseCase) FindByBarcode(ctx context.Context, code string) (*dto.ProductResponse, error) {
	product, err := uc.repo.FindByBarcode(ctx, code)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza nombre, precio y códigos. No permite modificar Stock:
// las correcciones van por el stock ledger para dejar auditoría.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
		product.NameNormalized = NormalizeName(*in.Name)
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Barcodes != nil {
		product.Barcodes = nil
		for _, code := range dedupe(in.Barcodes) {
			product.Barcodes = append(product.Barcodes, entity.Barcode{
				ID:        uuid.New().String(),
				ProductID: product.ID,
				Code:      code,
			})
		}
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos, con búsqueda opcional por nombre sin acentos.
func (uc *ProductUseCase) List(ctx context.Context, query string, limit, offset int) (*dto.ProductListResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.List(ctx, NormalizeName(query), limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.ProductListResponse{Products: make([]*dto.ProductResponse, 0, len(list))}
	for _, p := range list {
		out.Products = append(out.Products, toProductResponse(p))
	}
	out.Total = len(out.Products)
	return out, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	codes := make([]string, 0, len(p.Barcodes))
	for _, b := range p.Barcodes {
		codes = append(codes, b.Code)
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Barcodes:  codes,
		Price:     p.Price,
		Stock:     p.Stock,
		CreatedAt: p.CreatedAt,
	}
}

func dedupe(codes []string) []string {
	seen := make(map[string]struct{}, len(codes))
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
