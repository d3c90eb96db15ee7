package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/pos-api/internal/application/dto"
	"github.com/invorya/pos-api/internal/application/usecase"
	"github.com/invorya/pos-api/internal/domain"
	"github.com/invorya/pos-api/internal/domain/entity"
)

// fakeProductRepo repositorio en memoria para los casos de uso de catálogo.
type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(ctx context.Context, p *entity.Product) error {
	for _, existing := range r.products {
		for _, eb := range existing.Barcodes {
			for _, nb := range p.Barcodes {
				if eb.Code == nb.Code {
					return domain.ErrDuplicate
				}
			}
		}
	}
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (r *fakeProductRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeProductRepo) FindByBarcode(ctx context.Context, code string) (*entity.Product, error) {
	for _, p := range r.products {
		for _, b := range p.Barcodes {
			if b.Code == code {
				return p, nil
			}
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) UpdateStock(ctx context.Context, productID string, stock int64) error {
	r.products[productID].Stock = stock
	return nil
}

func (r *fakeProductRepo) List(ctx context.Context, normalizedQuery string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if normalizedQuery == "" || contains(p.NameNormalized, normalizedQuery) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id string) error {
	delete(r.products, id)
	return nil
}

func contains(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}

// ──────────────────────────────────────────────────────────────────────────────
// NormalizeName
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalizeName(t *testing.T) {
	cases := map[string]string{
		"Feijão":          "feijao",
		"Óleo de Soja":    "oleo de soja",
		"MACARRÃO":        "macarrao",
		"  Açúcar  ":      "acucar",
		"Coca-Cola 2L":    "coca-cola 2l",
		"café com açaí":   "cafe com acai",
		"sin acentos 123": "sin acentos 123",
	}
	for in, want := range cases {
		assert.Equal(t, want, usecase.NormalizeName(in), "entrada %q", in)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// ProductUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_Validaciones(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateProductRequest{Name: "", Price: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nombre vacío")

	_, err = uc.Create(ctx, dto.CreateProductRequest{Name: "Leite 1L", Price: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio negativo")

	_, err = uc.Create(ctx, dto.CreateProductRequest{Name: "Leite 1L", Price: decimal.NewFromInt(5), Stock: -3})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "stock inicial negativo")
}

func TestProductCreate_NormalizaNombreYDeduplicaCodigos(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	resp, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:     "Feijão 1kg",
		Barcodes: []string{"789111", "789111", "", "789222"},
		Price:    decimal.RequireFromString("8.50"),
		Stock:    80,
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"789111", "789222"}, resp.Barcodes,
		"códigos vacíos y repetidos se descartan")
	assert.Equal(t, "feijao 1kg", repo.products[resp.ID].NameNormalized)
}

func TestProductCreate_CodigoDuplicadoEntreProductos(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateProductRequest{
		Name: "Arroz 5kg", Barcodes: []string{"789000"}, Price: decimal.NewFromInt(25),
	})
	require.NoError(t, err)

	_, err = uc.Create(ctx, dto.CreateProductRequest{
		Name: "Arroz 10kg", Barcodes: []string{"789000"}, Price: decimal.NewFromInt(45),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductUpdate_NoTocaStock(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateProductRequest{
		Name: "Leite 1L", Price: decimal.RequireFromString("5.60"), Stock: 90,
	})
	require.NoError(t, err)

	newName := "Leite Integral 1L"
	newPrice := decimal.RequireFromString("6.10")
	updated, err := uc.Update(ctx, created.ID, dto.UpdateProductRequest{Name: &newName, Price: &newPrice})
	require.NoError(t, err)

	assert.Equal(t, "Leite Integral 1L", updated.Name)
	assert.True(t, updated.Price.Equal(newPrice))
	assert.Equal(t, int64(90), updated.Stock, "el stock solo cambia vía movimientos")
	assert.Equal(t, "leite integral 1l", repo.products[created.ID].NameNormalized)
}

func TestProductUpdate_Inexistente(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	name := "X"
	resp, err := uc.Update(context.Background(), "p-404", dto.UpdateProductRequest{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, resp, "producto inexistente retorna nil, el handler lo convierte en 404")
}

func TestProductDelete_Inexistente(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	err := uc.Delete(context.Background(), "p-404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductList_BusquedaSinAcentos(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateProductRequest{Name: "Feijão 1kg", Price: decimal.NewFromInt(8)})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateProductRequest{Name: "Arroz 5kg", Price: decimal.NewFromInt(25)})
	require.NoError(t, err)

	// La búsqueda con o sin acentos encuentra lo mismo.
	for _, q := range []string{"feijao", "Feijão", "FEIJAO"} {
		list, err := uc.List(ctx, q, 0, 0)
		require.NoError(t, err)
		require.Len(t, list.Products, 1, "query %q", q)
		assert.Equal(t, "Feijão 1kg", list.Products[0].Name)
	}
}

func TestProductFindByBarcode(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateProductRequest{
		Name: "Coca-Cola 2L", Barcodes: []string{"7891234567894"}, Price: decimal.RequireFromString("9.99"),
	})
	require.NoError(t, err)

	found, err := uc.FindByBarcode(ctx, "7891234567894")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)

	missing, err := uc.FindByBarcode(ctx, "000")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
