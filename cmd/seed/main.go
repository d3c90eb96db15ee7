// seed carga productos de demostración en el catálogo, para levantar un
// entorno de pruebas con datos realistas.
//
// Uso: go run ./cmd/seed
// Es idempotente: los productos cuyo código de barras ya existe se omiten.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/invorya/pos-api/internal/application/dto"
	"github.com/invorya/pos-api/internal/application/usecase"
	"github.com/invorya/pos-api/internal/infrastructure/postgres"
	"github.com/invorya/pos-api/pkg/config"
)

type seedProduct struct {
	name    string
	barcode string
	price   string
	stock   int64
}

var products = []seedProduct{
	{"Arroz 5kg", "7891234567890", "25.90", 100},
	{"Feijão 1kg", "7891234567891", "8.50", 80},
	{"Macarrão 500g", "7891234567892", "4.20", 120},
	{"Óleo de Soja 900ml", "7891234567893", "7.80", 60},
	{"Coca-Cola 2L", "7891234567894", "9.99", 50},
	{"Sabão em Pó 1kg", "7891234567895", "12.40", 40},
	{"Leite 1L", "7891234567896", "5.60", 90},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	repo := postgres.NewProductRepository(pool)
	uc := usecase.NewProductUseCase(repo)

	created, skipped := 0, 0
	for _, p := range products {
		existing, err := repo.FindByBarcode(ctx, p.barcode)
		if err != nil {
			fmt.Fprintf(os.Stderr, "buscar %s: %v\n", p.barcode, err)
			os.Exit(1)
		}
		if existing != nil {
			skipped++
			continue
		}
		price, err := decimal.NewFromString(p.price)
		if err != nil {
			fmt.Fprintf(os.Stderr, "precio de %s: %v\n", p.name, err)
			os.Exit(1)
		}
		if _, err := uc.Create(ctx, dto.CreateProductRequest{
			Name:     p.name,
			Barcodes: []string{p.barcode},
			Price:    price,
			Stock:    p.stock,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "crear %s: %v\n", p.name, err)
			os.Exit(1)
		}
		created++
	}

	fmt.Printf("Seed completado: %d creados, %d ya existentes\n", created, skipped)
}
