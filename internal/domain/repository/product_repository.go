package repository

import (
	"context"

	"github.com/invorya/pos-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Stock solo se escribe vía UpdateStock, desde el stock ledger dentro de
// su transacción.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetByIDForUpdate bloquea la fila del producto (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Product, error)
	FindByBarcode(ctx context.Context, code string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	UpdateStock(ctx context.Context, productID string, stock int64) error
	// List busca por nombre normalizado (q vacío = todos), orden alfabético.
	List(ctx context.Context, normalizedQuery string, limit, offset int) ([]*entity.Product, error)
	Delete(ctx context.Context, id string) error
}
