package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/invorya/pos-api/internal/domain"
	"github.com/invorya/pos-api/internal/domain/entity"
	"github.com/invorya/pos-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto y sus códigos de barras en una sola sentencia
// (CTE): si un código viola el UNIQUE global no queda producto a medias.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	ids, codes := barcodeArrays(product.Barcodes)
	query := `
		WITH p AS (
			INSERT INTO products (id, name, name_normalized, price, stock, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id
		)
		INSERT INTO barcodes (id, product_id, code)
		SELECT b.id, p.id, b.code
		FROM p, unnest($8::text[], $9::text[]) AS b(id, code)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.NameNormalized, product.Price, product.Stock,
		product.CreatedAt, product.UpdatedAt, ids, codes,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID con sus códigos.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return r.get(ctx, id, false)
}

// GetByIDForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE).
// Usar solo dentro de una transacción: es el lock del stock ledger.
func (r *ProductRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.get(ctx, id, true)
}

func (r *ProductRepo) get(ctx context.Context, id string, forUpdate bool) (*entity.Product, error) {
	query := `
		SELECT id, name, name_normalized, price, stock, created_at, updated_at
		FROM products WHERE id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.NameNormalized, &p.Price, &p.Stock, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	if err := r.loadBarcodes(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// FindByBarcode obtiene el producto dueño de un código de barras.
func (r *ProductRepo) FindByBarcode(ctx context.Context, code string) (*entity.Product, error) {
	query := `
		SELECT p.id, p.name, p.name_normalized, p.price, p.stock, p.created_at, p.updated_at
		FROM products p
		JOIN barcodes b ON b.product_id = p.id
		WHERE b.code = $1`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, code).Scan(
		&p.ID, &p.Name, &p.NameNormalized, &p.Price, &p.Stock, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find product by barcode: %w", err)
	}
	if err := r.loadBarcodes(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Update actualiza el producto y reemplaza sus códigos en una sola sentencia.
// No toca stock: eso es del stock ledger (UpdateStock).
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	ids, codes := barcodeArrays(product.Barcodes)
	query := `
		WITH u AS (
			UPDATE products SET name = $2, name_normalized = $3, price = $4, updated_at = $5
			WHERE id = $1
			RETURNING id
		), d AS (
			DELETE FROM barcodes WHERE product_id IN (SELECT id FROM u)
		)
		INSERT INTO barcodes (id, product_id, code)
		SELECT b.id, u.id, b.code
		FROM u, unnest($6::text[], $7::text[]) AS b(id, code)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.NameNormalized, product.Price, product.UpdatedAt,
		ids, codes,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateStock escribe el stock absoluto del producto (solo desde el stock
// ledger, con la fila ya bloqueada en la misma transacción).
func (r *ProductRepo) UpdateStock(ctx context.Context, productID string, stock int64) error {
	_, err := r.q.Exec(ctx,
		`UPDATE products SET stock = $2, updated_at = now() WHERE id = $1`,
		productID, stock,
	)
	if err != nil {
		return fmt.Errorf("update product stock: %w", err)
	}
	return nil
}

// List lista productos con búsqueda opcional por nombre normalizado, orden alfabético.
func (r *ProductRepo) List(ctx context.Context, normalizedQuery string, limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT id, name, name_normalized, price, stock, created_at, updated_at
		FROM products`
	args := []any{}
	if normalizedQuery != "" {
		query += ` WHERE name_normalized LIKE '%' || $1 || '%'`
		args = append(args, normalizedQuery)
	}
	query += fmt.Sprintf(" ORDER BY name ASC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.NameNormalized, &p.Price, &p.Stock, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, p := range list {
		if err := r.loadBarcodes(ctx, p); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// Delete elimina un producto por ID (los códigos caen por FK ON DELETE CASCADE).
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (r *ProductRepo) loadBarcodes(ctx context.Context, p *entity.Product) error {
	rows, err := r.q.Query(ctx,
		`SELECT id, product_id, code FROM barcodes WHERE product_id = $1 ORDER BY code`, p.ID)
	if err != nil {
		return fmt.Errorf("list barcodes: %w", err)
	}
	defer rows.Close()
	p.Barcodes = nil
	for rows.Next() {
		var b entity.Barcode
		if err := rows.Scan(&b.ID, &b.ProductID, &b.Code); err != nil {
			return fmt.Errorf("scan barcode: %w", err)
		}
		p.Barcodes = append(p.Barcodes, b)
	}
	return rows.Err()
}

func barcodeArrays(barcodes []entity.Barcode) (ids, codes []string) {
	ids = make([]string, 0, len(barcodes))
	codes = make([]string, 0, len(barcodes))
	for _, b := range barcodes {
		ids = append(ids, b.ID)
		codes = append(codes, b.Code)
	}
	return ids, codes
}
