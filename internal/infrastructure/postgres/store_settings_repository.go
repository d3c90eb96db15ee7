package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/invorya/pos-api/internal/domain/entity"
	"github.com/invorya/pos-api/internal/domain/repository"
)

var _ repository.StoreSettingsRepository = (*StoreSettingsRepo)(nil)

// StoreSettingsRepo identidad de la tienda (fila única, id = 1).
type StoreSettingsRepo struct {
	q Querier
}

// NewStoreSettingsRepository construye el adaptador.
func NewStoreSettingsRepository(q Querier) *StoreSettingsRepo {
	return &StoreSettingsRepo{q: q}
}

// Get retorna la configuración; nil si aún no existe.
func (r *StoreSettingsRepo) Get(ctx context.Context) (*entity.StoreSettings, error) {
	var s entity.StoreSettings
	err := r.q.QueryRow(ctx,
		`SELECT id, name, tax_id, updated_at FROM store_settings WHERE id = 1`,
	).Scan(&s.ID, &s.Name, &s.TaxID, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store settings: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza la fila única.
func (r *StoreSettingsRepo) Upsert(ctx context.Context, settings *entity.StoreSettings) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO store_settings (id, name, tax_id, updated_at)
		 VALUES (1, $1, $2, $3)
		 ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, tax_id = EXCLUDED.tax_id, updated_at = EXCLUDED.updated_at`,
		settings.Name, settings.TaxID, settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert store settings: %w", err)
	}
	return nil
}
