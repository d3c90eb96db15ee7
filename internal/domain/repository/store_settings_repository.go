package repository

import (
	"context"

	"github.com/invorya/pos-api/internal/domain/entity"
)

// StoreSettingsRepository define el puerto para la identidad de la tienda.
type StoreSettingsRepository interface {
	// Get retorna la configuración; nil si aún no existe.
	Get(ctx context.Context) (*entity.StoreSettings, error)
	Upsert(ctx context.Context, settings *entity.StoreSettings) error
}
