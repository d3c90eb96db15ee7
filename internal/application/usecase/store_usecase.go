package usecase

import (
	"context"
	"time"

	"github.com/invorya/pos-api/internal/application/dto"
	"github.com/invorya/pos-api/internal/domain"
	"github.com/invorya/pos-api/internal/domain/entity"
	"github.com/invorya/pos-api/internal/domain/repository"
)

// Valores por defecto de la tienda cuando aún no se ha configurado.
const (
	defaultStoreName  = "Panda Market"
	defaultStoreTaxID = "00.000.000/0001-00"
)

// StoreUseCase identidad de la tienda (nombre y CNPJ para recibos).
type StoreUseCase struct {
	repo repository.StoreSettingsRepository
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(repo repository.StoreSettingsRepository) *StoreUseCase {
	return &StoreUseCase{repo: repo}
}

// Get retorna la configuración, creándola con valores por defecto si no existe.
func (uc *StoreUseCase) Get(ctx context.Context) (*dto.StoreSettingsResponse, error) {
	settings, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = &entity.StoreSettings{
			ID:        1,
			Name:      defaultStoreName,
			TaxID:     defaultStoreTaxID,
			UpdatedAt: time.Now(),
		}
		if err := uc.repo.Upsert(ctx, settings); err != nil {
			return nil, err
		}
	}
	return &dto.StoreSettingsResponse{Name: settings.Name, TaxID: settings.TaxID}, nil
}

// Update reemplaza nombre y CNPJ de la tienda.
func (uc *StoreUseCase) Update(ctx context.Context, in dto.StoreSettingsRequest) (*dto.StoreSettingsResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	settings := &entity.StoreSettings{
		ID:        1,
		Name:      in.Name,
		TaxID:     in.TaxID,
		UpdatedAt: time.Now(),
	}
	if err := uc.repo.Upsert(ctx, settings); err != nil {
		return nil, err
	}
	return &dto.StoreSettingsResponse{Name: settings.Name, TaxID: settings.TaxID}, nil
}
