package inventory

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/kombaos/taller-api/internal/application/usecase"
	"github.com/kombaos/taller-api/internal/domain"
	"github.com/kombaos/taller-api/internal/domain/entity"
	"github.com/kombaos/taller-api/internal/domain/repository"
)

// ThresholdUseCase configuración de stock mínimo por material.
type ThresholdUseCase struct {
	store     repository.ThresholdStore
	materials *usecase.MaterialUseCase
}

// NewThresholdUseCase construye el caso de uso.
func NewThresholdUseCase(store repository.ThresholdStore, materials *usecase.MaterialUseCase) *ThresholdUseCase {
	return &ThresholdUseCase{store: store, materials: materials}
}

// List devuelve todos los umbrales ordenados por material.
func (uc *ThresholdUseCase) List() ([]entity.MaterialStockThreshold, error) {
	return uc.store.List()
}

// GetByMaterialID obtiene el umbral configurado para un material.
func (uc *ThresholdUseCase) GetByMaterialID(materialID string) (*entity.MaterialStockThreshold, error) {
	return uc.store.GetByMaterialID(materialID)
}

// Upsert crea o reemplaza el umbral del material. El material debe existir y
// minStock no puede ser negativo.
func (uc *ThresholdUseCase) Upsert(materialID string, minStock decimal.Decimal) (*entity.MaterialStockThreshold, error) {
	if _, err := uc.materials.GetByID(materialID); err != nil {
		return nil, err
	}
	if minStock.IsNegative() {
		return nil, fmt.Errorf("minStock debe ser >= 0: %w", domain.ErrInvalidInput)
	}
	return uc.store.Upsert(materialID, minStock)
}

// Delete elimina el umbral del material.
func (uc *ThresholdUseCase) Delete(materialID string) error {
	return uc.store.Delete(materialID)
}
