package repository

import (
	"github.com/shopspring/decimal"

	"github.com/kombaos/taller-api/internal/domain/entity"
)

// ThresholdStore define el puerto de persistencia para umbrales de stock
// mínimo (DIP). Hay a lo sumo un umbral por material: Upsert crea o
// reemplaza y refresca UpdatedAt. List ordena por MaterialID ascendente.
type ThresholdStore interface {
	List() ([]entity.MaterialStockThreshold, error)
	GetByMaterialID(materialID string) (*entity.MaterialStockThreshold, error)
	Upsert(materialID string, minStock decimal.Decimal) (*entity.MaterialStockThreshold, error)
	Delete(materialID string) error
}
