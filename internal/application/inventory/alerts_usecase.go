package inventory

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/kombaos/taller-api/internal/application/usecase"
	"github.com/kombaos/taller-api/internal/domain/repository"
)

// LowStockAlert material cuyo stock derivado está por debajo de su mínimo.
type LowStockAlert struct {
	MaterialID string          `json:"materialId"`
	Name       string          `json:"name"`
	Unit       string          `json:"unit"`
	Stock      decimal.Decimal `json:"stock"`
	MinStock   decimal.Decimal `json:"minStock"`
}

// AlertsUseCase deriva alertas de stock bajo componiendo el registro de
// materiales, el motor de stock y los umbrales. Cómputo pull sin caché:
// se recalcula completo en cada llamada.
type AlertsUseCase struct {
	materials  *usecase.MaterialUseCase
	movements  *MovementUseCase
	thresholds repository.ThresholdStore
}

// NewAlertsUseCase construye el caso de uso.
func NewAlertsUseCase(
	materials *usecase.MaterialUseCase,
	movements *MovementUseCase,
	thresholds repository.ThresholdStore,
) *AlertsUseCase {
	return &AlertsUseCase{materials: materials, movements: movements, thresholds: thresholds}
}

// LowStockAlerts recorre los umbrales con minStock > 0 y emite una alerta por
// cada material cuyo stock actual quede por debajo del mínimo, ordenadas por
// materialId ascendente. Un umbral que referencia un material borrado hace
// fallar el listado completo (referencia colgante, comportamiento conservado;
// ver notas de diseño).
func (uc *AlertsUseCase) LowStockAlerts() ([]LowStockAlert, error) {
	thresholds, err := uc.thresholds.List()
	if err != nil {
		return nil, err
	}

	alerts := []LowStockAlert{}
	for _, t := range thresholds {
		if !t.MinStock.IsPositive() {
			continue
		}
		material, err := uc.materials.GetByID(t.MaterialID)
		if err != nil {
			return nil, err
		}
		stock, err := uc.movements.GetStock(t.MaterialID)
		if err != nil {
			return nil, err
		}
		if stock.LessThan(t.MinStock) {
			alerts = append(alerts, LowStockAlert{
				MaterialID: material.ID,
				Name:       material.Name,
				Unit:       material.Unit,
				Stock:      stock,
				MinStock:   t.MinStock,
			})
		}
	}
	sort.Slice(alerts, func(i, j int) bool { return alerts[i].MaterialID < alerts[j].MaterialID })
	return alerts, nil
}
