package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaterialStockThreshold es el stock mínimo configurado para un material.
// La clave es MaterialID (un umbral por material, semántica upsert);
// UpdatedAt se refresca en cada upsert.
type MaterialStockThreshold struct {
	MaterialID string          `json:"materialId"`
	MinStock   decimal.Decimal `json:"minStock"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}
