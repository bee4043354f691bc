package dto

import "github.com/shopspring/decimal"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MaterialRequest cuerpo de creación/actualización de material.
type MaterialRequest struct {
	Name      string `json:"name"`
	Unit      string `json:"unit"`
	Supplier  string `json:"supplier"`
	Origin    string `json:"origin"`
	Certified bool   `json:"certified"`
	CostCents *int64 `json:"costCents"`
	Currency  string `json:"currency"`
}

// ProductRequest cuerpo de creación/actualización de producto.
type ProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"priceCents"`
	Currency    string `json:"currency"`
	Active      bool   `json:"active"`
}

// MovementCreateRequest cuerpo de registro de movimiento. Quantity es puntero
// para distinguir "ausente" de cero.
type MovementCreateRequest struct {
	MaterialID string           `json:"materialId"`
	Type       string           `json:"type"`
	Quantity   *decimal.Decimal `json:"quantity"`
	Reason     string           `json:"reason"`
}

// ThresholdUpsertRequest cuerpo de upsert de umbral de stock mínimo.
type ThresholdUpsertRequest struct {
	MinStock *decimal.Decimal `json:"minStock"`
}

// StockResponse stock derivado de un material.
type StockResponse struct {
	MaterialID string          `json:"materialId"`
	Stock      decimal.Decimal `json:"stock"`
}
