package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementTypeIn     = "IN"     // entrada
	MovementTypeOut    = "OUT"    // salida
	MovementTypeAdjust = "ADJUST" // ajuste con signo propio
)

// ValidMovementType indica si el tipo es uno de los soportados.
func ValidMovementType(t string) bool {
	return t == MovementTypeIn || t == MovementTypeOut || t == MovementTypeAdjust
}

// InventoryMovement es una entrada inmutable del libro de inventario.
// La cantidad se almacena tal como llegó: el signo lo aporta el tipo
// (IN suma, OUT resta) salvo en ADJUST, donde la cantidad ya viene firmada.
// No existe actualización; solo alta y baja.
type InventoryMovement struct {
	ID         string          `json:"id"`
	MaterialID string          `json:"materialId"`
	Type       string          `json:"type"` // IN, OUT, ADJUST
	Quantity   decimal.Decimal `json:"quantity"`
	Reason     string          `json:"reason,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// SignedDelta devuelve el efecto del movimiento sobre el stock.
func (m InventoryMovement) SignedDelta() decimal.Decimal {
	if m.Type == MovementTypeOut {
		return m.Quantity.Neg()
	}
	return m.Quantity
}
