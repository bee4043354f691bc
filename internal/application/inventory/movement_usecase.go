// Package inventory implementa el motor del libro de inventario: registro de
// movimientos, derivación de stock sobre el historial completo y alertas de
// stock bajo contra umbrales configurados.
package inventory

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/kombaos/taller-api/internal/application/usecase"
	"github.com/kombaos/taller-api/internal/domain"
	"github.com/kombaos/taller-api/internal/domain/entity"
	"github.com/kombaos/taller-api/internal/domain/repository"
)

// MovementUseCase libro de movimientos de inventario y derivación de stock.
// Las comprobaciones entre entidades se hacen componiendo lecturas a través
// del registro de materiales, nunca tocando su estado interno; por eso nunca
// se sostienen dos locks de store a la vez.
type MovementUseCase struct {
	store     repository.MovementStore
	materials *usecase.MaterialUseCase
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(store repository.MovementStore, materials *usecase.MaterialUseCase) *MovementUseCase {
	return &MovementUseCase{store: store, materials: materials}
}

// Create registra un movimiento nuevo:
// el material debe existir; la cantidad no puede ser cero; para IN/OUT la
// cantidad debe ser estrictamente positiva (el signo lo aporta el tipo);
// ADJUST admite cualquier signo. Se rechaza con ErrInsufficientStock todo
// movimiento que dejaría el stock derivado por debajo de cero.
func (uc *MovementUseCase) Create(materialID, movType string, quantity decimal.Decimal, reason string) (*entity.InventoryMovement, error) {
	if _, err := uc.materials.GetByID(materialID); err != nil {
		return nil, err
	}

	if quantity.IsZero() {
		return nil, fmt.Errorf("la cantidad no puede ser cero: %w", domain.ErrInvalidInput)
	}
	if !entity.ValidMovementType(movType) {
		return nil, fmt.Errorf("tipo de movimiento %q: %w", movType, domain.ErrInvalidInput)
	}
	if (movType == entity.MovementTypeIn || movType == entity.MovementTypeOut) && quantity.IsNegative() {
		return nil, fmt.Errorf("la cantidad debe ser positiva para IN/OUT: %w", domain.ErrInvalidInput)
	}

	current, err := uc.GetStock(materialID)
	if err != nil {
		return nil, err
	}
	m := entity.InventoryMovement{
		MaterialID: materialID,
		Type:       movType,
		Quantity:   quantity,
		Reason:     reason,
	}
	if current.Add(m.SignedDelta()).IsNegative() {
		return nil, fmt.Errorf("material %s: %w", materialID, domain.ErrInsufficientStock)
	}

	return uc.store.Create(m)
}

// List devuelve los movimientos en orden de creación, opcionalmente
// filtrados a un material.
func (uc *MovementUseCase) List(materialID string) ([]entity.InventoryMovement, error) {
	return uc.store.List(materialID)
}

// GetByID obtiene un movimiento por id.
func (uc *MovementUseCase) GetByID(id string) (*entity.InventoryMovement, error) {
	return uc.store.GetByID(id)
}

// Delete elimina el movimiento incondicionalmente, sin revalidar que el
// stock restante quede no negativo; ver las notas de diseño.
func (uc *MovementUseCase) Delete(id string) error {
	return uc.store.Delete(id)
}

// GetStock deriva el stock actual del material plegando su historial
// completo en orden de creación: IN suma, OUT resta, ADJUST aplica su valor
// firmado. Nunca se materializa ni cachea; O(historial) por llamada,
// aceptable a escala de taller.
func (uc *MovementUseCase) GetStock(materialID string) (decimal.Decimal, error) {
	if _, err := uc.materials.GetByID(materialID); err != nil {
		return decimal.Zero, err
	}
	movements, err := uc.store.List(materialID)
	if err != nil {
		return decimal.Zero, err
	}
	stock := decimal.Zero
	for _, m := range movements {
		stock = stock.Add(m.SignedDelta())
	}
	return stock, nil
}
