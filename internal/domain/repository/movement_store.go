package repository

import "github.com/kombaos/taller-api/internal/domain/entity"

// MovementStore define el puerto de persistencia para movimientos de
// inventario (DIP). El libro es append-only: no hay operación de
// actualización. List filtra por material cuando materialID no es vacío y
// ordena por CreatedAt ascendente. Create asigna ID y CreatedAt.
type MovementStore interface {
	List(materialID string) ([]entity.InventoryMovement, error)
	GetByID(id string) (*entity.InventoryMovement, error)
	Create(m entity.InventoryMovement) (*entity.InventoryMovement, error)
	Delete(id string) error
}
