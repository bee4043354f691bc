package repository

import "github.com/kombaos/taller-api/internal/domain/entity"

// MaterialStore define el puerto de persistencia para materiales (DIP).
// Create asigna ID y CreatedAt; Update los conserva y reemplaza el resto de
// campos. List devuelve los materiales ordenados por CreatedAt ascendente.
// GetByID, Update y Delete devuelven domain.ErrNotFound si el id no existe.
type MaterialStore interface {
	List() ([]entity.Material, error)
	GetByID(id string) (*entity.Material, error)
	Create(m entity.Material) (*entity.Material, error)
	Update(id string, m entity.Material) (*entity.Material, error)
	Delete(id string) error
}
