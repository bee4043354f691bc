package repository

import "github.com/kombaos/taller-api/internal/domain/entity"

// ProductStore define el puerto de persistencia para el catálogo (DIP).
type ProductStore interface {
	List() ([]entity.Product, error)
	GetByID(id string) (*entity.Product, error)
	Create(p entity.Product) (*entity.Product, error)
	Update(id string, p entity.Product) (*entity.Product, error)
	Delete(id string) error
}
