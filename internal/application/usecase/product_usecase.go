package usecase

import (
	"fmt"
	"strings"

	"github.com/kombaos/taller-api/internal/domain"
	"github.com/kombaos/taller-api/internal/domain/entity"
	"github.com/kombaos/taller-api/internal/domain/repository"
)

// ProductUseCase CRUD del catálogo de productos terminados.
type ProductUseCase struct {
	store repository.ProductStore
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(store repository.ProductStore) *ProductUseCase {
	return &ProductUseCase{store: store}
}

// List devuelve el catálogo ordenado por fecha de creación ascendente.
func (uc *ProductUseCase) List() ([]entity.Product, error) {
	return uc.store.List()
}

// GetByID obtiene un producto por id.
func (uc *ProductUseCase) GetByID(id string) (*entity.Product, error) {
	return uc.store.GetByID(id)
}

// Create valida los campos y persiste un nuevo producto.
func (uc *ProductUseCase) Create(p entity.Product) (*entity.Product, error) {
	if err := validateProduct(p); err != nil {
		return nil, err
	}
	return uc.store.Create(p)
}

// Update valida y reemplaza los campos mutables del producto.
func (uc *ProductUseCase) Update(id string, p entity.Product) (*entity.Product, error) {
	if err := validateProduct(p); err != nil {
		return nil, err
	}
	return uc.store.Update(id, p)
}

// Delete elimina el producto.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.store.Delete(id)
}

func validateProduct(p entity.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("name es requerido: %w", domain.ErrInvalidInput)
	}
	if p.PriceCents < 0 {
		return fmt.Errorf("priceCents no puede ser negativo: %w", domain.ErrInvalidInput)
	}
	if len(p.Currency) != 3 {
		return fmt.Errorf("currency debe ser un código de 3 letras: %w", domain.ErrInvalidInput)
	}
	return nil
}
