package usecase

import (
	"fmt"
	"strings"

	"github.com/kombaos/taller-api/internal/domain"
	"github.com/kombaos/taller-api/internal/domain/entity"
	"github.com/kombaos/taller-api/internal/domain/repository"
)

// MaterialFilter criterios opcionales de búsqueda. Los valores en blanco se
// ignoran; los presentes se combinan con AND.
type MaterialFilter struct {
	Name      string // substring sobre el nombre, sin distinguir mayúsculas
	Supplier  string // igualdad sin distinguir mayúsculas
	Origin    string // igualdad sin distinguir mayúsculas
	Certified *bool  // igualdad exacta
}

// MaterialUseCase registro de materias primas: CRUD y búsqueda filtrada.
type MaterialUseCase struct {
	store repository.MaterialStore
}

// NewMaterialUseCase construye el caso de uso.
func NewMaterialUseCase(store repository.MaterialStore) *MaterialUseCase {
	return &MaterialUseCase{store: store}
}

// List devuelve los materiales que cumplen el filtro, ordenados por fecha de
// creación ascendente.
func (uc *MaterialUseCase) List(f MaterialFilter) ([]entity.Material, error) {
	items, err := uc.store.List()
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(f.Name)
	supplier := strings.TrimSpace(f.Supplier)
	origin := strings.TrimSpace(f.Origin)

	out := items[:0:0]
	for _, m := range items {
		if name != "" && !strings.Contains(strings.ToLower(m.Name), strings.ToLower(name)) {
			continue
		}
		if supplier != "" && !strings.EqualFold(m.Supplier, supplier) {
			continue
		}
		if origin != "" && !strings.EqualFold(m.Origin, origin) {
			continue
		}
		if f.Certified != nil && m.Certified != *f.Certified {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

// GetByID obtiene un material por id.
func (uc *MaterialUseCase) GetByID(id string) (*entity.Material, error) {
	return uc.store.GetByID(id)
}

// Create valida los campos y persiste un nuevo material.
func (uc *MaterialUseCase) Create(m entity.Material) (*entity.Material, error) {
	if err := validateMaterial(m); err != nil {
		return nil, err
	}
	return uc.store.Create(m)
}

// Update valida y reemplaza todos los campos mutables del material.
func (uc *MaterialUseCase) Update(id string, m entity.Material) (*entity.Material, error) {
	if err := validateMaterial(m); err != nil {
		return nil, err
	}
	return uc.store.Update(id, m)
}

// Delete elimina el material. No comprueba movimientos ni umbrales que lo
// referencien; ver las notas de diseño sobre referencias colgantes.
func (uc *MaterialUseCase) Delete(id string) error {
	return uc.store.Delete(id)
}

func validateMaterial(m entity.Material) error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("name es requerido: %w", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(m.Unit) == "" {
		return fmt.Errorf("unit es requerido: %w", domain.ErrInvalidInput)
	}
	if m.CostCents != nil && *m.CostCents < 0 {
		return fmt.Errorf("costCents no puede ser negativo: %w", domain.ErrInvalidInput)
	}
	if m.Currency != "" && len(m.Currency) != 3 {
		return fmt.Errorf("currency debe ser un código de 3 letras: %w", domain.ErrInvalidInput)
	}
	return nil
}
