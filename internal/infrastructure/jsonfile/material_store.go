package jsonfile

import (
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/kombaos/taller-api/internal/domain"
	"github.com/kombaos/taller-api/internal/domain/entity"
	"github.com/kombaos/taller-api/internal/domain/repository"
)

var _ repository.MaterialStore = (*MaterialStore)(nil)

// MaterialStore implementación del puerto MaterialStore sobre materials.json.
type MaterialStore struct {
	store *ListStore[entity.Material]
}

// NewMaterialStore construye el store sobre dir/materials.json.
func NewMaterialStore(dir string) *MaterialStore {
	return &MaterialStore{store: NewListStore[entity.Material](filepath.Join(dir, "materials.json"))}
}

// List devuelve todos los materiales ordenados por CreatedAt ascendente.
func (s *MaterialStore) List() ([]entity.Material, error) {
	var out []entity.Material
	err := s.store.WithLock(func() error {
		items, err := s.store.ReadAll()
		if err != nil {
			return err
		}
		sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.Before(items[j].CreatedAt) })
		out = items
		return nil
	})
	return out, err
}

// GetByID busca un material por id.
func (s *MaterialStore) GetByID(id string) (*entity.Material, error) {
	var out *entity.Material
	err := s.store.WithLock(func() error {
		items, err := s.store.ReadAll()
		if err != nil {
			return err
		}
		for i := range items {
			if items[i].ID == id {
				out = &items[i]
				return nil
			}
		}
		return fmt.Errorf("material %s: %w", id, domain.ErrNotFound)
	})
	return out, err
}

// Create asigna id y CreatedAt y persiste el material.
func (s *MaterialStore) Create(m entity.Material) (*entity.Material, error) {
	var out *entity.Material
	err := s.store.WithLock(func() error {
		items, err := s.store.ReadAll()
		if err != nil {
			return err
		}
		m.ID = uuid.New().String()
		m.CreatedAt = time.Now().UTC()
		items = append(items, m)
		if err := s.store.WriteAll(items); err != nil {
			return err
		}
		out = &m
		return nil
	})
	return out, err
}

// Update reemplaza los campos mutables conservando id y CreatedAt.
func (s *MaterialStore) Update(id string, m entity.Material) (*entity.Material, error) {
	var out *entity.Material
	err := s.store.WithLock(func() error {
		items, err := s.store.ReadAll()
		if err != nil {
			return err
		}
		for i := range items {
			if items[i].ID == id {
				m.ID = items[i].ID
				m.CreatedAt = items[i].CreatedAt
				items[i] = m
				if err := s.store.WriteAll(items); err != nil {
					return err
				}
				out = &m
				return nil
			}
		}
		return fmt.Errorf("material %s: %w", id, domain.ErrNotFound)
	})
	return out, err
}

// Delete elimina el material. No comprueba referencias desde movimientos ni
// umbrales: un material borrado puede dejar entradas colgantes.
func (s *MaterialStore) Delete(id string) error {
	return s.store.WithLock(func() error {
		items, err := s.store.ReadAll()
		if err != nil {
			return err
		}
		remaining := items[:0:0]
		for _, it := range items {
			if it.ID != id {
				remaining = append(remaining, it)
			}
		}
		if len(remaining) == len(items) {
			return fmt.Errorf("material %s: %w", id, domain.ErrNotFound)
		}
		return s.store.WriteAll(remaining)
	})
}
