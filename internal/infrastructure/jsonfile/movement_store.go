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

var _ repository.MovementStore = (*MovementStore)(nil)

// MovementStore implementación del puerto MovementStore sobre
// inventory_movements.json.
type MovementStore struct {
	store *ListStore[entity.InventoryMovement]
}

// NewMovementStore construye el store sobre dir/inventory_movements.json.
func NewMovementStore(dir string) *MovementStore {
	return &MovementStore{store: NewListStore[entity.InventoryMovement](filepath.Join(dir, "inventory_movements.json"))}
}

// List devuelve los movimientos ordenados por CreatedAt ascendente,
// filtrando por material cuando materialID no es vacío.
func (s *MovementStore) List(materialID string) ([]entity.InventoryMovement, error) {
	var out []entity.InventoryMovement
	err := s.store.WithLock(func() error {
		items, err := s.store.ReadAll()
		if err != nil {
			return err
		}
		filtered := items[:0:0]
		for _, m := range items {
			if materialID == "" || m.MaterialID == materialID {
				filtered = append(filtered, m)
			}
		}
		sort.Slice(filtered, func(i, j int) bool { return filtered[i].CreatedAt.Before(filtered[j].CreatedAt) })
		out = filtered
		return nil
	})
	return out, err
}

// GetByID busca un movimiento por id.
func (s *MovementStore) GetByID(id string) (*entity.InventoryMovement, error) {
	var out *entity.InventoryMovement
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
		return fmt.Errorf("movimiento %s: %w", id, domain.ErrNotFound)
	})
	return out, err
}

// Create asigna id y CreatedAt y agrega el movimiento al libro.
func (s *MovementStore) Create(m entity.InventoryMovement) (*entity.InventoryMovement, error) {
	var out *entity.InventoryMovement
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

// Delete elimina el movimiento sin recalcular el stock resultante.
func (s *MovementStore) Delete(id string) error {
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
			return fmt.Errorf("movimiento %s: %w", id, domain.ErrNotFound)
		}
		return s.store.WriteAll(remaining)
	})
}
