package jsonfile

import (
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kombaos/taller-api/internal/domain"
	"github.com/kombaos/taller-api/internal/domain/entity"
	"github.com/kombaos/taller-api/internal/domain/repository"
)

var _ repository.ThresholdStore = (*ThresholdStore)(nil)

// ThresholdStore implementación del puerto ThresholdStore sobre
// material_stock_thresholds.json.
type ThresholdStore struct {
	store *ListStore[entity.MaterialStockThreshold]
}

// NewThresholdStore construye el store sobre dir/material_stock_thresholds.json.
func NewThresholdStore(dir string) *ThresholdStore {
	return &ThresholdStore{store: NewListStore[entity.MaterialStockThreshold](filepath.Join(dir, "material_stock_thresholds.json"))}
}

// List devuelve los umbrales ordenados por MaterialID ascendente.
func (s *ThresholdStore) List() ([]entity.MaterialStockThreshold, error) {
	var out []entity.MaterialStockThreshold
	err := s.store.WithLock(func() error {
		items, err := s.store.ReadAll()
		if err != nil {
			return err
		}
		sort.Slice(items, func(i, j int) bool { return items[i].MaterialID < items[j].MaterialID })
		out = items
		return nil
	})
	return out, err
}

// GetByMaterialID busca el umbral configurado para un material.
func (s *ThresholdStore) GetByMaterialID(materialID string) (*entity.MaterialStockThreshold, error) {
	var out *entity.MaterialStockThreshold
	err := s.store.WithLock(func() error {
		items, err := s.store.ReadAll()
		if err != nil {
			return err
		}
		for i := range items {
			if items[i].MaterialID == materialID {
				out = &items[i]
				return nil
			}
		}
		return fmt.Errorf("umbral de material %s: %w", materialID, domain.ErrNotFound)
	})
	return out, err
}

// Upsert crea o reemplaza el umbral del material y refresca UpdatedAt.
func (s *ThresholdStore) Upsert(materialID string, minStock decimal.Decimal) (*entity.MaterialStockThreshold, error) {
	var out *entity.MaterialStockThreshold
	err := s.store.WithLock(func() error {
		items, err := s.store.ReadAll()
		if err != nil {
			return err
		}
		t := entity.MaterialStockThreshold{
			MaterialID: materialID,
			MinStock:   minStock,
			UpdatedAt:  time.Now().UTC(),
		}
		replaced := false
		for i := range items {
			if items[i].MaterialID == materialID {
				items[i] = t
				replaced = true
				break
			}
		}
		if !replaced {
			items = append(items, t)
		}
		if err := s.store.WriteAll(items); err != nil {
			return err
		}
		out = &t
		return nil
	})
	return out, err
}

// Delete elimina el umbral del material.
func (s *ThresholdStore) Delete(materialID string) error {
	return s.store.WithLock(func() error {
		items, err := s.store.ReadAll()
		if err != nil {
			return err
		}
		remaining := items[:0:0]
		for _, it := range items {
			if it.MaterialID != materialID {
				remaining = append(remaining, it)
			}
		}
		if len(remaining) == len(items) {
			return fmt.Errorf("umbral de material %s: %w", materialID, domain.ErrNotFound)
		}
		return s.store.WriteAll(remaining)
	})
}
