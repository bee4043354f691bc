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

var _ repository.ProductStore = (*ProductStore)(nil)

// ProductStore implementación del puerto ProductStore sobre products.json.
type ProductStore struct {
	store *ListStore[entity.Product]
}

// NewProductStore construye el store sobre dir/products.json.
func NewProductStore(dir string) *ProductStore {
	return &ProductStore{store: NewListStore[entity.Product](filepath.Join(dir, "products.json"))}
}

// List devuelve todos los productos ordenados por CreatedAt ascendente.
func (s *ProductStore) List() ([]entity.Product, error) {
	var out []entity.Product
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

// GetByID busca un producto por id.
func (s *ProductStore) GetByID(id string) (*entity.Product, error) {
	var out *entity.Product
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
		return fmt.Errorf("producto %s: %w", id, domain.ErrNotFound)
	})
	return out, err
}

// Create asigna id y CreatedAt y persiste el producto.
func (s *ProductStore) Create(p entity.Product) (*entity.Product, error) {
	var out *entity.Product
	err := s.store.WithLock(func() error {
		items, err := s.store.ReadAll()
		if err != nil {
			return err
		}
		p.ID = uuid.New().String()
		p.CreatedAt = time.Now().UTC()
		items = append(items, p)
		if err := s.store.WriteAll(items); err != nil {
			return err
		}
		out = &p
		return nil
	})
	return out, err
}

// Update reemplaza los campos mutables conservando id y CreatedAt.
func (s *ProductStore) Update(id string, p entity.Product) (*entity.Product, error) {
	var out *entity.Product
	err := s.store.WithLock(func() error {
		items, err := s.store.ReadAll()
		if err != nil {
			return err
		}
		for i := range items {
			if items[i].ID == id {
				p.ID = items[i].ID
				p.CreatedAt = items[i].CreatedAt
				items[i] = p
				if err := s.store.WriteAll(items); err != nil {
					return err
				}
				out = &p
				return nil
			}
		}
		return fmt.Errorf("producto %s: %w", id, domain.ErrNotFound)
	})
	return out, err
}

// Delete elimina el producto.
func (s *ProductStore) Delete(id string) error {
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
			return fmt.Errorf("producto %s: %w", id, domain.ErrNotFound)
		}
		return s.store.WriteAll(remaining)
	})
}
