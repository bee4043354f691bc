package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/kombaos/taller-api/internal/domain"
	"github.com/kombaos/taller-api/internal/domain/entity"
	"github.com/kombaos/taller-api/internal/domain/repository"
)

var _ repository.ProductStore = (*ProductStore)(nil)

// ProductStore implementación del puerto ProductStore sobre PostgreSQL (usable con pool o tx).
type ProductStore struct {
	q Querier
}

// NewProductStore construye el adaptador. Pasar pool o tx (Querier).
func NewProductStore(q Querier) *ProductStore {
	return &ProductStore{q: q}
}

const productColumns = `id, name, description, price_cents, currency, active, created_at`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var description *string
	err := row.Scan(&p.ID, &p.Name, &description, &p.PriceCents, &p.Currency, &p.Active, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	p.Description = orEmpty(description)
	return &p, nil
}

// List devuelve todos los productos ordenados por created_at ascendente.
func (s *ProductStore) List() ([]entity.Product, error) {
	rows, err := s.q.Query(context.Background(),
		`SELECT `+productColumns+` FROM products ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	items := []entity.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return items, nil
}

// GetByID obtiene un producto por id.
func (s *ProductStore) GetByID(id string) (*entity.Product, error) {
	p, err := scanProduct(s.q.QueryRow(context.Background(),
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("producto %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Create asigna id y created_at e inserta el producto.
func (s *ProductStore) Create(p entity.Product) (*entity.Product, error) {
	p.ID = uuid.New().String()
	p.CreatedAt = time.Now().UTC()
	_, err := s.q.Exec(context.Background(), `
		INSERT INTO products (id, name, description, price_cents, currency, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.Name, nullIfEmpty(p.Description), p.PriceCents, p.Currency, p.Active, p.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return &p, nil
}

// Update reemplaza los campos mutables; id y created_at no cambian.
func (s *ProductStore) Update(id string, p entity.Product) (*entity.Product, error) {
	updated, err := scanProduct(s.q.QueryRow(context.Background(), `
		UPDATE products
		SET name = $2, description = $3, price_cents = $4, currency = $5, active = $6
		WHERE id = $1
		RETURNING `+productColumns,
		id, p.Name, nullIfEmpty(p.Description), p.PriceCents, p.Currency, p.Active,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("producto %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("update product: %w", err)
	}
	return updated, nil
}

// Delete elimina el producto.
func (s *ProductStore) Delete(id string) error {
	cmd, err := s.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("producto %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
