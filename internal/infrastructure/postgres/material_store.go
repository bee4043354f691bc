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

var _ repository.MaterialStore = (*MaterialStore)(nil)

// MaterialStore implementación del puerto MaterialStore sobre PostgreSQL (usable con pool o tx).
type MaterialStore struct {
	q Querier
}

// NewMaterialStore construye el adaptador. Pasar pool o tx (Querier).
func NewMaterialStore(q Querier) *MaterialStore {
	return &MaterialStore{q: q}
}

const materialColumns = `id, name, unit, supplier, origin, certified, cost_cents, currency, created_at`

func scanMaterial(row pgx.Row) (*entity.Material, error) {
	var m entity.Material
	var supplier, origin, currency *string
	err := row.Scan(&m.ID, &m.Name, &m.Unit, &supplier, &origin, &m.Certified, &m.CostCents, &currency, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	m.Supplier = orEmpty(supplier)
	m.Origin = orEmpty(origin)
	m.Currency = orEmpty(currency)
	return &m, nil
}

// List devuelve todos los materiales ordenados por created_at ascendente.
func (s *MaterialStore) List() ([]entity.Material, error) {
	rows, err := s.q.Query(context.Background(),
		`SELECT `+materialColumns+` FROM materials ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()

	items := []entity.Material{}
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		items = append(items, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	return items, nil
}

// GetByID obtiene un material por id.
func (s *MaterialStore) GetByID(id string) (*entity.Material, error) {
	m, err := scanMaterial(s.q.QueryRow(context.Background(),
		`SELECT `+materialColumns+` FROM materials WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("material %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get material: %w", err)
	}
	return m, nil
}

// Create asigna id y created_at e inserta el material.
func (s *MaterialStore) Create(m entity.Material) (*entity.Material, error) {
	m.ID = uuid.New().String()
	m.CreatedAt = time.Now().UTC()
	_, err := s.q.Exec(context.Background(), `
		INSERT INTO materials (id, name, unit, supplier, origin, certified, cost_cents, currency, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		m.ID, m.Name, m.Unit, nullIfEmpty(m.Supplier), nullIfEmpty(m.Origin),
		m.Certified, m.CostCents, nullIfEmpty(m.Currency), m.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert material: %w", err)
	}
	return &m, nil
}

// Update reemplaza los campos mutables; id y created_at no cambian.
func (s *MaterialStore) Update(id string, m entity.Material) (*entity.Material, error) {
	updated, err := scanMaterial(s.q.QueryRow(context.Background(), `
		UPDATE materials
		SET name = $2, unit = $3, supplier = $4, origin = $5, certified = $6, cost_cents = $7, currency = $8
		WHERE id = $1
		RETURNING `+materialColumns,
		id, m.Name, m.Unit, nullIfEmpty(m.Supplier), nullIfEmpty(m.Origin),
		m.Certified, m.CostCents, nullIfEmpty(m.Currency),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("material %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("update material: %w", err)
	}
	return updated, nil
}

// Delete elimina el material. Igual que el backend de archivos, no comprueba
// referencias desde movimientos ni umbrales.
func (s *MaterialStore) Delete(id string) error {
	cmd, err := s.q.Exec(context.Background(), `DELETE FROM materials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete material: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("material %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
