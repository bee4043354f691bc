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

var _ repository.MovementStore = (*MovementStore)(nil)

// MovementStore implementación del puerto MovementStore sobre PostgreSQL (usable con pool o tx).
type MovementStore struct {
	q Querier
}

// NewMovementStore construye el adaptador. Pasar pool o tx (Querier).
func NewMovementStore(q Querier) *MovementStore {
	return &MovementStore{q: q}
}

const movementColumns = `id, material_id, type, quantity, reason, created_at`

func scanMovement(row pgx.Row) (*entity.InventoryMovement, error) {
	var m entity.InventoryMovement
	var reason *string
	err := row.Scan(&m.ID, &m.MaterialID, &m.Type, &m.Quantity, &reason, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	m.Reason = orEmpty(reason)
	return &m, nil
}

// List devuelve los movimientos ordenados por created_at ascendente,
// filtrando por material cuando materialID no es vacío.
func (s *MovementStore) List(materialID string) ([]entity.InventoryMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM inventory_movements`
	args := []any{}
	if materialID != "" {
		query += ` WHERE material_id = $1`
		args = append(args, materialID)
	}
	query += ` ORDER BY created_at ASC`

	rows, err := s.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	items := []entity.InventoryMovement{}
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		items = append(items, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	return items, nil
}

// GetByID obtiene un movimiento por id.
func (s *MovementStore) GetByID(id string) (*entity.InventoryMovement, error) {
	m, err := scanMovement(s.q.QueryRow(context.Background(),
		`SELECT `+movementColumns+` FROM inventory_movements WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("movimiento %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// Create asigna id y created_at e inserta el movimiento.
func (s *MovementStore) Create(m entity.InventoryMovement) (*entity.InventoryMovement, error) {
	m.ID = uuid.New().String()
	m.CreatedAt = time.Now().UTC()
	_, err := s.q.Exec(context.Background(), `
		INSERT INTO inventory_movements (id, material_id, type, quantity, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		m.ID, m.MaterialID, m.Type, m.Quantity, nullIfEmpty(m.Reason), m.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert movement: %w", err)
	}
	return &m, nil
}

// Delete elimina el movimiento sin recalcular el stock resultante.
func (s *MovementStore) Delete(id string) error {
	cmd, err := s.q.Exec(context.Background(), `DELETE FROM inventory_movements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movement: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("movimiento %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
