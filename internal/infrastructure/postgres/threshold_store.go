package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/kombaos/taller-api/internal/domain"
	"github.com/kombaos/taller-api/internal/domain/entity"
	"github.com/kombaos/taller-api/internal/domain/repository"
)

var _ repository.ThresholdStore = (*ThresholdStore)(nil)

// ThresholdStore implementación del puerto ThresholdStore sobre PostgreSQL (usable con pool o tx).
type ThresholdStore struct {
	q Querier
}

// NewThresholdStore construye el adaptador. Pasar pool o tx (Querier).
func NewThresholdStore(q Querier) *ThresholdStore {
	return &ThresholdStore{q: q}
}

// List devuelve los umbrales ordenados por material_id ascendente.
func (s *ThresholdStore) List() ([]entity.MaterialStockThreshold, error) {
	rows, err := s.q.Query(context.Background(),
		`SELECT material_id, min_stock, updated_at FROM material_stock_thresholds ORDER BY material_id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list thresholds: %w", err)
	}
	defer rows.Close()

	items := []entity.MaterialStockThreshold{}
	for rows.Next() {
		var t entity.MaterialStockThreshold
		if err := rows.Scan(&t.MaterialID, &t.MinStock, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan threshold: %w", err)
		}
		items = append(items, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list thresholds: %w", err)
	}
	return items, nil
}

// GetByMaterialID obtiene el umbral configurado para un material.
func (s *ThresholdStore) GetByMaterialID(materialID string) (*entity.MaterialStockThreshold, error) {
	var t entity.MaterialStockThreshold
	err := s.q.QueryRow(context.Background(),
		`SELECT material_id, min_stock, updated_at FROM material_stock_thresholds WHERE material_id = $1`,
		materialID,
	).Scan(&t.MaterialID, &t.MinStock, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("umbral de material %s: %w", materialID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get threshold: %w", err)
	}
	return &t, nil
}

// Upsert crea o reemplaza el umbral del material (INSERT ... ON CONFLICT) y
// refresca updated_at.
func (s *ThresholdStore) Upsert(materialID string, minStock decimal.Decimal) (*entity.MaterialStockThreshold, error) {
	t := entity.MaterialStockThreshold{
		MaterialID: materialID,
		MinStock:   minStock,
		UpdatedAt:  time.Now().UTC(),
	}
	_, err := s.q.Exec(context.Background(), `
		INSERT INTO material_stock_thresholds (material_id, min_stock, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (material_id) DO UPDATE SET min_stock = EXCLUDED.min_stock, updated_at = EXCLUDED.updated_at`,
		t.MaterialID, t.MinStock, t.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert threshold: %w", err)
	}
	return &t, nil
}

// Delete elimina el umbral del material.
func (s *ThresholdStore) Delete(materialID string) error {
	cmd, err := s.q.Exec(context.Background(),
		`DELETE FROM material_stock_thresholds WHERE material_id = $1`, materialID)
	if err != nil {
		return fmt.Errorf("delete threshold: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("umbral de material %s: %w", materialID, domain.ErrNotFound)
	}
	return nil
}
