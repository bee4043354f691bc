// Package storage elige el backend de persistencia al arrancar el proceso:
// archivos JSON locales o PostgreSQL. Construcción explícita según la
// configuración, sin cambio de backend en caliente.
package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kombaos/taller-api/internal/domain/repository"
	"github.com/kombaos/taller-api/internal/infrastructure/jsonfile"
	"github.com/kombaos/taller-api/internal/infrastructure/postgres"
	"github.com/kombaos/taller-api/pkg/config"
)

// Stores agrupa una implementación de cada puerto de persistencia.
// Exactamente un backend está activo durante la vida del proceso.
type Stores struct {
	Materials  repository.MaterialStore
	Movements  repository.MovementStore
	Thresholds repository.ThresholdStore
	Products   repository.ProductStore

	pool *pgxpool.Pool // nil en backend local
}

// New construye los stores del backend configurado. Para el backend cloud
// abre el pool de PostgreSQL y aplica el DDL inicial.
func New(ctx context.Context, cfg *config.Config) (*Stores, error) {
	switch cfg.Storage.Backend {
	case config.BackendLocal:
		dir := cfg.Storage.LocalDir
		return &Stores{
			Materials:  jsonfile.NewMaterialStore(dir),
			Movements:  jsonfile.NewMovementStore(dir),
			Thresholds: jsonfile.NewThresholdStore(dir),
			Products:   jsonfile.NewProductStore(dir),
		}, nil

	case config.BackendCloud:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return &Stores{
			Materials:  postgres.NewMaterialStore(pool),
			Movements:  postgres.NewMovementStore(pool),
			Thresholds: postgres.NewThresholdStore(pool),
			Products:   postgres.NewProductStore(pool),
			pool:       pool,
		}, nil

	default:
		return nil, fmt.Errorf("backend de almacenamiento desconocido: %q", cfg.Storage.Backend)
	}
}

// Close libera los recursos del backend (pool de conexiones en cloud).
func (s *Stores) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}
