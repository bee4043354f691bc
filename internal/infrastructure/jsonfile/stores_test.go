package jsonfile

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kombaos/taller-api/internal/domain"
	"github.com/kombaos/taller-api/internal/domain/entity"
)

func TestMaterialStore_CRUD(t *testing.T) {
	s := NewMaterialStore(t.TempDir())

	costo := int64(1500)
	created, err := s.Create(entity.Material{
		Name: "Lana merino", Unit: "kg", Supplier: "Ovejas del Sur",
		Origin: "Patagonia", Certified: true, CostCents: &costo, Currency: "EUR",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.False(t, created.CreatedAt.IsZero())

	got, err := s.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lana merino", got.Name)
	assert.Equal(t, int64(1500), *got.CostCents)

	updated, err := s.Update(created.ID, entity.Material{Name: "Lana gruesa", Unit: "kg"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID, "Update no debe cambiar el id")
	assert.Equal(t, created.CreatedAt, updated.CreatedAt, "Update no debe cambiar createdAt")
	assert.Equal(t, "Lana gruesa", updated.Name)
	assert.Nil(t, updated.CostCents, "los campos opcionales se reemplazan completos")

	require.NoError(t, s.Delete(created.ID))
	_, err = s.GetByID(created.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestMaterialStore_OperacionesSobreIDAusente(t *testing.T) {
	s := NewMaterialStore(t.TempDir())

	_, err := s.GetByID("nope")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	_, err = s.Update("nope", entity.Material{Name: "x", Unit: "kg"})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.True(t, errors.Is(s.Delete("nope"), domain.ErrNotFound))
}

func TestMaterialStore_PersisteEntreInstancias(t *testing.T) {
	dir := t.TempDir()
	created, err := NewMaterialStore(dir).Create(entity.Material{Name: "Algodón", Unit: "kg"})
	require.NoError(t, err)

	// Nueva instancia sobre el mismo directorio simula reinicio del proceso
	items, err := NewMaterialStore(dir).List()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, created.ID, items[0].ID)
	assert.Equal(t, "Algodón", items[0].Name)
	assert.True(t, created.CreatedAt.Equal(items[0].CreatedAt))
}

func TestMaterialStore_CreacionesConcurrentesNoSePierden(t *testing.T) {
	s := NewMaterialStore(t.TempDir())

	const n = 25
	type resultado struct {
		id  string
		err error
	}
	results := make(chan resultado, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m, err := s.Create(entity.Material{Name: "Hilo", Unit: "m"})
			if err != nil {
				results <- resultado{err: err}
				return
			}
			results <- resultado{id: m.ID}
		}()
	}
	wg.Wait()
	close(results)

	vistos := map[string]bool{}
	for r := range results {
		require.NoError(t, r.err)
		assert.False(t, vistos[r.id], "los ids deben ser únicos")
		vistos[r.id] = true
	}

	items, err := s.List()
	require.NoError(t, err)
	assert.Len(t, items, n)
}

func TestMovementStore_FiltroYOrden(t *testing.T) {
	s := NewMovementStore(t.TempDir())

	m1, err := s.Create(entity.InventoryMovement{MaterialID: "mat-1", Type: entity.MovementTypeIn, Quantity: decimal.NewFromInt(5)})
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	_, err = s.Create(entity.InventoryMovement{MaterialID: "mat-2", Type: entity.MovementTypeIn, Quantity: decimal.NewFromInt(3)})
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	m3, err := s.Create(entity.InventoryMovement{MaterialID: "mat-1", Type: entity.MovementTypeOut, Quantity: decimal.NewFromInt(2)})
	require.NoError(t, err)

	todos, err := s.List("")
	require.NoError(t, err)
	assert.Len(t, todos, 3)

	soloUno, err := s.List("mat-1")
	require.NoError(t, err)
	require.Len(t, soloUno, 2)
	assert.Equal(t, m1.ID, soloUno[0].ID, "orden por createdAt ascendente")
	assert.Equal(t, m3.ID, soloUno[1].ID)
}

func TestMovementStore_DeleteEsIncondicional(t *testing.T) {
	s := NewMovementStore(t.TempDir())

	in, err := s.Create(entity.InventoryMovement{MaterialID: "mat-1", Type: entity.MovementTypeIn, Quantity: decimal.NewFromInt(5)})
	require.NoError(t, err)
	// Borrar la entrada deja el stock derivado negativo implícito; el store
	// no lo revalida.
	_, err = s.Create(entity.InventoryMovement{MaterialID: "mat-1", Type: entity.MovementTypeOut, Quantity: decimal.NewFromInt(5)})
	require.NoError(t, err)

	require.NoError(t, s.Delete(in.ID))
	restantes, err := s.List("mat-1")
	require.NoError(t, err)
	assert.Len(t, restantes, 1)

	assert.True(t, errors.Is(s.Delete(in.ID), domain.ErrNotFound))
}

func TestThresholdStore_UpsertCreaYReemplaza(t *testing.T) {
	s := NewThresholdStore(t.TempDir())

	t1, err := s.Upsert("mat-1", decimal.NewFromInt(10))
	require.NoError(t, err)
	assert.True(t, t1.MinStock.Equal(decimal.NewFromInt(10)))

	time.Sleep(2 * time.Millisecond)
	t2, err := s.Upsert("mat-1", decimal.NewFromInt(4))
	require.NoError(t, err)
	assert.True(t, t2.MinStock.Equal(decimal.NewFromInt(4)))
	assert.True(t, t2.UpdatedAt.After(t1.UpdatedAt), "upsert refresca updatedAt")

	items, err := s.List()
	require.NoError(t, err)
	assert.Len(t, items, 1, "un umbral por material")
}

func TestThresholdStore_ListOrdenaPorMaterial(t *testing.T) {
	s := NewThresholdStore(t.TempDir())

	_, err := s.Upsert("mat-b", decimal.NewFromInt(1))
	require.NoError(t, err)
	_, err = s.Upsert("mat-a", decimal.NewFromInt(1))
	require.NoError(t, err)

	items, err := s.List()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "mat-a", items[0].MaterialID)
	assert.Equal(t, "mat-b", items[1].MaterialID)
}

func TestThresholdStore_DeleteAusente(t *testing.T) {
	s := NewThresholdStore(t.TempDir())
	assert.True(t, errors.Is(s.Delete("mat-x"), domain.ErrNotFound))

	_, err := s.GetByMaterialID("mat-x")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestProductStore_CRUD(t *testing.T) {
	s := NewProductStore(t.TempDir())

	created, err := s.Create(entity.Product{Name: "Bufanda", PriceCents: 4500, Currency: "EUR", Active: true})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	updated, err := s.Update(created.ID, entity.Product{Name: "Bufanda XL", PriceCents: 5500, Currency: "EUR", Active: false})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, int64(5500), updated.PriceCents)
	assert.False(t, updated.Active)

	require.NoError(t, s.Delete(created.ID))
	items, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, items)
}
