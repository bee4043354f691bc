package inventory_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kombaos/taller-api/internal/domain"
	"github.com/kombaos/taller-api/internal/domain/entity"
)

func TestUpsertThreshold_Validaciones(t *testing.T) {
	b := nuevoBanco(t)
	m := b.crearMaterial(t, "Lana")

	_, err := b.thresholds.Upsert("no-existe", dec("10"))
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	_, err = b.thresholds.Upsert(m.ID, dec("-1"))
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	th, err := b.thresholds.Upsert(m.ID, dec("10"))
	require.NoError(t, err)
	assert.Equal(t, m.ID, th.MaterialID)
	assert.True(t, th.MinStock.Equal(dec("10")))
}

// Escenario de referencia: Lana con IN 5.5 y umbral 10 genera alerta; un
// segundo IN de 6 la retira.
func TestLowStockAlerts_EscenarioLana(t *testing.T) {
	b := nuevoBanco(t)
	lana := b.crearMaterial(t, "Lana")

	_, err := b.movements.Create(lana.ID, entity.MovementTypeIn, dec("5.5"), "")
	require.NoError(t, err)
	_, err = b.thresholds.Upsert(lana.ID, dec("10"))
	require.NoError(t, err)

	alerts, err := b.alerts.LowStockAlerts()
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, lana.ID, alerts[0].MaterialID)
	assert.Equal(t, "Lana", alerts[0].Name)
	assert.Equal(t, "kg", alerts[0].Unit)
	assert.True(t, alerts[0].Stock.Equal(dec("5.5")))
	assert.True(t, alerts[0].MinStock.Equal(dec("10")))

	_, err = b.movements.Create(lana.ID, entity.MovementTypeIn, dec("6"), "")
	require.NoError(t, err)

	alerts, err = b.alerts.LowStockAlerts()
	require.NoError(t, err)
	assert.Empty(t, alerts, "stock 11.5 >= umbral 10: sin alerta")
}

func TestLowStockAlerts_IgnoraUmbralCero(t *testing.T) {
	b := nuevoBanco(t)
	m := b.crearMaterial(t, "Tinte")

	_, err := b.thresholds.Upsert(m.ID, dec("0"))
	require.NoError(t, err)

	alerts, err := b.alerts.LowStockAlerts()
	require.NoError(t, err)
	assert.Empty(t, alerts, "minStock 0 nunca alerta, aun con stock 0")
}

func TestLowStockAlerts_OrdenPorMaterialID(t *testing.T) {
	b := nuevoBanco(t)
	m1 := b.crearMaterial(t, "Lana")
	m2 := b.crearMaterial(t, "Algodon")

	_, err := b.thresholds.Upsert(m1.ID, dec("5"))
	require.NoError(t, err)
	_, err = b.thresholds.Upsert(m2.ID, dec("5"))
	require.NoError(t, err)

	alerts, err := b.alerts.LowStockAlerts()
	require.NoError(t, err)
	require.Len(t, alerts, 2)
	assert.Less(t, alerts[0].MaterialID, alerts[1].MaterialID)
}

// Un umbral que apunta a un material borrado rompe el listado completo en
// lugar de saltarse la entrada. Comportamiento conservado a propósito; ver
// DESIGN.md.
func TestLowStockAlerts_UmbralColganteFallaDuro(t *testing.T) {
	b := nuevoBanco(t)
	m := b.crearMaterial(t, "Lana")

	_, err := b.thresholds.Upsert(m.ID, dec("5"))
	require.NoError(t, err)
	require.NoError(t, b.materials.Delete(m.ID))

	_, err = b.alerts.LowStockAlerts()
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestThreshold_GetYDelete(t *testing.T) {
	b := nuevoBanco(t)
	m := b.crearMaterial(t, "Lana")

	_, err := b.thresholds.GetByMaterialID(m.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	_, err = b.thresholds.Upsert(m.ID, dec("3"))
	require.NoError(t, err)

	th, err := b.thresholds.GetByMaterialID(m.ID)
	require.NoError(t, err)
	assert.True(t, th.MinStock.Equal(dec("3")))

	require.NoError(t, b.thresholds.Delete(m.ID))
	assert.True(t, errors.Is(b.thresholds.Delete(m.ID), domain.ErrNotFound))
}
