package jsonfile

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kombaos/taller-api/internal/domain"
)

type registro struct {
	ID    string `json:"id"`
	Valor int    `json:"valor"`
}

func TestListStore_ArchivoAusenteEsColeccionVacia(t *testing.T) {
	s := NewListStore[registro](filepath.Join(t.TempDir(), "no-existe.json"))

	items, err := s.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestListStore_ArchivoVacioEsColeccionVacia(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vacio.json")
	require.NoError(t, os.WriteFile(path, []byte{}, 0o644))
	s := NewListStore[registro](path)

	items, err := s.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestListStore_JSONMalformadoEsErrorDeAlmacenamiento(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roto.json")
	require.NoError(t, os.WriteFile(path, []byte("{no es un array"), 0o644))
	s := NewListStore[registro](path)

	_, err := s.ReadAll()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrStorage), "JSON malformado debe envolver ErrStorage")
}

func TestListStore_RoundTripEntreInstancias(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datos.json")
	quiere := []registro{{ID: "a", Valor: 1}, {ID: "b", Valor: 2}}

	require.NoError(t, NewListStore[registro](path).WriteAll(quiere))

	// Nueva instancia sobre el mismo archivo simula un reinicio del proceso
	items, err := NewListStore[registro](path).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, quiere, items)
}

func TestListStore_EscrituraEsPrettyPrinted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datos.json")
	s := NewListStore[registro](path)
	require.NoError(t, s.WriteAll([]registro{{ID: "a", Valor: 1}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  ", "el archivo debe estar indentado")

	var arr []registro
	require.NoError(t, json.Unmarshal(data, &arr))
	assert.Len(t, arr, 1)
}

func TestListStore_CreaDirectoriosPadre(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "dir", "datos.json")
	s := NewListStore[registro](path)

	require.NoError(t, s.WriteAll([]registro{{ID: "a"}}))
	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestListStore_EscrituraNoDejaTemporales(t *testing.T) {
	dir := t.TempDir()
	s := NewListStore[registro](filepath.Join(dir, "datos.json"))
	require.NoError(t, s.WriteAll([]registro{{ID: "a"}}))
	require.NoError(t, s.WriteAll([]registro{{ID: "a"}, {ID: "b"}}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "datos.json", entries[0].Name())
}

func TestListStore_WithLockSerializaReescrituras(t *testing.T) {
	s := NewListStore[registro](filepath.Join(t.TempDir(), "datos.json"))

	const n = 20
	done := make(chan error, n)
	for i := 0; i < n; i++ {
		go func() {
			done <- s.WithLock(func() error {
				items, err := s.ReadAll()
				if err != nil {
					return err
				}
				items = append(items, registro{ID: "x", Valor: len(items)})
				return s.WriteAll(items)
			})
		}()
	}
	for i := 0; i < n; i++ {
		require.NoError(t, <-done)
	}

	items, err := s.ReadAll()
	require.NoError(t, err)
	assert.Len(t, items, n, "ninguna escritura concurrente debe perderse")
}
