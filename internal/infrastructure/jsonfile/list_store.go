// Package jsonfile implementa el backend de persistencia local: cada tipo de
// entidad vive en un archivo JSON (array de objetos, pretty-printed) bajo el
// directorio configurado. Las escrituras son reescrituras completas con
// rename atómico, por lo que un corte a mitad de escritura nunca deja el
// archivo principal truncado: los lectores ven el contenido viejo o el nuevo,
// nunca uno parcial.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/kombaos/taller-api/internal/domain"
)

// ListStore persiste una colección ordenada de T como array JSON en un
// archivo fijo. El mutex es por instancia: toda secuencia
// leer-modificar-escribir debe ejecutarse dentro de un único WithLock;
// componer dos llamadas bloqueadas por separado no es seguro frente a
// escritores concurrentes.
type ListStore[T any] struct {
	path string
	mu   sync.Mutex
}

// NewListStore crea el store sobre la ruta dada. No toca el disco: el archivo
// se crea en la primera escritura.
func NewListStore[T any](path string) *ListStore[T] {
	return &ListStore[T]{path: path}
}

// WithLock ejecuta fn con el lock exclusivo del store tomado. Se libera en
// toda salida, incluida la de error.
func (s *ListStore[T]) WithLock(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}

// ReadAll devuelve el contenido completo del archivo. Archivo ausente o
// vacío equivale a colección vacía; JSON malformado o fallo de E/S se
// devuelve envuelto en domain.ErrStorage y no se reintenta.
func (s *ListStore[T]) ReadAll() ([]T, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("leer %s: %v: %w", s.path, err, domain.ErrStorage)
	}
	if len(data) == 0 {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parsear %s: %v: %w", s.path, err, domain.ErrStorage)
	}
	return items, nil
}

// WriteAll serializa la colección completa y la escribe con rename atómico:
// archivo temporal en el mismo directorio y os.Rename sobre el destino.
// Crea los directorios padre si hace falta.
func (s *ListStore[T]) WriteAll(items []T) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("crear directorio %s: %v: %w", dir, err, domain.ErrStorage)
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("serializar %s: %v: %w", s.path, err, domain.ErrStorage)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("crear temporal en %s: %v: %w", dir, err, domain.ErrStorage)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("escribir %s: %v: %w", tmpName, err, domain.ErrStorage)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("cerrar %s: %v: %w", tmpName, err, domain.ErrStorage)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renombrar %s: %v: %w", s.path, err, domain.ErrStorage)
	}
	return nil
}
