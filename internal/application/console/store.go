package console

import (
	"context"
	"errors"
	"sync"

	"github.com/JakesDourado/Cadastro-FNR/internal/domain/entity"
)

// ErrStaleResponse una carga fue superada por otra más reciente y su respuesta se descartó.
var ErrStaleResponse = errors.New("respuesta obsoleta descartada")

// Keyed entidad con identificador asignado por el servidor.
type Keyed interface {
	Key() entity.ID
}

// Store colección ordenada en memoria de una pantalla. Es una caché del servidor sin
// garantía de frescura más allá de la última carga o mutación exitosa.
// Sin deduplicación; el orden es el de la respuesta del servidor más los agregados al final.
type Store[T Keyed] struct {
	mu     sync.RWMutex
	items  []T
	gen    uint64
	loaded bool
}

// NewStore crea un store vacío.
func NewStore[T Keyed]() *Store[T] {
	return &Store[T]{}
}

// Load reemplaza la colección completa con el resultado de fetch. Si fetch falla el store
// queda intacto. Cada carga toma un token de generación; si otra carga empezó después,
// la respuesta se descarta y se devuelve ErrStaleResponse.
func (s *Store[T]) Load(ctx context.Context, fetch func(context.Context) ([]T, error)) error {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	items, err := fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return ErrStaleResponse
	}
	if err != nil {
		return err
	}
	s.items = append(make([]T, 0, len(items)), items...)
	s.loaded = true
	return nil
}

// ApplyCreate agrega al final la entidad devuelta por el servidor.
func (s *Store[T]) ApplyCreate(e T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, e)
}

// ApplyUpdate reemplaza el elemento con el mismo ID. Devuelve false (sin cambios) si no existe.
func (s *Store[T]) ApplyUpdate(e T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].Key() == e.Key() {
			s.items[i] = e
			return true
		}
	}
	return false
}

// ApplyDelete quita el elemento con ese ID. Devuelve false si no existía.
func (s *Store[T]) ApplyDelete(id entity.ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].Key() == id {
			s.items = append(s.items[:i:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// Find búsqueda lineal por ID.
func (s *Store[T]) Find(id entity.ID) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.Key() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Items copia de la colección.
func (s *Store[T]) Items() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append(make([]T, 0, len(s.items)), s.items...)
}

// Len cantidad de elementos.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Loaded indica si alguna carga terminó con éxito.
func (s *Store[T]) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}
