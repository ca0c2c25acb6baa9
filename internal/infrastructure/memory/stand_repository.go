// Package memory implementa los puertos de persistencia en memoria del proceso.
// Es el driver por defecto (STORAGE_DRIVER=memory) y el que usan los tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/Stand-api/internal/domain"
	"github.com/jhoicas/Stand-api/internal/domain/repository"
	"github.com/jhoicas/Stand-api/internal/domain/stand"
)

var _ repository.StandRepository = (*StandRepo)(nil)

// StandRepo guarda los puestos en un mapa protegido por mutex.
type StandRepo struct {
	mu     sync.Mutex
	stands map[string]*stand.Stand
}

// NewStandRepository construye el repositorio vacío.
func NewStandRepository() *StandRepo {
	return &StandRepo{stands: make(map[string]*stand.Stand)}
}

// Create guarda una copia del puesto.
func (r *StandRepo) Create(_ context.Context, st *stand.Stand) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.stands[st.Name()]; ok {
		return domain.ErrDuplicate
	}
	r.stands[st.Name()] = st.Clone()
	return nil
}

// GetByName devuelve una copia; nil, nil si no existe.
func (r *StandRepo) GetByName(_ context.Context, name string) (*stand.Stand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.stands[name]
	if !ok {
		return nil, nil
	}
	return st.Clone(), nil
}

// List devuelve copias ordenadas por nombre.
func (r *StandRepo) List(_ context.Context) ([]*stand.Stand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]*stand.Stand, 0, len(r.stands))
	for _, st := range r.stands {
		list = append(list, st.Clone())
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list, nil
}

// Update aplica fn sobre una copia y la reemplaza solo si fn no falla.
func (r *StandRepo) Update(_ context.Context, name string, fn func(st *stand.Stand) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.stands[name]
	if !ok {
		return domain.ErrNotFound
	}
	working := st.Clone()
	if err := fn(working); err != nil {
		return err
	}
	r.stands[name] = working
	return nil
}
