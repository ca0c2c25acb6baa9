package repository

import (
	"context"

	"github.com/jhoicas/Stand-api/internal/domain/stand"
)

// StandRepository define el puerto de persistencia para el agregado Stand (DIP).
type StandRepository interface {
	// Create persiste un puesto nuevo. ErrDuplicate si el nombre ya existe.
	Create(ctx context.Context, st *stand.Stand) error
	// GetByName devuelve una copia desacoplada del puesto, o nil, nil si no existe.
	GetByName(ctx context.Context, name string) (*stand.Stand, error)
	// List devuelve todos los puestos ordenados por nombre.
	List(ctx context.Context) ([]*stand.Stand, error)
	// Update ejecuta fn sobre el puesto como unidad atómica: si fn devuelve error no se
	// persiste ningún cambio. ErrNotFound si el puesto no existe.
	Update(ctx context.Context, name string, fn func(st *stand.Stand) error) error
}
