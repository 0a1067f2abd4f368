package animals

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound lo devuelven los adapters de repositorio cuando el id no existe.
// El servicio lo traduce a una falla de dominio; cualquier otro error
// del repo se trata como error de dependencia.
var ErrNotFound = errors.New("animal not found")

// Filter son los filtros opcionales del listado de disponibles.
// Campo vacío = no filtrar. Semántica:
// - Type y Gender: igualdad case-insensitive
// - Name: substring case-insensitive
type Filter struct {
	Gender string
	Type   string
	Name   string
}

type Repository interface {
	Create(ctx context.Context, a Animal) error
	GetByID(ctx context.Context, id string) (Animal, error)

	// UpdateStatus pisa únicamente status + updated_at (last-write-wins,
	// sin versionado; ver notas de concurrencia en el servicio).
	UpdateStatus(ctx context.Context, id string, status Status, updatedAt time.Time) error

	ListByOwner(ctx context.Context, ownerID string) ([]Animal, error)

	// ListAvailable devuelve animales con status available excluyendo los
	// del propio solicitante, orden estable por created_at asc.
	ListAvailable(ctx context.Context, excludeOwnerID string, f Filter) ([]Animal, error)
}
