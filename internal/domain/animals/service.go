package animals

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"adopet-backend/internal/ports/media"

	"github.com/google/uuid"
)

type Service struct {
	repo  Repository
	media media.Store
	now   func() time.Time
}

func NewService(repo Repository, store media.Store) *Service {
	return &Service{
		repo:  repo,
		media: store,
		now:   time.Now,
	}
}

type CreateInput struct {
	Name        string
	Type        string
	Gender      string
	Race        string
	Description string

	// Payloads crudos de las fotos, en el orden en que se subieron.
	Pictures [][]byte
}

// Create valida el input, sube las fotos al media store (en orden) y
// recién después persiste el registro. Si una foto falla, no se persiste
// nada (creación todo-o-nada; el repo write es el único punto de mutación).
func (s *Service) Create(ctx context.Context, ownerID string, in CreateInput) (Result[Animal], error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		// El adapter mete "" cuando no hay usuario autenticado; acá se rechaza
		// explícitamente para no crear registros con owner anónimo.
		return Fail[Animal](FailureValidation, "userId is required"), nil
	}
	for _, f := range []struct{ name, value string }{
		{"name", in.Name},
		{"type", in.Type},
		{"gender", in.Gender},
		{"race", in.Race},
	} {
		if strings.TrimSpace(f.value) == "" {
			return Fail[Animal](FailureValidation, f.name+" is required"), nil
		}
	}

	id := uuid.NewString()

	// Primero las fotos: las referencias tienen que existir antes de
	// persistir el registro que las apunta.
	refs := make([]string, 0, len(in.Pictures))
	for i, payload := range in.Pictures {
		ref, err := s.media.Save(ctx, payload, fmt.Sprintf("%s-%d", id, i))
		if err != nil {
			return Result[Animal]{}, fmt.Errorf("save picture %d: %w", i, err)
		}
		refs = append(refs, ref)
	}

	now := s.now()
	a := Animal{
		ID:          id,
		OwnerID:     ownerID,
		Name:        strings.TrimSpace(in.Name),
		Type:        strings.TrimSpace(in.Type),
		Gender:      strings.TrimSpace(in.Gender),
		Race:        strings.TrimSpace(in.Race),
		Description: strings.TrimSpace(in.Description),
		Pictures:    refs,
		Status:      StatusAvailable,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Result[Animal]{}, err
	}
	return Ok(a), nil
}

// UpdateStatus valida en este orden: existe el animal, status es un valor
// del enum, el solicitante es el owner. Cada falla es distinguible por kind.
// Reaplicar el mismo status es idempotente. Dos updates concurrentes al
// mismo id resuelven last-write-wins en el repo (sin versionado).
func (s *Service) UpdateStatus(ctx context.Context, id, userID, status string) (Result[Animal], error) {
	id = strings.TrimSpace(id)

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Fail[Animal](FailureNotFound, "animal not found"), nil
		}
		return Result[Animal]{}, err
	}

	st, ok := ParseStatus(status)
	if !ok {
		return Fail[Animal](FailureInvalidStatus, "invalid status value"), nil
	}

	// userID vacío nunca matchea un owner persistido, pero el chequeo
	// explícito mantiene la falla correcta aunque eso cambie.
	if strings.TrimSpace(userID) == "" || a.OwnerID != strings.TrimSpace(userID) {
		return Fail[Animal](FailureForbidden, "not authorized to update this animal"), nil
	}

	now := s.now()
	if err := s.repo.UpdateStatus(ctx, id, st, now); err != nil {
		if errors.Is(err, ErrNotFound) {
			return Fail[Animal](FailureNotFound, "animal not found"), nil
		}
		return Result[Animal]{}, err
	}

	a.Status = st
	a.UpdatedAt = now
	return Ok(a), nil
}

// GetByID devuelve un registro puntual. La vista de detalle es pública
// dentro de la plataforma, así que no exige ownership.
func (s *Service) GetByID(ctx context.Context, id string) (Result[Animal], error) {
	a, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Fail[Animal](FailureNotFound, "animal not found"), nil
		}
		return Result[Animal]{}, err
	}
	return Ok(a), nil
}

// GetAvailable lista animales adoptables para userID: status available,
// excluyendo los propios. Lista vacía es éxito, no falla.
func (s *Service) GetAvailable(ctx context.Context, userID string, f Filter) (Result[[]Animal], error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Fail[[]Animal](FailureValidation, "userId is required"), nil
	}

	items, err := s.repo.ListAvailable(ctx, userID, Filter{
		Gender: strings.TrimSpace(f.Gender),
		Type:   strings.TrimSpace(f.Type),
		Name:   strings.TrimSpace(f.Name),
	})
	if err != nil {
		return Result[[]Animal]{}, err
	}
	return Ok(items), nil
}

// GetUserAnimals lista los animales del propio usuario, cualquier status.
func (s *Service) GetUserAnimals(ctx context.Context, userID string) (Result[[]Animal], error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Fail[[]Animal](FailureValidation, "userId is required"), nil
	}

	items, err := s.repo.ListByOwner(ctx, userID)
	if err != nil {
		return Result[[]Animal]{}, err
	}
	return Ok(items), nil
}
