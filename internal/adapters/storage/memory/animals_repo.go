package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"adopet-backend/internal/domain/animals"
)

type animalRepo struct {
	mu   sync.RWMutex
	byID map[string]animals.Animal
}

func NewAnimalRepo() animals.Repository {
	return &animalRepo{
		byID: make(map[string]animals.Animal),
	}
}

func (r *animalRepo) Create(ctx context.Context, a animals.Animal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("animal id required")
	}
	if _, exists := r.byID[a.ID]; exists {
		return errors.New("animal already exists")
	}
	r.byID[a.ID] = a
	return nil
}

func (r *animalRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return animals.Animal{}, animals.ErrNotFound
	}
	return a, nil
}

func (r *animalRepo) UpdateStatus(ctx context.Context, id string, status animals.Status, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[id]
	if !ok {
		return animals.ErrNotFound
	}
	a.Status = status
	a.UpdatedAt = updatedAt
	r.byID[id] = a
	return nil
}

func (r *animalRepo) ListByOwner(ctx context.Context, ownerID string) ([]animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]animals.Animal, 0)
	for _, a := range r.byID {
		if a.OwnerID == ownerID {
			out = append(out, a)
		}
	}

	sortByCreatedAt(out)
	return out, nil
}

func (r *animalRepo) ListAvailable(ctx context.Context, excludeOwnerID string, f animals.Filter) ([]animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]animals.Animal, 0)
	for _, a := range r.byID {
		if a.Status != animals.StatusAvailable {
			continue
		}
		if a.OwnerID == excludeOwnerID {
			continue
		}
		if !matchesFilter(a, f) {
			continue
		}
		out = append(out, a)
	}

	sortByCreatedAt(out)
	return out, nil
}

// matchesFilter replica la semántica del adapter Postgres:
// type/gender igualdad case-insensitive, name substring case-insensitive.
func matchesFilter(a animals.Animal, f animals.Filter) bool {
	if f.Type != "" && !strings.EqualFold(a.Type, f.Type) {
		return false
	}
	if f.Gender != "" && !strings.EqualFold(a.Gender, f.Gender) {
		return false
	}
	if f.Name != "" && !strings.Contains(strings.ToLower(a.Name), strings.ToLower(f.Name)) {
		return false
	}
	return true
}

// Orden estable por created_at asc; desempate por id para que dos
// animales creados en el mismo instante no cambien de orden entre llamadas.
func sortByCreatedAt(items []animals.Animal) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].ID < items[j].ID
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
}
