package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"vetcare360/internal/domain/visits"
)

type visitsRepo struct {
	mu   sync.RWMutex
	byID map[string]visits.Visit
}

func NewVisitsRepo() visits.Repository {
	return &visitsRepo{
		byID: make(map[string]visits.Visit),
	}
}

func (r *visitsRepo) Create(ctx context.Context, v visits.Visit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(v.ID) == "" {
		return errors.New("visit id required")
	}
	if _, exists := r.byID[v.ID]; exists {
		return errors.New("visit already exists")
	}
	r.byID[v.ID] = cloneVisit(v)
	return nil
}

func (r *visitsRepo) Update(ctx context.Context, v visits.Visit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[v.ID]; !exists {
		return visits.ErrNotFound
	}
	r.byID[v.ID] = cloneVisit(v)
	return nil
}

func (r *visitsRepo) GetByID(ctx context.Context, id string) (visits.Visit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.byID[id]
	if !ok {
		return visits.Visit{}, visits.ErrNotFound
	}
	return cloneVisit(v), nil
}

func (r *visitsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return visits.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *visitsRepo) List(ctx context.Context) ([]visits.Visit, error) {
	return r.listWhere(func(visits.Visit) bool { return true })
}

func (r *visitsRepo) ListByAnimal(ctx context.Context, animalID string) ([]visits.Visit, error) {
	return r.listWhere(func(v visits.Visit) bool { return v.AnimalID == animalID })
}

func (r *visitsRepo) listWhere(keep func(visits.Visit) bool) ([]visits.Visit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]visits.Visit, 0)
	for _, v := range r.byID {
		if keep(v) {
			out = append(out, cloneVisit(v))
		}
	}

	// más reciente primero
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}

func cloneVisit(v visits.Visit) visits.Visit {
	v.Medications = append([]visits.Medication{}, v.Medications...)
	return v
}
