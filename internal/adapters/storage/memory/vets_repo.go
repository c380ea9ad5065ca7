package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"vetcare360/internal/domain/vets"
)

type vetsRepo struct {
	mu   sync.RWMutex
	byID map[string]vets.Veterinarian
}

func NewVetsRepo() vets.Repository {
	return &vetsRepo{
		byID: make(map[string]vets.Veterinarian),
	}
}

func (r *vetsRepo) Create(ctx context.Context, v vets.Veterinarian) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(v.ID) == "" {
		return errors.New("veterinarian id required")
	}
	if _, exists := r.byID[v.ID]; exists {
		return errors.New("veterinarian already exists")
	}
	r.byID[v.ID] = cloneVet(v)
	return nil
}

func (r *vetsRepo) Update(ctx context.Context, v vets.Veterinarian) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[v.ID]; !exists {
		return vets.ErrNotFound
	}
	r.byID[v.ID] = cloneVet(v)
	return nil
}

func (r *vetsRepo) GetByID(ctx context.Context, id string) (vets.Veterinarian, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.byID[id]
	if !ok {
		return vets.Veterinarian{}, vets.ErrNotFound
	}
	return cloneVet(v), nil
}

func (r *vetsRepo) GetByEmail(ctx context.Context, email string) (vets.Veterinarian, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, v := range r.byID {
		if v.Email == email {
			return cloneVet(v), nil
		}
	}
	return vets.Veterinarian{}, vets.ErrNotFound
}

func (r *vetsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return vets.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *vetsRepo) List(ctx context.Context) ([]vets.Veterinarian, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]vets.Veterinarian, 0, len(r.byID))
	for _, v := range r.byID {
		out = append(out, cloneVet(v))
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].LastName != out[j].LastName {
			return out[i].LastName < out[j].LastName
		}
		return out[i].FirstName < out[j].FirstName
	})
	return out, nil
}

func cloneVet(v vets.Veterinarian) vets.Veterinarian {
	v.WorkingDays = append([]string{}, v.WorkingDays...)
	return v
}
