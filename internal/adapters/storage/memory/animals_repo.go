package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"vetcare360/internal/domain/animals"
)

type animalsRepo struct {
	mu   sync.RWMutex
	byID map[string]animals.Animal
}

func NewAnimalsRepo() animals.Repository {
	return &animalsRepo{
		byID: make(map[string]animals.Animal),
	}
}

func (r *animalsRepo) Create(ctx context.Context, a animals.Animal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("animal id required")
	}
	if _, exists := r.byID[a.ID]; exists {
		return errors.New("animal already exists")
	}
	r.byID[a.ID] = cloneAnimal(a)
	return nil
}

func (r *animalsRepo) Update(ctx context.Context, a animals.Animal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[a.ID]; !exists {
		return animals.ErrNotFound
	}
	r.byID[a.ID] = cloneAnimal(a)
	return nil
}

func (r *animalsRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return animals.Animal{}, animals.ErrNotFound
	}
	return cloneAnimal(a), nil
}

func (r *animalsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return animals.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *animalsRepo) List(ctx context.Context) ([]animals.Animal, error) {
	return r.listWhere(func(animals.Animal) bool { return true })
}

func (r *animalsRepo) ListByOwner(ctx context.Context, ownerID string) ([]animals.Animal, error) {
	return r.listWhere(func(a animals.Animal) bool { return a.OwnerID == ownerID })
}

func (r *animalsRepo) listWhere(keep func(animals.Animal) bool) ([]animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]animals.Animal, 0)
	for _, a := range r.byID {
		if keep(a) {
			out = append(out, cloneAnimal(a))
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func cloneAnimal(a animals.Animal) animals.Animal {
	a.VisitIDs = append([]string{}, a.VisitIDs...)
	a.MedicalHistory.Allergies = append([]string{}, a.MedicalHistory.Allergies...)
	a.MedicalHistory.ChronicConditions = append([]string{}, a.MedicalHistory.ChronicConditions...)
	a.MedicalHistory.CurrentMedications = append([]animals.MedicationCourse{}, a.MedicalHistory.CurrentMedications...)
	return a
}
