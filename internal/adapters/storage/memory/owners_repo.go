package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"vetcare360/internal/domain/owners"
)

type ownersRepo struct {
	mu   sync.RWMutex
	byID map[string]owners.Owner
}

func NewOwnersRepo() owners.Repository {
	return &ownersRepo{
		byID: make(map[string]owners.Owner),
	}
}

func (r *ownersRepo) Create(ctx context.Context, o owners.Owner) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(o.ID) == "" {
		return errors.New("owner id required")
	}
	if _, exists := r.byID[o.ID]; exists {
		return errors.New("owner already exists")
	}
	r.byID[o.ID] = cloneOwner(o)
	return nil
}

func (r *ownersRepo) Update(ctx context.Context, o owners.Owner) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[o.ID]; !exists {
		return owners.ErrNotFound
	}
	r.byID[o.ID] = cloneOwner(o)
	return nil
}

func (r *ownersRepo) GetByID(ctx context.Context, id string) (owners.Owner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.byID[id]
	if !ok {
		return owners.Owner{}, owners.ErrNotFound
	}
	return cloneOwner(o), nil
}

func (r *ownersRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return owners.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *ownersRepo) List(ctx context.Context) ([]owners.Owner, error) {
	return r.SearchByLastName(ctx, "")
}

func (r *ownersRepo) SearchByLastName(ctx context.Context, term string) ([]owners.Owner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(term)

	out := make([]owners.Owner, 0)
	for _, o := range r.byID {
		if needle != "" && !strings.Contains(strings.ToLower(o.LastName), needle) {
			continue
		}
		out = append(out, cloneOwner(o))
	}

	sortOwners(out)
	return out, nil
}

func sortOwners(out []owners.Owner) {
	sort.Slice(out, func(i, j int) bool {
		if out[i].LastName != out[j].LastName {
			return out[i].LastName < out[j].LastName
		}
		return out[i].FirstName < out[j].FirstName
	})
}

// cloneOwner evita que callers compartan el backing array de AnimalIDs
// con el valor guardado.
func cloneOwner(o owners.Owner) owners.Owner {
	o.AnimalIDs = append([]string{}, o.AnimalIDs...)
	return o
}
