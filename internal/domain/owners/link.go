package owners

import (
	"context"
	"errors"

	"vetcare360/internal/domain/animals"
)

// Implementación de animals.OwnerLink sobre el service de owners.
// Vive en un archivo aparte para evitar ciclos de imports entre módulos
// (owners importa animals, nunca al revés).

func (s *Service) Exists(ctx context.Context, ownerID string) (bool, error) {
	_, err := s.repo.GetByID(ctx, ownerID)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) AttachAnimal(ctx context.Context, ownerID, animalID string) error {
	o, err := s.repo.GetByID(ctx, ownerID)
	if err != nil {
		return err
	}
	for _, id := range o.AnimalIDs {
		if id == animalID {
			return nil
		}
	}
	o.AnimalIDs = append(append([]string{}, o.AnimalIDs...), animalID)
	o.UpdatedAt = s.now()
	return s.repo.Update(ctx, o)
}

func (s *Service) DetachAnimal(ctx context.Context, ownerID, animalID string) error {
	o, err := s.repo.GetByID(ctx, ownerID)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	kept := make([]string, 0, len(o.AnimalIDs))
	removed := false
	for _, id := range o.AnimalIDs {
		if id == animalID {
			removed = true
			continue
		}
		kept = append(kept, id)
	}
	if !removed {
		return nil
	}

	o.AnimalIDs = kept
	o.UpdatedAt = s.now()
	return s.repo.Update(ctx, o)
}

func (s *Service) Summary(ctx context.Context, ownerID string) (animals.OwnerSummary, bool, error) {
	o, err := s.repo.GetByID(ctx, ownerID)
	if errors.Is(err, ErrNotFound) {
		return animals.OwnerSummary{}, false, nil
	}
	if err != nil {
		return animals.OwnerSummary{}, false, err
	}
	return animals.OwnerSummary{
		ID:        o.ID,
		FirstName: o.FirstName,
		LastName:  o.LastName,
	}, true, nil
}
