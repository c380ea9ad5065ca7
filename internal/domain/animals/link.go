package animals

import (
	"context"
	"errors"

	"vetcare360/internal/domain/visits"
)

// Implementación de visits.AnimalLink sobre el service de animals.
// Vive en un archivo aparte para evitar ciclos de imports entre módulos
// (animals importa visits, nunca al revés).

func (s *Service) Exists(ctx context.Context, animalID string) (bool, error) {
	_, err := s.repo.GetByID(ctx, animalID)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) AttachVisit(ctx context.Context, animalID, visitID string) error {
	a, err := s.repo.GetByID(ctx, animalID)
	if err != nil {
		return err
	}
	for _, id := range a.VisitIDs {
		if id == visitID {
			return nil
		}
	}
	// más reciente primero, como las consultas de visitas
	a.VisitIDs = append([]string{visitID}, a.VisitIDs...)
	a.UpdatedAt = s.now()
	return s.repo.Update(ctx, a)
}

func (s *Service) DetachVisit(ctx context.Context, animalID, visitID string) error {
	a, err := s.repo.GetByID(ctx, animalID)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	kept := make([]string, 0, len(a.VisitIDs))
	removed := false
	for _, id := range a.VisitIDs {
		if id == visitID {
			removed = true
			continue
		}
		kept = append(kept, id)
	}
	if !removed {
		return nil
	}

	a.VisitIDs = kept
	a.UpdatedAt = s.now()
	return s.repo.Update(ctx, a)
}

func (s *Service) Summary(ctx context.Context, animalID string) (visits.AnimalSummary, bool, error) {
	a, err := s.repo.GetByID(ctx, animalID)
	if errors.Is(err, ErrNotFound) {
		return visits.AnimalSummary{}, false, nil
	}
	if err != nil {
		return visits.AnimalSummary{}, false, err
	}
	return visits.AnimalSummary{
		ID:      a.ID,
		Name:    a.Name,
		Species: a.Species,
		Breed:   a.Breed,
	}, true, nil
}
