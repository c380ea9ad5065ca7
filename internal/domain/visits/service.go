package visits

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotFound       = errors.New("visit not found")
	ErrAnimalNotFound = errors.New("animal not found")
)

// AnimalSummary es la vista mínima del animal que necesita este módulo.
type AnimalSummary struct {
	ID      string
	Name    string
	Species string
	Breed   string
}

// AnimalLink desacopla visits de animals y mantiene la back-reference
// Animal.visits del otro lado de la relación.
type AnimalLink interface {
	Exists(ctx context.Context, animalID string) (bool, error)
	AttachVisit(ctx context.Context, animalID, visitID string) error
	// DetachVisit es no-op si el animal ya no existe o no tiene la referencia.
	DetachVisit(ctx context.Context, animalID, visitID string) error
	Summary(ctx context.Context, animalID string) (AnimalSummary, bool, error)
}

type Service struct {
	repo    Repository
	animals AnimalLink
	now     func() time.Time
}

func NewService(repo Repository, animals AnimalLink) *Service {
	return &Service{
		repo:    repo,
		animals: animals,
		now:     time.Now,
	}
}

type CreateInput struct {
	Date           *time.Time
	Reason         string
	AnimalID       string
	VeterinarianID string
	Diagnosis      string
	Treatment      string
	Notes          string
	Medications    []Medication
	FollowUpNeeded bool
	FollowUpDate   *time.Time
}

// Create persiste la visita y luego agrega su id al set de visitas del
// animal. Valida que el animal exista antes de escribir; del veterinario
// solo se exige el campo, no su existencia.
func (s *Service) Create(ctx context.Context, in CreateInput) (Visit, error) {
	if strings.TrimSpace(in.Reason) == "" {
		return Visit{}, fmt.Errorf("%w: reason for visit is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.AnimalID) == "" {
		return Visit{}, fmt.Errorf("%w: animal is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.VeterinarianID) == "" {
		return Visit{}, fmt.Errorf("%w: veterinarian is required", ErrInvalidInput)
	}
	for _, m := range in.Medications {
		if strings.TrimSpace(m.Name) == "" || strings.TrimSpace(m.Dosage) == "" {
			return Visit{}, fmt.Errorf("%w: medication name and dosage are required", ErrInvalidInput)
		}
	}
	if in.FollowUpNeeded && in.FollowUpDate == nil {
		return Visit{}, fmt.Errorf("%w: follow-up date is required when follow-up is needed", ErrInvalidInput)
	}

	ok, err := s.animals.Exists(ctx, in.AnimalID)
	if err != nil {
		return Visit{}, err
	}
	if !ok {
		return Visit{}, ErrAnimalNotFound
	}

	now := s.now()
	date := now
	if in.Date != nil && !in.Date.IsZero() {
		date = *in.Date
	}

	meds := in.Medications
	if meds == nil {
		meds = []Medication{}
	}

	v := Visit{
		ID:             uuid.NewString(),
		Date:           date,
		Reason:         strings.TrimSpace(in.Reason),
		AnimalID:       in.AnimalID,
		VeterinarianID: in.VeterinarianID,
		Diagnosis:      strings.TrimSpace(in.Diagnosis),
		Treatment:      strings.TrimSpace(in.Treatment),
		Notes:          strings.TrimSpace(in.Notes),
		Medications:    meds,
		FollowUpNeeded: in.FollowUpNeeded,
		FollowUpDate:   in.FollowUpDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, v); err != nil {
		return Visit{}, err
	}

	// Segunda escritura de la relación. Si falla, la visita queda huérfana:
	// ventana conocida, el error se propaga sin rollback.
	if err := s.animals.AttachVisit(ctx, v.AnimalID, v.ID); err != nil {
		return Visit{}, err
	}

	return v, nil
}

type UpdateInput struct {
	// Punteros: nil = campo no enviado. Igual que el resto de updates,
	// vacío/cero no limpia; followUpNeeded sí acepta false explícito.
	Date           *time.Time
	Reason         *string
	Diagnosis      *string
	Treatment      *string
	Notes          *string
	Medications    *[]Medication
	FollowUpNeeded *bool
	FollowUpDate   *time.Time
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Visit, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Visit{}, err
	}

	if in.Date != nil && !in.Date.IsZero() {
		v.Date = *in.Date
	}
	if in.Reason != nil && strings.TrimSpace(*in.Reason) != "" {
		v.Reason = strings.TrimSpace(*in.Reason)
	}
	if in.Diagnosis != nil && strings.TrimSpace(*in.Diagnosis) != "" {
		v.Diagnosis = strings.TrimSpace(*in.Diagnosis)
	}
	if in.Treatment != nil && strings.TrimSpace(*in.Treatment) != "" {
		v.Treatment = strings.TrimSpace(*in.Treatment)
	}
	if in.Notes != nil && strings.TrimSpace(*in.Notes) != "" {
		v.Notes = strings.TrimSpace(*in.Notes)
	}
	if in.Medications != nil {
		// una lista presente reemplaza, incluso vacía
		for _, m := range *in.Medications {
			if strings.TrimSpace(m.Name) == "" || strings.TrimSpace(m.Dosage) == "" {
				return Visit{}, fmt.Errorf("%w: medication name and dosage are required", ErrInvalidInput)
			}
		}
		v.Medications = *in.Medications
	}
	if in.FollowUpNeeded != nil {
		v.FollowUpNeeded = *in.FollowUpNeeded
	}
	if in.FollowUpDate != nil && !in.FollowUpDate.IsZero() {
		v.FollowUpDate = in.FollowUpDate
	}

	v.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, v); err != nil {
		return Visit{}, err
	}
	return v, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Visit, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Visit, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByAnimal(ctx context.Context, animalID string) ([]Visit, error) {
	return s.repo.ListByAnimal(ctx, animalID)
}

// Delete quita la referencia del animal y después borra la visita.
func (s *Service) Delete(ctx context.Context, id string) error {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.animals.DetachVisit(ctx, v.AnimalID, v.ID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// AnimalSummary expone la vista resumida del animal para el handler.
func (s *Service) AnimalSummary(ctx context.Context, animalID string) (AnimalSummary, bool, error) {
	return s.animals.Summary(ctx, animalID)
}
