package animals

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("animal not found")
	ErrOwnerNotFound = errors.New("owner not found")
)

// OwnerSummary es la vista mínima del dueño que necesita este módulo.
type OwnerSummary struct {
	ID        string
	FirstName string
	LastName  string
}

// OwnerLink desacopla animals de owners y mantiene la back-reference
// Owner.animals del otro lado de la relación.
type OwnerLink interface {
	Exists(ctx context.Context, ownerID string) (bool, error)
	AttachAnimal(ctx context.Context, ownerID, animalID string) error
	// DetachAnimal es no-op si el dueño ya no existe o no tiene la referencia.
	DetachAnimal(ctx context.Context, ownerID, animalID string) error
	Summary(ctx context.Context, ownerID string) (OwnerSummary, bool, error)
}

type Service struct {
	repo   Repository
	owners OwnerLink
	now    func() time.Time
}

func NewService(repo Repository, owners OwnerLink) *Service {
	return &Service{
		repo:   repo,
		owners: owners,
		now:    time.Now,
	}
}

type CreateInput struct {
	OwnerID        string
	Name           string
	Species        string
	Breed          string
	BirthDate      *time.Time
	Weight         float64
	Color          string
	Gender         string
	MedicalHistory *MedicalHistory
}

// Create valida que el dueño exista, persiste el animal y después agrega
// su id al set de animales del dueño.
func (s *Service) Create(ctx context.Context, in CreateInput) (Animal, error) {
	if strings.TrimSpace(in.OwnerID) == "" {
		return Animal{}, fmt.Errorf("%w: owner is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Name) == "" {
		return Animal{}, fmt.Errorf("%w: animal name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Species) == "" {
		return Animal{}, fmt.Errorf("%w: species is required", ErrInvalidInput)
	}
	if in.Weight < 0 {
		return Animal{}, fmt.Errorf("%w: weight cannot be negative", ErrInvalidInput)
	}
	gender, ok := ParseGender(in.Gender)
	if !ok {
		return Animal{}, fmt.Errorf("%w: gender must be male, female or unknown", ErrInvalidInput)
	}

	exists, err := s.owners.Exists(ctx, in.OwnerID)
	if err != nil {
		return Animal{}, err
	}
	if !exists {
		return Animal{}, ErrOwnerNotFound
	}

	history := MedicalHistory{}
	if in.MedicalHistory != nil {
		history = *in.MedicalHistory
	}

	now := s.now()
	a := Animal{
		ID:             uuid.NewString(),
		Name:           strings.TrimSpace(in.Name),
		Species:        strings.TrimSpace(in.Species),
		Breed:          strings.TrimSpace(in.Breed),
		BirthDate:      in.BirthDate,
		Weight:         in.Weight,
		Color:          strings.TrimSpace(in.Color),
		Gender:         gender,
		OwnerID:        in.OwnerID,
		VisitIDs:       []string{},
		MedicalHistory: history,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Animal{}, err
	}

	// Segunda escritura de la relación. Si falla, el animal queda huérfano:
	// ventana conocida, el error se propaga sin rollback.
	if err := s.owners.AttachAnimal(ctx, a.OwnerID, a.ID); err != nil {
		return Animal{}, err
	}

	return a, nil
}

type UpdateInput struct {
	// Punteros: nil = campo no enviado. Vacío/cero tampoco pisa el valor
	// almacenado (merge sobre truthy): weight=0 o name="" no limpian nada.
	Name           *string
	Species        *string
	Breed          *string
	BirthDate      *time.Time
	Weight         *float64
	Color          *string
	Gender         *string
	MedicalHistory *MedicalHistory
}

// Update aplica el merge parcial. El dueño es inmutable y no se acepta acá.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Animal, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Animal{}, err
	}

	if in.Name != nil && strings.TrimSpace(*in.Name) != "" {
		a.Name = strings.TrimSpace(*in.Name)
	}
	if in.Species != nil && strings.TrimSpace(*in.Species) != "" {
		a.Species = strings.TrimSpace(*in.Species)
	}
	if in.Breed != nil && strings.TrimSpace(*in.Breed) != "" {
		a.Breed = strings.TrimSpace(*in.Breed)
	}
	if in.BirthDate != nil && !in.BirthDate.IsZero() {
		a.BirthDate = in.BirthDate
	}
	if in.Weight != nil && *in.Weight != 0 {
		if *in.Weight < 0 {
			return Animal{}, fmt.Errorf("%w: weight cannot be negative", ErrInvalidInput)
		}
		a.Weight = *in.Weight
	}
	if in.Color != nil && strings.TrimSpace(*in.Color) != "" {
		a.Color = strings.TrimSpace(*in.Color)
	}
	if in.Gender != nil && strings.TrimSpace(*in.Gender) != "" {
		gender, ok := ParseGender(*in.Gender)
		if !ok {
			return Animal{}, fmt.Errorf("%w: gender must be male, female or unknown", ErrInvalidInput)
		}
		a.Gender = gender
	}
	if in.MedicalHistory != nil {
		// la historia médica se reemplaza completa cuando viene
		a.MedicalHistory = *in.MedicalHistory
	}

	a.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, a); err != nil {
		return Animal{}, err
	}
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Animal, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Animal, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]Animal, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// Delete quita la referencia del dueño y después borra el animal.
// Las visitas del animal NO se borran: quedan con referencia colgante.
func (s *Service) Delete(ctx context.Context, id string) error {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.owners.DetachAnimal(ctx, a.OwnerID, a.ID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// OwnerSummary expone la vista resumida del dueño para el handler.
func (s *Service) OwnerSummary(ctx context.Context, ownerID string) (OwnerSummary, bool, error) {
	return s.owners.Summary(ctx, ownerID)
}
