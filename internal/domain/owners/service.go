package owners

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("owner not found")
)

// patrón simple local@domain
var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	FirstName   string
	LastName    string
	Address     Address
	PhoneNumber string
	Email       string
}

// Create persiste el dueño con el set de animales vacío. Es creación hoja:
// no hay referencias que validar.
func (s *Service) Create(ctx context.Context, in CreateInput) (Owner, error) {
	if strings.TrimSpace(in.FirstName) == "" {
		return Owner{}, fmt.Errorf("%w: first name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.LastName) == "" {
		return Owner{}, fmt.Errorf("%w: last name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.PhoneNumber) == "" {
		return Owner{}, fmt.Errorf("%w: phone number is required", ErrInvalidInput)
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email != "" && !emailPattern.MatchString(email) {
		return Owner{}, fmt.Errorf("%w: please enter a valid email", ErrInvalidInput)
	}

	now := s.now()
	o := Owner{
		ID:          uuid.NewString(),
		FirstName:   strings.TrimSpace(in.FirstName),
		LastName:    strings.TrimSpace(in.LastName),
		Address:     trimAddress(in.Address),
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
		Email:       email,
		AnimalIDs:   []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return Owner{}, err
	}
	return o, nil
}

type UpdateInput struct {
	// Punteros: nil = campo no enviado. Un string vacío tampoco pisa el
	// valor almacenado (merge sobre truthy, igual que el resto).
	FirstName   *string
	LastName    *string
	PhoneNumber *string
	Email       *string
	// La dirección se reemplaza completa cuando viene.
	Address *Address
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Owner, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Owner{}, err
	}

	if in.FirstName != nil && strings.TrimSpace(*in.FirstName) != "" {
		o.FirstName = strings.TrimSpace(*in.FirstName)
	}
	if in.LastName != nil && strings.TrimSpace(*in.LastName) != "" {
		o.LastName = strings.TrimSpace(*in.LastName)
	}
	if in.PhoneNumber != nil && strings.TrimSpace(*in.PhoneNumber) != "" {
		o.PhoneNumber = strings.TrimSpace(*in.PhoneNumber)
	}
	if in.Email != nil && strings.TrimSpace(*in.Email) != "" {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		if !emailPattern.MatchString(email) {
			return Owner{}, fmt.Errorf("%w: please enter a valid email", ErrInvalidInput)
		}
		o.Email = email
	}
	if in.Address != nil {
		o.Address = trimAddress(*in.Address)
	}

	o.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, o); err != nil {
		return Owner{}, err
	}
	return o, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Owner, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Owner, error) {
	return s.repo.List(ctx)
}

func (s *Service) SearchByLastName(ctx context.Context, term string) ([]Owner, error) {
	return s.repo.SearchByLastName(ctx, term)
}

// Delete borra solo el registro del dueño. Sus animales NO se borran ni
// se tocan: el forward reference vive en Animal.OwnerID y queda colgante.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func trimAddress(a Address) Address {
	return Address{
		Street:  strings.TrimSpace(a.Street),
		City:    strings.TrimSpace(a.City),
		State:   strings.TrimSpace(a.State),
		ZipCode: strings.TrimSpace(a.ZipCode),
	}
}
