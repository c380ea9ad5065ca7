package vets

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
	ErrNotFound     = errors.New("veterinarian not found")
	ErrConflict     = errors.New("veterinarian with this email already exists")
)

// patrón simple local@domain (el mismo que valida el resto del sistema)
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
	Specialty   string
	Email       string
	PhoneNumber string
	WorkingDays []string
	Bio         string
}

// Create registra un veterinario. Falla con ErrConflict si ya existe
// otro con el mismo email; el chequeo va antes de cualquier escritura.
func (s *Service) Create(ctx context.Context, in CreateInput) (Veterinarian, error) {
	if strings.TrimSpace(in.FirstName) == "" {
		return Veterinarian{}, fmt.Errorf("%w: first name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.LastName) == "" {
		return Veterinarian{}, fmt.Errorf("%w: last name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Specialty) == "" {
		return Veterinarian{}, fmt.Errorf("%w: specialty is required", ErrInvalidInput)
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" {
		return Veterinarian{}, fmt.Errorf("%w: email address is required", ErrInvalidInput)
	}
	if !emailPattern.MatchString(email) {
		return Veterinarian{}, fmt.Errorf("%w: please enter a valid email", ErrInvalidInput)
	}

	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return Veterinarian{}, ErrConflict
	}
	if !errors.Is(err, ErrNotFound) {
		return Veterinarian{}, err
	}

	days := in.WorkingDays
	if len(days) == 0 {
		days = append([]string(nil), DefaultWorkingDays...)
	}

	now := s.now()
	v := Veterinarian{
		ID:          uuid.NewString(),
		FirstName:   strings.TrimSpace(in.FirstName),
		LastName:    strings.TrimSpace(in.LastName),
		Specialty:   strings.TrimSpace(in.Specialty),
		Email:       email,
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
		WorkingDays: days,
		Bio:         strings.TrimSpace(in.Bio),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, v); err != nil {
		return Veterinarian{}, err
	}
	return v, nil
}

type UpdateInput struct {
	// Punteros: nil = campo no enviado. Strings vacíos tampoco tocan
	// el valor almacenado (merge sobre truthy).
	FirstName   *string
	LastName    *string
	Specialty   *string
	Email       *string
	PhoneNumber *string
	WorkingDays *[]string
	Bio         *string
}

// Update aplica un merge parcial: solo pisa los campos presentes y no vacíos.
// El email no se re-chequea por unicidad en updates.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Veterinarian, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Veterinarian{}, err
	}

	if in.FirstName != nil && strings.TrimSpace(*in.FirstName) != "" {
		v.FirstName = strings.TrimSpace(*in.FirstName)
	}
	if in.LastName != nil && strings.TrimSpace(*in.LastName) != "" {
		v.LastName = strings.TrimSpace(*in.LastName)
	}
	if in.Specialty != nil && strings.TrimSpace(*in.Specialty) != "" {
		v.Specialty = strings.TrimSpace(*in.Specialty)
	}
	if in.Email != nil && strings.TrimSpace(*in.Email) != "" {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		if !emailPattern.MatchString(email) {
			return Veterinarian{}, fmt.Errorf("%w: please enter a valid email", ErrInvalidInput)
		}
		v.Email = email
	}
	if in.PhoneNumber != nil && strings.TrimSpace(*in.PhoneNumber) != "" {
		v.PhoneNumber = strings.TrimSpace(*in.PhoneNumber)
	}
	if in.WorkingDays != nil {
		// una lista presente reemplaza, incluso vacía
		v.WorkingDays = *in.WorkingDays
	}
	if in.Bio != nil && strings.TrimSpace(*in.Bio) != "" {
		v.Bio = strings.TrimSpace(*in.Bio)
	}

	v.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, v); err != nil {
		return Veterinarian{}, err
	}
	return v, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Veterinarian, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Veterinarian, error) {
	return s.repo.List(ctx)
}

// Delete elimina el registro. Las visitas que lo referencian quedan con
// la referencia colgante; no hay cascada.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
