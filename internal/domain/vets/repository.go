package vets

import "context"

type Repository interface {
	Create(ctx context.Context, v Veterinarian) error
	Update(ctx context.Context, v Veterinarian) error
	GetByID(ctx context.Context, id string) (Veterinarian, error)
	// GetByEmail busca por email exacto (ya normalizado a minúsculas).
	GetByEmail(ctx context.Context, email string) (Veterinarian, error)
	Delete(ctx context.Context, id string) error
	// List devuelve todos ordenados por apellido ascendente.
	List(ctx context.Context) ([]Veterinarian, error)
}
