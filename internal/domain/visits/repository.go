package visits

import "context"

type Repository interface {
	Create(ctx context.Context, v Visit) error
	Update(ctx context.Context, v Visit) error
	GetByID(ctx context.Context, id string) (Visit, error)
	Delete(ctx context.Context, id string) error
	// List devuelve todas las visitas, más reciente primero.
	List(ctx context.Context) ([]Visit, error)
	// ListByAnimal devuelve las visitas de un animal, más reciente primero.
	ListByAnimal(ctx context.Context, animalID string) ([]Visit, error)
}
