package animals

import "context"

type Repository interface {
	Create(ctx context.Context, a Animal) error
	Update(ctx context.Context, a Animal) error
	GetByID(ctx context.Context, id string) (Animal, error)
	Delete(ctx context.Context, id string) error
	// List devuelve todos ordenados por nombre ascendente.
	List(ctx context.Context) ([]Animal, error)
	// ListByOwner devuelve los animales de un dueño, por nombre ascendente.
	ListByOwner(ctx context.Context, ownerID string) ([]Animal, error)
}
