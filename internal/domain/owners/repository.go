package owners

import "context"

type Repository interface {
	Create(ctx context.Context, o Owner) error
	Update(ctx context.Context, o Owner) error
	GetByID(ctx context.Context, id string) (Owner, error)
	Delete(ctx context.Context, id string) error
	// List devuelve todos ordenados por apellido ascendente.
	List(ctx context.Context) ([]Owner, error)
	// SearchByLastName matchea substring case-insensitive sobre el apellido.
	// Un término vacío devuelve la lista completa; la primitiva no asume
	// que el caller haya filtrado input vacío.
	SearchByLastName(ctx context.Context, term string) ([]Owner, error)
}
