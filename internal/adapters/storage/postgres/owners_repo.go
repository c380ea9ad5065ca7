package postgres

import (
	"context"
	"database/sql"
	"strings"

	"vetcare360/internal/domain/owners"
)

type OwnersRepo struct {
	db *sql.DB
}

func NewOwnersRepo(db *sql.DB) *OwnersRepo {
	return &OwnersRepo{db: db}
}

type addressDoc struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

const ownerColumns = `
	id, first_name, last_name,
	address, phone_number, email,
	animal_ids,
	created_at, updated_at
`

func (r *OwnersRepo) Create(ctx context.Context, o owners.Owner) error {
	address, err := toJSONB(addressDoc(o.Address))
	if err != nil {
		return err
	}
	animalIDs, err := toJSONB(o.AnimalIDs)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO owners (`+ownerColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		o.ID,
		o.FirstName,
		o.LastName,
		address,
		o.PhoneNumber,
		o.Email,
		animalIDs,
		o.CreatedAt,
		o.UpdatedAt,
	)
	return err
}

func (r *OwnersRepo) Update(ctx context.Context, o owners.Owner) error {
	address, err := toJSONB(addressDoc(o.Address))
	if err != nil {
		return err
	}
	animalIDs, err := toJSONB(o.AnimalIDs)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE owners
		SET
			first_name = $2,
			last_name = $3,
			address = $4,
			phone_number = $5,
			email = $6,
			animal_ids = $7,
			updated_at = $8
		WHERE id = $1
	`,
		o.ID,
		o.FirstName,
		o.LastName,
		address,
		o.PhoneNumber,
		o.Email,
		animalIDs,
		o.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return owners.ErrNotFound
	}
	return nil
}

func (r *OwnersRepo) GetByID(ctx context.Context, id string) (owners.Owner, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return owners.Owner{}, owners.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+ownerColumns+`
		FROM owners
		WHERE id = $1
	`, id)

	o, err := scanOwner(row.Scan)
	if err == sql.ErrNoRows {
		return owners.Owner{}, owners.ErrNotFound
	}
	return o, err
}

func (r *OwnersRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM owners WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return owners.ErrNotFound
	}
	return nil
}

func (r *OwnersRepo) List(ctx context.Context) ([]owners.Owner, error) {
	return r.SearchByLastName(ctx, "")
}

func (r *OwnersRepo) SearchByLastName(ctx context.Context, term string) ([]owners.Owner, error) {
	// término vacío => ILIKE '%%' matchea todo
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+ownerColumns+`
		FROM owners
		WHERE last_name ILIKE '%' || $1 || '%'
		ORDER BY last_name ASC, first_name ASC
	`, term)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]owners.Owner, 0)
	for rows.Next() {
		o, err := scanOwner(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func scanOwner(scan func(dest ...any) error) (owners.Owner, error) {
	var (
		o         owners.Owner
		address   []byte
		animalIDs []byte
	)
	if err := scan(
		&o.ID,
		&o.FirstName,
		&o.LastName,
		&address,
		&o.PhoneNumber,
		&o.Email,
		&animalIDs,
		&o.CreatedAt,
		&o.UpdatedAt,
	); err != nil {
		return owners.Owner{}, err
	}

	var addr addressDoc
	if err := fromJSONB(address, &addr); err != nil {
		return owners.Owner{}, err
	}
	o.Address = owners.Address(addr)

	o.AnimalIDs = []string{}
	if err := fromJSONB(animalIDs, &o.AnimalIDs); err != nil {
		return owners.Owner{}, err
	}

	return o, nil
}
