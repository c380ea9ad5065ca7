package postgres

import (
	"context"
	"database/sql"
	"strings"

	"vetcare360/internal/domain/vets"
)

type VetsRepo struct {
	db *sql.DB
}

func NewVetsRepo(db *sql.DB) *VetsRepo {
	return &VetsRepo{db: db}
}

const vetColumns = `
	id, first_name, last_name, specialty,
	email, phone_number, working_days, bio,
	created_at, updated_at
`

func (r *VetsRepo) Create(ctx context.Context, v vets.Veterinarian) error {
	days, err := toJSONB(v.WorkingDays)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO veterinarians (`+vetColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		v.ID,
		v.FirstName,
		v.LastName,
		v.Specialty,
		v.Email,
		v.PhoneNumber,
		days,
		v.Bio,
		v.CreatedAt,
		v.UpdatedAt,
	)
	return err
}

func (r *VetsRepo) Update(ctx context.Context, v vets.Veterinarian) error {
	days, err := toJSONB(v.WorkingDays)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE veterinarians
		SET
			first_name = $2,
			last_name = $3,
			specialty = $4,
			email = $5,
			phone_number = $6,
			working_days = $7,
			bio = $8,
			updated_at = $9
		WHERE id = $1
	`,
		v.ID,
		v.FirstName,
		v.LastName,
		v.Specialty,
		v.Email,
		v.PhoneNumber,
		days,
		v.Bio,
		v.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return vets.ErrNotFound
	}
	return nil
}

func (r *VetsRepo) GetByID(ctx context.Context, id string) (vets.Veterinarian, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return vets.Veterinarian{}, vets.ErrNotFound
	}
	return r.getWhere(ctx, `id = $1`, id)
}

func (r *VetsRepo) GetByEmail(ctx context.Context, email string) (vets.Veterinarian, error) {
	if email == "" {
		return vets.Veterinarian{}, vets.ErrNotFound
	}
	return r.getWhere(ctx, `email = $1`, email)
}

func (r *VetsRepo) getWhere(ctx context.Context, where string, arg any) (vets.Veterinarian, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+vetColumns+`
		FROM veterinarians
		WHERE `+where, arg)

	v, err := scanVet(row.Scan)
	if err == sql.ErrNoRows {
		return vets.Veterinarian{}, vets.ErrNotFound
	}
	return v, err
}

func (r *VetsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM veterinarians WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return vets.ErrNotFound
	}
	return nil
}

func (r *VetsRepo) List(ctx context.Context) ([]vets.Veterinarian, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+vetColumns+`
		FROM veterinarians
		ORDER BY last_name ASC, first_name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]vets.Veterinarian, 0)
	for rows.Next() {
		v, err := scanVet(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func scanVet(scan func(dest ...any) error) (vets.Veterinarian, error) {
	var (
		v    vets.Veterinarian
		days []byte
	)
	if err := scan(
		&v.ID,
		&v.FirstName,
		&v.LastName,
		&v.Specialty,
		&v.Email,
		&v.PhoneNumber,
		&days,
		&v.Bio,
		&v.CreatedAt,
		&v.UpdatedAt,
	); err != nil {
		return vets.Veterinarian{}, err
	}

	v.WorkingDays = []string{}
	if err := fromJSONB(days, &v.WorkingDays); err != nil {
		return vets.Veterinarian{}, err
	}
	return v, nil
}
