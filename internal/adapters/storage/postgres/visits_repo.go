package postgres

import (
	"context"
	"database/sql"
	"strings"

	"vetcare360/internal/domain/visits"
)

type VisitsRepo struct {
	db *sql.DB
}

func NewVisitsRepo(db *sql.DB) *VisitsRepo {
	return &VisitsRepo{db: db}
}

type medicationDoc struct {
	Name         string `json:"name"`
	Dosage       string `json:"dosage"`
	Instructions string `json:"instructions"`
}

const visitColumns = `
	id, date, reason,
	animal_id, veterinarian_id,
	diagnosis, treatment, notes,
	medications, follow_up_needed, follow_up_date,
	created_at, updated_at
`

func (r *VisitsRepo) Create(ctx context.Context, v visits.Visit) error {
	meds, err := toJSONB(toMedicationDocs(v.Medications))
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO visits (`+visitColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
	`,
		v.ID,
		v.Date,
		v.Reason,
		v.AnimalID,
		v.VeterinarianID,
		v.Diagnosis,
		v.Treatment,
		v.Notes,
		meds,
		v.FollowUpNeeded,
		toNullTime(v.FollowUpDate),
		v.CreatedAt,
		v.UpdatedAt,
	)
	return err
}

func (r *VisitsRepo) Update(ctx context.Context, v visits.Visit) error {
	meds, err := toJSONB(toMedicationDocs(v.Medications))
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE visits
		SET
			date = $2,
			reason = $3,
			diagnosis = $4,
			treatment = $5,
			notes = $6,
			medications = $7,
			follow_up_needed = $8,
			follow_up_date = $9,
			updated_at = $10
		WHERE id = $1
	`,
		v.ID,
		v.Date,
		v.Reason,
		v.Diagnosis,
		v.Treatment,
		v.Notes,
		meds,
		v.FollowUpNeeded,
		toNullTime(v.FollowUpDate),
		v.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return visits.ErrNotFound
	}
	return nil
}

func (r *VisitsRepo) GetByID(ctx context.Context, id string) (visits.Visit, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return visits.Visit{}, visits.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+visitColumns+`
		FROM visits
		WHERE id = $1
	`, id)

	v, err := scanVisit(row.Scan)
	if err == sql.ErrNoRows {
		return visits.Visit{}, visits.ErrNotFound
	}
	return v, err
}

func (r *VisitsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM visits WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return visits.ErrNotFound
	}
	return nil
}

func (r *VisitsRepo) List(ctx context.Context) ([]visits.Visit, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+visitColumns+`
		FROM visits
		ORDER BY date DESC
	`)
	if err != nil {
		return nil, err
	}
	return collectVisits(rows)
}

func (r *VisitsRepo) ListByAnimal(ctx context.Context, animalID string) ([]visits.Visit, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+visitColumns+`
		FROM visits
		WHERE animal_id = $1
		ORDER BY date DESC
	`, animalID)
	if err != nil {
		return nil, err
	}
	return collectVisits(rows)
}

func collectVisits(rows *sql.Rows) ([]visits.Visit, error) {
	defer rows.Close()

	out := make([]visits.Visit, 0)
	for rows.Next() {
		v, err := scanVisit(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func scanVisit(scan func(dest ...any) error) (visits.Visit, error) {
	var (
		v        visits.Visit
		meds     []byte
		followUp sql.NullTime
	)
	if err := scan(
		&v.ID,
		&v.Date,
		&v.Reason,
		&v.AnimalID,
		&v.VeterinarianID,
		&v.Diagnosis,
		&v.Treatment,
		&v.Notes,
		&meds,
		&v.FollowUpNeeded,
		&followUp,
		&v.CreatedAt,
		&v.UpdatedAt,
	); err != nil {
		return visits.Visit{}, err
	}

	v.FollowUpDate = fromNullTime(followUp)

	var docs []medicationDoc
	if err := fromJSONB(meds, &docs); err != nil {
		return visits.Visit{}, err
	}
	v.Medications = make([]visits.Medication, 0, len(docs))
	for _, d := range docs {
		v.Medications = append(v.Medications, visits.Medication(d))
	}

	return v, nil
}

func toMedicationDocs(in []visits.Medication) []medicationDoc {
	out := make([]medicationDoc, 0, len(in))
	for _, m := range in {
		out = append(out, medicationDoc(m))
	}
	return out
}
