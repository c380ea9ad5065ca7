package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"vetcare360/internal/domain/animals"
)

type AnimalsRepo struct {
	db *sql.DB
}

func NewAnimalsRepo(db *sql.DB) *AnimalsRepo {
	return &AnimalsRepo{db: db}
}

type medicationCourseDoc struct {
	Name      string     `json:"name"`
	Dosage    string     `json:"dosage"`
	Frequency string     `json:"frequency"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}

type medicalHistoryDoc struct {
	Allergies          []string              `json:"allergies"`
	ChronicConditions  []string              `json:"chronicConditions"`
	CurrentMedications []medicationCourseDoc `json:"currentMedications"`
}

const animalColumns = `
	id, name, species, breed,
	birth_date, weight, color, gender,
	owner_id, visit_ids, medical_history,
	created_at, updated_at
`

func (r *AnimalsRepo) Create(ctx context.Context, a animals.Animal) error {
	visitIDs, history, err := animalDocs(a)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO animals (`+animalColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
	`,
		a.ID,
		a.Name,
		a.Species,
		a.Breed,
		toNullTime(a.BirthDate),
		a.Weight,
		a.Color,
		string(a.Gender),
		a.OwnerID,
		visitIDs,
		history,
		a.CreatedAt,
		a.UpdatedAt,
	)
	return err
}

func (r *AnimalsRepo) Update(ctx context.Context, a animals.Animal) error {
	visitIDs, history, err := animalDocs(a)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE animals
		SET
			name = $2,
			species = $3,
			breed = $4,
			birth_date = $5,
			weight = $6,
			color = $7,
			gender = $8,
			visit_ids = $9,
			medical_history = $10,
			updated_at = $11
		WHERE id = $1
	`,
		a.ID,
		a.Name,
		a.Species,
		a.Breed,
		toNullTime(a.BirthDate),
		a.Weight,
		a.Color,
		string(a.Gender),
		visitIDs,
		history,
		a.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return animals.ErrNotFound
	}
	return nil
}

func (r *AnimalsRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return animals.Animal{}, animals.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+animalColumns+`
		FROM animals
		WHERE id = $1
	`, id)

	a, err := scanAnimal(row.Scan)
	if err == sql.ErrNoRows {
		return animals.Animal{}, animals.ErrNotFound
	}
	return a, err
}

func (r *AnimalsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM animals WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return animals.ErrNotFound
	}
	return nil
}

func (r *AnimalsRepo) List(ctx context.Context) ([]animals.Animal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+animalColumns+`
		FROM animals
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	return collectAnimals(rows)
}

func (r *AnimalsRepo) ListByOwner(ctx context.Context, ownerID string) ([]animals.Animal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+animalColumns+`
		FROM animals
		WHERE owner_id = $1
		ORDER BY name ASC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	return collectAnimals(rows)
}

func collectAnimals(rows *sql.Rows) ([]animals.Animal, error) {
	defer rows.Close()

	out := make([]animals.Animal, 0)
	for rows.Next() {
		a, err := scanAnimal(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func scanAnimal(scan func(dest ...any) error) (animals.Animal, error) {
	var (
		a        animals.Animal
		bd       sql.NullTime
		gender   string
		visitIDs []byte
		history  []byte
	)
	if err := scan(
		&a.ID,
		&a.Name,
		&a.Species,
		&a.Breed,
		&bd,
		&a.Weight,
		&a.Color,
		&gender,
		&a.OwnerID,
		&visitIDs,
		&history,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return animals.Animal{}, err
	}

	a.BirthDate = fromNullTime(bd)
	a.Gender = animals.Gender(gender)

	a.VisitIDs = []string{}
	if err := fromJSONB(visitIDs, &a.VisitIDs); err != nil {
		return animals.Animal{}, err
	}

	var doc medicalHistoryDoc
	if err := fromJSONB(history, &doc); err != nil {
		return animals.Animal{}, err
	}
	a.MedicalHistory = fromHistoryDoc(doc)

	return a, nil
}

func animalDocs(a animals.Animal) (visitIDs, history []byte, err error) {
	visitIDs, err = toJSONB(a.VisitIDs)
	if err != nil {
		return nil, nil, err
	}
	history, err = toJSONB(toHistoryDoc(a.MedicalHistory))
	if err != nil {
		return nil, nil, err
	}
	return visitIDs, history, nil
}

func toHistoryDoc(h animals.MedicalHistory) medicalHistoryDoc {
	doc := medicalHistoryDoc{
		Allergies:          h.Allergies,
		ChronicConditions:  h.ChronicConditions,
		CurrentMedications: make([]medicationCourseDoc, 0, len(h.CurrentMedications)),
	}
	for _, m := range h.CurrentMedications {
		doc.CurrentMedications = append(doc.CurrentMedications, medicationCourseDoc(m))
	}
	return doc
}

func fromHistoryDoc(doc medicalHistoryDoc) animals.MedicalHistory {
	h := animals.MedicalHistory{
		Allergies:          doc.Allergies,
		ChronicConditions:  doc.ChronicConditions,
		CurrentMedications: make([]animals.MedicationCourse, 0, len(doc.CurrentMedications)),
	}
	for _, m := range doc.CurrentMedications {
		h.CurrentMedications = append(h.CurrentMedications, animals.MedicationCourse(m))
	}
	return h
}
