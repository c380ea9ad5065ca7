package visits

import "time"

// Medication es una prescripción puntual dentro de una visita.
type Medication struct {
	Name         string
	Dosage       string
	Instructions string
}

// Visit es un encuentro clínico entre un animal y un veterinario.
// Las referencias animal/veterinario son inmutables después del alta.
type Visit struct {
	ID string

	Date   time.Time
	Reason string

	AnimalID       string
	VeterinarianID string

	Diagnosis string
	Treatment string
	Notes     string

	Medications []Medication

	FollowUpNeeded bool
	FollowUpDate   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
