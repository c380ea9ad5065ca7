package animals

import (
	"strings"
	"time"
)

// Gender define el sexo del animal.
// @Enum male, female, unknown
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderUnknown Gender = "unknown"
)

// ParseGender normaliza case-insensitive; vacío cae en unknown.
func ParseGender(s string) (Gender, bool) {
	switch Gender(strings.ToLower(strings.TrimSpace(s))) {
	case GenderMale:
		return GenderMale, true
	case GenderFemale:
		return GenderFemale, true
	case GenderUnknown, "":
		return GenderUnknown, true
	default:
		return GenderUnknown, false
	}
}

// MedicationCourse es una medicación en curso dentro de la historia médica
// (distinta de la prescripción puntual de una visita).
type MedicationCourse struct {
	Name      string
	Dosage    string
	Frequency string
	StartDate *time.Time
	EndDate   *time.Time
}

type MedicalHistory struct {
	Allergies          []string
	ChronicConditions  []string
	CurrentMedications []MedicationCourse
}

// Animal es un paciente que pertenece a exactamente un Owner.
// OwnerID es inmutable después del alta; VisitIDs es la back-reference
// que mantiene el service de visits.
type Animal struct {
	ID string

	Name    string
	Species string
	Breed   string

	BirthDate *time.Time
	Weight    float64
	Color     string
	Gender    Gender

	OwnerID  string
	VisitIDs []string

	MedicalHistory MedicalHistory

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AgeYears calcula la edad en años enteros; false cuando no hay fecha.
func (a Animal) AgeYears(now time.Time) (int, bool) {
	if a.BirthDate == nil {
		return 0, false
	}
	years := now.Year() - a.BirthDate.Year()
	anniversary := a.BirthDate.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	if years < 0 {
		years = 0
	}
	return years, true
}
