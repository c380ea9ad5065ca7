package vets

import "time"

// DefaultWorkingDays aplica cuando el alta no especifica días.
var DefaultWorkingDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// Veterinarian es personal de la clínica que atiende visitas.
// No tiene relación de pertenencia con Owner/Animal.
type Veterinarian struct {
	ID string

	FirstName string
	LastName  string
	Specialty string

	Email       string // único a nivel global
	PhoneNumber string

	WorkingDays []string
	Bio         string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (v Veterinarian) FullName() string {
	return v.FirstName + " " + v.LastName
}
