package owners

import (
	"fmt"
	"time"
)

type Address struct {
	Street  string
	City    string
	State   string
	ZipCode string
}

// Owner es la persona responsable de uno o más animales.
// AnimalIDs es la back-reference que espeja Animal.OwnerID; la mantiene
// el service, no el store.
type Owner struct {
	ID string

	FirstName string
	LastName  string

	Address     Address
	PhoneNumber string
	Email       string

	AnimalIDs []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (o Owner) FullName() string {
	return o.FirstName + " " + o.LastName
}

func (o Owner) FullAddress() string {
	if o.Address.Street == "" {
		return ""
	}
	return fmt.Sprintf("%s, %s, %s %s", o.Address.Street, o.Address.City, o.Address.State, o.Address.ZipCode)
}
