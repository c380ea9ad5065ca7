package owners

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"vetcare360/internal/domain/animals"
	"vetcare360/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, animalsSvc *animals.Service) {
	r.Route("/owners", func(or chi.Router) {
		or.Get("/", listOwnersHandler(svc))
		or.Post("/", createOwnerHandler(svc))

		// la ruta literal "search" gana sobre el parámetro {ownerID}
		or.Get("/search/{lastName}", searchOwnersHandler(svc))

		or.Get("/{ownerID}", getOwnerHandler(svc, animalsSvc))
		or.Put("/{ownerID}", updateOwnerHandler(svc))
		or.Delete("/{ownerID}", deleteOwnerHandler(svc))
	})
}

type addressPayload struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

type createOwnerRequest struct {
	FirstName   string         `json:"firstName"`
	LastName    string         `json:"lastName"`
	Address     addressPayload `json:"address"`
	PhoneNumber string         `json:"phoneNumber"`
	Email       string         `json:"email"`
}

type updateOwnerRequest struct {
	FirstName   *string         `json:"firstName"`
	LastName    *string         `json:"lastName"`
	Address     *addressPayload `json:"address"`
	PhoneNumber *string         `json:"phoneNumber"`
	Email       *string         `json:"email"`
}

type animalDoc struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Species   string     `json:"species"`
	Breed     string     `json:"breed"`
	BirthDate *time.Time `json:"birthDate"`
	Age       *int       `json:"age"`
	Weight    float64    `json:"weight"`
	Color     string     `json:"color"`
	Gender    string     `json:"gender"`
}

type ownerResponse struct {
	ID          string         `json:"id"`
	FirstName   string         `json:"firstName"`
	LastName    string         `json:"lastName"`
	FullName    string         `json:"fullName"`
	Address     addressPayload `json:"address"`
	FullAddress string         `json:"fullAddress"`
	PhoneNumber string         `json:"phoneNumber"`
	Email       string         `json:"email"`
	AnimalIDs   []string       `json:"animalIds"`
	Animals     []animalDoc    `json:"animals,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

func listOwnersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, err.Error())
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toOwnerResponses(items))
	}
}

func searchOwnersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.SearchByLastName(r.Context(), chi.URLParam(r, "lastName"))
		if err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, err.Error())
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toOwnerResponses(items))
	}
}

func getOwnerHandler(svc *Service, animalsSvc *animals.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		o, err := svc.GetByID(r.Context(), chi.URLParam(r, "ownerID"))
		if err != nil {
			writeOwnerError(w, err)
			return
		}

		resp := toOwnerResponse(o)
		resp.Animals = expandAnimalRefs(r, animalsSvc, o.AnimalIDs)
		httpx.WriteJSON(w, http.StatusOK, resp)
	}
}

func createOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createOwnerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		o, err := svc.Create(r.Context(), CreateInput{
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			Address:     toAddress(req.Address),
			PhoneNumber: req.PhoneNumber,
			Email:       req.Email,
		})
		if err != nil {
			writeOwnerError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, toOwnerResponse(o))
	}
}

func updateOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateOwnerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		in := UpdateInput{
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			PhoneNumber: req.PhoneNumber,
			Email:       req.Email,
		}
		if req.Address != nil {
			addr := toAddress(*req.Address)
			in.Address = &addr
		}

		o, err := svc.Update(r.Context(), chi.URLParam(r, "ownerID"), in)
		if err != nil {
			writeOwnerError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toOwnerResponse(o))
	}
}

func deleteOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "ownerID")); err != nil {
			writeOwnerError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Owner removed"})
	}
}

func writeOwnerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Owner not found")
	case errors.Is(err, ErrInvalidInput):
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		httpx.WriteError(w, http.StatusInternalServerError, err.Error())
	}
}

// expandAnimalRefs resuelve los ids a documentos; referencias colgantes
// se saltan.
func expandAnimalRefs(r *http.Request, animalsSvc *animals.Service, ids []string) []animalDoc {
	out := make([]animalDoc, 0, len(ids))
	for _, id := range ids {
		a, err := animalsSvc.GetByID(r.Context(), id)
		if err != nil {
			continue
		}

		doc := animalDoc{
			ID:        a.ID,
			Name:      a.Name,
			Species:   a.Species,
			Breed:     a.Breed,
			BirthDate: a.BirthDate,
			Weight:    a.Weight,
			Color:     a.Color,
			Gender:    string(a.Gender),
		}
		if years, ok := a.AgeYears(time.Now()); ok {
			doc.Age = &years
		}
		out = append(out, doc)
	}
	return out
}

func toOwnerResponses(items []Owner) []ownerResponse {
	out := make([]ownerResponse, 0, len(items))
	for _, o := range items {
		out = append(out, toOwnerResponse(o))
	}
	return out
}

func toOwnerResponse(o Owner) ownerResponse {
	animalIDs := o.AnimalIDs
	if animalIDs == nil {
		animalIDs = []string{}
	}
	return ownerResponse{
		ID:        o.ID,
		FirstName: o.FirstName,
		LastName:  o.LastName,
		FullName:  o.FullName(),
		Address: addressPayload{
			Street:  o.Address.Street,
			City:    o.Address.City,
			State:   o.Address.State,
			ZipCode: o.Address.ZipCode,
		},
		FullAddress: o.FullAddress(),
		PhoneNumber: o.PhoneNumber,
		Email:       o.Email,
		AnimalIDs:   animalIDs,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func toAddress(a addressPayload) Address {
	return Address{
		Street:  a.Street,
		City:    a.City,
		State:   a.State,
		ZipCode: a.ZipCode,
	}
}
