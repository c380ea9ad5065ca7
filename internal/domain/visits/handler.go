package visits

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"vetcare360/internal/domain/vets"
	"vetcare360/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, vetsSvc *vets.Service) {
	r.Route("/visits", func(vr chi.Router) {
		vr.Get("/", listVisitsHandler(svc, vetsSvc))
		vr.Post("/", createVisitHandler(svc))

		vr.Get("/animal/{animalID}", listVisitsByAnimalHandler(svc, vetsSvc))

		vr.Get("/{visitID}", getVisitHandler(svc, vetsSvc))
		vr.Put("/{visitID}", updateVisitHandler(svc))
		vr.Delete("/{visitID}", deleteVisitHandler(svc))
	})
}

type medicationPayload struct {
	Name         string `json:"name"`
	Dosage       string `json:"dosage"`
	Instructions string `json:"instructions"`
}

type createVisitRequest struct {
	Date           string              `json:"date"` // RFC3339 o YYYY-MM-DD; vacío = ahora
	Reason         string              `json:"reason"`
	AnimalID       string              `json:"animalId"`
	VeterinarianID string              `json:"veterinarianId"`
	Diagnosis      string              `json:"diagnosis"`
	Treatment      string              `json:"treatment"`
	Notes          string              `json:"notes"`
	Medications    []medicationPayload `json:"medications"`
	FollowUpNeeded bool                `json:"followUpNeeded"`
	FollowUpDate   string              `json:"followUpDate"`
}

type updateVisitRequest struct {
	Date           *string              `json:"date"`
	Reason         *string              `json:"reason"`
	Diagnosis      *string              `json:"diagnosis"`
	Treatment      *string              `json:"treatment"`
	Notes          *string              `json:"notes"`
	Medications    *[]medicationPayload `json:"medications"`
	FollowUpNeeded *bool                `json:"followUpNeeded"`
	FollowUpDate   *string              `json:"followUpDate"`
}

type animalRef struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Species string `json:"species"`
	Breed   string `json:"breed"`
}

type vetRef struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Specialty string `json:"specialty"`
}

type visitResponse struct {
	ID             string              `json:"id"`
	Date           time.Time           `json:"date"`
	Reason         string              `json:"reason"`
	AnimalID       string              `json:"animalId"`
	VeterinarianID string              `json:"veterinarianId"`
	Animal         *animalRef          `json:"animal"`
	Veterinarian   *vetRef             `json:"veterinarian"`
	Diagnosis      string              `json:"diagnosis"`
	Treatment      string              `json:"treatment"`
	Notes          string              `json:"notes"`
	Medications    []medicationPayload `json:"medications"`
	FollowUpNeeded bool                `json:"followUpNeeded"`
	FollowUpDate   *time.Time          `json:"followUpDate"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}

func listVisitsHandler(svc *Service, vetsSvc *vets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, err.Error())
			return
		}
		httpx.WriteJSON(w, http.StatusOK, expandVisits(r, svc, vetsSvc, items))
	}
}

func listVisitsByAnimalHandler(svc *Service, vetsSvc *vets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByAnimal(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, err.Error())
			return
		}
		httpx.WriteJSON(w, http.StatusOK, expandVisits(r, svc, vetsSvc, items))
	}
}

func getVisitHandler(svc *Service, vetsSvc *vets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := svc.GetByID(r.Context(), chi.URLParam(r, "visitID"))
		if err != nil {
			writeVisitError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, expandVisit(r, svc, vetsSvc, v))
	}
}

func createVisitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createVisitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		date, ok := parseOptionalDate(req.Date)
		if !ok {
			httpx.WriteError(w, http.StatusBadRequest, "date must be RFC3339 or YYYY-MM-DD")
			return
		}
		followUp, ok := parseOptionalDate(req.FollowUpDate)
		if !ok {
			httpx.WriteError(w, http.StatusBadRequest, "followUpDate must be RFC3339 or YYYY-MM-DD")
			return
		}

		v, err := svc.Create(r.Context(), CreateInput{
			Date:           date,
			Reason:         req.Reason,
			AnimalID:       req.AnimalID,
			VeterinarianID: req.VeterinarianID,
			Diagnosis:      req.Diagnosis,
			Treatment:      req.Treatment,
			Notes:          req.Notes,
			Medications:    toMedications(req.Medications),
			FollowUpNeeded: req.FollowUpNeeded,
			FollowUpDate:   followUp,
		})
		if err != nil {
			writeVisitError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, toVisitResponse(v))
	}
}

func updateVisitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateVisitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		in := UpdateInput{
			Reason:         req.Reason,
			Diagnosis:      req.Diagnosis,
			Treatment:      req.Treatment,
			Notes:          req.Notes,
			FollowUpNeeded: req.FollowUpNeeded,
		}
		if req.Date != nil {
			d, ok := parseOptionalDate(*req.Date)
			if !ok {
				httpx.WriteError(w, http.StatusBadRequest, "date must be RFC3339 or YYYY-MM-DD")
				return
			}
			in.Date = d
		}
		if req.FollowUpDate != nil {
			d, ok := parseOptionalDate(*req.FollowUpDate)
			if !ok {
				httpx.WriteError(w, http.StatusBadRequest, "followUpDate must be RFC3339 or YYYY-MM-DD")
				return
			}
			in.FollowUpDate = d
		}
		if req.Medications != nil {
			meds := toMedications(*req.Medications)
			in.Medications = &meds
		}

		v, err := svc.Update(r.Context(), chi.URLParam(r, "visitID"), in)
		if err != nil {
			writeVisitError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toVisitResponse(v))
	}
}

func deleteVisitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "visitID")); err != nil {
			writeVisitError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Visit removed"})
	}
}

func writeVisitError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Visit not found")
	case errors.Is(err, ErrAnimalNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Animal not found")
	case errors.Is(err, ErrInvalidInput):
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		httpx.WriteError(w, http.StatusInternalServerError, err.Error())
	}
}

func expandVisits(r *http.Request, svc *Service, vetsSvc *vets.Service, items []Visit) []visitResponse {
	out := make([]visitResponse, 0, len(items))
	for _, v := range items {
		out = append(out, expandVisit(r, svc, vetsSvc, v))
	}
	return out
}

// expandVisit resuelve las referencias animal/veterinario a resúmenes.
// Una referencia colgante (registro borrado) queda en null.
func expandVisit(r *http.Request, svc *Service, vetsSvc *vets.Service, v Visit) visitResponse {
	resp := toVisitResponse(v)

	if a, ok, err := svc.AnimalSummary(r.Context(), v.AnimalID); err == nil && ok {
		resp.Animal = &animalRef{ID: a.ID, Name: a.Name, Species: a.Species, Breed: a.Breed}
	}
	if vet, err := vetsSvc.GetByID(r.Context(), v.VeterinarianID); err == nil {
		resp.Veterinarian = &vetRef{
			ID:        vet.ID,
			FirstName: vet.FirstName,
			LastName:  vet.LastName,
			Specialty: vet.Specialty,
		}
	}
	return resp
}

func toVisitResponse(v Visit) visitResponse {
	meds := make([]medicationPayload, 0, len(v.Medications))
	for _, m := range v.Medications {
		meds = append(meds, medicationPayload{Name: m.Name, Dosage: m.Dosage, Instructions: m.Instructions})
	}
	return visitResponse{
		ID:             v.ID,
		Date:           v.Date,
		Reason:         v.Reason,
		AnimalID:       v.AnimalID,
		VeterinarianID: v.VeterinarianID,
		Diagnosis:      v.Diagnosis,
		Treatment:      v.Treatment,
		Notes:          v.Notes,
		Medications:    meds,
		FollowUpNeeded: v.FollowUpNeeded,
		FollowUpDate:   v.FollowUpDate,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}

func toMedications(in []medicationPayload) []Medication {
	out := make([]Medication, 0, len(in))
	for _, m := range in {
		out = append(out, Medication{Name: m.Name, Dosage: m.Dosage, Instructions: m.Instructions})
	}
	return out
}

// parseOptionalDate acepta RFC3339 o fecha corta; vacío devuelve nil.
func parseOptionalDate(s string) (*time.Time, bool) {
	if s == "" {
		return nil, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t, true
	}
	return nil, false
}
