package animals

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"vetcare360/internal/domain/vets"
	"vetcare360/internal/domain/visits"
	"vetcare360/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, visitsSvc *visits.Service, vetsSvc *vets.Service) {
	r.Route("/animals", func(ar chi.Router) {
		ar.Get("/", listAnimalsHandler(svc))
		ar.Post("/", createAnimalHandler(svc))

		ar.Get("/owner/{ownerID}", listAnimalsByOwnerHandler(svc, visitsSvc, vetsSvc))

		ar.Get("/{animalID}", getAnimalHandler(svc, visitsSvc, vetsSvc))
		ar.Put("/{animalID}", updateAnimalHandler(svc))
		ar.Delete("/{animalID}", deleteAnimalHandler(svc))
	})
}

type medicationCoursePayload struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type medicalHistoryPayload struct {
	Allergies          []string                  `json:"allergies"`
	ChronicConditions  []string                  `json:"chronicConditions"`
	CurrentMedications []medicationCoursePayload `json:"currentMedications"`
}

type createAnimalRequest struct {
	Name           string                 `json:"name"`
	Species        string                 `json:"species"`
	Breed          string                 `json:"breed"`
	BirthDate      string                 `json:"birthDate"` // YYYY-MM-DD opcional
	Weight         float64                `json:"weight"`
	Color          string                 `json:"color"`
	Gender         string                 `json:"gender"`
	OwnerID        string                 `json:"ownerId"`
	MedicalHistory *medicalHistoryPayload `json:"medicalHistory"`
}

type updateAnimalRequest struct {
	Name           *string                `json:"name"`
	Species        *string                `json:"species"`
	Breed          *string                `json:"breed"`
	BirthDate      *string                `json:"birthDate"`
	Weight         *float64               `json:"weight"`
	Color          *string                `json:"color"`
	Gender         *string                `json:"gender"`
	MedicalHistory *medicalHistoryPayload `json:"medicalHistory"`
}

type ownerRef struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type vetRef struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Specialty string `json:"specialty"`
}

type visitDoc struct {
	ID             string     `json:"id"`
	Date           time.Time  `json:"date"`
	Reason         string     `json:"reason"`
	Diagnosis      string     `json:"diagnosis"`
	Treatment      string     `json:"treatment"`
	FollowUpNeeded bool       `json:"followUpNeeded"`
	FollowUpDate   *time.Time `json:"followUpDate"`
	VeterinarianID string     `json:"veterinarianId"`
	Veterinarian   *vetRef    `json:"veterinarian"`
}

type medicationCourseResponse struct {
	Name      string     `json:"name"`
	Dosage    string     `json:"dosage"`
	Frequency string     `json:"frequency"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}

type medicalHistoryResponse struct {
	Allergies          []string                   `json:"allergies"`
	ChronicConditions  []string                   `json:"chronicConditions"`
	CurrentMedications []medicationCourseResponse `json:"currentMedications"`
}

type animalResponse struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	Species        string                 `json:"species"`
	Breed          string                 `json:"breed"`
	BirthDate      *time.Time             `json:"birthDate"`
	Age            *int                   `json:"age"`
	Weight         float64                `json:"weight"`
	Color          string                 `json:"color"`
	Gender         string                 `json:"gender"`
	OwnerID        string                 `json:"ownerId"`
	Owner          *ownerRef              `json:"owner"`
	VisitIDs       []string               `json:"visitIds"`
	Visits         []visitDoc             `json:"visits,omitempty"`
	MedicalHistory medicalHistoryResponse `json:"medicalHistory"`
	CreatedAt      time.Time              `json:"createdAt"`
	UpdatedAt      time.Time              `json:"updatedAt"`
}

func listAnimalsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, err.Error())
			return
		}

		out := make([]animalResponse, 0, len(items))
		for _, a := range items {
			resp := toAnimalResponse(a)
			attachOwner(r, svc, &resp)
			out = append(out, resp)
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func listAnimalsByOwnerHandler(svc *Service, visitsSvc *visits.Service, vetsSvc *vets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByOwner(r.Context(), chi.URLParam(r, "ownerID"))
		if err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, err.Error())
			return
		}

		out := make([]animalResponse, 0, len(items))
		for _, a := range items {
			resp := toAnimalResponse(a)
			attachOwner(r, svc, &resp)
			resp.Visits = expandVisitRefs(r, visitsSvc, vetsSvc, a.VisitIDs)
			out = append(out, resp)
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func getAnimalHandler(svc *Service, visitsSvc *visits.Service, vetsSvc *vets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			writeAnimalError(w, err)
			return
		}

		resp := toAnimalResponse(a)
		attachOwner(r, svc, &resp)
		resp.Visits = expandVisitRefs(r, visitsSvc, vetsSvc, a.VisitIDs)
		httpx.WriteJSON(w, http.StatusOK, resp)
	}
}

func createAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAnimalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		bd, ok := parseOptionalDate(req.BirthDate)
		if !ok {
			httpx.WriteError(w, http.StatusBadRequest, "birthDate must be RFC3339 or YYYY-MM-DD")
			return
		}
		history, ok := toMedicalHistory(req.MedicalHistory)
		if !ok {
			httpx.WriteError(w, http.StatusBadRequest, "medication dates must be RFC3339 or YYYY-MM-DD")
			return
		}

		a, err := svc.Create(r.Context(), CreateInput{
			OwnerID:        req.OwnerID,
			Name:           req.Name,
			Species:        req.Species,
			Breed:          req.Breed,
			BirthDate:      bd,
			Weight:         req.Weight,
			Color:          req.Color,
			Gender:         req.Gender,
			MedicalHistory: history,
		})
		if err != nil {
			writeAnimalError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, toAnimalResponse(a))
	}
}

func updateAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateAnimalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		in := UpdateInput{
			Name:    req.Name,
			Species: req.Species,
			Breed:   req.Breed,
			Weight:  req.Weight,
			Color:   req.Color,
			Gender:  req.Gender,
		}
		if req.BirthDate != nil {
			bd, ok := parseOptionalDate(*req.BirthDate)
			if !ok {
				httpx.WriteError(w, http.StatusBadRequest, "birthDate must be RFC3339 or YYYY-MM-DD")
				return
			}
			in.BirthDate = bd
		}
		if req.MedicalHistory != nil {
			history, ok := toMedicalHistory(req.MedicalHistory)
			if !ok {
				httpx.WriteError(w, http.StatusBadRequest, "medication dates must be RFC3339 or YYYY-MM-DD")
				return
			}
			in.MedicalHistory = history
		}

		a, err := svc.Update(r.Context(), chi.URLParam(r, "animalID"), in)
		if err != nil {
			writeAnimalError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

func deleteAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "animalID")); err != nil {
			writeAnimalError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Animal removed"})
	}
}

func writeAnimalError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Animal not found")
	case errors.Is(err, ErrOwnerNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Owner not found")
	case errors.Is(err, ErrInvalidInput):
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		httpx.WriteError(w, http.StatusInternalServerError, err.Error())
	}
}

func attachOwner(r *http.Request, svc *Service, resp *animalResponse) {
	if o, ok, err := svc.OwnerSummary(r.Context(), resp.OwnerID); err == nil && ok {
		resp.Owner = &ownerRef{ID: o.ID, FirstName: o.FirstName, LastName: o.LastName}
	}
}

// expandVisitRefs resuelve los ids de visitas a documentos; las
// referencias colgantes se saltan.
func expandVisitRefs(r *http.Request, visitsSvc *visits.Service, vetsSvc *vets.Service, ids []string) []visitDoc {
	out := make([]visitDoc, 0, len(ids))
	for _, id := range ids {
		v, err := visitsSvc.GetByID(r.Context(), id)
		if err != nil {
			continue
		}

		doc := visitDoc{
			ID:             v.ID,
			Date:           v.Date,
			Reason:         v.Reason,
			Diagnosis:      v.Diagnosis,
			Treatment:      v.Treatment,
			FollowUpNeeded: v.FollowUpNeeded,
			FollowUpDate:   v.FollowUpDate,
			VeterinarianID: v.VeterinarianID,
		}
		if vet, err := vetsSvc.GetByID(r.Context(), v.VeterinarianID); err == nil {
			doc.Veterinarian = &vetRef{
				ID:        vet.ID,
				FirstName: vet.FirstName,
				LastName:  vet.LastName,
				Specialty: vet.Specialty,
			}
		}
		out = append(out, doc)
	}
	return out
}

func toAnimalResponse(a Animal) animalResponse {
	var age *int
	if years, ok := a.AgeYears(time.Now()); ok {
		age = &years
	}

	history := medicalHistoryResponse{
		Allergies:          emptyIfNil(a.MedicalHistory.Allergies),
		ChronicConditions:  emptyIfNil(a.MedicalHistory.ChronicConditions),
		CurrentMedications: make([]medicationCourseResponse, 0, len(a.MedicalHistory.CurrentMedications)),
	}
	for _, m := range a.MedicalHistory.CurrentMedications {
		history.CurrentMedications = append(history.CurrentMedications, medicationCourseResponse{
			Name:      m.Name,
			Dosage:    m.Dosage,
			Frequency: m.Frequency,
			StartDate: m.StartDate,
			EndDate:   m.EndDate,
		})
	}

	return animalResponse{
		ID:             a.ID,
		Name:           a.Name,
		Species:        a.Species,
		Breed:          a.Breed,
		BirthDate:      a.BirthDate,
		Age:            age,
		Weight:         a.Weight,
		Color:          a.Color,
		Gender:         string(a.Gender),
		OwnerID:        a.OwnerID,
		VisitIDs:       emptyIfNil(a.VisitIDs),
		MedicalHistory: history,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

func toMedicalHistory(in *medicalHistoryPayload) (*MedicalHistory, bool) {
	if in == nil {
		return nil, true
	}

	out := MedicalHistory{
		Allergies:          emptyIfNil(in.Allergies),
		ChronicConditions:  emptyIfNil(in.ChronicConditions),
		CurrentMedications: make([]MedicationCourse, 0, len(in.CurrentMedications)),
	}
	for _, m := range in.CurrentMedications {
		start, ok := parseOptionalDate(m.StartDate)
		if !ok {
			return nil, false
		}
		end, ok := parseOptionalDate(m.EndDate)
		if !ok {
			return nil, false
		}
		out.CurrentMedications = append(out.CurrentMedications, MedicationCourse{
			Name:      m.Name,
			Dosage:    m.Dosage,
			Frequency: m.Frequency,
			StartDate: start,
			EndDate:   end,
		})
	}
	return &out, true
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
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
