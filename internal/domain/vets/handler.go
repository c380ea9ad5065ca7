package vets

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"vetcare360/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/vets", func(vr chi.Router) {
		vr.Get("/", listVetsHandler(svc))
		vr.Post("/", createVetHandler(svc))
		vr.Get("/{vetID}", getVetHandler(svc))
		vr.Put("/{vetID}", updateVetHandler(svc))
		vr.Delete("/{vetID}", deleteVetHandler(svc))
	})
}

type createVetRequest struct {
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Specialty   string   `json:"specialty"`
	Email       string   `json:"email"`
	PhoneNumber string   `json:"phoneNumber"`
	WorkingDays []string `json:"workingDays"`
	Bio         string   `json:"bio"`
}

type updateVetRequest struct {
	FirstName   *string   `json:"firstName"`
	LastName    *string   `json:"lastName"`
	Specialty   *string   `json:"specialty"`
	Email       *string   `json:"email"`
	PhoneNumber *string   `json:"phoneNumber"`
	WorkingDays *[]string `json:"workingDays"`
	Bio         *string   `json:"bio"`
}

type vetResponse struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	FullName    string    `json:"fullName"`
	Specialty   string    `json:"specialty"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	WorkingDays []string  `json:"workingDays"`
	Bio         string    `json:"bio"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func listVetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, err.Error())
			return
		}

		out := make([]vetResponse, 0, len(items))
		for _, v := range items {
			out = append(out, toVetResponse(v))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func getVetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := svc.GetByID(r.Context(), chi.URLParam(r, "vetID"))
		if err != nil {
			writeVetError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toVetResponse(v))
	}
}

func createVetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createVetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		v, err := svc.Create(r.Context(), CreateInput{
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			Specialty:   req.Specialty,
			Email:       req.Email,
			PhoneNumber: req.PhoneNumber,
			WorkingDays: req.WorkingDays,
			Bio:         req.Bio,
		})
		if err != nil {
			writeVetError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, toVetResponse(v))
	}
}

func updateVetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateVetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		v, err := svc.Update(r.Context(), chi.URLParam(r, "vetID"), UpdateInput{
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			Specialty:   req.Specialty,
			Email:       req.Email,
			PhoneNumber: req.PhoneNumber,
			WorkingDays: req.WorkingDays,
			Bio:         req.Bio,
		})
		if err != nil {
			writeVetError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toVetResponse(v))
	}
}

func deleteVetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "vetID")); err != nil {
			writeVetError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Veterinarian removed"})
	}
}

func writeVetError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Veterinarian not found")
	case errors.Is(err, ErrConflict):
		httpx.WriteError(w, http.StatusBadRequest, "Veterinarian with this email already exists")
	case errors.Is(err, ErrInvalidInput):
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		httpx.WriteError(w, http.StatusInternalServerError, err.Error())
	}
}

func toVetResponse(v Veterinarian) vetResponse {
	return vetResponse{
		ID:          v.ID,
		FirstName:   v.FirstName,
		LastName:    v.LastName,
		FullName:    v.FullName(),
		Specialty:   v.Specialty,
		Email:       v.Email,
		PhoneNumber: v.PhoneNumber,
		WorkingDays: v.WorkingDays,
		Bio:         v.Bio,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}
