package vaccinations

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"clinic-manager/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/vaccinations", func(vr chi.Router) {
		vr.Post("/", createVaccinationHandler(svc))
		vr.Get("/", listVaccinationsHandler(svc))
		vr.Get("/{vaccinationID}", getVaccinationHandler(svc))
	})
}

type createVaccinationRequest struct {
	PatientID   string `json:"patient_id"`
	PatientName string `json:"patient_name"`
	VaccineName string `json:"vaccine_name"`
	AppliedDate string `json:"applied_date"`  // YYYY-MM-DD opcional
	NextDueDate string `json:"next_due_date"` // YYYY-MM-DD opcional
}

type vaccinationResponse struct {
	ID          string    `json:"id"`
	PatientID   string    `json:"patient_id,omitempty"`
	PatientName string    `json:"patient_name,omitempty"`
	VaccineName string    `json:"vaccine_name"`
	AppliedDate string    `json:"applied_date,omitempty"`
	NextDueDate string    `json:"next_due_date,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func createVaccinationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createVaccinationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		v, err := svc.Create(r.Context(), CreateInput{
			PatientID:   req.PatientID,
			PatientName: req.PatientName,
			VaccineName: req.VaccineName,
			AppliedDate: req.AppliedDate,
			NextDueDate: req.NextDueDate,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toVaccinationResponse(v))
	}
}

func listVaccinationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAll(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]vaccinationResponse, 0, len(items))
		for _, v := range items {
			out = append(out, toVaccinationResponse(v))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func getVaccinationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := svc.GetByID(r.Context(), chi.URLParam(r, "vaccinationID"))
		if err != nil {
			http.Error(w, "vaccination not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toVaccinationResponse(v))
	}
}

func toVaccinationResponse(v Vaccination) vaccinationResponse {
	return vaccinationResponse{
		ID:          v.ID,
		PatientID:   v.PatientID,
		PatientName: v.PatientName,
		VaccineName: v.VaccineName,
		AppliedDate: v.AppliedDate,
		NextDueDate: v.NextDueDate,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
