package medicalrecords

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
	r.Route("/medical-records", func(mr chi.Router) {
		mr.Post("/", createRecordHandler(svc))
		mr.Get("/", listRecordsHandler(svc))
		mr.Get("/{recordID}", getRecordHandler(svc))
	})
}

type createRecordRequest struct {
	PatientID          string   `json:"patient_id"`
	PatientName        string   `json:"patient_name"`
	Date               string   `json:"date"` // YYYY-MM-DD
	Diagnoses          []string `json:"diagnoses"`
	Treatment          string   `json:"treatment"`
	FollowUpDate       string   `json:"follow_up_date"` // YYYY-MM-DD opcional
	Veterinarian       string   `json:"veterinarian"`
	TreatmentCompleted bool     `json:"treatment_completed"`
}

type recordResponse struct {
	ID                 string    `json:"id"`
	PatientID          string    `json:"patient_id"`
	PatientName        string    `json:"patient_name,omitempty"`
	Date               string    `json:"date"`
	Diagnoses          []string  `json:"diagnoses"`
	Treatment          string    `json:"treatment,omitempty"`
	FollowUpDate       string    `json:"follow_up_date,omitempty"`
	Veterinarian       string    `json:"veterinarian"`
	TreatmentCompleted bool      `json:"treatment_completed"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func createRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		rec, err := svc.Create(r.Context(), CreateInput{
			PatientID:          req.PatientID,
			PatientName:        req.PatientName,
			Date:               req.Date,
			Diagnoses:          req.Diagnoses,
			Treatment:          req.Treatment,
			FollowUpDate:       req.FollowUpDate,
			Veterinarian:       req.Veterinarian,
			TreatmentCompleted: req.TreatmentCompleted,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toRecordResponse(rec))
	}
}

func listRecordsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAll(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]recordResponse, 0, len(items))
		for _, rec := range items {
			out = append(out, toRecordResponse(rec))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func getRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := svc.GetByID(r.Context(), chi.URLParam(r, "recordID"))
		if err != nil {
			http.Error(w, "record not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toRecordResponse(rec))
	}
}

func toRecordResponse(rec MedicalRecord) recordResponse {
	return recordResponse{
		ID:                 rec.ID,
		PatientID:          rec.PatientID,
		PatientName:        rec.PatientName,
		Date:               rec.Date,
		Diagnoses:          rec.Diagnoses,
		Treatment:          rec.Treatment,
		FollowUpDate:       rec.FollowUpDate,
		Veterinarian:       rec.Veterinarian,
		TreatmentCompleted: rec.TreatmentCompleted,
		CreatedAt:          rec.CreatedAt,
		UpdatedAt:          rec.UpdatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
