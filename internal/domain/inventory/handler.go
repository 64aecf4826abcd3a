package inventory

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
	r.Route("/inventory", func(ir chi.Router) {
		ir.Post("/", createItemHandler(svc))
		ir.Get("/", listItemsHandler(svc))
		ir.Get("/{itemID}", getItemHandler(svc))
	})
}

type createItemRequest struct {
	Name       string `json:"name"`
	Category   string `json:"category"`
	Unit       string `json:"unit"`
	Quantity   *int   `json:"quantity"`
	Threshold  *int   `json:"threshold"`
	ExpiryDate string `json:"expiry_date"` // YYYY-MM-DD opcional
}

type itemResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	Unit       string    `json:"unit"`
	Quantity   *int      `json:"quantity,omitempty"`
	Threshold  *int      `json:"threshold,omitempty"`
	ExpiryDate string    `json:"expiry_date,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func createItemHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		it, err := svc.Create(r.Context(), CreateInput{
			Name:       req.Name,
			Category:   req.Category,
			Unit:       req.Unit,
			Quantity:   req.Quantity,
			Threshold:  req.Threshold,
			ExpiryDate: req.ExpiryDate,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toItemResponse(it))
	}
}

func listItemsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAll(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]itemResponse, 0, len(items))
		for _, it := range items {
			out = append(out, toItemResponse(it))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func getItemHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		it, err := svc.GetByID(r.Context(), chi.URLParam(r, "itemID"))
		if err != nil {
			http.Error(w, "item not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toItemResponse(it))
	}
}

func toItemResponse(it InventoryItem) itemResponse {
	return itemResponse{
		ID:         it.ID,
		Name:       it.Name,
		Category:   it.Category,
		Unit:       it.Unit,
		Quantity:   it.Quantity,
		Threshold:  it.Threshold,
		ExpiryDate: it.ExpiryDate,
		CreatedAt:  it.CreatedAt,
		UpdatedAt:  it.UpdatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
