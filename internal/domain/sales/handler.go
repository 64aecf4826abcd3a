package sales

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
	r.Route("/sales", func(sr chi.Router) {
		sr.Post("/", createSaleHandler(svc))
		sr.Get("/", listSalesHandler(svc))
		sr.Get("/{saleID}", getSaleHandler(svc))
	})
}

type saleItemRequest struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type createSaleRequest struct {
	Date          string            `json:"date"` // YYYY-MM-DD
	TotalAmount   float64           `json:"total_amount"`
	PaymentMethod string            `json:"payment_method"`
	Items         []saleItemRequest `json:"items"`
	ClientName    string            `json:"client_name"`
}

type saleItemResponse struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}

type saleResponse struct {
	ID            string             `json:"id"`
	Date          string             `json:"date"`
	TotalAmount   float64            `json:"total_amount"`
	PaymentMethod string             `json:"payment_method"`
	Items         []saleItemResponse `json:"items"`
	ClientName    string             `json:"client_name"`
	CreatedAt     time.Time          `json:"created_at"`
}

func createSaleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createSaleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		items := make([]ItemInput, 0, len(req.Items))
		for _, it := range req.Items {
			items = append(items, ItemInput{
				Name:      it.Name,
				Quantity:  it.Quantity,
				UnitPrice: it.UnitPrice,
			})
		}

		sale, err := svc.Create(r.Context(), CreateInput{
			Date:          req.Date,
			TotalAmount:   req.TotalAmount,
			PaymentMethod: req.PaymentMethod,
			Items:         items,
			ClientName:    req.ClientName,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toSaleResponse(sale))
	}
}

func listSalesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAll(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]saleResponse, 0, len(items))
		for _, s := range items {
			out = append(out, toSaleResponse(s))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func getSaleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := svc.GetByID(r.Context(), chi.URLParam(r, "saleID"))
		if err != nil {
			http.Error(w, "sale not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toSaleResponse(s))
	}
}

func toSaleResponse(s Sale) saleResponse {
	items := make([]saleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, saleItemResponse{
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Subtotal:  it.Subtotal,
		})
	}

	return saleResponse{
		ID:            s.ID,
		Date:          s.Date,
		TotalAmount:   s.TotalAmount,
		PaymentMethod: string(s.PaymentMethod),
		Items:         items,
		ClientName:    s.ClientName,
		CreatedAt:     s.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
