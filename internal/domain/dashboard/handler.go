package dashboard

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, ref *Refresher) {
	r.Get("/dashboard", getDashboardHandler(ref))
}

type metricsResponse struct {
	TotalClients      int     `json:"total_clients"`
	TotalPatients     int     `json:"total_patients"`
	AppointmentsToday int     `json:"appointments_today"`
	TotalVaccinations int     `json:"total_vaccinations"`
	LowStockItems     int     `json:"low_stock_items"`
	OngoingTreatments int     `json:"ongoing_treatments"`
	MonthlyRevenue    float64 `json:"monthly_revenue"`
	YesterdayRevenue  float64 `json:"yesterday_revenue"`
	RevenueChangePct  float64 `json:"revenue_change_pct"`
}

type notificationResponse struct {
	Type     string   `json:"type"`
	Message  string   `json:"message"`
	Details  []string `json:"details"`
	Link     string   `json:"link"`
	Priority int      `json:"priority"`
}

type dashboardResponse struct {
	Metrics       metricsResponse        `json:"metrics"`
	Notifications []notificationResponse `json:"notifications"`
	GeneratedAt   time.Time              `json:"generated_at"`
}

func getDashboardHandler(ref *Refresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		force := r.URL.Query().Get("refresh") == "1"

		snap, ok := ref.Latest()
		if force || !ok {
			var err error
			snap, err = ref.Refresh(r.Context())
			if err != nil {
				// Fail-fast: un solo estado de error, nada de dashboard
				// parcial. El cliente reintenta.
				http.Error(w, "dashboard aggregation failed", http.StatusBadGateway)
				return
			}
		}

		writeJSON(w, http.StatusOK, toDashboardResponse(snap))
	}
}

func toDashboardResponse(s Snapshot) dashboardResponse {
	ns := make([]notificationResponse, 0, len(s.Notifications))
	for _, n := range s.Notifications {
		ns = append(ns, notificationResponse{
			Type:     string(n.Type),
			Message:  n.Message,
			Details:  n.Details,
			Link:     n.Link,
			Priority: n.Priority,
		})
	}

	return dashboardResponse{
		Metrics: metricsResponse{
			TotalClients:      s.Metrics.TotalClients,
			TotalPatients:     s.Metrics.TotalPatients,
			AppointmentsToday: s.Metrics.AppointmentsToday,
			TotalVaccinations: s.Metrics.TotalVaccinations,
			LowStockItems:     s.Metrics.LowStockItems,
			OngoingTreatments: s.Metrics.OngoingTreatments,
			MonthlyRevenue:    s.Metrics.MonthlyRevenue,
			YesterdayRevenue:  s.Metrics.YesterdayRevenue,
			RevenueChangePct:  s.Metrics.RevenueChangePct,
		},
		Notifications: ns,
		GeneratedAt:   s.GeneratedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
