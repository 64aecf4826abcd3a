package router

import (
	"database/sql"
	"net/http"
	"time"

	mem "clinic-manager/internal/adapters/storage/memory"
	pg "clinic-manager/internal/adapters/storage/postgres"
	"clinic-manager/internal/domain/appointments"
	"clinic-manager/internal/domain/clients"
	"clinic-manager/internal/domain/dashboard"
	"clinic-manager/internal/domain/inventory"
	"clinic-manager/internal/domain/medicalrecords"
	"clinic-manager/internal/domain/patients"
	"clinic-manager/internal/domain/sales"
	"clinic-manager/internal/domain/vaccinations"
	"clinic-manager/internal/middleware"
	"clinic-manager/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene DB o DSN, usa Postgres. Si no, in-memory.
	DB  *sql.DB
	DSN string

	Logger          *zap.Logger
	RefreshInterval time.Duration
}

// New arma el router y el refresher del dashboard. El caller decide si corre
// el refresher; en tests normalmente no se corre y el handler fuerza pasadas
// síncronas.
func New(opts Options) (http.Handler, *dashboard.Refresher) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	db := opts.DB
	if db == nil && opts.DSN != "" {
		opened, err := pg.Open(opts.DSN)
		if err == nil {
			db = opened
		} else {
			logger.Warn("postgres unavailable, falling back to in-memory", zap.Error(err))
		}
	}

	var (
		clientRepo      clients.Repository
		patientRepo     patients.Repository
		appointmentRepo appointments.Repository
		inventoryRepo   inventory.Repository
		saleRepo        sales.Repository
		vaccinationRepo vaccinations.Repository
		recordRepo      medicalrecords.Repository
	)

	if db != nil {
		clientRepo = pg.NewClientsRepo(db)
		patientRepo = pg.NewPatientsRepo(db)
		appointmentRepo = pg.NewAppointmentsRepo(db)
		inventoryRepo = pg.NewInventoryRepo(db)
		saleRepo = pg.NewSalesRepo(db)
		vaccinationRepo = pg.NewVaccinationsRepo(db)
		recordRepo = pg.NewMedicalRecordsRepo(db)
	} else {
		clientRepo = mem.NewClientsRepo()
		patientRepo = mem.NewPatientsRepo()
		appointmentRepo = mem.NewAppointmentsRepo()
		inventoryRepo = mem.NewInventoryRepo()
		saleRepo = mem.NewSalesRepo()
		vaccinationRepo = mem.NewVaccinationsRepo()
		recordRepo = mem.NewMedicalRecordsRepo()
	}

	// Services por módulo
	clientsSvc := clients.NewService(clientRepo)
	patientsSvc := patients.NewService(patientRepo)
	appointmentsSvc := appointments.NewService(appointmentRepo)
	inventorySvc := inventory.NewService(inventoryRepo)
	salesSvc := sales.NewService(saleRepo)
	vaccinationsSvc := vaccinations.NewService(vaccinationRepo)
	recordsSvc := medicalrecords.NewService(recordRepo)

	// El agregador lee directo de los repos; no pasa por los services.
	dashboardSvc := dashboard.NewService(dashboard.Sources{
		Clients:        clientRepo,
		Patients:       patientRepo,
		Appointments:   appointmentRepo,
		Inventory:      inventoryRepo,
		Sales:          saleRepo,
		Vaccinations:   vaccinationRepo,
		MedicalRecords: recordRepo,
	}, logger)
	refresher := dashboard.NewRefresher(dashboardSvc, opts.RefreshInterval, logger)

	// Rutas por módulo
	clients.RegisterRoutes(r, clientsSvc)
	patients.RegisterRoutes(r, patientsSvc)
	appointments.RegisterRoutes(r, appointmentsSvc)
	inventory.RegisterRoutes(r, inventorySvc)
	sales.RegisterRoutes(r, salesSvc)
	vaccinations.RegisterRoutes(r, vaccinationsSvc)
	medicalrecords.RegisterRoutes(r, recordsSvc)
	dashboard.RegisterRoutes(r, refresher)

	return r, refresher
}
