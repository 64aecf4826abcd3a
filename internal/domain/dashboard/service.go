package dashboard

import (
	"context"
	"fmt"
	"time"

	"clinic-manager/internal/domain/appointments"
	"clinic-manager/internal/domain/clients"
	"clinic-manager/internal/domain/inventory"
	"clinic-manager/internal/domain/medicalrecords"
	"clinic-manager/internal/domain/patients"
	"clinic-manager/internal/domain/sales"
	"clinic-manager/internal/domain/vaccinations"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// El agregador solo necesita la lectura completa de cada colección, así que
// depende de estas interfaces chicas y no de los Repository completos.
type (
	ClientSource interface {
		ListAll(ctx context.Context) ([]clients.Client, error)
	}
	PatientSource interface {
		ListAll(ctx context.Context) ([]patients.Patient, error)
	}
	AppointmentSource interface {
		ListAll(ctx context.Context) ([]appointments.Appointment, error)
	}
	InventorySource interface {
		ListAll(ctx context.Context) ([]inventory.InventoryItem, error)
	}
	SaleSource interface {
		ListAll(ctx context.Context) ([]sales.Sale, error)
	}
	VaccinationSource interface {
		ListAll(ctx context.Context) ([]vaccinations.Vaccination, error)
	}
	MedicalRecordSource interface {
		ListAll(ctx context.Context) ([]medicalrecords.MedicalRecord, error)
	}
)

type Sources struct {
	Clients        ClientSource
	Patients       PatientSource
	Appointments   AppointmentSource
	Inventory      InventorySource
	Sales          SaleSource
	Vaccinations   VaccinationSource
	MedicalRecords MedicalRecordSource
}

// Snapshot es el resultado de una pasada completa de agregación.
// GeneratedAt es el "now" con el que se corrió la pasada, no wall-clock:
// la misma entrada con el mismo now produce el mismo Snapshot.
type Snapshot struct {
	Metrics       Metrics
	Notifications []Notification
	GeneratedAt   time.Time
}

// snapshotData es la foto cruda de las siete colecciones de una pasada.
type snapshotData struct {
	clients      []clients.Client
	patients     []patients.Patient
	appointments []appointments.Appointment
	inventory    []inventory.InventoryItem
	sales        []sales.Sale
	vaccinations []vaccinations.Vaccination
	records      []medicalrecords.MedicalRecord
}

type Service struct {
	src    Sources
	logger *zap.Logger
}

func NewService(src Sources, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		src:    src,
		logger: logger,
	}
}

// Aggregate corre una pasada completa: los siete fetches en paralelo con
// fail-fast (un fetch caído tira toda la pasada, sin dashboard parcial) y
// después el pipeline secuencial normalizar → clasificar → notificar → métricas.
func (s *Service) Aggregate(ctx context.Context, now time.Time) (Snapshot, error) {
	var data snapshotData

	// Cada goroutine escribe un campo distinto de data; no hace falta lock.
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		data.clients, err = s.src.Clients.ListAll(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		data.patients, err = s.src.Patients.ListAll(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		data.appointments, err = s.src.Appointments.ListAll(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		data.inventory, err = s.src.Inventory.ListAll(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		data.sales, err = s.src.Sales.ListAll(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		data.vaccinations, err = s.src.Vaccinations.ListAll(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		data.records, err = s.src.MedicalRecords.ListAll(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("dashboard aggregation failed", zap.Error(err))
		return Snapshot{}, fmt.Errorf("dashboard aggregation: %w", err)
	}

	w := NewWindow(now)
	inv := normalizeInventory(data.inventory)

	c := classified{
		todayAppointments: classifyTodayAppointments(normalizeAppointments(data.appointments), w),
		expiring:          classifyExpiring(inv, w),
		expired:           classifyExpired(inv, w),
		dueVaccinations:   classifyDueVaccinations(normalizeVaccinations(data.vaccinations), w),
		lowStock:          classifyLowStock(inv),
		outOfStock:        classifyOutOfStock(inv),
		dueFollowUps:      classifyDueFollowUps(normalizeFollowUps(data.records), w),
	}

	ns := buildNotifications(c)
	rankNotifications(ns)

	snap := Snapshot{
		Metrics:       computeMetrics(data, c, w),
		Notifications: ns,
		GeneratedAt:   now,
	}

	s.logger.Debug("dashboard aggregated",
		zap.Int("notifications", len(ns)),
		zap.Int("appointments_today", snap.Metrics.AppointmentsToday),
		zap.Int("low_stock_items", snap.Metrics.LowStockItems),
	)

	return snap, nil
}
