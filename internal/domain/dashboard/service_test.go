package dashboard

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"clinic-manager/internal/domain/appointments"
	"clinic-manager/internal/domain/clients"
	"clinic-manager/internal/domain/inventory"
	"clinic-manager/internal/domain/medicalrecords"
	"clinic-manager/internal/domain/patients"
	"clinic-manager/internal/domain/sales"
	"clinic-manager/internal/domain/vaccinations"
)

// fakeSource cubre cualquiera de las siete interfaces Source.
type fakeSource[T any] struct {
	items []T
	err   error
}

func (f fakeSource[T]) ListAll(_ context.Context) ([]T, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func emptySources() Sources {
	return Sources{
		Clients:        fakeSource[clients.Client]{},
		Patients:       fakeSource[patients.Patient]{},
		Appointments:   fakeSource[appointments.Appointment]{},
		Inventory:      fakeSource[inventory.InventoryItem]{},
		Sales:          fakeSource[sales.Sale]{},
		Vaccinations:   fakeSource[vaccinations.Vaccination]{},
		MedicalRecords: fakeSource[medicalrecords.MedicalRecord]{},
	}
}

func TestAggregate_EmptyCollections(t *testing.T) {
	svc := NewService(emptySources(), nil)

	snap, err := svc.Aggregate(context.Background(), testNow)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}

	if len(snap.Notifications) != 0 {
		t.Fatalf("notifications = %v, want none", snap.Notifications)
	}
	if snap.Metrics != (Metrics{}) {
		t.Fatalf("metrics = %+v, want zero", snap.Metrics)
	}
	if !snap.GeneratedAt.Equal(testNow) {
		t.Fatalf("GeneratedAt = %v, want %v", snap.GeneratedAt, testNow)
	}
}

func TestAggregate_OutOfStockScenario(t *testing.T) {
	w := NewWindow(testNow)

	src := emptySources()
	src.Inventory = fakeSource[inventory.InventoryItem]{items: []inventory.InventoryItem{
		{ID: "i1", Name: "Amoxicillin", Quantity: intp(0), Threshold: intp(10)},
		{ID: "i2", Name: "Rabies Vaccine", Quantity: intp(5), Threshold: intp(2), ExpiryDate: day(w.Today.AddDate(0, 0, 10))},
	}}

	svc := NewService(src, nil)
	snap, err := svc.Aggregate(context.Background(), testNow)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}

	var out, expiring, expired *Notification
	for i := range snap.Notifications {
		switch snap.Notifications[i].Type {
		case TypeOutOfStock:
			out = &snap.Notifications[i]
		case TypeExpiring:
			expiring = &snap.Notifications[i]
		case TypeExpired:
			expired = &snap.Notifications[i]
		}
	}

	if out == nil {
		t.Fatal("falta la notificación out_of_stock")
	}
	if out.Priority != PriorityUrgent {
		t.Fatalf("out_of_stock priority = %d, want %d", out.Priority, PriorityUrgent)
	}
	if len(out.Details) != 1 || out.Details[0] != "Amoxicillin" {
		t.Fatalf("out_of_stock details = %v", out.Details)
	}

	// Amoxicillin con cantidad 0 no cuenta como stock bajo.
	if snap.Metrics.LowStockItems != 0 {
		t.Fatalf("LowStockItems = %d, want 0", snap.Metrics.LowStockItems)
	}

	// Vence en 10 días: por vencer, no vencida.
	if expiring == nil {
		t.Fatal("falta la notificación expiring")
	}
	if expired != nil {
		t.Fatalf("notificación expired inesperada: %v", expired.Details)
	}
}

func TestAggregate_RankedDescending(t *testing.T) {
	w := NewWindow(testNow)

	src := emptySources()
	src.Inventory = fakeSource[inventory.InventoryItem]{items: []inventory.InventoryItem{
		{ID: "i1", Name: "por vencer", ExpiryDate: day(w.Today.AddDate(0, 0, 5))},
		{ID: "i2", Name: "vencido", ExpiryDate: day(w.Yesterday)},
	}}
	src.Appointments = fakeSource[appointments.Appointment]{items: []appointments.Appointment{
		{ID: "a1", PetName: "Milo", ClientName: "Ana", Date: day(w.Today), Time: "09:00"},
	}}

	svc := NewService(src, nil)
	snap, err := svc.Aggregate(context.Background(), testNow)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}

	if len(snap.Notifications) != 3 {
		t.Fatalf("notifications = %d, want 3", len(snap.Notifications))
	}
	for i := 1; i < len(snap.Notifications); i++ {
		if snap.Notifications[i].Priority > snap.Notifications[i-1].Priority {
			t.Fatalf("ranking no descendente: %v", snap.Notifications)
		}
	}
	if snap.Notifications[0].Type != TypeExpired {
		t.Fatalf("primera notificación = %s, want %s", snap.Notifications[0].Type, TypeExpired)
	}
}

func TestAggregate_FailFast(t *testing.T) {
	errDown := errors.New("sales store down")

	src := emptySources()
	src.Sales = fakeSource[sales.Sale]{err: errDown}

	svc := NewService(src, nil)
	if _, err := svc.Aggregate(context.Background(), testNow); !errors.Is(err, errDown) {
		t.Fatalf("err = %v, want wrap de %v", err, errDown)
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	w := NewWindow(testNow)

	src := emptySources()
	src.Clients = fakeSource[clients.Client]{items: []clients.Client{{ID: "c1", Name: "Ana"}}}
	src.Inventory = fakeSource[inventory.InventoryItem]{items: []inventory.InventoryItem{
		{ID: "i1", Name: "Gauze", Quantity: intp(2), Threshold: intp(5)},
	}}
	src.Vaccinations = fakeSource[vaccinations.Vaccination]{items: []vaccinations.Vaccination{
		{ID: "v1", PatientName: "Milo", VaccineName: "Rabies", NextDueDate: day(w.Today.AddDate(0, 0, 2))},
	}}

	svc := NewService(src, nil)

	first, err := svc.Aggregate(context.Background(), testNow)
	if err != nil {
		t.Fatalf("primera pasada: %v", err)
	}
	second, err := svc.Aggregate(context.Background(), testNow)
	if err != nil {
		t.Fatalf("segunda pasada: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("pasadas distintas con la misma entrada:\n%+v\n%+v", first, second)
	}
}

func TestAggregate_DetailOrderFollowsInput(t *testing.T) {
	w := NewWindow(testNow)

	src := emptySources()
	src.Inventory = fakeSource[inventory.InventoryItem]{items: []inventory.InventoryItem{
		{ID: "i1", Name: "Primero", ExpiryDate: day(w.Today.AddDate(0, 0, 3))},
		{ID: "i2", Name: "Segundo", ExpiryDate: day(w.Today.AddDate(0, 0, 1))},
		{ID: "i3", Name: "Tercero", ExpiryDate: day(w.Today.AddDate(0, 0, 20))},
	}}

	svc := NewService(src, nil)
	snap, err := svc.Aggregate(context.Background(), testNow)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}

	if len(snap.Notifications) != 1 {
		t.Fatalf("notifications = %d, want 1", len(snap.Notifications))
	}
	details := snap.Notifications[0].Details
	if len(details) != 3 {
		t.Fatalf("details = %v", details)
	}
	// El detalle respeta el orden de la colección, no el de las fechas.
	for i, prefix := range []string{"Primero", "Segundo", "Tercero"} {
		if got := details[i]; len(got) < len(prefix) || got[:len(prefix)] != prefix {
			t.Fatalf("detalle %d = %q, want prefijo %q", i, got, prefix)
		}
	}
}
