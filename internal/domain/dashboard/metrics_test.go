package dashboard

import (
	"testing"

	"clinic-manager/internal/domain/clients"
	"clinic-manager/internal/domain/medicalrecords"
	"clinic-manager/internal/domain/patients"
	"clinic-manager/internal/domain/sales"
	"clinic-manager/internal/domain/vaccinations"
)

func TestComputeMetrics_Counts(t *testing.T) {
	w := NewWindow(testNow)

	data := snapshotData{
		clients:      []clients.Client{{ID: "c1"}, {ID: "c2"}},
		patients:     []patients.Patient{{ID: "p1"}, {ID: "p2"}, {ID: "p3"}},
		vaccinations: []vaccinations.Vaccination{{ID: "v1"}},
		records: []medicalrecords.MedicalRecord{
			{ID: "m1", TreatmentCompleted: false},
			{ID: "m2", TreatmentCompleted: true},
			{ID: "m3", TreatmentCompleted: false},
		},
	}
	c := classified{
		todayAppointments: []entry{{id: "a1"}},
		lowStock:          []entry{{id: "s1"}, {id: "s2"}},
	}

	m := computeMetrics(data, c, w)

	if m.TotalClients != 2 || m.TotalPatients != 3 || m.TotalVaccinations != 1 {
		t.Fatalf("totales = %d/%d/%d", m.TotalClients, m.TotalPatients, m.TotalVaccinations)
	}
	if m.AppointmentsToday != 1 {
		t.Fatalf("AppointmentsToday = %d, want 1", m.AppointmentsToday)
	}
	if m.LowStockItems != 2 {
		t.Fatalf("LowStockItems = %d, want 2", m.LowStockItems)
	}
	// En curso se cuenta sobre la colección completa de historias.
	if m.OngoingTreatments != 2 {
		t.Fatalf("OngoingTreatments = %d, want 2", m.OngoingTreatments)
	}
}

func TestComputeMetrics_Revenue(t *testing.T) {
	w := NewWindow(testNow) // 2025-06-15

	data := snapshotData{
		sales: []sales.Sale{
			{ID: "s1", Date: "2025-06-03", TotalAmount: 500},
			{ID: "s2", Date: "2025-06-14", TotalAmount: 200}, // ayer
			{ID: "s3", Date: "2025-05-20", TotalAmount: 9999}, // mes pasado
			{ID: "s4", Date: "2024-06-10", TotalAmount: 1000}, // mismo mes, otro año
			{ID: "s5", Date: "garbage", TotalAmount: 777},
		},
	}

	m := computeMetrics(data, classified{}, w)

	if m.MonthlyRevenue != 700 {
		t.Fatalf("MonthlyRevenue = %v, want 700", m.MonthlyRevenue)
	}
	if m.YesterdayRevenue != 200 {
		t.Fatalf("YesterdayRevenue = %v, want 200", m.YesterdayRevenue)
	}
	if want := (700.0 - 200.0) / 200.0 * 100; m.RevenueChangePct != want {
		t.Fatalf("RevenueChangePct = %v, want %v", m.RevenueChangePct, want)
	}
}

func TestComputeMetrics_ZeroYesterdayRevenue(t *testing.T) {
	w := NewWindow(testNow)

	data := snapshotData{
		sales: []sales.Sale{
			{ID: "s1", Date: "2025-06-03", TotalAmount: 500},
		},
	}

	m := computeMetrics(data, classified{}, w)

	if m.YesterdayRevenue != 0 {
		t.Fatalf("YesterdayRevenue = %v, want 0", m.YesterdayRevenue)
	}
	if m.RevenueChangePct != 0 {
		t.Fatalf("RevenueChangePct = %v, want 0 (sin ventas ayer)", m.RevenueChangePct)
	}
}
