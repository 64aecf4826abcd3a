package dashboard

import (
	"testing"
	"time"

	"clinic-manager/internal/domain/appointments"
	"clinic-manager/internal/domain/inventory"
	"clinic-manager/internal/domain/medicalrecords"
	"clinic-manager/internal/domain/vaccinations"
)

var testNow = time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

func day(t time.Time) string {
	return t.Format(dateLayout)
}

func intp(n int) *int {
	return &n
}

func ids(items []entry) []string {
	out := make([]string, 0, len(items))
	for _, e := range items {
		out = append(out, e.id)
	}
	return out
}

func TestClassifyTodayAppointments(t *testing.T) {
	w := NewWindow(testNow)

	items := normalizeAppointments([]appointments.Appointment{
		{ID: "a1", PetName: "Milo", ClientName: "Ana", Date: day(w.Today), Time: "10:00"},
		{ID: "a2", PetName: "Luna", ClientName: "Beto", Date: day(w.Today.AddDate(0, 0, 1)), Time: "11:00"},
		{ID: "a3", PetName: "Rocky", ClientName: "Caro", Date: "no es fecha", Time: "12:00"},
		{ID: "a4", PetName: "Toby", ClientName: "Dani", Date: day(w.Today), Time: "16:30"},
	})

	got := classifyTodayAppointments(items, w)
	if want := []string{"a1", "a4"}; len(got) != 2 || got[0].id != want[0] || got[1].id != want[1] {
		t.Fatalf("today appointments = %v, want %v", ids(got), want)
	}
}

func TestClassifyExpiring_InclusiveLowerExclusiveUpper(t *testing.T) {
	w := NewWindow(testNow)

	items := normalizeInventory([]inventory.InventoryItem{
		{ID: "i1", Name: "vence hoy", ExpiryDate: day(w.Today)},
		{ID: "i2", Name: "vence ayer", ExpiryDate: day(w.Yesterday)},
		{ID: "i3", Name: "vence en 10 días", ExpiryDate: day(w.Today.AddDate(0, 0, 10))},
		{ID: "i4", Name: "vence justo al mes", ExpiryDate: day(w.OneMonthFromNow)},
		{ID: "i5", Name: "sin fecha"},
	})

	expiring := classifyExpiring(items, w)
	if want := []string{"i1", "i3"}; len(expiring) != 2 || expiring[0].id != want[0] || expiring[1].id != want[1] {
		t.Fatalf("expiring = %v, want %v", ids(expiring), want)
	}

	expired := classifyExpired(items, w)
	if len(expired) != 1 || expired[0].id != "i2" {
		t.Fatalf("expired = %v, want [i2]", ids(expired))
	}

	// Lo que vence hoy es "por vencer", nunca "vencido".
	for _, e := range expired {
		if e.id == "i1" {
			t.Fatal("item que vence hoy clasificado como vencido")
		}
	}
}

func TestClassifyStockRules(t *testing.T) {
	items := normalizeInventory([]inventory.InventoryItem{
		{ID: "s1", Name: "Amoxicillin", Quantity: intp(0), Threshold: intp(10)},
		{ID: "s2", Name: "en el umbral", Quantity: intp(5), Threshold: intp(5)},
		{ID: "s3", Name: "sobre el umbral", Quantity: intp(6), Threshold: intp(5)},
		{ID: "s4", Name: "sin umbral", Quantity: intp(1)},
		{ID: "s5", Name: "sin cantidad", Threshold: intp(5)},
	})

	low := classifyLowStock(items)
	if len(low) != 1 || low[0].id != "s2" {
		t.Fatalf("low stock = %v, want [s2]", ids(low))
	}

	out := classifyOutOfStock(items)
	if len(out) != 1 || out[0].id != "s1" {
		t.Fatalf("out of stock = %v, want [s1]", ids(out))
	}
}

func TestClassifyDueVaccinations_WeekWindow(t *testing.T) {
	w := NewWindow(testNow)

	items := normalizeVaccinations([]vaccinations.Vaccination{
		{ID: "v1", PatientName: "Milo", VaccineName: "Rabies", NextDueDate: day(w.Today)},
		{ID: "v2", PatientName: "Luna", VaccineName: "Parvo", NextDueDate: day(w.Today.AddDate(0, 0, 6))},
		{ID: "v3", PatientName: "Rocky", VaccineName: "Rabies", NextDueDate: day(w.SevenDaysFromNow)},
		{ID: "v4", PatientName: "Toby", VaccineName: "Moquillo", NextDueDate: day(w.Yesterday)},
		{ID: "v5", PatientName: "Nina", VaccineName: "Rabies"},
	})

	got := classifyDueVaccinations(items, w)
	if want := []string{"v1", "v2"}; len(got) != 2 || got[0].id != want[0] || got[1].id != want[1] {
		t.Fatalf("due vaccinations = %v, want %v", ids(got), want)
	}
}

func TestClassifyDueFollowUps_PastExcluded(t *testing.T) {
	w := NewWindow(testNow)

	items := normalizeFollowUps([]medicalrecords.MedicalRecord{
		{ID: "m1", PatientName: "Milo", Veterinarian: "Dra. Ruiz", FollowUpDate: day(w.Today.AddDate(0, 0, -2))},
		{ID: "m2", PatientName: "Luna", Veterinarian: "Dr. Paz", FollowUpDate: day(w.Today)},
		{ID: "m3", PatientName: "Rocky", Veterinarian: "Dra. Ruiz", FollowUpDate: day(w.Today.AddDate(0, 0, 3))},
		{ID: "m4", PatientName: "Toby", Veterinarian: "Dr. Paz"},
	})

	got := classifyDueFollowUps(items, w)
	if want := []string{"m2", "m3"}; len(got) != 2 || got[0].id != want[0] || got[1].id != want[1] {
		t.Fatalf("due follow-ups = %v, want %v", ids(got), want)
	}
}

func TestParseDay_Defensive(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"2025-06-15", true},
		{" 2025-06-15 ", true},
		{"", false},
		{"   ", false},
		{"15/06/2025", false},
		{"2025-13-40", false},
		{"mañana", false},
	}

	for _, c := range cases {
		if _, ok := parseDay(c.in); ok != c.ok {
			t.Errorf("parseDay(%q) ok = %v, want %v", c.in, ok, c.ok)
		}
	}
}
