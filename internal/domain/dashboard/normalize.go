package dashboard

import (
	"strings"
	"time"

	"clinic-manager/internal/domain/appointments"
	"clinic-manager/internal/domain/inventory"
	"clinic-manager/internal/domain/medicalrecords"
	"clinic-manager/internal/domain/vaccinations"
)

const dateLayout = "2006-01-02"

// entry es la forma común que consumen los clasificadores: identidad, etiquetas
// y la fecha relevante de cada colección. Los campos que no aplican a la
// colección de origen quedan en su valor cero.
type entry struct {
	id        string
	label     string
	secondary string
	timeOfDay string

	day    time.Time
	hasDay bool

	quantity  *int
	threshold *int
}

// parseDay parsea fechas YYYY-MM-DD de forma defensiva: si el campo falta o no
// parsea, el registro queda sin fecha y se excluye de las reglas por fecha.
// Nunca corta el pipeline.
func parseDay(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return startOfDay(t), true
}

func normalizeAppointments(items []appointments.Appointment) []entry {
	out := make([]entry, 0, len(items))
	for _, a := range items {
		day, ok := parseDay(a.Date)
		out = append(out, entry{
			id:        a.ID,
			label:     a.PetName,
			secondary: a.ClientName,
			timeOfDay: a.Time,
			day:       day,
			hasDay:    ok,
		})
	}
	return out
}

// normalizeInventory arma una sola lista que sirve para las cuatro reglas de
// stock (vencimiento cercano, vencido, stock bajo, sin stock).
func normalizeInventory(items []inventory.InventoryItem) []entry {
	out := make([]entry, 0, len(items))
	for _, it := range items {
		day, ok := parseDay(it.ExpiryDate)
		out = append(out, entry{
			id:        it.ID,
			label:     it.Name,
			day:       day,
			hasDay:    ok,
			quantity:  it.Quantity,
			threshold: it.Threshold,
		})
	}
	return out
}

func normalizeVaccinations(items []vaccinations.Vaccination) []entry {
	out := make([]entry, 0, len(items))
	for _, v := range items {
		label := strings.TrimSpace(v.PatientName)
		if label == "" {
			label = "Unknown"
		}
		day, ok := parseDay(v.NextDueDate)
		out = append(out, entry{
			id:        v.ID,
			label:     label,
			secondary: v.VaccineName,
			day:       day,
			hasDay:    ok,
		})
	}
	return out
}

// normalizeFollowUps toma FollowUpDate como fecha relevante; la fecha de la
// atención en sí no participa de ninguna regla.
func normalizeFollowUps(items []medicalrecords.MedicalRecord) []entry {
	out := make([]entry, 0, len(items))
	for _, rec := range items {
		label := strings.TrimSpace(rec.PatientName)
		if label == "" {
			label = rec.PatientID
		}
		day, ok := parseDay(rec.FollowUpDate)
		out = append(out, entry{
			id:        rec.ID,
			label:     label,
			secondary: rec.Veterinarian,
			day:       day,
			hasDay:    ok,
		})
	}
	return out
}
