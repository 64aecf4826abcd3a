package vaccinations

import "time"

// Vaccination representa una vacuna aplicada y su próxima dosis.
// PatientID/PatientName pueden venir vacíos (registros importados del
// sistema anterior); NextDueDate viaja como YYYY-MM-DD y es opcional.
type Vaccination struct {
	ID string

	PatientID   string
	PatientName string

	VaccineName string
	AppliedDate string
	NextDueDate string

	CreatedAt time.Time
	UpdatedAt time.Time
}
