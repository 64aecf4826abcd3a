package medicalrecords

import "time"

// MedicalRecord representa una atención médica registrada.
// Date y FollowUpDate viajan como YYYY-MM-DD; FollowUpDate es opcional.
// TreatmentCompleted en false marca un tratamiento en curso.
type MedicalRecord struct {
	ID string

	PatientID   string
	PatientName string

	Date         string
	Diagnoses    []string
	Treatment    string
	FollowUpDate string
	Veterinarian string

	TreatmentCompleted bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
