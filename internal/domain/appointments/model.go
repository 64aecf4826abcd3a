package appointments

import "time"

// Status define el estado de la cita.
// @Enum scheduled, completed, cancelled
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Appointment representa una cita agendada.
// Date viaja como YYYY-MM-DD y Time como HH:MM (formato del cliente web);
// el dashboard las parsea de forma defensiva.
type Appointment struct {
	ID string

	PetName    string
	ClientName string

	Date   string
	Time   string
	Reason string
	Status Status

	CreatedAt time.Time
	UpdatedAt time.Time
}
