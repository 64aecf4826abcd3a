package clients

import "time"

// Client representa al dueño/tutor registrado en la clínica.
type Client struct {
	ID string

	Name    string
	Phone   string
	Email   string
	Address string

	CreatedAt time.Time
	UpdatedAt time.Time
}
