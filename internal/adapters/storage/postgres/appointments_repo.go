package postgres

import (
	"context"
	"database/sql"
	"strings"

	"clinic-manager/internal/domain/appointments"
)

type AppointmentsRepo struct {
	db *sql.DB
}

func NewAppointmentsRepo(db *sql.DB) *AppointmentsRepo {
	return &AppointmentsRepo{db: db}
}

// Las fechas de calendario (date) se guardan como texto YYYY-MM-DD, igual que
// viajan por la API; el dashboard las parsea de forma defensiva.
func (r *AppointmentsRepo) Create(ctx context.Context, a appointments.Appointment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO appointments (
			id, pet_name, client_name, date, time, reason, status,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		a.ID,
		a.PetName,
		a.ClientName,
		a.Date,
		a.Time,
		a.Reason,
		a.Status,
		a.CreatedAt,
		a.UpdatedAt,
	)
	return err
}

func (r *AppointmentsRepo) GetByID(ctx context.Context, id string) (appointments.Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return appointments.Appointment{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, pet_name, client_name, date, time, reason, status, created_at, updated_at
		FROM appointments
		WHERE id = $1
	`, id)

	var a appointments.Appointment
	if err := row.Scan(
		&a.ID, &a.PetName, &a.ClientName, &a.Date, &a.Time, &a.Reason,
		&a.Status, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return appointments.Appointment{}, ErrNotFound
		}
		return appointments.Appointment{}, err
	}
	return a, nil
}

func (r *AppointmentsRepo) ListAll(ctx context.Context) ([]appointments.Appointment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, pet_name, client_name, date, time, reason, status, created_at, updated_at
		FROM appointments
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]appointments.Appointment, 0)
	for rows.Next() {
		var a appointments.Appointment
		if err := rows.Scan(
			&a.ID, &a.PetName, &a.ClientName, &a.Date, &a.Time, &a.Reason,
			&a.Status, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, rows.Err()
}
