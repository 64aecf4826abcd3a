package postgres

import (
	"context"
	"database/sql"
	"strings"

	"clinic-manager/internal/domain/patients"
)

type PatientsRepo struct {
	db *sql.DB
}

func NewPatientsRepo(db *sql.DB) *PatientsRepo {
	return &PatientsRepo{db: db}
}

func (r *PatientsRepo) Create(ctx context.Context, p patients.Patient) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO patients (
			id, client_id, name, species, breed, sex, age_years, notes,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		p.ID,
		p.ClientID,
		p.Name,
		p.Species,
		p.Breed,
		p.Sex,
		p.AgeYears,
		p.Notes,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *PatientsRepo) GetByID(ctx context.Context, id string) (patients.Patient, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return patients.Patient{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, client_id, name, species, breed, sex, age_years, notes, created_at, updated_at
		FROM patients
		WHERE id = $1
	`, id)

	var p patients.Patient
	if err := row.Scan(
		&p.ID, &p.ClientID, &p.Name, &p.Species, &p.Breed, &p.Sex,
		&p.AgeYears, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return patients.Patient{}, ErrNotFound
		}
		return patients.Patient{}, err
	}
	return p, nil
}

func (r *PatientsRepo) ListAll(ctx context.Context) ([]patients.Patient, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, client_id, name, species, breed, sex, age_years, notes, created_at, updated_at
		FROM patients
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]patients.Patient, 0)
	for rows.Next() {
		var p patients.Patient
		if err := rows.Scan(
			&p.ID, &p.ClientID, &p.Name, &p.Species, &p.Breed, &p.Sex,
			&p.AgeYears, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}
