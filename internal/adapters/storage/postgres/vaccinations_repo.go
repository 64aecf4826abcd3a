package postgres

import (
	"context"
	"database/sql"
	"strings"

	"clinic-manager/internal/domain/vaccinations"
)

type VaccinationsRepo struct {
	db *sql.DB
}

func NewVaccinationsRepo(db *sql.DB) *VaccinationsRepo {
	return &VaccinationsRepo{db: db}
}

func (r *VaccinationsRepo) Create(ctx context.Context, v vaccinations.Vaccination) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO vaccinations (
			id, patient_id, patient_name, vaccine_name, applied_date, next_due_date,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		v.ID,
		v.PatientID,
		v.PatientName,
		v.VaccineName,
		v.AppliedDate,
		v.NextDueDate,
		v.CreatedAt,
		v.UpdatedAt,
	)
	return err
}

func (r *VaccinationsRepo) GetByID(ctx context.Context, id string) (vaccinations.Vaccination, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return vaccinations.Vaccination{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, patient_id, patient_name, vaccine_name, applied_date, next_due_date, created_at, updated_at
		FROM vaccinations
		WHERE id = $1
	`, id)

	var v vaccinations.Vaccination
	if err := row.Scan(
		&v.ID, &v.PatientID, &v.PatientName, &v.VaccineName,
		&v.AppliedDate, &v.NextDueDate, &v.CreatedAt, &v.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return vaccinations.Vaccination{}, ErrNotFound
		}
		return vaccinations.Vaccination{}, err
	}
	return v, nil
}

func (r *VaccinationsRepo) ListAll(ctx context.Context) ([]vaccinations.Vaccination, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, patient_id, patient_name, vaccine_name, applied_date, next_due_date, created_at, updated_at
		FROM vaccinations
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]vaccinations.Vaccination, 0)
	for rows.Next() {
		var v vaccinations.Vaccination
		if err := rows.Scan(
			&v.ID, &v.PatientID, &v.PatientName, &v.VaccineName,
			&v.AppliedDate, &v.NextDueDate, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, rows.Err()
}
