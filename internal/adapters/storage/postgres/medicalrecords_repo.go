package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"clinic-manager/internal/domain/medicalrecords"
)

type MedicalRecordsRepo struct {
	db *sql.DB
}

func NewMedicalRecordsRepo(db *sql.DB) *MedicalRecordsRepo {
	return &MedicalRecordsRepo{db: db}
}

func (r *MedicalRecordsRepo) Create(ctx context.Context, rec medicalrecords.MedicalRecord) error {
	diagnoses, err := json.Marshal(rec.Diagnoses)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO medical_records (
			id, patient_id, patient_name, date, diagnoses, treatment,
			follow_up_date, veterinarian, treatment_completed,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		rec.ID,
		rec.PatientID,
		rec.PatientName,
		rec.Date,
		diagnoses,
		rec.Treatment,
		rec.FollowUpDate,
		rec.Veterinarian,
		rec.TreatmentCompleted,
		rec.CreatedAt,
		rec.UpdatedAt,
	)
	return err
}

func (r *MedicalRecordsRepo) GetByID(ctx context.Context, id string) (medicalrecords.MedicalRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return medicalrecords.MedicalRecord{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, patient_id, patient_name, date, diagnoses, treatment,
			follow_up_date, veterinarian, treatment_completed, created_at, updated_at
		FROM medical_records
		WHERE id = $1
	`, id)

	rec, err := scanRecord(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return medicalrecords.MedicalRecord{}, ErrNotFound
		}
		return medicalrecords.MedicalRecord{}, err
	}
	return rec, nil
}

func (r *MedicalRecordsRepo) ListAll(ctx context.Context) ([]medicalrecords.MedicalRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, patient_id, patient_name, date, diagnoses, treatment,
			follow_up_date, veterinarian, treatment_completed, created_at, updated_at
		FROM medical_records
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]medicalrecords.MedicalRecord, 0)
	for rows.Next() {
		rec, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}

	return out, rows.Err()
}

func scanRecord(scan func(dest ...any) error) (medicalrecords.MedicalRecord, error) {
	var (
		rec          medicalrecords.MedicalRecord
		rawDiagnoses []byte
	)
	if err := scan(
		&rec.ID, &rec.PatientID, &rec.PatientName, &rec.Date, &rawDiagnoses,
		&rec.Treatment, &rec.FollowUpDate, &rec.Veterinarian,
		&rec.TreatmentCompleted, &rec.CreatedAt, &rec.UpdatedAt,
	); err != nil {
		return medicalrecords.MedicalRecord{}, err
	}

	if len(rawDiagnoses) > 0 {
		if err := json.Unmarshal(rawDiagnoses, &rec.Diagnoses); err != nil {
			return medicalrecords.MedicalRecord{}, err
		}
	}
	return rec, nil
}
