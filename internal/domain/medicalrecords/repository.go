package medicalrecords

import "context"

type Repository interface {
	Create(ctx context.Context, rec MedicalRecord) error
	GetByID(ctx context.Context, id string) (MedicalRecord, error)
	ListAll(ctx context.Context) ([]MedicalRecord, error)
}
