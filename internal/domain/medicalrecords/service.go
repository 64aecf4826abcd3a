package medicalrecords

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	PatientID          string
	PatientName        string
	Date               string
	Diagnoses          []string
	Treatment          string
	FollowUpDate       string
	Veterinarian       string
	TreatmentCompleted bool
}

func (in CreateInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.PatientID, validation.Required),
		validation.Field(&in.Date, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&in.FollowUpDate, validation.Date("2006-01-02")),
		validation.Field(&in.Veterinarian, validation.Required, validation.Length(1, 120)),
	)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (MedicalRecord, error) {
	if err := in.Validate(); err != nil {
		return MedicalRecord{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	diagnoses := make([]string, 0, len(in.Diagnoses))
	for _, d := range in.Diagnoses {
		if v := strings.TrimSpace(d); v != "" {
			diagnoses = append(diagnoses, v)
		}
	}

	now := s.now()
	rec := MedicalRecord{
		ID:                 uuid.NewString(),
		PatientID:          strings.TrimSpace(in.PatientID),
		PatientName:        strings.TrimSpace(in.PatientName),
		Date:               strings.TrimSpace(in.Date),
		Diagnoses:          diagnoses,
		Treatment:          strings.TrimSpace(in.Treatment),
		FollowUpDate:       strings.TrimSpace(in.FollowUpDate),
		Veterinarian:       strings.TrimSpace(in.Veterinarian),
		TreatmentCompleted: in.TreatmentCompleted,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return MedicalRecord{}, err
	}
	return rec, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (MedicalRecord, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListAll(ctx context.Context) ([]MedicalRecord, error) {
	return s.repo.ListAll(ctx)
}
