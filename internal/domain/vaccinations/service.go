package vaccinations

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
	PatientID   string
	PatientName string
	VaccineName string
	AppliedDate string
	NextDueDate string
}

func (in CreateInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.VaccineName, validation.Required, validation.Length(1, 120)),
		validation.Field(&in.AppliedDate, validation.Date("2006-01-02")),
		validation.Field(&in.NextDueDate, validation.Date("2006-01-02")),
	)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Vaccination, error) {
	if err := in.Validate(); err != nil {
		return Vaccination{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	now := s.now()
	v := Vaccination{
		ID:          uuid.NewString(),
		PatientID:   strings.TrimSpace(in.PatientID),
		PatientName: strings.TrimSpace(in.PatientName),
		VaccineName: strings.TrimSpace(in.VaccineName),
		AppliedDate: strings.TrimSpace(in.AppliedDate),
		NextDueDate: strings.TrimSpace(in.NextDueDate),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, v); err != nil {
		return Vaccination{}, err
	}
	return v, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Vaccination, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListAll(ctx context.Context) ([]Vaccination, error) {
	return s.repo.ListAll(ctx)
}
