package appointments

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")

	timeOfDayRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
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
	PetName    string
	ClientName string
	Date       string
	Time       string
	Reason     string
}

func (in CreateInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.PetName, validation.Required, validation.Length(1, 120)),
		validation.Field(&in.ClientName, validation.Required, validation.Length(1, 120)),
		validation.Field(&in.Date, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&in.Time, validation.Required, validation.Match(timeOfDayRe)),
	)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Appointment, error) {
	if err := in.Validate(); err != nil {
		return Appointment{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	now := s.now()
	a := Appointment{
		ID:         uuid.NewString(),
		PetName:    strings.TrimSpace(in.PetName),
		ClientName: strings.TrimSpace(in.ClientName),
		Date:       strings.TrimSpace(in.Date),
		Time:       strings.TrimSpace(in.Time),
		Reason:     strings.TrimSpace(in.Reason),
		Status:     StatusScheduled,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Appointment{}, err
	}
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListAll(ctx context.Context) ([]Appointment, error) {
	return s.repo.ListAll(ctx)
}
