package patients

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
	ClientID string
	Name     string
	Species  string
	Breed    string
	Sex      string
	AgeYears int
	Notes    string
}

func (in CreateInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required, validation.Length(1, 120)),
		validation.Field(&in.Species, validation.Required, validation.In(
			string(SpeciesDog), string(SpeciesCat), string(SpeciesBird),
			string(SpeciesRabbit), string(SpeciesOther),
		)),
		validation.Field(&in.Sex, validation.In(
			string(SexMale), string(SexFemale), string(SexUnknown),
		)),
		validation.Field(&in.AgeYears, validation.Min(0), validation.Max(100)),
	)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Patient, error) {
	if err := in.Validate(); err != nil {
		return Patient{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	sex := Sex(strings.TrimSpace(in.Sex))
	if sex == "" {
		sex = SexUnknown
	}

	now := s.now()
	p := Patient{
		ID:        uuid.NewString(),
		ClientID:  strings.TrimSpace(in.ClientID),
		Name:      strings.TrimSpace(in.Name),
		Species:   Species(strings.TrimSpace(in.Species)),
		Breed:     strings.TrimSpace(in.Breed),
		Sex:       sex,
		AgeYears:  in.AgeYears,
		Notes:     strings.TrimSpace(in.Notes),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Patient{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Patient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListAll(ctx context.Context) ([]Patient, error) {
	return s.repo.ListAll(ctx)
}
