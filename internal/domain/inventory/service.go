package inventory

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
	Name       string
	Category   string
	Unit       string
	Quantity   *int
	Threshold  *int
	ExpiryDate string
}

func (in CreateInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required, validation.Length(1, 120)),
		validation.Field(&in.Quantity, validation.Min(0)),
		validation.Field(&in.Threshold, validation.Min(0)),
		validation.Field(&in.ExpiryDate, validation.Date("2006-01-02")),
	)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (InventoryItem, error) {
	if err := in.Validate(); err != nil {
		return InventoryItem{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	now := s.now()
	it := InventoryItem{
		ID:         uuid.NewString(),
		Name:       strings.TrimSpace(in.Name),
		Category:   strings.TrimSpace(in.Category),
		Unit:       strings.TrimSpace(in.Unit),
		Quantity:   in.Quantity,
		Threshold:  in.Threshold,
		ExpiryDate: strings.TrimSpace(in.ExpiryDate),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, it); err != nil {
		return InventoryItem{}, err
	}
	return it, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (InventoryItem, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListAll(ctx context.Context) ([]InventoryItem, error) {
	return s.repo.ListAll(ctx)
}
