package sales

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

type ItemInput struct {
	Name      string
	Quantity  int
	UnitPrice float64
}

type CreateInput struct {
	Date          string
	TotalAmount   float64
	PaymentMethod string
	Items         []ItemInput
	ClientName    string
}

func (in CreateInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Date, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&in.TotalAmount, validation.Min(0.0)),
		validation.Field(&in.PaymentMethod, validation.Required, validation.In(
			string(PaymentCash), string(PaymentCard), string(PaymentTransfer),
		)),
		validation.Field(&in.Items, validation.Required, validation.Length(1, 0)),
	)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Sale, error) {
	if err := in.Validate(); err != nil {
		return Sale{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	items := make([]SaleItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, SaleItem{
			Name:      strings.TrimSpace(it.Name),
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Subtotal:  float64(it.Quantity) * it.UnitPrice,
		})
	}

	// Si el cliente no manda total, lo derivamos de las líneas.
	total := in.TotalAmount
	if total == 0 {
		for _, it := range items {
			total += it.Subtotal
		}
	}

	sale := Sale{
		ID:            uuid.NewString(),
		Date:          strings.TrimSpace(in.Date),
		TotalAmount:   total,
		PaymentMethod: PaymentMethod(in.PaymentMethod),
		Items:         items,
		ClientName:    strings.TrimSpace(in.ClientName),
		CreatedAt:     s.now(),
	}

	if err := s.repo.Create(ctx, sale); err != nil {
		return Sale{}, err
	}
	return sale, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Sale, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListAll(ctx context.Context) ([]Sale, error) {
	return s.repo.ListAll(ctx)
}
