package sales

import (
	"context"
	"errors"
	"testing"
)

type testRepo struct {
	byID map[string]Sale
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Sale{}}
}

func (r *testRepo) Create(_ context.Context, s Sale) error {
	if s.ID == "" {
		return errors.New("repo: id required")
	}
	r.byID[s.ID] = s
	return nil
}

func (r *testRepo) GetByID(_ context.Context, id string) (Sale, error) {
	s, ok := r.byID[id]
	if !ok {
		return Sale{}, errors.New("repo: not found")
	}
	return s, nil
}

func (r *testRepo) ListAll(_ context.Context) ([]Sale, error) {
	out := make([]Sale, 0, len(r.byID))
	for _, s := range r.byID {
		out = append(out, s)
	}
	return out, nil
}

func TestCreateSale_DerivesTotalFromItems(t *testing.T) {
	svc := NewService(newTestRepo())

	s, err := svc.Create(context.Background(), CreateInput{
		Date:          "2025-06-15",
		PaymentMethod: "cash",
		Items: []ItemInput{
			{Name: "Amoxicillin", Quantity: 2, UnitPrice: 150},
			{Name: "Gauze", Quantity: 1, UnitPrice: 50},
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if s.TotalAmount != 350 {
		t.Fatalf("TotalAmount = %v, want 350", s.TotalAmount)
	}
	if s.Items[0].Subtotal != 300 || s.Items[1].Subtotal != 50 {
		t.Fatalf("subtotales = %v/%v", s.Items[0].Subtotal, s.Items[1].Subtotal)
	}
}

func TestCreateSale_ExplicitTotalWins(t *testing.T) {
	svc := NewService(newTestRepo())

	s, err := svc.Create(context.Background(), CreateInput{
		Date:          "2025-06-15",
		TotalAmount:   300, // con descuento aplicado en mostrador
		PaymentMethod: "card",
		Items: []ItemInput{
			{Name: "Amoxicillin", Quantity: 2, UnitPrice: 175},
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if s.TotalAmount != 300 {
		t.Fatalf("TotalAmount = %v, want 300", s.TotalAmount)
	}
}

func TestCreateSale_Invalid(t *testing.T) {
	svc := NewService(newTestRepo())

	cases := []struct {
		name string
		in   CreateInput
	}{
		{"sin fecha", CreateInput{PaymentMethod: "cash", Items: []ItemInput{{Name: "x", Quantity: 1}}}},
		{"fecha con otro formato", CreateInput{Date: "15/06/2025", PaymentMethod: "cash", Items: []ItemInput{{Name: "x", Quantity: 1}}}},
		{"medio de pago desconocido", CreateInput{Date: "2025-06-15", PaymentMethod: "crypto", Items: []ItemInput{{Name: "x", Quantity: 1}}}},
		{"sin líneas", CreateInput{Date: "2025-06-15", PaymentMethod: "cash"}},
	}

	for _, c := range cases {
		if _, err := svc.Create(context.Background(), c.in); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s: err = %v, want ErrInvalidInput", c.name, err)
		}
	}
}
