package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"clinic-manager/internal/domain/sales"
)

type SalesRepo struct {
	db *sql.DB
}

func NewSalesRepo(db *sql.DB) *SalesRepo {
	return &SalesRepo{db: db}
}

// Las líneas de la venta van en una columna JSONB; nadie las consulta por
// separado, solo se muestran con la venta.
func (r *SalesRepo) Create(ctx context.Context, s sales.Sale) error {
	items, err := json.Marshal(s.Items)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO sales (
			id, date, total_amount, payment_method, items, client_name, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		s.ID,
		s.Date,
		s.TotalAmount,
		s.PaymentMethod,
		items,
		s.ClientName,
		s.CreatedAt,
	)
	return err
}

func (r *SalesRepo) GetByID(ctx context.Context, id string) (sales.Sale, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return sales.Sale{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, date, total_amount, payment_method, items, client_name, created_at
		FROM sales
		WHERE id = $1
	`, id)

	s, err := scanSale(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return sales.Sale{}, ErrNotFound
		}
		return sales.Sale{}, err
	}
	return s, nil
}

func (r *SalesRepo) ListAll(ctx context.Context) ([]sales.Sale, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, date, total_amount, payment_method, items, client_name, created_at
		FROM sales
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]sales.Sale, 0)
	for rows.Next() {
		s, err := scanSale(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, rows.Err()
}

func scanSale(scan func(dest ...any) error) (sales.Sale, error) {
	var (
		s        sales.Sale
		rawItems []byte
	)
	if err := scan(
		&s.ID, &s.Date, &s.TotalAmount, &s.PaymentMethod,
		&rawItems, &s.ClientName, &s.CreatedAt,
	); err != nil {
		return sales.Sale{}, err
	}

	if len(rawItems) > 0 {
		if err := json.Unmarshal(rawItems, &s.Items); err != nil {
			return sales.Sale{}, err
		}
	}
	return s, nil
}
