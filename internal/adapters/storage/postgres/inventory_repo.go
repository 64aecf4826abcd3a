package postgres

import (
	"context"
	"database/sql"
	"strings"

	"clinic-manager/internal/domain/inventory"
)

type InventoryRepo struct {
	db *sql.DB
}

func NewInventoryRepo(db *sql.DB) *InventoryRepo {
	return &InventoryRepo{db: db}
}

func (r *InventoryRepo) Create(ctx context.Context, it inventory.InventoryItem) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO inventory_items (
			id, name, category, unit, quantity, threshold, expiry_date,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		it.ID,
		it.Name,
		it.Category,
		it.Unit,
		toNullInt(it.Quantity),
		toNullInt(it.Threshold),
		it.ExpiryDate,
		it.CreatedAt,
		it.UpdatedAt,
	)
	return err
}

func (r *InventoryRepo) GetByID(ctx context.Context, id string) (inventory.InventoryItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return inventory.InventoryItem{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, category, unit, quantity, threshold, expiry_date, created_at, updated_at
		FROM inventory_items
		WHERE id = $1
	`, id)

	it, err := scanItem(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return inventory.InventoryItem{}, ErrNotFound
		}
		return inventory.InventoryItem{}, err
	}
	return it, nil
}

func (r *InventoryRepo) ListAll(ctx context.Context) ([]inventory.InventoryItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, category, unit, quantity, threshold, expiry_date, created_at, updated_at
		FROM inventory_items
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]inventory.InventoryItem, 0)
	for rows.Next() {
		it, err := scanItem(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}

	return out, rows.Err()
}

func scanItem(scan func(dest ...any) error) (inventory.InventoryItem, error) {
	var (
		it       inventory.InventoryItem
		qty, thr sql.NullInt64
	)
	if err := scan(
		&it.ID, &it.Name, &it.Category, &it.Unit, &qty, &thr,
		&it.ExpiryDate, &it.CreatedAt, &it.UpdatedAt,
	); err != nil {
		return inventory.InventoryItem{}, err
	}

	it.Quantity = fromNullInt(qty)
	it.Threshold = fromNullInt(thr)
	return it, nil
}

// quantity/threshold son nullables: "sin dato" no es lo mismo que 0 para las
// reglas de stock del dashboard.
func toNullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{Valid: false}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func fromNullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}
