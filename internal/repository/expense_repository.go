package repository

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"

	"github.com/julioaguiar07/aplicacao-garagem-sub000/internal/model"
)

// ExpenseRepo encapsulates queries on the `expenses` table.  Expenses
// are append-only: there is no update or delete method on purpose.
type ExpenseRepo struct {
	db *sql.DB
}

// NewExpenseRepo constructs an ExpenseRepo with the provided DB handle.
func NewExpenseRepo(db *sql.DB) *ExpenseRepo {
	return &ExpenseRepo{db: db}
}

// Create inserts an expense for a vehicle.  The owning vehicle must
// exist (enforced by the foreign key).  On success the ID and creation
// timestamp are populated.
func (r *ExpenseRepo) Create(ctx context.Context, e *model.Expense) error {
	const qInsert = `INSERT INTO expenses (vehicle_id, amount, category, description, spent_at)
		VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert, e.VehicleID, e.Amount, e.Category, e.Description, e.SpentAt)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	e.ID = uint64(id)

	const qSelect = "SELECT created_at FROM expenses WHERE id = ?"
	return r.db.QueryRowContext(ctx, qSelect, e.ID).Scan(&e.CreatedAt)
}

// ListByVehicle returns the expenses of one vehicle ordered by id.
func (r *ExpenseRepo) ListByVehicle(ctx context.Context, vehicleID uint64) ([]*model.Expense, error) {
	const q = `SELECT id, vehicle_id, amount, category, description, spent_at, created_at
	           FROM expenses WHERE vehicle_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, vehicleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Expense
	for rows.Next() {
		e := new(model.Expense)
		if err := rows.Scan(&e.ID, &e.VehicleID, &e.Amount, &e.Category, &e.Description, &e.SpentAt, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// TotalsByVehicle returns the summed expense amount per vehicle in a
// single grouped query.  List endpoints use it to value a whole page of
// vehicles without issuing one query per row.  Vehicles without any
// expense simply have no entry in the map.
func (r *ExpenseRepo) TotalsByVehicle(ctx context.Context) (map[uint64]decimal.Decimal, error) {
	const q = `SELECT vehicle_id, COALESCE(SUM(amount), 0) FROM expenses GROUP BY vehicle_id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make(map[uint64]decimal.Decimal)
	for rows.Next() {
		var (
			vehicleID uint64
			total     decimal.Decimal
		)
		if err := rows.Scan(&vehicleID, &total); err != nil {
			return nil, err
		}
		totals[vehicleID] = total
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return totals, nil
}
