package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/julioaguiar07/aplicacao-garagem-sub000/internal/model"
)

// ErrSaleNotFound is returned when no sale exists for a vehicle.
var ErrSaleNotFound = errors.New("sale not found")

// SaleRepo encapsulates queries on the `sales` table.  Recording a sale
// is the one multi-table write in the system: the sale row is inserted
// and the vehicle status flips to SOLD inside a single transaction.
type SaleRepo struct {
	db *sql.DB
}

// NewSaleRepo constructs a SaleRepo with the provided DB handle.
func NewSaleRepo(db *sql.DB) *SaleRepo {
	return &SaleRepo{db: db}
}

// Record inserts the sale and marks the vehicle as sold.  It returns
// ErrVehicleNotFound when the vehicle does not exist and ErrVehicleSold
// when the vehicle has already been sold; the status check takes a row
// lock so two concurrent sales of the same vehicle cannot both pass.
// The return value is named so the deferred commit/rollback outcome
// reaches the caller: a failed commit must never look like a sale.
func (r *SaleRepo) Record(ctx context.Context, s *model.Sale) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	var status string
	if err = tx.QueryRowContext(ctx,
		`SELECT status FROM vehicles WHERE id = ? FOR UPDATE`, s.VehicleID).Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrVehicleNotFound
		}
		return err
	}
	if status != model.StatusInStock {
		err = ErrVehicleSold
		return err
	}

	var res sql.Result
	res, err = tx.ExecContext(ctx,
		`INSERT INTO sales (vehicle_id, buyer_name, amount, sold_at, contract_ref)
		 VALUES (?, ?, ?, ?, ?)`,
		s.VehicleID, s.BuyerName, s.Amount, s.SoldAt, s.ContractRef)
	if err != nil {
		return err
	}
	var id int64
	if id, err = res.LastInsertId(); err != nil {
		return err
	}
	s.ID = uint64(id)

	_, err = tx.ExecContext(ctx,
		`UPDATE vehicles SET status = ? WHERE id = ?`, model.StatusSold, s.VehicleID)
	return err
}

// GetByVehicle fetches the sale of a vehicle, if any.
func (r *SaleRepo) GetByVehicle(ctx context.Context, vehicleID uint64) (*model.Sale, error) {
	const q = `SELECT id, vehicle_id, buyer_name, amount, sold_at, contract_ref, created_at
	           FROM sales WHERE vehicle_id = ?`
	var s model.Sale
	err := r.db.QueryRowContext(ctx, q, vehicleID).Scan(
		&s.ID, &s.VehicleID, &s.BuyerName, &s.Amount, &s.SoldAt, &s.ContractRef, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSaleNotFound
		}
		return nil, err
	}
	return &s, nil
}

// SaleRow is a sale joined with the sold vehicle's identity, shaped for
// the dashboard sales listing.
type SaleRow struct {
	ID        uint64          `json:"id"`
	VehicleID uint64          `json:"vehicle_id"`
	Make      string          `json:"make"`
	Model     string          `json:"model"`
	Year      int             `json:"year"`
	BuyerName string          `json:"buyer_name"`
	Amount    decimal.Decimal `json:"amount"`
	SoldAt    string          `json:"sold_at"`
}

// ListAll returns every sale joined with its vehicle, newest first.
func (r *SaleRepo) ListAll(ctx context.Context) ([]SaleRow, error) {
	const q = `SELECT
			s.id,
			s.vehicle_id,
			v.make,
			v.model,
			v.year,
			s.buyer_name,
			s.amount,
			DATE_FORMAT(s.sold_at, '%Y-%m-%dT%TZ') AS sold_at
		FROM sales s
		JOIN vehicles v ON v.id = s.vehicle_id
		ORDER BY s.sold_at DESC, s.id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]SaleRow, 0)
	for rows.Next() {
		var row SaleRow
		if err := rows.Scan(&row.ID, &row.VehicleID, &row.Make, &row.Model, &row.Year,
			&row.BuyerName, &row.Amount, &row.SoldAt); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
