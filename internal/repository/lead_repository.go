package repository

import (
	"context"
	"database/sql"

	"github.com/julioaguiar07/aplicacao-garagem-sub000/internal/model"
)

// LeadRepo encapsulates queries on the `leads` table.
type LeadRepo struct {
	db *sql.DB
}

// NewLeadRepo constructs a LeadRepo with the provided DB handle.
func NewLeadRepo(db *sql.DB) *LeadRepo {
	return &LeadRepo{db: db}
}

// Create stores a contact request.  On success the ID and creation
// timestamp are populated from the stored row.
func (r *LeadRepo) Create(ctx context.Context, l *model.Lead) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO leads (vehicle_id, name, phone, email, message) VALUES (?, ?, ?, ?, ?)`,
		l.VehicleID, l.Name, l.Phone, l.Email, l.Message)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	l.ID = uint64(id)

	return r.db.QueryRowContext(ctx,
		`SELECT created_at FROM leads WHERE id = ?`, l.ID).Scan(&l.CreatedAt)
}

// ListAll returns every lead, newest first, for the dashboard inbox.
func (r *LeadRepo) ListAll(ctx context.Context) ([]*model.Lead, error) {
	const q = `SELECT id, vehicle_id, name, phone, email, message, created_at
	           FROM leads ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Lead
	for rows.Next() {
		l := new(model.Lead)
		var vehicleID sql.NullInt64
		if err := rows.Scan(&l.ID, &vehicleID, &l.Name, &l.Phone, &l.Email, &l.Message, &l.CreatedAt); err != nil {
			return nil, err
		}
		if vehicleID.Valid {
			id := uint64(vehicleID.Int64)
			l.VehicleID = &id
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
