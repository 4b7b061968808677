// Package repository contains data access logic separated from HTTP
// handlers.  This file covers the `vehicles` table.  Vehicles are never
// physically deleted; a sale flips their status to SOLD and they simply
// stop appearing in the in-stock listings.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/julioaguiar07/aplicacao-garagem-sub000/internal/model"
)

// ErrVehicleNotFound is returned when a vehicle cannot be found.
var ErrVehicleNotFound = errors.New("vehicle not found")

const vehicleColumns = `id, make, model, year, color, plate, chassis, fuel_type,
	transmission, doors, notes, entry_cost, sale_price, odometer, status, created_at`

// VehicleRepo encapsulates all database queries related to vehicles.
type VehicleRepo struct {
	db *sql.DB
}

// NewVehicleRepo constructs a VehicleRepo with the provided DB handle.
func NewVehicleRepo(db *sql.DB) *VehicleRepo {
	return &VehicleRepo{db: db}
}

func scanVehicle(row interface{ Scan(...any) error }, v *model.Vehicle) error {
	return row.Scan(&v.ID, &v.Make, &v.Model, &v.Year, &v.Color, &v.Plate, &v.Chassis,
		&v.FuelType, &v.Transmission, &v.Doors, &v.Notes, &v.EntryCost, &v.SalePrice,
		&v.Odometer, &v.Status, &v.CreatedAt)
}

// Create inserts a new vehicle.  On success the ID, status and creation
// timestamp fields are populated from the stored row so callers receive
// a fully populated record.
func (r *VehicleRepo) Create(ctx context.Context, v *model.Vehicle) error {
	const qInsert = `INSERT INTO vehicles
		(make, model, year, color, plate, chassis, fuel_type, transmission, doors,
		 notes, entry_cost, sale_price, odometer)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert,
		v.Make, v.Model, v.Year, v.Color, v.Plate, v.Chassis, v.FuelType,
		v.Transmission, v.Doors, v.Notes, v.EntryCost, v.SalePrice, v.Odometer)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	v.ID = uint64(id)

	// Follow-up SELECT to pick up the DB-side defaults (status, created_at).
	const qSelect = "SELECT " + vehicleColumns + " FROM vehicles WHERE id = ?"
	return scanVehicle(r.db.QueryRowContext(ctx, qSelect, v.ID), v)
}

// GetByID fetches a vehicle by id, whatever its status.  It returns
// ErrVehicleNotFound when no row exists.
func (r *VehicleRepo) GetByID(ctx context.Context, id uint64) (*model.Vehicle, error) {
	const q = "SELECT " + vehicleColumns + " FROM vehicles WHERE id = ?"
	var v model.Vehicle
	if err := scanVehicle(r.db.QueryRowContext(ctx, q, id), &v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}
	return &v, nil
}

// GetInStockByID fetches a vehicle only when it is still in stock.
// Sold vehicles are invisible to the public catalog, so the handler
// maps ErrVehicleNotFound to a 404 either way.
func (r *VehicleRepo) GetInStockByID(ctx context.Context, id uint64) (*model.Vehicle, error) {
	const q = "SELECT " + vehicleColumns + " FROM vehicles WHERE id = ? AND status = ?"
	var v model.Vehicle
	if err := scanVehicle(r.db.QueryRowContext(ctx, q, id, model.StatusInStock), &v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}
	return &v, nil
}

// ListInStock returns all vehicles currently in stock ordered by id.
func (r *VehicleRepo) ListInStock(ctx context.Context) ([]*model.Vehicle, error) {
	const q = "SELECT " + vehicleColumns + " FROM vehicles WHERE status = ? ORDER BY id"
	return r.list(ctx, q, model.StatusInStock)
}

// ListAll returns every vehicle regardless of status, for the dashboard
// stock view.
func (r *VehicleRepo) ListAll(ctx context.Context) ([]*model.Vehicle, error) {
	const q = "SELECT " + vehicleColumns + " FROM vehicles ORDER BY id"
	return r.list(ctx, q)
}

func (r *VehicleRepo) list(ctx context.Context, q string, args ...any) ([]*model.Vehicle, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Vehicle
	for rows.Next() {
		v := new(model.Vehicle)
		if err := scanVehicle(rows, v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
