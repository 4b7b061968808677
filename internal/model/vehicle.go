package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Vehicle status values as stored in the `vehicles.status` column.  A
// vehicle enters the system as IN_STOCK and moves to SOLD exactly once,
// when a sale is recorded.  The transition is irreversible and vehicles
// are never physically deleted.
const (
	StatusInStock = "IN_STOCK"
	StatusSold    = "SOLD"
)

// Vehicle represents a car held in stock by the dealership, one row in
// the `vehicles` table.  Financial fields use decimal values because
// they carry money; computed figures (total cost, margin, profit) are
// never stored here — they are derived on read from the entry cost and
// the vehicle's expenses.
//
// Fields:
//  ID           – primary key identifier.
//  Make         – manufacturer name (e.g. "Toyota").
//  Model        – commercial model name.
//  Year         – model year.
//  Color        – exterior colour.
//  Plate        – license plate.
//  Chassis      – chassis (VIN) number.
//  FuelType     – fuel type label (e.g. "flex", "diesel").
//  Transmission – transmission type label (e.g. "manual", "automatic").
//  Doors        – number of doors.
//  Notes        – free-text remarks entered by the operator.
//  EntryCost    – acquisition cost paid by the dealership.
//  SalePrice    – asking price shown on the public catalog.
//  Odometer     – odometer reading in kilometres.
//  Status       – IN_STOCK or SOLD.
//  CreatedAt    – timestamp when the row was created.
type Vehicle struct {
	ID           uint64          // vehicles.id
	Make         string          // vehicles.make
	Model        string          // vehicles.model
	Year         int             // vehicles.year
	Color        string          // vehicles.color
	Plate        string          // vehicles.plate
	Chassis      string          // vehicles.chassis
	FuelType     string          // vehicles.fuel_type
	Transmission string          // vehicles.transmission
	Doors        int             // vehicles.doors
	Notes        string          // vehicles.notes
	EntryCost    decimal.Decimal // vehicles.entry_cost
	SalePrice    decimal.Decimal // vehicles.sale_price
	Odometer     int             // vehicles.odometer
	Status       string          // vehicles.status
	CreatedAt    time.Time       // vehicles.created_at
}

// Photo is a binary image attached to a vehicle, one row in the
// `vehicle_photos` table.  A vehicle may carry any number of photos;
// the oldest one is used as the cover image on list responses.
type Photo struct {
	ID        uint64    // vehicle_photos.id
	VehicleID uint64    // vehicle_photos.vehicle_id
	Image     []byte    // vehicle_photos.image (raw bytes, base64-encoded only at the HTTP edge)
	CreatedAt time.Time // vehicle_photos.created_at
}
