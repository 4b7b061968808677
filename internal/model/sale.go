package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale records the sale of a vehicle, one row in the `sales` table.  A
// vehicle is sold at most once; inserting a Sale is the sole trigger
// that flips the owning vehicle's status from IN_STOCK to SOLD, and
// both writes happen in the same transaction.
//
// Fields:
//  ID          – primary key identifier.
//  VehicleID   – the vehicle that was sold (unique per vehicle).
//  BuyerName   – name of the buyer.
//  Amount      – amount actually paid (may differ from the asking price).
//  SoldAt      – when the sale happened.
//  ContractRef – optional reference to the generated contract document.
//  CreatedAt   – timestamp when the row was created.
type Sale struct {
	ID          uint64          // sales.id
	VehicleID   uint64          // sales.vehicle_id
	BuyerName   string          // sales.buyer_name
	Amount      decimal.Decimal // sales.amount
	SoldAt      time.Time       // sales.sold_at
	ContractRef *string         // sales.contract_ref (nullable)
	CreatedAt   time.Time       // sales.created_at
}
