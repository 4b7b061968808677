// Package repository defines error values shared across repositories.
// These sentinels let handlers map failure scenarios onto HTTP status
// codes: ErrVehicleSold becomes a 409 when an operator tries to record
// a second sale for the same vehicle.
package repository

import "errors"

// ErrVehicleSold is returned when an operation requires an in-stock
// vehicle but the row has already moved to SOLD.  The IN_STOCK to SOLD
// transition happens once and is never reversed.
var ErrVehicleSold = errors.New("vehicle already sold")
