package model

import "time"

// Lead is a customer contact request submitted through the public
// catalog, one row in the `leads` table.  Name and phone are required;
// the vehicle reference is optional because a visitor may ask a general
// question rather than enquire about a specific car.
type Lead struct {
	ID        uint64    // leads.id
	VehicleID *uint64   // leads.vehicle_id (nullable)
	Name      string    // leads.name
	Phone     string    // leads.phone
	Email     string    // leads.email (empty when not given)
	Message   string    // leads.message
	CreatedAt time.Time // leads.created_at
}
