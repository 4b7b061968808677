// Package queue defines message payloads exchanged over the message broker.
package queue

// LeadCreatedEvent is published when a visitor submits the contact form
// on the public catalog.  It carries enough information for downstream
// consumers to notify the sales team without querying the primary
// database.
type LeadCreatedEvent struct {
	LeadID    uint64  `json:"lead_id"`
	VehicleID *uint64 `json:"vehicle_id,omitempty"`
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Email     string  `json:"email,omitempty"`
	Message   string  `json:"message,omitempty"`
	CreatedAt string  `json:"created_at"`
}

// SaleRecordedEvent is published when an operator records a sale and
// the vehicle leaves the stock.
type SaleRecordedEvent struct {
	SaleID    uint64 `json:"sale_id"`
	VehicleID uint64 `json:"vehicle_id"`
	Make      string `json:"make"`
	Model     string `json:"model"`
	BuyerName string `json:"buyer_name"`
	Amount    string `json:"amount"` // decimal rendered as string to keep the payload exact
	SoldAt    string `json:"sold_at"`
}
