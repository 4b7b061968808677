package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a cost attached to a vehicle after acquisition (repairs,
// detailing, paperwork...), one row in the `expenses` table.  Expenses
// are immutable once created: there is no update or delete path.  They
// feed the valuation of the owning vehicle — total cost is the entry
// cost plus the sum of all expense amounts.
//
// Fields:
//  ID          – primary key identifier.
//  VehicleID   – owning vehicle (required; an expense cannot exist alone).
//  Amount      – monetary amount of the expense.
//  Category    – short category label (e.g. "mecanica", "documentacao").
//  Description – free-text description.
//  SpentAt     – date the money was spent.
//  CreatedAt   – timestamp when the row was created.
type Expense struct {
	ID          uint64          // expenses.id
	VehicleID   uint64          // expenses.vehicle_id
	Amount      decimal.Decimal // expenses.amount
	Category    string          // expenses.category
	Description string          // expenses.description
	SpentAt     time.Time       // expenses.spent_at
	CreatedAt   time.Time       // expenses.created_at
}
