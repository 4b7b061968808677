// Package valuation computes the financial figures of a vehicle from
// its stored raw fields.  It has no state and no storage or transport
// dependencies so that every presentation surface (dashboard, public
// catalog, API) derives the same numbers from the same inputs.
package valuation

import "github.com/shopspring/decimal"

// Metrics holds the derived financial figures of a single vehicle.
// None of these values is ever persisted; they are recomputed from the
// authoritative tables on every read.
type Metrics struct {
	TotalCost decimal.Decimal `json:"total_cost"` // entry cost + sum of expenses
	Profit    decimal.Decimal `json:"profit"`     // sale price - total cost
	MarginPct decimal.Decimal `json:"margin_pct"` // profit as a percentage of total cost
}

var hundred = decimal.NewFromInt(100)

// Compute derives Metrics from an entry cost, an asking price and the
// amounts of the expenses attached to the vehicle.  Margin is defined
// as zero when the total cost is zero, so the division never faults.
// Negative or zero inputs are valid and produce the arithmetic result.
func Compute(entryCost, salePrice decimal.Decimal, expenses []decimal.Decimal) Metrics {
	total := entryCost
	for _, e := range expenses {
		total = total.Add(e)
	}
	profit := salePrice.Sub(total)
	margin := decimal.Zero
	if !total.IsZero() {
		margin = profit.Div(total).Mul(hundred)
	}
	return Metrics{TotalCost: total, Profit: profit, MarginPct: margin}
}
