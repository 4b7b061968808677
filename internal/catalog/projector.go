// Package catalog projects the in-stock vehicle collection into the
// filtered, ordered views rendered by the public catalog and the
// dashboard.  It operates on vehicles already enriched with valuation
// figures and never touches storage or transport.
package catalog

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/julioaguiar07/aplicacao-garagem-sub000/internal/model"
	"github.com/julioaguiar07/aplicacao-garagem-sub000/internal/valuation"
)

// highlightMargin is the margin percentage above which a vehicle is
// flagged for promotional display.  The comparison is strict: a margin
// of exactly 15% is not highlighted.
var highlightMargin = decimal.NewFromInt(15)

// Enriched couples a vehicle with its derived valuation figures and
// the display-only highlight flag.  Highlighted is stateless — it is
// recomputed on every enrichment and never stored.
type Enriched struct {
	model.Vehicle
	valuation.Metrics
	Highlighted bool
}

// Enrich computes the valuation of a vehicle from its expenses and
// returns the Enriched projection used by all presentation surfaces.
func Enrich(v model.Vehicle, expenses []model.Expense) Enriched {
	amounts := make([]decimal.Decimal, 0, len(expenses))
	for _, e := range expenses {
		amounts = append(amounts, e.Amount)
	}
	return EnrichWithTotal(v, valuation.Compute(v.EntryCost, v.SalePrice, amounts))
}

// EnrichWithTotal builds an Enriched from precomputed metrics.  The
// list endpoints use it after summing expenses in a single grouped
// query instead of loading every expense row.
func EnrichWithTotal(v model.Vehicle, m valuation.Metrics) Enriched {
	return Enriched{
		Vehicle:     v,
		Metrics:     m,
		Highlighted: m.MarginPct.GreaterThan(highlightMargin),
	}
}

// FilterSpec narrows the catalog.  Zero values mean "no constraint" and
// all provided criteria are combined with AND.  Matching is exact
// (case-insensitive for the string fields); there is no fuzzy search.
type FilterSpec struct {
	Make         string
	MaxPrice     *decimal.Decimal // inclusive upper bound on sale price
	FuelType     string
	Transmission string
}

// Matches reports whether a vehicle satisfies every provided criterion.
func (f FilterSpec) Matches(v Enriched) bool {
	if f.Make != "" && !strings.EqualFold(f.Make, v.Make) {
		return false
	}
	if f.MaxPrice != nil && v.SalePrice.GreaterThan(*f.MaxPrice) {
		return false
	}
	if f.FuelType != "" && !strings.EqualFold(f.FuelType, v.FuelType) {
		return false
	}
	if f.Transmission != "" && !strings.EqualFold(f.Transmission, v.Transmission) {
		return false
	}
	return true
}

// Sort selects the ordering of the projected list.
type Sort string

const (
	SortMostRecent Sort = "most_recent" // newest entries first (default)
	SortPriceAsc   Sort = "price_asc"
	SortPriceDesc  Sort = "price_desc"
	SortMileageAsc Sort = "mileage_asc"
	SortYearDesc   Sort = "year_desc"
)

// ParseSort maps a query-string value onto a Sort, falling back to
// SortMostRecent for empty or unknown values.
func ParseSort(s string) Sort {
	switch Sort(strings.ToLower(strings.TrimSpace(s))) {
	case SortPriceAsc:
		return SortPriceAsc
	case SortPriceDesc:
		return SortPriceDesc
	case SortMileageAsc:
		return SortMileageAsc
	case SortYearDesc:
		return SortYearDesc
	default:
		return SortMostRecent
	}
}

// Aggregates summarizes the full in-stock set that a projection was
// taken from.  StockValue and AveragePrice deliberately cover the
// unfiltered set — they describe the dealership's stock as a whole,
// not the subset the visitor is currently looking at.
type Aggregates struct {
	Count        int             `json:"count"`         // number of vehicles in the filtered list
	StockValue   decimal.Decimal `json:"stock_value"`   // sum of sale prices over the full set
	AveragePrice decimal.Decimal `json:"average_price"` // mean sale price over the full set, 0 when empty
}

// Project filters and orders the enriched in-stock list and returns it
// together with the aggregates.  The input slice is not modified; the
// sort is stable so equal keys keep their original relative order.
func Project(list []Enriched, filter FilterSpec, order Sort) ([]Enriched, Aggregates) {
	out := make([]Enriched, 0, len(list))
	for _, v := range list {
		if filter.Matches(v) {
			out = append(out, v)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch order {
		case SortPriceAsc:
			return a.SalePrice.LessThan(b.SalePrice)
		case SortPriceDesc:
			return a.SalePrice.GreaterThan(b.SalePrice)
		case SortMileageAsc:
			return a.Odometer < b.Odometer
		case SortYearDesc:
			return a.Year > b.Year
		default: // most_recent
			return a.ID > b.ID
		}
	})

	agg := Aggregates{Count: len(out), StockValue: decimal.Zero, AveragePrice: decimal.Zero}
	for _, v := range list {
		agg.StockValue = agg.StockValue.Add(v.SalePrice)
	}
	if len(list) > 0 {
		agg.AveragePrice = agg.StockValue.Div(decimal.NewFromInt(int64(len(list))))
	}
	return out, agg
}

// FilterOptions lists the distinct values present in the in-stock set,
// used by the public catalog to populate its filter controls.  The
// price bounds are nil when the set is empty.
type FilterOptions struct {
	Makes         []string         `json:"makes"`
	PriceMin      *decimal.Decimal `json:"price_min"`
	PriceMax      *decimal.Decimal `json:"price_max"`
	FuelTypes     []string         `json:"fuel_types"`
	Transmissions []string         `json:"transmissions"`
}

// Options derives FilterOptions from the enriched in-stock list.
// Distinct values are reported in alphabetical order, compared
// case-insensitively with the first spelling seen winning.
func Options(list []Enriched) FilterOptions {
	opts := FilterOptions{
		Makes:         []string{},
		FuelTypes:     []string{},
		Transmissions: []string{},
	}
	for _, v := range list {
		opts.Makes = appendDistinct(opts.Makes, v.Make)
		opts.FuelTypes = appendDistinct(opts.FuelTypes, v.FuelType)
		opts.Transmissions = appendDistinct(opts.Transmissions, v.Transmission)
		price := v.SalePrice
		if opts.PriceMin == nil || price.LessThan(*opts.PriceMin) {
			p := price
			opts.PriceMin = &p
		}
		if opts.PriceMax == nil || price.GreaterThan(*opts.PriceMax) {
			p := price
			opts.PriceMax = &p
		}
	}
	sort.Strings(opts.Makes)
	sort.Strings(opts.FuelTypes)
	sort.Strings(opts.Transmissions)
	return opts
}

func appendDistinct(values []string, v string) []string {
	if v == "" {
		return values
	}
	for _, existing := range values {
		if strings.EqualFold(existing, v) {
			return values
		}
	}
	return append(values, v)
}

// Badge returns the display badge shown next to a vehicle on the
// public catalog, derived from the odometer reading.
func Badge(odometer int) string {
	switch {
	case odometer < 30000:
		return "low usage"
	case odometer < 50000:
		return "semi-new"
	default:
		return "available"
	}
}
