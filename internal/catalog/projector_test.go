package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/julioaguiar07/aplicacao-garagem-sub000/internal/model"
	"github.com/julioaguiar07/aplicacao-garagem-sub000/internal/valuation"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func vehicle(id uint64, make, fuel, trans, price string, year, odometer int) Enriched {
	v := model.Vehicle{
		ID:           id,
		Make:         make,
		Model:        "m",
		Year:         year,
		FuelType:     fuel,
		Transmission: trans,
		SalePrice:    d(price),
		Odometer:     odometer,
		Status:       model.StatusInStock,
	}
	return EnrichWithTotal(v, valuation.Compute(v.EntryCost, v.SalePrice, nil))
}

func fleet() []Enriched {
	return []Enriched{
		vehicle(1, "Toyota", "flex", "manual", "35000", 2018, 60000),
		vehicle(2, "Honda", "gasoline", "automatic", "42000", 2020, 25000),
		vehicle(3, "Toyota", "flex", "automatic", "55000", 2022, 10000),
		vehicle(4, "Fiat", "flex", "manual", "28000", 2016, 90000),
		vehicle(5, "Toyota", "diesel", "manual", "39000", 2019, 45000),
	}
}

func ids(list []Enriched) []uint64 {
	out := make([]uint64, 0, len(list))
	for _, v := range list {
		out = append(out, v.ID)
	}
	return out
}

func TestEnrichHighlight(t *testing.T) {
	v := model.Vehicle{EntryCost: d("20000"), SalePrice: d("25000")}
	expenses := []model.Expense{{Amount: d("1500")}, {Amount: d("800")}}

	e := Enrich(v, expenses)
	require.True(t, e.TotalCost.Equal(d("22300")))
	require.True(t, e.Profit.Equal(d("2700")))
	require.False(t, e.Highlighted, "12.11%% margin must not be highlighted")

	v.SalePrice = d("30000")
	e = Enrich(v, expenses)
	require.True(t, e.Profit.Equal(d("7700")))
	require.True(t, e.Highlighted, "34.53%% margin must be highlighted")

	// Exactly 15% stays below the threshold (strict comparison).
	border := model.Vehicle{EntryCost: d("10000"), SalePrice: d("11500")}
	require.False(t, Enrich(border, nil).Highlighted)
}

func TestProjectFiltering(t *testing.T) {
	set := fleet()

	t.Run("make and max price", func(t *testing.T) {
		max := d("40000")
		out, agg := Project(set, FilterSpec{Make: "Toyota", MaxPrice: &max}, SortMostRecent)
		require.Equal(t, []uint64{5, 1}, ids(out))
		require.Equal(t, 2, agg.Count)
		// Aggregates reflect the full five-vehicle set, not the two matches.
		require.True(t, agg.StockValue.Equal(d("199000")), "stock value %s", agg.StockValue)
		require.True(t, agg.AveragePrice.Equal(d("39800")), "average %s", agg.AveragePrice)
	})

	t.Run("conjunctive criteria", func(t *testing.T) {
		out, _ := Project(set, FilterSpec{Make: "Toyota", FuelType: "flex", Transmission: "automatic"}, SortMostRecent)
		require.Equal(t, []uint64{3}, ids(out))
	})

	t.Run("case-insensitive exact match", func(t *testing.T) {
		out, _ := Project(set, FilterSpec{Make: "toyota"}, SortMostRecent)
		require.Len(t, out, 3)
	})

	t.Run("no constraint returns everything", func(t *testing.T) {
		out, agg := Project(set, FilterSpec{}, SortMostRecent)
		require.Len(t, out, 5)
		require.Equal(t, 5, agg.Count)
	})

	t.Run("idempotent", func(t *testing.T) {
		spec := FilterSpec{FuelType: "flex"}
		once, _ := Project(set, spec, SortPriceAsc)
		twice, _ := Project(once, spec, SortPriceAsc)
		require.Equal(t, ids(once), ids(twice))
	})

	t.Run("count matches list length", func(t *testing.T) {
		for _, spec := range []FilterSpec{{}, {Make: "Fiat"}, {Make: "none"}} {
			out, agg := Project(set, spec, SortMostRecent)
			require.Equal(t, len(out), agg.Count)
		}
	})
}

func TestProjectSorting(t *testing.T) {
	set := fleet()

	t.Run("most recent is default", func(t *testing.T) {
		out, _ := Project(set, FilterSpec{}, ParseSort("bogus"))
		require.Equal(t, []uint64{5, 4, 3, 2, 1}, ids(out))
	})

	t.Run("price asc and desc reverse each other", func(t *testing.T) {
		asc, _ := Project(set, FilterSpec{}, SortPriceAsc)
		desc, _ := Project(set, FilterSpec{}, SortPriceDesc)
		require.Equal(t, []uint64{4, 1, 5, 2, 3}, ids(asc))
		for i := range asc {
			require.Equal(t, asc[i].ID, desc[len(desc)-1-i].ID)
		}
	})

	t.Run("mileage ascending", func(t *testing.T) {
		out, _ := Project(set, FilterSpec{}, SortMileageAsc)
		require.Equal(t, []uint64{3, 2, 5, 1, 4}, ids(out))
	})

	t.Run("year descending", func(t *testing.T) {
		out, _ := Project(set, FilterSpec{}, SortYearDesc)
		require.Equal(t, []uint64{3, 2, 5, 1, 4}, ids(out))
	})

	t.Run("stable on equal keys", func(t *testing.T) {
		tied := []Enriched{
			vehicle(10, "A", "flex", "manual", "30000", 2020, 1000),
			vehicle(11, "B", "flex", "manual", "30000", 2020, 1000),
			vehicle(12, "C", "flex", "manual", "30000", 2020, 1000),
		}
		out, _ := Project(tied, FilterSpec{}, SortPriceAsc)
		require.Equal(t, []uint64{10, 11, 12}, ids(out), "equal prices keep input order")
	})

	t.Run("input slice untouched", func(t *testing.T) {
		before := ids(set)
		_, _ = Project(set, FilterSpec{}, SortPriceAsc)
		require.Equal(t, before, ids(set))
	})
}

func TestProjectEmptySet(t *testing.T) {
	out, agg := Project(nil, FilterSpec{}, SortMostRecent)
	require.Empty(t, out)
	require.Equal(t, 0, agg.Count)
	require.True(t, agg.StockValue.IsZero())
	require.True(t, agg.AveragePrice.IsZero(), "average over empty set must be zero, not a fault")
}

func TestOptions(t *testing.T) {
	t.Run("distinct sorted values and price bounds", func(t *testing.T) {
		opts := Options(fleet())
		require.Equal(t, []string{"Fiat", "Honda", "Toyota"}, opts.Makes)
		require.Equal(t, []string{"diesel", "flex", "gasoline"}, opts.FuelTypes)
		require.Equal(t, []string{"automatic", "manual"}, opts.Transmissions)
		require.True(t, opts.PriceMin.Equal(d("28000")))
		require.True(t, opts.PriceMax.Equal(d("55000")))
	})

	t.Run("empty set", func(t *testing.T) {
		opts := Options(nil)
		require.Empty(t, opts.Makes)
		require.Empty(t, opts.FuelTypes)
		require.Empty(t, opts.Transmissions)
		require.Nil(t, opts.PriceMin)
		require.Nil(t, opts.PriceMax)
	})
}

func TestBadge(t *testing.T) {
	require.Equal(t, "low usage", Badge(0))
	require.Equal(t, "low usage", Badge(29999))
	require.Equal(t, "semi-new", Badge(30000))
	require.Equal(t, "semi-new", Badge(49999))
	require.Equal(t, "available", Badge(50000))
	require.Equal(t, "available", Badge(180000))
}
