package valuation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestCompute(t *testing.T) {
	t.Run("entry cost plus expenses", func(t *testing.T) {
		m := Compute(d("20000"), d("25000"), []decimal.Decimal{d("1500"), d("800")})
		require.True(t, m.TotalCost.Equal(d("22300")), "total cost %s", m.TotalCost)
		require.True(t, m.Profit.Equal(d("2700")), "profit %s", m.Profit)
		require.True(t, m.MarginPct.Round(2).Equal(d("12.11")), "margin %s", m.MarginPct)
	})

	t.Run("higher sale price raises margin", func(t *testing.T) {
		m := Compute(d("20000"), d("30000"), []decimal.Decimal{d("1500"), d("800")})
		require.True(t, m.TotalCost.Equal(d("22300")))
		require.True(t, m.Profit.Equal(d("7700")))
		require.True(t, m.MarginPct.Round(2).Equal(d("34.53")), "margin %s", m.MarginPct)
	})

	t.Run("no expenses", func(t *testing.T) {
		m := Compute(d("10000"), d("12000"), nil)
		require.True(t, m.TotalCost.Equal(d("10000")))
		require.True(t, m.Profit.Equal(d("2000")))
		require.True(t, m.MarginPct.Equal(d("20")))
	})

	t.Run("zero total cost yields zero margin", func(t *testing.T) {
		m := Compute(decimal.Zero, d("5000"), nil)
		require.True(t, m.TotalCost.IsZero())
		require.True(t, m.Profit.Equal(d("5000")))
		require.True(t, m.MarginPct.IsZero())
	})

	t.Run("expenses cancelling the entry cost", func(t *testing.T) {
		// A credit note can bring the total to exactly zero; margin must
		// still be zero rather than a division fault.
		m := Compute(d("500"), d("1000"), []decimal.Decimal{d("-500")})
		require.True(t, m.TotalCost.IsZero())
		require.True(t, m.MarginPct.IsZero())
	})

	t.Run("negative profit", func(t *testing.T) {
		m := Compute(d("30000"), d("25000"), []decimal.Decimal{d("2000")})
		require.True(t, m.Profit.Equal(d("-7000")))
		require.True(t, m.MarginPct.Round(2).Equal(d("-21.88")), "margin %s", m.MarginPct)
	})
}
