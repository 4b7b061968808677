package handler

import (
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestParseFilterSpec(t *testing.T) {
	t.Run("all parameters", func(t *testing.T) {
		q := url.Values{}
		q.Set("make", " Toyota ")
		q.Set("max_price", "40000")
		q.Set("fuel", "flex")
		q.Set("transmission", "manual")

		spec := parseFilterSpec(q)
		require.Equal(t, "Toyota", spec.Make)
		require.Equal(t, "flex", spec.FuelType)
		require.Equal(t, "manual", spec.Transmission)
		require.NotNil(t, spec.MaxPrice)
		require.True(t, spec.MaxPrice.Equal(decimal.NewFromInt(40000)))
	})

	t.Run("empty query means no constraint", func(t *testing.T) {
		spec := parseFilterSpec(url.Values{})
		require.Empty(t, spec.Make)
		require.Empty(t, spec.FuelType)
		require.Empty(t, spec.Transmission)
		require.Nil(t, spec.MaxPrice)
	})

	t.Run("bad max_price is ignored", func(t *testing.T) {
		q := url.Values{}
		q.Set("max_price", "cheap")
		require.Nil(t, parseFilterSpec(q).MaxPrice)
	})
}
