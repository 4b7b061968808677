package handler

import (
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/julioaguiar07/aplicacao-garagem-sub000/internal/catalog"
)

// parseFilterSpec maps catalog query parameters onto a FilterSpec.
// Absent or empty parameters mean "no constraint"; an unparseable
// max_price is ignored rather than rejected, matching how the filter
// controls on the vitrine submit their values.
func parseFilterSpec(q url.Values) catalog.FilterSpec {
	spec := catalog.FilterSpec{
		Make:         strings.TrimSpace(q.Get("make")),
		FuelType:     strings.TrimSpace(q.Get("fuel")),
		Transmission: strings.TrimSpace(q.Get("transmission")),
	}
	if raw := strings.TrimSpace(q.Get("max_price")); raw != "" {
		if max, err := decimal.NewFromString(raw); err == nil {
			spec.MaxPrice = &max
		}
	}
	return spec
}
