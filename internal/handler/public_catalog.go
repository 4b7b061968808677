// Package handler exposes HTTP handlers for both authenticated and public endpoints.
// This file defines the public catalog ("vitrine") API.  These routes let
// unauthenticated visitors browse the in-stock vehicles and submit contact
// requests.  Financial fields (entry cost, margin, profit) are filtered from
// every public response.
package handler

import (
	"context"
	"encoding/base64"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/julioaguiar07/aplicacao-garagem-sub000/internal/cache"
	"github.com/julioaguiar07/aplicacao-garagem-sub000/internal/catalog"
	"github.com/julioaguiar07/aplicacao-garagem-sub000/internal/config"
	"github.com/julioaguiar07/aplicacao-garagem-sub000/internal/model"
	"github.com/julioaguiar07/aplicacao-garagem-sub000/internal/queue"
	"github.com/julioaguiar07/aplicacao-garagem-sub000/internal/repository"
	queue_publisher "github.com/julioaguiar07/aplicacao-garagem-sub000/internal/service"
	"github.com/julioaguiar07/aplicacao-garagem-sub000/internal/valuation"
)

// PublicCatalogHandler aggregates the dependencies of the public API.
// The in-stock list flows through the result cache: every request
// within the TTL window reuses the last enriched list instead of
// re-reading storage.  A stale list inside that window is accepted.
type PublicCatalogHandler struct {
	Vehicles *repository.VehicleRepo
	Expenses *repository.ExpenseRepo
	Photos   *repository.PhotoRepo
	Leads    *repository.LeadRepo
	Cache    cache.Store
	CacheCfg config.CacheConfig
}

// PublicVehicle is a vehicle exposed via the public API.  It carries
// only safe fields: the asking price is public, the entry cost and the
// derived margin/profit are not.  Highlighted is kept because the
// vitrine uses it purely for display emphasis.
type PublicVehicle struct {
	ID           uint64          `json:"id"`
	Make         string          `json:"make"`
	Model        string          `json:"model"`
	Year         int             `json:"year"`
	Color        string          `json:"color"`
	SalePrice    decimal.Decimal `json:"sale_price"`
	Odometer     int             `json:"odometer"`
	FuelType     string          `json:"fuel_type"`
	Transmission string          `json:"transmission"`
	Doors        int             `json:"doors"`
	Plate        string          `json:"plate"`
	Chassis      string          `json:"chassis"`
	Notes        string          `json:"notes"`
	CreatedAt    time.Time       `json:"created_at"`
	Photo        *string         `json:"photo"` // base64 cover image, null when absent
	Badge        string          `json:"badge"`
	Highlighted  bool            `json:"highlighted"`
}

// PublicVehicleDetail adds the full photo set to the single-vehicle response.
type PublicVehicleDetail struct {
	PublicVehicle
	Photos []string `json:"photos"` // base64-encoded, oldest first
}

func toPublicVehicle(v catalog.Enriched, photo *string) PublicVehicle {
	return PublicVehicle{
		ID:           v.ID,
		Make:         v.Make,
		Model:        v.Model,
		Year:         v.Year,
		Color:        v.Color,
		SalePrice:    v.SalePrice,
		Odometer:     v.Odometer,
		FuelType:     v.FuelType,
		Transmission: v.Transmission,
		Doors:        v.Doors,
		Plate:        v.Plate,
		Chassis:      v.Chassis,
		Notes:        v.Notes,
		CreatedAt:    v.CreatedAt,
		Photo:        photo,
		Badge:        catalog.Badge(v.Odometer),
		Highlighted:  v.Highlighted,
	}
}

// loadStock returns the enriched in-stock list, served from the result
// cache when it is enabled and fresh.  The loader reads the vehicles
// and their summed expenses in two queries, then values each one.
func (h *PublicCatalogHandler) loadStock(ctx context.Context) ([]catalog.Enriched, error) {
	loader := func(ctx context.Context) ([]catalog.Enriched, error) {
		vehicles, err := h.Vehicles.ListInStock(ctx)
		if err != nil {
			return nil, err
		}
		totals, err := h.Expenses.TotalsByVehicle(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]catalog.Enriched, 0, len(vehicles))
		for _, v := range vehicles {
			var amounts []decimal.Decimal
			if total, ok := totals[v.ID]; ok {
				amounts = []decimal.Decimal{total}
			}
			out = append(out, catalog.EnrichWithTotal(*v, valuation.Compute(v.EntryCost, v.SalePrice, amounts)))
		}
		return out, nil
	}
	if !h.CacheCfg.Enabled || h.Cache == nil {
		return loader(ctx)
	}
	return h.Cache.GetOrRefresh(ctx, h.CacheCfg.Key, h.CacheCfg.TTL, loader)
}

// GetVehicles lists the in-stock vehicles for the vitrine.  Query
// parameters: make, max_price, fuel, transmission (conjunctive filter)
// and sort (most_recent|price_asc|price_desc|mileage_asc|year_desc).
// Aggregates always describe the full in-stock set, not the filtered
// subset.
func (h *PublicCatalogHandler) GetVehicles(c echo.Context) error {
	ctx := c.Request().Context()
	stock, err := h.loadStock(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	filter := parseFilterSpec(c.QueryParams())
	order := catalog.ParseSort(c.QueryParam("sort"))
	items, agg := catalog.Project(stock, filter, order)

	// Fetch covers only for the vehicles this response will carry.
	ids := make([]uint64, 0, len(items))
	for _, v := range items {
		ids = append(ids, v.ID)
	}
	covers, err := h.Photos.CoversByVehicle(ctx, ids)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	out := make([]PublicVehicle, 0, len(items))
	for _, v := range items {
		var photo *string
		if img, ok := covers[v.ID]; ok {
			enc := base64.StdEncoding.EncodeToString(img)
			photo = &enc
		}
		out = append(out, toPublicVehicle(v, photo))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out, "aggregates": agg})
}

// GetVehicle returns the detail of a single in-stock vehicle together
// with all of its photos.  Unknown ids and sold vehicles are both 404:
// the public catalog only ever sees the stock.
func (h *PublicCatalogHandler) GetVehicle(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	v, err := h.Vehicles.GetInStockByID(ctx, id)
	if err != nil {
		if err == repository.ErrVehicleNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "vehicle not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	expenses, err := h.Expenses.ListByVehicle(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	photos, err := h.Photos.ListByVehicle(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	enriched := catalog.Enrich(*v, deref(expenses))
	encoded := make([]string, 0, len(photos))
	for _, p := range photos {
		encoded = append(encoded, base64.StdEncoding.EncodeToString(p.Image))
	}
	var cover *string
	if len(encoded) > 0 {
		cover = &encoded[0]
	}
	return c.JSON(http.StatusOK, PublicVehicleDetail{
		PublicVehicle: toPublicVehicle(enriched, cover),
		Photos:        encoded,
	})
}

// GetFilters returns the distinct values available for the vitrine's
// filter controls, derived from the same cached in-stock list that the
// listing uses.  An empty stock yields empty lists and null bounds.
func (h *PublicCatalogHandler) GetFilters(c echo.Context) error {
	stock, err := h.loadStock(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, catalog.Options(stock))
}

type contactReq struct {
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Email     string  `json:"email"`
	Message   string  `json:"message"`
	VehicleID *uint64 `json:"vehicle_id"`
}

// PostContact records a lead from the vitrine contact form.  Name and
// phone are required; the vehicle reference is optional but must point
// at an existing vehicle when given.  The lead.created event is
// published best-effort: a broker outage never loses the lead.
func (h *PublicCatalogHandler) PostContact(c echo.Context) error {
	var req contactReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	if req.Phone == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "phone is required"})
	}

	ctx := c.Request().Context()
	if req.VehicleID != nil {
		if _, err := h.Vehicles.GetByID(ctx, *req.VehicleID); err != nil {
			if err == repository.ErrVehicleNotFound {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "vehicle not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
	}

	lead := &model.Lead{
		VehicleID: req.VehicleID,
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		Message:   req.Message,
	}
	if err := h.Leads.Create(ctx, lead); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create lead failed"})
	}

	_ = queue_publisher.PublishLeadCreated(ctx, queue.LeadCreatedEvent{
		LeadID:    lead.ID,
		VehicleID: lead.VehicleID,
		Name:      lead.Name,
		Phone:     lead.Phone,
		Email:     lead.Email,
		Message:   lead.Message,
		CreatedAt: lead.CreatedAt.UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, echo.Map{"id": lead.ID})
}

func deref(expenses []*model.Expense) []model.Expense {
	out := make([]model.Expense, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, *e)
	}
	return out
}
