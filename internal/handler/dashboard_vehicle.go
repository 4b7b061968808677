// This file defines the operator dashboard handlers for the vehicle
// stock: creating vehicles, attaching expenses and photos, and the full
// stock view including the financial figures the public API hides.
package handler

import (
	"encoding/base64"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/julioaguiar07/aplicacao-garagem-sub000/internal/catalog"
	"github.com/julioaguiar07/aplicacao-garagem-sub000/internal/config"
	"github.com/julioaguiar07/aplicacao-garagem-sub000/internal/model"
	"github.com/julioaguiar07/aplicacao-garagem-sub000/internal/repository"
	"github.com/julioaguiar07/aplicacao-garagem-sub000/internal/valuation"
)

// DashboardHandler aggregates the repositories used by the
// authenticated dashboard endpoints.
type DashboardHandler struct {
	Cfg      config.Config
	Vehicles *repository.VehicleRepo
	Expenses *repository.ExpenseRepo
	Photos   *repository.PhotoRepo
	Sales    *repository.SaleRepo
	Leads    *repository.LeadRepo
	Users    *repository.UserRepo
}

// StockVehicle is a vehicle as the dashboard sees it: everything the
// public response carries plus the financial figures.
type StockVehicle struct {
	ID           uint64          `json:"id"`
	Make         string          `json:"make"`
	Model        string          `json:"model"`
	Year         int             `json:"year"`
	Color        string          `json:"color"`
	Plate        string          `json:"plate"`
	Chassis      string          `json:"chassis"`
	FuelType     string          `json:"fuel_type"`
	Transmission string          `json:"transmission"`
	Doors        int             `json:"doors"`
	Notes        string          `json:"notes"`
	Odometer     int             `json:"odometer"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	EntryCost    decimal.Decimal `json:"entry_cost"`
	SalePrice    decimal.Decimal `json:"sale_price"`
	TotalCost    decimal.Decimal `json:"total_cost"`
	Profit       decimal.Decimal `json:"profit"`
	MarginPct    decimal.Decimal `json:"margin_pct"`
	Highlighted  bool            `json:"highlighted"`
}

func toStockVehicle(e catalog.Enriched) StockVehicle {
	return StockVehicle{
		ID:           e.ID,
		Make:         e.Make,
		Model:        e.Model,
		Year:         e.Year,
		Color:        e.Color,
		Plate:        e.Plate,
		Chassis:      e.Chassis,
		FuelType:     e.FuelType,
		Transmission: e.Transmission,
		Doors:        e.Doors,
		Notes:        e.Notes,
		Odometer:     e.Odometer,
		Status:       e.Status,
		CreatedAt:    e.CreatedAt,
		EntryCost:    e.EntryCost,
		SalePrice:    e.SalePrice,
		TotalCost:    e.TotalCost,
		Profit:       e.Profit,
		MarginPct:    e.MarginPct,
		Highlighted:  e.Highlighted,
	}
}

type createVehicleReq struct {
	Make         string          `json:"make"`
	Model        string          `json:"model"`
	Year         int             `json:"year"`
	Color        string          `json:"color"`
	Plate        string          `json:"plate"`
	Chassis      string          `json:"chassis"`
	FuelType     string          `json:"fuel_type"`
	Transmission string          `json:"transmission"`
	Doors        int             `json:"doors"`
	Notes        string          `json:"notes"`
	EntryCost    decimal.Decimal `json:"entry_cost"`
	SalePrice    decimal.Decimal `json:"sale_price"`
	Odometer     int             `json:"odometer"`
}

// CreateVehicle registers a newly acquired vehicle.  The row starts as
// IN_STOCK and immediately shows up on the vitrine once the catalog
// cache rolls over.
func (h *DashboardHandler) CreateVehicle(c echo.Context) error {
	var req createVehicleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Make == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "make is required"})
	}
	if req.Model == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "model is required"})
	}
	if req.Year == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "year is required"})
	}

	v := &model.Vehicle{
		Make:         req.Make,
		Model:        req.Model,
		Year:         req.Year,
		Color:        req.Color,
		Plate:        req.Plate,
		Chassis:      req.Chassis,
		FuelType:     req.FuelType,
		Transmission: req.Transmission,
		Doors:        req.Doors,
		Notes:        req.Notes,
		EntryCost:    req.EntryCost,
		SalePrice:    req.SalePrice,
		Odometer:     req.Odometer,
	}
	if err := h.Vehicles.Create(c.Request().Context(), v); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create vehicle failed"})
	}
	// A new vehicle has no expenses yet, so the valuation is direct.
	return c.JSON(http.StatusCreated, toStockVehicle(catalog.EnrichWithTotal(*v, valuation.Compute(v.EntryCost, v.SalePrice, nil))))
}

// ListStock returns every vehicle (in stock and sold) with its
// financial figures, recomputed from the authoritative tables on each
// call — the dashboard never reads a stored margin.
func (h *DashboardHandler) ListStock(c echo.Context) error {
	ctx := c.Request().Context()
	vehicles, err := h.Vehicles.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	totals, err := h.Expenses.TotalsByVehicle(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	out := make([]StockVehicle, 0, len(vehicles))
	for _, v := range vehicles {
		var amounts []decimal.Decimal
		if total, ok := totals[v.ID]; ok {
			amounts = []decimal.Decimal{total}
		}
		out = append(out, toStockVehicle(catalog.EnrichWithTotal(*v, valuation.Compute(v.EntryCost, v.SalePrice, amounts))))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

type addExpenseReq struct {
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	SpentAt     string          `json:"spent_at"` // YYYY-MM-DD, defaults to today
}

// AddExpense attaches a cost to a vehicle.  Expenses are immutable:
// once recorded there is no edit or delete path, matching how the
// figures feed the valuation history.
func (h *DashboardHandler) AddExpense(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req addExpenseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Amount.IsZero() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "amount is required"})
	}

	spentAt := time.Now().UTC()
	if req.SpentAt != "" {
		spentAt, err = time.Parse("2006-01-02", req.SpentAt)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid spent_at, want YYYY-MM-DD"})
		}
	}

	ctx := c.Request().Context()
	if _, err := h.Vehicles.GetByID(ctx, id); err != nil {
		if err == repository.ErrVehicleNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "vehicle not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	e := &model.Expense{
		VehicleID:   id,
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		SpentAt:     spentAt,
	}
	if err := h.Expenses.Create(ctx, e); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create expense failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": e.ID})
}

// ListExpenses returns the expenses of one vehicle with the resulting
// valuation, so the operator sees where the total cost comes from.
func (h *DashboardHandler) ListExpenses(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()
	v, err := h.Vehicles.GetByID(ctx, id)
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

	type expenseRow struct {
		ID          uint64          `json:"id"`
		Amount      decimal.Decimal `json:"amount"`
		Category    string          `json:"category"`
		Description string          `json:"description"`
		SpentAt     string          `json:"spent_at"`
		CreatedAt   time.Time       `json:"created_at"`
	}
	items := make([]expenseRow, 0, len(expenses))
	for _, e := range expenses {
		items = append(items, expenseRow{
			ID:          e.ID,
			Amount:      e.Amount,
			Category:    e.Category,
			Description: e.Description,
			SpentAt:     e.SpentAt.Format("2006-01-02"),
			CreatedAt:   e.CreatedAt,
		})
	}
	enriched := catalog.Enrich(*v, deref(expenses))
	return c.JSON(http.StatusOK, echo.Map{"items": items, "valuation": enriched.Metrics})
}

type addPhotoReq struct {
	Image string `json:"image"` // base64-encoded binary
}

// AddPhoto attaches a photo to a vehicle.  The body carries the image
// base64-encoded; it is stored as raw bytes.
func (h *DashboardHandler) AddPhoto(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req addPhotoReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Image == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "image is required"})
	}
	raw, err := base64.StdEncoding.DecodeString(req.Image)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "image must be base64"})
	}

	ctx := c.Request().Context()
	if _, err := h.Vehicles.GetByID(ctx, id); err != nil {
		if err == repository.ErrVehicleNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "vehicle not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	p := &model.Photo{VehicleID: id, Image: raw}
	if err := h.Photos.Create(ctx, p); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save photo failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": p.ID})
}
