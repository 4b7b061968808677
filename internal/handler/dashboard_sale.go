// Sale and lead endpoints of the operator dashboard.
package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/julioaguiar07/aplicacao-garagem-sub000/internal/model"
	"github.com/julioaguiar07/aplicacao-garagem-sub000/internal/queue"
	"github.com/julioaguiar07/aplicacao-garagem-sub000/internal/repository"
	queue_publisher "github.com/julioaguiar07/aplicacao-garagem-sub000/internal/service"
)

type recordSaleReq struct {
	BuyerName   string          `json:"buyer_name"`
	Amount      decimal.Decimal `json:"amount"`
	SoldAt      string          `json:"sold_at"` // YYYY-MM-DD, defaults to today
	ContractRef *string         `json:"contract_ref"`
}

// RecordSale sells a vehicle: the sale row and the IN_STOCK→SOLD status
// flip commit in one transaction.  Selling an already sold vehicle is a
// conflict, never a silent overwrite.
func (h *DashboardHandler) RecordSale(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req recordSaleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.BuyerName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "buyer_name is required"})
	}
	if req.Amount.IsZero() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "amount is required"})
	}

	soldAt := time.Now().UTC()
	if req.SoldAt != "" {
		soldAt, err = time.Parse("2006-01-02", req.SoldAt)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid sold_at, want YYYY-MM-DD"})
		}
	}

	ctx := c.Request().Context()
	sale := &model.Sale{
		VehicleID:   id,
		BuyerName:   req.BuyerName,
		Amount:      req.Amount,
		SoldAt:      soldAt,
		ContractRef: req.ContractRef,
	}
	if err := h.Sales.Record(ctx, sale); err != nil {
		switch err {
		case repository.ErrVehicleNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "vehicle not found"})
		case repository.ErrVehicleSold:
			return c.JSON(http.StatusConflict, echo.Map{"error": "vehicle already sold"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "record sale failed"})
		}
	}

	// Best effort: the sale is committed regardless of broker health.
	event := queue.SaleRecordedEvent{
		SaleID:    sale.ID,
		VehicleID: sale.VehicleID,
		BuyerName: sale.BuyerName,
		Amount:    sale.Amount.String(),
		SoldAt:    sale.SoldAt.UTC().Format(time.RFC3339),
	}
	if v, err := h.Vehicles.GetByID(ctx, sale.VehicleID); err == nil {
		event.Make = v.Make
		event.Model = v.Model
	}
	_ = queue_publisher.PublishSaleRecorded(ctx, event)

	return c.JSON(http.StatusCreated, echo.Map{"id": sale.ID, "vehicle_id": sale.VehicleID})
}

// ListSales returns every sale joined with the sold vehicle, newest first.
func (h *DashboardHandler) ListSales(c echo.Context) error {
	sales, err := h.Sales.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": sales})
}

// ListLeads returns the contact-request inbox, newest first.
func (h *DashboardHandler) ListLeads(c echo.Context) error {
	leads, err := h.Leads.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	type leadRow struct {
		ID        uint64    `json:"id"`
		VehicleID *uint64   `json:"vehicle_id"`
		Name      string    `json:"name"`
		Phone     string    `json:"phone"`
		Email     string    `json:"email"`
		Message   string    `json:"message"`
		CreatedAt time.Time `json:"created_at"`
	}
	items := make([]leadRow, 0, len(leads))
	for _, l := range leads {
		items = append(items, leadRow{
			ID:        l.ID,
			VehicleID: l.VehicleID,
			Name:      l.Name,
			Phone:     l.Phone,
			Email:     l.Email,
			Message:   l.Message,
			CreatedAt: l.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
