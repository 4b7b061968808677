package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/julioaguiar07/aplicacao-garagem-sub000/internal/handler"    // handlers implementing the endpoints
	"github.com/julioaguiar07/aplicacao-garagem-sub000/internal/middleware" // JWT authentication and role enforcement
	"github.com/julioaguiar07/aplicacao-garagem-sub000/internal/model"
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Load balancers and monitoring systems probe this endpoint to
	// verify that the service is up and running.
	e.GET("/health", handler.Health)
}

// RegisterAuth registers all authentication-related routes and applies
// the necessary middleware.  Unauthenticated operations live under
// /v1/auth, while protected endpoints live under /v1.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	// Session endpoints: obtaining, rotating and invalidating tokens.
	// There is no self-service registration; operator accounts are
	// created by an admin through the dashboard.
	g := e.Group("/v1/auth")
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	// Logout accepts a JSON body with the `refresh_token` and
	// invalidates it.  It does not require an access token, so a client
	// with an expired access token can still terminate its session.
	g.POST("/logout", a.Logout)

	// Everything below requires a valid access token.  Both roles may
	// read their own profile.
	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole(model.RoleAdmin, model.RoleUser))
	auth.GET("/me", a.Me)
}

// RegisterPublic registers the unauthenticated vitrine endpoints.  These
// routes return sanitized data only: no entry cost, margin or profit
// ever leaves through them.  The contact form additionally goes through
// the rate limiter so a single visitor cannot flood the lead inbox.
func RegisterPublic(e *echo.Echo, p *handler.PublicCatalogHandler, contactLimit echo.MiddlewareFunc) {
	// Browse the in-stock vehicles with filtering and sorting.
	e.GET("/v1/vehicles", p.GetVehicles)
	// Detail of a single in-stock vehicle with all of its photos.
	e.GET("/v1/vehicles/:id", p.GetVehicle)
	// Distinct filter values derived from the current stock.
	e.GET("/v1/filters", p.GetFilters)
	// Contact form; writes a lead and emits the lead.created event.
	e.POST("/v1/contact", p.PostContact, contactLimit)
}

// RegisterDashboard registers the authenticated operator endpoints.
// Both roles manage the stock; user administration is admin only.
func RegisterDashboard(e *echo.Echo, d *handler.DashboardHandler, jwtSecret string) {
	g := e.Group("/v1")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole(model.RoleAdmin, model.RoleUser))

	// Vehicle lifecycle: acquire, spend, photograph, sell.
	g.POST("/vehicles", d.CreateVehicle)
	g.GET("/stock", d.ListStock)
	g.POST("/vehicles/:id/expenses", d.AddExpense)
	g.GET("/vehicles/:id/expenses", d.ListExpenses)
	g.POST("/vehicles/:id/photos", d.AddPhoto)
	g.POST("/vehicles/:id/sale", d.RecordSale)

	// Ledgers.
	g.GET("/sales", d.ListSales)
	g.GET("/leads", d.ListLeads)

	// Account management is restricted to admins on top of the group
	// middleware above.
	admin := e.Group("/v1")
	admin.Use(middleware.JWTAuth(jwtSecret))
	admin.Use(middleware.RequireRole(model.RoleAdmin))
	admin.POST("/users", d.CreateUser)
}
