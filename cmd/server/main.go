package main // Entry point package

import (
	"context" // Context for startup deadlines
	"log"     // Logging library

	"github.com/joho/godotenv" // Loads .env files into the environment
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/shopspring/decimal"

	"github.com/julioaguiar07/aplicacao-garagem-sub000/internal/cache"
	"github.com/julioaguiar07/aplicacao-garagem-sub000/internal/config"
	"github.com/julioaguiar07/aplicacao-garagem-sub000/internal/database"
	"github.com/julioaguiar07/aplicacao-garagem-sub000/internal/handler"
	appmw "github.com/julioaguiar07/aplicacao-garagem-sub000/internal/middleware"
	"github.com/julioaguiar07/aplicacao-garagem-sub000/internal/queue"
	"github.com/julioaguiar07/aplicacao-garagem-sub000/internal/repository"
	"github.com/julioaguiar07/aplicacao-garagem-sub000/internal/router"
)

func main() {
	_ = godotenv.Load() // Optional .env; real env vars win

	cfg := config.Load()                // Load environment config
	cacheCfg := config.LoadCacheConfig()
	rlCfg := config.LoadRateLimitConfig()

	// Money fields marshal as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName) // Open the MySQL pool
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()
	if err := database.Migrate(context.Background(), db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb := config.NewRedisClient() // nil when Redis is unreachable

	vehicles := repository.NewVehicleRepo(db)
	expenses := repository.NewExpenseRepo(db)
	photos := repository.NewPhotoRepo(db)
	sales := repository.NewSaleRepo(db)
	leads := repository.NewLeadRepo(db)
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)

	pub := &handler.PublicCatalogHandler{
		Vehicles: vehicles,
		Expenses: expenses,
		Photos:   photos,
		Leads:    leads,
		Cache:    cache.New(rdb),
		CacheCfg: cacheCfg,
	}
	dash := &handler.DashboardHandler{
		Cfg:      cfg,
		Vehicles: vehicles,
		Expenses: expenses,
		Photos:   photos,
		Sales:    sales,
		Leads:    leads,
		Users:    users,
	}
	auth := handler.NewAuthHandler(cfg, users, tokens)

	// Background worker mirroring leads into the intake log.
	go queue.StartLeadConsumer()

	e := echo.New()
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())

	router.RegisterRoutes(e)
	router.RegisterAuth(e, auth, cfg.JWTSecret)
	router.RegisterPublic(e, pub, appmw.ContactRateLimit(rlCfg, rdb))
	router.RegisterDashboard(e, dash, cfg.JWTSecret)

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
