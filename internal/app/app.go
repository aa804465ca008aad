// Package app assembles the Fiber application: global middleware, module
// services and route registration.
package app

import (
	"context"

	"moneta-backend/internal/catalog"
	"moneta-backend/internal/config"
	"moneta-backend/internal/database"
	"moneta-backend/internal/health"
	"moneta-backend/internal/investment"
	"moneta-backend/internal/ledger"
	"moneta-backend/internal/market"
	"moneta-backend/internal/middleware"
	"moneta-backend/internal/news"
	"moneta-backend/internal/portfolio/store"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CreateApp builds the Fiber app with all global middleware and route
// registration. The returned DB and Redis client let main run startup pings.
func CreateApp(cfg *config.Config) (*fiber.App, *gorm.DB, *redis.Client, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler,
	})

	app.Use(middleware.CORS(middleware.CORSConfig{
		AllowedSuffix: cfg.FrontendURLEndsWith,
		DevPassword:   cfg.DevPassword,
		DevMode:       cfg.Env == "development",
	}))

	// Redis backs the portfolio store and the health traffic counters.
	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, nil, err
		}
		rdb = redis.NewClient(opt)
		app.Use(middleware.TrafficMarker(rdb))
	}

	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	// Instrument catalog (local sqlite reference data).
	var db *gorm.DB
	var dbPinger health.DBPinger
	if cfg.CatalogDBPath != "" {
		var err error
		db, err = database.Open(cfg.CatalogDBPath)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := database.AutoMigrate(db); err != nil {
			return nil, nil, nil, err
		}
		if err := catalog.Seed(db); err != nil {
			return nil, nil, nil, err
		}
		if sqlDB, err := db.DB(); err == nil {
			dbPinger = sqlDB
		}
	}

	// Health module (GET /, /health/json, /health/reset)
	healthHandlers := &health.Handlers{
		Rdb:            rdb,
		DB:             dbPinger,
		HealthAdminKey: cfg.HealthAdminKey,
	}
	app.Get("/", healthHandlers.Dashboard)
	app.Get("/health/json", healthHandlers.JSON)
	app.Get("/health/reset", healthHandlers.Reset)

	// Market module
	priceProvider := market.NewChartProvider(cfg.MarketAPIBase)
	marketHandlers := &market.Handlers{Provider: priceProvider}
	marketGroup := app.Group("/api/v1/market")
	marketGroup.Get("/get-quote/:symbol", marketHandlers.GetQuote)

	// Catalog module
	if db != nil {
		catalogService := &catalog.Service{DB: db}
		catalogHandlers := &catalog.Handlers{Service: catalogService}
		catalogGroup := app.Group("/api/v1/catalog")
		catalogGroup.Get("/list-instruments", catalogHandlers.ListInstruments)
		catalogGroup.Get("/view-instrument/:symbol", catalogHandlers.ViewInstrument)
	}

	// Portfolio + household ledger modules (need the Redis-backed store).
	if rdb != nil {
		investService, err := investment.NewService(context.Background(), store.New(rdb), cfg.StartingCash)
		if err != nil {
			return nil, nil, nil, err
		}
		investHandlers := &investment.Handlers{Service: investService, Prices: priceProvider}
		portfolioGroup := app.Group("/api/v1/portfolio")
		portfolioGroup.Get("/view-portfolio", investHandlers.ViewPortfolio)
		portfolioGroup.Post("/buy", investHandlers.Buy)
		portfolioGroup.Post("/sell", investHandlers.Sell)
		portfolioGroup.Post("/open-savings", investHandlers.OpenSavings)
		portfolioGroup.Post("/settle-matured", investHandlers.SettleMatured)
		portfolioGroup.Get("/valuation", investHandlers.Valuation)
		portfolioGroup.Get("/get-transactions", investHandlers.GetTransactions)

		ledgerHandlers := &ledger.Handlers{Service: investService}
		ledgerGroup := app.Group("/api/v1/ledger")
		ledgerGroup.Get("/view-ledger", ledgerHandlers.ViewLedger)
		ledgerGroup.Post("/add-entry", ledgerHandlers.AddEntry)
		ledgerGroup.Patch("/update-entry", ledgerHandlers.UpdateEntry)
		ledgerGroup.Post("/delete-entry", ledgerHandlers.DeleteEntry)
	}

	// News module
	newsService := news.NewService(news.NewHTTPProvider(cfg.NewsAPIBase))
	newsHandlers := &news.Handlers{Service: newsService}
	newsGroup := app.Group("/api/v1/news")
	newsGroup.Get("/get-headlines", newsHandlers.GetHeadlines)
	newsGroup.Get("/term-of-the-day", newsHandlers.TermOfTheDay)
	newsGroup.Get("/get-newsletter", newsHandlers.GetNewsletter)

	return app, db, rdb, nil
}
