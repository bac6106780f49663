package app

import (
	"kasko-gateway/internal/auth"
	"kasko-gateway/internal/calculation"
	"kasko-gateway/internal/cars"
	"kasko-gateway/internal/config"
	"kasko-gateway/internal/database"
	"kasko-gateway/internal/elt"
	"kasko-gateway/internal/health"
	"kasko-gateway/internal/middleware"
	"kasko-gateway/internal/reso"
	"kasko-gateway/internal/soap"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type dbPinger struct{ db *gorm.DB }

func (p *dbPinger) Ping() error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// CreateApp builds the Fiber app with all global middleware and route
// registration. The returned DB and Redis client are owned by the caller.
func CreateApp(cfg *config.Config) (*fiber.App, *gorm.DB, *redis.Client, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler,
		BodyLimit:             20 * 1024 * 1024,
	})

	app.Use(middleware.CORS())

	sessionHandler, rdb, err := middleware.Session(middleware.SessionConfig{
		Secret:       cfg.SessionSecret,
		RedisURL:     cfg.RedisURL,
		IsProduction: cfg.Env == "production",
	})
	if err != nil {
		return nil, nil, nil, err
	}
	app.Use(sessionHandler)
	app.Use(middleware.HealthMarker(rdb))
	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	var db *gorm.DB
	if cfg.DatabaseURL != "" {
		db, err = database.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := database.AutoMigrate(db); err != nil {
			return nil, nil, nil, err
		}
	}

	// Health endpoints
	var pinger health.DBPinger
	if db != nil {
		pinger = &dbPinger{db: db}
	}
	healthHandlers := &health.Handlers{
		Rdb:     rdb,
		DB:      pinger,
		EltURL:  cfg.EltURL,
		ResoURL: cfg.ResoURL,
	}
	app.Get("/health", healthHandlers.Live)
	app.Get("/health/json", healthHandlers.JSON)
	app.Get("/health/reset", healthHandlers.Reset)

	// SOAP providers
	eltSoap := &soap.Client{
		URL:      cfg.EltURL,
		Username: cfg.EltUsername,
		Password: cfg.EltPassword,
		Timeout:  cfg.SoapTimeout,
	}
	resoSoap := &soap.Client{
		URL:      cfg.ResoURL,
		Username: cfg.ResoUsername,
		Password: cfg.ResoPassword,
		Timeout:  cfg.SoapTimeout,
	}
	eltClient := &elt.Client{Soap: eltSoap, Login: cfg.EltUsername, Password: cfg.EltPassword}
	resoClient := &reso.Client{Soap: resoSoap}

	// Auth (no auth middleware)
	sessionCfg := middleware.SessionConfig{
		Secret:       cfg.SessionSecret,
		RedisURL:     cfg.RedisURL,
		IsProduction: cfg.Env == "production",
	}
	var userFinder auth.UserFinder
	if db != nil {
		userFinder = &auth.GormUserFinder{DB: db}
	}
	authHandlers := &auth.Handlers{UserFinder: userFinder, Rdb: rdb, Config: sessionCfg}
	authGroup := app.Group("/api/v1/auth")
	authGroup.Post("/login", authHandlers.Login)
	authGroup.Get("/me", authHandlers.Me)
	authGroup.Delete("/logout", authHandlers.Logout)

	// ELT reference data + single-company calculations
	eltHandlers := &elt.Handlers{Client: eltClient}
	eltGroup := app.Group("/api/v1/elt")
	eltGroup.Get("/casco-get-marks", eltHandlers.GetMarks)
	eltGroup.Get("/casco-get-mark", eltHandlers.GetModels)
	eltGroup.Get("/casco-get-modification-ts", eltHandlers.GetModifications)
	eltGroup.Get("/casco-get-banks", eltHandlers.GetBanks)
	eltGroup.Get("/casco-get-do", eltHandlers.GetDO)
	eltGroup.Get("/casco-get-opf", eltHandlers.GetOPF)
	eltGroup.Get("/casco-get-list-sk", eltHandlers.GetCompanies)
	eltGroup.Get("/casco-get-options-characteristic", eltHandlers.GetCompanyOptions)
	eltGroup.Get("/casco-get-products-sk", eltHandlers.GetProducts)
	eltGroup.Get("/casco-get-programs-sk", eltHandlers.GetPrograms)
	eltGroup.Get("/casco-get-puu-marks", eltHandlers.GetPuuMarks)
	eltGroup.Get("/casco-get-puu-models", eltHandlers.GetPuuModels)
	eltGroup.Get("/casco-get-ref-info", eltHandlers.GetRefInfo)
	eltGroup.Get("/casco-get-kladr-regions", eltHandlers.GetKladrRegions)
	eltGroup.Get("/casco-get-kladr-countries", eltHandlers.GetCountries)
	eltGroup.Get("/casco-get-stoa", eltHandlers.GetSTOA)
	eltGroup.Get("/casco-get-go-limit", eltHandlers.GetGOLimit)
	eltGroup.Get("/casco-get-print-forms", eltHandlers.GetPrintForms)
	eltGroup.Post("/casco-calculation", eltHandlers.Calculation)
	eltGroup.Post("/finish-casco-calculation", eltHandlers.FinishCalculation)

	if db != nil {
		// Multi-company calculation workflow
		store := &calculation.Store{DB: db}
		calcService := &calculation.Service{
			Calc:      eltClient,
			Guarantee: resoClient,
			Store:     store,
		}
		calcHandlers := &calculation.Handlers{Service: calcService}
		eltGroup.Post("/kasko-calculation", calcHandlers.Calculate)
		eltGroup.Get("/insurance-accepted", calcHandlers.AcceptedQuotes)
		eltGroup.Get("/insurance", calcHandlers.RunQuotes)

		// Vehicle reference table
		carsService := &cars.Service{DB: db}
		carsHandlers := &cars.Handlers{Service: carsService}
		carsGroup := app.Group("/api/v1/cars")
		carsGroup.Get("/", carsHandlers.List)
		carsGroup.Post("/import", middleware.RequireAuth(), carsHandlers.Import)
	}

	return app, db, rdb, nil
}
