package router

import (
	cmpsvc "truckdeals-backend/internal/application/compare"
	emailsvc "truckdeals-backend/internal/application/emails"
	ingsvc "truckdeals-backend/internal/application/ingest"
	listsvc "truckdeals-backend/internal/application/listings"
	"truckdeals-backend/internal/config"
	"truckdeals-backend/internal/infrastructure/database"
	cmphandler "truckdeals-backend/internal/interfaces/handlers/compare"
	emailhandler "truckdeals-backend/internal/interfaces/handlers/emails"
	healthhandler "truckdeals-backend/internal/interfaces/handlers/health"
	inghandler "truckdeals-backend/internal/interfaces/handlers/ingest"
	listhandler "truckdeals-backend/internal/interfaces/handlers/listings"
	"truckdeals-backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type gormDBPinger struct {
	db *gorm.DB
}

func (g *gormDBPinger) Ping() error {
	if g == nil || g.db == nil {
		return nil
	}
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// CreateApp wires the Fiber app: middleware, health endpoints, and the
// listing/compare/ingest/email routes. DB and Redis are both optional; the
// API routes require the DB and are only mounted when it connects.
func CreateApp(cfg *config.Config) (*fiber.App, *gorm.DB, *redis.Client, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage:   true,
		ErrorHandler:            middleware.ErrorHandler,
		EnableTrustedProxyCheck: true,
	})

	app.Use(middleware.CORS(middleware.CORSConfig{
		AllowedSuffix: cfg.FrontendURLEndsWith,
		DevPassword:   cfg.DevPassword,
	}))

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, nil, err
		}
		rdb = redis.NewClient(opts)
	}
	app.Use(middleware.HealthMarker(rdb))
	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	hh := &healthhandler.Handlers{
		Rdb:            rdb,
		HealthAdminKey: cfg.HealthAdminKey,
	}
	app.Get("/", hh.Dashboard)
	app.Get("/reset", hh.Reset)
	app.Get("/health/json", hh.JSON)
	app.Get("/health/errors", hh.Errors)

	var db *gorm.DB
	if cfg.DatabaseURL != "" {
		var errDB error
		db, errDB = database.Open(cfg.DatabaseURL)
		if errDB != nil {
			return nil, nil, nil, errDB
		}
		hh.DB = &gormDBPinger{db: db}
	}

	if db != nil {
		RegisterRoutes(app, db, cfg)
	}

	return app, db, rdb, nil
}

// RegisterRoutes mounts the API routes on app. Split out so tests can mount
// them on an in-memory store without the full CreateApp bootstrap.
func RegisterRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	ls := &listsvc.Service{DB: db, Tracked: cfg.TrackedVehicles}
	lh := &listhandler.Handlers{Service: ls}
	lg := app.Group("/api/v1/listings")
	lg.Get("/get-listings", lh.GetListings)
	lg.Get("/get-stats", lh.GetStats)
	lg.Get("/get-price-drops", lh.GetPriceDrops)
	lg.Get("/filter-options", lh.FilterOptions)
	lg.Get("/get-listing/:listing_id", lh.GetListingByID)

	cs := &cmpsvc.Service{DB: db}
	ch := &cmphandler.Handlers{Service: cs}
	lg.Get("/compare", ch.Compare)

	is := &ingsvc.Service{DB: db}
	ih := &inghandler.Handlers{Service: is}
	lg.Post("/ingest", ih.Ingest)

	drafter := &emailsvc.Drafter{BuyerName: cfg.BuyerName, BuyerPhone: cfg.BuyerPhone}
	eh := &emailhandler.Handlers{Drafter: drafter, Listings: ls}
	app.Post("/api/v1/emails/draft", eh.Draft)
}
