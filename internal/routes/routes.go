package routes

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/fintech-wallet/wallet_service/internal/config"
	"github.com/fintech-wallet/wallet_service/internal/currency"
	"github.com/fintech-wallet/wallet_service/internal/middleware"
	"github.com/fintech-wallet/wallet_service/internal/users"
	"github.com/fintech-wallet/wallet_service/internal/wallet"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
	Users  users.Client
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	// Enforce DB/Redis presence outside of dev, even though main also checks.
	if !d.Cfg.IsDev() {
		if d.DB == nil {
			return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
		if d.Cache == nil {
			return fmt.Errorf("redis is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
	}
	if d.Users == nil {
		return fmt.Errorf("user lookup client is required")
	}

	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} -  ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))
	app.Use(middleware.Audit(d.Logger))
	if d.Cache != nil {
		app.Use(middleware.WriteRateLimit(d.Cache, 60))
		app.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}

	// Health
	RegisterHealthRoutes(app, d)

	// Repositories fall back to in-memory storage in development.
	var currencyRepo currency.Repository
	var walletRepo wallet.Repository
	if d.DB != nil {
		currencyRepo = currency.NewPostgresRepository(d.DB)
		walletRepo = wallet.NewPostgresRepository(d.DB)
	} else {
		currencyRepo = currency.NewMemoryRepository()
		walletRepo = wallet.NewMemoryRepository()
	}

	currencySvc := currency.NewService(currencyRepo)
	walletSvc := wallet.NewService(walletRepo, currencyRepo, d.Users, d.Cfg.ExportDir)

	currencyHandler := currency.NewHandler(currencySvc)
	walletHandler := wallet.NewHandler(walletSvc)

	// API routes
	api := app.Group("/api")
	api.Get("/ping", func(c *fiber.Ctx) error {
		reqID, _ := c.Locals("X-Request-ID").(string)
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": reqID,
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	RegisterCurrencyRoutes(api, currencyHandler)
	RegisterWalletRoutes(api, walletHandler)

	return nil
}
