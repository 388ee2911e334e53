package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fintech-wallet/wallet_service/internal/currency"
)

// RegisterCurrencyRoutes wires currency reference-table endpoints.
func RegisterCurrencyRoutes(r fiber.Router, h *currency.Handler) {
	r.Post("/currencies", h.Add)
	r.Get("/currencies", h.List)
	r.Get("/currencies/:code", h.Get)
}
