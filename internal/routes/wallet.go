package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fintech-wallet/wallet_service/internal/wallet"
)

// RegisterWalletRoutes wires wallet-related endpoints.
func RegisterWalletRoutes(r fiber.Router, h *wallet.Handler) {
	r.Post("/wallets", h.Create)
	r.Get("/wallets/:id", h.Details)
	r.Put("/wallets/:id/balance", h.UpdateBalance)
	r.Post("/wallets/:id/file", h.ExportFile)
}
