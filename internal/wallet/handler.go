package wallet

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/fintech-wallet/wallet_service/internal/currency"
	"github.com/fintech-wallet/wallet_service/internal/users"
)

// Handler exposes wallet HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a wallet HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type createRequest struct {
	UserID         string `json:"userId"`
	CurrencyCode   string `json:"currencyCode"`
	InitialBalance int64  `json:"initialBalance"`
}

type updateBalanceRequest struct {
	Amount int64 `json:"amount"`
}

type walletResponse struct {
	ID           string `json:"id"`
	UserID       string `json:"userId"`
	Balance      int64  `json:"balance"`
	CurrencyCode string `json:"currencyCode"`
	CurrencyName string `json:"currencyName"`
	UserName     string `json:"userName,omitempty"`
}

// Create provisions a wallet for the given owner.
func (h *Handler) Create(c *fiber.Ctx) error {
	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	view, err := h.service.Create(c.UserContext(), CreateInput{
		UserID:         req.UserID,
		CurrencyCode:   req.CurrencyCode,
		InitialBalance: req.InitialBalance,
	})
	if err != nil {
		return mapError(err)
	}
	return c.Status(http.StatusCreated).JSON(toResponse(view))
}

// Details returns a wallet enriched with the owner's display name.
func (h *Handler) Details(c *fiber.Ctx) error {
	view, err := h.service.Details(c.UserContext(), c.Params("id"))
	if err != nil {
		return mapError(err)
	}
	return c.Status(http.StatusOK).JSON(toResponse(view))
}

// UpdateBalance applies a signed delta to the wallet balance.
func (h *Handler) UpdateBalance(c *fiber.Ctx) error {
	var req updateBalanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	view, err := h.service.UpdateBalance(c.UserContext(), c.Params("id"), req.Amount)
	if err != nil {
		return mapError(err)
	}
	return c.Status(http.StatusOK).JSON(toResponse(view))
}

// ExportFile writes a wallet snapshot file and returns its name.
func (h *Handler) ExportFile(c *fiber.Ctx) error {
	fileName, err := h.service.ExportFile(c.UserContext(), c.Params("id"))
	if err != nil {
		return mapError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"file": fileName})
}

// mapError translates domain sentinel errors into client-visible statuses:
// not-found kinds map to 404, the overdraft guard to 409, and a failed
// enrichment call to 502.
func mapError(err error) error {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, currency.ErrNotFound):
		return fiber.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInsufficientBalance):
		return fiber.NewError(http.StatusConflict, err.Error())
	case errors.Is(err, ErrNegativeInitialBalance), errors.Is(err, ErrUserIDRequired):
		return fiber.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, users.ErrLookupFailed):
		return fiber.NewError(http.StatusBadGateway, err.Error())
	default:
		return err
	}
}

func toResponse(v View) walletResponse {
	return walletResponse{
		ID:           v.ID,
		UserID:       v.UserID,
		Balance:      v.Balance,
		CurrencyCode: v.CurrencyCode,
		CurrencyName: v.CurrencyName,
		UserName:     v.UserName,
	}
}
