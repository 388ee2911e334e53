package currency

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes currency HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a currency HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type currencyRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type currencyResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Add registers a new currency.
func (h *Handler) Add(c *fiber.Ctx) error {
	var req currencyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	cur, err := h.service.Add(c.UserContext(), req.Code, req.Name)
	if err != nil {
		if errors.Is(err, ErrCodeExists) {
			return fiber.NewError(http.StatusConflict, err.Error())
		}
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	return c.Status(http.StatusCreated).JSON(currencyResponse{Code: cur.Code, Name: cur.Name})
}

// Get returns a single currency by code.
func (h *Handler) Get(c *fiber.Ctx) error {
	cur, err := h.service.Get(c.UserContext(), c.Params("code"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, err.Error())
		}
		return err
	}
	return c.Status(http.StatusOK).JSON(currencyResponse{Code: cur.Code, Name: cur.Name})
}

// List returns all registered currencies.
func (h *Handler) List(c *fiber.Ctx) error {
	currencies, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	out := make([]currencyResponse, 0, len(currencies))
	for _, cur := range currencies {
		out = append(out, currencyResponse{Code: cur.Code, Name: cur.Name})
	}
	return c.Status(http.StatusOK).JSON(out)
}
