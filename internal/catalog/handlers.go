package catalog

import (
	"errors"

	"moneta-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Handlers bundles catalog handlers.
type Handlers struct {
	Service *Service
}

// ListInstruments GET /api/v1/catalog/list-instruments?category=
func (h *Handlers) ListInstruments(c *fiber.Ctx) error {
	instruments, err := h.Service.ListInstruments(c.Context(), c.Query("category"))
	if err != nil {
		if errors.Is(err, ErrUnknownCategory) {
			return response.Error(c, err.Error(), 400, fiber.Map{"valid_categories": Categories})
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Instruments fetched successfully", instruments, nil)
}

// ViewInstrument GET /api/v1/catalog/view-instrument/:symbol
func (h *Handlers) ViewInstrument(c *fiber.Ctx) error {
	symbol := c.Params("symbol")
	if symbol == "" {
		return response.Error(c, "symbol is required", 400, nil)
	}

	inst, err := h.Service.GetInstrument(c.Context(), symbol)
	if err != nil {
		if errors.Is(err, ErrInstrumentNotFound) {
			return response.Error(c, err.Error(), 404, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Instrument fetched successfully", inst, nil)
}
