package market

import (
	"errors"

	"moneta-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Handlers bundles market data handlers.
type Handlers struct {
	Provider PriceProvider
}

// GetQuote GET /api/v1/market/get-quote/:symbol
func (h *Handlers) GetQuote(c *fiber.Ctx) error {
	symbol := c.Params("symbol")
	if symbol == "" {
		return response.Error(c, "symbol is required", 400, nil)
	}

	q, err := h.Provider.GetPrice(c.Context(), symbol)
	if err != nil {
		if errors.Is(err, ErrPriceUnavailable) {
			return response.Error(c, "Price unavailable for "+symbol, 502, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Quote fetched successfully", q, nil)
}
