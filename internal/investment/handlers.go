package investment

import (
	"errors"

	"moneta-backend/internal/market"
	"moneta-backend/internal/pkg/response"
	"moneta-backend/internal/portfolio"

	"github.com/gofiber/fiber/v2"
)

// Handlers bundles investment handlers. Prices backs the valuation endpoint;
// the portfolio core only ever sees it as a price lookup.
type Handlers struct {
	Service *Service
	Prices  market.PriceProvider
}

// ViewPortfolio GET /api/v1/portfolio/view-portfolio
func (h *Handlers) ViewPortfolio(c *fiber.Ctx) error {
	return response.Success(c, "Portfolio fetched successfully", h.Service.ViewPortfolio(), nil)
}

type tradeRequest struct {
	InstrumentID string  `json:"instrument_id"`
	Quantity     float64 `json:"quantity"`
	Price        float64 `json:"price"`
}

// Buy POST /api/v1/portfolio/buy
func (h *Handlers) Buy(c *fiber.Ctx) error {
	var req tradeRequest
	if err := c.BodyParser(&req); err != nil || req.InstrumentID == "" {
		return response.Error(c, "instrument_id, quantity and price are required", 400, nil)
	}

	holding, err := h.Service.Buy(c.Context(), req.InstrumentID, req.Quantity, req.Price)
	if err != nil {
		return tradeError(c, err)
	}
	return response.Success(c, "Buy executed successfully", fiber.Map{
		"instrument_id": req.InstrumentID,
		"holding":       holding,
	}, nil)
}

// Sell POST /api/v1/portfolio/sell
func (h *Handlers) Sell(c *fiber.Ctx) error {
	var req tradeRequest
	if err := c.BodyParser(&req); err != nil || req.InstrumentID == "" {
		return response.Error(c, "instrument_id, quantity and price are required", 400, nil)
	}

	realized, err := h.Service.Sell(c.Context(), req.InstrumentID, req.Quantity, req.Price)
	if err != nil {
		return tradeError(c, err)
	}
	return response.Success(c, "Sell executed successfully", fiber.Map{
		"instrument_id": req.InstrumentID,
		"realized_gain": realized,
	}, nil)
}

type openSavingsRequest struct {
	Product    string  `json:"product"`
	Amount     float64 `json:"amount"`
	AnnualRate float64 `json:"annual_rate"`
	TermMonths int     `json:"term_months"`
}

// OpenSavings POST /api/v1/portfolio/open-savings
func (h *Handlers) OpenSavings(c *fiber.Ctx) error {
	var req openSavingsRequest
	if err := c.BodyParser(&req); err != nil || req.Product == "" {
		return response.Error(c, "product, amount, annual_rate and term_months are required", 400, nil)
	}

	rec, err := h.Service.OpenSavings(c.Context(), req.Product, req.Amount, req.AnnualRate, req.TermMonths)
	if err != nil {
		return tradeError(c, err)
	}
	return response.SuccessCreated(c, "Savings product opened", rec, nil)
}

// SettleMatured POST /api/v1/portfolio/settle-matured
func (h *Handlers) SettleMatured(c *fiber.Ctx) error {
	matured, err := h.Service.SettleMatured(c.Context())
	if err != nil {
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	if matured == nil {
		matured = []portfolio.TransactionRecord{}
	}
	return response.Success(c, "Matured deposits settled", fiber.Map{
		"settled_count": len(matured),
		"settled":       matured,
	}, nil)
}

// Valuation GET /api/v1/portfolio/valuation
func (h *Handlers) Valuation(c *fiber.Ctx) error {
	lookup := func(instrumentID string) (float64, error) {
		q, err := h.Prices.GetPrice(c.Context(), instrumentID)
		if err != nil {
			return 0, err
		}
		return q.Price, nil
	}

	value, ret, err := h.Service.Valuation(lookup)
	if err != nil {
		if errors.Is(err, portfolio.ErrPriceUnavailable) {
			return response.Error(c, err.Error(), 502, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Valuation computed successfully", fiber.Map{
		"current_value":  value,
		"return_percent": ret * 100,
	}, nil)
}

// GetTransactions GET /api/v1/portfolio/get-transactions?limit=N
func (h *Handlers) GetTransactions(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	return response.Success(c, "Transactions fetched successfully", h.Service.RecentTransactions(limit), nil)
}

func tradeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, portfolio.ErrInsufficientFunds),
		errors.Is(err, portfolio.ErrInsufficientHoldings),
		errors.Is(err, portfolio.ErrInvalidQuantity),
		errors.Is(err, portfolio.ErrInvalidPrice),
		errors.Is(err, portfolio.ErrInvalidAmount),
		errors.Is(err, portfolio.ErrInvalidTerm):
		return response.Error(c, err.Error(), 400, nil)
	default:
		return response.Error(c, "Internal Server Error", 500, nil)
	}
}
