// Package ledger exposes the household ledger over HTTP. The entries live
// inside the portfolio aggregate, so the handlers delegate to the investment
// service, the aggregate's single writer.
package ledger

import (
	"moneta-backend/internal/investment"
	"moneta-backend/internal/pkg/response"
	"moneta-backend/internal/portfolio"

	"github.com/gofiber/fiber/v2"
)

// Handlers bundles household ledger handlers.
type Handlers struct {
	Service *investment.Service
}

// ViewLedger GET /api/v1/ledger/view-ledger
func (h *Handlers) ViewLedger(c *fiber.Ctx) error {
	return response.Success(c, "Ledger fetched successfully", h.Service.ViewLedger(), nil)
}

type addEntryRequest struct {
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Kind        string  `json:"kind"`
}

// AddEntry POST /api/v1/ledger/add-entry
func (h *Handlers) AddEntry(c *fiber.Ctx) error {
	var req addEntryRequest
	if err := c.BodyParser(&req); err != nil || req.Category == "" || req.Kind == "" {
		return response.Error(c, "category, amount and kind are required", 400, nil)
	}
	kind := portfolio.EntryKind(req.Kind)
	if !kind.Valid() {
		return response.Error(c, "kind must be income, expense or investment", 400, nil)
	}

	entry, err := h.Service.AddEntry(c.Context(), req.Category, req.Description, req.Amount, kind)
	if err != nil {
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.SuccessCreated(c, "Ledger entry added", entry, nil)
}

type updateEntryRequest struct {
	ID          int64    `json:"id"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	Amount      *float64 `json:"amount"`
	Kind        *string  `json:"kind"`
}

// UpdateEntry PATCH /api/v1/ledger/update-entry
//
// A missing id is a no-op rather than an error; the response reports
// updated=false so callers can tell the difference.
func (h *Handlers) UpdateEntry(c *fiber.Ctx) error {
	var req updateEntryRequest
	if err := c.BodyParser(&req); err != nil || req.ID == 0 {
		return response.Error(c, "id is required", 400, nil)
	}

	patch := portfolio.EntryPatch{
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
	}
	if req.Kind != nil {
		kind := portfolio.EntryKind(*req.Kind)
		if !kind.Valid() {
			return response.Error(c, "kind must be income, expense or investment", 400, nil)
		}
		patch.Kind = &kind
	}

	found, err := h.Service.UpdateEntry(c.Context(), req.ID, patch)
	if err != nil {
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Ledger entry updated", fiber.Map{"id": req.ID, "updated": found}, nil)
}

type deleteEntryRequest struct {
	ID int64 `json:"id"`
}

// DeleteEntry POST /api/v1/ledger/delete-entry
func (h *Handlers) DeleteEntry(c *fiber.Ctx) error {
	var req deleteEntryRequest
	if err := c.BodyParser(&req); err != nil || req.ID == 0 {
		return response.Error(c, "id is required", 400, nil)
	}

	removed, err := h.Service.DeleteEntry(c.Context(), req.ID)
	if err != nil {
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Ledger entry deleted", fiber.Map{"id": req.ID, "deleted": removed}, nil)
}
