package news

import (
	"errors"

	"moneta-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Handlers bundles news handlers.
type Handlers struct {
	Service *Service
}

// GetHeadlines GET /api/v1/news/get-headlines
func (h *Handlers) GetHeadlines(c *fiber.Ctx) error {
	articles, err := h.Service.Headlines(c.Context())
	if err != nil {
		if errors.Is(err, ErrNewsUnavailable) {
			return response.Error(c, "News unavailable", 502, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Headlines fetched successfully", articles, nil)
}

// TermOfTheDay GET /api/v1/news/term-of-the-day
func (h *Handlers) TermOfTheDay(c *fiber.Ctx) error {
	return response.Success(c, "Term fetched successfully", TermOfTheDay(h.Service.Now()), nil)
}

// GetNewsletter GET /api/v1/news/get-newsletter
func (h *Handlers) GetNewsletter(c *fiber.Ctx) error {
	nl, err := h.Service.ComposeNewsletter(c.Context())
	if err != nil {
		if errors.Is(err, ErrNewsUnavailable) {
			return response.Error(c, "News unavailable", 502, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Newsletter composed successfully", nl, nil)
}
