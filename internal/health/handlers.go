package health

import (
	"context"

	"moneta-backend/internal/middleware"
	"moneta-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// Handlers bundles health handlers.
type Handlers struct {
	Rdb            *redis.Client
	DB             DBPinger
	HealthAdminKey string
}

// Dashboard GET /, the status summary at the root.
func (h *Handlers) Dashboard(c *fiber.Ctx) error {
	result := CollectHealth(c.Context(), h.Rdb, h.DB)
	return c.Status(fiber.StatusOK).JSON(result)
}

// JSON GET /health/json
func (h *Handlers) JSON(c *fiber.Ctx) error {
	result := CollectHealth(c.Context(), h.Rdb, h.DB)
	return c.Status(fiber.StatusOK).JSON(result)
}

// Reset GET /health/reset?key= clears the traffic counters.
func (h *Handlers) Reset(c *fiber.Ctx) error {
	if h.HealthAdminKey != "" && c.Query("key") != h.HealthAdminKey {
		return response.Error(c, "Forbidden", 403, nil)
	}
	if h.Rdb == nil {
		return response.Error(c, "Redis not configured", 500, nil)
	}

	ctx := context.Background()
	h.Rdb.Del(ctx,
		middleware.KeyReqTotal,
		middleware.KeyReqErrors,
		middleware.KeyResTime,
		middleware.KeyResCount,
		middleware.KeyStartTime,
		middleware.KeyLastReq,
	)
	return response.Success(c, "Health counters reset", nil, nil)
}
