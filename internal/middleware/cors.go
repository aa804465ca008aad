package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CORSConfig controls which browser origins may call the API.
type CORSConfig struct {
	// AllowedSuffix admits any origin ending with this suffix, e.g. the
	// deployed frontend domain. Empty means no suffix rule.
	AllowedSuffix string
	// DevPassword admits any origin carrying this value in a dev-password
	// header, for previews that are not on the allowed domain.
	DevPassword string
	// DevMode additionally admits localhost origins.
	DevMode bool
}

// CORS returns the origin-checking middleware. Requests without an Origin
// header (same-origin, curl, server-to-server) pass through untouched.
func CORS(cfg CORSConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		origin := c.Get("Origin")
		if origin == "" {
			return c.Next()
		}

		if !cfg.allows(origin, c.Get("dev-password")) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"status": "error",
				"error": fiber.Map{
					"message":    "Not allowed by CORS",
					"statusCode": fiber.StatusForbidden,
					"details":    fiber.Map{},
				},
			})
		}

		c.Set("Access-Control-Allow-Origin", origin)
		c.Set("Access-Control-Allow-Credentials", "true")
		c.Set("Access-Control-Allow-Methods", "GET, POST, PATCH, OPTIONS")
		c.Set("Access-Control-Allow-Headers", "Content-Type, dev-password, X-Trace-Id")

		if c.Method() == fiber.MethodOptions {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.Next()
	}
}

func (cfg CORSConfig) allows(origin, devPassword string) bool {
	if cfg.DevMode && isLocalhost(origin) {
		return true
	}
	if cfg.AllowedSuffix != "" && strings.HasSuffix(strings.ToLower(origin), strings.ToLower(cfg.AllowedSuffix)) {
		return true
	}
	if cfg.DevPassword != "" && devPassword == cfg.DevPassword {
		return true
	}
	return false
}

func isLocalhost(origin string) bool {
	return strings.HasPrefix(origin, "http://localhost:") ||
		strings.HasPrefix(origin, "http://127.0.0.1:")
}
