package middleware

import (
	"moneta-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// ErrorHandler is the app-level Fiber error handler: anything a handler did
// not translate itself comes out in the standard error envelope. Internal
// error text is logged, not leaked.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}
	if code >= 500 {
		log.Error().Err(err).Str("trace_id", GetTraceID(c)).Str("path", c.Path()).Msg("Unhandled error")
	}

	return response.Error(c, message, code, nil)
}
