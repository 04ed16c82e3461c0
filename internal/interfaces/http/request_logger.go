package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gadi-app/gadi-api/pkg/logger"
)

// RequestLogger registra cada petición con su request id, estado y duración.
// Debe ir después del middleware de request id.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Info().
			Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("request")
		return err
	}
}
