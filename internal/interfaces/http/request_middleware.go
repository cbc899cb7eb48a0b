package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/customer-portal/pkg/logger"
)

// LocalRequestID id de la petición en Locals.
const LocalRequestID = "request_id"

// httpMetrics lo que el middleware necesita de las métricas.
// Lo implementa *metrics.Metrics.
type httpMetrics interface {
	ObserveHTTP(method, route string, status int, d time.Duration)
}

// RequestLogger asigna un X-Request-ID (uuid si el cliente no envía uno),
// registra cada petición y alimenta las métricas HTTP. m puede ser nil.
func RequestLogger(log *logger.Logger, m httpMetrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		rid := c.Get(fiber.HeaderXRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(fiber.HeaderXRequestID, rid)
		c.Locals(LocalRequestID, rid)

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}
		route := c.Route().Path
		latency := time.Since(start)
		if m != nil {
			m.ObserveHTTP(c.Method(), route, status, latency)
		}

		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error().Err(err)
		}
		ev.Str("request_id", rid).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("route", route).
			Int("status", status).
			Dur("latency", latency).
			Msg("http")
		return err
	}
}
