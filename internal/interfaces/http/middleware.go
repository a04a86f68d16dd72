package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/JakesDourado/Cadastro-FNR/internal/infrastructure/metrics"
	"github.com/JakesDourado/Cadastro-FNR/pkg/logger"
)

// RequestLogger registra cada petición atendida (log estructurado y métricas).
// La ruta registrada es el patrón de fiber ("/products/:id"), no la URL concreta.
func RequestLogger(log *logger.Logger, m *metrics.Collector) fiber.Handler {
	if log == nil {
		log = logger.Nop()
	}
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		route := c.Route().Path
		elapsed := time.Since(start)
		m.ObserveHTTP(c.Method(), route, status, elapsed)

		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			cause := err
			if le, ok := c.Locals(localCause).(error); ok && cause == nil {
				cause = le
			}
			ev = log.Error().Err(cause)
		}
		ev.Str("method", c.Method()).
			Str("route", route).
			Int("status", status).
			Dur("elapsed", elapsed).
			Msg("petición")
		return err
	}
}
