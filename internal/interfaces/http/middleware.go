package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/mvribeiro/loja-virtual-api/pkg/logger"
)

// RequestIDHeader cabeçalho com o identificador da requisição.
const RequestIDHeader = "X-Request-ID"

// RequestLogger registra cada requisição com id, método, rota, status e duração.
// Respeita o X-Request-ID do cliente quando presente; caso contrário gera um.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(RequestIDHeader, requestID)
		c.Locals("request_id", requestID)

		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		event := log.Info()
		if err != nil || status >= fiber.StatusInternalServerError {
			event = log.Error()
		}
		event.
			Str("request_id", requestID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Msg("requisição atendida")

		return err
	}
}
