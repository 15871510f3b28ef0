package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	RequestIDHeader = "X-Request-ID"
	LocalsRequestID = "requestID"
)

// RequestLogger tags each request with an id and logs it once it finishes.
func RequestLogger(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestID := c.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Locals(LocalsRequestID, requestID)
		c.Set(RequestIDHeader, requestID)

		chainErr := c.Next()
		if chainErr != nil {
			// Render now so the logged status is the one the client sees.
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		fields := []zap.Field{
			zap.Int("status", status),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", requestID),
		}

		switch {
		case status >= fiber.StatusInternalServerError:
			log.Error("Server error", fields...)
		case status >= fiber.StatusBadRequest:
			log.Warn("Client error", fields...)
		default:
			log.Info("Request handled", fields...)
		}
		return nil
	}
}

// RequestID returns the id RequestLogger assigned to the request.
func RequestID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalsRequestID).(string)
	return id
}
