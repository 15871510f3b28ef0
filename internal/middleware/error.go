package middleware

import (
	"errors"

	"github.com/arzan03/musicland/internal/apperr"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorHandler renders handler errors as JSON. Anything that is not an
// application error is logged and hidden behind a generic 500.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if appErr, ok := apperr.As(err); ok {
			return c.Status(appErr.Status).JSON(appErr)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(apperr.New(fiberErr.Code, codeFor(fiberErr.Code), fiberErr.Message))
		}

		log.Error("Unhandled application error",
			zap.Error(err),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("request_id", RequestID(c)),
		)
		return c.Status(apperr.ErrInternal.Status).JSON(apperr.ErrInternal)
	}
}

func codeFor(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	case fiber.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE"
	default:
		return "HTTP_ERROR"
	}
}
