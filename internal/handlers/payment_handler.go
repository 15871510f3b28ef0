package handlers

import (
	"github.com/arzan03/musicland/internal/apperr"
	"github.com/arzan03/musicland/internal/models"
	"github.com/gofiber/fiber/v2"
)

const IdempotencyKeyHeader = "Idempotency-Key"

// PaymentHandler serves payment intent creation.
type PaymentHandler struct {
	deps Deps
}

// CreatePaymentIntent creates a card payment intent for the price in the body.
func (h *PaymentHandler) CreatePaymentIntent(c *fiber.Ctx) error {
	if h.deps.Payments == nil {
		return apperr.ErrUnavailable.WithDetails("payments are not configured")
	}
	var req models.PaymentIntentRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	ctx, cancel := opContext(c, h.deps.Timeout)
	defer cancel()

	secret, err := h.deps.Payments.CreateIntent(ctx, req.Price, c.Get(IdempotencyKeyHeader))
	if err != nil {
		return err
	}
	return c.JSON(models.PaymentIntentResponse{ClientSecret: secret})
}
