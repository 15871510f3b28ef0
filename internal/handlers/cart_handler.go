package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/arzan03/musicland/internal/apperr"
	"github.com/arzan03/musicland/internal/db"
	"github.com/arzan03/musicland/internal/models"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const classInCartMessage = "Class already exists"

var errPaymentConflict = apperr.New(http.StatusConflict, "CONFLICT",
	"Another cart entry already holds this class for the email.")

// CartHandler serves the cart and payment record routes.
type CartHandler struct {
	deps Deps
}

// ListCart returns the cart of ?email=. Without an email nothing is queried.
func (h *CartHandler) ListCart(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.JSON([]models.CartItem{})
	}

	ctx, cancel := opContext(c, h.deps.Timeout)
	defer cancel()

	items, err := h.deps.Carts.ListByEmail(ctx, email)
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// GetCartItem returns the cart item :id, or null.
func (h *CartHandler) GetCartItem(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	ctx, cancel := opContext(c, h.deps.Timeout)
	defer cancel()

	item, err := h.deps.Carts.Get(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return c.JSON(nil)
	}
	return c.JSON(item)
}

// AddToCart puts a class in the cart unless it is already there.
func (h *CartHandler) AddToCart(c *fiber.Ctx) error {
	var item models.CartItem
	if err := bind(c, &item); err != nil {
		return err
	}
	item.ID = primitive.NilObjectID
	item.Payment = nil
	item.PaymentStatus = ""

	ctx, cancel := opContext(c, h.deps.Timeout)
	defer cancel()

	res, err := h.deps.Carts.Add(ctx, &item)
	if errors.Is(err, db.ErrDuplicate) {
		h.deps.Log.Debug("Class already in cart", zap.String("email", item.Email), zap.String("class_id", item.ClassID))
		return c.JSON(models.Message{Message: classInCartMessage})
	}
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// RemoveFromCart deletes the cart item :id.
func (h *CartHandler) RemoveFromCart(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	ctx, cancel := opContext(c, h.deps.Timeout)
	defer cancel()

	res, err := h.deps.Carts.Delete(ctx, id)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// RecordPayment stores a completed payment on the cart entry id.
func (h *CartHandler) RecordPayment(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var payment models.Payment
	if err := bind(c, &payment); err != nil {
		return err
	}
	if payment.Date.IsZero() {
		payment.Date = time.Now().UTC()
	}

	ctx, cancel := opContext(c, h.deps.Timeout)
	defer cancel()

	res, err := h.deps.Carts.RecordPayment(ctx, id, payment)
	if errors.Is(err, db.ErrDuplicate) {
		return errPaymentConflict
	}
	if err != nil {
		return err
	}
	h.deps.Log.Info("Payment recorded",
		zap.String("cart_id", id.Hex()),
		zap.String("transaction_id", payment.TransactionID),
		zap.String("outcome", string(res.Outcome)),
	)
	return c.JSON(res)
}

// ListPayments returns the paid cart entries of ?email=.
func (h *CartHandler) ListPayments(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.JSON([]models.CartItem{})
	}

	ctx, cancel := opContext(c, h.deps.Timeout)
	defer cancel()

	items, err := h.deps.Carts.ListPaid(ctx, email)
	if err != nil {
		return err
	}
	return c.JSON(items)
}
