package handlers

import (
	"context"
	"time"

	"github.com/arzan03/musicland/internal/apperr"
	"github.com/arzan03/musicland/internal/models"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate = validator.New()

const defaultTimeout = 10 * time.Second

// opContext bounds a single storage call made on behalf of c.
func opContext(c *fiber.Ctx, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return context.WithTimeout(c.UserContext(), timeout)
}

func paramID(c *fiber.Ctx) (primitive.ObjectID, error) {
	id, err := models.ParseID(c.Params("id"))
	if err != nil {
		return primitive.NilObjectID, apperr.ErrInvalidID
	}
	return id, nil
}

// bind parses the JSON body into v and validates it.
func bind(c *fiber.Ctx, v interface{}) error {
	if err := c.BodyParser(v); err != nil {
		return apperr.ErrBadRequest.WithDetails("Invalid request body")
	}
	if err := validate.Struct(v); err != nil {
		return apperr.Validation(err)
	}
	return nil
}
