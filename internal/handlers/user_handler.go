package handlers

import (
	"errors"

	"github.com/arzan03/musicland/internal/db"
	"github.com/arzan03/musicland/internal/models"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const userExistsMessage = "user already exists"

// UserHandler serves the user routes.
type UserHandler struct {
	deps Deps
}

// ListUsers returns every user.
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	ctx, cancel := opContext(c, h.deps.Timeout)
	defer cancel()

	users, err := h.deps.Users.List(ctx)
	if err != nil {
		return err
	}
	return c.JSON(users)
}

// ListInstructors returns the users with the instructor role.
func (h *UserHandler) ListInstructors(c *fiber.Ctx) error {
	ctx, cancel := opContext(c, h.deps.Timeout)
	defer cancel()

	users, err := h.deps.Users.ListByRole(ctx, models.RoleInstructor)
	if err != nil {
		return err
	}
	return c.JSON(users)
}

// GetRole answers with the whole user document, or null when no user has
// the email.
func (h *UserHandler) GetRole(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.JSON(nil)
	}

	ctx, cancel := opContext(c, h.deps.Timeout)
	defer cancel()

	user, err := h.deps.Users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return c.JSON(nil)
	}
	return c.JSON(user)
}

// CreateUser returns the handler for one sign-in path. Both paths store the
// user the same way; only the recorded provider differs.
func (h *UserHandler) CreateUser(source models.SignInSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var user models.User
		if err := bind(c, &user); err != nil {
			return err
		}
		user.ID = primitive.NilObjectID
		user.Role = ""
		user.Provider = source

		ctx, cancel := opContext(c, h.deps.Timeout)
		defer cancel()

		res, err := h.deps.Users.Create(ctx, &user)
		if errors.Is(err, db.ErrDuplicate) {
			h.deps.Log.Debug("User already exists", zap.String("email", user.Email), zap.String("provider", string(source)))
			return c.JSON(models.Message{Message: userExistsMessage})
		}
		if err != nil {
			return err
		}
		return c.JSON(res)
	}
}

// SetRole returns a handler that gives the user :id the role.
func (h *UserHandler) SetRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c)
		if err != nil {
			return err
		}

		ctx, cancel := opContext(c, h.deps.Timeout)
		defer cancel()

		res, err := h.deps.Users.SetRole(ctx, id, role)
		if err != nil {
			return err
		}
		h.deps.Log.Info("User role changed", zap.String("user_id", id.Hex()), zap.String("role", role),
			zap.Int64("matched", res.MatchedCount))
		return c.JSON(res)
	}
}

// DeleteUser removes the user :id.
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	ctx, cancel := opContext(c, h.deps.Timeout)
	defer cancel()

	res, err := h.deps.Users.Delete(ctx, id)
	if err != nil {
		return err
	}
	return c.JSON(res)
}
