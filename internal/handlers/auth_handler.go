package handlers

import (
	"strings"

	"github.com/arzan03/musicland/internal/apperr"
	"github.com/arzan03/musicland/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler issues access tokens.
type AuthHandler struct {
	deps Deps
}

type tokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// IssueToken signs an access token for the email. The role stored on the
// user document is only embedded when the request carries a provider ID
// token proving ownership of that email; anonymous callers get a token
// without a role.
func (h *AuthHandler) IssueToken(c *fiber.Ctx) error {
	if h.deps.Tokens == nil {
		return apperr.ErrUnavailable.WithDetails("token signing is not configured")
	}
	var req tokenRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	verified, err := h.verifiedEmail(c)
	if err != nil {
		return err
	}
	if verified == "" {
		return h.sign(c, req.Email, "")
	}
	if !strings.EqualFold(verified, req.Email) {
		return apperr.ErrForbidden.WithDetails("identity token belongs to another email")
	}

	ctx, cancel := opContext(c, h.deps.Timeout)
	defer cancel()

	user, err := h.deps.Users.FindByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	role := ""
	if user != nil {
		role = user.Role
	}
	return h.sign(c, req.Email, role)
}

// verifiedEmail returns the email proven by the bearer ID token, or "" when
// the request carries none.
func (h *AuthHandler) verifiedEmail(c *fiber.Ctx) (string, error) {
	idToken := middleware.BearerToken(c)
	if idToken == "" {
		return "", nil
	}
	if h.deps.Identity == nil {
		return "", apperr.ErrUnauthorized.WithDetails("identity tokens are not accepted")
	}
	email, err := h.deps.Identity.VerifyIdentity(idToken)
	if err != nil {
		h.deps.Log.Warn("Rejected identity token", zap.String("request_id", middleware.RequestID(c)), zap.Error(err))
		return "", apperr.ErrUnauthorized
	}
	return email, nil
}

func (h *AuthHandler) sign(c *fiber.Ctx, email, role string) error {
	token, err := h.deps.Tokens.GenerateJWT(email, role)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"token": token})
}
