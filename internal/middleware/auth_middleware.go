package middleware

import (
	"strings"

	"github.com/arzan03/musicland/internal/apperr"
	"github.com/arzan03/musicland/internal/services"
	"github.com/gofiber/fiber/v2"
)

const (
	LocalsEmail = "email"
	LocalsRole  = "role"
)

// Authorizer guards privileged routes. When disabled every request passes.
type Authorizer struct {
	tokens  *services.TokenService
	enabled bool
}

// NewAuthorizer returns an Authorizer checking tokens signed by tokens.
func NewAuthorizer(tokens *services.TokenService, enabled bool) *Authorizer {
	return &Authorizer{tokens: tokens, enabled: enabled}
}

// RequireRole lets the request through only if it carries a valid bearer
// token whose role is one of roles.
func (a *Authorizer) RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !a.enabled {
			return c.Next()
		}

		tokenString := BearerToken(c)
		if tokenString == "" {
			return apperr.ErrUnauthorized
		}

		claims, err := a.tokens.ParseJWT(tokenString)
		if err != nil {
			return apperr.ErrUnauthorized
		}

		c.Locals(LocalsEmail, claims.Email)
		c.Locals(LocalsRole, claims.Role)

		for _, role := range roles {
			if claims.Role == role {
				return c.Next()
			}
		}
		return apperr.ErrForbidden
	}
}

// BearerToken returns the token of the Authorization header, or "" when the
// request carries none.
func BearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
