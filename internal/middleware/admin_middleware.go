package middleware

import (
	"github.com/arzan03/musicland/internal/models"
	"github.com/gofiber/fiber/v2"
)

// AdminOnly guards role changes, user deletion and class moderation.
func (a *Authorizer) AdminOnly() fiber.Handler {
	return a.RequireRole(models.RoleAdmin)
}

// InstructorOrAdmin guards class submissions and edits.
func (a *Authorizer) InstructorOrAdmin() fiber.Handler {
	return a.RequireRole(models.RoleInstructor, models.RoleAdmin)
}
