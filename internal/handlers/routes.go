package handlers

import (
	"github.com/arzan03/musicland/internal/middleware"
	"github.com/arzan03/musicland/internal/models"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const livenessMessage = "Music land is running"

// Register mounts every route on router.
func Register(router fiber.Router, deps Deps) {
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	if deps.Auth == nil {
		deps.Auth = middleware.NewAuthorizer(nil, false)
	}
	admin := deps.Auth.AdminOnly()
	instructor := deps.Auth.InstructorOrAdmin()

	router.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(livenessMessage)
	})

	auth := &AuthHandler{deps: deps}
	router.Post("/jwt", auth.IssueToken)

	users := &UserHandler{deps: deps}
	router.Get("/users", users.ListUsers)
	router.Get("/instructors", users.ListInstructors)
	router.Get("/role", users.GetRole)
	router.Post("/users", users.CreateUser(models.SourceLocal))
	router.Post("/users/google", users.CreateUser(models.SourceGoogle))
	router.Patch("/users/admin/:id", admin, users.SetRole(models.RoleAdmin))
	router.Patch("/users/instructor/:id", admin, users.SetRole(models.RoleInstructor))
	router.Delete("/users/:id", admin, users.DeleteUser)

	classes := &ClassHandler{deps: deps}
	router.Get("/classes", classes.ListClasses)
	router.Get("/approveClass", classes.ListApproved)
	router.Get("/class", classes.ListByInstructor)
	router.Post("/addClass", instructor, classes.AddClass)
	router.Post("/classes/feedback/:id", admin, classes.SetFeedback)
	router.Patch("/classes/approve/:id", admin, classes.SetStatus(models.StatusApproved))
	router.Patch("/classes/deny/:id", admin, classes.SetStatus(models.StatusDenied))
	router.Patch("/classes/:id", instructor, classes.UpdateClass)
	router.Post("/classes/:id/image", instructor, classes.UploadImage)
	router.Put("/classUpdates/:id", instructor, classes.UpsertClass)

	carts := &CartHandler{deps: deps}
	router.Get("/carts", carts.ListCart)
	router.Get("/carts/:id", carts.GetCartItem)
	router.Post("/carts", carts.AddToCart)
	router.Delete("/carts/:id", carts.RemoveFromCart)
	router.Get("/payments", carts.ListPayments)
	router.Put("/payments/:id", carts.RecordPayment)

	payments := &PaymentHandler{deps: deps}
	router.Post("/create-payment-intent", payments.CreatePaymentIntent)
}
