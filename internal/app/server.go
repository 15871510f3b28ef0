package app

import (
	"github.com/arzan03/musicland/internal/handlers"
	"github.com/arzan03/musicland/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// NewServer builds the fiber app with the middleware chain and every route.
func NewServer(deps handlers.Deps, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "musicLand",
		ErrorHandler: middleware.ErrorHandler(log),
		BodyLimit:    8 * 1024 * 1024,
	})

	app.Use(middleware.RequestLogger(log))
	app.Use(recover.New())
	app.Use(cors.New())

	deps.Log = log
	handlers.Register(app, deps)
	return app
}
