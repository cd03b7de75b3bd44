package routes

import (
	"github.com/gofiber/fiber/v2"

	"meetapp/interfaces/api/handlers"
)

func SetupUserRoutes(app fiber.Router, h *handlers.Handlers, protected fiber.Handler) {
	app.Put("/users", protected, h.UserHandler.Update)
}
