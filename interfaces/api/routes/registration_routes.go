package routes

import (
	"github.com/gofiber/fiber/v2"

	"meetapp/interfaces/api/handlers"
)

func SetupRegistrationRoutes(app fiber.Router, h *handlers.Handlers, protected fiber.Handler) {
	registrations := app.Group("/registration", protected)
	registrations.Get("/", h.RegistrationHandler.Index)
	registrations.Post("/", h.RegistrationHandler.Store)
	registrations.Delete("/:id", h.RegistrationHandler.Delete)
}
