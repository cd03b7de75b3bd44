package routes

import (
	"github.com/gofiber/fiber/v2"

	"meetapp/interfaces/api/handlers"
)

func SetupMeetupRoutes(app fiber.Router, h *handlers.Handlers, protected, pastDates fiber.Handler) {
	meetups := app.Group("/meetups")
	meetups.Post("/", protected, pastDates, h.MeetupHandler.Store)
	meetups.Put("/:id", protected, pastDates, h.MeetupHandler.Update)
	meetups.Get("/:id", protected, h.MeetupHandler.Show)
	meetups.Delete("/:id", protected, h.MeetupHandler.Delete)
}
