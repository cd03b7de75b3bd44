package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"meetapp/interfaces/api/handlers"
	"meetapp/interfaces/api/middleware"
)

// Options configures route wiring.
type Options struct {
	JWTSecret string
	Location  *time.Location
	// FilesDir is served under /files when storage is local. Empty disables it.
	FilesDir string
}

// SetupRoutes mounts every route at the root; the mobile client uses a bare base URL.
func SetupRoutes(app *fiber.App, h *handlers.Handlers, opts Options) {
	SetupHealthRoutes(app)

	if opts.FilesDir != "" {
		app.Static("/files", opts.FilesDir)
	}

	// public
	app.Post("/users", h.UserHandler.Store)
	app.Post("/sessions", h.SessionHandler.Store)
	app.Get("/meetups", h.MeetupHandler.Index)

	protected := middleware.Protected(opts.JWTSecret)
	pastDates := middleware.RejectPastDates(opts.Location)

	SetupUserRoutes(app, h, protected)
	SetupMeetupRoutes(app, h, protected, pastDates)
	SetupRegistrationRoutes(app, h, protected)

	app.Get("/dashboard", protected, h.DashboardHandler.Index)
	app.Post("/files", protected, h.FileHandler.Store)
}
