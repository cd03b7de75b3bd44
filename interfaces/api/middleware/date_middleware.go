package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"meetapp/pkg/logger"
	"meetapp/pkg/utils"
)

type datePayload struct {
	Date *string `json:"date"`
}

// RejectPastDates blocks create/update bodies whose "date" is already over.
// Missing or unparseable dates are left to the handler's validation.
func RejectPastDates(loc *time.Location) fiber.Handler {
	return rejectPastDates(loc, time.Now)
}

func rejectPastDates(loc *time.Location, now func() time.Time) fiber.Handler {
	return func(c *fiber.Ctx) error {
		body := c.Body()
		if len(body) == 0 {
			return c.Next()
		}

		var payload datePayload
		if err := c.App().Config().JSONDecoder(body, &payload); err != nil || payload.Date == nil {
			return c.Next()
		}

		date, err := utils.ParseDate(*payload.Date, loc)
		if err != nil {
			return c.Next()
		}

		if date.Before(now()) {
			logger.WarnContext(c.UserContext(), "Past date rejected", "path", c.Path(), "date", *payload.Date)
			return utils.BadRequestResponse(c, "Past dates are not permitted")
		}

		return c.Next()
	}
}
