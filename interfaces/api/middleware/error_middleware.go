package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"meetapp/pkg/logger"
	"meetapp/pkg/utils"
)

// ErrorHandler renders errors that escape handlers in the {"error": ...} shape.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"

		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
			message = e.Message
		}

		if code >= fiber.StatusInternalServerError {
			logger.ErrorContext(c.UserContext(), "Unhandled error", "path", c.Path(), "error", err)
		}

		return utils.ErrorResponse(c, code, message)
	}
}
