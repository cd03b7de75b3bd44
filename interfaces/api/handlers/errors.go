package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"meetapp/domain/services"
	"meetapp/pkg/logger"
	"meetapp/pkg/utils"
)

// handleServiceError maps a service error to its status and message.
// Anything that is not an *AppError is logged and hidden behind a 500.
func handleServiceError(c *fiber.Ctx, err error) error {
	var appErr *services.AppError
	if !errors.As(err, &appErr) {
		logger.ErrorContext(c.UserContext(), "Unexpected error", "path", c.Path(), "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	switch appErr.Kind {
	case services.KindNotOwner, services.KindUnauthenticated:
		return utils.UnauthorizedResponse(c, appErr.Message)
	default:
		return utils.BadRequestResponse(c, appErr.Message)
	}
}

// currentUserID reads the id set by middleware.Protected.
func currentUserID(c *fiber.Ctx) (uint, bool) {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return 0, false
	}
	return user.ID, true
}

func idParam(c *fiber.Ctx) (uint, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}
