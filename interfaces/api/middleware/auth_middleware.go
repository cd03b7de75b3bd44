package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"meetapp/pkg/logger"
	"meetapp/pkg/utils"
)

// Protected validates the bearer token and sets the user context
func Protected(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return utils.UnauthorizedResponse(c, "Token not provided")
		}

		token := utils.ExtractTokenFromHeader(authHeader)
		userCtx, err := utils.ValidateToken(token, jwtSecret)
		if err != nil {
			logger.WarnContext(c.UserContext(), "Token validation failed", "path", c.Path(), "error", err)
			if errors.Is(err, utils.ErrExpiredToken) {
				return utils.UnauthorizedResponse(c, "Token expired")
			}
			return utils.UnauthorizedResponse(c, "Token invalid")
		}

		c.Locals(utils.UserLocalsKey, userCtx)
		c.SetUserContext(logger.ContextWithUserID(c.UserContext(), userCtx.ID))

		return c.Next()
	}
}
