package handlers

import (
	"github.com/gofiber/fiber/v2"

	"meetapp/domain/dto"
	"meetapp/domain/services"
	"meetapp/pkg/logger"
	"meetapp/pkg/utils"
)

type SessionHandler struct {
	userService services.UserService
}

func NewSessionHandler(userService services.UserService) *SessionHandler {
	return &SessionHandler{userService: userService}
}

func (h *SessionHandler) Store(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ValidationErrorResponse(c)
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c)
	}

	logger.InfoContext(ctx, "Login attempt", "email", req.Email)

	token, user, err := h.userService.Login(ctx, &req)
	if err != nil {
		return handleServiceError(c, err)
	}

	return utils.SuccessResponse(c, &dto.SessionResponse{
		User:  *dto.UserToUserResponse(user),
		Token: token,
	})
}
