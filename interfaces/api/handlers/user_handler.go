package handlers

import (
	"github.com/gofiber/fiber/v2"

	"meetapp/domain/dto"
	"meetapp/domain/services"
	"meetapp/pkg/logger"
	"meetapp/pkg/utils"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Store สมัครสมาชิก (POST /users)
func (h *UserHandler) Store(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.ValidationErrorResponse(c)
	}

	if err := utils.ValidateStruct(&req); err != nil {
		logger.WarnContext(ctx, "Validation failed", "errors", utils.GetValidationErrors(err))
		return utils.ValidationErrorResponse(c)
	}

	user, err := h.userService.Register(ctx, &req)
	if err != nil {
		return handleServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.UserToUserResponse(user))
}

// Update แก้ไขข้อมูลของตัวเอง (PUT /users)
func (h *UserHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userID, ok := currentUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Token invalid")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.ValidationErrorResponse(c)
	}

	if err := utils.ValidateStruct(&req); err != nil {
		logger.WarnContext(ctx, "Validation failed", "errors", utils.GetValidationErrors(err))
		return utils.ValidationErrorResponse(c)
	}

	user, err := h.userService.UpdateProfile(ctx, userID, &req)
	if err != nil {
		return handleServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.UserToUserResponse(user))
}
