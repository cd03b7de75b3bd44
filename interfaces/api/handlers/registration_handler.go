package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"meetapp/domain/dto"
	"meetapp/domain/services"
	"meetapp/pkg/logger"
	"meetapp/pkg/utils"
)

type RegistrationHandler struct {
	registrationService services.RegistrationService
	now                 func() time.Time
}

func NewRegistrationHandler(registrationService services.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{
		registrationService: registrationService,
		now:                 time.Now,
	}
}

// Index lists the caller's upcoming registrations.
func (h *RegistrationHandler) Index(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Token invalid")
	}

	registrations, err := h.registrationService.ListUpcoming(c.UserContext(), userID)
	if err != nil {
		return handleServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.RegistrationsToRegistrationResponses(registrations, h.now()))
}

func (h *RegistrationHandler) Store(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userID, ok := currentUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Token invalid")
	}

	var req dto.CreateRegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.ValidationErrorResponse(c)
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c)
	}

	registration, err := h.registrationService.Register(ctx, userID, req.MeetupID.Uint())
	if err != nil {
		return handleServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.RegistrationToRegistrationResponse(registration, h.now()))
}

func (h *RegistrationHandler) Delete(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Token invalid")
	}
	id, ok := idParam(c)
	if !ok {
		return handleServiceError(c, services.ErrRegistrationNotFound)
	}

	if err := h.registrationService.Cancel(c.UserContext(), userID, id); err != nil {
		return handleServiceError(c, err)
	}

	return utils.DeletedResponse(c)
}
