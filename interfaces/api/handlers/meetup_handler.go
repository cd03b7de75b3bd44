package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"meetapp/domain/dto"
	"meetapp/domain/services"
	"meetapp/pkg/logger"
	"meetapp/pkg/utils"
)

type MeetupHandler struct {
	meetupService services.MeetupService
	loc           *time.Location
	now           func() time.Time
}

func NewMeetupHandler(meetupService services.MeetupService, loc *time.Location) *MeetupHandler {
	return &MeetupHandler{
		meetupService: meetupService,
		loc:           loc,
		now:           time.Now,
	}
}

// Index lists meetups, 10 per page. Query: page (default 1), date (one calendar day).
func (h *MeetupHandler) Index(c *fiber.Ctx) error {
	ctx := c.UserContext()
	query := &dto.ListMeetupsQuery{Page: 1}

	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return handleServiceError(c, services.ErrInvalidPage)
		}
		query.Page = page
	}

	if raw := c.Query("date"); raw != "" {
		date, err := utils.ParseDate(raw, h.loc)
		if err != nil {
			logger.WarnContext(ctx, "Invalid date filter", "date", raw)
			return handleServiceError(c, services.ErrInvalidDate)
		}
		query.Date = &date
	}

	meetups, err := h.meetupService.List(ctx, query)
	if err != nil {
		return handleServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.MeetupsToMeetupResponses(meetups, h.now()))
}

func (h *MeetupHandler) Store(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userID, ok := currentUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Token invalid")
	}

	var req dto.CreateMeetupRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.ValidationErrorResponse(c)
	}
	if err := utils.ValidateStruct(&req); err != nil {
		logger.WarnContext(ctx, "Validation failed", "errors", utils.GetValidationErrors(err))
		return utils.ValidationErrorResponse(c)
	}

	meetup, err := h.meetupService.Create(ctx, userID, &req)
	if err != nil {
		return handleServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.MeetupToMeetupResponse(meetup, h.now()))
}

func (h *MeetupHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userID, ok := currentUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Token invalid")
	}
	id, ok := idParam(c)
	if !ok {
		return handleServiceError(c, services.ErrMeetupNotFound)
	}

	// validation runs in the service, after the not-found, owner and past guards
	req := &dto.UpdateMeetupRequest{}
	if err := c.BodyParser(req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		req = nil
	}

	meetup, err := h.meetupService.Update(ctx, userID, id, req)
	if err != nil {
		return handleServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.MeetupToMeetupResponse(meetup, h.now()))
}

func (h *MeetupHandler) Delete(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Token invalid")
	}
	id, ok := idParam(c)
	if !ok {
		return handleServiceError(c, services.ErrMeetupNotFound)
	}

	if err := h.meetupService.Delete(c.UserContext(), userID, id); err != nil {
		return handleServiceError(c, err)
	}

	return utils.DeletedResponse(c)
}

func (h *MeetupHandler) Show(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Token invalid")
	}
	id, ok := idParam(c)
	if !ok {
		return handleServiceError(c, services.ErrMeetupNotFound)
	}

	meetup, err := h.meetupService.Show(c.UserContext(), userID, id)
	if err != nil {
		return handleServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.MeetupToMeetupResponse(meetup, h.now()))
}
