package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"meetapp/domain/dto"
	"meetapp/domain/services"
	"meetapp/pkg/utils"
)

// DashboardHandler lists the meetups organised by the caller.
type DashboardHandler struct {
	meetupService services.MeetupService
	now           func() time.Time
}

func NewDashboardHandler(meetupService services.MeetupService) *DashboardHandler {
	return &DashboardHandler{meetupService: meetupService, now: time.Now}
}

func (h *DashboardHandler) Index(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Token invalid")
	}

	meetups, err := h.meetupService.Dashboard(c.UserContext(), userID)
	if err != nil {
		return handleServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.MeetupsToMeetupResponses(meetups, h.now()))
}
