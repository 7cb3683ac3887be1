package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/niteshvshukla2026-sudo/event-task-management/internal/api"
	"github.com/niteshvshukla2026-sudo/event-task-management/internal/mapper"
	"github.com/niteshvshukla2026-sudo/event-task-management/internal/transport/http/middleware"
)

// PostEvents creates an event and fans out admin notifications.
func (h *Handler) PostEvents(c *fiber.Ctx) error {
	var body api.CreateEventRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATIONFAILED, "invalid body"))
	}

	event, err := h.uc.CreateEvent(c.Context(), middleware.Caller(c), body.Title, body.Venue, body.Description)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		Event api.Event `json:"event"`
	}{Event: mapper.ToAPIEvent(*event)})
}

// GetEvents returns all events.
func (h *Handler) GetEvents(c *fiber.Ctx) error {
	events, err := h.uc.Events(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIEventList(events))
}

// GetEventsMy returns events whose team contains the caller.
func (h *Handler) GetEventsMy(c *fiber.Ctx) error {
	events, err := h.uc.MyEvents(c.Context(), middleware.Caller(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIEventList(events))
}
