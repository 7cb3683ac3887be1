package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/niteshvshukla2026-sudo/event-task-management/internal/mapper"
	"github.com/niteshvshukla2026-sudo/event-task-management/internal/transport/http/middleware"
)

// GetNotifications returns the caller's feed, newest first.
func (h *Handler) GetNotifications(c *fiber.Ctx) error {
	notes, err := h.uc.Notifications(c.Context(), middleware.Caller(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPINotificationList(notes))
}

// PutNotificationRead marks one of the caller's notifications as read.
func (h *Handler) PutNotificationRead(c *fiber.Ctx) error {
	if err := h.uc.MarkNotificationRead(c.Context(), middleware.Caller(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"success": true})
}
