package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/niteshvshukla2026-sudo/event-task-management/internal/api"
	"github.com/niteshvshukla2026-sudo/event-task-management/internal/entities"
	"github.com/niteshvshukla2026-sudo/event-task-management/internal/mapper"
	"github.com/niteshvshukla2026-sudo/event-task-management/internal/transport/http/middleware"
)

// PostUsers creates an account on behalf of an administrator.
func (h *Handler) PostUsers(c *fiber.Ctx) error {
	var body api.CreateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATIONFAILED, "invalid body"))
	}

	user, err := h.uc.CreateUser(c.Context(), middleware.Caller(c), body.Name, body.Mobile, body.Password, entities.Role(body.Role))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		User api.User `json:"user"`
	}{User: mapper.ToAPIUser(*user)})
}

// GetUsers lists regular accounts. Admin only.
func (h *Handler) GetUsers(c *fiber.Ctx) error {
	users, err := h.uc.Users(c.Context(), middleware.Caller(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIUserList(users))
}

// GetUsersMe returns the calling user's account.
func (h *Handler) GetUsersMe(c *fiber.Ctx) error {
	user, err := h.uc.Me(c.Context(), middleware.Caller(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIUser(*user))
}
