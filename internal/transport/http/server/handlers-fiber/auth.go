package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/niteshvshukla2026-sudo/event-task-management/internal/api"
	"github.com/niteshvshukla2026-sudo/event-task-management/internal/entities"
	"github.com/niteshvshukla2026-sudo/event-task-management/internal/mapper"
)

// PostAuthRegister creates an account.
func (h *Handler) PostAuthRegister(c *fiber.Ctx) error {
	var body api.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATIONFAILED, "invalid body"))
	}

	user, err := h.uc.Register(c.Context(), body.Name, body.Mobile, body.Password, entities.Role(body.Role))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		User api.User `json:"user"`
	}{User: mapper.ToAPIUser(*user)})
}

// PostAuthLogin verifies credentials and returns a bearer token.
func (h *Handler) PostAuthLogin(c *fiber.Ctx) error {
	var body api.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATIONFAILED, "invalid body"))
	}

	token, user, err := h.uc.Login(c.Context(), body.Mobile, body.Password)
	if err != nil {
		h.log.Infow("login failed", "mobile", body.Mobile)
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(api.LoginResponse{
		Token:  token,
		Role:   string(user.Role),
		Mobile: user.Mobile,
		Name:   user.Name,
	})
}
