package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/niteshvshukla2026-sudo/event-task-management/internal/api"
	"github.com/niteshvshukla2026-sudo/event-task-management/internal/mapper"
	"github.com/niteshvshukla2026-sudo/event-task-management/internal/transport/http/middleware"
)

// PostTeams creates the team for an event and notifies its members.
func (h *Handler) PostTeams(c *fiber.Ctx) error {
	var body api.CreateTeamRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATIONFAILED, "invalid body"))
	}

	team, err := h.uc.CreateTeam(c.Context(), middleware.Caller(c), body.EventID, body.Members)
	if err != nil {
		h.log.Infow("team creation rejected", "event_id", body.EventID, "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		Team api.Team `json:"team"`
	}{Team: mapper.ToAPITeam(*team)})
}

// GetTeams returns all teams with their member sets.
func (h *Handler) GetTeams(c *fiber.Ctx) error {
	teams, err := h.uc.Teams(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITeamList(teams))
}

// GetTeamMembers returns the member accounts of an event's team.
func (h *Handler) GetTeamMembers(c *fiber.Ctx) error {
	members, err := h.uc.TeamMembers(c.Context(), c.Params("eventId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIUserList(members))
}
