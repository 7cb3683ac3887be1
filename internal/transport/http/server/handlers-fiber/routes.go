package handlers_fiber

import (
	"github.com/gofiber/fiber/v2"

	"github.com/niteshvshukla2026-sudo/event-task-management/internal/auth"
	"github.com/niteshvshukla2026-sudo/event-task-management/internal/transport/http/middleware"
)

// Register mounts all API routes. Everything except registration and
// login sits behind the bearer-token middleware.
func (h *Handler) Register(app *fiber.App, authm *auth.Manager) {
	api := app.Group("/api")

	api.Post("/auth/register", h.PostAuthRegister)
	api.Post("/auth/login", h.PostAuthLogin)

	authed := api.Use(middleware.RequireAuth(authm))

	authed.Post("/users", h.PostUsers)
	authed.Get("/users", h.GetUsers)
	authed.Get("/users/me", h.GetUsersMe)

	authed.Post("/events", h.PostEvents)
	authed.Get("/events", h.GetEvents)
	authed.Get("/events/my", h.GetEventsMy)

	authed.Post("/teams", h.PostTeams)
	authed.Get("/teams", h.GetTeams)
	authed.Get("/teams/:eventId/members", h.GetTeamMembers)

	authed.Post("/tasks", h.PostTasks)
	authed.Get("/tasks", h.GetTasks)
	authed.Get("/tasks/my", h.GetTasksMy)
	authed.Patch("/tasks/:id/status", h.PatchTaskStatus)

	authed.Get("/notifications", h.GetNotifications)
	authed.Put("/notifications/:id/read", h.PutNotificationRead)
}
