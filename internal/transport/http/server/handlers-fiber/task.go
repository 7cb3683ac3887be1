package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/niteshvshukla2026-sudo/event-task-management/internal/api"
	"github.com/niteshvshukla2026-sudo/event-task-management/internal/mapper"
	"github.com/niteshvshukla2026-sudo/event-task-management/internal/transport/http/middleware"
)

// PostTasks creates a task after the assignment authorization check.
func (h *Handler) PostTasks(c *fiber.Ctx) error {
	var body api.CreateTaskRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATIONFAILED, "invalid body"))
	}

	task, err := h.uc.CreateTask(c.Context(), middleware.Caller(c), body.Title, body.Description, body.EventID, body.AssignedTo)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		Task api.Task `json:"task"`
	}{Task: mapper.ToAPITask(*task)})
}

// GetTasks returns all tasks. Admin only.
func (h *Handler) GetTasks(c *fiber.Ctx) error {
	tasks, err := h.uc.Tasks(c.Context(), middleware.Caller(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITaskList(tasks))
}

// GetTasksMy returns tasks assigned to the caller.
func (h *Handler) GetTasksMy(c *fiber.Ctx) error {
	tasks, err := h.uc.MyTasks(c.Context(), middleware.Caller(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITaskList(tasks))
}

// PatchTaskStatus completes a task with mandatory remarks.
func (h *Handler) PatchTaskStatus(c *fiber.Ctx) error {
	var body api.CompleteTaskRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATIONFAILED, "invalid body"))
	}

	task, err := h.uc.CompleteTask(c.Context(), middleware.Caller(c), c.Params("id"), body.Remarks)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Task api.Task `json:"task"`
	}{Task: mapper.ToAPITask(*task)})
}
