package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/niteshvshukla2026-sudo/event-task-management/internal/api"
	"github.com/niteshvshukla2026-sudo/event-task-management/internal/entities"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.INTERNAL
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = api.VALIDATIONFAILED
		msg = err.Error()
	case errors.Is(err, entities.ErrUnauthorized), errors.Is(err, entities.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		code = api.UNAUTHORIZED
		msg = "invalid credentials"
	case errors.Is(err, entities.ErrForbidden):
		status = http.StatusForbidden
		code = api.FORBIDDEN
		msg = "operation not allowed"
	case errors.Is(err, entities.ErrTeamNotFound):
		status = http.StatusNotFound
		code = api.TEAMNOTFOUND
		msg = "team not found for this event"
	case errors.Is(err, entities.ErrTaskNotFound):
		status = http.StatusNotFound
		code = api.TASKNOTFOUND
		msg = "task not found"
	case errors.Is(err, entities.ErrUserNotFound),
		errors.Is(err, entities.ErrEventNotFound),
		errors.Is(err, entities.ErrNotificationNotFound):
		status = http.StatusNotFound
		code = api.NOTFOUND
		msg = "resource not found"
	case errors.Is(err, entities.ErrAssigneeNotInTeam):
		status = http.StatusBadRequest
		code = api.ASSIGNEENOTINTEAM
		msg = "assigned user must be a team member"
	case errors.Is(err, entities.ErrTaskCompleted):
		status = http.StatusConflict
		code = api.ALREADYCOMPLETED
		msg = "completed task cannot be changed"
	case errors.Is(err, entities.ErrRemarksRequired):
		status = http.StatusBadRequest
		code = api.REMARKSREQUIRED
		msg = "remarks are required to complete a task"
	case errors.Is(err, entities.ErrTeamExists):
		status = http.StatusConflict
		code = api.TEAMEXISTS
		msg = "team already exists for this event"
	case errors.Is(err, entities.ErrMobileExists):
		status = http.StatusConflict
		code = api.MOBILEEXISTS
		msg = "mobile number already exists"
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code api.ErrorCode, msg string) api.ErrorResponse {
	var resp api.ErrorResponse
	resp.Error.Code = code
	resp.Error.Message = msg
	return resp
}
