package handlers_fiber

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/niteshvshukla2026-sudo/event-task-management/internal/api"
	"github.com/niteshvshukla2026-sudo/event-task-management/internal/entities"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   api.ErrorCode
	}{
		{"invalid argument", entities.ErrInvalidArgument, http.StatusBadRequest, api.VALIDATIONFAILED},
		{"wrapped invalid argument", fmt.Errorf("%w: title is required", entities.ErrInvalidArgument), http.StatusBadRequest, api.VALIDATIONFAILED},
		{"unauthorized", entities.ErrUnauthorized, http.StatusUnauthorized, api.UNAUTHORIZED},
		{"invalid credentials", entities.ErrInvalidCredentials, http.StatusUnauthorized, api.UNAUTHORIZED},
		{"forbidden", entities.ErrForbidden, http.StatusForbidden, api.FORBIDDEN},
		{"team not found", entities.ErrTeamNotFound, http.StatusNotFound, api.TEAMNOTFOUND},
		{"task not found", entities.ErrTaskNotFound, http.StatusNotFound, api.TASKNOTFOUND},
		{"user not found", entities.ErrUserNotFound, http.StatusNotFound, api.NOTFOUND},
		{"event not found", entities.ErrEventNotFound, http.StatusNotFound, api.NOTFOUND},
		{"notification not found", entities.ErrNotificationNotFound, http.StatusNotFound, api.NOTFOUND},
		{"assignee outside team", entities.ErrAssigneeNotInTeam, http.StatusBadRequest, api.ASSIGNEENOTINTEAM},
		{"already completed", entities.ErrTaskCompleted, http.StatusConflict, api.ALREADYCOMPLETED},
		{"remarks required", entities.ErrRemarksRequired, http.StatusBadRequest, api.REMARKSREQUIRED},
		{"team exists", entities.ErrTeamExists, http.StatusConflict, api.TEAMEXISTS},
		{"mobile exists", entities.ErrMobileExists, http.StatusConflict, api.MOBILEEXISTS},
		{"unknown", errors.New("connect failed: host=db password=hunter2"), http.StatusInternalServerError, api.INTERNAL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return writeError(c, tt.err)
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, tt.wantStatus, resp.StatusCode)

			var body api.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.Equal(t, tt.wantCode, body.Error.Code)
			require.NotEmpty(t, body.Error.Message)
			if tt.wantCode == api.INTERNAL {
				// Internal faults stay opaque: no driver or DSN text in the body.
				require.Equal(t, "internal error", body.Error.Message)
			}
		})
	}
}
