package domain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/niteshvshukla2026-sudo/event-task-management/internal/entities"
)

func TestAuthorizeAssignment(t *testing.T) {
	team := entities.EventTeam{
		ID:        "t1",
		EventID:   "e1",
		MemberIDs: []string{"u1", "u2"},
	}

	tests := []struct {
		name     string
		caller   entities.AuthContext
		assignee string
		expected error
	}{
		{
			name:     "admin assigns to member",
			caller:   entities.AuthContext{UserID: "a1", Role: entities.RoleAdmin},
			assignee: "u2",
		},
		{
			name:     "super admin assigns to member",
			caller:   entities.AuthContext{UserID: "sa1", Role: entities.RoleSuperAdmin},
			assignee: "u1",
		},
		{
			name:     "member assigns to fellow member",
			caller:   entities.AuthContext{UserID: "u1", Role: entities.RoleUser},
			assignee: "u2",
		},
		{
			name:     "member assigns to self",
			caller:   entities.AuthContext{UserID: "u1", Role: entities.RoleUser},
			assignee: "u1",
		},
		{
			name:     "outsider assigns to member",
			caller:   entities.AuthContext{UserID: "u3", Role: entities.RoleUser},
			assignee: "u2",
			expected: entities.ErrForbidden,
		},
		{
			name:     "admin assigns to outsider",
			caller:   entities.AuthContext{UserID: "a1", Role: entities.RoleAdmin},
			assignee: "u9",
			expected: entities.ErrAssigneeNotInTeam,
		},
		{
			name:     "member assigns to outsider",
			caller:   entities.AuthContext{UserID: "u1", Role: entities.RoleUser},
			assignee: "u9",
			expected: entities.ErrAssigneeNotInTeam,
		},
		{
			name:     "outsider assigns to outsider",
			caller:   entities.AuthContext{UserID: "u3", Role: entities.RoleUser},
			assignee: "u9",
			expected: entities.ErrAssigneeNotInTeam,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := authorizeAssignment(tt.caller, team, tt.assignee)
			if tt.expected == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.expected)
		})
	}
}
