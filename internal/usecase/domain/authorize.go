package domain

import "github.com/niteshvshukla2026-sudo/event-task-management/internal/entities"

// authorizeAssignment decides whether caller may create a task assigning
// assigneeID within the given team. Pure: no repository access, no side
// effects; the single place this rule exists.
//
// The assignee must be a team member. Admins may assign anywhere; a
// non-admin caller must belong to the team themselves (peer assignment).
func authorizeAssignment(caller entities.AuthContext, team entities.EventTeam, assigneeID string) error {
	if !team.HasMember(assigneeID) {
		return entities.ErrAssigneeNotInTeam
	}
	if caller.Role.IsAdmin() || team.HasMember(caller.UserID) {
		return nil
	}
	return entities.ErrForbidden
}
