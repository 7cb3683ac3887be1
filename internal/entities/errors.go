// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnauthorized signals a missing or invalid credential.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidCredentials signals a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrForbidden signals the caller may not perform the operation.
	ErrForbidden = errors.New("forbidden")
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrMobileExists signals mobile number conflict on registration.
	ErrMobileExists = errors.New("mobile exists")
	// ErrEventNotFound signals missing event.
	ErrEventNotFound = errors.New("event not found")
	// ErrTeamNotFound signals the event has no team.
	ErrTeamNotFound = errors.New("team not found")
	// ErrTeamExists signals the event already has a team.
	ErrTeamExists = errors.New("team exists")
	// ErrAssigneeNotInTeam signals the task target is not a team member.
	ErrAssigneeNotInTeam = errors.New("assignee not in team")
	// ErrTaskNotFound signals missing task.
	ErrTaskNotFound = errors.New("task not found")
	// ErrTaskCompleted signals a repeated completion attempt.
	ErrTaskCompleted = errors.New("task completed")
	// ErrRemarksRequired signals completion without remarks.
	ErrRemarksRequired = errors.New("remarks required")
	// ErrNotificationNotFound signals missing notification.
	ErrNotificationNotFound = errors.New("notification not found")
)
