// Package entities contains core business entities.
package entities

import "time"

// NotificationType enumerates notification causes.
type NotificationType string

const (
	// NotifyTaskAssigned is sent to the assignee on task creation.
	NotifyTaskAssigned NotificationType = "TASK_ASSIGNED"
	// NotifyTaskCompleted is sent to the assigner on task completion.
	NotifyTaskCompleted NotificationType = "TASK_COMPLETED"
	// NotifyEventCreated is sent to admins on event creation.
	NotifyEventCreated NotificationType = "EVENT_CREATED"
	// NotifyTeamCreated is sent to members on team creation.
	NotifyTeamCreated NotificationType = "TEAM_CREATED"
)

// Notification is a polled, per-user message record.
// IsRead flips from false to true exactly once; records are never deleted.
type Notification struct {
	ID        string
	UserID    string
	Message   string
	Type      NotificationType
	IsRead    bool
	CreatedAt time.Time
}
