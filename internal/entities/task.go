// Package entities contains core business entities.
package entities

import "time"

// TaskStatus enumerates task lifecycle states.
type TaskStatus string

const (
	// StatusPending marks a task as not yet done.
	StatusPending TaskStatus = "PENDING"
	// StatusCompleted marks a task as done. Terminal.
	StatusCompleted TaskStatus = "COMPLETED"
)

// Task is a unit of work assigned to a team member within an event.
type Task struct {
	ID          string
	Title       string
	Description string
	EventID     string
	AssignedTo  string
	AssignedBy  string
	Status      TaskStatus
	CreatedAt   time.Time
}
