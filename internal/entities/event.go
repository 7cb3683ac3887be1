// Package entities contains core business entities.
package entities

import "time"

// Event is a top-level activity owning a team and tasks.
// Events are immutable once created.
type Event struct {
	ID          string
	Title       string
	Venue       string
	Description string
	CreatedBy   string
	CreatedAt   time.Time
}
