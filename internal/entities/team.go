// Package entities contains core business entities.
package entities

import "time"

// EventTeam is the fixed member set allowed to work on an event's tasks.
// At most one team exists per event; membership is fixed at creation.
type EventTeam struct {
	ID        string
	EventID   string
	MemberIDs []string
	CreatedAt time.Time
}

// HasMember reports whether userID belongs to the team.
func (t EventTeam) HasMember(userID string) bool {
	for _, id := range t.MemberIDs {
		if id == userID {
			return true
		}
	}
	return false
}
