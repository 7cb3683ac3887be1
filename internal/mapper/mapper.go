// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"github.com/niteshvshukla2026-sudo/event-task-management/internal/api"
	"github.com/niteshvshukla2026-sudo/event-task-management/internal/entities"
)

// ToAPIUser maps entities.User to transport model. The password hash is dropped.
func ToAPIUser(u entities.User) api.User {
	return api.User{
		ID:        u.ID,
		Name:      u.Name,
		Mobile:    u.Mobile,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

// ToAPIUserList maps a slice of entities.User to transport slice.
func ToAPIUserList(list []entities.User) []api.User {
	res := make([]api.User, 0, len(list))
	for _, u := range list {
		res = append(res, ToAPIUser(u))
	}
	return res
}

// ToAPIEvent maps entities.Event to transport model.
func ToAPIEvent(e entities.Event) api.Event {
	return api.Event{
		ID:          e.ID,
		Title:       e.Title,
		Venue:       e.Venue,
		Description: e.Description,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
	}
}

// ToAPIEventList maps a slice of entities.Event to transport slice.
func ToAPIEventList(list []entities.Event) []api.Event {
	res := make([]api.Event, 0, len(list))
	for _, e := range list {
		res = append(res, ToAPIEvent(e))
	}
	return res
}

// ToAPITeam maps entities.EventTeam to transport model.
func ToAPITeam(t entities.EventTeam) api.Team {
	members := make([]string, len(t.MemberIDs))
	copy(members, t.MemberIDs)
	return api.Team{
		ID:        t.ID,
		EventID:   t.EventID,
		Members:   members,
		CreatedAt: t.CreatedAt,
	}
}

// ToAPITeamList maps a slice of entities.EventTeam to transport slice.
func ToAPITeamList(list []entities.EventTeam) []api.Team {
	res := make([]api.Team, 0, len(list))
	for _, t := range list {
		res = append(res, ToAPITeam(t))
	}
	return res
}

// ToAPITask maps entities.Task to transport model.
func ToAPITask(t entities.Task) api.Task {
	return api.Task{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		EventID:     t.EventID,
		AssignedTo:  t.AssignedTo,
		AssignedBy:  t.AssignedBy,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt,
	}
}

// ToAPITaskList maps a slice of entities.Task to transport slice.
func ToAPITaskList(list []entities.Task) []api.Task {
	res := make([]api.Task, 0, len(list))
	for _, t := range list {
		res = append(res, ToAPITask(t))
	}
	return res
}

// ToAPINotification maps entities.Notification to transport model.
func ToAPINotification(n entities.Notification) api.Notification {
	return api.Notification{
		ID:        n.ID,
		UserID:    n.UserID,
		Message:   n.Message,
		Type:      string(n.Type),
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

// ToAPINotificationList maps a slice of entities.Notification to transport slice.
func ToAPINotificationList(list []entities.Notification) []api.Notification {
	res := make([]api.Notification, 0, len(list))
	for _, n := range list {
		res = append(res, ToAPINotification(n))
	}
	return res
}
