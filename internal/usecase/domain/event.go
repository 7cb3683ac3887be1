// Package domain contains application usecases orchestrating domain logic by event.
package domain

import (
	"context"
	"fmt"

	"github.com/niteshvshukla2026-sudo/event-task-management/internal/entities"
)

// CreateEvent creates an event and notifies every administrator.
func (u *Usecase) CreateEvent(ctx context.Context, caller entities.AuthContext, title, venue, description string) (*entities.Event, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if !caller.Role.IsAdmin() {
		return nil, entities.ErrForbidden
	}
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", entities.ErrInvalidArgument)
	}

	event, err := u.repo.CreateEvent(ctx, entities.Event{
		Title:       title,
		Venue:       venue,
		Description: description,
		CreatedBy:   caller.UserID,
	})
	if err != nil {
		return nil, err
	}

	admins, err := u.repo.ListUsersByRole(ctx, entities.RoleAdmin, entities.RoleSuperAdmin)
	if err != nil {
		u.log.Errorw("failed to list admins for event notification", "error", err, "event_id", event.ID)
		return event, nil
	}
	for _, admin := range admins {
		u.notify(admin.ID, entities.NotifyEventCreated, "New event created: "+event.Title)
	}

	return event, nil
}

// Events returns all events.
func (u *Usecase) Events(ctx context.Context) ([]entities.Event, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListEvents(ctx)
}

// MyEvents returns events whose team contains the caller.
func (u *Usecase) MyEvents(ctx context.Context, caller entities.AuthContext) ([]entities.Event, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListEventsForMember(ctx, caller.UserID)
}
