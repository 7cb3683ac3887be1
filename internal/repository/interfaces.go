// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/niteshvshukla2026-sudo/event-task-management/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// UserInterface exposes user-related operations.
type UserInterface interface {
	CreateUser(ctx context.Context, user entities.User) (*entities.User, error)
	GetUser(ctx context.Context, userID string) (*entities.User, error)
	GetUserByMobile(ctx context.Context, mobile string) (*entities.User, error)
	ListUsersByRole(ctx context.Context, roles ...entities.Role) ([]entities.User, error)
}

// EventInterface exposes event-related operations.
type EventInterface interface {
	CreateEvent(ctx context.Context, event entities.Event) (*entities.Event, error)
	GetEvent(ctx context.Context, eventID string) (*entities.Event, error)
	ListEvents(ctx context.Context) ([]entities.Event, error)
	ListEventsForMember(ctx context.Context, userID string) ([]entities.Event, error)
}

// TeamInterface exposes event-team operations.
type TeamInterface interface {
	CreateTeam(ctx context.Context, eventID string, memberIDs []string) (*entities.EventTeam, error)
	GetTeamByEvent(ctx context.Context, eventID string) (*entities.EventTeam, error)
	ListTeams(ctx context.Context) ([]entities.EventTeam, error)
}

// TaskInterface exposes task operations.
type TaskInterface interface {
	CreateTask(ctx context.Context, task entities.Task) (*entities.Task, error)
	GetTask(ctx context.Context, taskID string) (*entities.Task, error)
	CompleteTask(ctx context.Context, taskID, remarks string) (*entities.Task, error)
	ListTasks(ctx context.Context) ([]entities.Task, error)
	ListTasksByAssignee(ctx context.Context, userID string) ([]entities.Task, error)
}

// NotificationInterface exposes notification operations.
type NotificationInterface interface {
	CreateNotification(ctx context.Context, n entities.Notification) (*entities.Notification, error)
	GetNotification(ctx context.Context, notificationID string) (*entities.Notification, error)
	ListNotificationsForUser(ctx context.Context, userID string) ([]entities.Notification, error)
	MarkNotificationRead(ctx context.Context, notificationID string) error
}
