package usecase

import (
	"context"

	"github.com/niteshvshukla2026-sudo/event-task-management/internal/entities"
)

// AuthUsecaseInterface abstracts registration and login.
type AuthUsecaseInterface interface {
	Register(ctx context.Context, name, mobile, password string, role entities.Role) (*entities.User, error)
	Login(ctx context.Context, mobile, password string) (string, *entities.User, error)
}

// UserUsecaseInterface abstracts user management operations.
type UserUsecaseInterface interface {
	CreateUser(ctx context.Context, caller entities.AuthContext, name, mobile, password string, role entities.Role) (*entities.User, error)
	Users(ctx context.Context, caller entities.AuthContext) ([]entities.User, error)
	Me(ctx context.Context, caller entities.AuthContext) (*entities.User, error)
}

// EventUsecaseInterface abstracts event operations.
type EventUsecaseInterface interface {
	CreateEvent(ctx context.Context, caller entities.AuthContext, title, venue, description string) (*entities.Event, error)
	Events(ctx context.Context) ([]entities.Event, error)
	MyEvents(ctx context.Context, caller entities.AuthContext) ([]entities.Event, error)
}

// TeamUsecaseInterface abstracts event-team operations.
type TeamUsecaseInterface interface {
	CreateTeam(ctx context.Context, caller entities.AuthContext, eventID string, memberIDs []string) (*entities.EventTeam, error)
	Teams(ctx context.Context) ([]entities.EventTeam, error)
	TeamMembers(ctx context.Context, eventID string) ([]entities.User, error)
}

// TaskUsecaseInterface abstracts task assignment and lifecycle operations.
type TaskUsecaseInterface interface {
	CreateTask(ctx context.Context, caller entities.AuthContext, title, description, eventID, assignedTo string) (*entities.Task, error)
	CompleteTask(ctx context.Context, caller entities.AuthContext, taskID, remarks string) (*entities.Task, error)
	Tasks(ctx context.Context, caller entities.AuthContext) ([]entities.Task, error)
	MyTasks(ctx context.Context, caller entities.AuthContext) ([]entities.Task, error)
}

// NotificationUsecaseInterface abstracts the polled notification feed.
type NotificationUsecaseInterface interface {
	Notifications(ctx context.Context, caller entities.AuthContext) ([]entities.Notification, error)
	MarkNotificationRead(ctx context.Context, caller entities.AuthContext, notificationID string) error
}
