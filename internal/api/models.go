// Package api defines the transport request/response models.
package api

import "time"

// ErrorCode identifies the failure kind in error responses.
type ErrorCode string

const (
	VALIDATIONFAILED    ErrorCode = "VALIDATION_FAILED"
	UNAUTHORIZED        ErrorCode = "UNAUTHORIZED"
	FORBIDDEN           ErrorCode = "FORBIDDEN"
	NOTFOUND            ErrorCode = "NOT_FOUND"
	TEAMNOTFOUND        ErrorCode = "TEAM_NOT_FOUND"
	TEAMEXISTS          ErrorCode = "TEAM_EXISTS"
	ASSIGNEENOTINTEAM   ErrorCode = "ASSIGNEE_NOT_IN_TEAM"
	TASKNOTFOUND        ErrorCode = "TASK_NOT_FOUND"
	ALREADYCOMPLETED    ErrorCode = "ALREADY_COMPLETED"
	REMARKSREQUIRED     ErrorCode = "REMARKS_REQUIRED"
	MOBILEEXISTS        ErrorCode = "MOBILE_EXISTS"
	INTERNAL            ErrorCode = "INTERNAL"
)

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error struct {
		Code    ErrorCode `json:"code"`
		Message string    `json:"message"`
	} `json:"error"`
}

// User is the transport representation of an account.
// The password hash never leaves the service.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Mobile    string    `json:"mobile"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
}

// LoginResponse carries the issued token with basic profile fields.
type LoginResponse struct {
	Token  string `json:"token"`
	Role   string `json:"role"`
	Mobile string `json:"mobile"`
	Name   string `json:"name"`
}

// CreateUserRequest is the body of POST /api/users (admin only).
type CreateUserRequest struct {
	Name     string `json:"name"`
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// Event is the transport representation of an event.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Venue       string    `json:"venue"`
	Description string    `json:"description"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateEventRequest is the body of POST /api/events.
type CreateEventRequest struct {
	Title       string `json:"title"`
	Venue       string `json:"venue"`
	Description string `json:"description"`
}

// Team is the transport representation of an event team.
type Team struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	Members   []string  `json:"members"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateTeamRequest is the body of POST /api/teams.
type CreateTeamRequest struct {
	EventID string   `json:"event"`
	Members []string `json:"members"`
}

// Task is the transport representation of a task.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	EventID     string    `json:"event_id"`
	AssignedTo  string    `json:"assigned_to"`
	AssignedBy  string    `json:"assigned_by"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateTaskRequest is the body of POST /api/tasks.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	EventID     string `json:"eventId"`
	AssignedTo  string `json:"assignedTo"`
}

// CompleteTaskRequest is the body of PATCH /api/tasks/:id/status.
type CompleteTaskRequest struct {
	Remarks string `json:"remarks"`
}

// Notification is the transport representation of a feed entry.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
