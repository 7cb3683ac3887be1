// Package domain contains application usecases orchestrating domain logic by task.
package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/niteshvshukla2026-sudo/event-task-management/internal/entities"
)

// CreateTask authorizes the assignment against the event's team and
// persists a PENDING task. AssignedBy is always the caller.
func (u *Usecase) CreateTask(ctx context.Context, caller entities.AuthContext, title, description, eventID, assignedTo string) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if title == "" || description == "" || eventID == "" || assignedTo == "" {
		return nil, fmt.Errorf("%w: missing required fields", entities.ErrInvalidArgument)
	}

	team, err := u.repo.GetTeamByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if err := authorizeAssignment(caller, *team, assignedTo); err != nil {
		u.log.Infow("task assignment rejected",
			"event_id", eventID, "caller_id", caller.UserID, "assigned_to", assignedTo, "reason", err)
		return nil, err
	}

	task, err := u.repo.CreateTask(ctx, entities.Task{
		Title:       title,
		Description: description,
		EventID:     eventID,
		AssignedTo:  assignedTo,
		AssignedBy:  caller.UserID,
	})
	if err != nil {
		return nil, err
	}

	u.notify(task.AssignedTo, entities.NotifyTaskAssigned, "You have been assigned a new task: "+task.Title)

	u.log.Infow("task created", "task_id", task.ID, "assigned_to", task.AssignedTo, "assigned_by", task.AssignedBy)
	return task, nil
}

// CompleteTask moves a task PENDING -> COMPLETED exactly once. Remarks
// are mandatory and overwrite the description. Only the assignee (or an
// administrator) may complete; on success the assigner is notified.
func (u *Usecase) CompleteTask(ctx context.Context, caller entities.AuthContext, taskID, remarks string) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if taskID == "" {
		return nil, fmt.Errorf("%w: task id is required", entities.ErrInvalidArgument)
	}

	task, err := u.repo.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.Status == entities.StatusCompleted {
		return nil, entities.ErrTaskCompleted
	}
	if task.AssignedTo != caller.UserID && !caller.Role.IsAdmin() {
		return nil, entities.ErrForbidden
	}

	remarks = strings.TrimSpace(remarks)
	if remarks == "" {
		return nil, entities.ErrRemarksRequired
	}

	// The repository re-checks the status under a row lock, so a
	// concurrent completion still yields exactly one winner.
	completed, err := u.repo.CompleteTask(ctx, taskID, remarks)
	if err != nil {
		return nil, err
	}

	completerName := caller.UserID
	if user, err := u.repo.GetUser(ctx, caller.UserID); err == nil {
		completerName = user.Name
	}
	u.notify(completed.AssignedBy, entities.NotifyTaskCompleted,
		fmt.Sprintf("%s completed task: %s", completerName, completed.Title))

	u.log.Infow("task completed", "task_id", taskID, "completed_by", caller.UserID)
	return completed, nil
}

// Tasks returns every task. Admin only.
func (u *Usecase) Tasks(ctx context.Context, caller entities.AuthContext) ([]entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if !caller.Role.IsAdmin() {
		return nil, entities.ErrForbidden
	}
	return u.repo.ListTasks(ctx)
}

// MyTasks returns tasks assigned to the caller, newest first.
func (u *Usecase) MyTasks(ctx context.Context, caller entities.AuthContext) ([]entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListTasksByAssignee(ctx, caller.UserID)
}
