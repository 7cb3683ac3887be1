package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/niteshvshukla2026-sudo/event-task-management/internal/entities"
)

const (
	insertTaskQuery = `
INSERT INTO tasks(title, description, event_id, assigned_to, assigned_by, status)
VALUES ($1, $2, $3, $4, $5, 'PENDING')
RETURNING id, created_at`
	selectTaskQuery = `
SELECT id, title, description, event_id, assigned_to, assigned_by, status, created_at
FROM tasks WHERE id=$1`
	selectTaskForUpdateQuery = `
SELECT id, title, description, event_id, assigned_to, assigned_by, status, created_at
FROM tasks WHERE id=$1 FOR UPDATE`
	completeTaskQuery = `UPDATE tasks SET status='COMPLETED', description=$2 WHERE id=$1`
	selectTasksQuery  = `
SELECT id, title, description, event_id, assigned_to, assigned_by, status, created_at
FROM tasks ORDER BY created_at`
	selectTasksByAssigneeQuery = `
SELECT id, title, description, event_id, assigned_to, assigned_by, status, created_at
FROM tasks WHERE assigned_to=$1 ORDER BY created_at DESC`
)

// CreateTask inserts a task in PENDING state.
func (p *Postgres) CreateTask(ctx context.Context, task entities.Task) (*entities.Task, error) {
	err := p.db.QueryRow(ctx, insertTaskQuery,
		task.Title, task.Description, task.EventID, task.AssignedTo, task.AssignedBy).
		Scan(&task.ID, &task.CreatedAt)
	if err != nil {
		p.log.Errorw("failed to insert task", "error", err, "event_id", task.EventID)
		return nil, fmt.Errorf("insert task: %w", err)
	}

	task.Status = entities.StatusPending
	p.log.Infow("task created", "task_id", task.ID, "assigned_to", task.AssignedTo, "assigned_by", task.AssignedBy)
	return &task, nil
}

// GetTask fetches a task by id.
func (p *Postgres) GetTask(ctx context.Context, taskID string) (*entities.Task, error) {
	var t entities.Task
	var status string
	err := p.db.QueryRow(ctx, selectTaskQuery, taskID).
		Scan(&t.ID, &t.Title, &t.Description, &t.EventID, &t.AssignedTo, &t.AssignedBy, &status, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidUUID(err) {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	t.Status = entities.TaskStatus(status)
	return &t, nil
}

// CompleteTask flips status PENDING -> COMPLETED and overwrites the
// description with remarks. The row lock makes exactly one of two
// concurrent completion attempts win; the loser gets ErrTaskCompleted.
func (p *Postgres) CompleteTask(ctx context.Context, taskID, remarks string) (*entities.Task, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var t entities.Task
	var status string
	if err := tx.QueryRow(ctx, selectTaskForUpdateQuery, taskID).
		Scan(&t.ID, &t.Title, &t.Description, &t.EventID, &t.AssignedTo, &t.AssignedBy, &status, &t.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidUUID(err) {
			return nil, entities.ErrTaskNotFound
		}
		p.log.Errorw("failed to select task for update", "error", err, "task_id", taskID)
		return nil, fmt.Errorf("get task: %w", err)
	}
	t.Status = entities.TaskStatus(status)

	if t.Status == entities.StatusCompleted {
		return nil, entities.ErrTaskCompleted
	}

	if _, err := tx.Exec(ctx, completeTaskQuery, taskID, remarks); err != nil {
		p.log.Errorw("failed to complete task", "error", err, "task_id", taskID)
		return nil, fmt.Errorf("complete task: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	t.Status = entities.StatusCompleted
	t.Description = remarks
	p.log.Infow("task completed", "task_id", taskID)
	return &t, nil
}

// ListTasks returns all tasks in creation order.
func (p *Postgres) ListTasks(ctx context.Context) ([]entities.Task, error) {
	return p.queryTasks(ctx, selectTasksQuery)
}

// ListTasksByAssignee returns tasks assigned to the user, newest first.
func (p *Postgres) ListTasksByAssignee(ctx context.Context, userID string) ([]entities.Task, error) {
	return p.queryTasks(ctx, selectTasksByAssigneeQuery, userID)
}

func (p *Postgres) queryTasks(ctx context.Context, query string, args ...any) ([]entities.Task, error) {
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]entities.Task, 0)
	for rows.Next() {
		var t entities.Task
		var status string
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.EventID, &t.AssignedTo, &t.AssignedBy, &status, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		t.Status = entities.TaskStatus(status)
		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}

	return tasks, nil
}
