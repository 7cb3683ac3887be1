package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/niteshvshukla2026-sudo/event-task-management/internal/entities"
)

const (
	insertNotificationQuery = `
INSERT INTO notifications(user_id, message, type)
VALUES ($1, $2, $3)
RETURNING id, is_read, created_at`
	selectNotificationQuery = `
SELECT id, user_id, message, type, is_read, created_at
FROM notifications WHERE id=$1`
	selectUserNotificationsQuery = `
SELECT id, user_id, message, type, is_read, created_at
FROM notifications WHERE user_id=$1 ORDER BY created_at DESC`
	markNotificationReadQuery = `UPDATE notifications SET is_read=true WHERE id=$1`
)

// CreateNotification inserts an unread notification record.
func (p *Postgres) CreateNotification(ctx context.Context, n entities.Notification) (*entities.Notification, error) {
	err := p.db.QueryRow(ctx, insertNotificationQuery, n.UserID, n.Message, string(n.Type)).
		Scan(&n.ID, &n.IsRead, &n.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert notification: %w", err)
	}
	return &n, nil
}

// GetNotification fetches a notification by id.
func (p *Postgres) GetNotification(ctx context.Context, notificationID string) (*entities.Notification, error) {
	var n entities.Notification
	var typ string
	err := p.db.QueryRow(ctx, selectNotificationQuery, notificationID).
		Scan(&n.ID, &n.UserID, &n.Message, &typ, &n.IsRead, &n.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidUUID(err) {
			return nil, entities.ErrNotificationNotFound
		}
		return nil, fmt.Errorf("get notification: %w", err)
	}
	n.Type = entities.NotificationType(typ)
	return &n, nil
}

// ListNotificationsForUser returns the user's notifications, newest first.
func (p *Postgres) ListNotificationsForUser(ctx context.Context, userID string) ([]entities.Notification, error) {
	rows, err := p.db.Query(ctx, selectUserNotificationsQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	notes := make([]entities.Notification, 0)
	for rows.Next() {
		var n entities.Notification
		var typ string
		if err := rows.Scan(&n.ID, &n.UserID, &n.Message, &typ, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		n.Type = entities.NotificationType(typ)
		notes = append(notes, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notifications: %w", err)
	}

	return notes, nil
}

// MarkNotificationRead flips is_read to true. Already-read rows are a no-op.
func (p *Postgres) MarkNotificationRead(ctx context.Context, notificationID string) error {
	tag, err := p.db.Exec(ctx, markNotificationReadQuery, notificationID)
	if err != nil {
		if isInvalidUUID(err) {
			return entities.ErrNotificationNotFound
		}
		return fmt.Errorf("mark notification read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrNotificationNotFound
	}
	return nil
}
