// Package domain contains application usecases orchestrating domain logic by notification.
package domain

import (
	"context"
	"fmt"

	"github.com/niteshvshukla2026-sudo/event-task-management/internal/entities"
)

// notify records a notification for a user. Best-effort: the triggering
// mutation has already committed, so failures are logged, never returned.
// Runs on the base context so a cancelled request cannot drop the write.
func (u *Usecase) notify(userID string, typ entities.NotificationType, message string) {
	ctx, cancel := withTimeout(u.ctx, u.timeout)
	defer cancel()

	if _, err := u.repo.CreateNotification(ctx, entities.Notification{
		UserID:  userID,
		Message: message,
		Type:    typ,
	}); err != nil {
		u.log.Errorw("failed to create notification", "error", err, "user_id", userID, "type", typ)
	}
}

// Notifications returns the caller's feed, newest first. Clients poll this.
func (u *Usecase) Notifications(ctx context.Context, caller entities.AuthContext) ([]entities.Notification, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListNotificationsForUser(ctx, caller.UserID)
}

// MarkNotificationRead flips is_read for one of the caller's own
// notifications. Marking another user's notification is Forbidden.
func (u *Usecase) MarkNotificationRead(ctx context.Context, caller entities.AuthContext, notificationID string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if notificationID == "" {
		return fmt.Errorf("%w: notification id is required", entities.ErrInvalidArgument)
	}

	note, err := u.repo.GetNotification(ctx, notificationID)
	if err != nil {
		return err
	}
	if note.UserID != caller.UserID {
		return entities.ErrForbidden
	}
	if note.IsRead {
		return nil
	}

	return u.repo.MarkNotificationRead(ctx, notificationID)
}
