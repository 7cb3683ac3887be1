package usecase

import (
	"context"
	"time"

	"github.com/niteshvshukla2026-sudo/event-task-management/internal/auth"
	"github.com/niteshvshukla2026-sudo/event-task-management/internal/repository"
	"github.com/niteshvshukla2026-sudo/event-task-management/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	AuthUsecaseInterface
	UserUsecaseInterface
	EventUsecaseInterface
	TeamUsecaseInterface
	TaskUsecaseInterface
	NotificationUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, repo repository.Repository, authm *auth.Manager, timeout time.Duration) InterfaceUsecase {
	return domain.New(log, ctx, repo, authm, timeout)
}
