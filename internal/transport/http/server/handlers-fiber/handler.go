// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"github.com/niteshvshukla2026-sudo/event-task-management/internal/usecase"
	"go.uber.org/zap"
)

// Handler serves the HTTP API using the usecase layer.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP handler set with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  usecase,
	}
}
