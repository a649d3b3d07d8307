package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/user-service/internal/events"
)

// AuditService writes an audit log line for auth events.
type AuditService struct {
	logger *zap.Logger
}

// NewAuditService builds the audit subscriber.
func NewAuditService(logger *zap.Logger) *AuditService {
	return &AuditService{logger: logger}
}

// RegisterHandlers subscribes the audit log to auth events.
func (s *AuditService) RegisterHandlers(dispatcher events.Dispatcher) {
	dispatcher.Subscribe(events.EventTypeUserRegistered, s.handle("user registered"))
	dispatcher.Subscribe(events.EventTypeUserLoggedIn, s.handle("user logged in"))
}

func (s *AuditService) handle(message string) events.EventHandler {
	return func(_ context.Context, event events.Event) error {
		s.logger.Info(message,
			zap.Int64("user_id", event.UserID),
			zap.String("username", event.Username),
			zap.Time("occurred_at", event.OccurredAt),
		)
		return nil
	}
}
