package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/entity"
	"portal/internal/domain/service"

	"github.com/google/uuid"
)

// auditor publishes audit events best-effort. A failed publish is logged and never changes the flow.
type auditor struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

func newAuditor(publisher service.EventPublisher, logger *slog.Logger) *auditor {
	return &auditor{publisher: publisher, logger: logger}
}

func (a *auditor) record(ctx context.Context, eventType entity.AuthEventType, userID string, attributes map[string]string) {
	a.publish(ctx, &entity.AuthEvent{Type: eventType, UserID: userID, Attributes: attributes})
}

// recordSubject is for events raised before a user id is known. subject is the sign-in name.
func (a *auditor) recordSubject(ctx context.Context, eventType entity.AuthEventType, subject string, attributes map[string]string) {
	a.publish(ctx, &entity.AuthEvent{Type: eventType, Subject: subject, Attributes: attributes})
}

func (a *auditor) publish(ctx context.Context, event *entity.AuthEvent) {
	if a == nil || a.publisher == nil {
		return
	}

	event.ID = uuid.New().String()
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	event.OccurredAt = time.Now().UTC()

	if err := a.publisher.PublishAuthEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, a.logger).Warn("Failed to publish audit event",
			slog.String("event_type", string(event.Type)),
			slog.Any("error", err),
		)
	}
}
