package service

import (
	"context"

	"portal/internal/domain/entity"
)

// EventPublisher defines the interface for publishing audit events to a message queue
type EventPublisher interface {
	// PublishAuthEvent publishes an authentication or consent audit event
	PublishAuthEvent(ctx context.Context, event *entity.AuthEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
