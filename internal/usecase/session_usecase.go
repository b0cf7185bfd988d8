// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"portal/internal/domain/entity"
)

// SessionUsecase resolves the caller's session. Unauthenticated callers resolve to nil, never to an error.
type SessionUsecase interface {
	// GetCurrent resolves the session behind the session_jwt cookie value.
	GetCurrent(ctx context.Context, cookieValue string) (*entity.Session, error)
	GetSessionFromJWT(ctx context.Context, token string) (*entity.Session, error)
	// IsValidSessionJWT checks signature and remote session state without loading the session record.
	IsValidSessionJWT(ctx context.Context, token string) bool
	GetByUserID(ctx context.Context, userID string) ([]*entity.Session, error)
	// DeleteByID revokes a session. Failures are returned.
	DeleteByID(ctx context.Context, id string) error
}
