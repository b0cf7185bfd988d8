package service

import (
	"context"

	"portal/internal/domain/entity"
)

// ConsentQuery filters consents on the Auth API. Empty fields are not sent.
type ConsentQuery struct {
	UserID        string
	ApplicationID string
	Scope         string
}

// ConsentConfirmation identifies the grant recorded when an authorization request is auto-completed.
type ConsentConfirmation struct {
	AuthRequestID string
	UserID        string
	ApplicationID string
	Scope         string
}

// AuthAPI is the internal surface of the Auth API.
type AuthAPI interface {
	// Authenticate checks credentials. Rejections come back as domain errors
	// (ErrInvalidCredentials, ErrAccountLocked, ErrInvalidInput, ErrAuthServer).
	Authenticate(ctx context.Context, credentials *entity.Credentials) (*entity.AuthenticationResponse, error)

	// VerifySession reports whether the session behind jti is still active.
	VerifySession(ctx context.Context, jti string) (bool, error)

	// GetSession returns ErrResourceNotFound for unknown ids.
	GetSession(ctx context.Context, id string) (*entity.Session, error)
	ListSessions(ctx context.Context, userID string) ([]*entity.Session, error)
	DeleteSession(ctx context.Context, id string) error

	GetAuthRequest(ctx context.Context, id string) (*entity.AuthorizationRequest, error)
	ConfirmConsent(ctx context.Context, confirmation *ConsentConfirmation) error

	ListConsents(ctx context.Context, query *ConsentQuery) ([]*entity.Consent, error)
	DeleteConsent(ctx context.Context, id string) error

	// JWKS returns the raw key set document published by the issuer.
	JWKS(ctx context.Context) ([]byte, error)
}
