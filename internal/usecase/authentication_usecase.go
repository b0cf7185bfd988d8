package usecase

import (
	"context"

	"portal/internal/domain/entity"
)

// AuthenticateInput is a sign-in form submission.
type AuthenticateInput struct {
	Username  string
	Password  string
	Code      string
	Remember  bool
	IPAddress string
	UserAgent string
}

// MfaInput is a second factor submission. Pending values come from the short-lived pending cookies.
type MfaInput struct {
	PendingUsername string
	PendingRemember bool
	Code            string
	IPAddress       string
	UserAgent       string
}

// AuthenticationUsecase drives the sign-in state machine.
type AuthenticationUsecase interface {
	// Authenticate moves Anonymous to Authenticated, MfaPending or Failed.
	Authenticate(ctx context.Context, input *AuthenticateInput) (*entity.AuthenticationResult, error)
	// CompleteMfa moves MfaPending to Authenticated or Failed.
	CompleteMfa(ctx context.Context, input *MfaInput) (*entity.AuthenticationResult, error)
	// SignOut revokes the session behind the token, if any.
	SignOut(ctx context.Context, token string) error
}
