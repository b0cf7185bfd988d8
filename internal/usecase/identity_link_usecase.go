package usecase

import (
	"context"

	"portal/internal/domain/entity"

	"github.com/pkg/errors"
)

// Link statuses appended to redirect targets.
const (
	LinkStatusSuccess = "success"
	LinkStatusWarning = "warning"
	LinkStatusError   = "error"
)

// ErrLinkingDisabled is returned by StartLink when no provider client is configured.
var ErrLinkingDisabled = errors.New("identity linking is not configured")

// CallbackInput is a provider callback request.
type CallbackInput struct {
	Code       string
	State      string
	Error      string
	SessionJWT string
}

// LinkOutcome is where the browser goes after the callback.
type LinkOutcome struct {
	Location string
	Status   string
}

// IdentityLinkUsecase links external provider identities to portal users.
type IdentityLinkUsecase interface {
	// StartLink returns the provider authorization URL carrying the encoded state.
	StartLink(ctx context.Context, state entity.LinkState) (string, error)
	// HandleCallback never fails: every branch ends in a redirect location.
	HandleCallback(ctx context.Context, input *CallbackInput) *LinkOutcome
}
