package usecase

import (
	"context"

	"portal/internal/domain/entity"
)

// AuthorizeKind tags the terminal outcome of the authorization page.
type AuthorizeKind int

const (
	AuthorizeRenderError AuthorizeKind = iota
	AuthorizeRenderBadRequest
	AuthorizeRedirectSignIn
	AuthorizeRedirect
	AuthorizeRenderConsent
)

// RedirectMode controls browser history on redirects.
type RedirectMode int

const (
	// RedirectPush moves forward in a flow.
	RedirectPush RedirectMode = iota
	// RedirectReplace returns to the same form without a resubmittable history entry.
	RedirectReplace
)

// AuthorizeInput is an authorization page request.
type AuthorizeInput struct {
	AuthRequestID string
	Error         string
	// RawQuery is the original query string, replayed after sign-in.
	RawQuery   string
	Session    *entity.Session
	SessionJWT string
}

// ConsentView is the data needed to render the explicit consent card.
type ConsentView struct {
	Application   *entity.Application
	User          *entity.User
	UserID        string
	SessionJWT    string
	AuthRequestID string
	RedirectURI   string
	Scope         string
	Scopes        []string
	State         string
	// Action is the Auth API endpoint the consent form submits to.
	Action string
}

// AuthorizeOutcome is a tagged result. Only the fields of its Kind are set.
type AuthorizeOutcome struct {
	Kind         AuthorizeKind
	RedirectMode RedirectMode
	Location     string
	Message      string
	Toast        string
	Consent      *ConsentView
}

// AuthorizationUsecase resolves OAuth authorization requests into consent decisions.
type AuthorizationUsecase interface {
	// Resolve returns an error only when confirming an automatic consent fails.
	Resolve(ctx context.Context, input *AuthorizeInput) (*AuthorizeOutcome, error)
	// RevokeConsent deletes a consent owned by the session user.
	RevokeConsent(ctx context.Context, session *entity.Session, consentID string) error
}
