// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/entity"
	"portal/internal/domain/service"
	"portal/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	verifier service.TokenVerifier
	authAPI  service.AuthAPI
	logger   *slog.Logger
	now      func() time.Time
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Verifier service.TokenVerifier
	AuthAPI  service.AuthAPI
	Logger   *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		verifier: params.Verifier,
		authAPI:  params.AuthAPI,
		logger:   params.Logger,
		now:      time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCurrent resolves the session from the session_jwt cookie value. A missing cookie is anonymous.
func (srv *sessionService) GetCurrent(ctx context.Context, cookieValue string) (*entity.Session, error) {
	if cookieValue == "" {
		return nil, nil
	}

	return srv.GetSessionFromJWT(ctx, cookieValue)
}

// GetSessionFromJWT verifies the token and loads the session it names.
// Tokens without the SID_ subject are not session tokens and resolve to nil.
func (srv *sessionService) GetSessionFromJWT(ctx context.Context, token string) (*entity.Session, error) {
	result := srv.verifier.Verify(ctx, token)
	if !result.Valid {
		return nil, nil
	}

	sessionID, ok := result.Claims.SessionID()
	if !ok {
		srv.log(ctx).Debug("Verified JWT is not a session token", slog.String("subject", result.Claims.Subject))

		return nil, nil
	}

	session, err := srv.authAPI.GetSession(ctx, sessionID)
	if err != nil {
		srv.log(ctx).Debug("Session lookup failed", slog.String("session_id", sessionID), slog.Any("error", err))

		return nil, nil
	}

	if !session.IsActive(srv.now()) {
		srv.log(ctx).Debug("Session is revoked or expired", slog.String("session_id", sessionID))

		return nil, nil
	}

	return session, nil
}

// IsValidSessionJWT checks the token without loading the session record.
func (srv *sessionService) IsValidSessionJWT(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}

	return srv.verifier.Verify(ctx, token).Valid
}

// GetByUserID lists all sessions of a user.
func (srv *sessionService) GetByUserID(ctx context.Context, userID string) ([]*entity.Session, error) {
	sessions, err := srv.authAPI.ListSessions(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sessions")
	}

	return sessions, nil
}

// DeleteByID revokes a session on the Auth API.
func (srv *sessionService) DeleteByID(ctx context.Context, id string) error {
	if err := srv.authAPI.DeleteSession(ctx, id); err != nil {
		return errors.Wrapf(err, "failed to delete session %s", id)
	}

	srv.log(ctx).Info("Session revoked", slog.String("session_id", id))

	return nil
}
