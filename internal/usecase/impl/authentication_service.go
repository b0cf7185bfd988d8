package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/service"
	"portal/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authenticationService implements the AuthenticationUsecase interface.
type authenticationService struct {
	authAPI  service.AuthAPI
	sessions usecase.SessionUsecase
	audit    *auditor
	logger   *slog.Logger
}

// AuthenticationServiceParams holds dependencies for AuthenticationService, injected by Fx.
type AuthenticationServiceParams struct {
	fx.In

	AuthAPI   service.AuthAPI
	Sessions  usecase.SessionUsecase
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewAuthenticationService is the constructor for authenticationService.
func NewAuthenticationService(params AuthenticationServiceParams) usecase.AuthenticationUsecase {
	return &authenticationService{
		authAPI:  params.AuthAPI,
		sessions: params.Sessions,
		audit:    newAuditor(params.Publisher, params.Logger),
		logger:   params.Logger,
	}
}

func (srv *authenticationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Authenticate checks username and password, or username and TOTP code when no password is given.
func (srv *authenticationService) Authenticate(ctx context.Context, input *usecase.AuthenticateInput) (*entity.AuthenticationResult, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return failedResult(input.Username, input.Remember, domainerrors.CodeInvalidInput), nil
	}

	credentialType := entity.CredentialPassword
	if input.Password == "" {
		credentialType = entity.CredentialTOTP
	}

	resp, err := srv.authAPI.Authenticate(ctx, &entity.Credentials{
		Type:      credentialType,
		Username:  username,
		Password:  input.Password,
		Code:      input.Code,
		IPAddress: input.IPAddress,
		UserAgent: input.UserAgent,
		Remember:  input.Remember,
	})
	if err != nil {
		return srv.failed(ctx, username, input.Remember, err), nil
	}

	return srv.fromResponse(ctx, resp, username, input.Remember), nil
}

// CompleteMfa submits the second factor for the pending sign-in. Without a pending username the
// pending cookies have expired and the user has to start over.
func (srv *authenticationService) CompleteMfa(ctx context.Context, input *usecase.MfaInput) (*entity.AuthenticationResult, error) {
	if input.PendingUsername == "" {
		return failedResult("", false, domainerrors.CodeMfaExpired), nil
	}
	if strings.TrimSpace(input.Code) == "" {
		return failedResult(input.PendingUsername, input.PendingRemember, domainerrors.CodeInvalidInput), nil
	}

	resp, err := srv.authAPI.Authenticate(ctx, &entity.Credentials{
		Type:      entity.CredentialTOTP,
		Username:  input.PendingUsername,
		Code:      strings.TrimSpace(input.Code),
		IPAddress: input.IPAddress,
		UserAgent: input.UserAgent,
		Remember:  input.PendingRemember,
	})
	if err != nil {
		return srv.failed(ctx, input.PendingUsername, input.PendingRemember, err), nil
	}

	return srv.fromResponse(ctx, resp, input.PendingUsername, input.PendingRemember), nil
}

// SignOut revokes the session behind token. Anonymous callers are a no-op.
func (srv *authenticationService) SignOut(ctx context.Context, token string) error {
	session, err := srv.sessions.GetCurrent(ctx, token)
	if err != nil {
		return errors.Wrap(err, "failed to resolve session")
	}
	if session == nil {
		return nil
	}

	if err := srv.sessions.DeleteByID(ctx, session.ID); err != nil {
		return err
	}

	srv.audit.record(ctx, entity.EventSessionRevoked, session.UserID, map[string]string{
		"session_id": session.ID,
		"reason":     "sign_out",
	})

	return nil
}

func (srv *authenticationService) fromResponse(ctx context.Context, resp *entity.AuthenticationResponse, username string, remember bool) *entity.AuthenticationResult {
	switch {
	case resp.RequireMfa:
		srv.audit.recordSubject(ctx, entity.EventMfaPending, username, map[string]string{"mfa_type": resp.MfaType})

		return &entity.AuthenticationResult{
			State:    entity.SignInMfaPending,
			MfaType:  resp.MfaType,
			Username: username,
			Remember: remember,
		}
	case resp.SessionJWT != "":
		attributes := map[string]string{}
		if sessionID, ok := sessionIDFromToken(resp.SessionJWT); ok {
			attributes["session_id"] = sessionID
		}
		srv.audit.recordSubject(ctx, entity.EventSignedIn, username, attributes)

		return &entity.AuthenticationResult{
			State:      entity.SignInAuthenticated,
			SessionJWT: resp.SessionJWT,
			Username:   username,
			Remember:   remember,
		}
	default:
		srv.log(ctx).Error("Auth API accepted credentials without issuing a session")

		return failedResult(username, remember, domainerrors.CodeAuthServer)
	}
}

func (srv *authenticationService) failed(ctx context.Context, username string, remember bool, err error) *entity.AuthenticationResult {
	code := domainerrors.CodeUnexpected

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if parsed, ok := domainerrors.ParseCode(appErr.ErrorCode()); ok {
			code = parsed
		}
	}

	level := slog.LevelInfo
	if code.Category() == domainerrors.CategoryAuthServer || code.Category() == domainerrors.CategoryFrontend {
		level = slog.LevelError
	}
	srv.log(ctx).Log(ctx, level, "Sign-in failed", slog.String("code", string(code)), slog.Any("error", err))

	return failedResult(username, remember, code)
}

func failedResult(username string, remember bool, code domainerrors.Code) *entity.AuthenticationResult {
	return &entity.AuthenticationResult{
		State:     entity.SignInFailed,
		Username:  username,
		Remember:  remember,
		ErrorCode: string(code),
	}
}

// sessionIDFromToken reads the session id from a token the Auth API just issued. The token is
// not verified here, the id only labels the audit event.
func sessionIDFromToken(token string) (string, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "", false
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return "", false
	}

	return (&entity.SessionClaims{Subject: subject}).SessionID()
}
