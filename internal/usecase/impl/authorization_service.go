package impl

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"portal/config"
	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/service"
	"portal/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// Authorization page texts.
const (
	MessageBadRequest        = "不正なリクエストです。"
	MessageForbiddenScope    = "要求されたスコープは許可されていません。"
	ToastAuthRequestNotFound = "認可リクエストの取得に失敗しました。"
	ToastInvalidClient       = "クライアントIDが不正です。"

	errorForbiddenScope = "forbidden_scope"
	authorizationPath   = "/authorization"
)

// authorizationService implements the AuthorizationUsecase interface.
type authorizationService struct {
	authAPI              service.AuthAPI
	resourceAPI          service.ResourceAPI
	sessions             usecase.SessionUsecase
	publicAuthURL        string
	requireScopeSuperset bool
	audit                *auditor
	logger               *slog.Logger
}

// AuthorizationServiceParams holds dependencies for AuthorizationService, injected by Fx.
type AuthorizationServiceParams struct {
	fx.In

	AuthAPI     service.AuthAPI
	ResourceAPI service.ResourceAPI
	Sessions    usecase.SessionUsecase
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAuthorizationService is the constructor for authorizationService.
func NewAuthorizationService(params AuthorizationServiceParams) usecase.AuthorizationUsecase {
	return &authorizationService{
		authAPI:              params.AuthAPI,
		resourceAPI:          params.ResourceAPI,
		sessions:             params.Sessions,
		publicAuthURL:        strings.TrimRight(params.Config.AuthAPI.PublicURL, "/"),
		requireScopeSuperset: params.Config.Consent.RequireScopeSuperset,
		audit:                newAuditor(params.Publisher, params.Logger),
		logger:               params.Logger,
	}
}

func (srv *authorizationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Resolve walks the authorization decision sequence. Each step short-circuits to a terminal outcome.
func (srv *authorizationService) Resolve(ctx context.Context, input *usecase.AuthorizeInput) (*usecase.AuthorizeOutcome, error) {
	// 1. Upstream error
	if input.Error != "" {
		return &usecase.AuthorizeOutcome{
			Kind:    usecase.AuthorizeRenderError,
			Message: authorizationErrorMessage(input.Error),
		}, nil
	}

	// 2. Request id
	if input.AuthRequestID == "" {
		return badRequest(""), nil
	}

	if input.Session == nil {
		return srv.redirectSignIn(input), nil
	}

	// 3. Authorization request
	request, err := srv.authAPI.GetAuthRequest(ctx, input.AuthRequestID)
	if err != nil {
		srv.log(ctx).Warn("Failed to fetch authorization request",
			slog.String("auth_request_id", input.AuthRequestID),
			slog.Any("error", err),
		)

		return badRequest(ToastAuthRequestNotFound), nil
	}

	// 4 and 6 are independent lookups, both resolved before branching.
	var (
		application *entity.Application
		user        *entity.User
		consents    []*entity.Consent
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		application, err = srv.resourceAPI.GetApplication(gctx, request.ClientID)

		return err
	})
	g.Go(func() error {
		found, err := srv.authAPI.ListConsents(gctx, &service.ConsentQuery{
			UserID:        input.Session.UserID,
			ApplicationID: request.ClientID,
			Scope:         request.Scope,
		})
		if err != nil {
			// no prior consent; the user can still consent by hand
			srv.log(ctx).Warn("Consent lookup failed", slog.Any("error", err))

			return nil
		}
		consents = found

		return nil
	})
	g.Go(func() error {
		found, err := srv.resourceAPI.GetUser(gctx, input.Session.UserID)
		if err != nil {
			srv.log(ctx).Debug("User lookup for consent card failed", slog.Any("error", err))

			return nil
		}
		user = found

		return nil
	})

	if err := g.Wait(); err != nil {
		srv.log(ctx).Warn("Failed to fetch application",
			slog.String("client_id", request.ClientID),
			slog.Any("error", err),
		)

		return badRequest(ToastInvalidClient), nil
	}

	// 5. Session JWT double-check
	if !srv.sessions.IsValidSessionJWT(ctx, input.SessionJWT) {
		return srv.redirectSignIn(input), nil
	}

	// 7. Silent completion
	if srv.hasConsent(consents, request) && request.AllowsSilentConsent() {
		return srv.autoConsent(ctx, input, request)
	}

	// 8. Explicit consent
	return &usecase.AuthorizeOutcome{
		Kind: usecase.AuthorizeRenderConsent,
		Consent: &usecase.ConsentView{
			Application:   application,
			User:          user,
			UserID:        input.Session.UserID,
			SessionJWT:    input.SessionJWT,
			AuthRequestID: input.AuthRequestID,
			RedirectURI:   request.RedirectURI,
			Scope:         request.Scope,
			Scopes:        entity.Scopes(request.Scope),
			State:         request.State,
			Action:        srv.publicAuthURL + authorizationPath,
		},
	}, nil
}

func (srv *authorizationService) autoConsent(ctx context.Context, input *usecase.AuthorizeInput, request *entity.AuthorizationRequest) (*usecase.AuthorizeOutcome, error) {
	err := srv.authAPI.ConfirmConsent(ctx, &service.ConsentConfirmation{
		AuthRequestID: input.AuthRequestID,
		UserID:        input.Session.UserID,
		ApplicationID: request.ClientID,
		Scope:         request.Scope,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to confirm consent for authorization request")
	}

	srv.audit.record(ctx, entity.EventConsentAutoCompleted, input.Session.UserID, map[string]string{
		"auth_request_id": input.AuthRequestID,
		"application_id":  request.ClientID,
		"scope":           request.Scope,
	})

	return &usecase.AuthorizeOutcome{
		Kind:         usecase.AuthorizeRedirect,
		RedirectMode: usecase.RedirectPush,
		Location:     srv.publicAuthURL + "/consented?" + url.Values{"authorization_id": {input.AuthRequestID}}.Encode(),
	}, nil
}

// hasConsent matches stored consents on application id. With the superset option the stored
// scope must also cover every requested scope.
func (srv *authorizationService) hasConsent(consents []*entity.Consent, request *entity.AuthorizationRequest) bool {
	for _, consent := range consents {
		if consent == nil || consent.ApplicationID != request.ClientID {
			continue
		}
		if srv.requireScopeSuperset && !consent.Covers(request.Scope) {
			continue
		}

		return true
	}

	return false
}

func (srv *authorizationService) redirectSignIn(input *usecase.AuthorizeInput) *usecase.AuthorizeOutcome {
	target := authorizationPath
	if input.RawQuery != "" {
		target += "?" + input.RawQuery
	}

	return &usecase.AuthorizeOutcome{
		Kind:         usecase.AuthorizeRedirectSignIn,
		RedirectMode: usecase.RedirectPush,
		Location:     usecase.SignInLocation(target),
	}
}

// RevokeConsent deletes a consent after checking it belongs to the session user.
func (srv *authorizationService) RevokeConsent(ctx context.Context, session *entity.Session, consentID string) error {
	if session == nil {
		return domainerrors.ErrUnauthenticated
	}

	consents, err := srv.authAPI.ListConsents(ctx, &service.ConsentQuery{UserID: session.UserID})
	if err != nil {
		return errors.Wrap(err, "failed to list consents")
	}

	var owned *entity.Consent
	for _, consent := range consents {
		if consent != nil && consent.ID == consentID {
			owned = consent

			break
		}
	}
	if owned == nil {
		return errors.Wrapf(domainerrors.ErrForbidden, "consent %s is not owned by the session user", consentID)
	}

	if err := srv.authAPI.DeleteConsent(ctx, consentID); err != nil {
		return errors.Wrap(err, "failed to delete consent")
	}

	srv.audit.record(ctx, entity.EventConsentRevoked, session.UserID, map[string]string{
		"consent_id":     consentID,
		"application_id": owned.ApplicationID,
	})

	return nil
}

// authorizationErrorMessage localizes known upstream error codes and passes anything else through.
func authorizationErrorMessage(code string) string {
	if code == errorForbiddenScope {
		return MessageForbiddenScope
	}

	return code
}

func badRequest(toast string) *usecase.AuthorizeOutcome {
	return &usecase.AuthorizeOutcome{
		Kind:    usecase.AuthorizeRenderBadRequest,
		Message: MessageBadRequest,
		Toast:   toast,
	}
}
