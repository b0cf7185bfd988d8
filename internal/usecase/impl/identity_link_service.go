package impl

import (
	"context"
	"log/slog"
	"net/url"

	"portal/config"
	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/service"
	"portal/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	settingsPath    = "/dashboard/settings"
	signupPath      = "/signup"
	emailVerifyPath = "/email-verify"
)

// identityLinkService implements the IdentityLinkUsecase interface.
type identityLinkService struct {
	provider    service.IdentityProvider
	resourceAPI service.ResourceAPI
	sessions    usecase.SessionUsecase
	enabled     bool
	audit       *auditor
	logger      *slog.Logger
}

// IdentityLinkServiceParams holds dependencies for IdentityLinkService, injected by Fx.
type IdentityLinkServiceParams struct {
	fx.In

	Provider    service.IdentityProvider
	ResourceAPI service.ResourceAPI
	Sessions    usecase.SessionUsecase
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewIdentityLinkService is the constructor for identityLinkService.
func NewIdentityLinkService(params IdentityLinkServiceParams) usecase.IdentityLinkUsecase {
	return &identityLinkService{
		provider:    params.Provider,
		resourceAPI: params.ResourceAPI,
		sessions:    params.Sessions,
		enabled:     params.Config.DiscordEnabled(),
		audit:       newAuditor(params.Publisher, params.Logger),
		logger:      params.Logger,
	}
}

func (srv *identityLinkService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// StartLink encodes the state and returns the provider authorization URL.
func (srv *identityLinkService) StartLink(ctx context.Context, state entity.LinkState) (string, error) {
	if !srv.enabled || srv.provider == nil {
		return "", usecase.ErrLinkingDisabled
	}

	encoded, err := state.Encode()
	if err != nil {
		return "", err
	}

	srv.log(ctx).Debug("Starting identity link",
		slog.String("provider", srv.provider.Name()),
		slog.String("from", string(state.From)),
	)

	return srv.provider.AuthCodeURL(encoded), nil
}

// HandleCallback finishes the provider round trip. Every branch ends in a redirect.
func (srv *identityLinkService) HandleCallback(ctx context.Context, input *usecase.CallbackInput) *usecase.LinkOutcome {
	var state *entity.LinkState
	if input.State != "" {
		decoded, err := entity.DecodeLinkState(input.State)
		if err != nil {
			srv.log(ctx).Warn("Failed to parse state", slog.Any("error", err))
		} else {
			state = decoded
		}
	}

	if input.Error != "" {
		srv.log(ctx).Warn("Provider returned an error", slog.String("error", input.Error))

		return linkError(state)
	}
	if input.Code == "" {
		srv.log(ctx).Warn("Provider callback without code")

		return linkError(state)
	}

	tokens, err := srv.provider.Exchange(ctx, input.Code)
	if err != nil {
		srv.log(ctx).Error("Failed to exchange provider code", slog.Any("error", err))

		return linkError(state)
	}

	providerUser, err := srv.provider.FetchUser(ctx, tokens)
	if err != nil {
		srv.log(ctx).Error("Failed to fetch provider user", slog.Any("error", err))

		return linkError(state)
	}

	identity := &entity.ExternalIdentity{
		Provider:       srv.provider.Name(),
		ExternalUserID: providerUser.ID,
		AccessToken:    tokens.AccessToken,
		RefreshToken:   tokens.RefreshToken,
		IDTokenClaims:  providerUser.Raw,
	}

	if state != nil && state.From == entity.LinkFromEmailVerify {
		return srv.linkByVerificationCode(ctx, state, identity)
	}

	session, err := srv.sessions.GetCurrent(ctx, input.SessionJWT)
	if err != nil || session == nil {
		return &usecase.LinkOutcome{Location: usecase.SignInLocation(linkTarget(state))}
	}

	if err := srv.resourceAPI.AddExternalIdentity(ctx, session.UserID, identity); err != nil {
		if errors.Is(err, domainerrors.ErrResourceAlreadyExists) {
			srv.log(ctx).Info("External identity already linked",
				slog.String("user_id", session.UserID),
				slog.String("provider", identity.Provider),
			)

			return &usecase.LinkOutcome{
				Location: linkTarget(state) + "?status=" + usecase.LinkStatusWarning + "&reason=conflict",
				Status:   usecase.LinkStatusWarning,
			}
		}

		srv.log(ctx).Error("Failed to add external identity", slog.Any("error", err))

		return linkError(state)
	}

	srv.audit.record(ctx, entity.EventIdentityLinked, session.UserID, map[string]string{
		"provider": identity.Provider,
	})

	return &usecase.LinkOutcome{
		Location: linkTarget(state) + "?status=" + usecase.LinkStatusSuccess,
		Status:   usecase.LinkStatusSuccess,
	}
}

func (srv *identityLinkService) linkByVerificationCode(ctx context.Context, state *entity.LinkState, identity *entity.ExternalIdentity) *usecase.LinkOutcome {
	if state.Code == "" {
		srv.log(ctx).Warn("Email verification link without code")

		return linkError(state)
	}

	if err := srv.resourceAPI.CreateExternalIdentityByEmailVerificationCode(ctx, state.Code, identity); err != nil {
		srv.log(ctx).Error("Failed to link identity by verification code", slog.Any("error", err))

		return linkError(state)
	}

	srv.audit.record(ctx, entity.EventIdentityLinked, "", map[string]string{
		"provider": identity.Provider,
		"via":      string(entity.LinkFromEmailVerify),
	})

	return &usecase.LinkOutcome{
		Location: emailVerifyTarget(state.Code) + "&discord_linked=true",
		Status:   usecase.LinkStatusSuccess,
	}
}

// linkTarget is the page the flow returns to. An unknown or missing origin falls back to settings.
func linkTarget(state *entity.LinkState) string {
	if state == nil {
		return settingsPath
	}

	switch state.From {
	case entity.LinkFromSignup:
		return signupPath
	case entity.LinkFromEmailVerify:
		return emailVerifyTarget(state.Code)
	default:
		return settingsPath
	}
}

func linkError(state *entity.LinkState) *usecase.LinkOutcome {
	location := linkTarget(state) + "?status=" + usecase.LinkStatusError
	if state != nil && state.From == entity.LinkFromEmailVerify {
		location = emailVerifyTarget(state.Code) + "&discord_error=true"
	}

	return &usecase.LinkOutcome{Location: location, Status: usecase.LinkStatusError}
}

func emailVerifyTarget(code string) string {
	return emailVerifyPath + "?" + url.Values{"code": {code}}.Encode()
}
