// Package discord implements the Discord identity provider on golang.org/x/oauth2.
package discord

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"portal/config"
	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/entity"
	"portal/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/oauth2"
)

var (
	// Endpoint is the Discord OAuth2 endpoint. Discord expects client credentials in the form body.
	Endpoint = oauth2.Endpoint{
		AuthURL:   "https://discord.com/oauth2/authorize",
		TokenURL:  "https://discord.com/api/oauth2/token",
		AuthStyle: oauth2.AuthStyleInParams,
	}

	UserInfoEndpoint = "https://discord.com/api/users/@me"

	avatarBaseURL = "https://cdn.discordapp.com/avatars/"
)

const defaultTimeout = 10 * time.Second

type provider struct {
	oauth       *oauth2.Config
	userInfoURL string
	httpClient  *http.Client
	logger      *slog.Logger
}

// ProviderParams holds dependencies for the Discord provider, injected by Fx.
type ProviderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewProvider creates the Discord identity provider from the discord config section.
func NewProvider(params ProviderParams) service.IdentityProvider {
	cfg := params.Config.Discord
	if cfg == nil {
		cfg = &config.DiscordConfig{}
	}

	return newProvider(cfg, Endpoint, UserInfoEndpoint, params.Config.ResourceAPI.Timeout, params.Logger)
}

func newProvider(cfg *config.DiscordConfig, endpoint oauth2.Endpoint, userInfoURL string, timeout time.Duration, logger *slog.Logger) *provider {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &provider{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Scopes:       cfg.Scopes,
			Endpoint:     endpoint,
		},
		userInfoURL: userInfoURL,
		httpClient:  &http.Client{Timeout: timeout},
		logger:      logger,
	}
}

func (p *provider) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, p.logger)
}

// Name returns the provider key stored on linked identities.
func (p *provider) Name() string {
	return entity.ProviderDiscord
}

// AuthCodeURL builds the Discord consent URL.
func (p *provider) AuthCodeURL(state string) string {
	return p.oauth.AuthCodeURL(state, oauth2.SetAuthURLParam("prompt", "consent"))
}

// Exchange trades the authorization code at the token endpoint.
func (p *provider) Exchange(ctx context.Context, code string) (*entity.ProviderTokens, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)

	token, err := p.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "discord: failed to exchange code")
	}

	return &entity.ProviderTokens{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenType:    token.TokenType,
		Expiry:       token.Expiry,
	}, nil
}

// FetchUser reads /users/@me with the access token.
func (p *provider) FetchUser(ctx context.Context, tokens *entity.ProviderTokens) (*entity.ProviderUser, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)
	client := p.oauth.Client(ctx, &oauth2.Token{
		AccessToken: tokens.AccessToken,
		TokenType:   tokens.TokenType,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userInfoURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "discord: failed to create user info request")
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "discord: failed to get user info")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "discord: failed to read user info response body")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("discord: failed to fetch user info: status %d, body: %s", resp.StatusCode, string(body))
	}

	var rawUser struct {
		ID         string `json:"id"`
		Username   string `json:"username"`
		GlobalName string `json:"global_name"`
		Email      string `json:"email"`
		Avatar     string `json:"avatar"`
	}
	if err := json.Unmarshal(body, &rawUser); err != nil {
		return nil, errors.Wrap(err, "discord: failed to unmarshal user info")
	}
	if rawUser.ID == "" {
		return nil, errors.New("discord: user info has no id")
	}

	var rawData map[string]any
	_ = json.Unmarshal(body, &rawData)

	user := &entity.ProviderUser{
		ID:       rawUser.ID,
		Username: rawUser.Username,
		Email:    rawUser.Email,
		Raw:      rawData,
	}
	if rawUser.Avatar != "" {
		user.AvatarURL = avatarBaseURL + rawUser.ID + "/" + rawUser.Avatar + ".png"
	}

	p.log(ctx).Debug("Fetched Discord user", slog.String("discord_user_id", user.ID))

	return user, nil
}
