package discord

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"portal/config"
	"portal/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.DiscordConfig {
	return &config.DiscordConfig{
		ClientID:     "discord-client",
		ClientSecret: "discord-secret",
		RedirectURI:  "http://localhost:3000/api/oauth/discord/callback",
		Scopes:       []string{"identify", "email"},
	}
}

func newFakeDiscord(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "discord-client", r.PostForm.Get("client_id"))
		assert.Equal(t, "discord-secret", r.PostForm.Get("client_secret"))
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.Equal(t, "http://localhost:3000/api/oauth/discord/callback", r.PostForm.Get("redirect_uri"))

		if r.PostForm.Get("code") != "good-code" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))

			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"at-1","refresh_token":"rt-1","token_type":"Bearer","expires_in":604800}`))
	})
	mux.HandleFunc("GET /api/users/@me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer at-1" {
			w.WriteHeader(http.StatusUnauthorized)

			return
		}
		_, _ = w.Write([]byte(`{"id":"80351110224678912","username":"nelly","email":"nelly@discord.com","avatar":"8342729096ea3675442027381ff50dfe"}`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}

func newTestProvider(server *httptest.Server) *provider {
	endpoint := oauth2.Endpoint{
		AuthURL:   server.URL + "/oauth2/authorize",
		TokenURL:  server.URL + "/api/oauth2/token",
		AuthStyle: oauth2.AuthStyleInParams,
	}

	return newProvider(testConfig(), endpoint, server.URL+"/api/users/@me", time.Second, newDiscardLogger())
}

func TestProvider_AuthCodeURL(t *testing.T) {
	p := NewProvider(ProviderParams{
		Config: &config.Config{Discord: testConfig()},
		Logger: newDiscardLogger(),
	})

	raw := p.AuthCodeURL("c3RhdGU=")

	parsed, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "discord.com", parsed.Host)
	assert.Equal(t, "/oauth2/authorize", parsed.Path)

	query := parsed.Query()
	assert.Equal(t, "discord-client", query.Get("client_id"))
	assert.Equal(t, "code", query.Get("response_type"))
	assert.Equal(t, "identify email", query.Get("scope"))
	assert.Equal(t, "c3RhdGU=", query.Get("state"))
	assert.Equal(t, "http://localhost:3000/api/oauth/discord/callback", query.Get("redirect_uri"))
	assert.Equal(t, entity.ProviderDiscord, p.Name())
}

func TestProvider_ExchangeAndFetchUser(t *testing.T) {
	p := newTestProvider(newFakeDiscord(t))
	ctx := context.Background()

	tokens, err := p.Exchange(ctx, "good-code")
	require.NoError(t, err)
	assert.Equal(t, "at-1", tokens.AccessToken)
	assert.Equal(t, "rt-1", tokens.RefreshToken)
	assert.False(t, tokens.Expiry.IsZero())

	user, err := p.FetchUser(ctx, tokens)
	require.NoError(t, err)
	assert.Equal(t, "80351110224678912", user.ID)
	assert.Equal(t, "nelly", user.Username)
	assert.Equal(t, "nelly@discord.com", user.Email)
	assert.Equal(t, "https://cdn.discordapp.com/avatars/80351110224678912/8342729096ea3675442027381ff50dfe.png", user.AvatarURL)
	assert.Equal(t, "nelly", user.Raw["username"])
}

func TestProvider_Exchange_Rejected(t *testing.T) {
	p := newTestProvider(newFakeDiscord(t))

	tokens, err := p.Exchange(context.Background(), "bad-code")

	assert.Error(t, err)
	assert.Nil(t, tokens)
}

func TestProvider_FetchUser_Unauthorized(t *testing.T) {
	p := newTestProvider(newFakeDiscord(t))

	user, err := p.FetchUser(context.Background(), &entity.ProviderTokens{AccessToken: "expired", TokenType: "Bearer"})

	assert.Error(t, err)
	assert.Nil(t, user)
}
