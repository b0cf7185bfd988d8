package impl

import (
	"io"
	"log/slog"
	"testing"

	"portal/config"
	mockService "portal/internal/mocks/service"

	"github.com/stretchr/testify/mock"
)

const testPublicAuthURL = "https://auth.example.com"

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.AuthAPI.URL = "http://auth-api.internal"
	cfg.AuthAPI.PublicURL = testPublicAuthURL + "/"
	cfg.ResourceAPI.URL = "http://resource-api.internal"
	cfg.Discord = &config.DiscordConfig{
		ClientID:     "discord-client",
		ClientSecret: "discord-secret",
		RedirectURI:  "https://portal.example.com/api/oauth/discord/callback",
	}

	return cfg
}

// newQuietPublisher accepts any number of audit events.
func newQuietPublisher(t *testing.T) *mockService.MockEventPublisher {
	publisher := mockService.NewMockEventPublisher(t)
	publisher.EXPECT().PublishAuthEvent(mock.Anything, mock.Anything).Return(nil).Maybe()

	return publisher
}
