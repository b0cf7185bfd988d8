package handler

import (
	"net/http"
	"testing"

	"portal/config"
	"portal/internal/domain/entity"
	mockUsecase "portal/internal/mocks/usecase"
	"portal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type identityLinkHandlerFixtures struct {
	handler        *IdentityLinkHandler
	identityLinkUC *mockUsecase.MockIdentityLinkUsecase
}

func createTestIdentityLinkHandler(t *testing.T, cfg *config.Config) identityLinkHandlerFixtures {
	identityLinkUC := mockUsecase.NewMockIdentityLinkUsecase(t)
	handler := NewIdentityLinkHandler(IdentityLinkHandlerParams{
		IdentityLinkUC: identityLinkUC,
		Config:         cfg,
		Logger:         newTestLogger(),
	})

	return identityLinkHandlerFixtures{handler: handler, identityLinkUC: identityLinkUC}
}

func TestIdentityLinkHandler_StartDiscord(t *testing.T) {
	fx := createTestIdentityLinkHandler(t, newTestConfig())
	e := newTestEcho(t)

	fx.identityLinkUC.EXPECT().
		StartLink(mock.Anything, entity.LinkState{From: entity.LinkFromEmailVerify, Code: "X"}).
		Return("https://discord.com/oauth2/authorize?state=abc", nil)

	c, rec := newGetContext(e, "/api/oauth/discord?from=email_verify&code=X")
	require.NoError(t, fx.handler.StartDiscord(c))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://discord.com/oauth2/authorize?state=abc", rec.Header().Get("Location"))
}

func TestIdentityLinkHandler_StartDiscord_UnknownOriginFallsBackToSettings(t *testing.T) {
	fx := createTestIdentityLinkHandler(t, newTestConfig())
	e := newTestEcho(t)

	fx.identityLinkUC.EXPECT().
		StartLink(mock.Anything, entity.LinkState{From: entity.LinkFromSettings}).
		Return("https://discord.com/oauth2/authorize", nil)

	c, _ := newGetContext(e, "/api/oauth/discord?from=somewhere")
	require.NoError(t, fx.handler.StartDiscord(c))
}

func TestIdentityLinkHandler_StartDiscord_Disabled(t *testing.T) {
	fx := createTestIdentityLinkHandler(t, &config.Config{})
	e := newTestEcho(t)

	fx.identityLinkUC.EXPECT().StartLink(mock.Anything, mock.Anything).Return("", usecase.ErrLinkingDisabled)

	c, _ := newGetContext(e, "/api/oauth/discord")
	assert.Equal(t, echo.ErrNotFound, fx.handler.StartDiscord(c))
}

func TestIdentityLinkHandler_DiscordCallback(t *testing.T) {
	fx := createTestIdentityLinkHandler(t, newTestConfig())
	e := newTestEcho(t)

	fx.identityLinkUC.EXPECT().
		HandleCallback(mock.Anything, &usecase.CallbackInput{Code: "c", State: "s", SessionJWT: "jwt"}).
		Return(&usecase.LinkOutcome{Location: "/dashboard/settings?status=warning&reason=conflict", Status: usecase.LinkStatusWarning})

	c, rec := newGetContext(e, "/api/oauth/discord/callback?code=c&state=s", sessionCookie)
	require.NoError(t, fx.handler.DiscordCallback(c))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard/settings?status=warning&reason=conflict", rec.Header().Get("Location"))
}

func TestIdentityLinkHandler_EmailVerify(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		contains string
	}{
		{name: "linked", target: "/email-verify?code=X&discord_linked=true", contains: "notice-success"},
		{name: "error", target: "/email-verify?code=X&discord_error=true", contains: "notice-error"},
		{name: "link offered", target: "/email-verify?code=X", contains: "/api/oauth/discord?code=X&amp;from=email_verify"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestIdentityLinkHandler(t, newTestConfig())
			e := newTestEcho(t)

			c, rec := newGetContext(e, tt.target)
			require.NoError(t, fx.handler.EmailVerify(c))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.contains)
		})
	}
}
