package impl

import (
	"context"
	"testing"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func errResourceAlreadyExists() error {
	return errors.Wrap(domainerrors.ErrResourceAlreadyExists.WithDetails("discord-42"), "add external identity")
}

func TestIdentityLinkService_StartLink_Disabled(t *testing.T) {
	cfg := newTestConfig()
	cfg.Discord = nil

	service := NewIdentityLinkService(IdentityLinkServiceParams{
		Config: cfg,
		Logger: newTestLogger(),
	})

	_, err := service.StartLink(context.Background(), entity.LinkState{From: entity.LinkFromSettings})
	require.Error(t, err)
	assert.True(t, errors.Is(err, usecase.ErrLinkingDisabled))
}

func TestIdentityLinkService_HandleCallback_ProviderError(t *testing.T) {
	tests := []struct {
		name  string
		state entity.LinkState
		want  string
	}{
		{name: "settings", state: entity.LinkState{From: entity.LinkFromSettings}, want: "/dashboard/settings?status=error"},
		{name: "signup", state: entity.LinkState{From: entity.LinkFromSignup}, want: "/signup?status=error"},
		{name: "email verify", state: entity.LinkState{From: entity.LinkFromEmailVerify, Code: "X"}, want: "/email-verify?code=X&discord_error=true"},
		{name: "unknown origin", state: entity.LinkState{From: "elsewhere"}, want: "/dashboard/settings?status=error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestIdentityLinkService(t)

			outcome := fx.service.HandleCallback(context.Background(), &usecase.CallbackInput{
				Error: "access_denied",
				Code:  "code-1",
				State: encodeState(t, tt.state),
			})
			assert.Equal(t, tt.want, outcome.Location)
			assert.Equal(t, usecase.LinkStatusError, outcome.Status)
			fx.provider.AssertNotCalled(t, "Exchange", mock.Anything, mock.Anything)
		})
	}
}

func TestIdentityLinkService_HandleCallback_MissingCode(t *testing.T) {
	fx := createTestIdentityLinkService(t)

	outcome := fx.service.HandleCallback(context.Background(), &usecase.CallbackInput{
		State: encodeState(t, entity.LinkState{From: entity.LinkFromSignup}),
	})
	assert.Equal(t, "/signup?status=error", outcome.Location)
}

func TestIdentityLinkService_HandleCallback_MalformedStateContinues(t *testing.T) {
	fx := createTestIdentityLinkService(t)

	fx.expectProviderRoundTrip()
	fx.sessions.EXPECT().GetCurrent(mock.Anything, "").Return(nil, nil)

	var outcome *usecase.LinkOutcome
	assert.NotPanics(t, func() {
		outcome = fx.service.HandleCallback(context.Background(), &usecase.CallbackInput{
			Code:  "code-1",
			State: "%%%not-base64%%%",
		})
	})
	require.NotNil(t, outcome)
	assert.Equal(t, "/signin?redirect=%2Fdashboard%2Fsettings", outcome.Location)
}

func TestIdentityLinkService_HandleCallback_ExchangeFails(t *testing.T) {
	fx := createTestIdentityLinkService(t)

	fx.provider.EXPECT().Exchange(mock.Anything, "code-1").Return(nil, errors.New("invalid_grant"))

	outcome := fx.service.HandleCallback(context.Background(), &usecase.CallbackInput{
		Code:  "code-1",
		State: encodeState(t, entity.LinkState{From: entity.LinkFromEmailVerify, Code: "X"}),
	})
	assert.Equal(t, "/email-verify?code=X&discord_error=true", outcome.Location)
}

func TestIdentityLinkService_HandleCallback_FetchUserFails(t *testing.T) {
	fx := createTestIdentityLinkService(t)

	tokens := &entity.ProviderTokens{AccessToken: "access"}
	fx.provider.EXPECT().Exchange(mock.Anything, "code-1").Return(tokens, nil)
	fx.provider.EXPECT().FetchUser(mock.Anything, tokens).Return(nil, errors.New("401"))

	outcome := fx.service.HandleCallback(context.Background(), &usecase.CallbackInput{
		Code:  "code-1",
		State: encodeState(t, entity.LinkState{From: entity.LinkFromSettings}),
	})
	assert.Equal(t, "/dashboard/settings?status=error", outcome.Location)
}

func TestIdentityLinkService_HandleCallback_AddIdentityFails(t *testing.T) {
	fx := createTestIdentityLinkService(t)

	fx.expectProviderRoundTrip()
	fx.sessions.EXPECT().GetCurrent(mock.Anything, "jwt").Return(&entity.Session{UserID: "user-1"}, nil)
	fx.resourceAPI.EXPECT().AddExternalIdentity(mock.Anything, "user-1", mock.Anything).Return(domainerrors.ErrResourceAPI)

	outcome := fx.service.HandleCallback(context.Background(), &usecase.CallbackInput{
		Code:       "code-1",
		State:      encodeState(t, entity.LinkState{From: entity.LinkFromSettings}),
		SessionJWT: "jwt",
	})
	assert.Equal(t, "/dashboard/settings?status=error", outcome.Location)
}

func TestIdentityLinkService_HandleCallback_VerificationCodeRejected(t *testing.T) {
	fx := createTestIdentityLinkService(t)

	fx.expectProviderRoundTrip()
	fx.resourceAPI.EXPECT().
		CreateExternalIdentityByEmailVerificationCode(mock.Anything, "X", mock.Anything).
		Return(domainerrors.ErrResourceNotFound)

	outcome := fx.service.HandleCallback(context.Background(), &usecase.CallbackInput{
		Code:  "code-1",
		State: encodeState(t, entity.LinkState{From: entity.LinkFromEmailVerify, Code: "X"}),
	})
	assert.Equal(t, "/email-verify?code=X&discord_error=true", outcome.Location)
}

func TestIdentityLinkService_HandleCallback_VerificationLinkWithoutCode(t *testing.T) {
	fx := createTestIdentityLinkService(t)

	fx.expectProviderRoundTrip()

	outcome := fx.service.HandleCallback(context.Background(), &usecase.CallbackInput{
		Code:  "code-1",
		State: encodeState(t, entity.LinkState{From: entity.LinkFromEmailVerify}),
	})

	assert.Equal(t, "/email-verify?code=&discord_error=true", outcome.Location)
	assert.Equal(t, usecase.LinkStatusError, outcome.Status)
	fx.resourceAPI.AssertNotCalled(t, "CreateExternalIdentityByEmailVerificationCode", mock.Anything, mock.Anything, mock.Anything)
}
