package handler

import (
	"net/http"
	"net/url"
	"testing"

	deliverycontext "portal/internal/delivery/context"
	"portal/internal/delivery/web/cookie"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	mockUsecase "portal/internal/mocks/usecase"
	"portal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type settingsHandlerFixtures struct {
	handler         *SettingsHandler
	settingsUC      *mockUsecase.MockSettingsUsecase
	authorizationUC *mockUsecase.MockAuthorizationUsecase
}

func createTestSettingsHandler(t *testing.T) settingsHandlerFixtures {
	settingsUC := mockUsecase.NewMockSettingsUsecase(t)
	authorizationUC := mockUsecase.NewMockAuthorizationUsecase(t)
	handler := NewSettingsHandler(SettingsHandlerParams{
		SettingsUC:      settingsUC,
		AuthorizationUC: authorizationUC,
		Cookies:         cookie.NewJar(newTestConfig()),
		Config:          newTestConfig(),
		Logger:          newTestLogger(),
	})

	return settingsHandlerFixtures{handler: handler, settingsUC: settingsUC, authorizationUC: authorizationUC}
}

var currentSession = &entity.Session{ID: "sess-1", UserID: "user-1"}

func withSession(c echo.Context) echo.Context {
	deliverycontext.SetSession(c, currentSession)

	return c
}

func TestSettingsHandler_Settings(t *testing.T) {
	fx := createTestSettingsHandler(t)
	e := newTestEcho(t)

	fx.settingsUC.EXPECT().Overview(mock.Anything, currentSession).Return(&usecase.SettingsOverview{
		User:         &entity.User{Username: "alice"},
		Sessions:     []*entity.Session{currentSession, {ID: "sess-2", UserID: "user-1"}},
		Applications: map[string]*entity.Application{},
	}, nil)

	c, rec := newGetContext(e, "/dashboard/settings?status=warning&reason=conflict")
	require.NoError(t, fx.handler.Settings(withSession(c)))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "既に連携されています")
	assert.Contains(t, body, "/dashboard/settings/sessions/sess-2/delete")
	assert.Contains(t, body, "このデバイス")
}

func TestSettingsHandler_Dashboard(t *testing.T) {
	fx := createTestSettingsHandler(t)
	e := newTestEcho(t)

	c, rec := newGetContext(e, "/dashboard")
	require.NoError(t, fx.handler.Dashboard(withSession(c)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/dashboard/settings")
}

func TestSettingsHandler_RevokeSession_Other(t *testing.T) {
	fx := createTestSettingsHandler(t)
	e := newTestEcho(t)

	fx.settingsUC.EXPECT().RevokeSession(mock.Anything, currentSession, "sess-2").Return(nil)

	c, rec := newFormContext(e, "/dashboard/settings/sessions/sess-2/delete", url.Values{})
	c.SetParamNames("id")
	c.SetParamValues("sess-2")
	require.NoError(t, fx.handler.RevokeSession(withSession(c)))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard/settings", rec.Header().Get("Location"))
	assert.Nil(t, findSetCookie(rec, cookie.SessionJWT))
}

func TestSettingsHandler_RevokeSession_Current(t *testing.T) {
	fx := createTestSettingsHandler(t)
	e := newTestEcho(t)

	fx.settingsUC.EXPECT().RevokeSession(mock.Anything, currentSession, "sess-1").Return(nil)

	c, rec := newFormContext(e, "/dashboard/settings/sessions/sess-1/delete", url.Values{})
	c.SetParamNames("id")
	c.SetParamValues("sess-1")
	require.NoError(t, fx.handler.RevokeSession(withSession(c)))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/signin", rec.Header().Get("Location"))
	assert.Equal(t, -1, findSetCookie(rec, cookie.SessionJWT).MaxAge)
}

func TestSettingsHandler_RevokeConsent(t *testing.T) {
	fx := createTestSettingsHandler(t)
	e := newTestEcho(t)

	fx.authorizationUC.EXPECT().RevokeConsent(mock.Anything, currentSession, "c-1").Return(nil)

	c, rec := newFormContext(e, "/dashboard/settings/consents/c-1/delete", url.Values{})
	c.SetParamNames("id")
	c.SetParamValues("c-1")
	require.NoError(t, fx.handler.RevokeConsent(withSession(c)))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestSettingsHandler_RevokeConsent_Forbidden(t *testing.T) {
	fx := createTestSettingsHandler(t)
	e := newTestEcho(t)

	fx.authorizationUC.EXPECT().RevokeConsent(mock.Anything, currentSession, "c-9").
		Return(errors.Wrap(domainerrors.ErrForbidden, "not owned"))

	c, _ := newFormContext(e, "/dashboard/settings/consents/c-9/delete", url.Values{})
	c.SetParamNames("id")
	c.SetParamValues("c-9")

	err := fx.handler.RevokeConsent(withSession(c))
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestSettingsHandler_Settings_WithoutSession(t *testing.T) {
	fx := createTestSettingsHandler(t)
	e := newTestEcho(t)

	c, _ := newGetContext(e, "/dashboard/settings")
	assert.True(t, errors.Is(fx.handler.Settings(c), domainerrors.ErrUnauthenticated))
}
