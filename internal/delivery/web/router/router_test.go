package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"portal/config"
	"portal/internal/delivery/web/cookie"
	"portal/internal/delivery/web/middleware"
	"portal/internal/delivery/web/router/handler"
	"portal/internal/delivery/web/view"
	"portal/internal/domain/entity"
	mockUsecase "portal/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type routerFixtures struct {
	echo     *echo.Echo
	sessions *mockUsecase.MockSessionUsecase
}

func createTestRouter(t *testing.T) routerFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	jar := cookie.NewJar(cfg)
	sessions := mockUsecase.NewMockSessionUsecase(t)
	authorizationUC := mockUsecase.NewMockAuthorizationUsecase(t)

	r := NewRouter(RouterParams{
		SignInHandler: handler.NewSignInHandler(handler.SignInHandlerParams{
			AuthUC:  mockUsecase.NewMockAuthenticationUsecase(t),
			Cookies: jar,
			Logger:  logger,
		}),
		AuthorizationHandler: handler.NewAuthorizationHandler(handler.AuthorizationHandlerParams{
			AuthorizationUC: authorizationUC,
			SessionUC:       sessions,
			Logger:          logger,
		}),
		IdentityLinkHandler: handler.NewIdentityLinkHandler(handler.IdentityLinkHandlerParams{
			IdentityLinkUC: mockUsecase.NewMockIdentityLinkUsecase(t),
			Config:         cfg,
			Logger:         logger,
		}),
		SettingsHandler: handler.NewSettingsHandler(handler.SettingsHandlerParams{
			SettingsUC:      mockUsecase.NewMockSettingsUsecase(t),
			AuthorizationUC: authorizationUC,
			Cookies:         jar,
			Config:          cfg,
			Logger:          logger,
		}),
		SessionGate: middleware.NewSessionGate(middleware.SessionGateParams{
			Sessions: sessions,
			Cookies:  jar,
			Logger:   logger,
		}),
	})

	e := echo.New()
	renderer, err := view.New()
	require.NoError(t, err)
	e.Renderer = renderer
	r.RegisterRoutes(e)

	return routerFixtures{echo: e, sessions: sessions}
}

func TestRouter_DashboardResolvesSessionOnce(t *testing.T) {
	fx := createTestRouter(t)

	// IsValidSessionJWT is not expected: the mock fails the test if the gate verifies twice
	fx.sessions.EXPECT().GetCurrent(mock.Anything, "jwt").Return(&entity.Session{ID: "sess-1", UserID: "user-1"}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: cookie.SessionJWT, Value: "jwt"})
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	fx.sessions.AssertNotCalled(t, "IsValidSessionJWT", mock.Anything, mock.Anything)
}

func TestRouter_DashboardRedirectsAnonymous(t *testing.T) {
	fx := createTestRouter(t)

	fx.sessions.EXPECT().GetCurrent(mock.Anything, "").Return(nil, nil).Once()

	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard/settings", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/signin?redirect=%2Fdashboard%2Fsettings", rec.Header().Get(echo.HeaderLocation))
}
