package handler

import (
	"log/slog"
	"net/http"

	"portal/config"
	deliverycontext "portal/internal/delivery/context"
	"portal/internal/delivery/web/cookie"
	"portal/internal/delivery/web/response"
	"portal/internal/delivery/web/view"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SettingsHandlerParams holds dependencies for SettingsHandler, injected by Fx.
type SettingsHandlerParams struct {
	fx.In

	SettingsUC      usecase.SettingsUsecase
	AuthorizationUC usecase.AuthorizationUsecase
	Cookies         *cookie.Jar
	Config          *config.Config
	Logger          *slog.Logger
}

// SettingsHandler serves the dashboard and account settings pages. Routes sit behind the session gate.
type SettingsHandler struct {
	settingsUC      usecase.SettingsUsecase
	authorizationUC usecase.AuthorizationUsecase
	cookies         *cookie.Jar
	linkEnabled     bool
	logger          *slog.Logger
}

// NewSettingsHandler is the constructor for SettingsHandler
func NewSettingsHandler(params SettingsHandlerParams) *SettingsHandler {
	return &SettingsHandler{
		settingsUC:      params.SettingsUC,
		authorizationUC: params.AuthorizationUC,
		cookies:         params.Cookies,
		linkEnabled:     params.Config.DiscordEnabled(),
		logger:          params.Logger,
	}
}

// DashboardPage is the view model of the dashboard.
type DashboardPage struct {
	Session *entity.Session
}

// SettingsPage is the view model of the account settings page.
type SettingsPage struct {
	Overview         *usecase.SettingsOverview
	CurrentSessionID string
	LinkEnabled      bool
}

// Dashboard renders the member landing page.
func (h *SettingsHandler) Dashboard(c echo.Context) error {
	session := deliverycontext.GetSession(c)
	if session == nil {
		return domainerrors.ErrUnauthenticated
	}

	return response.Page(c, http.StatusOK, view.PageDashboard, "ダッシュボード", &DashboardPage{Session: session})
}

// Settings renders sessions and consents of the session user.
func (h *SettingsHandler) Settings(c echo.Context) error {
	session := deliverycontext.GetSession(c)
	if session == nil {
		return domainerrors.ErrUnauthenticated
	}

	overview, err := h.settingsUC.Overview(c.Request().Context(), session)
	if err != nil {
		return err
	}

	page := &SettingsPage{
		Overview:         overview,
		CurrentSessionID: session.ID,
		LinkEnabled:      h.linkEnabled,
	}

	return response.PageWithNotice(c, http.StatusOK, view.PageSettings, "アカウント設定", page,
		linkNotice(c.QueryParam("status"), c.QueryParam("reason")))
}

// RevokeSession signs out one device. Revoking the current session also signs out this browser.
func (h *SettingsHandler) RevokeSession(c echo.Context) error {
	session := deliverycontext.GetSession(c)
	sessionID := c.Param("id")

	if err := h.settingsUC.RevokeSession(c.Request().Context(), session, sessionID); err != nil {
		return err
	}

	if session != nil && session.ID == sessionID {
		h.cookies.ClearSession(c)

		return response.Redirect(c, usecase.RedirectPush, usecase.SignInPath)
	}

	return response.Redirect(c, usecase.RedirectReplace, settingsPath)
}

// RevokeConsent withdraws a consent granted to an application.
func (h *SettingsHandler) RevokeConsent(c echo.Context) error {
	session := deliverycontext.GetSession(c)

	if err := h.authorizationUC.RevokeConsent(c.Request().Context(), session, c.Param("id")); err != nil {
		return err
	}

	return response.Redirect(c, usecase.RedirectReplace, settingsPath)
}

// linkNotice maps the identity link result appended to the settings URL.
func linkNotice(status, reason string) *view.Notice {
	switch status {
	case usecase.LinkStatusSuccess:
		return &view.Notice{Level: view.NoticeSuccess, Text: "Discord アカウントを連携しました。"}
	case usecase.LinkStatusWarning:
		if reason == "conflict" {
			return &view.Notice{Level: view.NoticeWarning, Text: "この Discord アカウントは既に連携されています。"}
		}

		return &view.Notice{Level: view.NoticeWarning, Text: "Discord アカウントの連携を完了できませんでした。"}
	case usecase.LinkStatusError:
		return &view.Notice{Level: view.NoticeError, Text: "Discord アカウントの連携に失敗しました。"}
	default:
		return nil
	}
}
