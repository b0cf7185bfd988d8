// Package router contains routing and server setup for the web delivery.
package router

import (
	"portal/internal/delivery/web/middleware"
	"portal/internal/delivery/web/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SignInHandler        *handler.SignInHandler
	AuthorizationHandler *handler.AuthorizationHandler
	IdentityLinkHandler  *handler.IdentityLinkHandler
	SettingsHandler      *handler.SettingsHandler
	SessionGate          *middleware.SessionGate
}

// router holds all the handlers that need to be registered.
type router struct {
	signInHandler        *handler.SignInHandler
	authorizationHandler *handler.AuthorizationHandler
	identityLinkHandler  *handler.IdentityLinkHandler
	settingsHandler      *handler.SettingsHandler
	sessionGate          *middleware.SessionGate
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		signInHandler:        params.SignInHandler,
		authorizationHandler: params.AuthorizationHandler,
		identityLinkHandler:  params.IdentityLinkHandler,
		settingsHandler:      params.SettingsHandler,
		sessionGate:          params.SessionGate,
	}
}

// RegisterRoutes sets up all the portal routes.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Sign-in routes
	e.GET("/signin", r.signInHandler.ShowSignIn)
	e.POST("/signin", r.signInHandler.SignIn)
	e.GET("/signin/mfa", r.signInHandler.ShowMfa)
	e.POST("/signin/mfa", r.signInHandler.SubmitMfa)
	e.POST("/signout", r.signInHandler.SignOut, r.sessionGate.Require)

	// OAuth consent page, gated inside the handler so error pages render for anyone
	e.GET("/authorization", r.authorizationHandler.Authorize)

	// Identity linking
	oauthGroup := e.Group("/api/oauth")
	{
		oauthGroup.GET("/discord", r.identityLinkHandler.StartDiscord)
		oauthGroup.GET("/discord/callback", r.identityLinkHandler.DiscordCallback)
	}
	e.GET("/email-verify", r.identityLinkHandler.EmailVerify)

	// Member pages
	dashboardGroup := e.Group("/dashboard")
	// Load verifies the token while resolving the session
	dashboardGroup.Use(r.sessionGate.Load)
	{
		dashboardGroup.GET("", r.settingsHandler.Dashboard)
		dashboardGroup.GET("/settings", r.settingsHandler.Settings)
		dashboardGroup.POST("/settings/sessions/:id/delete", r.settingsHandler.RevokeSession)
		dashboardGroup.POST("/settings/consents/:id/delete", r.settingsHandler.RevokeConsent)
	}
}
