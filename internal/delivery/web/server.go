// Package web is the server-rendered portal delivery.
package web

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"portal/config"
	"portal/internal/delivery"
	"portal/internal/delivery/middleware"
	webmiddleware "portal/internal/delivery/web/middleware"
	"portal/internal/delivery/web/response"
	"portal/internal/delivery/web/router"
	"portal/internal/delivery/web/validator"
	"portal/internal/delivery/web/view"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

const csrfCookieName = "_csrf"

type webServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	echoServer, err := newEcho(params.Cfg, params.Logger)
	if err != nil {
		return nil, err
	}

	r := router.NewRouter(params.RouterParams)
	r.RegisterRoutes(echoServer)

	srv := &webServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: echoServer,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// newEcho builds the echo instance with the middleware chain, renderer and error handler.
func newEcho(cfg *config.Config, logger *slog.Logger) (*echo.Echo, error) {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	// Set up middleware in correct order
	// 1. Recover middleware first (to catch panics early)
	echoServer.Use(echomiddleware.Recover())

	// 2. Request ID middleware (must be before logger to include in logs)
	requestIDMiddleware := middleware.NewRequestIDMiddleware(logger)
	echoServer.Use(requestIDMiddleware.Process)

	// 3. Logger middleware
	loggerMiddleware := middleware.NewLoggerMiddleware(logger, cfg)
	echoServer.Use(loggerMiddleware.Handle)

	// 4. Security headers
	echoServer.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:      "0",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		ReferrerPolicy:     "same-origin",
		HSTSMaxAge:         hstsMaxAge(cfg),
	}))

	// 5. Request body size limit
	echoServer.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))

	// 6. CSRF tokens for every form submission
	echoServer.Use(echomiddleware.CSRFWithConfig(echomiddleware.CSRFConfig{
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/health"
		},
		TokenLookup:    "form:_csrf",
		ContextKey:     response.CSRFContextKey,
		CookieName:     csrfCookieName,
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSecure:   cfg.IsProduction(),
		CookieSameSite: http.SameSiteLaxMode,
		ErrorHandler: func(err error, c echo.Context) error {
			return domainerrors.ErrFormExpired.WrapMessage(err.Error())
		},
	}))

	// Set up centralized error handler
	errorMiddleware := webmiddleware.NewErrorMiddleware(logger)
	echoServer.HTTPErrorHandler = errorMiddleware.HandleHTTPError

	// Set up validator
	echoServer.Validator = validator.New()

	renderer, err := view.New()
	if err != nil {
		return nil, err
	}
	echoServer.Renderer = renderer

	return echoServer, nil
}

func hstsMaxAge(cfg *config.Config) int {
	if cfg.IsProduction() {
		return 31536000
	}

	return 0
}

func (s *webServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting portal HTTP server", slog.String("host_port", hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *webServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down portal HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
