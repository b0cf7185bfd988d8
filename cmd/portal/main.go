package main

import (
	"context"
	"log/slog"
	"os"

	"portal/config"
	"portal/internal/delivery"
	"portal/internal/delivery/web"
	"portal/internal/delivery/web/cookie"
	"portal/internal/delivery/web/middleware"
	"portal/internal/delivery/web/router/handler"
	"portal/internal/infra/auth"
	"portal/internal/infra/auth/discord"
	"portal/internal/infra/authapi"
	logs "portal/internal/infra/log"
	"portal/internal/infra/pubsub"
	"portal/internal/infra/resourceapi"
	"portal/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			authapi.NewClient,
			resourceapi.NewClient,
			auth.NewJWKSCacheFromConfig,
			auth.NewJWTVerifier,
			discord.NewProvider,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewAuthenticationService,
			impl.NewAuthorizationService,
			impl.NewIdentityLinkService,
			impl.NewSettingsService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			cookie.NewJar,
			middleware.NewSessionGate,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSignInHandler,
			handler.NewAuthorizationHandler,
			handler.NewIdentityLinkHandler,
			handler.NewSettingsHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				web.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
