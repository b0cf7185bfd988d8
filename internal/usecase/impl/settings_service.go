package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/service"
	"portal/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// settingsService implements the SettingsUsecase interface.
type settingsService struct {
	authAPI     service.AuthAPI
	resourceAPI service.ResourceAPI
	sessions    usecase.SessionUsecase
	audit       *auditor
	logger      *slog.Logger
}

// SettingsServiceParams holds dependencies for SettingsService, injected by Fx.
type SettingsServiceParams struct {
	fx.In

	AuthAPI     service.AuthAPI
	ResourceAPI service.ResourceAPI
	Sessions    usecase.SessionUsecase
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewSettingsService is the constructor for settingsService.
func NewSettingsService(params SettingsServiceParams) usecase.SettingsUsecase {
	return &settingsService{
		authAPI:     params.AuthAPI,
		resourceAPI: params.ResourceAPI,
		sessions:    params.Sessions,
		audit:       newAuditor(params.Publisher, params.Logger),
		logger:      params.Logger,
	}
}

func (srv *settingsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Overview loads the settings page. Each list fails open on its own.
func (srv *settingsService) Overview(ctx context.Context, session *entity.Session) (*usecase.SettingsOverview, error) {
	if session == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	overview := &usecase.SettingsOverview{
		Sessions:     []*entity.Session{},
		Consents:     []*entity.Consent{},
		Applications: map[string]*entity.Application{},
	}

	var g errgroup.Group
	g.Go(func() error {
		user, err := srv.resourceAPI.GetUser(ctx, session.UserID)
		if err != nil {
			srv.log(ctx).Warn("Failed to load user for settings", slog.Any("error", err))

			return nil
		}
		overview.User = user

		return nil
	})
	g.Go(func() error {
		sessions, err := srv.sessions.GetByUserID(ctx, session.UserID)
		if err != nil {
			srv.log(ctx).Warn("Failed to list sessions", slog.Any("error", err))

			return nil
		}
		overview.Sessions = sessions

		return nil
	})
	g.Go(func() error {
		consents, err := srv.authAPI.ListConsents(ctx, &service.ConsentQuery{UserID: session.UserID})
		if err != nil {
			srv.log(ctx).Warn("Failed to list consents", slog.Any("error", err))

			return nil
		}
		overview.Consents = consents

		return nil
	})
	_ = g.Wait()

	srv.resolveApplications(ctx, overview)

	return overview, nil
}

// resolveApplications fills the application index for the consent list.
func (srv *settingsService) resolveApplications(ctx context.Context, overview *usecase.SettingsOverview) {
	var (
		mu sync.Mutex
		g  errgroup.Group
	)

	seen := map[string]struct{}{}
	for _, consent := range overview.Consents {
		if consent == nil || consent.ApplicationID == "" {
			continue
		}
		if _, ok := seen[consent.ApplicationID]; ok {
			continue
		}
		seen[consent.ApplicationID] = struct{}{}

		id := consent.ApplicationID
		g.Go(func() error {
			application, err := srv.resourceAPI.GetApplication(ctx, id)
			if err != nil {
				srv.log(ctx).Debug("Failed to resolve consent application", slog.String("application_id", id), slog.Any("error", err))

				return nil
			}

			mu.Lock()
			overview.Applications[id] = application
			mu.Unlock()

			return nil
		})
	}
	_ = g.Wait()
}

// RevokeSession revokes one of the session user's sessions.
func (srv *settingsService) RevokeSession(ctx context.Context, session *entity.Session, sessionID string) error {
	if session == nil {
		return domainerrors.ErrUnauthenticated
	}

	target, err := srv.authAPI.GetSession(ctx, sessionID)
	if err != nil {
		return errors.Wrap(err, "failed to load session")
	}
	if target.UserID != session.UserID {
		return errors.Wrapf(domainerrors.ErrForbidden, "session %s is not owned by the session user", sessionID)
	}

	if err := srv.sessions.DeleteByID(ctx, sessionID); err != nil {
		return err
	}

	srv.audit.record(ctx, entity.EventSessionRevoked, session.UserID, map[string]string{
		"session_id": sessionID,
		"current":    boolString(sessionID == session.ID),
	})

	return nil
}

func boolString(b bool) string {
	if b {
		return "true"
	}

	return "false"
}
