package usecase

import (
	"context"

	"portal/internal/domain/entity"
)

// SettingsOverview is what the account settings page shows. Lists that failed to load are empty.
type SettingsOverview struct {
	User     *entity.User
	Sessions []*entity.Session
	Consents []*entity.Consent
	// Applications indexes consent applications by id. Unresolvable ids are absent.
	Applications map[string]*entity.Application
}

// SettingsUsecase backs the account settings page.
type SettingsUsecase interface {
	Overview(ctx context.Context, session *entity.Session) (*SettingsOverview, error)
	// RevokeSession signs out one device of the session user.
	RevokeSession(ctx context.Context, session *entity.Session, sessionID string) error
}
