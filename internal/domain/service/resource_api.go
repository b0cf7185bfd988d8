package service

import (
	"context"

	"portal/internal/domain/entity"
)

// ResourceAPI is the subset of the Resource API the portal core consumes.
type ResourceAPI interface {
	GetApplication(ctx context.Context, id string) (*entity.Application, error)
	GetUser(ctx context.Context, id string) (*entity.User, error)

	// AddExternalIdentity returns ErrResourceAlreadyExists when the identity is linked to an account already.
	AddExternalIdentity(ctx context.Context, userID string, identity *entity.ExternalIdentity) error

	// CreateExternalIdentityByEmailVerificationCode links the identity to whichever user owns the code.
	CreateExternalIdentityByEmailVerificationCode(ctx context.Context, code string, identity *entity.ExternalIdentity) error
}
