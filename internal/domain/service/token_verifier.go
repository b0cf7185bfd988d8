package service

import (
	"context"

	"portal/internal/domain/entity"
)

// TokenVerifier checks session JWTs. It never returns an error: any failure is an invalid result.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) entity.VerifyResult
}
