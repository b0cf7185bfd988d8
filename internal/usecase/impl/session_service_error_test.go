package impl

import (
	"context"
	"testing"
	"time"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_GetSessionFromJWT_InvalidToken(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	fx.verifier.EXPECT().Verify(ctx, "jwt").Return(entity.Invalid())

	got, err := fx.service.GetSessionFromJWT(ctx, "jwt")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionService_GetSessionFromJWT_LookupFails(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	fx.verifier.EXPECT().Verify(ctx, "jwt").Return(validResult("SID_sess-1"))
	fx.authAPI.EXPECT().GetSession(ctx, "sess-1").Return(nil, domainerrors.ErrResourceNotFound)

	got, err := fx.service.GetSessionFromJWT(ctx, "jwt")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionService_GetSessionFromJWT_RevokedOrExpired(t *testing.T) {
	deleted := time.Now().Add(-time.Minute)

	tests := []struct {
		name    string
		session *entity.Session
	}{
		{
			name:    "revoked",
			session: &entity.Session{ID: "sess-1", ExpiresAt: time.Now().Add(time.Hour), DeletedAt: &deleted},
		},
		{
			name:    "expired",
			session: &entity.Session{ID: "sess-1", ExpiresAt: time.Now().Add(-time.Hour)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSessionService(t)

			ctx := context.Background()
			fx.verifier.EXPECT().Verify(ctx, "jwt").Return(validResult("SID_sess-1"))
			fx.authAPI.EXPECT().GetSession(ctx, "sess-1").Return(tt.session, nil)

			got, err := fx.service.GetSessionFromJWT(ctx, "jwt")
			require.NoError(t, err)
			assert.Nil(t, got)
		})
	}
}

func TestSessionService_GetByUserID_Error(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	fx.authAPI.EXPECT().ListSessions(ctx, "user-1").Return(nil, domainerrors.ErrAuthServer)

	_, err := fx.service.GetByUserID(ctx, "user-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAuthServer))
}

func TestSessionService_DeleteByID_Error(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	fx.authAPI.EXPECT().DeleteSession(ctx, "sess-1").Return(domainerrors.ErrAuthServer)

	err := fx.service.DeleteByID(ctx, "sess-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAuthServer))
}
