package resourceapi

import (
	"context"
	"net/http"
	"testing"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestClient_AddExternalIdentity_Conflict(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "409", status: http.StatusConflict, body: ``},
		{name: "named error", status: http.StatusBadRequest, body: `{"error":"ResourceAlreadyExists"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))

			err := api.AddExternalIdentity(context.Background(), "user-1", &entity.ExternalIdentity{Provider: entity.ProviderDiscord})

			assert.True(t, errors.Is(err, domainerrors.ErrResourceAlreadyExists), "got %v", err)
		})
	}
}

func TestClient_GetApplication_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{name: "unknown client", status: http.StatusNotFound, want: domainerrors.ErrResourceNotFound},
		{name: "server failure", status: http.StatusInternalServerError, want: domainerrors.ErrResourceAPI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))

			application, err := api.GetApplication(context.Background(), "client-404")

			assert.Nil(t, application)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}
