package authapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portal/config"
	"portal/internal/domain/entity"
	"portal/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) service.AuthAPI {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.AuthAPI.URL = server.URL
	cfg.AuthAPI.Timeout = time.Second
	cfg.AuthAPI.VerifyTimeout = time.Second

	return NewClient(ClientParams{Config: cfg})
}

func TestClient_Authenticate(t *testing.T) {
	api := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/internal/authentication", r.URL.Path)

		var credentials entity.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&credentials))
		assert.Equal(t, entity.CredentialPassword, credentials.Type)
		assert.Equal(t, "alice", credentials.Username)
		assert.True(t, credentials.Remember)

		_, _ = w.Write([]byte(`{"sessionJwt":"jwt-1"}`))
	}))

	resp, err := api.Authenticate(context.Background(), &entity.Credentials{
		Type:     entity.CredentialPassword,
		Username: "alice",
		Password: "secret",
		Remember: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "jwt-1", resp.SessionJWT)
	assert.False(t, resp.RequireMfa)
}

func TestClient_VerifySession(t *testing.T) {
	api := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/session_verify", r.URL.Path)
		valid := r.URL.Query().Get("jti") == "live"
		_ = json.NewEncoder(w).Encode(map[string]bool{"valid": valid})
	}))

	live, err := api.VerifySession(context.Background(), "live")
	require.NoError(t, err)
	assert.True(t, live)

	revoked, err := api.VerifySession(context.Background(), "revoked")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestClient_SessionsAndConsents(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /internal/sessions/{id}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"` + r.PathValue("id") + `","userId":"user-1"}`))
	})
	mux.HandleFunc("GET /internal/sessions", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "user-1", r.URL.Query().Get("user_id"))
		_, _ = w.Write([]byte(`[{"id":"s1","userId":"user-1"},{"id":"s2","userId":"user-1"}]`))
	})
	mux.HandleFunc("GET /internal/consents", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "user-1", r.URL.Query().Get("user_id"))
		assert.Equal(t, "client-123", r.URL.Query().Get("application_id"))
		assert.Equal(t, "read", r.URL.Query().Get("scope"))
		_, _ = w.Write([]byte(`[{"id":"c1","application_id":"client-123","scope":"read"}]`))
	})
	mux.HandleFunc("POST /internal/auth-requests/{id}/consented", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-123", r.PathValue("id"))
		assert.Equal(t, "user-1", r.URL.Query().Get("user_id"))
		assert.Equal(t, "client-123", r.URL.Query().Get("application_id"))
		assert.Equal(t, "read", r.URL.Query().Get("scope"))
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("DELETE /internal/consents/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	api := newTestClient(t, mux)
	ctx := context.Background()

	session, err := api.GetSession(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", session.ID)
	assert.Equal(t, "user-1", session.UserID)

	sessions, err := api.ListSessions(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, sessions, 2)

	consents, err := api.ListConsents(ctx, &service.ConsentQuery{UserID: "user-1", ApplicationID: "client-123", Scope: "read"})
	require.NoError(t, err)
	require.Len(t, consents, 1)
	assert.Equal(t, "client-123", consents[0].ApplicationID)

	err = api.ConfirmConsent(ctx, &service.ConsentConfirmation{
		AuthRequestID: "req-123",
		UserID:        "user-1",
		ApplicationID: "client-123",
		Scope:         "read",
	})
	require.NoError(t, err)

	assert.NoError(t, api.DeleteConsent(ctx, "c1"))
}

func TestClient_GetAuthRequest(t *testing.T) {
	api := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/auth-requests/req-123", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"req-123","client_id":"client-123","scope":"read","prompt":"none","redirect_uri":"https://app.example/cb","state":"xyz"}`))
	}))

	request, err := api.GetAuthRequest(context.Background(), "req-123")

	require.NoError(t, err)
	assert.Equal(t, "client-123", request.ClientID)
	assert.Equal(t, "none", request.Prompt)
	assert.Equal(t, "https://app.example/cb", request.RedirectURI)
	assert.True(t, request.AllowsSilentConsent())
}

func TestClient_JWKSUsesIssuer(t *testing.T) {
	issuer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/.well-known/jwks.json", r.URL.Path)
		_, _ = w.Write([]byte(`{"keys":[]}`))
	}))
	defer issuer.Close()

	cfg := &config.Config{}
	cfg.AuthAPI.URL = "http://127.0.0.1:1"
	cfg.AuthAPI.Issuer = issuer.URL + "/"
	cfg.AuthAPI.VerifyTimeout = time.Second

	raw, err := NewClient(ClientParams{Config: cfg}).JWKS(context.Background())

	require.NoError(t, err)
	assert.JSONEq(t, `{"keys":[]}`, string(raw))
}
