package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"reason":"invalid_credentials"}`))
	}))
	defer server.Close()

	err := New(server.URL, time.Second).Get(context.Background(), "/secure", nil, nil)

	statusErr, ok := AsStatusError(errors.Wrap(err, "outer"))
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
	assert.Equal(t, "/secure", statusErr.Path)
	assert.JSONEq(t, `{"reason":"invalid_credentials"}`, string(statusErr.Body))
}

func TestClient_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	err := New(server.URL, 20*time.Millisecond).Get(context.Background(), "/slow", nil, nil)

	require.Error(t, err)
	_, isStatus := AsStatusError(err)
	assert.False(t, isStatus)
}

func TestClient_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer server.Close()

	var out map[string]any
	err := New(server.URL, time.Second).Get(context.Background(), "/bad", nil, &out)

	assert.Error(t, err)
}

func TestClient_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	err := New(server.URL, time.Second).Delete(context.Background(), "/gone")

	assert.Error(t, err)
}
