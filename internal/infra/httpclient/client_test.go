package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	deliverycontext "portal/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GetDecodesJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/things/1", r.URL.Path)
		assert.Equal(t, "yes", r.URL.Query().Get("expand"))
		assert.Equal(t, "req-1", r.Header.Get(deliverycontext.HeaderXRequestID))
		_, _ = w.Write([]byte(`{"name":"thing"}`))
	}))
	defer server.Close()

	client := New(server.URL+"/", time.Second)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")

	var out struct {
		Name string `json:"name"`
	}
	err := client.Get(ctx, "/things/1", url.Values{"expand": {"yes"}}, &out)

	require.NoError(t, err)
	assert.Equal(t, "thing", out.Name)
}

func TestClient_PostSendsJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "v", in["k"])
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	err := New(server.URL, time.Second).Post(context.Background(), "/things", nil, map[string]string{"k": "v"}, nil)

	assert.NoError(t, err)
}

func TestClient_EmptyBodyWithOut(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	var out map[string]any
	err := New(server.URL, time.Second).Get(context.Background(), "/empty", nil, &out)

	assert.NoError(t, err)
	assert.Nil(t, out)
}
