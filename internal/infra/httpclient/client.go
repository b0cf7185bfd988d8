// Package httpclient is the JSON-over-HTTP transport shared by the backend API clients.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	deliverycontext "portal/internal/delivery/context"

	"github.com/pkg/errors"
)

// maxErrorBody caps how much of a failed response body is kept on StatusError.
const maxErrorBody = 4 << 10

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return e.Method + " " + e.Path + ": unexpected status " + http.StatusText(e.StatusCode) + ": " + strings.TrimSpace(string(e.Body))
}

// AsStatusError returns the StatusError in err's chain, if any.
func AsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}

	return nil, false
}

// Client issues JSON requests against one base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client. A non-positive timeout leaves the transport default in place.
func New(baseURL string, timeout time.Duration) *Client {
	httpClient := &http.Client{}
	if timeout > 0 {
		httpClient.Timeout = timeout
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get decodes the JSON response of GET path?query into out. out may be nil.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, http.MethodGet, path, query, nil, out)
}

// Post sends in as JSON and decodes the response into out. in and out may be nil.
func (c *Client) Post(ctx context.Context, path string, query url.Values, in, out any) error {
	return c.Do(ctx, http.MethodPost, path, query, in, out)
}

// Delete issues DELETE path.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// Do performs one request. Non-2xx responses become *StatusError.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	raw, err := c.DoRaw(ctx, method, path, query, in)
	if err != nil {
		return err
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrapf(err, "failed to decode %s %s response", method, path)
	}

	return nil
}

// DoRaw performs one request and returns the undecoded body.
func (c *Client) DoRaw(ctx context.Context, method, path string, query url.Values, in any) ([]byte, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to encode %s %s request", method, path)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create %s %s request", method, path)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s failed", method, path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		return nil, &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       snippet,
		}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s %s response", method, path)
	}

	return raw, nil
}
