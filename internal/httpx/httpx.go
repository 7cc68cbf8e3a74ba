// ABOUTME: Shared HTTP transport helper for the remote-mode entity services
// ABOUTME: Normalizes status handling (204 empty, 404 absent, non-2xx typed error)

package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNotFound is returned for HTTP 404 responses. Callers use it for
// "optional resource absent" semantics rather than treating it as a failure.
var ErrNotFound = errors.New("not found")

// Error is the typed failure for any other non-2xx response.
type Error struct {
	Status     int
	StatusText string
	// Body holds the JSON-decoded response body when the server sent one.
	Body any
}

func (e *Error) Error() string {
	return fmt.Sprintf("http %d %s", e.Status, e.StatusText)
}

// Client issues JSON requests against a configured base URL.
type Client struct {
	base   string
	hc     *http.Client
	logger *slog.Logger
}

// New creates a client for the given base URL.
func New(baseURL string) *Client {
	return &Client{
		base:   strings.TrimRight(baseURL, "/"),
		hc:     &http.Client{Timeout: 15 * time.Second},
		logger: slog.Default().With("component", "httpx"),
	}
}

// Do issues a request and decodes the JSON response into out.
//
// Response handling:
//   - 204 leaves out untouched (empty result)
//   - 404 returns ErrNotFound
//   - any other non-2xx returns *Error with the parsed body when present
//   - 2xx decodes the body into out; an empty or non-JSON success body is
//     tolerated and leaves out untouched
//
// body, when non-nil, is JSON-encoded and sent with the request. out may be
// nil when the caller does not expect a payload.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNoContent:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		httpErr := &Error{Status: resp.StatusCode, StatusText: http.StatusText(resp.StatusCode)}
		var parsed any
		if json.Unmarshal(data, &parsed) == nil {
			httpErr.Body = parsed
		}
		c.logger.Warn("request failed", "method", method, "path", path, "status", resp.StatusCode)
		return httpErr
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		// Some endpoints answer 200 with an empty or non-JSON body; treat
		// that as an empty result, same as 204.
		c.logger.Debug("ignoring unparseable success body", "method", method, "path", path)
		return nil
	}
	return nil
}
