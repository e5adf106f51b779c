package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	apperrors "userdeck/cli/internal/errors"
	"userdeck/cli/internal/tokenstore"
)

// HTTP implements API over the service's REST endpoints under /api/v1.
type HTTP struct {
	// baseURL is the base URL for all requests (e.g., "http://localhost:8000")
	baseURL string
	// tokens owns the durable session credential
	tokens *tokenstore.Store
	// client is the underlying HTTP client with configured timeout
	client *http.Client
}

// newHTTP creates a new HTTP client with the given base URL and token store.
// It configures a 10-second timeout for all requests.
func newHTTP(baseURL string, tokens *tokenstore.Store) *HTTP {
	return &HTTP{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// newRequest builds a request with standard headers, a JSON body when in is
// non-nil, and the bearer credential when one is stored.
func (h *HTTP) newRequest(ctx context.Context, method, path string, in any) (*http.Request, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	h.setStandardHeaders(req)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range AuthHeader(h.tokens.Current()) {
		req.Header.Set(k, v)
	}
	return req, nil
}

// setStandardHeaders applies headers common to every request.
func (h *HTTP) setStandardHeaders(req *http.Request) {
	req.Header.Set("User-Agent", "userdeck-cli/1.0")
	req.Header.Set("Accept", "application/json")
}

// decodeDetail extracts the server-supplied human-readable detail message
// from a failure response body, or "" when none is present.
func decodeDetail(r io.Reader) string {
	var out struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(r).Decode(&out); err != nil {
		return ""
	}
	return strings.TrimSpace(out.Detail)
}

// failure translates a completed-but-rejected response into an AuthFailure
// carrying the server detail when one exists, or the fallback message.
func failure(resp *http.Response, fallback string) error {
	if msg := decodeDetail(resp.Body); msg != "" {
		return apperrors.New(apperrors.AuthFailure, msg)
	}
	return apperrors.New(apperrors.AuthFailure, fallback)
}

// GetVersion calls GET /api/version and returns the version string when available.
// No authentication required. This can be used to check connectivity to the service.
func (h *HTTP) GetVersion(ctx context.Context) (string, error) {
	req, err := h.newRequest(ctx, http.MethodGet, "/api/version", nil)
	if err != nil {
		return "", apperrors.Wrap(apperrors.NetworkError, "Failed to reach the service", err)
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return "", apperrors.Wrap(apperrors.NetworkError, "Failed to reach the service", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "unknown", nil
	}
	var out struct {
		Version string `json:"version"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", apperrors.Wrap(apperrors.NetworkError, "Failed to reach the service", err)
	}
	if out.Version == "" {
		return "unknown", nil
	}
	return out.Version, nil
}
