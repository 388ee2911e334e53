package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrLookupFailed occurs when the user-identity service cannot resolve a
// display name, for any reason: transport error, non-2xx response, or an
// undecodable body. Callers do not distinguish sub-cases.
var ErrLookupFailed = errors.New("user lookup failed")

// Client resolves display names for user identifiers.
type Client interface {
	DisplayName(ctx context.Context, userID string) (string, error)
}

// HTTPClient calls a remote user-identity service over HTTP.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient builds a client for the user-identity service rooted at
// baseURL. Every request is bounded by the provided timeout.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type userResponse struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// DisplayName fetches the user record and returns "firstName lastName".
func (c *HTTPClient) DisplayName(ctx context.Context, userID string) (string, error) {
	url := c.baseURL + "/" + userID

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrLookupFailed, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: unexpected status %d from %s", ErrLookupFailed, resp.StatusCode, url)
	}

	var user userResponse
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return "", fmt.Errorf("%w: decode response: %w", ErrLookupFailed, err)
	}

	return user.FirstName + " " + user.LastName, nil
}
