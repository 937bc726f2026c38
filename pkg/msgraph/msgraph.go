package msgraph

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ErrUnauthorized indicates the identity provider rejected the presented token.
var ErrUnauthorized = errors.New("identity provider rejected token")

// Profile is the subset of the Microsoft Graph /me payload the service uses.
type Profile struct {
	Mail        string `json:"mail"`
	DisplayName string `json:"displayName"`
}

// Client fetches user profiles from Microsoft Graph using delegated tokens.
type Client struct {
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
}

// New constructs a Microsoft Graph client.
func New(baseURL string, logger zerolog.Logger) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("graph base url must not be empty")
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		logger:  logger.With().Str("component", "msgraph").Logger(),
	}, nil
}

// Me resolves the profile behind the given bearer credential. The credential
// is forwarded as-is; validating it is entirely the identity provider's job.
func (c *Client) Me(ctx context.Context, authorization string) (Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/me", nil)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to build profile request: %w", err)
	}

	if !strings.HasPrefix(strings.ToLower(authorization), "bearer ") {
		authorization = "Bearer " + authorization
	}
	req.Header.Set("Authorization", authorization)

	resp, err := c.http.Do(req)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to fetch profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return Profile{}, ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return Profile{}, fmt.Errorf("unexpected profile response status %d", resp.StatusCode)
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return Profile{}, fmt.Errorf("failed to decode profile payload: %w", err)
	}

	return profile, nil
}
