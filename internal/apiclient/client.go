// Package apiclient talks to the remote authentication API. It owns the
// outgoing half of the authorization flow: every request goes through the
// AuthTransport, which attaches the bearer token and reacts to 401s.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/marketsquare/vendor-portal/internal/core/domain"
	"github.com/marketsquare/vendor-portal/internal/core/ports"
)

const defaultRequestTimeout = 15 * time.Second

// Client implements ports.AuthAPI against the remote authentication service.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

var _ ports.AuthAPI = (*Client)(nil)

// New creates a Client whose requests carry the session's bearer token.
func New(baseURL string, sessions SessionSource, nav ports.Navigator, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: defaultRequestTimeout,
			Transport: &AuthTransport{
				Sessions:  sessions,
				Navigator: nav,
				Log:       log,
			},
		},
		log: log,
	}
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signInResponse struct {
	Token    string           `json:"token"`
	Identity *domain.Identity `json:"identity"`
}

// SignIn exchanges credentials for a (token, identity) pair.
func (c *Client) SignIn(ctx context.Context, email, password string) (string, *domain.Identity, error) {
	var out signInResponse
	err := c.do(ctx, http.MethodPost, "/auth/signin", signInRequest{Email: email, Password: password}, &out)
	if err != nil {
		return "", nil, err
	}
	if out.Token == "" {
		return "", nil, fmt.Errorf("sign in: response missing token")
	}
	return out.Token, out.Identity, nil
}

// UpdateProfile applies a partial profile update and returns the updated
// identity as the remote API sees it.
func (c *Client) UpdateProfile(ctx context.Context, patch domain.IdentityPatch) (*domain.Identity, error) {
	var out domain.Identity
	if err := c.do(ctx, http.MethodPatch, "/me/profile", patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		// The transport has already cleared the session; the caller still
		// observes the failure.
		return domain.ErrInvalidCredentials
	case resp.StatusCode >= 400:
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
