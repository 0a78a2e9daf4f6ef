package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	pkgerrors "hiu/pkg/domain-errors"
)

// expirySlack renews the cached token this long before it actually expires.
const expirySlack = 30 * time.Second

// SessionClient obtains bearer tokens from the gateway's session endpoint
// and caches them until shortly before expiry.
type SessionClient struct {
	baseURL      string
	clientID     string
	clientSecret string
	httpClient   *http.Client
	now          func() time.Time

	mu      sync.Mutex
	token   string
	expires time.Time
}

type SessionOption func(*SessionClient)

// WithSessionHTTPClient sets a custom HTTP client (for testing).
func WithSessionHTTPClient(client *http.Client) SessionOption {
	return func(c *SessionClient) {
		c.httpClient = client
	}
}

// WithSessionClock overrides the time source, for tests.
func WithSessionClock(now func() time.Time) SessionOption {
	return func(c *SessionClient) {
		c.now = now
	}
}

func NewSessionClient(baseURL, clientID, clientSecret string, timeout time.Duration, opts ...SessionOption) *SessionClient {
	c := &SessionClient{
		baseURL:      baseURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   &http.Client{Timeout: timeout},
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type sessionRequest struct {
	ClientID     string `json:"clientId"`
	ClientSecret string `json:"clientSecret"`
}

type sessionResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int    `json:"expiresIn"`
	TokenType   string `json:"tokenType"`
}

// Token returns a valid bearer token, fetching a new session only when the
// cached one is absent or about to expire.
func (c *SessionClient) Token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && c.now().Before(c.expires.Add(-expirySlack)) {
		return c.token, nil
	}

	body, err := json.Marshal(sessionRequest{ClientID: c.clientID, ClientSecret: c.clientSecret})
	if err != nil {
		return "", pkgerrors.Wrap(err, pkgerrors.CodeInternal, "failed to encode session request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/sessions", bytes.NewReader(body))
	if err != nil {
		return "", pkgerrors.Wrap(err, pkgerrors.CodeInternal, "failed to create session request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", pkgerrors.Wrap(err, pkgerrors.CodeUnavailable, "failed to reach gateway session endpoint")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", pkgerrors.New(pkgerrors.CodeAuthenticationFailed,
			fmt.Sprintf("gateway session endpoint returned status %d", resp.StatusCode))
	}

	var session sessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return "", pkgerrors.Wrap(err, pkgerrors.CodeInternal, "failed to decode session response")
	}
	if session.AccessToken == "" {
		return "", pkgerrors.New(pkgerrors.CodeAuthenticationFailed, "gateway session carries no access token")
	}

	c.token = session.AccessToken
	c.expires = c.now().Add(time.Duration(session.ExpiresIn) * time.Second)
	return c.token, nil
}
