package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/fivetwenty-io/scm-client/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrNoTokenURL    = errors.New("no token URL configured")
	ErrTokenRequest  = errors.New("token request failed")
	ErrEmptyToken    = errors.New("token endpoint returned an empty access token")
	ErrNoCredentials = errors.New("no client credentials configured")
)

// TokenManager supplies bearer tokens to the HTTP layer.
type TokenManager interface {
	GetToken(ctx context.Context) (string, error)
	RefreshToken(ctx context.Context) error
	SetToken(token string, expiresAt time.Time)
}

// OAuth2Config configures the client_credentials grant.
type OAuth2Config struct {
	// TokenURL is the full OAuth2 token endpoint.
	TokenURL string
	// ClientID and ClientSecret are sent as HTTP basic auth.
	ClientID     string
	ClientSecret string
	// TSGID scopes the token to one tenant service group; it is sent as
	// the scope "tsg_id:<TSGID>".
	TSGID string
}

// OAuth2TokenManager obtains and refreshes tokens with the
// client_credentials grant.
type OAuth2TokenManager struct {
	config     *OAuth2Config
	store      *tokenStore
	httpClient *http.Client

	// refreshMu serializes token fetches so concurrent callers do not
	// stampede the token endpoint.
	refreshMu sync.Mutex
}

// NewOAuth2TokenManager creates a token manager for the given config.
func NewOAuth2TokenManager(config *OAuth2Config) *OAuth2TokenManager {
	return &OAuth2TokenManager{
		config: config,
		store:  &tokenStore{},
		httpClient: &http.Client{
			Timeout: constants.ShortHTTPTimeout,
		},
	}
}

// GetToken returns a valid access token, fetching a fresh one when the
// stored token is absent or about to expire.
func (m *OAuth2TokenManager) GetToken(ctx context.Context) (string, error) {
	token := m.store.Get()
	if token.IsValid(constants.TokenExpirationBuffer) {
		return token.AccessToken, nil
	}

	if err := m.fetchToken(ctx, false); err != nil {
		return "", err
	}

	return m.store.Get().AccessToken, nil
}

// RefreshToken forces a fresh token fetch regardless of expiry. The HTTP
// layer calls this on a 401, where the stored token may look unexpired but
// has been rejected server-side.
func (m *OAuth2TokenManager) RefreshToken(ctx context.Context) error {
	return m.fetchToken(ctx, true)
}

// SetToken manually sets the access token.
func (m *OAuth2TokenManager) SetToken(token string, expiresAt time.Time) {
	m.store.Set(&Token{
		AccessToken: token,
		ExpiresAt:   expiresAt,
	})
}

func (m *OAuth2TokenManager) fetchToken(ctx context.Context, force bool) error {
	m.refreshMu.Lock()
	defer m.refreshMu.Unlock()

	// Another caller may have refreshed while we waited on the lock.
	if !force && m.store.Get().IsValid(constants.TokenExpirationBuffer) {
		return nil
	}

	if m.config.TokenURL == "" {
		return ErrNoTokenURL
	}

	if m.config.ClientID == "" || m.config.ClientSecret == "" {
		return ErrNoCredentials
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	if m.config.TSGID != "" {
		form.Set("scope", "tsg_id:"+m.config.TSGID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.config.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("creating token request: %w", err)
	}

	req.SetBasicAuth(m.config.ClientID, m.config.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("requesting token: %w", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w with status %d: %s", ErrTokenRequest, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var token Token
	if err := json.Unmarshal(body, &token); err != nil {
		return fmt.Errorf("parsing token response: %w", err)
	}

	if token.AccessToken == "" {
		return ErrEmptyToken
	}

	if token.ExpiresIn > 0 {
		token.ExpiresAt = time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)
	}

	m.store.Set(&token)

	return nil
}
