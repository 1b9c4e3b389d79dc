package client

import (
	"context"
	"time"

	"github.com/fivetwenty-io/scm-client/internal/auth"
	"github.com/fivetwenty-io/scm-client/internal/constants"
	"github.com/fivetwenty-io/scm-client/internal/http"
	"github.com/fivetwenty-io/scm-client/pkg/scm"
)

// Client implements the scm.Client interface.
type Client struct {
	httpClient   *http.Client
	tokenManager auth.TokenManager
	baseURL      string
	logger       scm.Logger

	// Resource clients
	addresses          scm.AddressesClient
	addressGroups      scm.AddressGroupsClient
	tags               scm.TagsClient
	ethernetInterfaces scm.EthernetInterfacesClient
	jobs               scm.JobsClient
	operations         scm.OperationsClient
}

// createTokenManager creates the appropriate token manager based on config.
// A static access token, when present, wins over OAuth2 credentials.
func createTokenManager(config *scm.Config) auth.TokenManager {
	if config.AccessToken != "" {
		return &staticTokenManager{token: config.AccessToken}
	}

	if config.ClientID != "" && config.ClientSecret != "" {
		return auth.NewOAuth2TokenManager(&auth.OAuth2Config{
			TokenURL:     getTokenURL(config),
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
			TSGID:        config.TSGID,
		})
	}

	return nil // No authentication
}

// getTokenURL returns the token URL from config or the platform default.
func getTokenURL(config *scm.Config) string {
	if config.TokenURL != "" {
		return config.TokenURL
	}

	return constants.DefaultTokenURL
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *scm.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a new configuration API client.
func New(_ context.Context, config *scm.Config) (*Client, error) {
	if config.APIEndpoint == "" {
		return nil, scm.ErrAPIEndpointRequired
	}

	tokenManager := createTokenManager(config)
	httpOpts := createHTTPClientOptions(config)
	httpClient := http.NewClient(config.APIEndpoint, tokenManager, httpOpts...)

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		baseURL:      config.APIEndpoint,
		logger:       config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// NewWithTokenManager creates a client with a caller-supplied token manager.
func NewWithTokenManager(config *scm.Config, tokenManager auth.TokenManager) (*Client, error) {
	if config.APIEndpoint == "" {
		return nil, scm.ErrAPIEndpointRequired
	}

	httpOpts := createHTTPClientOptions(config)
	httpClient := http.NewClient(config.APIEndpoint, tokenManager, httpOpts...)

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		baseURL:      config.APIEndpoint,
		logger:       config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.addresses = NewAddressesClient(c.httpClient)
	c.addressGroups = NewAddressGroupsClient(c.httpClient)
	c.tags = NewTagsClient(c.httpClient)
	c.ethernetInterfaces = NewEthernetInterfacesClient(c.httpClient)

	jobs := NewJobsClient(c.httpClient)
	c.jobs = jobs
	c.operations = NewOperationsClient(c.httpClient, jobs)
}

// GetTokenManager returns the token manager for this client.
func (c *Client) GetTokenManager() auth.TokenManager {
	return c.tokenManager
}

// Addresses implements scm.Client.Addresses.
func (c *Client) Addresses() scm.AddressesClient {
	return c.addresses
}

// AddressGroups implements scm.Client.AddressGroups.
func (c *Client) AddressGroups() scm.AddressGroupsClient {
	return c.addressGroups
}

// Tags implements scm.Client.Tags.
func (c *Client) Tags() scm.TagsClient {
	return c.tags
}

// EthernetInterfaces implements scm.Client.EthernetInterfaces.
func (c *Client) EthernetInterfaces() scm.EthernetInterfacesClient {
	return c.ethernetInterfaces
}

// Jobs implements scm.Client.Jobs.
func (c *Client) Jobs() scm.JobsClient {
	return c.jobs
}

// Operations implements scm.Client.Operations.
func (c *Client) Operations() scm.OperationsClient {
	return c.operations
}

// staticTokenManager provides a fixed token that is never refreshed.
type staticTokenManager struct {
	token string
}

func (m *staticTokenManager) GetToken(_ context.Context) (string, error) {
	return m.token, nil
}

func (m *staticTokenManager) RefreshToken(_ context.Context) error {
	return constants.ErrStaticTokenRefresh
}

func (m *staticTokenManager) SetToken(token string, _ time.Time) {
	m.token = token
}

// loggerAdapter adapts scm.Logger to http.Logger.
type loggerAdapter struct {
	logger scm.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
