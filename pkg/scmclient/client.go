// Package scmclient provides the main entry point for creating
// configuration API clients.
package scmclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/scm-client/internal/client"
	"github.com/fivetwenty-io/scm-client/internal/constants"
	"github.com/fivetwenty-io/scm-client/pkg/scm"
)

// New creates a new configuration API client from the given config.
func New(ctx context.Context, config *scm.Config) (scm.Client, error) {
	if config == nil {
		return nil, scm.ErrConfigRequired
	}

	if config.APIEndpoint == "" {
		return nil, scm.ErrAPIEndpointRequired
	}

	// Normalize API endpoint
	apiEndpoint := strings.TrimSuffix(config.APIEndpoint, "/")
	if !strings.HasPrefix(apiEndpoint, "http://") && !strings.HasPrefix(apiEndpoint, "https://") {
		apiEndpoint = "https://" + apiEndpoint
	}

	config.APIEndpoint = apiEndpoint

	// Fill in the platform token endpoint when OAuth2 credentials are in
	// play and the config does not name one.
	if needsAuth(config) && config.TokenURL == "" {
		config.TokenURL = constants.DefaultTokenURL
	}

	scmClient, err := client.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return scmClient, nil
}

// needsAuth checks if the config requires an OAuth2 token fetch.
func needsAuth(config *scm.Config) bool {
	return config.AccessToken == "" && config.ClientID != ""
}

// NewWithToken creates a new client with an API endpoint and access token.
func NewWithToken(ctx context.Context, endpoint, token string) (scm.Client, error) {
	return New(ctx, &scm.Config{
		APIEndpoint: endpoint,
		AccessToken: token,
	})
}

// NewWithClientCredentials creates a new client using OAuth2 client
// credentials scoped to a tenant service group.
func NewWithClientCredentials(ctx context.Context, endpoint, clientID, clientSecret, tsgID string) (scm.Client, error) {
	return New(ctx, &scm.Config{
		APIEndpoint:  endpoint,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TSGID:        tsgID,
	})
}
