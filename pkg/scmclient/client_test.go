package scmclient_test

import (
	"context"
	"testing"

	"github.com/fivetwenty-io/scm-client/pkg/scm"
	"github.com/fivetwenty-io/scm-client/pkg/scmclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	client, err := scmclient.New(context.Background(), &scm.Config{
		APIEndpoint: "https://api.strata.paloaltonetworks.com",
		AccessToken: "test-token",
	})
	require.NoError(t, err)

	assert.NotNil(t, client.Addresses())
	assert.NotNil(t, client.Operations())
}

func TestNew_NilConfig(t *testing.T) {
	_, err := scmclient.New(context.Background(), nil)
	assert.ErrorIs(t, err, scm.ErrConfigRequired)
}

func TestNew_RequiresEndpoint(t *testing.T) {
	_, err := scmclient.New(context.Background(), &scm.Config{AccessToken: "test-token"})
	assert.ErrorIs(t, err, scm.ErrAPIEndpointRequired)
}

func TestNew_NormalizesEndpoint(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		want     string
	}{
		{"bare host gains scheme", "api.strata.paloaltonetworks.com", "https://api.strata.paloaltonetworks.com"},
		{"trailing slash trimmed", "https://api.strata.paloaltonetworks.com/", "https://api.strata.paloaltonetworks.com"},
		{"http kept for local testing", "http://localhost:8080", "http://localhost:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &scm.Config{
				APIEndpoint: tt.endpoint,
				AccessToken: "test-token",
			}

			_, err := scmclient.New(context.Background(), config)
			require.NoError(t, err)

			assert.Equal(t, tt.want, config.APIEndpoint)
		})
	}
}

func TestNew_DefaultsTokenURL(t *testing.T) {
	config := &scm.Config{
		APIEndpoint:  "https://api.strata.paloaltonetworks.com",
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		TSGID:        "12345",
	}

	_, err := scmclient.New(context.Background(), config)
	require.NoError(t, err)

	assert.Equal(t, "https://auth.apps.paloaltonetworks.com/am/oauth2/access_token", config.TokenURL)
}

func TestNew_StaticTokenSkipsTokenURL(t *testing.T) {
	config := &scm.Config{
		APIEndpoint: "https://api.strata.paloaltonetworks.com",
		AccessToken: "test-token",
		ClientID:    "client-id",
	}

	_, err := scmclient.New(context.Background(), config)
	require.NoError(t, err)

	assert.Empty(t, config.TokenURL)
}

func TestNewWithToken(t *testing.T) {
	client, err := scmclient.NewWithToken(context.Background(), "api.example.com", "test-token")
	require.NoError(t, err)
	assert.NotNil(t, client.Jobs())
}

func TestNewWithClientCredentials(t *testing.T) {
	client, err := scmclient.NewWithClientCredentials(
		context.Background(),
		"api.example.com",
		"client-id",
		"client-secret",
		"12345",
	)
	require.NoError(t, err)
	assert.NotNil(t, client.Tags())
}
