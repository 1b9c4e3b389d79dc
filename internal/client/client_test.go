package client

import (
	"context"
	"testing"

	"github.com/fivetwenty-io/scm-client/internal/auth"
	"github.com/fivetwenty-io/scm-client/internal/constants"
	"github.com/fivetwenty-io/scm-client/pkg/scm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	client, err := New(context.Background(), &scm.Config{
		APIEndpoint: "https://api.example.com",
		AccessToken: "test-token",
	})
	require.NoError(t, err)

	assert.NotNil(t, client.Addresses())
	assert.NotNil(t, client.AddressGroups())
	assert.NotNil(t, client.Tags())
	assert.NotNil(t, client.EthernetInterfaces())
	assert.NotNil(t, client.Jobs())
	assert.NotNil(t, client.Operations())
}

func TestNew_RequiresEndpoint(t *testing.T) {
	_, err := New(context.Background(), &scm.Config{AccessToken: "test-token"})
	assert.ErrorIs(t, err, scm.ErrAPIEndpointRequired)
}

func TestCreateTokenManager(t *testing.T) {
	t.Run("access token wins over credentials", func(t *testing.T) {
		manager := createTokenManager(&scm.Config{
			AccessToken:  "static-token",
			ClientID:     "client-id",
			ClientSecret: "client-secret",
		})
		require.NotNil(t, manager)

		token, err := manager.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "static-token", token)
	})

	t.Run("oauth2 credentials", func(t *testing.T) {
		manager := createTokenManager(&scm.Config{
			ClientID:     "client-id",
			ClientSecret: "client-secret",
			TSGID:        "12345",
		})
		require.NotNil(t, manager)

		_, ok := manager.(*auth.OAuth2TokenManager)
		assert.True(t, ok)
	})

	t.Run("no credentials", func(t *testing.T) {
		assert.Nil(t, createTokenManager(&scm.Config{}))
	})
}

func TestStaticTokenManager_RefreshFails(t *testing.T) {
	manager := createTokenManager(&scm.Config{AccessToken: "static-token"})
	require.NotNil(t, manager)

	err := manager.RefreshToken(context.Background())
	assert.ErrorIs(t, err, constants.ErrStaticTokenRefresh)
}

func TestGetTokenURL(t *testing.T) {
	assert.Equal(t, "https://auth.example.com/token", getTokenURL(&scm.Config{
		TokenURL: "https://auth.example.com/token",
	}))
	assert.Equal(t, constants.DefaultTokenURL, getTokenURL(&scm.Config{}))
}

func TestNewWithTokenManager(t *testing.T) {
	manager := &staticTokenManager{token: "injected"}

	client, err := NewWithTokenManager(&scm.Config{APIEndpoint: "https://api.example.com"}, manager)
	require.NoError(t, err)

	assert.Same(t, manager, client.GetTokenManager())

	_, err = NewWithTokenManager(&scm.Config{}, manager)
	assert.ErrorIs(t, err, scm.ErrAPIEndpointRequired)
}
