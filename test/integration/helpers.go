//go:build integration
// +build integration

package integration

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/fivetwenty-io/scm-client/pkg/scm"
	"github.com/fivetwenty-io/scm-client/pkg/scmclient"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	APIEndpoint  string
	ClientID     string
	ClientSecret string
	TSGID        string
	Folder       string
	Verbose      bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	folder := os.Getenv("SCM_TEST_FOLDER")
	if folder == "" {
		folder = "Shared"
	}

	return &TestConfig{
		APIEndpoint:  os.Getenv("SCM_API_ENDPOINT"),
		ClientID:     os.Getenv("SCM_CLIENT_ID"),
		ClientSecret: os.Getenv("SCM_CLIENT_SECRET"),
		TSGID:        os.Getenv("SCM_TSG_ID"),
		Folder:       folder,
		Verbose:      os.Getenv("SCM_VERBOSE") == "true",
	}
}

// SkipIfMissingConfig skips the test when the live tenant is not configured
func (c *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if c.APIEndpoint == "" || c.ClientID == "" || c.ClientSecret == "" || c.TSGID == "" {
		t.Skip("Skipping integration test: SCM_API_ENDPOINT, SCM_CLIENT_ID, SCM_CLIENT_SECRET, and SCM_TSG_ID must be set")
	}
}

// NewTestClient builds an authenticated client against the configured tenant
func NewTestClient(t *testing.T, config *TestConfig) scm.Client {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := scmclient.NewWithClientCredentials(ctx, config.APIEndpoint, config.ClientID, config.ClientSecret, config.TSGID)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	return client
}

// GenerateTestName creates a unique resource name with the given prefix
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString()[:8])
}

// CleanupAddress deletes an address, ignoring not-found from earlier cleanup
func CleanupAddress(t *testing.T, client scm.Client, id string) {
	t.Helper()

	if id == "" {
		return
	}

	err := client.Addresses().Delete(context.Background(), id)
	if err != nil && !scm.IsNotFound(err) {
		t.Logf("cleanup: failed to delete address %s: %v", id, err)
	}
}

// CleanupTag deletes a tag, ignoring not-found from earlier cleanup
func CleanupTag(t *testing.T, client scm.Client, id string) {
	t.Helper()

	if id == "" {
		return
	}

	err := client.Tags().Delete(context.Background(), id)
	if err != nil && !scm.IsNotFound(err) {
		t.Logf("cleanup: failed to delete tag %s: %v", id, err)
	}
}
