package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fivetwenty-io/scm-client/pkg/scm"
	"github.com/fivetwenty-io/scm-client/pkg/scmclient"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	OutputFormatTable = "table"
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"
)

// Common static errors used throughout the commands package.
var (
	ErrAPIEndpointRequired = errors.New("API endpoint is required (use --api, SCM_API, or 'scm login')")
	ErrNotAuthenticated    = errors.New("not authenticated (use --token, SCM_TOKEN, or 'scm login')")
	ErrFolderRequired      = errors.New("a folder is required (use --folder)")
	ErrAddressNotFound     = errors.New("address not found")
	ErrTagNotFound         = errors.New("tag not found")
)

// createClient builds an API client from the active viper configuration.
// A static token wins over OAuth2 credentials, matching the SDK.
func createClient(ctx context.Context) (scm.Client, error) {
	endpoint := viper.GetString("api")
	if endpoint == "" {
		return nil, ErrAPIEndpointRequired
	}

	config := &scm.Config{
		APIEndpoint:  endpoint,
		AccessToken:  viper.GetString("token"),
		ClientID:     viper.GetString("client_id"),
		ClientSecret: viper.GetString("client_secret"),
		TSGID:        viper.GetString("tsg_id"),
		TokenURL:     viper.GetString("token_url"),
	}

	if config.AccessToken == "" && config.ClientID == "" {
		return nil, ErrNotAuthenticated
	}

	client, err := scmclient.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return client, nil
}

// queryParamsFromFlags assembles list params from the shared container and
// filter flags.
func queryParamsFromFlags(folder, snippet, device, name string, filters []string) (*scm.QueryParams, error) {
	params := scm.NewQueryParams()

	if folder != "" {
		params.WithFolder(folder)
	}

	if snippet != "" {
		params.WithSnippet(snippet)
	}

	if device != "" {
		params.WithDevice(device)
	}

	if name != "" {
		params.WithName(name)
	}

	for _, filter := range filters {
		field, value, found := strings.Cut(filter, "=")
		if !found || field == "" || value == "" {
			return nil, fmt.Errorf("invalid filter %q (expected field=value)", filter)
		}

		params.WithFilter(field, strings.Split(value, ",")...)
	}

	return params, nil
}

// renderJSON writes the value to stdout as indented JSON.
func renderJSON(value any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return encoder.Encode(value)
}

// renderYAML writes the value to stdout as YAML.
func renderYAML(value any) error {
	encoder := yaml.NewEncoder(os.Stdout)

	return encoder.Encode(value)
}

// valueOrDash substitutes a dash for empty table cells.
func valueOrDash(value string) string {
	if value == "" {
		return "-"
	}

	return value
}

// joinTags renders a tag list for a table cell.
func joinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// container formats an object's single configured container for display.
func container(folder, snippet, device string) string {
	switch {
	case folder != "":
		return "folder/" + folder
	case snippet != "":
		return "snippet/" + snippet
	case device != "":
		return "device/" + device
	}

	return "-"
}
