package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fivetwenty-io/scm-client/internal/auth"
	"github.com/fivetwenty-io/scm-client/internal/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		apiEndpoint  string
		clientID     string
		clientSecret string
		tsgID        string
		tokenURL     string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to Strata Cloud Manager",
		Long:  "Authenticate with OAuth2 client credentials and save them to the CLI configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(os.Stdin)

			// Get API endpoint
			if apiEndpoint == "" {
				apiEndpoint = viper.GetString("api")
			}

			if apiEndpoint == "" {
				fmt.Print("API endpoint: ")
				apiEndpoint, _ = reader.ReadString('\n')
				apiEndpoint = strings.TrimSpace(apiEndpoint)
			}

			if apiEndpoint == "" {
				return ErrAPIEndpointRequired
			}

			if clientID == "" {
				fmt.Print("Client ID: ")
				clientID, _ = reader.ReadString('\n')
				clientID = strings.TrimSpace(clientID)
			}

			if clientSecret == "" {
				fmt.Print("Client secret: ")
				byteSecret, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read client secret: %w", err)
				}
				clientSecret = string(byteSecret)
				fmt.Println()
			}

			if tsgID == "" {
				fmt.Print("Tenant service group ID: ")
				tsgID, _ = reader.ReadString('\n')
				tsgID = strings.TrimSpace(tsgID)
			}

			if tokenURL == "" {
				tokenURL = constants.DefaultTokenURL
			}

			// Verify the credentials before persisting them
			tokenManager := auth.NewOAuth2TokenManager(&auth.OAuth2Config{
				TokenURL:     tokenURL,
				ClientID:     clientID,
				ClientSecret: clientSecret,
				TSGID:        tsgID,
			})

			if _, err := tokenManager.GetToken(context.Background()); err != nil {
				return fmt.Errorf("authentication failed: %w", err)
			}

			viper.Set("api", apiEndpoint)
			viper.Set("client_id", clientID)
			viper.Set("client_secret", clientSecret)
			viper.Set("tsg_id", tsgID)
			viper.Set("token_url", tokenURL)

			if err := saveConfig(); err != nil {
				return fmt.Errorf("saving configuration: %w", err)
			}

			fmt.Printf("Logged in to %s\n", apiEndpoint)

			return nil
		},
	}

	cmd.Flags().StringVarP(&apiEndpoint, "api", "a", "", "API endpoint URL")
	cmd.Flags().StringVar(&clientID, "client-id", "", "OAuth2 client ID")
	cmd.Flags().StringVar(&clientSecret, "client-secret", "", "OAuth2 client secret")
	cmd.Flags().StringVar(&tsgID, "tsg-id", "", "tenant service group ID")
	cmd.Flags().StringVar(&tokenURL, "token-url", "", "OAuth2 token endpoint")

	return cmd
}

// saveConfig persists the active viper settings to ~/.scm/config.yml.
func saveConfig() error {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}

		configDir := filepath.Join(home, ".scm")
		if err := os.MkdirAll(configDir, constants.ConfigDirPerm); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}

		configFile = filepath.Join(configDir, "config.yml")
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return os.Chmod(configFile, constants.ConfigFilePerm)
}
