package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"blog-api/client"
	"blog-api/tui"
)

var apiURLFlag string

var rootCmd = &cobra.Command{
	Use:   "blog",
	Short: "Browse and manage blog posts from the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		apiURL, err := resolveAPIURL()
		if err != nil {
			return err
		}

		model := tui.NewModel(client.New(apiURL))
		if _, err := tea.NewProgram(model).Run(); err != nil {
			return fmt.Errorf("failed to run UI: %w", err)
		}
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or set the API URL",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := client.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if apiURLFlag != "" {
			cfg.APIURL = apiURLFlag
			if err := cfg.Save(); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
		}

		fmt.Printf("api_url: %s\n", cfg.ResolveAPIURL())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURLFlag, "api-url", "", "blog API base URL")
	rootCmd.AddCommand(configCmd)
}

// resolveAPIURL prefers the flag, then the config file, then the default.
func resolveAPIURL() (string, error) {
	if apiURLFlag != "" {
		return apiURLFlag, nil
	}
	cfg, err := client.LoadConfig()
	if err != nil {
		return "", fmt.Errorf("failed to load config: %w", err)
	}
	return cfg.ResolveAPIURL(), nil
}
