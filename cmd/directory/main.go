package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Raymond9734/profile-directory/internal/app"
	"github.com/Raymond9734/profile-directory/internal/config"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "directory",
	Short: "Browse and manage the profile directory from the terminal",
	Long:  "directory lists, searches and maps professional profiles, and drives the admin panel for adding, editing and deleting them. The profile source and cache are configured through the same environment as the web server.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: first page of the directory
		return listCmd.RunE(cmd, args)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("directory %s\n", version)
	},
}

func init() {
	rootCmd.SilenceUsage = true
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(locationsCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(mapCmd)
	rootCmd.AddCommand(adminCmd)
}

// openApp loads configuration and connects the profile source.
// The caller closes the returned App.
func openApp(ctx context.Context) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := app.NewLogger(cfg.LogLevel)

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	return app.New(ctx, cfg, logger)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
