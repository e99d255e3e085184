// Package cmd provides Cobra CLI commands for shade.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/shade/internal/cli"
)

var (
	app       *cli.App
	ephemeral bool
	rootCmd   = &cobra.Command{
		Use:   "shade",
		Short: "Theme and brightness preferences",
		Long: `Shade keeps the selected color theme and light/dark mode of an
application, persists them across restarts and resolves the placeholder
image that belongs to the active theme.

Preferences are stored in SQLite by default; see 'shade config path' for
the configuration file that selects another backend.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need the store
			switch cmd.Name() {
			case "help", "completion", configCmd.Name():
				return nil
			}
			if cmd.Parent() != nil && cmd.Parent().Name() == configCmd.Name() {
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{Ephemeral: ephemeral})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "keep preferences in memory for this run only")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

func requireApp() (*cli.App, error) {
	a := GetApp()
	if a == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return a, nil
}

// SetVersion sets the version reported by --version (called from main.go before Execute).
func SetVersion(version, commit string) {
	rootCmd.Version = fmt.Sprintf("%s (%s)", version, commit)
}
