package cmd

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/shade/internal/cli/model"
	"github.com/bnema/shade/internal/logging"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Pick theme and brightness interactively",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(a.Ctx())
		defer cancel()

		if err := a.WatchConfig(ctx); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("config watch unavailable")
		}

		m := model.NewSettingsModel(ctx, a.Store, a.Config.ToggleStyle())
		p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
		_, err = p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
}
