package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var placeholderCmd = &cobra.Command{
	Use:   "placeholder-url",
	Short: "Print the placeholder image URL of the active theme",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), a.Store.PlaceholderURL())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(placeholderCmd)
}
