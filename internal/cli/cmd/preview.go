package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bnema/shade/internal/cli/styles"
	"github.com/bnema/shade/internal/domain/entity"
)

var previewStyle string

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the dark mode toggle in the active theme",
	Long: `Render the dark mode toggle, on and off, with the active theme.

Without --style every toggle style is shown.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}

		selected := entity.ToggleStyles()
		if previewStyle != "" {
			style, parseErr := entity.ParseToggleStyle(previewStyle)
			if parseErr != nil {
				return parseErr
			}
			selected = []entity.ToggleStyle{style}
		}

		renderPreview(cmd.OutOrStdout(), a.Theme(), a.Store.IsDark(), selected)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().StringVar(&previewStyle, "style", "", "toggle style (switch, checkbox, segmented, icon, radio)")
}

func renderPreview(w io.Writer, theme *styles.Theme, dark bool, toggleStyles []entity.ToggleStyle) {
	_, _ = fmt.Fprintln(w, theme.Title.Render(fmt.Sprintf("%s / %s", theme.ID, theme.Brightness)))
	for _, style := range toggleStyles {
		_, _ = fmt.Fprintf(w, "%-10s %s   %s\n",
			style,
			theme.Toggle(style, dark, "current"),
			theme.Toggle(style, !dark, "other"),
		)
	}
}
