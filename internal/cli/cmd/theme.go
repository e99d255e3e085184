package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bnema/shade/internal/cli"
	"github.com/bnema/shade/internal/domain/entity"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show or change the color theme",
	Long:  `Print the active theme. Use the subcommands to list or select themes.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		printTheme(cmd.OutOrStdout(), a)
		return nil
	},
}

var themeGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the active theme",
	Args:  cobra.NoArgs,
	RunE:  themeCmd.RunE,
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available themes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		listThemes(cmd.OutOrStdout(), a)
		return nil
	},
}

var themeSetCmd = &cobra.Command{
	Use:   "set <theme>",
	Short: "Select a theme",
	Long: `Select and persist a theme.

Names outside the list are stored as given; such a theme uses the default
placeholder image.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: themeNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		setTheme(cmd.OutOrStdout(), a, entity.ThemeID(args[0]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeGetCmd, themeListCmd, themeSetCmd)
}

func themeNames() []string {
	known := entity.KnownThemes()
	names := make([]string, len(known))
	for i, id := range known {
		names[i] = id.String()
	}
	return names
}

func printTheme(w io.Writer, a *cli.App) {
	_, _ = fmt.Fprintln(w, a.Store.Theme())
}

func listThemes(w io.Writer, a *cli.App) {
	theme := a.Theme()
	current := a.Store.Theme()

	for _, id := range entity.KnownThemes() {
		swatch := theme.Swatch.Background(theme.AccentFor(id)).Render("  ")
		if id == current {
			_, _ = fmt.Fprintf(w, "● %s %s\n", swatch, theme.Highlight.Render(id.String()))
			continue
		}
		_, _ = fmt.Fprintf(w, "  %s %s\n", swatch, theme.Normal.Render(id.String()))
	}
}

func setTheme(w io.Writer, a *cli.App, id entity.ThemeID) {
	a.Store.SetTheme(a.Ctx(), id)

	theme := a.Theme()
	if !id.IsKnown() {
		_, _ = fmt.Fprintln(w, theme.WarningStyle.Render(
			fmt.Sprintf("%q is not a known theme; using the default placeholder", id)))
	}
	_, _ = fmt.Fprintf(w, "theme: %s\n", theme.Highlight.Render(id.String()))
}
