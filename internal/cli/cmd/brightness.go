package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bnema/shade/internal/cli"
	"github.com/bnema/shade/internal/domain/entity"
	"github.com/bnema/shade/internal/infrastructure/colorscheme"
)

var brightnessCmd = &cobra.Command{
	Use:     "brightness",
	Aliases: []string{"mode"},
	Short:   "Show or change light/dark mode",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		printBrightness(cmd.OutOrStdout(), a)
		return nil
	},
}

var brightnessGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the active brightness mode",
	Args:  cobra.NoArgs,
	RunE:  brightnessCmd.RunE,
}

var brightnessSetCmd = &cobra.Command{
	Use:       "set <light|dark>",
	Short:     "Select light or dark mode",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(entity.BrightnessLight), string(entity.BrightnessDark)},
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		return setBrightness(cmd.OutOrStdout(), a, args[0])
	},
}

var brightnessToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Switch between light and dark mode",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		a.Store.ToggleBrightness(a.Ctx())
		printBrightness(cmd.OutOrStdout(), a)
		return nil
	},
}

var brightnessSystemCmd = &cobra.Command{
	Use:   "system",
	Short: "Follow the desktop light/dark preference",
	Long: `Detect the desktop preference (GTK_THEME, then gsettings color-scheme)
and store it. Nothing changes when the desktop does not report one.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		applySystemBrightness(cmd.OutOrStdout(), a, colorscheme.NewSystemResolver())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(brightnessCmd)
	brightnessCmd.AddCommand(brightnessGetCmd, brightnessSetCmd, brightnessToggleCmd, brightnessSystemCmd)
}

func printBrightness(w io.Writer, a *cli.App) {
	_, _ = fmt.Fprintln(w, a.Store.Brightness())
}

func setBrightness(w io.Writer, a *cli.App, raw string) error {
	mode, err := entity.ParseBrightness(raw)
	if err != nil {
		return fmt.Errorf("%w: %q (want light or dark)", err, raw)
	}
	a.Store.SetBrightness(a.Ctx(), mode)
	printBrightness(w, a)
	return nil
}

func applySystemBrightness(w io.Writer, a *cli.App, resolver *colorscheme.Resolver) {
	pref := resolver.Resolve(a.Ctx())
	if !pref.Found() {
		_, _ = fmt.Fprintln(w, a.Theme().WarningStyle.Render("no desktop preference found; keeping "+a.Store.Brightness().String()))
		return
	}
	a.Store.SetBrightness(a.Ctx(), pref.Brightness)
	_, _ = fmt.Fprintf(w, "%s (from %s)\n", a.Store.Brightness(), pref.Source)
}
