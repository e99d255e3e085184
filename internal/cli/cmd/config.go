package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/shade/internal/infrastructure/config"
	"github.com/bnema/shade/internal/logging"
)

var configWriteSchema bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		configFile, err := config.GetConfigFile()
		if err != nil {
			return err
		}
		logging.FromContext(configContext()).Debug().Str("path", configFile).Msg("config file resolved")
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), configFile)
		return nil
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of config.toml",
	Long: `Print the JSON schema of config.toml.

With --write the schema is saved next to config.toml instead, for editors
that pick up config.schema.json.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		log := logging.FromContext(configContext())

		if configWriteSchema {
			configDir, err := config.GetConfigDir()
			if err != nil {
				return err
			}
			path, err := config.WriteSchemaFile(configDir)
			if err != nil {
				return err
			}
			log.Info().Str("path", path).Msg("schema written")
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		}

		data, err := config.GenerateSchema()
		if err != nil {
			return err
		}
		log.Debug().Int("bytes", len(data)).Msg("schema generated")
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configSchemaCmd)
	configSchemaCmd.Flags().BoolVarP(&configWriteSchema, "write", "w", false, "write config.schema.json to the config directory")
}

// configContext carries a logger for the config commands, which run without
// an App (and so without a loaded config) and take their log settings from
// SHADE_LOG_LEVEL / SHADE_LOG_FORMAT.
func configContext() context.Context {
	return logging.WithContext(context.Background(), logging.NewFromEnv())
}
