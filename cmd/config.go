package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/asd-xiv/node-utils/internal/configs"
	"github.com/asd-xiv/node-utils/logger"
	"github.com/spf13/cobra"
)

var configInitForce bool

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

// resetConfigState resets the config commands' global state for testing.
func resetConfigState() {
	configInitForce = false
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage nu configuration",
	Long: `Provides commands for managing the nu configuration file.

Examples:
  # Write the default configuration
  nu config init

  # Show the effective configuration, flags included
  nu config show`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolvedConfigPath()
		if err != nil {
			return err
		}

		if _, err := os.Stat(path); err == nil && !configInitForce {
			return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
		} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to check config at %s: %w", path, err)
		}

		if err := configs.Save(path, configs.Default()); err != nil {
			return err
		}
		Logger.Success("Config written", logger.V("file", path))
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return toml.NewEncoder(cmd.OutOrStdout()).Encode(Config)
	},
}

func resolvedConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return configs.DefaultPath()
}
