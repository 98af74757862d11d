package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"roommind/internal/config"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Long: `Write the default configuration file. An existing file is kept
unless --force is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.ExpandHome(configPath)

		_, err := os.Stat(path)
		switch {
		case err == nil && !configForce:
			return fmt.Errorf("config file %s already exists (use --force)", path)
		case err != nil && !errors.Is(err, os.ErrNotExist):
			return fmt.Errorf("failed to check config file: %w", err)
		}

		if err := config.Save(path, config.Default()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing config file")

	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
