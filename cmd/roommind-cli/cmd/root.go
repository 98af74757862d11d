package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"roommind/internal/application/dashboard"
	"roommind/internal/bootstrap"
	"roommind/internal/config"
	"roommind/internal/logging"
)

var (
	configPath  string
	anchorsPath string
	verbose     bool
	rt          *bootstrap.Runtime
	seed        dashboard.Seed
)

var rootCmd = &cobra.Command{
	Use:   "roommind-cli",
	Short: "CLI for the RoomMind productivity dashboard",
	Long: `roommind-cli runs the RoomMind AI features from the command line.

It lists the room anchors and notes, summarizes notes, extracts tasks,
plans hologram placements and renders the room plan.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands and for the config subtree,
		// which must work even when the config file is broken
		if cmd.Name() == "help" || cmd.Name() == "completion" || inConfigTree(cmd) {
			return nil
		}

		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if anchorsPath != "" {
			cfg.AnchorsFile = config.ExpandHome(anchorsPath)
		}

		logger, err := logging.New(logging.Options{
			Level:   cfg.LogLevel,
			Verbose: verbose,
			File:    cfg.LogFile,
		})
		if err != nil {
			return err
		}

		rt, err = bootstrap.New(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		seed, err = rt.Seed(cmd.Context())
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if rt != nil {
			_ = rt.Logger.Sync()
		}
	},
}

func inConfigTree(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c == configCmd {
			return true
		}
	}
	return false
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.Path(), "path to the config file")
	rootCmd.PersistentFlags().StringVarP(&anchorsPath, "anchors", "a", "", "path to a YAML anchors file (overrides anchors_file)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
