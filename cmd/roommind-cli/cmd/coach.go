package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"roommind/internal/application/commands"
)

var coachCmd = &cobra.Command{
	Use:   "coach",
	Short: "Get a productivity tip for today's stats",
	RunE: func(cmd *cobra.Command, args []string) error {
		insight := commands.NewCoachCommand(rt.AI, seed.Stats).Execute(cmd.Context())
		fmt.Fprintln(cmd.OutOrStdout(), insight)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(coachCmd)
}
