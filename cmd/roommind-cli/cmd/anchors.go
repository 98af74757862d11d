package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"roommind/internal/domain"
)

var anchorsCmd = &cobra.Command{
	Use:   "anchors",
	Short: "List the room anchors",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(seed.Anchors) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No anchors")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), domain.DescribeAnchors(seed.Anchors))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(anchorsCmd)
}
