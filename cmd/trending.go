package cmd

import (
	"github.com/huangsam/prospect/core"
	"github.com/huangsam/prospect/internal/contract"
	"github.com/spf13/cobra"
)

// trendingCmd lists recently created repositories ranked by stars.
var trendingCmd = &cobra.Command{
	Use:   "trending",
	Short: "Show repositories created within a recent window, ranked by stars.",
	Long: `List repositories created within the last day, week or month,
ranked from most to least starred.

Examples:
  # This week's most starred new repositories
  prospect trending

  # New Rust projects from the last month
  prospect trending --language Rust --window monthly`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTrending(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run trending search", err)
		}
	},
}
