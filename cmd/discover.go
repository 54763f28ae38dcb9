package cmd

import (
	"github.com/huangsam/prospect/core"
	"github.com/huangsam/prospect/internal/contract"
	"github.com/spf13/cobra"
)

// discoverCmd searches for business and organization profiles.
var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Find businesses matching discovery criteria, ranked by stars.",
	Long: `Search the remote code host for repositories matching your criteria,
then group them by owner into business profiles ranked by aggregate stars.

Helps you:
- Map the companies active in an industry or technology niche
- Find organizations in a given location
- Filter out hobby accounts with a public footprint threshold

Examples:
  # Find fintech companies working in Go
  prospect discover --industry fintech --technology Go

  # Find well-established platforms in Berlin
  prospect discover --location Berlin --min-stars 500

  # Export findings to CSV for tracking
  prospect discover --industry devtools --output csv --output-file businesses.csv`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteDiscover(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run business discovery", err)
		}
	},
}
