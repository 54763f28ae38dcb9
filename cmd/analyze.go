package cmd

import (
	"github.com/huangsam/prospect/core"
	"github.com/huangsam/prospect/internal/contract"
	"github.com/spf13/cobra"
)

// analyzeCmd scores a single repository for business likelihood.
var analyzeCmd = &cobra.Command{
	Use:   "analyze <owner/repo>",
	Short: "Score a repository for business likelihood.",
	Long: `Inspect a single repository's metadata and README to estimate how
likely it is to belong to a commercial operation.

Checks indicators such as license, description, website, star count,
recent activity, topics and fork interest, then matches the README
against a business keyword vocabulary. The final score combines both.

Examples:
  # Score a well-known repository
  prospect analyze stripe/stripe-go

  # Export the full indicator breakdown as JSON
  prospect analyze stripe/stripe-go --output json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		owner, repo, err := splitRepoArg(args[0])
		if err != nil {
			contract.LogFatal("Cannot parse repository argument", err)
		}
		if err := core.ExecuteAnalyze(rootCtx, cfg, owner, repo); err != nil {
			contract.LogFatal("Cannot run repository analysis", err)
		}
	},
}
