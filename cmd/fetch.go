package cmd

import (
	"github.com/huangsam/prospect/core"
	"github.com/huangsam/prospect/internal/contract"
	"github.com/spf13/cobra"
)

// fetchCmd retrieves and decodes a single file.
var fetchCmd = &cobra.Command{
	Use:   "fetch <owner/repo> <path>",
	Short: "Fetch and decode a single file from a remote repository.",
	Long: `Retrieve one file from a remote repository, decode its content and
print it to stdout.

Examples:
  # Print a repository's README
  prospect fetch golang/go README.md

  # Fetch a file at a specific reference as JSON
  prospect fetch golang/go go.mod --ref go1.25.0 --output json`,
	Args:    cobra.ExactArgs(2),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		owner, repo, err := splitRepoArg(args[0])
		if err != nil {
			contract.LogFatal("Cannot parse repository argument", err)
		}
		if err := core.ExecuteFetch(rootCtx, cfg, owner, repo, args[1]); err != nil {
			contract.LogFatal("Cannot fetch file", err)
		}
	},
}
