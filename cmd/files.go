package cmd

import (
	"github.com/huangsam/prospect/core"
	"github.com/huangsam/prospect/internal/contract"
	"github.com/spf13/cobra"
)

// filesCmd recursively lists the files of a remote repository.
var filesCmd = &cobra.Command{
	Use:   "files <owner/repo>",
	Short: "Recursively list all files of a remote repository tree.",
	Long: `Walk a remote repository tree breadth-first and list every file,
optionally filtered by extension.

Examples:
  # List every file in a repository
  prospect files golang/go

  # List only Go sources under src/
  prospect files golang/go --path src --ext .go

  # List files at a specific tag
  prospect files golang/go --ref go1.25.0`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		owner, repo, err := splitRepoArg(args[0])
		if err != nil {
			contract.LogFatal("Cannot parse repository argument", err)
		}
		if err := core.ExecuteFiles(rootCtx, cfg, owner, repo); err != nil {
			contract.LogFatal("Cannot run file listing", err)
		}
	},
}
