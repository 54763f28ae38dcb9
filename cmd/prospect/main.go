// main is the entry point for the prospect CLI.
package main

import (
	"os"

	"github.com/huangsam/prospect/cmd"
	"github.com/huangsam/prospect/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogWarn("Command failed", err)
		os.Exit(1)
	}
}
