// Package cmd defines the command-line interface for prospect.
package cmd

import (
	"github.com/huangsam/prospect/internal/contract"
	"github.com/huangsam/prospect/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(discoverCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(trendingCmd)
	rootCmd.AddCommand(filesCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("token", "", "API token for authenticated requests (falls back to anonymous access)")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent remote calls")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("emoji", "yes", "Enable emoji in progress output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("ref", "", "Git reference (defaults to the default branch)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of discoverCmd to Viper
	discoverCmd.Flags().String("industry", "", "Industry topic to search for (e.g. fintech)")
	discoverCmd.Flags().String("technology", "", "Primary language to search for (e.g. Go)")
	discoverCmd.Flags().String("location", "", "Owner location filter")
	discoverCmd.Flags().String("company", "", "Name/description substring filter")
	discoverCmd.Flags().Int("min-stars", 0, "Lower bound on repository stars")
	if err := viper.BindPFlags(discoverCmd.Flags()); err != nil {
		contract.LogFatal("Error binding discover flags", err)
	}

	// Bind all flags of trendingCmd to Viper
	trendingCmd.Flags().String("language", "", "Language filter for trending repositories")
	trendingCmd.Flags().String("window", string(schema.WeeklyWindow), "Creation window: daily or weekly or monthly")
	if err := viper.BindPFlags(trendingCmd.Flags()); err != nil {
		contract.LogFatal("Error binding trending flags", err)
	}

	// Bind all flags of filesCmd to Viper
	filesCmd.Flags().String("path", "", "Root path to start the listing from")
	filesCmd.Flags().String("ext", "", "Comma-separated extension filter (e.g. '.go,.md')")
	if err := viper.BindPFlags(filesCmd.Flags()); err != nil {
		contract.LogFatal("Error binding files flags", err)
	}
}
