package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:          "ourassets",
	Short:        "Per-request CSS and JavaScript collection for templ pages on Echo",
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the ourassets version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "ourassets %s\n", version)
	},
}

func main() {
	// A missing .env is fine; the environment may be set by other means.
	_ = godotenv.Load()

	rootCmd.AddCommand(newServeCmd(), versionCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
