// Package main provides the studytool CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/idr/studytool/internal/config"
	"github.com/idr/studytool/internal/schema"
	"github.com/idr/studytool/internal/study"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "studytool",
	Short: "Parse and report on IDR study description files",
	Long: `studytool parses tab-delimited IDR study description files, validates
their metadata against the study/experiment/screen schema, cross-links
publication records, resolves companion annotation files, and emits
normalized annotation reports.

Studies can additionally be indexed into a local SQLite database for
listing, and publication identifiers can be checked for reachability.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Load .env file if present (for XDG overrides in development)
	_ = godotenv.Load()

	rootCmd.Version = Version
}

// newParser builds a study parser honoring the global configuration.
func newParser() *study.Parser {
	var opts []study.Option
	if base := config.GetGitHubBase(); base != "" {
		opts = append(opts, study.WithGitHubBase(base))
	}
	if repo := config.GetDefaultRepo(); repo != "" {
		opts = append(opts, study.WithFallbackRepo(repo))
	}
	return study.NewParser(schema.Default(), opts...)
}
