package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/idr/studytool/internal/config"
	"github.com/idr/studytool/internal/linkcheck"
)

func init() {
	rootCmd.AddCommand(linksCmd)
}

var linksCmd = &cobra.Command{
	Use:   "links <studyfile...>",
	Short: "Check that publication identifiers resolve to reachable URLs",
	Long: `Parse one or more study files and issue a rate-limited HEAD request
for every publication identifier (PubMed ID, PMC ID, DOI), reporting
the HTTP status of each derived URL.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLinks,
}

func runLinks(cmd *cobra.Command, args []string) error {
	var opts []linkcheck.ClientOption
	if secs := config.GetLinkTimeoutSeconds(); secs > 0 {
		opts = append(opts, linkcheck.WithTimeout(time.Duration(secs)*time.Second))
	}
	client := linkcheck.NewClient(opts...)

	parser := newParser()
	broken := 0

	for _, path := range args {
		parsed, err := parser.ParseFile(path)
		if err != nil {
			os.Exit(outputError(ExitDataError, "parsing %s: %v", path, err))
		}

		results, err := client.CheckPublications(cmd.Context(), parsed.Study.Publications)
		if err != nil {
			os.Exit(outputError(ExitError, "checking links for %s: %v", path, err))
		}

		for _, r := range results {
			status := fmt.Sprintf("%d", r.Status)
			if r.Err != nil {
				status = r.Err.Error()
			}
			mark := "ok"
			if !r.OK() {
				mark = "broken"
				broken++
			}
			fmt.Printf("%s\t%s\t%s\t%s\t%s\n", mark, r.Label, r.Value, r.URL, status)
		}
	}

	if broken > 0 {
		os.Exit(outputError(ExitDataError, "%d broken publication link(s)", broken))
	}
	return nil
}
