package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/idr/studytool/internal/annotation"
	"github.com/idr/studytool/internal/schema"
	"github.com/idr/studytool/internal/study"
)

var parseReport bool

func init() {
	parseCmd.Flags().BoolVar(&parseReport, "report", false, "Print an annotation report for every component")
	rootCmd.AddCommand(parseCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse <studyfile...>",
	Short: "Parse and validate study files",
	Long: `Parse one or more study files, validating mandatory metadata,
publication alignment, and component sections.

With --report, print for every experiment and then every screen a
description block followed by tab-separated label/value map lines.

Any malformed file aborts the whole run with a non-zero exit status.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	parser := newParser()

	for _, path := range args {
		parsed, err := parser.ParseFile(path)
		if err != nil {
			os.Exit(outputError(ExitDataError, "parsing %s: %v", path, err))
		}

		if parseReport {
			if err := reportComponents(parsed); err != nil {
				os.Exit(outputError(ExitDataError, "reporting %s: %v", path, err))
			}
		} else {
			fmt.Fprintf(os.Stderr, "Parsed %s: %d component(s)\n", path, len(parsed.Components))
		}
	}
	return nil
}

// reportComponents prints annotation reports for every experiment, then every
// screen, in component-list order.
func reportComponents(parsed *study.Parsed) error {
	for _, t := range schema.ComponentTypes {
		for _, c := range parsed.Components {
			if c.Type != t {
				continue
			}
			obj, err := annotation.Build(c)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Generating annotations for %s\n", obj.Name)
			printObject(obj)
		}
	}
	return nil
}
