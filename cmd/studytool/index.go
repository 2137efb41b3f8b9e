package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/idr/studytool/internal/config"
	"github.com/idr/studytool/internal/store"
)

var indexDBPath string

func init() {
	indexCmd.Flags().StringVar(&indexDBPath, "db", "", "Study index database path (default: user cache dir)")
	rootCmd.AddCommand(indexCmd)
}

var indexCmd = &cobra.Command{
	Use:   "index <studyfile...>",
	Short: "Parse study files and store them in the local study index",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runIndex,
}

// openIndex opens the study index at the --db path or the configured default.
func openIndex(flagPath string) (*store.DB, error) {
	path := flagPath
	if path == "" {
		var err error
		path, err = config.DefaultDBPath()
		if err != nil {
			return nil, err
		}
	}
	return store.Open(path)
}

func runIndex(cmd *cobra.Command, args []string) error {
	db, err := openIndex(indexDBPath)
	if err != nil {
		os.Exit(outputError(ExitConfigError, "opening study index: %v", err))
	}
	defer db.Close()

	parser := newParser()
	for _, path := range args {
		parsed, err := parser.ParseFile(path)
		if err != nil {
			os.Exit(outputError(ExitDataError, "parsing %s: %v", path, err))
		}
		if err := db.IndexStudy(parsed); err != nil {
			os.Exit(outputError(ExitError, "indexing %s: %v", path, err))
		}
		fmt.Printf("Indexed %s (%d components)\n",
			parsed.Study.Fields["Comment[IDR Study Accession]"], len(parsed.Components))
	}
	return nil
}
