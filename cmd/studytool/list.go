package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var listDBPath string

func init() {
	listCmd.Flags().StringVar(&listDBPath, "db", "", "Study index database path (default: user cache dir)")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List studies in the local study index",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	db, err := openIndex(listDBPath)
	if err != nil {
		os.Exit(outputError(ExitConfigError, "opening study index: %v", err))
	}
	defer db.Close()

	studies, err := db.ListStudies()
	if err != nil {
		os.Exit(outputError(ExitError, "listing studies: %v", err))
	}

	for _, s := range studies {
		fmt.Printf("%s\t%d experiment(s)\t%d screen(s)\t%s\n",
			s.Accession, s.Experiments, s.Screens, s.Title)
	}
	return nil
}
