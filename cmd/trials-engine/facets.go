// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/trials-engine/internal/engine"
)

var facetsCmd = &cobra.Command{
	Use:   "facets",
	Short: "List the filter values present in the dataset",
	Long: `Facets scans the dataset and prints every distinct phase, overall status,
study type, and lead sponsor, each list deduplicated and sorted. These are
the values the search filters accept.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		facets := newEngine().Facets()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return engine.FormatFacetsJSON(facets, os.Stdout)
		}
		engine.FormatFacets(facets, os.Stdout)
		return nil
	},
}

func init() {
	facetsCmd.Flags().Bool("json", false, "output facets as JSON")

	rootCmd.AddCommand(facetsCmd)
}
