// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/trials-engine/internal/engine"
	"github.com/pdiddy/trials-engine/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the trial dataset",
	Long: `Search runs a free-text query over trial titles, summaries, conditions,
keywords, sponsors, and interventions, with optional structured filters.
Matching is fuzzy: acronyms, hyphenation differences, and partial word
overlap all count.

Results print as a table by default; --json emits the full result page.
A search can be saved to a YAML file with --save and replayed later with
--load.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringSlice("phase", nil, "filter by phase tag (repeatable)")
	searchCmd.Flags().StringSlice("status", nil, "filter by overall status (repeatable)")
	searchCmd.Flags().StringSlice("study-type", nil, "filter by study type (repeatable)")
	searchCmd.Flags().String("sponsor", "", "fuzzy filter by lead sponsor name")
	searchCmd.Flags().String("condition", "", "fuzzy filter by condition")
	searchCmd.Flags().String("intervention", "", "fuzzy filter by intervention name")
	searchCmd.Flags().String("sort-by", "", "sort field: nct-id, title, status, phase, sponsor, study-type, enrollment, start-date")
	searchCmd.Flags().String("sort-order", "asc", "sort direction: asc or desc")
	searchCmd.Flags().Int("page", types.DefaultPage, "result page number")
	searchCmd.Flags().Int("limit", types.DefaultPageSize, "results per page (max 100)")
	searchCmd.Flags().Bool("json", false, "output the result page as JSON")
	searchCmd.Flags().String("save", "", "save the request and results to a YAML file")
	searchCmd.Flags().String("load", "", "print the results of a previously saved search")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	if loadPath, _ := cmd.Flags().GetString("load"); loadPath != "" {
		qf, err := engine.ReadQueryFile(loadPath)
		if err != nil {
			return err
		}
		return printPage(qf.Results, asJSON)
	}

	req := types.SearchRequest{}
	if len(args) == 1 {
		req.Query = args[0]
	}
	req.Filters.Phase, _ = cmd.Flags().GetStringSlice("phase")
	req.Filters.Status, _ = cmd.Flags().GetStringSlice("status")
	req.Filters.StudyType, _ = cmd.Flags().GetStringSlice("study-type")
	req.Filters.Sponsor, _ = cmd.Flags().GetString("sponsor")
	req.Filters.Condition, _ = cmd.Flags().GetString("condition")
	req.Filters.Intervention, _ = cmd.Flags().GetString("intervention")
	req.SortBy, _ = cmd.Flags().GetString("sort-by")

	order, _ := cmd.Flags().GetString("sort-order")
	switch order {
	case "", string(types.SortAsc):
		req.SortOrder = types.SortAsc
	case string(types.SortDesc):
		req.SortOrder = types.SortDesc
	default:
		return fmt.Errorf("sort-order must be %q or %q, got %q", types.SortAsc, types.SortDesc, order)
	}

	req.Page, _ = cmd.Flags().GetInt("page")
	req.Limit, _ = cmd.Flags().GetInt("limit")
	if req.Page < 1 {
		return fmt.Errorf("page must be at least 1, got %d", req.Page)
	}
	if req.Limit < 1 || req.Limit > types.MaxPageSize {
		return fmt.Errorf("limit must be between 1 and %d, got %d", types.MaxPageSize, req.Limit)
	}

	page := newEngine().Search(req)

	if savePath, _ := cmd.Flags().GetString("save"); savePath != "" {
		if err := engine.WriteQueryFile(savePath, req, page); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved search to %s\n", savePath)
	}

	return printPage(page, asJSON)
}

func printPage(page types.SearchPage, asJSON bool) error {
	if asJSON {
		return engine.FormatJSON(page, os.Stdout)
	}
	engine.FormatTable(page, os.Stdout)
	return nil
}
