// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/trials-engine/pkg/types"
)

// FormatTable writes a result page as a human-readable table to w.
func FormatTable(page types.SearchPage, w io.Writer) {
	if page.TotalCount == 0 {
		fmt.Fprintln(w, "No trials found.")
		return
	}

	fmt.Fprintf(w, "%-12s  %-50s  %-22s  %-10s  %-30s  %s\n",
		"NCT ID", "Title", "Status", "Phase", "Sponsor", "Enroll")
	fmt.Fprintln(w, strings.Repeat("-", 140))

	for i := range page.Trials {
		t := &page.Trials[i]
		fmt.Fprintf(w, "%-12s  %-50s  %-22s  %-10s  %-30s  %d\n",
			t.NctID(),
			truncate(t.BriefTitle(), 50),
			truncate(t.OverallStatus(), 22),
			truncate(t.FirstPhase(), 10),
			truncate(t.LeadSponsor(), 30),
			t.EnrollmentCount())
	}

	fmt.Fprintf(w, "\n%d of %d trials (page %d/%d)\n",
		len(page.Trials), page.TotalCount, page.Page, page.TotalPages)
}

// FormatJSON writes a result page as indented JSON to w.
func FormatJSON(page types.SearchPage, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(page)
}

// FormatFacets writes facet options grouped by field to w.
func FormatFacets(facets types.FacetOptions, w io.Writer) {
	sections := []struct {
		name   string
		values []string
	}{
		{"Phases", facets.Phases},
		{"Statuses", facets.Statuses},
		{"Study types", facets.StudyTypes},
		{"Sponsors", facets.Sponsors},
	}
	for _, s := range sections {
		fmt.Fprintf(w, "%s (%d):\n", s.name, len(s.values))
		for _, v := range s.values {
			fmt.Fprintf(w, "  %s\n", v)
		}
	}
}

// FormatFacetsJSON writes facet options as indented JSON to w.
func FormatFacetsJSON(facets types.FacetOptions, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(facets)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
