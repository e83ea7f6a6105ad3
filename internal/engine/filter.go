// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"slices"

	"github.com/pdiddy/trials-engine/internal/textmatch"
	"github.com/pdiddy/trials-engine/pkg/types"
)

// ApplyFilters returns the trials that satisfy every set constraint,
// preserving relative order. Unset and empty filter fields are no-ops; set
// fields are ANDed together.
func ApplyFilters(trials []types.Trial, f types.SearchFilters) []types.Trial {
	if f.IsEmpty() {
		return trials
	}
	filtered := make([]types.Trial, 0, len(trials))
	for i := range trials {
		if matchesFilters(&trials[i], f) {
			filtered = append(filtered, trials[i])
		}
	}
	return filtered
}

func matchesFilters(t *types.Trial, f types.SearchFilters) bool {
	if len(f.Phase) > 0 && !intersects(t.Phases(), f.Phase) {
		return false
	}
	if len(f.Status) > 0 && !slices.Contains(f.Status, t.OverallStatus()) {
		return false
	}
	if len(f.StudyType) > 0 && !slices.Contains(f.StudyType, t.StudyType()) {
		return false
	}
	if f.Sponsor != "" && !textmatch.Match(f.Sponsor, t.LeadSponsor()) {
		return false
	}
	if f.Condition != "" && !matchesAnyText(f.Condition, t.Conditions()) {
		return false
	}
	if f.Intervention != "" && !matchesAnyIntervention(f.Intervention, t.Interventions()) {
		return false
	}
	return true
}

// intersects reports whether any value of a appears in b.
func intersects(a, b []string) bool {
	for _, v := range a {
		if slices.Contains(b, v) {
			return true
		}
	}
	return false
}

func matchesAnyText(query string, targets []string) bool {
	for _, target := range targets {
		if textmatch.Match(query, target) {
			return true
		}
	}
	return false
}

func matchesAnyIntervention(query string, interventions []types.Intervention) bool {
	for _, iv := range interventions {
		if textmatch.Match(query, iv.Name) {
			return true
		}
	}
	return false
}
