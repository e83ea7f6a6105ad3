// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"sort"

	"github.com/pdiddy/trials-engine/pkg/types"
)

// ExtractFacets scans trials and returns the distinct values for each
// filterable field, deduplicated and lexically sorted. Phase lists are
// flattened; absent study types are skipped; the lead sponsor is always
// present.
func ExtractFacets(trials []types.Trial) types.FacetOptions {
	phases := map[string]bool{}
	statuses := map[string]bool{}
	studyTypes := map[string]bool{}
	sponsors := map[string]bool{}

	for i := range trials {
		t := &trials[i]
		for _, p := range t.Phases() {
			phases[p] = true
		}
		statuses[t.OverallStatus()] = true
		if st := t.StudyType(); st != "" {
			studyTypes[st] = true
		}
		sponsors[t.LeadSponsor()] = true
	}

	return types.FacetOptions{
		Phases:     sortedKeys(phases),
		Statuses:   sortedKeys(statuses),
		StudyTypes: sortedKeys(studyTypes),
		Sponsors:   sortedKeys(sponsors),
	}
}

// Facets extracts facet options from the current corpus snapshot. The scan
// runs in full on every call; the corpus is static for the process
// lifetime, so callers needing caching can hold the result.
func (s *Store) Facets() types.FacetOptions {
	trials, _ := s.Load()
	return ExtractFacets(trials)
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
