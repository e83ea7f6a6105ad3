// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/pdiddy/trials-engine/pkg/types"
)

// SortField enumerates the sortable trial fields. Each field carries its own
// typed comparison: string fields compare under English collation, enrollment
// compares numerically. SortNctID is the fallback for unrecognized names.
type SortField int

const (
	SortNctID SortField = iota
	SortTitle
	SortStatus
	SortPhase
	SortSponsor
	SortStudyType
	SortEnrollment
	SortStartDate
)

// ParseSortField maps a field name to its SortField. Names are
// case-insensitive and accept both hyphenated and camel-case spellings.
// Unknown names fall back to SortNctID; parsing never fails.
func ParseSortField(name string) SortField {
	switch strings.ToLower(name) {
	case "title":
		return SortTitle
	case "status":
		return SortStatus
	case "phase":
		return SortPhase
	case "sponsor":
		return SortSponsor
	case "studytype", "study-type":
		return SortStudyType
	case "enrollment":
		return SortEnrollment
	case "startdate", "start-date":
		return SortStartDate
	default:
		return SortNctID
	}
}

// sortKey returns the string sort key for field. Missing values yield the
// empty string, which sorts first ascending. StartDate compares the raw
// YYYY-MM / YYYY-MM-DD string; that ordering matches calendar order only
// while all dates share a lexically sortable format.
func sortKey(t *types.Trial, field SortField) string {
	switch field {
	case SortTitle:
		return t.BriefTitle()
	case SortStatus:
		return t.OverallStatus()
	case SortPhase:
		return t.FirstPhase()
	case SortSponsor:
		return t.LeadSponsor()
	case SortStudyType:
		return t.StudyType()
	case SortStartDate:
		return t.StartDate()
	default:
		return t.NctID()
	}
}

// Sort returns a new slice of trials ordered by field and direction. The
// input is never mutated and the sort is stable: trials with equal keys
// keep their relative input order.
func Sort(trials []types.Trial, field SortField, order types.SortOrder) []types.Trial {
	sorted := make([]types.Trial, len(trials))
	copy(sorted, trials)

	desc := order == types.SortDesc
	coll := collate.New(language.English)

	sort.SliceStable(sorted, func(i, j int) bool {
		var c int
		if field == SortEnrollment {
			c = compareInt(sorted[i].EnrollmentCount(), sorted[j].EnrollmentCount())
		} else {
			c = coll.CompareString(sortKey(&sorted[i], field), sortKey(&sorted[j], field))
		}
		if desc {
			return c > 0
		}
		return c < 0
	})
	return sorted
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
