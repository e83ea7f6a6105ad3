// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data structures for the trials-engine
// query pipeline: the Trial record tree mirrored from the backing dataset,
// and the search request/response contract used by the CLI and HTTP layers.
package types

// SortOrder is the sort direction of a search request.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Pagination bounds enforced by the calling layer. The engine itself clamps
// rather than rejects.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// SearchFilters holds the optional structured constraints of a search. A nil
// or empty slice field means "no constraint", never "match nothing"; an
// empty string likewise. All set fields must pass independently.
type SearchFilters struct {
	// Phase matches when any of the trial's phase tags is in the set.
	Phase []string `json:"phase,omitempty" yaml:"phase,omitempty"`

	// Status matches when the overall status is in the set.
	Status []string `json:"status,omitempty" yaml:"status,omitempty"`

	// StudyType matches when the design study type is in the set.
	StudyType []string `json:"studyType,omitempty" yaml:"study_type,omitempty"`

	// Sponsor fuzzy-matches against the lead sponsor name.
	Sponsor string `json:"sponsor,omitempty" yaml:"sponsor,omitempty"`

	// Condition fuzzy-matches against any one condition string.
	Condition string `json:"condition,omitempty" yaml:"condition,omitempty"`

	// Intervention fuzzy-matches against any one intervention name.
	Intervention string `json:"intervention,omitempty" yaml:"intervention,omitempty"`
}

// IsEmpty reports whether no constraint is set.
func (f SearchFilters) IsEmpty() bool {
	return len(f.Phase) == 0 && len(f.Status) == 0 && len(f.StudyType) == 0 &&
		f.Sponsor == "" && f.Condition == "" && f.Intervention == ""
}

// SearchRequest is the query input contract. Zero values take the documented
// defaults: empty Query matches everything, Page becomes 1, Limit becomes 20
// (capped at 100), empty SortBy preserves corpus order, empty SortOrder
// means ascending.
type SearchRequest struct {
	Query     string        `json:"query,omitempty" yaml:"query,omitempty"`
	Filters   SearchFilters `json:"filters,omitempty" yaml:"filters,omitempty"`
	SortBy    string        `json:"sortBy,omitempty" yaml:"sort_by,omitempty"`
	SortOrder SortOrder     `json:"sortOrder,omitempty" yaml:"sort_order,omitempty"`
	Page      int           `json:"page,omitempty" yaml:"page,omitempty"`
	Limit     int           `json:"limit,omitempty" yaml:"limit,omitempty"`
}

// SearchPage is one page of matching trials plus the totals needed to
// paginate. TotalPages is ceil(TotalCount/Limit); an out-of-range page has
// an empty Trials slice with accurate totals.
type SearchPage struct {
	Trials     []Trial `json:"trials" yaml:"trials"`
	TotalCount int     `json:"totalCount" yaml:"total_count"`
	Page       int     `json:"page" yaml:"page"`
	Limit      int     `json:"limit" yaml:"limit"`
	TotalPages int     `json:"totalPages" yaml:"total_pages"`
}

// FacetOptions lists the distinct values available for each filterable
// field, each deduplicated and lexically sorted.
type FacetOptions struct {
	Phases     []string `json:"phases" yaml:"phases"`
	Statuses   []string `json:"statuses" yaml:"statuses"`
	StudyTypes []string `json:"studyTypes" yaml:"study_types"`
	Sponsors   []string `json:"sponsors" yaml:"sponsors"`
}
