// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package engine composes the trial query pipeline: corpus load, free-text
// matching, structured filters, type-aware sorting, and pagination. Every
// operation is pure over the immutable corpus snapshot, so an Engine is
// safe for concurrent use.
package engine

import (
	"log/slog"

	"github.com/pdiddy/trials-engine/internal/corpus"
	"github.com/pdiddy/trials-engine/internal/textmatch"
	"github.com/pdiddy/trials-engine/pkg/types"
)

// Engine answers search and facet queries over a corpus store.
type Engine struct {
	store  *corpus.Store
	cache  *resultCache
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets a custom logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithCache enables a bounded LRU cache of result pages keyed by request.
// Caching is sound because the corpus never changes within a process. A
// non-positive size leaves caching disabled.
func WithCache(size int) Option {
	return func(e *Engine) {
		e.cache = newResultCache(size)
	}
}

// New creates an engine over store.
func New(store *corpus.Store, opts ...Option) *Engine {
	e := &Engine{
		store:  store,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Search runs the full query pipeline and returns one result page. A failed
// corpus load degrades to an empty page; out-of-range pages return an empty
// slice with accurate totals. Repeated calls with the same request return
// identical results.
func (e *Engine) Search(req types.SearchRequest) types.SearchPage {
	req = normalizeRequest(req)

	if e.cache != nil {
		if page, ok := e.cache.get(req); ok {
			return page
		}
	}

	trials, err := e.store.Load()
	if err != nil {
		e.logger.Warn("serving empty results: dataset unavailable", "err", err)
	}

	matched := trials
	if req.Query != "" {
		matched = make([]types.Trial, 0, len(trials))
		for i := range trials {
			if matchesQuery(&trials[i], req.Query) {
				matched = append(matched, trials[i])
			}
		}
	}

	matched = ApplyFilters(matched, req.Filters)

	if req.SortBy != "" {
		matched = Sort(matched, ParseSortField(req.SortBy), req.SortOrder)
	}

	totalCount := len(matched)
	totalPages := (totalCount + req.Limit - 1) / req.Limit

	start := (req.Page - 1) * req.Limit
	end := start + req.Limit
	if start > totalCount {
		start = totalCount
	}
	if end > totalCount {
		end = totalCount
	}

	page := types.SearchPage{
		Trials:     matched[start:end],
		TotalCount: totalCount,
		Page:       req.Page,
		Limit:      req.Limit,
		TotalPages: totalPages,
	}

	if e.cache != nil {
		e.cache.put(req, page)
	}
	return page
}

// Facets returns the distinct filter values of the current corpus.
func (e *Engine) Facets() types.FacetOptions {
	return e.store.Facets()
}

// normalizeRequest fills request defaults and clamps the page size. The
// calling layer rejects out-of-bounds input outright; the engine stays
// total by clamping instead.
func normalizeRequest(req types.SearchRequest) types.SearchRequest {
	if req.Page < 1 {
		req.Page = types.DefaultPage
	}
	if req.Limit < 1 {
		req.Limit = types.DefaultPageSize
	}
	if req.Limit > types.MaxPageSize {
		req.Limit = types.MaxPageSize
	}
	if req.SortOrder != types.SortDesc {
		req.SortOrder = types.SortAsc
	}
	return req
}

// matchesQuery reports whether the free-text query matches any searchable
// field of the trial: titles, summaries, conditions, keywords, the lead
// sponsor, or any intervention's name-plus-description composite.
func matchesQuery(t *types.Trial, query string) bool {
	fields := make([]string, 0, 8)
	fields = append(fields,
		t.BriefTitle(),
		t.OfficialTitle(),
		t.BriefSummary(),
		t.DetailedDescription(),
	)
	fields = append(fields, t.Conditions()...)
	fields = append(fields, t.Keywords()...)
	fields = append(fields, t.LeadSponsor())
	for _, iv := range t.Interventions() {
		fields = append(fields, iv.Name+" "+iv.Description)
	}

	for _, field := range fields {
		if field == "" {
			continue
		}
		if textmatch.Match(query, field) {
			return true
		}
	}
	return false
}
