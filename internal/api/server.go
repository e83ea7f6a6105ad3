// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package api exposes the trial search engine over HTTP. Unlike the engine,
// which clamps out-of-range input, the API rejects invalid parameters with
// HTTP 400 so clients learn about mistakes instead of silently getting
// different pages than they asked for.
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/trials-engine/internal/engine"
	"github.com/pdiddy/trials-engine/pkg/types"
)

// Server handles the search API routes.
type Server struct {
	engine *engine.Engine
	logger *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets a custom logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewServer creates a Server over e.
func NewServer(e *engine.Engine, opts ...Option) *Server {
	s := &Server{
		engine: e,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the route mux for the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/trials/search", s.handleSearch)
	mux.HandleFunc("/api/trials/facets", s.handleFacets)
	mux.HandleFunc("/healthz", s.handleHealth)
	return mux
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	req, err := parseSearchRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	start := time.Now()
	page := s.engine.Search(req)
	s.logger.Info("search",
		"query", req.Query,
		"page", page.Page,
		"total", page.TotalCount,
		"duration", time.Since(start))

	writeJSON(w, http.StatusOK, page)
}

func (s *Server) handleFacets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, s.engine.Facets())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// parseSearchRequest builds a SearchRequest from query parameters. Invalid
// numbers, out-of-bounds pagination, and unknown sort orders are errors;
// absent parameters take the engine defaults.
func parseSearchRequest(r *http.Request) (types.SearchRequest, error) {
	q := r.URL.Query()

	req := types.SearchRequest{
		Query:  q.Get("q"),
		SortBy: q.Get("sort-by"),
		Page:   types.DefaultPage,
		Limit:  types.DefaultPageSize,
		Filters: types.SearchFilters{
			Phase:        parseList(q["phase"]),
			Status:       parseList(q["status"]),
			StudyType:    parseList(q["study-type"]),
			Sponsor:      q.Get("sponsor"),
			Condition:    q.Get("condition"),
			Intervention: q.Get("intervention"),
		},
	}

	if v := q.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			return req, fmt.Errorf("invalid page %q", v)
		}
		if page < 1 {
			return req, fmt.Errorf("page must be at least 1, got %d", page)
		}
		req.Page = page
	}

	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return req, fmt.Errorf("invalid limit %q", v)
		}
		if limit < 1 || limit > types.MaxPageSize {
			return req, fmt.Errorf("limit must be between 1 and %d, got %d", types.MaxPageSize, limit)
		}
		req.Limit = limit
	}

	if req.SortBy != "" && !validSortFields[req.SortBy] {
		return req, fmt.Errorf("unknown sort-by field %q", req.SortBy)
	}

	switch order := q.Get("sort-order"); order {
	case "":
		req.SortOrder = types.SortAsc
	case string(types.SortAsc), string(types.SortDesc):
		req.SortOrder = types.SortOrder(order)
	default:
		return req, fmt.Errorf("sort-order must be %q or %q, got %q", types.SortAsc, types.SortDesc, order)
	}

	return req, nil
}

// validSortFields lists the sort-by values the API accepts. The engine falls
// back to NCT ID for anything unknown; the API rejects instead.
var validSortFields = map[string]bool{
	"nct-id":     true,
	"title":      true,
	"status":     true,
	"phase":      true,
	"sponsor":    true,
	"study-type": true,
	"studyType":  true,
	"enrollment": true,
	"start-date": true,
	"startDate":  true,
}

// parseList flattens repeated parameters and splits comma-separated values,
// so phase=PHASE1&phase=PHASE2 and phase=PHASE1,PHASE2 are equivalent.
func parseList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, item := range strings.Split(v, ",") {
			item = strings.TrimSpace(item)
			if item != "" {
				out = append(out, item)
			}
		}
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
