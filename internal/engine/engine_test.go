// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/pdiddy/trials-engine/internal/corpus"
	"github.com/pdiddy/trials-engine/pkg/types"
)

// --- test corpus helpers ---

type trialSpec struct {
	nct           string
	title         string
	status        string
	sponsor       string
	studyType     string
	startDate     string
	phases        []string
	enrollment    int
	conditions    []string
	keywords      []string
	interventions []types.Intervention
	summary       string
}

func makeTrial(spec trialSpec) types.Trial {
	var t types.Trial
	t.ProtocolSection.IdentificationModule.NctID = spec.nct
	t.ProtocolSection.IdentificationModule.BriefTitle = spec.title
	t.ProtocolSection.StatusModule.OverallStatus = spec.status
	t.ProtocolSection.SponsorCollaboratorsModule.LeadSponsor = types.Sponsor{Name: spec.sponsor}
	if spec.startDate != "" {
		t.ProtocolSection.StatusModule.StartDateStruct = &types.DateStruct{Date: spec.startDate, Type: "ACTUAL"}
	}
	if spec.studyType != "" || spec.phases != nil || spec.enrollment != 0 {
		t.ProtocolSection.DesignModule = &types.DesignModule{
			StudyType: spec.studyType,
			Phases:    spec.phases,
		}
		if spec.enrollment != 0 {
			t.ProtocolSection.DesignModule.EnrollmentInfo = &types.EnrollmentInfo{Count: spec.enrollment, Type: "ESTIMATED"}
		}
	}
	if spec.conditions != nil || spec.keywords != nil {
		t.ProtocolSection.ConditionsModule = &types.ConditionsModule{
			Conditions: spec.conditions,
			Keywords:   spec.keywords,
		}
	}
	if spec.interventions != nil {
		t.ProtocolSection.ArmsInterventionsModule = &types.ArmsInterventionsModule{Interventions: spec.interventions}
	}
	if spec.summary != "" {
		t.ProtocolSection.DescriptionModule = &types.DescriptionModule{BriefSummary: spec.summary}
	}
	return t
}

func newTestEngine(t *testing.T, trials []types.Trial, opts ...Option) *Engine {
	t.Helper()
	data, err := json.Marshal(trials)
	if err != nil {
		t.Fatalf("marshaling test corpus: %v", err)
	}
	path := filepath.Join(t.TempDir(), "trials.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing test corpus: %v", err)
	}
	return New(corpus.NewStore(path), opts...)
}

func nctIDs(trials []types.Trial) []string {
	ids := make([]string, len(trials))
	for i := range trials {
		ids[i] = trials[i].NctID()
	}
	return ids
}

func sequentialCorpus(n int) []types.Trial {
	trials := make([]types.Trial, 0, n)
	for i := 1; i <= n; i++ {
		trials = append(trials, makeTrial(trialSpec{
			nct:     fmt.Sprintf("NCT%08d", i),
			title:   fmt.Sprintf("Study %d", i),
			status:  "RECRUITING",
			sponsor: "Mesh Oncology Center",
		}))
	}
	return trials
}

// --- scenarios ---

func TestSearchStatusFilter(t *testing.T) {
	e := newTestEngine(t, []types.Trial{
		makeTrial(trialSpec{nct: "NCT00000001", status: "RECRUITING", sponsor: "A"}),
		makeTrial(trialSpec{nct: "NCT00000002", status: "COMPLETED", sponsor: "B"}),
		makeTrial(trialSpec{nct: "NCT00000003", status: "RECRUITING", sponsor: "C"}),
	})

	page := e.Search(types.SearchRequest{
		Filters: types.SearchFilters{Status: []string{"RECRUITING"}},
	})

	if page.TotalCount != 2 {
		t.Fatalf("TotalCount = %d, want 2", page.TotalCount)
	}
	for _, trial := range page.Trials {
		if trial.OverallStatus() != "RECRUITING" {
			t.Errorf("trial %s has status %q", trial.NctID(), trial.OverallStatus())
		}
	}
}

func TestSearchPagination(t *testing.T) {
	e := newTestEngine(t, sequentialCorpus(25))

	page := e.Search(types.SearchRequest{
		Page:      2,
		Limit:     10,
		SortBy:    "nct-id",
		SortOrder: types.SortAsc,
	})

	if page.TotalCount != 25 {
		t.Errorf("TotalCount = %d, want 25", page.TotalCount)
	}
	if page.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", page.TotalPages)
	}
	want := make([]string, 0, 10)
	for i := 11; i <= 20; i++ {
		want = append(want, fmt.Sprintf("NCT%08d", i))
	}
	if got := nctIDs(page.Trials); !reflect.DeepEqual(got, want) {
		t.Errorf("page 2 = %v, want %v", got, want)
	}
}

func TestSearchOutOfRangePage(t *testing.T) {
	e := newTestEngine(t, sequentialCorpus(5))

	page := e.Search(types.SearchRequest{Page: 99, Limit: 20})

	if len(page.Trials) != 0 {
		t.Errorf("len(Trials) = %d, want 0", len(page.Trials))
	}
	if page.TotalCount != 5 {
		t.Errorf("TotalCount = %d, want 5", page.TotalCount)
	}
	if page.TotalPages != 1 {
		t.Errorf("TotalPages = %d, want 1", page.TotalPages)
	}
	if page.Page != 99 {
		t.Errorf("Page = %d, want 99 echoed back", page.Page)
	}
}

func TestSearchPaginationCompleteness(t *testing.T) {
	e := newTestEngine(t, sequentialCorpus(25))

	req := types.SearchRequest{Limit: 10, SortBy: "nct-id"}
	first := e.Search(req)

	var collected []string
	for p := 1; p <= first.TotalPages; p++ {
		req.Page = p
		collected = append(collected, nctIDs(e.Search(req).Trials)...)
	}

	if len(collected) != 25 {
		t.Fatalf("collected %d trials across pages, want 25", len(collected))
	}
	seen := map[string]bool{}
	for _, id := range collected {
		if seen[id] {
			t.Errorf("trial %s appears on more than one page", id)
		}
		seen[id] = true
	}
}

// --- free-text matching ---

func TestSearchEmptyQueryMatchesAll(t *testing.T) {
	e := newTestEngine(t, sequentialCorpus(5))

	page := e.Search(types.SearchRequest{Query: ""})
	if page.TotalCount != 5 {
		t.Errorf("TotalCount = %d, want 5 for empty query", page.TotalCount)
	}
}

func TestSearchQueryAcrossFields(t *testing.T) {
	e := newTestEngine(t, []types.Trial{
		makeTrial(trialSpec{nct: "NCT00000001", title: "A Study of Nivolumab", status: "RECRUITING", sponsor: "A"}),
		makeTrial(trialSpec{nct: "NCT00000002", title: "Registry Study", status: "RECRUITING", sponsor: "B",
			conditions: []string{"Carcinoma"}, keywords: []string{"NSCLC"}}),
		makeTrial(trialSpec{nct: "NCT00000003", title: "Device Study", status: "RECRUITING", sponsor: "C",
			interventions: []types.Intervention{{Type: "DRUG", Name: "Nivolumab", Description: "checkpoint inhibitor"}}}),
		makeTrial(trialSpec{nct: "NCT00000004", title: "Cardiac Monitoring", status: "RECRUITING", sponsor: "D",
			summary: "Long-term follow-up of arrhythmia patients"}),
	})

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"title", "nivolumab", []string{"NCT00000001", "NCT00000003"}},
		{"keyword via acronym", "non-small cell lung cancer", []string{"NCT00000002"}},
		{"summary", "arrhythmia", []string{"NCT00000004"}},
		{"no match", "zebrafish", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := e.Search(types.SearchRequest{Query: tt.query, SortBy: "nct-id"})
			got := nctIDs(page.Trials)
			if len(got) == 0 {
				got = nil
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("query %q matched %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

// --- determinism and defaults ---

func TestSearchDeterminism(t *testing.T) {
	e := newTestEngine(t, sequentialCorpus(10))
	req := types.SearchRequest{Query: "study", SortBy: "title", SortOrder: types.SortDesc, Limit: 3}

	first := e.Search(req)
	for i := 0; i < 3; i++ {
		again := e.Search(req)
		if !reflect.DeepEqual(nctIDs(again.Trials), nctIDs(first.Trials)) || again.TotalCount != first.TotalCount {
			t.Fatalf("search not deterministic: run %d differs", i)
		}
	}
}

func TestSearchDefaults(t *testing.T) {
	e := newTestEngine(t, sequentialCorpus(30))

	page := e.Search(types.SearchRequest{})
	if page.Page != 1 {
		t.Errorf("Page = %d, want default 1", page.Page)
	}
	if page.Limit != 20 {
		t.Errorf("Limit = %d, want default 20", page.Limit)
	}
	if len(page.Trials) != 20 {
		t.Errorf("len(Trials) = %d, want 20", len(page.Trials))
	}

	// Oversized limits clamp to the maximum page size.
	page = e.Search(types.SearchRequest{Limit: 5000})
	if page.Limit != 100 {
		t.Errorf("Limit = %d, want clamp to 100", page.Limit)
	}
}

func TestSearchPreservesCorpusOrderWithoutSort(t *testing.T) {
	trials := []types.Trial{
		makeTrial(trialSpec{nct: "NCT00000009", status: "RECRUITING", sponsor: "Z"}),
		makeTrial(trialSpec{nct: "NCT00000001", status: "RECRUITING", sponsor: "A"}),
		makeTrial(trialSpec{nct: "NCT00000005", status: "RECRUITING", sponsor: "M"}),
	}
	e := newTestEngine(t, trials)

	page := e.Search(types.SearchRequest{})
	want := []string{"NCT00000009", "NCT00000001", "NCT00000005"}
	if got := nctIDs(page.Trials); !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want corpus order %v", got, want)
	}
}

func TestSearchDegradedCorpus(t *testing.T) {
	e := New(corpus.NewStore(filepath.Join(t.TempDir(), "missing.json")))

	page := e.Search(types.SearchRequest{Query: "anything"})
	if page.TotalCount != 0 || len(page.Trials) != 0 {
		t.Errorf("expected empty page on load failure, got %+v", page)
	}
	if page.TotalPages != 0 {
		t.Errorf("TotalPages = %d, want 0 for empty corpus", page.TotalPages)
	}
}

func TestFacets(t *testing.T) {
	e := newTestEngine(t, []types.Trial{
		makeTrial(trialSpec{nct: "NCT00000001", status: "RECRUITING", sponsor: "B Labs", phases: []string{"PHASE1"}, studyType: "INTERVENTIONAL"}),
		makeTrial(trialSpec{nct: "NCT00000002", status: "COMPLETED", sponsor: "A Corp", phases: []string{"PHASE2", "PHASE3"}, studyType: "INTERVENTIONAL"}),
		makeTrial(trialSpec{nct: "NCT00000003", status: "RECRUITING", sponsor: "A Corp"}),
	})

	got := e.Facets()
	if want := []string{"PHASE1", "PHASE2", "PHASE3"}; !reflect.DeepEqual(got.Phases, want) {
		t.Errorf("Phases = %v, want %v", got.Phases, want)
	}
	if want := []string{"A Corp", "B Labs"}; !reflect.DeepEqual(got.Sponsors, want) {
		t.Errorf("Sponsors = %v, want %v", got.Sponsors, want)
	}
}
