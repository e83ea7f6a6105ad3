// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"reflect"
	"testing"

	"github.com/pdiddy/trials-engine/pkg/types"
)

func facetTrial(status, sponsor, studyType string, phases []string) types.Trial {
	t := types.Trial{}
	t.ProtocolSection.IdentificationModule.NctID = "NCT99999999"
	t.ProtocolSection.StatusModule.OverallStatus = status
	t.ProtocolSection.SponsorCollaboratorsModule.LeadSponsor = types.Sponsor{Name: sponsor}
	if studyType != "" || phases != nil {
		t.ProtocolSection.DesignModule = &types.DesignModule{StudyType: studyType, Phases: phases}
	}
	return t
}

func TestExtractFacetsFlattensAndSortsPhases(t *testing.T) {
	trials := []types.Trial{
		facetTrial("RECRUITING", "Acme", "INTERVENTIONAL", []string{"PHASE1"}),
		facetTrial("COMPLETED", "Beta Labs", "INTERVENTIONAL", []string{"PHASE2", "PHASE3"}),
		facetTrial("RECRUITING", "Acme", "", nil),
	}

	got := ExtractFacets(trials)

	if want := []string{"PHASE1", "PHASE2", "PHASE3"}; !reflect.DeepEqual(got.Phases, want) {
		t.Errorf("Phases = %v, want %v", got.Phases, want)
	}
	if want := []string{"COMPLETED", "RECRUITING"}; !reflect.DeepEqual(got.Statuses, want) {
		t.Errorf("Statuses = %v, want %v", got.Statuses, want)
	}
	// The third trial has no design module; its empty study type is skipped.
	if want := []string{"INTERVENTIONAL"}; !reflect.DeepEqual(got.StudyTypes, want) {
		t.Errorf("StudyTypes = %v, want %v", got.StudyTypes, want)
	}
	if want := []string{"Acme", "Beta Labs"}; !reflect.DeepEqual(got.Sponsors, want) {
		t.Errorf("Sponsors = %v, want %v", got.Sponsors, want)
	}
}

func TestExtractFacetsEmptyCorpus(t *testing.T) {
	got := ExtractFacets(nil)
	if len(got.Phases)+len(got.Statuses)+len(got.StudyTypes)+len(got.Sponsors) != 0 {
		t.Errorf("expected all-empty facets, got %+v", got)
	}
}

func TestStoreFacets(t *testing.T) {
	s := NewStore(writeDataset(t, sampleDataset))
	got := s.Facets()

	if want := []string{"PHASE2"}; !reflect.DeepEqual(got.Phases, want) {
		t.Errorf("Phases = %v, want %v", got.Phases, want)
	}
	if want := []string{"INTERVENTIONAL", "OBSERVATIONAL"}; !reflect.DeepEqual(got.StudyTypes, want) {
		t.Errorf("StudyTypes = %v, want %v", got.StudyTypes, want)
	}
}
