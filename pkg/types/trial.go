// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Trial represents one clinical study from the backing dataset. The JSON
// field names follow the dataset format; optional modules are pointers and
// the accessor methods below return documented defaults when a module is
// absent.
type Trial struct {
	ProtocolSection ProtocolSection `json:"protocolSection" yaml:"protocol_section"`
	DerivedSection  *DerivedSection `json:"derivedSection,omitempty" yaml:"derived_section,omitempty"`
}

// ProtocolSection groups the study modules. Identification, status, and
// sponsor modules are always present; the rest are optional.
type ProtocolSection struct {
	IdentificationModule      IdentificationModule       `json:"identificationModule" yaml:"identification_module"`
	StatusModule              StatusModule               `json:"statusModule" yaml:"status_module"`
	SponsorCollaboratorsModule SponsorCollaboratorsModule `json:"sponsorCollaboratorsModule" yaml:"sponsor_collaborators_module"`
	OversightModule           *OversightModule           `json:"oversightModule,omitempty" yaml:"oversight_module,omitempty"`
	DescriptionModule         *DescriptionModule         `json:"descriptionModule,omitempty" yaml:"description_module,omitempty"`
	ConditionsModule          *ConditionsModule          `json:"conditionsModule,omitempty" yaml:"conditions_module,omitempty"`
	DesignModule              *DesignModule              `json:"designModule,omitempty" yaml:"design_module,omitempty"`
	ArmsInterventionsModule   *ArmsInterventionsModule   `json:"armsInterventionsModule,omitempty" yaml:"arms_interventions_module,omitempty"`
	OutcomesModule            *OutcomesModule            `json:"outcomesModule,omitempty" yaml:"outcomes_module,omitempty"`
	EligibilityModule         *EligibilityModule         `json:"eligibilityModule,omitempty" yaml:"eligibility_module,omitempty"`
	ContactsLocationsModule   *ContactsLocationsModule   `json:"contactsLocationsModule,omitempty" yaml:"contacts_locations_module,omitempty"`
	ReferencesModule          *ReferencesModule          `json:"referencesModule,omitempty" yaml:"references_module,omitempty"`
}

// IdentificationModule identifies the study. NctID is the stable, unique
// key and the default sort tie-breaker.
type IdentificationModule struct {
	NctID          string        `json:"nctId" yaml:"nct_id"`
	OrgStudyIDInfo *OrgStudyID   `json:"orgStudyIdInfo,omitempty" yaml:"org_study_id_info,omitempty"`
	Organization   Organization  `json:"organization" yaml:"organization"`
	BriefTitle     string        `json:"briefTitle" yaml:"brief_title"`
	OfficialTitle  string        `json:"officialTitle,omitempty" yaml:"official_title,omitempty"`
	Acronym        string        `json:"acronym,omitempty" yaml:"acronym,omitempty"`
}

type OrgStudyID struct {
	ID string `json:"id" yaml:"id"`
}

type Organization struct {
	FullName string `json:"fullName" yaml:"full_name"`
	Class    string `json:"class" yaml:"class"`
}

// StatusModule carries the overall status and the study date structures.
type StatusModule struct {
	StatusVerifiedDate         string      `json:"statusVerifiedDate,omitempty" yaml:"status_verified_date,omitempty"`
	OverallStatus              string      `json:"overallStatus" yaml:"overall_status"`
	StartDateStruct            *DateStruct `json:"startDateStruct,omitempty" yaml:"start_date_struct,omitempty"`
	PrimaryCompletionDateStruct *DateStruct `json:"primaryCompletionDateStruct,omitempty" yaml:"primary_completion_date_struct,omitempty"`
	CompletionDateStruct       *DateStruct `json:"completionDateStruct,omitempty" yaml:"completion_date_struct,omitempty"`
	StudyFirstSubmitDate       string      `json:"studyFirstSubmitDate,omitempty" yaml:"study_first_submit_date,omitempty"`
	LastUpdateSubmitDate       string      `json:"lastUpdateSubmitDate,omitempty" yaml:"last_update_submit_date,omitempty"`
	LastUpdatePostDateStruct   *DateStruct `json:"lastUpdatePostDateStruct,omitempty" yaml:"last_update_post_date_struct,omitempty"`
}

// DateStruct is a date string plus its precision type ("ACTUAL",
// "ESTIMATED"). Date is YYYY-MM or YYYY-MM-DD.
type DateStruct struct {
	Date string `json:"date" yaml:"date"`
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
}

type SponsorCollaboratorsModule struct {
	ResponsibleParty *ResponsibleParty `json:"responsibleParty,omitempty" yaml:"responsible_party,omitempty"`
	LeadSponsor      Sponsor           `json:"leadSponsor" yaml:"lead_sponsor"`
	Collaborators    []Sponsor         `json:"collaborators,omitempty" yaml:"collaborators,omitempty"`
}

type ResponsibleParty struct {
	Type                    string `json:"type" yaml:"type"`
	InvestigatorFullName    string `json:"investigatorFullName,omitempty" yaml:"investigator_full_name,omitempty"`
	InvestigatorTitle       string `json:"investigatorTitle,omitempty" yaml:"investigator_title,omitempty"`
	InvestigatorAffiliation string `json:"investigatorAffiliation,omitempty" yaml:"investigator_affiliation,omitempty"`
}

type Sponsor struct {
	Name  string `json:"name" yaml:"name"`
	Class string `json:"class,omitempty" yaml:"class,omitempty"`
}

type OversightModule struct {
	OversightHasDmc    *bool `json:"oversightHasDmc,omitempty" yaml:"oversight_has_dmc,omitempty"`
	IsFdaRegulatedDrug *bool `json:"isFdaRegulatedDrug,omitempty" yaml:"is_fda_regulated_drug,omitempty"`
	IsFdaRegulatedDevice *bool `json:"isFdaRegulatedDevice,omitempty" yaml:"is_fda_regulated_device,omitempty"`
}

type DescriptionModule struct {
	BriefSummary        string `json:"briefSummary" yaml:"brief_summary"`
	DetailedDescription string `json:"detailedDescription,omitempty" yaml:"detailed_description,omitempty"`
}

type ConditionsModule struct {
	Conditions []string `json:"conditions" yaml:"conditions"`
	Keywords   []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
}

type DesignModule struct {
	StudyType      string          `json:"studyType" yaml:"study_type"`
	Phases         []string        `json:"phases,omitempty" yaml:"phases,omitempty"`
	DesignInfo     *DesignInfo     `json:"designInfo,omitempty" yaml:"design_info,omitempty"`
	EnrollmentInfo *EnrollmentInfo `json:"enrollmentInfo,omitempty" yaml:"enrollment_info,omitempty"`
}

type DesignInfo struct {
	Allocation        string       `json:"allocation,omitempty" yaml:"allocation,omitempty"`
	InterventionModel string       `json:"interventionModel,omitempty" yaml:"intervention_model,omitempty"`
	PrimaryPurpose    string       `json:"primaryPurpose,omitempty" yaml:"primary_purpose,omitempty"`
	MaskingInfo       *MaskingInfo `json:"maskingInfo,omitempty" yaml:"masking_info,omitempty"`
}

type MaskingInfo struct {
	Masking   string   `json:"masking,omitempty" yaml:"masking,omitempty"`
	WhoMasked []string `json:"whoMasked,omitempty" yaml:"who_masked,omitempty"`
}

type EnrollmentInfo struct {
	Count int    `json:"count,omitempty" yaml:"count,omitempty"`
	Type  string `json:"type,omitempty" yaml:"type,omitempty"`
}

type ArmsInterventionsModule struct {
	ArmGroups     []ArmGroup     `json:"armGroups,omitempty" yaml:"arm_groups,omitempty"`
	Interventions []Intervention `json:"interventions,omitempty" yaml:"interventions,omitempty"`
}

type ArmGroup struct {
	Label             string   `json:"label" yaml:"label"`
	Type              string   `json:"type,omitempty" yaml:"type,omitempty"`
	Description       string   `json:"description,omitempty" yaml:"description,omitempty"`
	InterventionNames []string `json:"interventionNames,omitempty" yaml:"intervention_names,omitempty"`
}

type Intervention struct {
	Type           string   `json:"type" yaml:"type"`
	Name           string   `json:"name" yaml:"name"`
	Description    string   `json:"description,omitempty" yaml:"description,omitempty"`
	ArmGroupLabels []string `json:"armGroupLabels,omitempty" yaml:"arm_group_labels,omitempty"`
}

type OutcomesModule struct {
	PrimaryOutcomes   []Outcome `json:"primaryOutcomes,omitempty" yaml:"primary_outcomes,omitempty"`
	SecondaryOutcomes []Outcome `json:"secondaryOutcomes,omitempty" yaml:"secondary_outcomes,omitempty"`
}

type Outcome struct {
	Measure     string `json:"measure" yaml:"measure"`
	TimeFrame   string `json:"timeFrame,omitempty" yaml:"time_frame,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

type EligibilityModule struct {
	EligibilityCriteria string   `json:"eligibilityCriteria,omitempty" yaml:"eligibility_criteria,omitempty"`
	HealthyVolunteers   *bool    `json:"healthyVolunteers,omitempty" yaml:"healthy_volunteers,omitempty"`
	Sex                 string   `json:"sex,omitempty" yaml:"sex,omitempty"`
	MinimumAge          string   `json:"minimumAge,omitempty" yaml:"minimum_age,omitempty"`
	MaximumAge          string   `json:"maximumAge,omitempty" yaml:"maximum_age,omitempty"`
	StdAges             []string `json:"stdAges,omitempty" yaml:"std_ages,omitempty"`
}

type ReferencesModule struct {
	References []Reference `json:"references,omitempty" yaml:"references,omitempty"`
}

type Reference struct {
	Pmid     string `json:"pmid,omitempty" yaml:"pmid,omitempty"`
	Type     string `json:"type,omitempty" yaml:"type,omitempty"`
	Citation string `json:"citation,omitempty" yaml:"citation,omitempty"`
}

type ContactsLocationsModule struct {
	Locations        []Location `json:"locations,omitempty" yaml:"locations,omitempty"`
	OverallOfficials []Official `json:"overallOfficials,omitempty" yaml:"overall_officials,omitempty"`
}

type Location struct {
	Facility string `json:"facility" yaml:"facility"`
	City     string `json:"city,omitempty" yaml:"city,omitempty"`
	State    string `json:"state,omitempty" yaml:"state,omitempty"`
	Country  string `json:"country,omitempty" yaml:"country,omitempty"`
	Zip      string `json:"zip,omitempty" yaml:"zip,omitempty"`
}

type Official struct {
	Name        string `json:"name" yaml:"name"`
	Affiliation string `json:"affiliation,omitempty" yaml:"affiliation,omitempty"`
	Role        string `json:"role,omitempty" yaml:"role,omitempty"`
}

// DerivedSection carries registry-derived annotations. The query engine does
// not consume it but round-trips it for export.
type DerivedSection struct {
	MiscInfoModule           *MiscInfoModule `json:"miscInfoModule,omitempty" yaml:"misc_info_module,omitempty"`
	ConditionBrowseModule    *BrowseModule   `json:"conditionBrowseModule,omitempty" yaml:"condition_browse_module,omitempty"`
	InterventionBrowseModule *BrowseModule   `json:"interventionBrowseModule,omitempty" yaml:"intervention_browse_module,omitempty"`
}

type MiscInfoModule struct {
	VersionHolder string `json:"versionHolder,omitempty" yaml:"version_holder,omitempty"`
}

type BrowseModule struct {
	Meshes        []MeshTerm     `json:"meshes,omitempty" yaml:"meshes,omitempty"`
	Ancestors     []MeshTerm     `json:"ancestors,omitempty" yaml:"ancestors,omitempty"`
	BrowseLeaves  []BrowseLeaf   `json:"browseLeaves,omitempty" yaml:"browse_leaves,omitempty"`
	BrowseBranches []BrowseBranch `json:"browseBranches,omitempty" yaml:"browse_branches,omitempty"`
}

type MeshTerm struct {
	ID   string `json:"id" yaml:"id"`
	Term string `json:"term" yaml:"term"`
}

type BrowseLeaf struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Relevance string `json:"relevance,omitempty" yaml:"relevance,omitempty"`
}

type BrowseBranch struct {
	Abbrev string `json:"abbrev" yaml:"abbrev"`
	Name   string `json:"name" yaml:"name"`
}

// NctID returns the unique study identifier.
func (t *Trial) NctID() string {
	return t.ProtocolSection.IdentificationModule.NctID
}

// BriefTitle returns the short study title.
func (t *Trial) BriefTitle() string {
	return t.ProtocolSection.IdentificationModule.BriefTitle
}

// OfficialTitle returns the full title, or "" when not provided.
func (t *Trial) OfficialTitle() string {
	return t.ProtocolSection.IdentificationModule.OfficialTitle
}

// OverallStatus returns the recruitment status (e.g. "RECRUITING").
func (t *Trial) OverallStatus() string {
	return t.ProtocolSection.StatusModule.OverallStatus
}

// StartDate returns the raw start date string (YYYY-MM or YYYY-MM-DD), or
// "" when the study has no start date.
func (t *Trial) StartDate() string {
	if d := t.ProtocolSection.StatusModule.StartDateStruct; d != nil {
		return d.Date
	}
	return ""
}

// LeadSponsor returns the lead sponsor name.
func (t *Trial) LeadSponsor() string {
	return t.ProtocolSection.SponsorCollaboratorsModule.LeadSponsor.Name
}

// StudyType returns the design study type, or "" when the design module is
// absent.
func (t *Trial) StudyType() string {
	if d := t.ProtocolSection.DesignModule; d != nil {
		return d.StudyType
	}
	return ""
}

// Phases returns the phase tags, or nil when the design module is absent.
func (t *Trial) Phases() []string {
	if d := t.ProtocolSection.DesignModule; d != nil {
		return d.Phases
	}
	return nil
}

// FirstPhase returns the first phase tag, or "" when the study has none.
func (t *Trial) FirstPhase() string {
	if p := t.Phases(); len(p) > 0 {
		return p[0]
	}
	return ""
}

// EnrollmentCount returns the enrollment count, or 0 when not reported.
func (t *Trial) EnrollmentCount() int {
	if d := t.ProtocolSection.DesignModule; d != nil && d.EnrollmentInfo != nil {
		return d.EnrollmentInfo.Count
	}
	return 0
}

// Conditions returns the condition strings, or nil when the module is absent.
func (t *Trial) Conditions() []string {
	if c := t.ProtocolSection.ConditionsModule; c != nil {
		return c.Conditions
	}
	return nil
}

// Keywords returns the free-text keywords, or nil when the module is absent.
func (t *Trial) Keywords() []string {
	if c := t.ProtocolSection.ConditionsModule; c != nil {
		return c.Keywords
	}
	return nil
}

// Interventions returns the study interventions, or nil when the module is
// absent.
func (t *Trial) Interventions() []Intervention {
	if a := t.ProtocolSection.ArmsInterventionsModule; a != nil {
		return a.Interventions
	}
	return nil
}

// BriefSummary returns the brief summary text, or "" when absent.
func (t *Trial) BriefSummary() string {
	if d := t.ProtocolSection.DescriptionModule; d != nil {
		return d.BriefSummary
	}
	return ""
}

// DetailedDescription returns the long description, or "" when absent.
func (t *Trial) DetailedDescription() string {
	if d := t.ProtocolSection.DescriptionModule; d != nil {
		return d.DetailedDescription
	}
	return ""
}
