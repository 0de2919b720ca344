// Package models holds the reference-data types for the compliance core.
//
// Everything here is build-time-constructed, read-only configuration. The only
// runtime values are answer sets coming in from the checklist UI and scoring
// results going back out; both are plain values with no identity of their own.
package models

// Severity is the seriousness tag attached to a non-compliant checklist answer.
type Severity string

const (
	SeverityMinor    Severity = "minor"
	SeverityMajor    Severity = "major"
	SeverityCritical Severity = "critical"
)

// ComplianceStatus is the per-item outcome recorded by an assessor.
type ComplianceStatus string

const (
	StatusCompliant     ComplianceStatus = "compliant"
	StatusNonCompliant  ComplianceStatus = "non_compliant"
	StatusNotApplicable ComplianceStatus = "not_applicable"
)

// Answer is a single recorded checklist outcome. Severity is only meaningful
// when Status is non_compliant, and must come from the item's allowed set.
type Answer struct {
	Status   ComplianceStatus `json:"status"`
	Severity Severity         `json:"severity"`
}

// AnswerSet maps assessment item codes to recorded answers.
type AnswerSet map[string]Answer

// AssessmentItem is one regulatory checklist question. Items are authored once
// per framework and never edited at runtime.
type AssessmentItem struct {
	Code             string     `json:"code"`
	Category         string     `json:"category"`
	Requirement      string     `json:"requirement"`
	Detail           string     `json:"detail"`
	Severities       []Severity `json:"severities"`
	EvidenceRequired bool       `json:"evidence_required"`
}

// AssessmentSection groups checklist items under a heading, in display order.
type AssessmentSection struct {
	Code  string           `json:"code"`
	Title string           `json:"title"`
	Items []AssessmentItem `json:"items"`
}

// ScoringModel selects the algorithm used to turn answers into a grade.
type ScoringModel string

const (
	ModelStarRating  ScoringModel = "star_rating"
	ModelPercentage  ScoringModel = "percentage"
	ModelLetterGrade ScoringModel = "letter_grade"
)

// ScoringTier is one display band. Tiers are ordered descending by Min; the
// first tier whose Min the score meets or exceeds wins. Grade and Stars are
// filled per regime (a letter-grade regime leaves Stars at zero and vice versa).
type ScoringTier struct {
	Min    float64 `json:"min"`
	Stars  int     `json:"stars"`
	Grade  string  `json:"grade"`
	Label  string  `json:"label"`
	Colour string  `json:"colour"`
}

// StarBand is one row of the cascading star-rating rule table. A row fires when
// any of its non-zero thresholds is met by the corresponding non-compliance
// count (OR semantics). Rows are evaluated top-down, first match wins; a row
// with all thresholds zero is the catch-all and must come last.
type StarBand struct {
	MinCritical int `json:"min_critical"`
	MinMajor    int `json:"min_major"`
	MinMinor    int `json:"min_minor"`
	Stars       int `json:"stars"`
}

// SeverityWeights are the extra penalty points a non-compliance attracts in the
// percentage model, on top of losing the item's base points.
type SeverityWeights struct {
	Critical int `json:"critical"`
	Major    int `json:"major"`
	Minor    int `json:"minor"`
}

// ScoringConfig describes how a framework turns an answer set into a grade.
type ScoringConfig struct {
	Model ScoringModel `json:"model"`
	// Tiers band the raw score for display, ordered descending by Min.
	Tiers []ScoringTier `json:"tiers"`
	// StarBands parameterize the star_rating cascade. Unused by other models.
	StarBands []StarBand `json:"star_bands"`
	// Weights and PointsPerItem parameterize the percentage model.
	Weights       SeverityWeights `json:"weights"`
	PointsPerItem int             `json:"points_per_item"`
}

// SectionDefinition is a togglable operational-logging category, e.g. "Fridge
// Temps". LiteDefaultOn, when set, overrides DefaultOn for deployments running
// the lighter-weight operating mode.
type SectionDefinition struct {
	Code          string `json:"code"`
	Title         string `json:"title"`
	DefaultOn     bool   `json:"default_on"`
	LiteDefaultOn *bool  `json:"lite_default_on"`
}

// EnabledByDefault resolves the section's default for the given operating mode.
func (s SectionDefinition) EnabledByDefault(lite bool) bool {
	if lite && s.LiteDefaultOn != nil {
		return *s.LiteDefaultOn
	}
	return s.DefaultOn
}

// FieldType enumerates wizard form field kinds.
type FieldType string

const (
	FieldText    FieldType = "text"
	FieldDate    FieldType = "date"
	FieldBoolean FieldType = "boolean"
	FieldSelect  FieldType = "select"
)

// WizardField is one typed input on an onboarding step.
type WizardField struct {
	Name     string    `json:"name"`
	Label    string    `json:"label"`
	Type     FieldType `json:"type"`
	Required bool      `json:"required"`
	Options  []string  `json:"options"`
}

// WizardStep is one ordered onboarding step.
type WizardStep struct {
	Code   string        `json:"code"`
	Title  string        `json:"title"`
	Fields []WizardField `json:"fields"`
}

// Tables maps logical entity names to physical persistence collection names.
// Multiple frameworks can share physical storage while differing in logic; the
// persistence layer is expected to honor this mapping.
type Tables map[string]string

// Features are the boolean capability flags of a framework.
type Features struct {
	SupervisorsRequired bool `json:"supervisors_required"`
	TrainingRegister    bool `json:"training_register"`
	SeverityLevels      bool `json:"severity_levels"`
	EvidenceAttachments bool `json:"evidence_attachments"`
	StarRating          bool `json:"star_rating"`
	LetterGrading       bool `json:"letter_grading"`
	HalalTracking       bool `json:"halal_tracking"`
}

// SupplierLabels describes how the supplier-identifier field is presented,
// e.g. "ABN" in Australia versus "Trade Licence" in the UAE.
type SupplierLabels struct {
	FieldLabel string `json:"field_label"`
	FieldHint  string `json:"field_hint"`
}

// Labels are the framework-level display strings.
type Labels struct {
	Name            string `json:"name"`
	Authority       string `json:"authority"`
	LicenceNumber   string `json:"licence_number"`
	SupervisorTitle string `json:"supervisor_title"`
	AccentColour    string `json:"accent_colour"`
}

// ComplianceFrameworkConfig is the fully-resolved configuration for one
// regulatory regime.
//
// Invariant: every derived config is structurally complete. Any field not
// explicitly overridden is inherited from the baseline, never left undefined.
type ComplianceFrameworkConfig struct {
	Code   string `json:"code"`
	Region string `json:"region"`
	Locale string `json:"locale"`

	Labels             Labels              `json:"labels"`
	AssessmentSections []AssessmentSection `json:"assessment_sections"`
	Scoring            ScoringConfig       `json:"scoring"`
	Sections           []SectionDefinition `json:"sections"`
	WizardSteps        []WizardStep        `json:"wizard_steps"`
	Tables             Tables              `json:"tables"`
	Features           Features            `json:"features"`
	Supplier           SupplierLabels      `json:"supplier"`
	AvailableTabs      []string            `json:"available_tabs"`

	// AssessmentFrameworkFilter discriminates rows when several frameworks'
	// assessments share one physical table. Empty means no filtering needed.
	AssessmentFrameworkFilter string `json:"assessment_framework_filter"`
}

// Items flattens the checklist in section order.
func (c ComplianceFrameworkConfig) Items() []AssessmentItem {
	var items []AssessmentItem
	for _, s := range c.AssessmentSections {
		items = append(items, s.Items...)
	}
	return items
}

// ItemByCode returns the checklist item with the given code, if present.
func (c ComplianceFrameworkConfig) ItemByCode(code string) (AssessmentItem, bool) {
	for _, s := range c.AssessmentSections {
		for _, it := range s.Items {
			if it.Code == code {
				return it, true
			}
		}
	}
	return AssessmentItem{}, false
}

// Table resolves a logical entity name to its physical collection name,
// falling back to the logical name when no mapping exists.
func (c ComplianceFrameworkConfig) Table(logical string) string {
	if physical, ok := c.Tables[logical]; ok {
		return physical
	}
	return logical
}

// AllowsSeverity reports whether the item may be flagged at the severity.
func (i AssessmentItem) AllowsSeverity(sev Severity) bool {
	for _, s := range i.Severities {
		if s == sev {
			return true
		}
	}
	return false
}
