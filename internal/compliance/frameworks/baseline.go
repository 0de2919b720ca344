// Package frameworks holds the declarative compliance framework definitions:
// one fully-specified baseline plus a partial override table per regulatory
// regime. The registry derives every regime from the baseline at startup.
//
// All of this is developer-authored reference data. None of it is mutated at
// runtime.
package frameworks

import (
	"mise/internal/compliance/models"
)

// BaselineCode is the framework every other regime derives from. Queensland
// venues use it directly: Brisbane City Council's Eat Safe program is the
// platform's original launch regime and is intentionally a pass-through.
const BaselineCode = "bcc"

var (
	minorOnly     = []models.Severity{models.SeverityMinor}
	minorMajor    = []models.Severity{models.SeverityMinor, models.SeverityMajor}
	majorCritical = []models.Severity{models.SeverityMajor, models.SeverityCritical}
	allSeverities = []models.Severity{models.SeverityMinor, models.SeverityMajor, models.SeverityCritical}
)

func boolPtr(b bool) *bool { return &b }

// Baseline returns a fresh copy of the fully-specified Brisbane City Council
// configuration. Every field is populated; derived regimes only override what
// differs.
func Baseline() models.ComplianceFrameworkConfig {
	return models.ComplianceFrameworkConfig{
		Code:   BaselineCode,
		Region: "au",
		Locale: "en-AU",

		Labels: models.Labels{
			Name:            "Eat Safe Brisbane",
			Authority:       "Brisbane City Council",
			LicenceNumber:   "Food Business Licence Number",
			SupervisorTitle: "Food Safety Supervisor",
			AccentColour:    "#1D6F42",
		},

		AssessmentSections: baselineSections(),

		Scoring: models.ScoringConfig{
			Model: models.ModelStarRating,
			// Eat Safe star cascade: first matching row wins.
			StarBands: []models.StarBand{
				{MinCritical: 2, MinMajor: 3, Stars: 0},
				{MinCritical: 1, MinMajor: 1, MinMinor: 6, Stars: 2},
				{MinMinor: 4, Stars: 3},
				{MinMinor: 1, Stars: 4},
				{Stars: 5},
			},
			Tiers: []models.ScoringTier{
				{Min: 5, Stars: 5, Label: "Excellent", Colour: "#C9A227"},
				{Min: 4, Stars: 4, Label: "Very Good", Colour: "#1D6F42"},
				{Min: 3, Stars: 3, Label: "Good", Colour: "#6FA84B"},
				{Min: 2, Stars: 2, Label: "Poor", Colour: "#E2822B"},
				{Min: 0, Stars: 0, Label: "Non-Compliant", Colour: "#C0392B"},
			},
			Weights:       models.SeverityWeights{Critical: 10, Major: 3, Minor: 1},
			PointsPerItem: 5,
		},

		Sections: []models.SectionDefinition{
			{Code: "fridge_temps", Title: "Fridge Temps", DefaultOn: true},
			{Code: "freezer_temps", Title: "Freezer Temps", DefaultOn: true},
			{Code: "cooking_temps", Title: "Cooking Temps", DefaultOn: true},
			{Code: "hot_holding", Title: "Hot Holding", DefaultOn: true},
			{Code: "cooling", Title: "Cooling Logs", DefaultOn: true, LiteDefaultOn: boolPtr(false)},
			{Code: "deliveries", Title: "Delivery Checks", DefaultOn: true, LiteDefaultOn: boolPtr(false)},
			{Code: "cleaning", Title: "Cleaning Schedule", DefaultOn: true},
			{Code: "transport", Title: "Transport Logs", DefaultOn: false},
			{Code: "pest_checks", Title: "Pest Checks", DefaultOn: true, LiteDefaultOn: boolPtr(false)},
		},

		WizardSteps: []models.WizardStep{
			{
				Code:  "business_details",
				Title: "Business Details",
				Fields: []models.WizardField{
					{Name: "venue_name", Label: "Venue name", Type: models.FieldText, Required: true},
					{Name: "abn", Label: "ABN", Type: models.FieldText, Required: true},
					{Name: "licence_number", Label: "Food Business Licence Number", Type: models.FieldText, Required: true},
				},
			},
			{
				Code:  "supervisor",
				Title: "Food Safety Supervisor",
				Fields: []models.WizardField{
					{Name: "supervisor_name", Label: "Supervisor name", Type: models.FieldText, Required: true},
					{Name: "certificate_date", Label: "Certificate issue date", Type: models.FieldDate, Required: true},
					{Name: "certificate_current", Label: "Certificate is current", Type: models.FieldBoolean, Required: true},
				},
			},
			{
				Code:  "operations",
				Title: "Operations",
				Fields: []models.WizardField{
					{Name: "venue_type", Label: "Venue type", Type: models.FieldSelect, Required: true,
						Options: []string{"restaurant", "cafe", "takeaway", "caterer", "mobile"}},
					{Name: "seats", Label: "Seating capacity", Type: models.FieldText, Required: false},
					{Name: "opening_date", Label: "Opening date", Type: models.FieldDate, Required: false},
				},
			},
		},

		Tables: models.Tables{
			"assessments":  "self_assessments",
			"sections":     "venue_sections",
			"suppliers":    "suppliers",
			"temp_logs":    "temperature_logs",
			"training":     "training_records",
			"cleaning":     "cleaning_logs",
		},

		Features: models.Features{
			SupervisorsRequired: true,
			TrainingRegister:    true,
			SeverityLevels:      true,
			EvidenceAttachments: true,
			StarRating:          true,
			LetterGrading:       false,
			HalalTracking:       false,
		},

		Supplier: models.SupplierLabels{
			FieldLabel: "ABN",
			FieldHint:  "11-digit Australian Business Number",
		},

		AvailableTabs: []string{"dashboard", "assessments", "temperature", "suppliers", "training", "reports"},

		AssessmentFrameworkFilter: "",
	}
}

// baselineSections is the FSANZ Standard 3.2.2 derived checklist used across
// the Australian regimes.
func baselineSections() []models.AssessmentSection {
	return []models.AssessmentSection{
		{
			Code:  "food_receipt",
			Title: "Food Receipt",
			Items: []models.AssessmentItem{
				{Code: "FR-1", Category: "receiving", Requirement: "Potentially hazardous food is received at or below 5°C, or at or above 60°C", Severities: majorCritical},
				{Code: "FR-2", Category: "receiving", Requirement: "Incoming food is protected from contamination and packaging is intact", Severities: minorMajor},
				{Code: "FR-3", Category: "receiving", Requirement: "Food is obtained from licensed or approved suppliers", Detail: "Supplier details recorded, including name and business identifier", Severities: minorMajor, EvidenceRequired: true},
				{Code: "FR-4", Category: "receiving", Requirement: "Delivery checks are recorded for potentially hazardous food", Severities: minorOnly},
			},
		},
		{
			Code:  "food_storage",
			Title: "Food Storage",
			Items: []models.AssessmentItem{
				{Code: "FS-1", Category: "storage", Requirement: "Refrigerated potentially hazardous food is stored at or below 5°C", Severities: majorCritical, EvidenceRequired: true},
				{Code: "FS-2", Category: "storage", Requirement: "Frozen food is stored hard frozen", Severities: minorMajor},
				{Code: "FS-3", Category: "storage", Requirement: "Raw and ready-to-eat foods are stored separately or protected from cross contamination", Severities: allSeverities},
				{Code: "FS-4", Category: "storage", Requirement: "Food is stored off the floor and protected from contamination", Severities: minorOnly},
				{Code: "FS-5", Category: "storage", Requirement: "Food in storage is labelled, date coded and within shelf life", Severities: minorMajor},
			},
		},
		{
			Code:  "food_processing",
			Title: "Food Processing",
			Items: []models.AssessmentItem{
				{Code: "FP-1", Category: "processing", Requirement: "Potentially hazardous food is cooked to a safe internal temperature", Detail: "75°C core temperature for poultry and minced meats unless a validated alternative applies", Severities: majorCritical},
				{Code: "FP-2", Category: "processing", Requirement: "Time out of temperature control is monitored and within the 2-hour/4-hour rule", Severities: majorCritical},
				{Code: "FP-3", Category: "processing", Requirement: "Separate equipment or effective sanitising between raw and ready-to-eat preparation", Severities: allSeverities},
				{Code: "FP-4", Category: "processing", Requirement: "Thawing is carried out under refrigeration or as part of cooking", Severities: minorMajor},
				{Code: "FP-5", Category: "processing", Requirement: "A probe thermometer accurate to ±1°C is available and used", Severities: minorMajor},
			},
		},
		{
			Code:  "cooling_reheating",
			Title: "Cooling & Reheating",
			Items: []models.AssessmentItem{
				{Code: "CR-1", Category: "processing", Requirement: "Cooked food is cooled from 60°C to 21°C within 2 hours and to 5°C within a further 4 hours", Severities: majorCritical, EvidenceRequired: true},
				{Code: "CR-2", Category: "processing", Requirement: "Reheated food reaches 60°C or hotter rapidly before hot holding", Severities: minorMajor},
				{Code: "CR-3", Category: "processing", Requirement: "Hot held food is maintained at or above 60°C", Severities: majorCritical},
			},
		},
		{
			Code:  "cleaning_sanitising",
			Title: "Cleaning & Sanitising",
			Items: []models.AssessmentItem{
				{Code: "CS-1", Category: "cleaning", Requirement: "Food contact surfaces are cleaned and sanitised between tasks", Severities: allSeverities},
				{Code: "CS-2", Category: "cleaning", Requirement: "A cleaning schedule covering all areas and equipment is in place and followed", Severities: minorOnly, EvidenceRequired: true},
				{Code: "CS-3", Category: "cleaning", Requirement: "Dishwasher or sanitiser achieves an effective sanitising temperature or concentration", Severities: minorMajor},
				{Code: "CS-4", Category: "cleaning", Requirement: "Premises, fixtures and fittings are maintained in a clean state and good repair", Severities: minorMajor},
			},
		},
		{
			Code:  "personal_hygiene",
			Title: "Personal Hygiene",
			Items: []models.AssessmentItem{
				{Code: "PH-1", Category: "hygiene", Requirement: "Hand washing facilities are accessible, stocked with soap and single-use towels, and used only for hand washing", Severities: majorCritical},
				{Code: "PH-2", Category: "hygiene", Requirement: "Food handlers wash hands whenever hands are likely to contaminate food", Severities: majorCritical},
				{Code: "PH-3", Category: "hygiene", Requirement: "Food handlers with symptoms of foodborne illness are excluded from handling food", Severities: majorCritical},
				{Code: "PH-4", Category: "hygiene", Requirement: "Clean outer clothing appropriate to the work is worn", Severities: minorOnly},
				{Code: "PH-5", Category: "hygiene", Requirement: "Cuts and wounds on exposed skin are covered with a waterproof dressing", Severities: minorMajor},
			},
		},
		{
			Code:  "pest_control",
			Title: "Pest Control",
			Items: []models.AssessmentItem{
				{Code: "PC-1", Category: "pests", Requirement: "No evidence of pest activity in food preparation or storage areas", Severities: majorCritical},
				{Code: "PC-2", Category: "pests", Requirement: "Premises are proofed against the entry of pests", Severities: minorMajor},
				{Code: "PC-3", Category: "pests", Requirement: "A pest control program is in place with treatment records available", Severities: minorOnly, EvidenceRequired: true},
			},
		},
		{
			Code:  "records_management",
			Title: "Records & Management",
			Items: []models.AssessmentItem{
				{Code: "RM-1", Category: "management", Requirement: "A trained Food Safety Supervisor is appointed and reasonably available", Severities: minorMajor, EvidenceRequired: true},
				{Code: "RM-2", Category: "management", Requirement: "Food handler skills and knowledge training is current and recorded", Severities: minorOnly},
				{Code: "RM-3", Category: "management", Requirement: "Temperature monitoring records are complete for the review period", Severities: minorMajor},
				{Code: "RM-4", Category: "management", Requirement: "Food recall and complaint procedures are documented", Severities: minorOnly},
			},
		},
	}
}
