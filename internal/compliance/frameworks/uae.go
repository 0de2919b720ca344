package frameworks

import (
	"mise/internal/compliance/derive"
	"mise/internal/compliance/models"
)

// UAE emirate regimes. The three municipalities run their own inspection
// checklists and grade on percentages rather than stars, so each replaces
// assessment_sections wholesale. Their assessments share one physical table,
// discriminated by assessment_framework_filter.

var uaeTables = models.Tables{
	"assessments": "uae_assessments",
	"sections":    "venue_sections",
	"suppliers":   "uae_suppliers",
	"temp_logs":   "temperature_logs",
	"training":    "training_records",
	"cleaning":    "cleaning_logs",
}

var uaeWizardSteps = []models.WizardStep{
	{
		Code:  "business_details",
		Title: "Business Details",
		Fields: []models.WizardField{
			{Name: "venue_name", Label: "Establishment name", Type: models.FieldText, Required: true},
			{Name: "trade_licence", Label: "Trade Licence Number", Type: models.FieldText, Required: true},
			{Name: "municipality_permit", Label: "Municipality Permit Number", Type: models.FieldText, Required: true},
		},
	},
	{
		Code:  "pic",
		Title: "Person in Charge",
		Fields: []models.WizardField{
			{Name: "pic_name", Label: "PIC name", Type: models.FieldText, Required: true},
			{Name: "pic_certificate_date", Label: "PIC certificate date", Type: models.FieldDate, Required: true},
			{Name: "pic_level", Label: "PIC certification level", Type: models.FieldSelect, Required: true,
				Options: []string{"level_2", "level_3"}},
		},
	},
	{
		Code:  "halal",
		Title: "Halal Assurance",
		Fields: []models.WizardField{
			{Name: "serves_halal_only", Label: "Serves halal food only", Type: models.FieldBoolean, Required: true},
			{Name: "halal_certificate_date", Label: "Halal certificate date", Type: models.FieldDate, Required: false},
		},
	},
}

var dubaiMunicipality = derive.Overrides{
	"code":   "dm",
	"region": "uae",
	"locale": "en-AE",
	"labels": derive.Overrides{
		"name":             "Dubai Municipality Food Code",
		"authority":        "Dubai Municipality – Food Safety Department",
		"licence_number":   "Trade Licence Number",
		"supervisor_title": "Person in Charge (PIC)",
		"accent_colour":    "#C8102E",
	},
	"assessment_sections": dmSections(),
	"scoring": derive.Overrides{
		"model":      models.ModelPercentage,
		"star_bands": []models.StarBand{},
		"tiers": []models.ScoringTier{
			{Min: 90, Grade: "A", Label: "Excellent", Colour: "#1D8348"},
			{Min: 70, Grade: "B", Label: "Good", Colour: "#7DA83B"},
			{Min: 50, Grade: "C", Label: "Fair", Colour: "#E2822B"},
			{Min: 0, Grade: "D", Label: "Poor", Colour: "#C0392B"},
		},
	},
	"sections": []models.SectionDefinition{
		{Code: "fridge_temps", Title: "Chiller Temps", DefaultOn: true},
		{Code: "freezer_temps", Title: "Freezer Temps", DefaultOn: true},
		{Code: "cooking_temps", Title: "Cooking Temps", DefaultOn: true},
		{Code: "hot_holding", Title: "Hot Holding", DefaultOn: true},
		{Code: "deliveries", Title: "Receiving Checks", DefaultOn: true, LiteDefaultOn: boolPtr(false)},
		{Code: "cleaning", Title: "Cleaning Schedule", DefaultOn: true},
		{Code: "halal", Title: "Halal Records", DefaultOn: true},
		{Code: "pest_checks", Title: "Pest Checks", DefaultOn: true, LiteDefaultOn: boolPtr(false)},
	},
	"wizard_steps": uaeWizardSteps,
	"tables":       uaeTables,
	"features": derive.Overrides{
		"star_rating":    false,
		"letter_grading": true,
		"halal_tracking": true,
	},
	"supplier": derive.Overrides{
		"field_label": "Trade Licence",
		"field_hint":  "Supplier's trade licence number issued by the economic department",
	},
	"available_tabs":              []string{"dashboard", "assessments", "temperature", "suppliers", "training", "halal", "reports"},
	"assessment_framework_filter": "dm",
}

var abuDhabiADAFSA = derive.Overrides{
	"code":   "adafsa",
	"region": "uae",
	"locale": "en-AE",
	"labels": derive.Overrides{
		"name":             "ADAFSA Food Safety Rating",
		"authority":        "Abu Dhabi Agriculture and Food Safety Authority",
		"licence_number":   "Trade Licence Number",
		"supervisor_title": "Person in Charge (PIC)",
		"accent_colour":    "#8A1538",
	},
	"assessment_sections": adafsaSections(),
	"scoring": derive.Overrides{
		// ADAFSA publishes a star banding computed from the inspection
		// percentage, so the model stays percentage with star tiers.
		"model":      models.ModelPercentage,
		"star_bands": []models.StarBand{},
		"tiers": []models.ScoringTier{
			{Min: 90, Stars: 5, Label: "Excellent", Colour: "#1D8348"},
			{Min: 80, Stars: 4, Label: "Very Good", Colour: "#7DA83B"},
			{Min: 65, Stars: 3, Label: "Good", Colour: "#D9B310"},
			{Min: 50, Stars: 2, Label: "Needs Improvement", Colour: "#E2822B"},
			{Min: 0, Stars: 1, Label: "Poor", Colour: "#C0392B"},
		},
	},
	"wizard_steps": uaeWizardSteps,
	"tables":       uaeTables,
	"features": derive.Overrides{
		"halal_tracking": true,
	},
	"supplier": derive.Overrides{
		"field_label": "Trade Licence",
		"field_hint":  "Supplier's trade licence number issued by the economic department",
	},
	"available_tabs":              []string{"dashboard", "assessments", "temperature", "suppliers", "training", "halal", "reports"},
	"assessment_framework_filter": "adafsa",
}

var sharjahMunicipality = derive.Overrides{
	"code":   "sm_sharjah",
	"region": "uae",
	"locale": "en-AE",
	"labels": derive.Overrides{
		"name":             "Sharjah Municipality Food Inspection",
		"authority":        "Sharjah City Municipality",
		"licence_number":   "Trade Licence Number",
		"supervisor_title": "Person in Charge (PIC)",
		"accent_colour":    "#00703C",
	},
	"assessment_sections": sharjahSections(),
	"scoring": derive.Overrides{
		"model":      models.ModelPercentage,
		"star_bands": []models.StarBand{},
		"tiers": []models.ScoringTier{
			{Min: 85, Grade: "A", Label: "Compliant", Colour: "#1D8348"},
			{Min: 60, Grade: "B", Label: "Partially Compliant", Colour: "#E2822B"},
			{Min: 0, Grade: "C", Label: "Non-Compliant", Colour: "#C0392B"},
		},
	},
	"wizard_steps": uaeWizardSteps,
	"tables":       uaeTables,
	"features": derive.Overrides{
		"star_rating":    false,
		"letter_grading": true,
		"halal_tracking": true,
	},
	"supplier": derive.Overrides{
		"field_label": "Trade Licence",
		"field_hint":  "Supplier's trade licence number issued by the economic department",
	},
	"assessment_framework_filter": "sm_sharjah",
}

func dmSections() []models.AssessmentSection {
	return []models.AssessmentSection{
		{
			Code:  "receiving",
			Title: "Receiving & Traceability",
			Items: []models.AssessmentItem{
				{Code: "DM-1.1", Category: "receiving", Requirement: "Food is sourced from approved suppliers registered with the municipality", Severities: majorCritical, EvidenceRequired: true},
				{Code: "DM-1.2", Category: "receiving", Requirement: "Chilled food is received at 5°C or below and frozen food at -18°C or below", Severities: majorCritical},
				{Code: "DM-1.3", Category: "receiving", Requirement: "Delivery vehicles are clean and maintain the cold chain", Severities: minorMajor},
			},
		},
		{
			Code:  "temperature_control",
			Title: "Temperature Control",
			Items: []models.AssessmentItem{
				{Code: "DM-2.1", Category: "temperature", Requirement: "Chillers operate at 5°C or below and freezers at -18°C or below", Severities: majorCritical, EvidenceRequired: true},
				{Code: "DM-2.2", Category: "temperature", Requirement: "Hot food is held at 60°C or above", Severities: majorCritical},
				{Code: "DM-2.3", Category: "temperature", Requirement: "Cooking reaches 75°C core temperature or a validated equivalent", Severities: majorCritical},
				{Code: "DM-2.4", Category: "temperature", Requirement: "Calibrated probe thermometers are available and calibration records kept", Severities: minorMajor, EvidenceRequired: true},
			},
		},
		{
			Code:  "cross_contamination",
			Title: "Cross Contamination Control",
			Items: []models.AssessmentItem{
				{Code: "DM-3.1", Category: "handling", Requirement: "Raw and ready-to-eat foods are segregated in storage and preparation", Severities: allSeverities},
				{Code: "DM-3.2", Category: "handling", Requirement: "Colour-coded cutting boards and utensils are used correctly", Severities: minorMajor},
				{Code: "DM-3.3", Category: "handling", Requirement: "Food handlers hold valid occupational health cards", Severities: majorCritical, EvidenceRequired: true},
			},
		},
		{
			Code:  "hygiene",
			Title: "Personal Hygiene & Training",
			Items: []models.AssessmentItem{
				{Code: "DM-4.1", Category: "hygiene", Requirement: "Hand wash stations are accessible, stocked and used", Severities: majorCritical},
				{Code: "DM-4.2", Category: "hygiene", Requirement: "Food handlers have completed municipality-approved food safety training", Severities: minorMajor, EvidenceRequired: true},
				{Code: "DM-4.3", Category: "hygiene", Requirement: "A certified Person in Charge is present during operating hours", Severities: majorCritical},
			},
		},
		{
			Code:  "halal",
			Title: "Halal Assurance",
			Items: []models.AssessmentItem{
				{Code: "DM-5.1", Category: "halal", Requirement: "Halal certificates are current for all meat and poultry suppliers", Severities: majorCritical, EvidenceRequired: true},
				{Code: "DM-5.2", Category: "halal", Requirement: "Non-halal items, where permitted, are stored and displayed separately", Severities: minorMajor},
			},
		},
		{
			Code:  "premises",
			Title: "Premises & Pest Control",
			Items: []models.AssessmentItem{
				{Code: "DM-6.1", Category: "premises", Requirement: "Premises are maintained clean, in good repair and free of pest activity", Severities: allSeverities},
				{Code: "DM-6.2", Category: "premises", Requirement: "Pest control is carried out by a municipality-approved contractor", Severities: minorOnly, EvidenceRequired: true},
				{Code: "DM-6.3", Category: "premises", Requirement: "Waste is stored in covered containers and removed regularly", Severities: minorOnly},
			},
		},
	}
}

func adafsaSections() []models.AssessmentSection {
	return []models.AssessmentSection{
		{
			Code:  "receiving",
			Title: "Receiving & Storage",
			Items: []models.AssessmentItem{
				{Code: "AD-1.1", Category: "receiving", Requirement: "Food is sourced from ADAFSA-approved establishments", Severities: majorCritical, EvidenceRequired: true},
				{Code: "AD-1.2", Category: "storage", Requirement: "Chilled storage at 5°C or below; frozen storage at -18°C or below", Severities: majorCritical},
				{Code: "AD-1.3", Category: "storage", Requirement: "Storage areas are organised with raw food below ready-to-eat food", Severities: minorMajor},
			},
		},
		{
			Code:  "preparation",
			Title: "Preparation & Cooking",
			Items: []models.AssessmentItem{
				{Code: "AD-2.1", Category: "processing", Requirement: "Cooking and reheating reach safe core temperatures", Severities: majorCritical},
				{Code: "AD-2.2", Category: "processing", Requirement: "Cooling follows the approved two-stage time and temperature profile", Severities: majorCritical},
				{Code: "AD-2.3", Category: "processing", Requirement: "Thawing is conducted under refrigeration or validated alternative", Severities: minorMajor},
			},
		},
		{
			Code:  "hygiene",
			Title: "Hygiene & Personnel",
			Items: []models.AssessmentItem{
				{Code: "AD-3.1", Category: "hygiene", Requirement: "Food handlers hold valid health fitness certificates", Severities: majorCritical, EvidenceRequired: true},
				{Code: "AD-3.2", Category: "hygiene", Requirement: "Hand washing practices follow the EHSMS requirements", Severities: majorCritical},
				{Code: "AD-3.3", Category: "hygiene", Requirement: "A trained PIC oversees food safety during all operating hours", Severities: minorMajor},
			},
		},
		{
			Code:  "management",
			Title: "Management Systems",
			Items: []models.AssessmentItem{
				{Code: "AD-4.1", Category: "management", Requirement: "A documented food safety management system appropriate to the activity is implemented", Severities: minorMajor, EvidenceRequired: true},
				{Code: "AD-4.2", Category: "management", Requirement: "Monitoring records for temperature and cleaning are complete", Severities: minorOnly},
				{Code: "AD-4.3", Category: "management", Requirement: "Halal supplier certification is current and on file", Severities: majorCritical, EvidenceRequired: true},
			},
		},
	}
}

func sharjahSections() []models.AssessmentSection {
	return []models.AssessmentSection{
		{
			Code:  "food_safety",
			Title: "Food Safety Practices",
			Items: []models.AssessmentItem{
				{Code: "SM-1.1", Category: "temperature", Requirement: "Cold chain maintained at 5°C or below throughout receipt and storage", Severities: majorCritical},
				{Code: "SM-1.2", Category: "temperature", Requirement: "Hot holding at 60°C or above; cooking to safe core temperatures", Severities: majorCritical},
				{Code: "SM-1.3", Category: "handling", Requirement: "Raw and cooked foods separated at all stages", Severities: allSeverities},
				{Code: "SM-1.4", Category: "halal", Requirement: "All meat and poultry carry valid halal certification", Severities: majorCritical, EvidenceRequired: true},
			},
		},
		{
			Code:  "hygiene",
			Title: "Hygiene & Premises",
			Items: []models.AssessmentItem{
				{Code: "SM-2.1", Category: "hygiene", Requirement: "Food handlers hold valid occupational health cards", Severities: majorCritical, EvidenceRequired: true},
				{Code: "SM-2.2", Category: "hygiene", Requirement: "Hand washing facilities are available and in use", Severities: minorMajor},
				{Code: "SM-2.3", Category: "premises", Requirement: "Premises clean, maintained and free from pest activity", Severities: allSeverities},
				{Code: "SM-2.4", Category: "premises", Requirement: "Waste management and drainage meet municipality requirements", Severities: minorOnly},
			},
		},
	}
}
