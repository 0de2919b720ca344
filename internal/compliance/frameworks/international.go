package frameworks

import (
	"mise/internal/compliance/derive"
	"mise/internal/compliance/models"
)

// International regimes outside Australia and the UAE.

// ukFSA follows the Food Hygiene Rating Scheme: an ordinal 0–5 rating with no
// per-item severity weighting, so it uses the letter_grade passthrough model.
var ukFSA = derive.Overrides{
	"code":   "uk_fsa",
	"region": "uk",
	"locale": "en-GB",
	"labels": derive.Overrides{
		"name":             "Food Hygiene Rating Scheme",
		"authority":        "Food Standards Agency",
		"licence_number":   "Registration Number",
		"supervisor_title": "Food Safety Manager",
		"accent_colour":    "#006F51",
	},
	"assessment_sections": []models.AssessmentSection{
		{
			Code:  "hygiene",
			Title: "Food Hygiene & Safety",
			Items: []models.AssessmentItem{
				{Code: "UK-1.1", Category: "hygiene", Requirement: "Food is handled, cooked, cooled and stored at safe temperatures", Severities: minorMajor},
				{Code: "UK-1.2", Category: "hygiene", Requirement: "Cross contamination between raw and ready-to-eat food is controlled", Severities: minorMajor},
				{Code: "UK-1.3", Category: "hygiene", Requirement: "Personal hygiene practices are satisfactory", Severities: minorMajor},
			},
		},
		{
			Code:  "structure",
			Title: "Structural Compliance",
			Items: []models.AssessmentItem{
				{Code: "UK-2.1", Category: "premises", Requirement: "Premises are clean, in good repair and pest free", Severities: minorMajor},
				{Code: "UK-2.2", Category: "premises", Requirement: "Layout, ventilation and hand washing facilities are adequate", Severities: minorOnly},
			},
		},
		{
			Code:  "management",
			Title: "Confidence in Management",
			Items: []models.AssessmentItem{
				{Code: "UK-3.1", Category: "management", Requirement: "A documented food safety management system (e.g. Safer Food, Better Business) is in place and followed", Severities: minorMajor, EvidenceRequired: true},
				{Code: "UK-3.2", Category: "management", Requirement: "Staff training and supervision are appropriate to the work", Severities: minorOnly},
			},
		},
	},
	"scoring": derive.Overrides{
		"model":      models.ModelLetterGrade,
		"star_bands": []models.StarBand{},
		"tiers": []models.ScoringTier{
			{Min: 95, Stars: 5, Grade: "5", Label: "Very Good", Colour: "#1D8348"},
			{Min: 85, Stars: 4, Grade: "4", Label: "Good", Colour: "#7DA83B"},
			{Min: 70, Stars: 3, Grade: "3", Label: "Generally Satisfactory", Colour: "#D9B310"},
			{Min: 50, Stars: 2, Grade: "2", Label: "Improvement Necessary", Colour: "#E2822B"},
			{Min: 25, Stars: 1, Grade: "1", Label: "Major Improvement Necessary", Colour: "#CA5010"},
			{Min: 0, Stars: 0, Grade: "0", Label: "Urgent Improvement Necessary", Colour: "#C0392B"},
		},
	},
	"features": derive.Overrides{
		"severity_levels": false,
		"star_rating":     false,
		"letter_grading":  true,
	},
	"supplier": derive.Overrides{
		"field_label": "Company Number",
		"field_hint":  "Companies House registration number",
	},
}

var singaporeSFA = derive.Overrides{
	"code":   "sg_sfa",
	"region": "sg",
	"locale": "en-SG",
	"labels": derive.Overrides{
		"name":             "SFA Food Establishment Grading",
		"authority":        "Singapore Food Agency",
		"licence_number":   "SFA Licence Number",
		"supervisor_title": "Food Hygiene Officer",
		"accent_colour":    "#ED2939",
	},
	"assessment_sections": []models.AssessmentSection{
		{
			Code:  "hygiene",
			Title: "Food & Personal Hygiene",
			Items: []models.AssessmentItem{
				{Code: "SG-1.1", Category: "hygiene", Requirement: "Food handlers are registered and have completed the Food Safety Course", Severities: minorMajor, EvidenceRequired: true},
				{Code: "SG-1.2", Category: "hygiene", Requirement: "Personal hygiene and hand washing practices are satisfactory", Severities: minorMajor},
				{Code: "SG-1.3", Category: "temperature", Requirement: "Time and temperature control of potentially hazardous food is maintained", Severities: minorMajor},
			},
		},
		{
			Code:  "premises",
			Title: "Premises Upkeep",
			Items: []models.AssessmentItem{
				{Code: "SG-2.1", Category: "premises", Requirement: "Premises, equipment and utensils are clean and well maintained", Severities: minorMajor},
				{Code: "SG-2.2", Category: "premises", Requirement: "Refuse management and pest control are effective", Severities: minorOnly},
				{Code: "SG-2.3", Category: "management", Requirement: "A Food Hygiene Officer is appointed where required", Severities: minorOnly},
			},
		},
	},
	"scoring": derive.Overrides{
		"model":      models.ModelLetterGrade,
		"star_bands": []models.StarBand{},
		"tiers": []models.ScoringTier{
			{Min: 85, Grade: "A", Label: "Excellent", Colour: "#1D8348"},
			{Min: 70, Grade: "B", Label: "Good", Colour: "#7DA83B"},
			{Min: 40, Grade: "C", Label: "Average", Colour: "#E2822B"},
			{Min: 0, Grade: "D", Label: "Pass", Colour: "#C0392B"},
		},
	},
	"features": derive.Overrides{
		"severity_levels": false,
		"star_rating":     false,
		"letter_grading":  true,
	},
	"supplier": derive.Overrides{
		"field_label": "UEN",
		"field_hint":  "Unique Entity Number issued by ACRA",
	},
}

// usFDA maps the Food Code violation classes (priority, priority foundation,
// core) onto critical/major/minor severities.
var usFDA = derive.Overrides{
	"code":   "us_fda",
	"region": "us",
	"locale": "en-US",
	"labels": derive.Overrides{
		"name":             "Retail Food Inspection",
		"authority":        "FDA Model Food Code",
		"licence_number":   "Permit Number",
		"supervisor_title": "Certified Food Protection Manager",
		"accent_colour":    "#2A5DB0",
	},
	"assessment_sections": []models.AssessmentSection{
		{
			Code:  "temperature",
			Title: "Time & Temperature",
			Items: []models.AssessmentItem{
				{Code: "US-1.1", Category: "temperature", Requirement: "Cold holding at 41°F or below; hot holding at 135°F or above", Severities: majorCritical},
				{Code: "US-1.2", Category: "temperature", Requirement: "Cooking temperatures meet Food Code requirements for the food type", Severities: majorCritical},
				{Code: "US-1.3", Category: "temperature", Requirement: "Date marking and discard of ready-to-eat TCS food is followed", Severities: minorMajor},
			},
		},
		{
			Code:  "contamination",
			Title: "Protection from Contamination",
			Items: []models.AssessmentItem{
				{Code: "US-2.1", Category: "handling", Requirement: "Food-contact surfaces are cleaned and sanitized; no bare-hand contact with ready-to-eat food", Severities: majorCritical},
				{Code: "US-2.2", Category: "handling", Requirement: "Food is obtained from approved sources with records available", Severities: minorMajor, EvidenceRequired: true},
			},
		},
		{
			Code:  "management",
			Title: "Supervision & Employee Health",
			Items: []models.AssessmentItem{
				{Code: "US-3.1", Category: "management", Requirement: "A Certified Food Protection Manager is present or on call", Severities: minorMajor, EvidenceRequired: true},
				{Code: "US-3.2", Category: "management", Requirement: "An employee health policy covering the Big Six illnesses is enforced", Severities: majorCritical},
				{Code: "US-3.3", Category: "hygiene", Requirement: "Handwashing sinks are stocked, accessible and used", Severities: majorCritical},
			},
		},
	},
	"scoring": derive.Overrides{
		"model":      models.ModelPercentage,
		"star_bands": []models.StarBand{},
		"tiers": []models.ScoringTier{
			{Min: 90, Grade: "A", Label: "Pass", Colour: "#1D8348"},
			{Min: 80, Grade: "B", Label: "Conditional Pass", Colour: "#D9B310"},
			{Min: 70, Grade: "C", Label: "Re-inspection Required", Colour: "#E2822B"},
			{Min: 0, Grade: "F", Label: "Closure", Colour: "#C0392B"},
		},
	},
	"features": derive.Overrides{
		"star_rating":    false,
		"letter_grading": true,
	},
	"supplier": derive.Overrides{
		"field_label": "EIN",
		"field_hint":  "Employer Identification Number",
	},
}

var indiaFSSAI = derive.Overrides{
	"code":   "fssai",
	"region": "in",
	"locale": "en-IN",
	"labels": derive.Overrides{
		"name":             "FSSAI Hygiene Rating",
		"authority":        "Food Safety and Standards Authority of India",
		"licence_number":   "FSSAI Licence Number",
		"supervisor_title": "Food Safety Supervisor",
		"accent_colour":    "#FF9933",
	},
	"assessment_sections": []models.AssessmentSection{
		{
			Code:  "schedule4",
			Title: "Schedule 4 Requirements",
			Items: []models.AssessmentItem{
				{Code: "IN-1.1", Category: "receiving", Requirement: "Raw materials are sourced from FSSAI licensed or registered vendors", Severities: minorMajor, EvidenceRequired: true},
				{Code: "IN-1.2", Category: "temperature", Requirement: "Cold chain maintained for perishables; cooked food held above 60°C or below 5°C", Severities: majorCritical},
				{Code: "IN-1.3", Category: "handling", Requirement: "Vegetarian and non-vegetarian preparation areas are segregated", Severities: allSeverities},
			},
		},
		{
			Code:  "hygiene",
			Title: "Hygiene & Sanitation",
			Items: []models.AssessmentItem{
				{Code: "IN-2.1", Category: "hygiene", Requirement: "Food handlers undergo annual medical examination and FoSTaC training", Severities: minorMajor, EvidenceRequired: true},
				{Code: "IN-2.2", Category: "hygiene", Requirement: "Potable water is used for food preparation with test reports available", Severities: majorCritical, EvidenceRequired: true},
				{Code: "IN-2.3", Category: "premises", Requirement: "Premises are clean with effective pest control and waste disposal", Severities: minorMajor},
			},
		},
		{
			Code:  "records",
			Title: "Documentation",
			Items: []models.AssessmentItem{
				{Code: "IN-3.1", Category: "management", Requirement: "FSSAI licence is displayed and current", Severities: minorMajor},
				{Code: "IN-3.2", Category: "management", Requirement: "Daily hygiene checklists and temperature logs are maintained", Severities: minorOnly},
			},
		},
	},
	"scoring": derive.Overrides{
		"star_bands": []models.StarBand{
			{MinCritical: 1, MinMajor: 3, Stars: 1},
			{MinMajor: 1, MinMinor: 5, Stars: 2},
			{MinMinor: 3, Stars: 3},
			{MinMinor: 1, Stars: 4},
			{Stars: 5},
		},
		"tiers": []models.ScoringTier{
			{Min: 5, Stars: 5, Label: "Excellent", Colour: "#1D8348"},
			{Min: 4, Stars: 4, Label: "Very Good", Colour: "#7DA83B"},
			{Min: 3, Stars: 3, Label: "Good", Colour: "#D9B310"},
			{Min: 2, Stars: 2, Label: "Needs Improvement", Colour: "#E2822B"},
			{Min: 0, Stars: 1, Label: "Poor", Colour: "#C0392B"},
		},
	},
	"supplier": derive.Overrides{
		"field_label": "FSSAI Registration",
		"field_hint":  "14-digit FSSAI licence or registration number",
	},
}
