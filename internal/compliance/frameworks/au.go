package frameworks

import (
	"mise/internal/compliance/derive"
	"mise/internal/compliance/models"
)

// Australian state regimes. All states assess against the shared FSANZ
// Standard 3.2.2 checklist, so none of them override assessment_sections;
// they differ in program branding, licence terminology and star banding.

// nswFoodAuthority is the Scores on Doors program: only 3, 4 and 5 star
// certificates are issued, anything below scores no certificate at all.
var nswFoodAuthority = derive.Overrides{
	"code": "nsw_fa",
	"labels": derive.Overrides{
		"name":           "Scores on Doors",
		"authority":      "NSW Food Authority",
		"licence_number": "Licence Number",
		"accent_colour":  "#00539F",
	},
	"scoring": derive.Overrides{
		"star_bands": []models.StarBand{
			{MinCritical: 1, MinMajor: 2, Stars: 0},
			{MinMajor: 1, MinMinor: 5, Stars: 3},
			{MinMinor: 2, Stars: 4},
			{Stars: 5},
		},
		"tiers": []models.ScoringTier{
			{Min: 5, Stars: 5, Label: "Excellent", Colour: "#C9A227"},
			{Min: 4, Stars: 4, Label: "Very Good", Colour: "#00539F"},
			{Min: 3, Stars: 3, Label: "Good", Colour: "#6FA84B"},
			{Min: 0, Stars: 0, Label: "No Certificate", Colour: "#C0392B"},
		},
	},
}

var vicHealth = derive.Overrides{
	"code": "vic_dh",
	"labels": derive.Overrides{
		"name":           "Victorian Food Safety Program",
		"authority":      "Department of Health Victoria",
		"licence_number": "Class Registration Number",
		"accent_colour":  "#004C97",
	},
}

var saHealth = derive.Overrides{
	"code": "sa_health",
	"labels": derive.Overrides{
		"name":          "SA Food Safety Rating",
		"authority":     "SA Health",
		"accent_colour": "#D03C3C",
	},
}

var waHealth = derive.Overrides{
	"code": "wa_doh",
	"labels": derive.Overrides{
		"name":          "WA Food Safety Assessment",
		"authority":     "WA Department of Health",
		"accent_colour": "#B68400",
	},
}

var tasHealth = derive.Overrides{
	"code": "tas_doh",
	"labels": derive.Overrides{
		"name":          "Tasmanian Food Safety Assessment",
		"authority":     "Tasmanian Department of Health",
		"accent_colour": "#006A4D",
	},
}

var actHealth = derive.Overrides{
	"code": "act_health",
	"labels": derive.Overrides{
		"name":           "ACT Registered Food Business Scheme",
		"authority":      "ACT Health",
		"licence_number": "Registration Number",
		"accent_colour":  "#003DA5",
	},
}

var ntHealth = derive.Overrides{
	"code": "nt_doh",
	"labels": derive.Overrides{
		"name":          "NT Food Safety Assessment",
		"authority":     "NT Department of Health",
		"accent_colour": "#C25E03",
	},
}
