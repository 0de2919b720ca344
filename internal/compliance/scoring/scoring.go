// Package scoring converts checklist answer sets into display-ready grades.
//
// Three interchangeable models, selected by the framework's scoring config:
// the star-rating cascade, the severity-weighted percentage, and the raw
// letter-grade passthrough. All pure domain logic, no I/O.
package scoring

import "mise/internal/compliance/models"

// SeverityCounts tallies non-compliant answers by severity.
type SeverityCounts struct {
	Critical int `json:"critical"`
	Major    int `json:"major"`
	Minor    int `json:"minor"`
}

// Result is a scored assessment ready for display.
type Result struct {
	Model      models.ScoringModel `json:"model"`
	Stars      int                 `json:"stars"`
	Grade      string              `json:"grade"`
	Percentage float64             `json:"percentage"`
	Label      string              `json:"label"`
	Colour     string              `json:"colour"`
	Counts     SeverityCounts      `json:"counts"`
	Answered   int                 `json:"answered"`
	Compliant  int                 `json:"compliant"`
}

const defaultPointsPerItem = 5

// Score grades an answer set using the framework's configured model.
func Score(cfg models.ComplianceFrameworkConfig, answers models.AnswerSet) Result {
	switch cfg.Scoring.Model {
	case models.ModelStarRating:
		return scoreStars(cfg.Scoring, answers)
	case models.ModelPercentage:
		return scorePercentage(cfg.Scoring, answers)
	case models.ModelLetterGrade:
		return scoreLetterGrade(cfg.Scoring, answers)
	default:
		// Unknown model: grade conservatively rather than fail.
		return scoreLetterGrade(cfg.Scoring, answers)
	}
}

// scoreStars walks the cascading rule table top-down; the first row whose
// thresholds the severity counts satisfy decides the star band.
func scoreStars(cfg models.ScoringConfig, answers models.AnswerSet) Result {
	counts, answered, compliant := tally(answers)

	stars := 0
	for _, band := range cfg.StarBands {
		if bandMatches(band, counts) {
			stars = band.Stars
			break
		}
	}

	tier := BandScore(cfg.Tiers, float64(stars))
	return Result{
		Model:      models.ModelStarRating,
		Stars:      stars,
		Grade:      tier.Grade,
		Percentage: rawPercentage(compliant, answered),
		Label:      tier.Label,
		Colour:     tier.Colour,
		Counts:     counts,
		Answered:   answered,
		Compliant:  compliant,
	}
}

// bandMatches applies OR semantics across the row's non-zero thresholds. A row
// with no thresholds is the catch-all.
func bandMatches(band models.StarBand, counts SeverityCounts) bool {
	if band.MinCritical == 0 && band.MinMajor == 0 && band.MinMinor == 0 {
		return true
	}
	if band.MinCritical > 0 && counts.Critical >= band.MinCritical {
		return true
	}
	if band.MinMajor > 0 && counts.Major >= band.MinMajor {
		return true
	}
	if band.MinMinor > 0 && counts.Minor >= band.MinMinor {
		return true
	}
	return false
}

// scorePercentage starts from the compliance ratio and subtracts severity
// penalty weights from the maximum attainable points. Any critical
// non-compliance caps the result below the worst tier's ceiling: a critical
// failure must never produce a passing grade by arithmetic coincidence.
func scorePercentage(cfg models.ScoringConfig, answers models.AnswerSet) Result {
	counts, answered, compliant := tally(answers)

	pointsPerItem := cfg.PointsPerItem
	if pointsPerItem <= 0 {
		pointsPerItem = defaultPointsPerItem
	}

	var pct float64
	if answered > 0 {
		maxPoints := answered * pointsPerItem
		penalty := 0
		for _, a := range answers {
			if a.Status != models.StatusNonCompliant {
				continue
			}
			penalty += pointsPerItem + severityWeight(cfg.Weights, a.Severity)
		}
		pct = float64(maxPoints-penalty) / float64(maxPoints) * 100
		if pct < 0 {
			pct = 0
		}
		if pct > 100 {
			pct = 100
		}
	}

	if counts.Critical > 0 {
		if ceiling := worstTierCeiling(cfg.Tiers); pct > ceiling {
			pct = ceiling
		}
	}

	tier := BandScore(cfg.Tiers, pct)
	return Result{
		Model:      models.ModelPercentage,
		Stars:      tier.Stars,
		Grade:      tier.Grade,
		Percentage: pct,
		Label:      tier.Label,
		Colour:     tier.Colour,
		Counts:     counts,
		Answered:   answered,
		Compliant:  compliant,
	}
}

// scoreLetterGrade is the unweighted passthrough used by ordinal regimes.
func scoreLetterGrade(cfg models.ScoringConfig, answers models.AnswerSet) Result {
	counts, answered, compliant := tally(answers)
	pct := rawPercentage(compliant, answered)

	tier := BandScore(cfg.Tiers, pct)
	return Result{
		Model:      models.ModelLetterGrade,
		Stars:      tier.Stars,
		Grade:      tier.Grade,
		Percentage: pct,
		Label:      tier.Label,
		Colour:     tier.Colour,
		Counts:     counts,
		Answered:   answered,
		Compliant:  compliant,
	}
}

// BandScore selects the display tier: tiers are ordered descending by Min and
// the first tier whose minimum the score meets or exceeds wins. An empty tier
// list yields the zero tier; a score below every minimum takes the last tier.
func BandScore(tiers []models.ScoringTier, score float64) models.ScoringTier {
	if len(tiers) == 0 {
		return models.ScoringTier{}
	}
	for _, t := range tiers {
		if score >= t.Min {
			return t
		}
	}
	return tiers[len(tiers)-1]
}

// worstTierCeiling is the highest score that still lands in the worst tier:
// one point below the second-worst tier's minimum.
func worstTierCeiling(tiers []models.ScoringTier) float64 {
	if len(tiers) < 2 {
		return 0
	}
	return tiers[len(tiers)-2].Min - 1
}

// tally counts severities and answered/compliant items. Not-applicable answers
// are excluded from the answered total so they neither help nor hurt.
func tally(answers models.AnswerSet) (SeverityCounts, int, int) {
	var counts SeverityCounts
	answered, compliant := 0, 0
	for _, a := range answers {
		switch a.Status {
		case models.StatusCompliant:
			answered++
			compliant++
		case models.StatusNonCompliant:
			answered++
			switch a.Severity {
			case models.SeverityCritical:
				counts.Critical++
			case models.SeverityMajor:
				counts.Major++
			default:
				counts.Minor++
			}
		}
	}
	return counts, answered, compliant
}

func severityWeight(w models.SeverityWeights, sev models.Severity) int {
	switch sev {
	case models.SeverityCritical:
		return w.Critical
	case models.SeverityMajor:
		return w.Major
	default:
		return w.Minor
	}
}

func rawPercentage(compliant, answered int) float64 {
	if answered == 0 {
		return 0
	}
	return float64(compliant) / float64(answered) * 100
}
