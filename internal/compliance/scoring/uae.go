package scoring

import (
	"mise/internal/compliance/models"
	"mise/internal/compliance/registry"
)

// Convenience banding for the UAE display surfaces, which often hold a stored
// inspection percentage and only need the tier it lands in.

// DMGrade bands a percentage against the Dubai Municipality A–D tiers.
func DMGrade(pct float64) models.ScoringTier {
	return BandScore(frameworkTiers("dm"), pct)
}

// ADAFSAStars bands a percentage against the Abu Dhabi 1–5 star tiers.
func ADAFSAStars(pct float64) models.ScoringTier {
	return BandScore(frameworkTiers("adafsa"), pct)
}

func frameworkTiers(code string) []models.ScoringTier {
	reg, err := registry.Default()
	if err != nil {
		// A broken registry build is caught at startup; degrade to the zero
		// tier rather than panic in a display path.
		return nil
	}
	return reg.Get(code).Scoring.Tiers
}
