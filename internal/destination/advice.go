package destination

import (
	"fmt"
	"strings"
)

// AdviceLevel buckets a safety score for the safety advisor.
type AdviceLevel string

const (
	LevelVerySafe AdviceLevel = "very_safe"
	LevelSafe     AdviceLevel = "safe"
	LevelModerate AdviceLevel = "moderate"
	LevelElevated AdviceLevel = "elevated"
)

// Advice is the safety advisor's answer for a destination.
type Advice struct {
	Level          AdviceLevel `json:"level"`
	Summary        string      `json:"summary"`
	Recommendation string      `json:"recommendation"`
}

// Advise turns d's safety score into a summary and a recommendation.
func Advise(d Destination) Advice {
	place := strings.TrimSpace(strings.SplitN(d.Name, ",", 2)[0])
	score := d.SafetyScore

	var a Advice
	switch {
	case score >= 8.5:
		a.Level = LevelVerySafe
		a.Summary = fmt.Sprintf("%s is considered a very safe destination with a safety score of %.1f/10. Travelers report few safety concerns, though standard precautions are always recommended.", place, score)
	case score >= 7:
		a.Level = LevelSafe
		a.Summary = fmt.Sprintf("%s is generally safe for travelers with a safety score of %.1f/10. Take normal precautions, stay alert in crowded areas and keep track of your belongings.", place, score)
	case score >= 6:
		a.Level = LevelModerate
		a.Summary = fmt.Sprintf("%s has a moderate safety score of %.1f/10. Many areas are fine for tourists, but research neighborhoods before visiting and avoid isolated areas at night.", place, score)
	default:
		a.Level = LevelElevated
		a.Summary = fmt.Sprintf("%s has a safety score of %.1f/10, indicating real safety concerns. Exercise high caution, research safe areas thoroughly and follow official travel advisories.", place, score)
	}

	switch {
	case score >= 8:
		a.Recommendation = fmt.Sprintf("%s is an excellent choice for most travelers, including first-time visitors and families.", place)
	case score >= 7:
		a.Recommendation = fmt.Sprintf("%s is a good choice for travelers who take standard precautions.", place)
	case score >= 6:
		a.Recommendation = fmt.Sprintf("%s can be visited safely with proper preparation; first-time travelers should research thoroughly before deciding.", place)
	default:
		a.Recommendation = fmt.Sprintf("Consider whether your experience with higher-risk destinations matches the current situation in %s.", place)
	}

	return a
}
