package matching

import "strings"

// LocationPref carries the candidate-side inputs to the location scorer.
type LocationPref struct {
	PreferredCity        *string
	TransitCeilingMeters *int
}

// ScoreLocation rates a posting's location against the candidate's
// preference. With no preference at all the score is a neutral 50. A
// preferred-city hit adds 30; transit proximity adds up to 20 the closer
// the stop is inside the candidate's ceiling, or subtracts 20 when the
// stop lies beyond it.
func ScoreLocation(loc Location, pref LocationPref) float64 {
	if pref.PreferredCity == nil && pref.TransitCeilingMeters == nil {
		return 50
	}

	score := 50.0

	if pref.PreferredCity != nil && strings.EqualFold(strings.TrimSpace(*pref.PreferredCity), strings.TrimSpace(loc.City)) {
		score += 30
	}

	if pref.TransitCeilingMeters != nil && loc.TransitDistanceMeters != nil {
		ceiling := float64(*pref.TransitCeilingMeters)
		distance := float64(*loc.TransitDistanceMeters)
		if distance <= ceiling {
			if ceiling > 0 {
				score += 20 * (ceiling - distance) / ceiling
			}
		} else {
			score -= 20
		}
	}

	return clampScore(score)
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
