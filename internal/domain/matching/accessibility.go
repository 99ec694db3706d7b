package matching

import "strings"

// Baselines for a posting whose level exactly meets the required one.
// A high-accessibility posting satisfies any requirement outright.
var accessLevelBaseline = map[AccessLevel]float64{
	AccessLevelMedium: 70,
	AccessLevelLow:    40,
}

// ScoreAccessibility rates how well a posting's accessibility provisions
// cover the candidate's needs. Required accommodations found among the
// posting's details add a bonus on top of the level-derived base; absent
// ones never subtract.
func ScoreAccessibility(acc Accessibility, need *AccessibilityNeed) float64 {
	if need == nil {
		return 50
	}

	score := accessBaseScore(acc.Level, need.Level)

	if len(need.Accommodations) > 0 && len(acc.Details) > 0 {
		found := 0
		for _, want := range need.Accommodations {
			if detailsContain(acc.Details, want) {
				found++
			}
		}
		fraction := float64(found) / float64(len(need.Accommodations))
		score += fraction * 30
	}

	return clampScore(score)
}

func accessBaseScore(jobLevel AccessLevel, required *AccessLevel) float64 {
	if jobLevel == AccessLevelHigh {
		return 100
	}
	if required != nil {
		if *required == jobLevel {
			if base, ok := accessLevelBaseline[jobLevel]; ok {
				return base
			}
		}
		if *required == AccessLevelHigh {
			return 30
		}
	}
	return 50
}

func detailsContain(details []string, want string) bool {
	want = normalizeTerm(want)
	if want == "" {
		return false
	}
	for _, d := range details {
		if strings.Contains(normalizeTerm(d), want) {
			return true
		}
	}
	return false
}
