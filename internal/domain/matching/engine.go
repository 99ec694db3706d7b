package matching

import (
	"fmt"
	"math"
	"sort"
)

// Weights is the ranking policy: the relative contribution of each
// sub-scorer to the aggregate 0-100 score. The vector is expected to
// sum to 1.
type Weights struct {
	Skills        float64
	Accessibility float64
	Location      float64
	Salary        float64
	Arrangement   float64
}

func DefaultWeights() Weights {
	return Weights{
		Skills:        0.35,
		Accessibility: 0.25,
		Location:      0.15,
		Salary:        0.15,
		Arrangement:   0.10,
	}
}

// Normalize falls back to the default policy when the vector carries no
// usable mass, so a zero-valued config can never blank out every score.
func (w Weights) Normalize() Weights {
	sum := w.Skills + w.Accessibility + w.Location + w.Salary + w.Arrangement
	if sum <= 0 {
		return DefaultWeights()
	}
	return w
}

// Engine ranks job postings for one candidate profile. It is stateless
// apart from its weight policy and safe for concurrent use.
type Engine struct {
	weights Weights
}

func New(w Weights) *Engine {
	return &Engine{weights: w.Normalize()}
}

// Rank ranks jobs with the default weight policy.
func Rank(jobs []JobRecord, profile CandidateProfile) []MatchResult {
	return New(DefaultWeights()).Rank(jobs, profile)
}

// Rank scores every posting against the profile and returns the results
// sorted by descending score. The sort is stable: postings with equal
// scores keep their input order.
func (e *Engine) Rank(jobs []JobRecord, profile CandidateProfile) []MatchResult {
	results := make([]MatchResult, 0, len(jobs))
	for _, job := range jobs {
		results = append(results, e.score(job, profile))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

// Score evaluates a single posting.
func (e *Engine) Score(job JobRecord, profile CandidateProfile) MatchResult {
	return e.score(job, profile)
}

func (e *Engine) score(job JobRecord, profile CandidateProfile) MatchResult {
	skills := ScoreSkills(job.Requirements, profile.Skills)
	accessibility := ScoreAccessibility(job.Accessibility, profile.AccessibilityNeed)
	location := ScoreLocation(job.Location, LocationPref{
		PreferredCity:        profile.PreferredCity,
		TransitCeilingMeters: profile.TransitCeilingMeters,
	})
	salary := ScoreSalary(job.Salary, profile.SalaryExpectation)
	arrangement := ScoreArrangement(job.Arrangement, profile.ArrangementPref)

	w := e.weights
	total := skills.Score*w.Skills +
		accessibility*w.Accessibility +
		location*w.Location +
		salary*w.Salary +
		arrangement*w.Arrangement

	return MatchResult{
		JobID: job.ID,
		Score: roundScore(total),
		Breakdown: Breakdown{
			Skills:        roundScore(skills.Score),
			Accessibility: roundScore(accessibility),
			Location:      roundScore(location),
			Salary:        roundScore(salary),
			Arrangement:   roundScore(arrangement),
		},
		Reasons: buildReasons(skills, accessibility, location, salary, len(job.Requirements)),
	}
}

// Reason rules fire on the unrounded sub-scores, each independently, in
// a fixed order so output stays deterministic.
func buildReasons(skills SkillResult, accessibility, location, salary float64, totalReqs int) []string {
	reasons := make([]string, 0, 4)

	if skills.Score >= 80 {
		reasons = append(reasons, fmt.Sprintf("%d of %d requirements matched", len(skills.Matched), totalReqs))
	}
	if skills.Score < 50 {
		reasons = append(reasons, fmt.Sprintf("%d requirements unmet", len(skills.Missing)))
	}
	if accessibility >= 80 {
		reasons = append(reasons, "accessibility strongly suitable")
	}
	if accessibility < 50 {
		reasons = append(reasons, "accessibility may not meet needs")
	}
	if location >= 70 {
		reasons = append(reasons, "location matches preference")
	}
	if salary >= 70 {
		reasons = append(reasons, "salary meets expectation")
	}

	return reasons
}

func roundScore(v float64) int {
	s := int(math.Round(v))
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

const (
	LevelExcellent = "excellent"
	LevelGood      = "good"
	LevelFair      = "fair"
	LevelPoor      = "poor"
)

// MatchLevel maps an aggregate score to the qualitative label shown by
// the presentation layer.
func MatchLevel(score int) string {
	switch {
	case score >= 80:
		return LevelExcellent
	case score >= 60:
		return LevelGood
	case score >= 40:
		return LevelFair
	default:
		return LevelPoor
	}
}
