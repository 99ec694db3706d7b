package matching

import "strings"

// ScoreSkills compares a posting's free-text requirements against the
// candidate's declared skills. Matching is deliberately permissive:
// besides exact equality a requirement also matches when it contains a
// skill or a skill contains it, so "React" still matches "React.js
// experience" regardless of which side carries the longer phrasing.
func ScoreSkills(requirements []string, skills []string) SkillResult {
	if len(requirements) == 0 {
		return SkillResult{Score: 100, Matched: []string{}, Missing: []string{}}
	}

	normSkills := make([]string, 0, len(skills))
	for _, s := range skills {
		if n := normalizeTerm(s); n != "" {
			normSkills = append(normSkills, n)
		}
	}

	matched := make([]string, 0, len(requirements))
	missing := make([]string, 0)

	for _, req := range requirements {
		nr := normalizeTerm(req)
		if termMatchesAny(nr, normSkills) {
			matched = append(matched, req)
		} else {
			missing = append(missing, req)
		}
	}

	score := 100 * float64(len(matched)) / float64(len(requirements))
	return SkillResult{Score: score, Matched: matched, Missing: missing}
}

func normalizeTerm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func termMatchesAny(req string, skills []string) bool {
	for _, sk := range skills {
		if req == sk {
			return true
		}
		if strings.Contains(sk, req) || strings.Contains(req, sk) {
			return true
		}
	}
	return false
}
