package matching

import "testing"

func TestScoreSkills_EmptyRequirements(t *testing.T) {
	res := ScoreSkills(nil, []string{"go", "sql"})
	if res.Score != 100 {
		t.Fatalf("expected score 100, got %v", res.Score)
	}
	if len(res.Matched) != 0 || len(res.Missing) != 0 {
		t.Fatalf("expected empty matched/missing, got %v / %v", res.Matched, res.Missing)
	}
}

func TestScoreSkills_ExactMatch(t *testing.T) {
	res := ScoreSkills([]string{"Go", "PostgreSQL"}, []string{"go", "postgresql"})
	if res.Score != 100 {
		t.Fatalf("expected score 100, got %v", res.Score)
	}
	if len(res.Matched) != 2 {
		t.Fatalf("expected 2 matched, got %d", len(res.Matched))
	}
}

func TestScoreSkills_SubstringBothDirections(t *testing.T) {
	// Requirement contained in skill.
	res := ScoreSkills([]string{"React"}, []string{"react.js"})
	if res.Score != 100 {
		t.Fatalf("requirement-in-skill: expected 100, got %v", res.Score)
	}

	// Skill contained in requirement.
	res = ScoreSkills([]string{"React.js experience"}, []string{"react.js"})
	if res.Score != 100 {
		t.Fatalf("skill-in-requirement: expected 100, got %v", res.Score)
	}
}

func TestScoreSkills_PartialMatchScenario(t *testing.T) {
	// "React" matches "react.js" via containment, "Node.js" matches nothing.
	res := ScoreSkills([]string{"React", "Node.js"}, []string{"react.js", "typescript"})
	if res.Score != 50 {
		t.Fatalf("expected score 50, got %v", res.Score)
	}
	if len(res.Matched) != 1 || res.Matched[0] != "React" {
		t.Fatalf("expected matched=[React], got %v", res.Matched)
	}
	if len(res.Missing) != 1 || res.Missing[0] != "Node.js" {
		t.Fatalf("expected missing=[Node.js], got %v", res.Missing)
	}
}

func TestScoreSkills_NormalizesWhitespaceAndCase(t *testing.T) {
	res := ScoreSkills([]string{"  GoLang  "}, []string{"golang"})
	if res.Score != 100 {
		t.Fatalf("expected 100, got %v", res.Score)
	}
}

func TestScoreSkills_NoSkills(t *testing.T) {
	res := ScoreSkills([]string{"Go"}, nil)
	if res.Score != 0 {
		t.Fatalf("expected 0, got %v", res.Score)
	}
	if len(res.Missing) != 1 {
		t.Fatalf("expected 1 missing, got %d", len(res.Missing))
	}
}

func TestScoreSkills_MonotoneInMatchedFraction(t *testing.T) {
	reqs := []string{"go", "sql", "docker", "kubernetes"}
	prev := -1.0
	skills := []string{}
	for _, s := range reqs {
		skills = append(skills, s)
		res := ScoreSkills(reqs, skills)
		if res.Score < prev {
			t.Fatalf("score decreased from %v to %v with more skills", prev, res.Score)
		}
		prev = res.Score
	}
	if prev != 100 {
		t.Fatalf("expected 100 with all skills, got %v", prev)
	}
}
