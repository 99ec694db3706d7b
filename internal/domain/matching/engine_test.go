package matching

import (
	"reflect"
	"testing"
)

func sampleJob(id string) JobRecord {
	return JobRecord{
		ID:           id,
		Requirements: []string{"Go", "SQL"},
		Location:     Location{City: "Jakarta"},
		Accessibility: Accessibility{
			Level:   AccessLevelMedium,
			Details: []string{"screen-reader compatible"},
		},
		Salary:      &Salary{Min: floatPtr(8_000_000), Max: floatPtr(12_000_000), Period: "monthly", Currency: "IDR"},
		Arrangement: ArrangementHybrid,
	}
}

func TestRank_EmptyCatalog(t *testing.T) {
	results := Rank(nil, CandidateProfile{})
	if len(results) != 0 {
		t.Fatalf("expected empty result, got %d items", len(results))
	}
}

func TestRank_OneResultPerJob_ScoresInRange(t *testing.T) {
	jobs := []JobRecord{sampleJob("a"), sampleJob("b"), sampleJob("c")}
	profile := CandidateProfile{
		Skills:          []string{"go", "sql", "docker"},
		PreferredCity:   strPtr("Jakarta"),
		ArrangementPref: arrPtr(ArrangementRemote),
	}

	results := Rank(jobs, profile)
	if len(results) != len(jobs) {
		t.Fatalf("expected %d results, got %d", len(jobs), len(results))
	}
	for _, r := range results {
		if r.Score < 0 || r.Score > 100 {
			t.Fatalf("score out of range: %d", r.Score)
		}
		for _, sub := range []int{r.Breakdown.Skills, r.Breakdown.Accessibility, r.Breakdown.Location, r.Breakdown.Salary, r.Breakdown.Arrangement} {
			if sub < 0 || sub > 100 {
				t.Fatalf("sub-score out of range: %d", sub)
			}
		}
	}
}

func TestRank_Idempotent(t *testing.T) {
	jobs := []JobRecord{sampleJob("a"), sampleJob("b")}
	profile := CandidateProfile{Skills: []string{"go"}}

	first := Rank(jobs, profile)
	second := Rank(jobs, profile)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("rank is not deterministic:\n%v\n%v", first, second)
	}
}

func TestRank_SortedDescending(t *testing.T) {
	jobs := []JobRecord{
		{ID: "weak", Requirements: []string{"rust", "haskell"}},
		{ID: "strong", Requirements: []string{"go"}},
		{ID: "empty"},
	}
	profile := CandidateProfile{Skills: []string{"go"}}

	results := Rank(jobs, profile)
	for i := 1; i < len(results); i++ {
		if results[i-1].Score < results[i].Score {
			t.Fatalf("not sorted descending at %d: %d < %d", i, results[i-1].Score, results[i].Score)
		}
	}
	if results[len(results)-1].JobID != "weak" {
		t.Fatalf("expected weak job last, got %s", results[len(results)-1].JobID)
	}
}

func TestRank_StableOnEqualScores(t *testing.T) {
	// Identical jobs score identically; input order must survive.
	jobs := []JobRecord{sampleJob("first"), sampleJob("second"), sampleJob("third")}
	profile := CandidateProfile{Skills: []string{"go", "sql"}}

	results := Rank(jobs, profile)
	order := []string{results[0].JobID, results[1].JobID, results[2].JobID}
	want := []string{"first", "second", "third"}
	if !reflect.DeepEqual(order, want) {
		t.Fatalf("tie order changed: %v", order)
	}
}

func TestRank_NeutralProfile(t *testing.T) {
	// With no preferences every non-skill scorer returns exactly 50, so
	// the aggregate is round(0.35*skills + 32.5).
	job := sampleJob("a")
	results := Rank([]JobRecord{job}, CandidateProfile{Skills: []string{"go", "sql"}})
	r := results[0]

	if r.Breakdown.Location != 50 || r.Breakdown.Accessibility != 50 || r.Breakdown.Salary != 50 || r.Breakdown.Arrangement != 50 {
		t.Fatalf("expected all-neutral breakdown, got %+v", r.Breakdown)
	}
	if r.Breakdown.Skills != 100 {
		t.Fatalf("expected skills 100, got %d", r.Breakdown.Skills)
	}
	if r.Score != 68 { // round(0.35*100 + 32.5)
		t.Fatalf("expected 68, got %d", r.Score)
	}
}

func TestRank_EmptyRequirementsSkillsAlways100(t *testing.T) {
	results := Rank([]JobRecord{{ID: "a"}}, CandidateProfile{})
	if results[0].Breakdown.Skills != 100 {
		t.Fatalf("expected skills 100, got %d", results[0].Breakdown.Skills)
	}
}

func TestRank_ReasonThresholds(t *testing.T) {
	job := JobRecord{
		ID:           "a",
		Requirements: []string{"Go", "SQL"},
		Location:     Location{City: "Jakarta"},
		Accessibility: Accessibility{
			Level: AccessLevelHigh,
		},
		Salary:      &Salary{Max: floatPtr(20_000_000)},
		Arrangement: ArrangementRemote,
	}
	profile := CandidateProfile{
		Skills:            []string{"go", "sql"},
		PreferredCity:     strPtr("Jakarta"),
		AccessibilityNeed: &AccessibilityNeed{Level: levelPtr(AccessLevelHigh)},
		SalaryExpectation: &SalaryExpectation{Min: floatPtr(10_000_000)},
	}

	r := Rank([]JobRecord{job}, profile)[0]
	want := []string{
		"2 of 2 requirements matched",
		"accessibility strongly suitable",
		"location matches preference",
		"salary meets expectation",
	}
	if !reflect.DeepEqual(r.Reasons, want) {
		t.Fatalf("reasons mismatch:\nwant %v\ngot  %v", want, r.Reasons)
	}
}

func TestRank_SkillsExactlyFiftyTriggersNoSkillReason(t *testing.T) {
	// Score 50 sits on neither side of the 80/50 thresholds.
	job := JobRecord{ID: "a", Requirements: []string{"React", "Node.js"}}
	profile := CandidateProfile{Skills: []string{"react.js", "typescript"}}

	r := Rank([]JobRecord{job}, profile)[0]
	if r.Breakdown.Skills != 50 {
		t.Fatalf("expected skills 50, got %d", r.Breakdown.Skills)
	}
	for _, reason := range r.Reasons {
		if reason == "1 requirements unmet" {
			t.Fatalf("unmet reason must not fire at exactly 50")
		}
	}
}

func TestRank_LowSkillsReason(t *testing.T) {
	job := JobRecord{ID: "a", Requirements: []string{"rust", "haskell", "erlang"}}
	r := Rank([]JobRecord{job}, CandidateProfile{Skills: []string{"go"}})[0]

	found := false
	for _, reason := range r.Reasons {
		if reason == "3 requirements unmet" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected unmet reason, got %v", r.Reasons)
	}
}

func TestEngine_CustomWeights(t *testing.T) {
	// All weight on skills: aggregate equals the skill score.
	e := New(Weights{Skills: 1})
	job := JobRecord{ID: "a", Requirements: []string{"go", "sql"}}
	r := e.Rank([]JobRecord{job}, CandidateProfile{Skills: []string{"go"}})[0]
	if r.Score != 50 {
		t.Fatalf("expected 50, got %d", r.Score)
	}
}

func TestWeights_NormalizeFallsBackToDefaults(t *testing.T) {
	w := Weights{}.Normalize()
	if w != DefaultWeights() {
		t.Fatalf("expected default weights, got %+v", w)
	}
}

func TestMatchLevel(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{100, LevelExcellent},
		{80, LevelExcellent},
		{79, LevelGood},
		{60, LevelGood},
		{59, LevelFair},
		{40, LevelFair},
		{39, LevelPoor},
		{0, LevelPoor},
	}
	for _, tc := range cases {
		if got := MatchLevel(tc.score); got != tc.want {
			t.Fatalf("MatchLevel(%d): expected %s, got %s", tc.score, tc.want, got)
		}
	}
}
