package matching

import (
	"math"
	"testing"
)

func strPtr(s string) *string { return &s }

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func levelPtr(l AccessLevel) *AccessLevel { return &l }

func arrPtr(a WorkArrangement) *WorkArrangement { return &a }

func TestScoreLocation_NoPreference(t *testing.T) {
	got := ScoreLocation(Location{City: "Jakarta"}, LocationPref{})
	if got != 50 {
		t.Fatalf("expected neutral 50, got %v", got)
	}
}

func TestScoreLocation_CityMatchCaseInsensitive(t *testing.T) {
	got := ScoreLocation(Location{City: "Jakarta"}, LocationPref{PreferredCity: strPtr("jakarta")})
	if got != 80 {
		t.Fatalf("expected 80, got %v", got)
	}
}

func TestScoreLocation_TransitWithinCeiling(t *testing.T) {
	// ceiling 1000, distance 250: bonus = 20 * 750/1000 = 15.
	got := ScoreLocation(
		Location{City: "Bandung", TransitDistanceMeters: intPtr(250)},
		LocationPref{TransitCeilingMeters: intPtr(1000)},
	)
	if math.Abs(got-65) > 1e-9 {
		t.Fatalf("expected 65, got %v", got)
	}
}

func TestScoreLocation_TransitBeyondCeiling(t *testing.T) {
	got := ScoreLocation(
		Location{City: "Bandung", TransitDistanceMeters: intPtr(2500)},
		LocationPref{TransitCeilingMeters: intPtr(1000)},
	)
	if got != 30 {
		t.Fatalf("expected 30, got %v", got)
	}
}

func TestScoreLocation_CityAndPerfectTransit(t *testing.T) {
	// 50 + 30 + 20 caps exactly at 100.
	got := ScoreLocation(
		Location{City: "Jakarta", TransitDistanceMeters: intPtr(0)},
		LocationPref{PreferredCity: strPtr("Jakarta"), TransitCeilingMeters: intPtr(500)},
	)
	if got != 100 {
		t.Fatalf("expected 100, got %v", got)
	}
}

func TestScoreLocation_ZeroCeilingNoDivisionByZero(t *testing.T) {
	got := ScoreLocation(
		Location{City: "Jakarta", TransitDistanceMeters: intPtr(0)},
		LocationPref{TransitCeilingMeters: intPtr(0)},
	)
	if got != 50 {
		t.Fatalf("expected 50 (zero bonus term), got %v", got)
	}
}

func TestScoreAccessibility_NoRequirement(t *testing.T) {
	got := ScoreAccessibility(Accessibility{Level: AccessLevelLow}, nil)
	if got != 50 {
		t.Fatalf("expected neutral 50, got %v", got)
	}
}

func TestScoreAccessibility_HighSatisfiesAnyRequirement(t *testing.T) {
	got := ScoreAccessibility(
		Accessibility{Level: AccessLevelHigh},
		&AccessibilityNeed{Level: levelPtr(AccessLevelLow)},
	)
	if got != 100 {
		t.Fatalf("expected 100, got %v", got)
	}
}

func TestScoreAccessibility_LevelBaselines(t *testing.T) {
	cases := []struct {
		job      AccessLevel
		required AccessLevel
		want     float64
	}{
		{AccessLevelMedium, AccessLevelMedium, 70},
		{AccessLevelLow, AccessLevelLow, 40},
		{AccessLevelMedium, AccessLevelHigh, 30},
		{AccessLevelLow, AccessLevelHigh, 30},
		{AccessLevelLow, AccessLevelMedium, 50},
	}
	for _, tc := range cases {
		got := ScoreAccessibility(
			Accessibility{Level: tc.job},
			&AccessibilityNeed{Level: levelPtr(tc.required)},
		)
		if got != tc.want {
			t.Fatalf("job=%s required=%s: expected %v, got %v", tc.job, tc.required, tc.want, got)
		}
	}
}

func TestScoreAccessibility_AccommodationBonus(t *testing.T) {
	// Base 70 (medium meets medium), 1 of 2 accommodations found: +15.
	got := ScoreAccessibility(
		Accessibility{
			Level:   AccessLevelMedium,
			Details: []string{"Screen-reader compatible workstations", "flexible hours"},
		},
		&AccessibilityNeed{
			Level:          levelPtr(AccessLevelMedium),
			Accommodations: []string{"screen-reader", "wheelchair access"},
		},
	)
	if math.Abs(got-85) > 1e-9 {
		t.Fatalf("expected 85, got %v", got)
	}
}

func TestScoreAccessibility_BonusClampsAt100(t *testing.T) {
	got := ScoreAccessibility(
		Accessibility{Level: AccessLevelHigh, Details: []string{"wheelchair access"}},
		&AccessibilityNeed{Accommodations: []string{"wheelchair access"}},
	)
	if got != 100 {
		t.Fatalf("expected clamp at 100, got %v", got)
	}
}

func TestScoreAccessibility_MissingAccommodationsNeverSubtract(t *testing.T) {
	got := ScoreAccessibility(
		Accessibility{Level: AccessLevelMedium, Details: []string{"quiet room"}},
		&AccessibilityNeed{
			Level:          levelPtr(AccessLevelMedium),
			Accommodations: []string{"braille signage", "guide dog friendly"},
		},
	)
	if got != 70 {
		t.Fatalf("expected base 70 untouched, got %v", got)
	}
}

func TestScoreSalary_NeutralWhenEitherSideMissing(t *testing.T) {
	if got := ScoreSalary(nil, &SalaryExpectation{Min: floatPtr(1000)}); got != 50 {
		t.Fatalf("nil salary: expected 50, got %v", got)
	}
	if got := ScoreSalary(&Salary{Min: floatPtr(1000)}, nil); got != 50 {
		t.Fatalf("nil expectation: expected 50, got %v", got)
	}
}

func TestScoreSalary_MinExpectationMetWithDiminishingBonus(t *testing.T) {
	// reference = 12_000_000, min = 10_000_000 -> 50 + 50*0.2 = 60.
	got := ScoreSalary(
		&Salary{Min: floatPtr(8_000_000), Max: floatPtr(12_000_000)},
		&SalaryExpectation{Min: floatPtr(10_000_000)},
	)
	if got != 60 {
		t.Fatalf("expected 60, got %v", got)
	}
}

func TestScoreSalary_MinExpectationCapsAt100(t *testing.T) {
	got := ScoreSalary(
		&Salary{Max: floatPtr(50_000_000)},
		&SalaryExpectation{Min: floatPtr(10_000_000)},
	)
	if got != 100 {
		t.Fatalf("expected 100, got %v", got)
	}
}

func TestScoreSalary_ReferenceBelowMin(t *testing.T) {
	got := ScoreSalary(
		&Salary{Max: floatPtr(5_000_000)},
		&SalaryExpectation{Min: floatPtr(10_000_000)},
	)
	if got != 20 {
		t.Fatalf("expected 20, got %v", got)
	}
}

func TestScoreSalary_ZeroMinExpectation(t *testing.T) {
	// Bonus term short-circuits to zero instead of dividing by zero.
	got := ScoreSalary(
		&Salary{Max: floatPtr(5_000_000)},
		&SalaryExpectation{Min: floatPtr(0)},
	)
	if got != 50 {
		t.Fatalf("expected 50, got %v", got)
	}
}

func TestScoreSalary_MinTakesPriorityOverMax(t *testing.T) {
	// With both bounds stated the minimum check returns immediately.
	got := ScoreSalary(
		&Salary{Min: floatPtr(4_000_000), Max: floatPtr(5_000_000)},
		&SalaryExpectation{Min: floatPtr(10_000_000), Max: floatPtr(20_000_000)},
	)
	if got != 20 {
		t.Fatalf("expected 20, got %v", got)
	}
}

func TestScoreSalary_MaxExpectationOnly(t *testing.T) {
	got := ScoreSalary(
		&Salary{Min: floatPtr(8_000_000)},
		&SalaryExpectation{Max: floatPtr(12_000_000)},
	)
	if got != 80 {
		t.Fatalf("within budget: expected 80, got %v", got)
	}

	got = ScoreSalary(
		&Salary{Min: floatPtr(15_000_000)},
		&SalaryExpectation{Max: floatPtr(12_000_000)},
	)
	if got != 30 {
		t.Fatalf("over budget: expected 30, got %v", got)
	}
}

func TestScoreSalary_MaxExpectationWithoutJobMin(t *testing.T) {
	got := ScoreSalary(
		&Salary{Max: floatPtr(15_000_000)},
		&SalaryExpectation{Max: floatPtr(12_000_000)},
	)
	if got != 50 {
		t.Fatalf("expected 50, got %v", got)
	}
}

func TestScoreArrangement_Table(t *testing.T) {
	cases := []struct {
		pref WorkArrangement
		job  WorkArrangement
		want float64
	}{
		{ArrangementRemote, ArrangementRemote, 100},
		{ArrangementRemote, ArrangementHybrid, 80},
		{ArrangementRemote, ArrangementOnSite, 40},
		{ArrangementHybrid, ArrangementRemote, 90},
		{ArrangementHybrid, ArrangementHybrid, 100},
		{ArrangementHybrid, ArrangementOnSite, 50},
		{ArrangementOnSite, ArrangementRemote, 30},
		{ArrangementOnSite, ArrangementHybrid, 70},
		{ArrangementOnSite, ArrangementOnSite, 100},
	}
	for _, tc := range cases {
		got := ScoreArrangement(tc.job, arrPtr(tc.pref))
		if got != tc.want {
			t.Fatalf("pref=%s job=%s: expected %v, got %v", tc.pref, tc.job, tc.want, got)
		}
	}
}

func TestScoreArrangement_NoPreference(t *testing.T) {
	if got := ScoreArrangement(ArrangementOnSite, nil); got != 50 {
		t.Fatalf("expected 50, got %v", got)
	}
}

func TestScoreArrangement_UnknownArrangement(t *testing.T) {
	if got := ScoreArrangement(WorkArrangement("freelance"), arrPtr(ArrangementRemote)); got != 50 {
		t.Fatalf("expected 50, got %v", got)
	}
}
