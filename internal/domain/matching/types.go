package matching

type WorkArrangement string

const (
	ArrangementRemote WorkArrangement = "remote"
	ArrangementHybrid WorkArrangement = "hybrid"
	ArrangementOnSite WorkArrangement = "on_site"
)

type AccessLevel string

const (
	AccessLevelHigh   AccessLevel = "high"
	AccessLevelMedium AccessLevel = "medium"
	AccessLevelLow    AccessLevel = "low"
)

type Location struct {
	City                  string
	District              *string
	TransitDistanceMeters *int
}

type Accessibility struct {
	Level   AccessLevel
	Details []string
}

// Salary describes a posting's compensation band. At least one of Min/Max
// is set whenever the posting carries salary information at all.
type Salary struct {
	Min      *float64
	Max      *float64
	Period   string
	Currency string
}

type JobRecord struct {
	ID            string
	Requirements  []string
	Location      Location
	Accessibility Accessibility
	Salary        *Salary
	Arrangement   WorkArrangement
}

type AccessibilityNeed struct {
	Level          *AccessLevel
	Accommodations []string
}

type SalaryExpectation struct {
	Min *float64
	Max *float64
}

// CandidateProfile is the searcher side of a match. Every field is
// optional; a missing field degrades the corresponding scorer to its
// neutral behavior instead of failing.
type CandidateProfile struct {
	Skills               []string
	PreferredCity        *string
	TransitCeilingMeters *int
	AccessibilityNeed    *AccessibilityNeed
	SalaryExpectation    *SalaryExpectation
	ArrangementPref      *WorkArrangement
}

type SkillResult struct {
	Score   float64
	Matched []string
	Missing []string
}

type Breakdown struct {
	Skills        int
	Accessibility int
	Location      int
	Salary        int
	Arrangement   int
}

type MatchResult struct {
	JobID     string
	Score     int
	Breakdown Breakdown
	Reasons   []string
}
