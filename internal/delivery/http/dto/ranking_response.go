package dto

type RankingBreakdownResponse struct {
	Skills        int `json:"skills"`
	Accessibility int `json:"accessibility"`
	Location      int `json:"location"`
	Salary        int `json:"salary"`
	Arrangement   int `json:"arrangement"`
}

type RankingItemResponse struct {
	JobID      string                   `json:"job_id"`
	Score      int                      `json:"score"`
	MatchLevel string                   `json:"match_level"`
	Breakdown  RankingBreakdownResponse `json:"breakdown"`
	Reasons    []string                 `json:"reasons"`
}
