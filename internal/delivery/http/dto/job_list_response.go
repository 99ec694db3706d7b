package dto

type JobListResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	City        string `json:"city"`
	Arrangement string `json:"arrangement"`
	PostedAt    string `json:"posted_at,omitempty"`
}
