package models

// Group is the derived per-group performance view. It is computed on
// demand from the posts targeting the group and is never persisted.
type Group struct {
	GroupType         string  `json:"group_type"`
	GroupName         string  `json:"group_name"`
	PerformanceScore  float64 `json:"performance_score"`
	AppreciationCount int     `json:"appreciation_count"`
	SuggestionCount   int     `json:"suggestion_count"`
	ComplaintCount    int     `json:"complaint_count"`
	TotalPosts        int     `json:"total_posts"`
}
