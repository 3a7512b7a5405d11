package dto

import "prompt-judge/models"

// ModeStat is the per-mode analysis summary.
type ModeStat struct {
	Count    int64   `json:"count"`
	AvgScore float64 `json:"avgScore"`
}

// TrendPoint is one month of the dashboard trend chart.
type TrendPoint struct {
	Date     string  `json:"date"` // "YYYY-MM"
	AvgScore float64 `json:"avgScore"`
	Count    int64   `json:"count"`
}

// DashboardStats aggregates a user's full analysis history.
type DashboardStats struct {
	AverageScores models.Scores       `json:"averageScores"`
	TotalAnalyses int64               `json:"totalAnalyses"`
	ModeStats     map[string]ModeStat `json:"modeStats"`
}

// Dashboard is the full dashboard payload. A user with no analyses gets
// a complete zero-valued shape, never an error.
type Dashboard struct {
	Analyses     []AnalysisDTO    `json:"analyses"`
	Achievements []AchievementDTO `json:"achievements"`
	Stats        DashboardStats   `json:"stats"`
	Trend        []TrendPoint     `json:"trend"`
}
