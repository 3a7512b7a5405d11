package dto

import (
	"time"

	"prompt-judge/models"
)

// AnalysisResponse is returned by the analyze endpoint. Saved reports
// whether the record was persisted: anonymous callers and store write
// failures still receive the full analysis with Saved false.
type AnalysisResponse struct {
	ID           string        `json:"id,omitempty"`
	Saved        bool          `json:"saved"`
	PromptResult string        `json:"promptResult"`
	Response     string        `json:"response"`
	Scores       models.Scores `json:"scores"`
	Suggestions  []string      `json:"suggestions"`
}

// AnalysisDTO is the stored-analysis shape used in listings.
type AnalysisDTO struct {
	ID        string        `json:"id"`
	Author    string        `json:"author"`
	Prompt    string        `json:"prompt"`
	Mode      string        `json:"mode"`
	Scores    models.Scores `json:"scores"`
	CreatedAt time.Time     `json:"created_at"`
}

// NewAnalysisDTO constructs AnalysisDTO from models.Analysis.
func NewAnalysisDTO(a models.Analysis) AnalysisDTO {
	return AnalysisDTO{
		ID:        a.ID.Hex(),
		Author:    a.Author.Hex(),
		Prompt:    a.Prompt,
		Mode:      a.Mode,
		Scores:    a.Scores,
		CreatedAt: a.CreatedAt,
	}
}

// ModeGuide is the per-mode guidance returned to the analyze page.
type ModeGuide struct {
	Mode     string   `json:"mode"`
	Criteria string   `json:"criteria"`
	Template string   `json:"template"`
	Examples []string `json:"examples"`
}
