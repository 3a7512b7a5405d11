package dto

import (
	"time"

	"prompt-judge/models"
)

type SubmissionDTO struct {
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	Score     float64   `json:"score"`
	Feedback  string    `json:"feedback"`
	CreatedAt time.Time `json:"created_at"`
}

type ChallengeDTO struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Prompt      string          `json:"prompt"`
	Category    string          `json:"category"`
	Author      string          `json:"author"`
	Deadline    time.Time       `json:"deadline"`
	Submissions []SubmissionDTO `json:"submissions"`
	CreatedAt   time.Time       `json:"created_at"`
}

// NewChallengeDTO constructs ChallengeDTO from models.Challenge.
func NewChallengeDTO(c models.Challenge) ChallengeDTO {
	subs := make([]SubmissionDTO, 0, len(c.Submissions))
	for _, s := range c.Submissions {
		subs = append(subs, SubmissionDTO{
			Author:    s.Author.Hex(),
			Content:   s.Content,
			Score:     s.Score,
			Feedback:  s.Feedback,
			CreatedAt: s.CreatedAt,
		})
	}
	return ChallengeDTO{
		ID:          c.ID.Hex(),
		Title:       c.Title,
		Description: c.Description,
		Prompt:      c.Prompt,
		Category:    c.Category,
		Author:      c.Author.Hex(),
		Deadline:    c.Deadline,
		Submissions: subs,
		CreatedAt:   c.CreatedAt,
	}
}
