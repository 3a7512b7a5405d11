package dto

import (
	"time"

	"prompt-judge/models"
)

// AchievementDTO is the earned-badge shape for API consumers.
type AchievementDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Category    string    `json:"category"`
	EarnedAt    time.Time `json:"earned_at"`
}

// NewAchievementDTO constructs AchievementDTO from models.Achievement.
func NewAchievementDTO(a models.Achievement) AchievementDTO {
	return AchievementDTO{
		ID:          a.ID.Hex(),
		Name:        a.Name,
		Description: a.Description,
		Icon:        a.Icon,
		Category:    a.Category,
		EarnedAt:    a.EarnedAt,
	}
}
