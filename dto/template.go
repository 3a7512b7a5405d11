package dto

import (
	"time"

	"prompt-judge/models"
)

type TemplateDTO struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Category   string    `json:"category"`
	Difficulty string    `json:"difficulty"`
	Tags       []string  `json:"tags"`
	Author     string    `json:"author"`
	Likes      []string  `json:"likes"`
	LikeCount  int       `json:"like_count"`
	UsageCount int64     `json:"usage_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewTemplateDTO constructs TemplateDTO from models.Template.
func NewTemplateDTO(t models.Template) TemplateDTO {
	likes := make([]string, 0, len(t.Likes))
	for _, id := range t.Likes {
		likes = append(likes, id.Hex())
	}
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return TemplateDTO{
		ID:         t.ID.Hex(),
		Title:      t.Title,
		Content:    t.Content,
		Category:   t.Category,
		Difficulty: t.Difficulty,
		Tags:       tags,
		Author:     t.Author.Hex(),
		Likes:      likes,
		LikeCount:  len(likes),
		UsageCount: t.UsageCount,
		CreatedAt:  t.CreatedAt,
	}
}
