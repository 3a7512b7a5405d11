package dto

import (
	"time"

	"prompt-judge/models"
)

type CommentDTO struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// PostDTO flattens models.Post for API consumers. Likes is exposed as a
// count plus the ids, so clients can render the toggle state.
type PostDTO struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Content   string       `json:"content"`
	Prompt    string       `json:"prompt,omitempty"`
	Category  string       `json:"category"`
	Author    string       `json:"author"`
	Likes     []string     `json:"likes"`
	LikeCount int          `json:"like_count"`
	Comments  []CommentDTO `json:"comments"`
	CreatedAt time.Time    `json:"created_at"`
}

// NewPostDTO constructs PostDTO from models.Post.
func NewPostDTO(p models.Post) PostDTO {
	likes := make([]string, 0, len(p.Likes))
	for _, id := range p.Likes {
		likes = append(likes, id.Hex())
	}
	comments := make([]CommentDTO, 0, len(p.Comments))
	for _, c := range p.Comments {
		comments = append(comments, CommentDTO{
			ID:        c.ID.Hex(),
			Author:    c.Author.Hex(),
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
		})
	}
	return PostDTO{
		ID:        p.ID.Hex(),
		Title:     p.Title,
		Content:   p.Content,
		Prompt:    p.Prompt,
		Category:  p.Category,
		Author:    p.Author.Hex(),
		Likes:     likes,
		LikeCount: len(likes),
		Comments:  comments,
		CreatedAt: p.CreatedAt,
	}
}
