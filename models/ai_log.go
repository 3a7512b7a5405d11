package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AILog records a single model call for diagnosis and cost tracking.
// Collection: ai_logs.
type AILog struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Author           primitive.ObjectID `bson:"author,omitempty" json:"author,omitempty"`
	Mode             string             `bson:"mode" json:"mode"`
	Model            string             `bson:"model" json:"model"`
	PromptTokens     int64              `bson:"prompt_tokens" json:"prompt_tokens"`
	CompletionTokens int64              `bson:"completion_tokens" json:"completion_tokens"`
	TotalTokens      int64              `bson:"total_tokens" json:"total_tokens"`
	DurationMs       int64              `bson:"duration_ms" json:"duration_ms"`
	Success          bool               `bson:"success" json:"success"`
	ResponseExcerpt  string             `bson:"response_excerpt" json:"response_excerpt"`
	RequestedAt      time.Time          `bson:"requested_at" json:"requested_at"`
	CompletedAt      time.Time          `bson:"completed_at" json:"completed_at"`
}
