package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Template categories and difficulties.
var (
	TemplateCategories   = []string{"technical", "creative", "academic", "business", "casual"}
	TemplateDifficulties = []string{"beginner", "intermediate", "advanced"}
)

// Template represents a reusable prompt template.
// Collection: templates. UsageCount only ever increases.
type Template struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title      string               `bson:"title" json:"title"`
	Content    string               `bson:"content" json:"content"`
	Category   string               `bson:"category" json:"category"`
	Difficulty string               `bson:"difficulty" json:"difficulty"`
	Tags       []string             `bson:"tags" json:"tags"`
	Author     primitive.ObjectID   `bson:"author" json:"author"`
	Likes      []primitive.ObjectID `bson:"likes" json:"likes"`
	UsageCount int64                `bson:"usage_count" json:"usage_count"`
	CreatedAt  time.Time            `bson:"created_at" json:"created_at"`
}
