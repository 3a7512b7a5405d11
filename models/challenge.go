package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Submission is one entry to a challenge. A user may submit at most once
// per challenge, and only before the deadline.
type Submission struct {
	Author    primitive.ObjectID `bson:"author" json:"author"`
	Content   string             `bson:"content" json:"content"`
	Score     float64            `bson:"score" json:"score"`
	Feedback  string             `bson:"feedback" json:"feedback"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// Challenge represents a timed prompt-writing challenge.
// Collection: challenges.
type Challenge struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Prompt      string             `bson:"prompt" json:"prompt"`
	Category    string             `bson:"category" json:"category"`
	Author      primitive.ObjectID `bson:"author" json:"author"`
	Deadline    time.Time          `bson:"deadline" json:"deadline"`
	Submissions []Submission       `bson:"submissions" json:"submissions"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}
