package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Achievement categories.
const (
	AchievementCategoryAnalysis  = "analysis"
	AchievementCategoryCommunity = "community"
	AchievementCategoryTemplate  = "template"
	AchievementCategoryChallenge = "challenge"
)

// Achievement represents a badge earned by a user.
// Collection: achievements. A unique index on (user_id, name) guarantees
// at-most-once awarding even under concurrent checks.
type Achievement struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"user_id" json:"user_id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Icon        string             `bson:"icon" json:"icon"`
	Category    string             `bson:"category" json:"category"`
	EarnedAt    time.Time          `bson:"earned_at" json:"earned_at"`
}
