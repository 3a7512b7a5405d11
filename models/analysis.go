package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Analysis modes. The mode selects a scoring rubric; it is advisory and
// unknown values are stored as-is.
const (
	ModeCasual    = "casual"
	ModeTechnical = "technical"
	ModeCreative  = "creative"
)

// Scores holds the five rubric category scores. Each value is kept within
// [0,100]; a score missing from the model response defaults to 0.
type Scores struct {
	Style      float64 `bson:"style" json:"style"`
	Grammar    float64 `bson:"grammar" json:"grammar"`
	Creativity float64 `bson:"creativity" json:"creativity"`
	Clarity    float64 `bson:"clarity" json:"clarity"`
	Relevance  float64 `bson:"relevance" json:"relevance"`
}

// Overall returns the arithmetic mean of the five category scores.
func (s Scores) Overall() float64 {
	return (s.Style + s.Grammar + s.Creativity + s.Clarity + s.Relevance) / 5
}

// Analysis represents one persisted prompt analysis.
// Collection: analyses. Insert-only; never mutated after creation.
type Analysis struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Author       primitive.ObjectID `bson:"author" json:"author"`
	Prompt       string             `bson:"prompt" json:"prompt"`
	Mode         string             `bson:"mode" json:"mode"`
	Scores       Scores             `bson:"scores" json:"scores"`
	PromptResult string             `bson:"prompt_result" json:"prompt_result"`
	Response     string             `bson:"response" json:"response"`
	Suggestions  []string           `bson:"suggestions" json:"suggestions"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}

// MonthlyScore is one bucket of the dashboard trend aggregation.
type MonthlyScore struct {
	Year     int     `bson:"year" json:"year"`
	Month    int     `bson:"month" json:"month"`
	AvgScore float64 `bson:"avg_score" json:"avg_score"`
	Count    int64   `bson:"count" json:"count"`
}
