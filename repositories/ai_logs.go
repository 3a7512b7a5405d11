package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"prompt-judge/models"
)

type AILogRepository struct {
	col *mongo.Collection
}

func NewAILogRepository(db *mongo.Database) *AILogRepository {
	return &AILogRepository{col: db.Collection("ai_logs")}
}

// Insert appends one model-call record. Logging failures are reported to
// the caller but never block the analysis flow.
func (r *AILogRepository) Insert(ctx context.Context, l models.AILog) (*mongo.InsertOneResult, error) {
	return r.col.InsertOne(ctx, l)
}
