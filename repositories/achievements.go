package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"prompt-judge/models"
)

type AchievementRepository struct {
	col *mongo.Collection
}

func NewAchievementRepository(db *mongo.Database) *AchievementRepository {
	return &AchievementRepository{col: db.Collection("achievements")}
}

// Insert awards an achievement. The unique (user_id, name) index turns a
// concurrent double-award into a duplicate-key error, which is reported
// as "not newly awarded" rather than a failure.
func (r *AchievementRepository) Insert(ctx context.Context, a models.Achievement) (bool, error) {
	if a.EarnedAt.IsZero() {
		a.EarnedAt = time.Now()
	}
	_, err := r.col.InsertOne(ctx, a)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ListByUser returns a user's achievements, most recently earned first.
func (r *AchievementRepository) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Achievement, error) {
	opts := options.Find().SetSort(bson.D{{Key: "earned_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Achievement
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
