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

type AnalysisRepository struct {
	col *mongo.Collection
}

func NewAnalysisRepository(db *mongo.Database) *AnalysisRepository {
	return &AnalysisRepository{col: db.Collection("analyses")}
}

// Insert stores one analysis record. Analyses are insert-only.
func (r *AnalysisRepository) Insert(ctx context.Context, a *models.Analysis) (primitive.ObjectID, error) {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	res, err := r.col.InsertOne(ctx, a)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// ListByAuthor returns all analyses of a user, newest first.
func (r *AnalysisRepository) ListByAuthor(ctx context.Context, author primitive.ObjectID) ([]models.Analysis, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"author": author}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Analysis
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListRecentByAuthor returns the most recent analyses of a user.
func (r *AnalysisRepository) ListRecentByAuthor(ctx context.Context, author primitive.ObjectID, limit int64) ([]models.Analysis, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	cur, err := r.col.Find(ctx, bson.M{"author": author}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Analysis
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *AnalysisRepository) CountByAuthor(ctx context.Context, author primitive.ObjectID) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"author": author})
}

// MonthlyTrend groups a user's analyses since the given time into
// (year, month) buckets. The per-document overall score is the mean of
// the five category scores (absent scores count as 0), averaged within
// each bucket. Months with no analyses produce no bucket; the caller
// fills gaps.
func (r *AnalysisRepository) MonthlyTrend(ctx context.Context, author primitive.ObjectID, since time.Time) ([]models.MonthlyScore, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"author":     author,
			"created_at": bson.M{"$gte": since},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"year":  bson.M{"$year": "$created_at"},
				"month": bson.M{"$month": "$created_at"},
			},
			"avg_score": bson.M{"$avg": bson.M{"$avg": bson.A{
				bson.M{"$ifNull": bson.A{"$scores.style", 0}},
				bson.M{"$ifNull": bson.A{"$scores.grammar", 0}},
				bson.M{"$ifNull": bson.A{"$scores.creativity", 0}},
				bson.M{"$ifNull": bson.A{"$scores.clarity", 0}},
				bson.M{"$ifNull": bson.A{"$scores.relevance", 0}},
			}}},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":       0,
			"year":      "$_id.year",
			"month":     "$_id.month",
			"avg_score": bson.M{"$round": bson.A{"$avg_score", 2}},
			"count":     1,
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "year", Value: 1}, {Key: "month", Value: 1}}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.MonthlyScore
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
