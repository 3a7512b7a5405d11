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

type TemplateRepository struct {
	col *mongo.Collection
}

func NewTemplateRepository(db *mongo.Database) *TemplateRepository {
	return &TemplateRepository{col: db.Collection("templates")}
}

func (r *TemplateRepository) Insert(ctx context.Context, t *models.Template) (primitive.ObjectID, error) {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	if t.Likes == nil {
		t.Likes = []primitive.ObjectID{}
	}
	if t.Tags == nil {
		t.Tags = []string{}
	}
	res, err := r.col.InsertOne(ctx, t)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r *TemplateRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Template, error) {
	var t models.Template
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

// List returns templates ordered by usage count, optionally filtered by
// category.
func (r *TemplateRepository) List(ctx context.Context, category string) ([]models.Template, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	opts := options.Find().SetSort(bson.D{{Key: "usage_count", Value: -1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Template
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *TemplateRepository) ListByAuthor(ctx context.Context, author primitive.ObjectID) ([]models.Template, error) {
	cur, err := r.col.Find(ctx, bson.M{"author": author})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Template
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *TemplateRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// ToggleLike flips membership of userID in the template's like set.
func (r *TemplateRepository) ToggleLike(ctx context.Context, templateID, userID primitive.ObjectID) (bool, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": templateID, "likes": userID},
		bson.M{"$pull": bson.M{"likes": userID}},
	)
	if err != nil {
		return false, err
	}
	if res.ModifiedCount > 0 {
		return false, nil
	}

	_, err = r.col.UpdateOne(ctx,
		bson.M{"_id": templateID},
		bson.M{"$addToSet": bson.M{"likes": userID}},
	)
	if err != nil {
		return false, err
	}
	return true, nil
}

// IncrementUsage bumps the monotonic usage counter.
func (r *TemplateRepository) IncrementUsage(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.UpdateByID(ctx, id, bson.M{"$inc": bson.M{"usage_count": 1}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
