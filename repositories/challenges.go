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

type ChallengeRepository struct {
	col *mongo.Collection
}

func NewChallengeRepository(db *mongo.Database) *ChallengeRepository {
	return &ChallengeRepository{col: db.Collection("challenges")}
}

func (r *ChallengeRepository) Insert(ctx context.Context, c *models.Challenge) (primitive.ObjectID, error) {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	if c.Submissions == nil {
		c.Submissions = []models.Submission{}
	}
	res, err := r.col.InsertOne(ctx, c)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r *ChallengeRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Challenge, error) {
	var c models.Challenge
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ChallengeRepository) List(ctx context.Context) ([]models.Challenge, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Challenge
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ChallengeRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *ChallengeRepository) CountByAuthor(ctx context.Context, author primitive.ObjectID) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"author": author})
}

// CountSubmittedBy counts distinct challenges the user has submitted to.
func (r *ChallengeRepository) CountSubmittedBy(ctx context.Context, author primitive.ObjectID) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"submissions.author": author})
}

// AppendSubmission pushes a submission only when the deadline has not
// passed and the user has not submitted yet; the filter makes the
// one-submission-per-user rule hold even under concurrent submits.
// Returns whether the submission was appended.
func (r *ChallengeRepository) AppendSubmission(ctx context.Context, challengeID primitive.ObjectID, s models.Submission) (bool, error) {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}
	res, err := r.col.UpdateOne(ctx,
		bson.M{
			"_id":                challengeID,
			"deadline":           bson.M{"$gt": time.Now()},
			"submissions.author": bson.M{"$ne": s.Author},
		},
		bson.M{"$push": bson.M{"submissions": s}},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}
