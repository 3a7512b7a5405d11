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

type PostRepository struct {
	col *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{col: db.Collection("posts")}
}

func (r *PostRepository) Insert(ctx context.Context, p *models.Post) (primitive.ObjectID, error) {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	if p.Likes == nil {
		p.Likes = []primitive.ObjectID{}
	}
	if p.Comments == nil {
		p.Comments = []models.Comment{}
	}
	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r *PostRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	var p models.Post
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns posts, newest first, optionally filtered by category.
func (r *PostRepository) List(ctx context.Context, category string) ([]models.Post, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Post
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostRepository) ListByAuthor(ctx context.Context, author primitive.ObjectID) ([]models.Post, error) {
	cur, err := r.col.Find(ctx, bson.M{"author": author})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Post
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// ToggleLike flips membership of userID in the post's like set and
// reports the new state. Two updates keep the toggle atomic: the $pull
// only matches when the user already liked the post.
func (r *PostRepository) ToggleLike(ctx context.Context, postID, userID primitive.ObjectID) (bool, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": postID, "likes": userID},
		bson.M{"$pull": bson.M{"likes": userID}},
	)
	if err != nil {
		return false, err
	}
	if res.ModifiedCount > 0 {
		return false, nil
	}

	_, err = r.col.UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{"$addToSet": bson.M{"likes": userID}},
	)
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *PostRepository) AddComment(ctx context.Context, postID primitive.ObjectID, c models.Comment) error {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	_, err := r.col.UpdateByID(ctx, postID, bson.M{
		"$push": bson.M{"comments": c},
	})
	return err
}

// DeleteComment removes a comment only when it belongs to the given
// author. Returns whether anything was removed.
func (r *PostRepository) DeleteComment(ctx context.Context, postID, commentID, author primitive.ObjectID) (bool, error) {
	res, err := r.col.UpdateByID(ctx, postID, bson.M{
		"$pull": bson.M{"comments": bson.M{"_id": commentID, "author": author}},
	})
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}

// CountCommentsByAuthor counts comments the user wrote across all posts.
func (r *PostRepository) CountCommentsByAuthor(ctx context.Context, author primitive.ObjectID) (int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$unwind", Value: "$comments"}},
		{{Key: "$match", Value: bson.M{"comments.author": author}}},
		{{Key: "$count", Value: "comment_count"}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cur.Close(ctx)

	var rows []struct {
		CommentCount int64 `bson:"comment_count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].CommentCount, nil
}
