package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"prompt-judge/models"
)

type fakePostStore struct {
	posts map[primitive.ObjectID]*models.Post
}

func newFakePostStore() *fakePostStore {
	return &fakePostStore{posts: map[primitive.ObjectID]*models.Post{}}
}

func (f *fakePostStore) Insert(_ context.Context, p *models.Post) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	p.ID = id
	if p.Likes == nil {
		p.Likes = []primitive.ObjectID{}
	}
	if p.Comments == nil {
		p.Comments = []models.Comment{}
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	f.posts[id] = p
	return id, nil
}

func (f *fakePostStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Post, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *p
	return &cp, nil
}

func (f *fakePostStore) List(_ context.Context, category string) ([]models.Post, error) {
	var out []models.Post
	for _, p := range f.posts {
		if category == "" || p.Category == category {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePostStore) Delete(_ context.Context, id primitive.ObjectID) error {
	delete(f.posts, id)
	return nil
}

func (f *fakePostStore) ToggleLike(_ context.Context, postID, userID primitive.ObjectID) (bool, error) {
	p, ok := f.posts[postID]
	if !ok {
		return false, mongo.ErrNoDocuments
	}
	for i, id := range p.Likes {
		if id == userID {
			p.Likes = append(p.Likes[:i], p.Likes[i+1:]...)
			return false, nil
		}
	}
	p.Likes = append(p.Likes, userID)
	return true, nil
}

func (f *fakePostStore) AddComment(_ context.Context, postID primitive.ObjectID, c models.Comment) error {
	p, ok := f.posts[postID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	p.Comments = append(p.Comments, c)
	return nil
}

func (f *fakePostStore) DeleteComment(_ context.Context, postID, commentID, author primitive.ObjectID) (bool, error) {
	p, ok := f.posts[postID]
	if !ok {
		return false, nil
	}
	for i, c := range p.Comments {
		if c.ID == commentID && c.Author == author {
			p.Comments = append(p.Comments[:i], p.Comments[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func TestPostCreateSanitizesContent(t *testing.T) {
	svc := NewPostService(newFakePostStore())

	post, err := svc.Create(context.Background(), primitive.NewObjectID(),
		"My prompt tips", `Check this out<script>alert("x")</script>`, "", "tips")
	require.NoError(t, err)

	assert.Equal(t, "My prompt tips", post.Title)
	assert.NotContains(t, post.Content, "<script>")
	assert.Contains(t, post.Content, "Check this out")
}

func TestPostCreateRejectsEmptyAfterSanitize(t *testing.T) {
	svc := NewPostService(newFakePostStore())

	_, err := svc.Create(context.Background(), primitive.NewObjectID(),
		"title", `<script>only markup</script>`, "", "tips")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestPostToggleLikeFlipsState(t *testing.T) {
	store := newFakePostStore()
	svc := NewPostService(store)
	author := primitive.NewObjectID()
	liker := primitive.NewObjectID()

	post, err := svc.Create(context.Background(), author, "title", "content", "", "tips")
	require.NoError(t, err)

	liked, err := svc.ToggleLike(context.Background(), post.ID, liker)
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = svc.ToggleLike(context.Background(), post.ID, liker)
	require.NoError(t, err)
	assert.False(t, liked)

	got, err := svc.Get(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Likes)
}

func TestPostDeleteOnlyAuthor(t *testing.T) {
	svc := NewPostService(newFakePostStore())
	author := primitive.NewObjectID()

	post, err := svc.Create(context.Background(), author, "title", "content", "", "tips")
	require.NoError(t, err)

	err = svc.Delete(context.Background(), post.ID, primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrForbidden)

	err = svc.Delete(context.Background(), post.ID, author)
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), post.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostDeleteCommentOwnership(t *testing.T) {
	svc := NewPostService(newFakePostStore())
	author := primitive.NewObjectID()
	commenter := primitive.NewObjectID()

	post, err := svc.Create(context.Background(), author, "title", "content", "", "tips")
	require.NoError(t, err)

	updated, err := svc.AddComment(context.Background(), post.ID, commenter, "nice one")
	require.NoError(t, err)
	require.Len(t, updated.Comments, 1)
	commentID := updated.Comments[0].ID

	// someone else's comment
	err = svc.DeleteComment(context.Background(), post.ID, commentID, author)
	assert.ErrorIs(t, err, ErrForbidden)

	err = svc.DeleteComment(context.Background(), post.ID, commentID, commenter)
	require.NoError(t, err)

	err = svc.DeleteComment(context.Background(), post.ID, commentID, commenter)
	assert.ErrorIs(t, err, ErrNotFound)
}
