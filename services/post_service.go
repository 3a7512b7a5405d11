package services

import (
	"context"
	"errors"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"prompt-judge/models"
)

type postStore interface {
	Insert(ctx context.Context, p *models.Post) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error)
	List(ctx context.Context, category string) ([]models.Post, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	ToggleLike(ctx context.Context, postID, userID primitive.ObjectID) (bool, error)
	AddComment(ctx context.Context, postID primitive.ObjectID, c models.Comment) error
	DeleteComment(ctx context.Context, postID, commentID, author primitive.ObjectID) (bool, error)
}

// PostService implements the community forum. User-supplied text is
// sanitized before storage so stored content is safe to render as-is.
type PostService struct {
	posts     postStore
	sanitizer *bluemonday.Policy
}

func NewPostService(posts postStore) *PostService {
	return &PostService{
		posts:     posts,
		sanitizer: bluemonday.UGCPolicy(),
	}
}

// Create validates, sanitizes and stores a new post.
func (s *PostService) Create(ctx context.Context, author primitive.ObjectID, title, content, prompt, category string) (*models.Post, error) {
	title = strings.TrimSpace(s.sanitizer.Sanitize(title))
	content = strings.TrimSpace(s.sanitizer.Sanitize(content))
	if title == "" || content == "" {
		return nil, ErrValidation
	}

	post := &models.Post{
		Title:    title,
		Content:  content,
		Prompt:   strings.TrimSpace(s.sanitizer.Sanitize(prompt)),
		Category: category,
		Author:   author,
	}
	id, err := s.posts.Insert(ctx, post)
	if err != nil {
		return nil, err
	}
	post.ID = id
	return post, nil
}

func (s *PostService) Get(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return post, nil
}

func (s *PostService) List(ctx context.Context, category string) ([]models.Post, error) {
	return s.posts.List(ctx, category)
}

// Delete removes a post. Only the author may delete it.
func (s *PostService) Delete(ctx context.Context, id, requester primitive.ObjectID) error {
	post, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if post.Author != requester {
		return ErrForbidden
	}
	return s.posts.Delete(ctx, id)
}

// ToggleLike flips the requester's like on a post and reports the new
// state.
func (s *PostService) ToggleLike(ctx context.Context, id, userID primitive.ObjectID) (bool, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return false, err
	}
	return s.posts.ToggleLike(ctx, id, userID)
}

// AddComment appends a sanitized comment to the post.
func (s *PostService) AddComment(ctx context.Context, postID, author primitive.ObjectID, content string) (*models.Post, error) {
	content = strings.TrimSpace(s.sanitizer.Sanitize(content))
	if content == "" {
		return nil, ErrValidation
	}
	if _, err := s.Get(ctx, postID); err != nil {
		return nil, err
	}

	if err := s.posts.AddComment(ctx, postID, models.Comment{
		Author:  author,
		Content: content,
	}); err != nil {
		return nil, err
	}
	return s.Get(ctx, postID)
}

// DeleteComment removes the requester's own comment. A comment that
// exists but belongs to someone else yields ErrForbidden.
func (s *PostService) DeleteComment(ctx context.Context, postID, commentID, requester primitive.ObjectID) error {
	post, err := s.Get(ctx, postID)
	if err != nil {
		return err
	}

	removed, err := s.posts.DeleteComment(ctx, postID, commentID, requester)
	if err != nil {
		return err
	}
	if removed {
		return nil
	}

	for _, c := range post.Comments {
		if c.ID == commentID {
			return ErrForbidden
		}
	}
	return ErrNotFound
}
