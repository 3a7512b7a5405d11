package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"prompt-judge/models"
)

type challengeStore interface {
	Insert(ctx context.Context, c *models.Challenge) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Challenge, error)
	List(ctx context.Context) ([]models.Challenge, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	AppendSubmission(ctx context.Context, challengeID primitive.ObjectID, s models.Submission) (bool, error)
}

// ChallengeService implements timed prompt-writing challenges.
type ChallengeService struct {
	challenges challengeStore

	now func() time.Time
}

func NewChallengeService(challenges challengeStore) *ChallengeService {
	return &ChallengeService{challenges: challenges, now: time.Now}
}

// Create validates and stores a new challenge. The deadline must lie in
// the future.
func (s *ChallengeService) Create(ctx context.Context, author primitive.ObjectID, title, description, prompt, category string, deadline time.Time) (*models.Challenge, error) {
	title = strings.TrimSpace(title)
	if title == "" || strings.TrimSpace(description) == "" {
		return nil, ErrValidation
	}
	if !deadline.After(s.now()) {
		return nil, ErrValidation
	}

	ch := &models.Challenge{
		Title:       title,
		Description: description,
		Prompt:      prompt,
		Category:    category,
		Author:      author,
		Deadline:    deadline,
	}
	id, err := s.challenges.Insert(ctx, ch)
	if err != nil {
		return nil, err
	}
	ch.ID = id
	return ch, nil
}

func (s *ChallengeService) Get(ctx context.Context, id primitive.ObjectID) (*models.Challenge, error) {
	ch, err := s.challenges.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ch, nil
}

func (s *ChallengeService) List(ctx context.Context) ([]models.Challenge, error) {
	return s.challenges.List(ctx)
}

// Delete removes a challenge. Only the author may delete it.
func (s *ChallengeService) Delete(ctx context.Context, id, requester primitive.ObjectID) error {
	ch, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if ch.Author != requester {
		return ErrForbidden
	}
	return s.challenges.Delete(ctx, id)
}

// Submit appends the user's entry. The store's filtered update enforces
// the deadline and the one-submission-per-user rule atomically; when it
// reports no append, the current document decides which rule failed.
func (s *ChallengeService) Submit(ctx context.Context, challengeID, author primitive.ObjectID, content string) (*models.Challenge, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrValidation
	}

	appended, err := s.challenges.AppendSubmission(ctx, challengeID, models.Submission{
		Author:  author,
		Content: content,
	})
	if err != nil {
		return nil, err
	}
	if appended {
		return s.Get(ctx, challengeID)
	}

	ch, err := s.Get(ctx, challengeID)
	if err != nil {
		return nil, err
	}
	for _, sub := range ch.Submissions {
		if sub.Author == author {
			return nil, ErrAlreadySubmitted
		}
	}
	if !ch.Deadline.After(s.now()) {
		return nil, ErrDeadlinePassed
	}
	return nil, ErrAlreadySubmitted
}
