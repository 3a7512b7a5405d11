package services

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"prompt-judge/models"
)

type templateStore interface {
	Insert(ctx context.Context, t *models.Template) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Template, error)
	List(ctx context.Context, category string) ([]models.Template, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	ToggleLike(ctx context.Context, templateID, userID primitive.ObjectID) (bool, error)
	IncrementUsage(ctx context.Context, id primitive.ObjectID) error
}

// TemplateService implements the reusable prompt template library.
type TemplateService struct {
	templates templateStore
}

func NewTemplateService(templates templateStore) *TemplateService {
	return &TemplateService{templates: templates}
}

// Create validates and stores a new template. Category and difficulty
// must come from the known sets.
func (s *TemplateService) Create(ctx context.Context, author primitive.ObjectID, title, content, category, difficulty string, tags []string) (*models.Template, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" || content == "" {
		return nil, ErrValidation
	}
	if !contains(models.TemplateCategories, category) {
		return nil, ErrValidation
	}
	if !contains(models.TemplateDifficulties, difficulty) {
		return nil, ErrValidation
	}

	tpl := &models.Template{
		Title:      title,
		Content:    content,
		Category:   category,
		Difficulty: difficulty,
		Tags:       tags,
		Author:     author,
	}
	id, err := s.templates.Insert(ctx, tpl)
	if err != nil {
		return nil, err
	}
	tpl.ID = id
	return tpl, nil
}

func (s *TemplateService) Get(ctx context.Context, id primitive.ObjectID) (*models.Template, error) {
	tpl, err := s.templates.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return tpl, nil
}

func (s *TemplateService) List(ctx context.Context, category string) ([]models.Template, error) {
	return s.templates.List(ctx, category)
}

// Delete removes a template. Only the author may delete it.
func (s *TemplateService) Delete(ctx context.Context, id, requester primitive.ObjectID) error {
	tpl, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if tpl.Author != requester {
		return ErrForbidden
	}
	return s.templates.Delete(ctx, id)
}

func (s *TemplateService) ToggleLike(ctx context.Context, id, userID primitive.ObjectID) (bool, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return false, err
	}
	return s.templates.ToggleLike(ctx, id, userID)
}

// RecordUsage bumps the template's usage counter. Any caller may record
// usage, including the author.
func (s *TemplateService) RecordUsage(ctx context.Context, id primitive.ObjectID) error {
	if err := s.templates.IncrementUsage(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
