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

type fakeTemplateStore struct {
	templates map[primitive.ObjectID]*models.Template
}

func newFakeTemplateStore() *fakeTemplateStore {
	return &fakeTemplateStore{templates: map[primitive.ObjectID]*models.Template{}}
}

func (f *fakeTemplateStore) Insert(_ context.Context, t *models.Template) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	t.ID = id
	if t.Likes == nil {
		t.Likes = []primitive.ObjectID{}
	}
	if t.Tags == nil {
		t.Tags = []string{}
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	f.templates[id] = t
	return id, nil
}

func (f *fakeTemplateStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Template, error) {
	t, ok := f.templates[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTemplateStore) List(_ context.Context, category string) ([]models.Template, error) {
	var out []models.Template
	for _, t := range f.templates {
		if category == "" || t.Category == category {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTemplateStore) Delete(_ context.Context, id primitive.ObjectID) error {
	delete(f.templates, id)
	return nil
}

func (f *fakeTemplateStore) ToggleLike(_ context.Context, templateID, userID primitive.ObjectID) (bool, error) {
	t, ok := f.templates[templateID]
	if !ok {
		return false, mongo.ErrNoDocuments
	}
	for i, id := range t.Likes {
		if id == userID {
			t.Likes = append(t.Likes[:i], t.Likes[i+1:]...)
			return false, nil
		}
	}
	t.Likes = append(t.Likes, userID)
	return true, nil
}

func (f *fakeTemplateStore) IncrementUsage(_ context.Context, id primitive.ObjectID) error {
	t, ok := f.templates[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	t.UsageCount++
	return nil
}

func TestTemplateCreateValidatesCategoryAndDifficulty(t *testing.T) {
	svc := NewTemplateService(newFakeTemplateStore())
	author := primitive.NewObjectID()

	_, err := svc.Create(context.Background(), author, "Code review", "Review this code: ...", "nonsense", "beginner", nil)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(context.Background(), author, "Code review", "Review this code: ...", "technical", "impossible", nil)
	assert.ErrorIs(t, err, ErrValidation)

	tpl, err := svc.Create(context.Background(), author, "Code review", "Review this code: ...", "technical", "beginner", []string{"review"})
	require.NoError(t, err)
	assert.Equal(t, "technical", tpl.Category)
	assert.Equal(t, int64(0), tpl.UsageCount)
}

func TestTemplateRecordUsageIncrements(t *testing.T) {
	store := newFakeTemplateStore()
	svc := NewTemplateService(store)

	tpl, err := svc.Create(context.Background(), primitive.NewObjectID(),
		"Code review", "Review this code: ...", "technical", "beginner", nil)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, svc.RecordUsage(context.Background(), tpl.ID))
	}

	got, err := svc.Get(context.Background(), tpl.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.UsageCount)
}

func TestTemplateRecordUsageUnknownID(t *testing.T) {
	svc := NewTemplateService(newFakeTemplateStore())
	err := svc.RecordUsage(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTemplateDeleteOnlyAuthor(t *testing.T) {
	svc := NewTemplateService(newFakeTemplateStore())
	author := primitive.NewObjectID()

	tpl, err := svc.Create(context.Background(), author,
		"Code review", "Review this code: ...", "technical", "beginner", nil)
	require.NoError(t, err)

	err = svc.Delete(context.Background(), tpl.ID, primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrForbidden)

	err = svc.Delete(context.Background(), tpl.ID, author)
	require.NoError(t, err)
}
