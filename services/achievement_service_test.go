package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"prompt-judge/achievements"
	"prompt-judge/models"
)

type fakeAnalysisReader struct {
	analyses []models.Analysis
}

func (f *fakeAnalysisReader) ListByAuthor(_ context.Context, author primitive.ObjectID) ([]models.Analysis, error) {
	var out []models.Analysis
	for _, a := range f.analyses {
		if a.Author == author {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakePostReader struct {
	posts        []models.Post
	commentCount int64
}

func (f *fakePostReader) ListByAuthor(_ context.Context, author primitive.ObjectID) ([]models.Post, error) {
	var out []models.Post
	for _, p := range f.posts {
		if p.Author == author {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePostReader) CountCommentsByAuthor(_ context.Context, _ primitive.ObjectID) (int64, error) {
	return f.commentCount, nil
}

type fakeTemplateReader struct {
	templates []models.Template
}

func (f *fakeTemplateReader) ListByAuthor(_ context.Context, author primitive.ObjectID) ([]models.Template, error) {
	var out []models.Template
	for _, t := range f.templates {
		if t.Author == author {
			out = append(out, t)
		}
	}
	return out, nil
}

type fakeChallengeReader struct {
	created   int64
	submitted int64
}

func (f *fakeChallengeReader) CountByAuthor(_ context.Context, _ primitive.ObjectID) (int64, error) {
	return f.created, nil
}

func (f *fakeChallengeReader) CountSubmittedBy(_ context.Context, _ primitive.ObjectID) (int64, error) {
	return f.submitted, nil
}

// fakeAchievementStore mirrors the unique (user_id, name) index: a second
// insert of the same pair reports not-new instead of failing.
type fakeAchievementStore struct {
	records []models.Achievement
}

func (f *fakeAchievementStore) Insert(_ context.Context, a models.Achievement) (bool, error) {
	for _, existing := range f.records {
		if existing.UserID == a.UserID && existing.Name == a.Name {
			return false, nil
		}
	}
	f.records = append(f.records, a)
	return true, nil
}

func (f *fakeAchievementStore) ListByUser(_ context.Context, userID primitive.ObjectID) ([]models.Achievement, error) {
	var out []models.Achievement
	for _, a := range f.records {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func newAchievementFixture() (*AchievementService, *fakeAnalysisReader, *fakePostReader, *fakeTemplateReader, *fakeChallengeReader, *fakeAchievementStore) {
	analyses := &fakeAnalysisReader{}
	posts := &fakePostReader{}
	templates := &fakeTemplateReader{}
	challenges := &fakeChallengeReader{}
	store := &fakeAchievementStore{}
	svc := NewAchievementService(analyses, posts, templates, challenges, store)
	return svc, analyses, posts, templates, challenges, store
}

func names(defs []achievements.Definition) []string {
	out := make([]string, 0, len(defs))
	for _, d := range defs {
		out = append(out, d.Name)
	}
	return out
}

func TestCheckFirstAnalysis(t *testing.T) {
	svc, analyses, _, _, _, _ := newAchievementFixture()
	user := primitive.NewObjectID()
	analyses.analyses = []models.Analysis{{Author: user}}

	defs, err := svc.Check(context.Background(), user, models.AchievementCategoryAnalysis)
	require.NoError(t, err)
	assert.Equal(t, []string{achievements.FirstAnalysis.Name}, names(defs))
}

func TestCheckAnalysisMasterAtExactlyTen(t *testing.T) {
	svc, analyses, _, _, _, _ := newAchievementFixture()
	user := primitive.NewObjectID()
	for i := 0; i < 10; i++ {
		analyses.analyses = append(analyses.analyses, models.Analysis{Author: user})
	}

	defs, err := svc.Check(context.Background(), user, models.AchievementCategoryAnalysis)
	require.NoError(t, err)
	assert.Contains(t, names(defs), achievements.AnalysisMaster.Name)
	assert.NotContains(t, names(defs), achievements.FirstAnalysis.Name)
}

func TestCheckPerfectScoreNeedsOneCategoryAtHundred(t *testing.T) {
	svc, analyses, _, _, _, _ := newAchievementFixture()
	user := primitive.NewObjectID()
	analyses.analyses = []models.Analysis{
		{Author: user, Scores: models.Scores{Style: 99, Grammar: 99}},
		{Author: user, Scores: models.Scores{Clarity: 100}},
	}

	defs, err := svc.Check(context.Background(), user, models.AchievementCategoryAnalysis)
	require.NoError(t, err)
	assert.Contains(t, names(defs), achievements.PerfectScore.Name)
}

func TestCheckCommunityRules(t *testing.T) {
	svc, _, posts, _, _, _ := newAchievementFixture()
	user := primitive.NewObjectID()

	likers := make([]primitive.ObjectID, 5)
	for i := range likers {
		likers[i] = primitive.NewObjectID()
	}
	posts.posts = []models.Post{{Author: user, Likes: likers}}
	posts.commentCount = 5

	defs, err := svc.Check(context.Background(), user, models.AchievementCategoryCommunity)
	require.NoError(t, err)
	got := names(defs)
	assert.Contains(t, got, achievements.FirstPost.Name)
	assert.Contains(t, got, achievements.PopularPost.Name)
	assert.Contains(t, got, achievements.ActiveCommenter.Name)
}

func TestCheckTemplateMasterSumsUsage(t *testing.T) {
	svc, _, _, templates, _, _ := newAchievementFixture()
	user := primitive.NewObjectID()
	templates.templates = []models.Template{
		{Author: user, UsageCount: 4},
		{Author: user, UsageCount: 6},
	}

	defs, err := svc.Check(context.Background(), user, models.AchievementCategoryTemplate)
	require.NoError(t, err)
	assert.Contains(t, names(defs), achievements.TemplateMaster.Name)
}

func TestCheckChallengeRules(t *testing.T) {
	svc, _, _, _, challenges, _ := newAchievementFixture()
	user := primitive.NewObjectID()
	challenges.created = 1
	challenges.submitted = 5

	defs, err := svc.Check(context.Background(), user, models.AchievementCategoryChallenge)
	require.NoError(t, err)
	got := names(defs)
	assert.Contains(t, got, achievements.Challenger.Name)
	assert.Contains(t, got, achievements.ChallengeMaster.Name)
}

func TestCheckUnknownCategoryUnionsAll(t *testing.T) {
	svc, analyses, _, _, challenges, _ := newAchievementFixture()
	user := primitive.NewObjectID()
	analyses.analyses = []models.Analysis{{Author: user}}
	challenges.created = 1

	defs, err := svc.Check(context.Background(), user, "")
	require.NoError(t, err)
	got := names(defs)
	assert.Contains(t, got, achievements.FirstAnalysis.Name)
	assert.Contains(t, got, achievements.Challenger.Name)
}

func TestCheckAndAwardIsIdempotent(t *testing.T) {
	svc, analyses, _, _, _, store := newAchievementFixture()
	user := primitive.NewObjectID()
	analyses.analyses = []models.Analysis{{Author: user}}

	first, err := svc.CheckAndAward(context.Background(), user, models.AchievementCategoryAnalysis)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, achievements.FirstAnalysis.Name, first[0].Name)

	second, err := svc.CheckAndAward(context.Background(), user, models.AchievementCategoryAnalysis)
	require.NoError(t, err)
	assert.Empty(t, second)
	assert.Len(t, store.records, 1)
}

func TestCheckAndAwardDoesNotAwardOtherUsers(t *testing.T) {
	svc, analyses, _, _, _, store := newAchievementFixture()
	alice := primitive.NewObjectID()
	bob := primitive.NewObjectID()
	analyses.analyses = []models.Analysis{{Author: alice}}

	awarded, err := svc.CheckAndAward(context.Background(), bob, models.AchievementCategoryAnalysis)
	require.NoError(t, err)
	assert.Empty(t, awarded)
	assert.Empty(t, store.records)
}
