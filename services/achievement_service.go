package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"prompt-judge/achievements"
	"prompt-judge/models"
)

// Store interfaces are kept narrow so the evaluation rules can be tested
// against in-memory fakes; the repositories satisfy them.
type analysisReader interface {
	ListByAuthor(ctx context.Context, author primitive.ObjectID) ([]models.Analysis, error)
}

type postReader interface {
	ListByAuthor(ctx context.Context, author primitive.ObjectID) ([]models.Post, error)
	CountCommentsByAuthor(ctx context.Context, author primitive.ObjectID) (int64, error)
}

type templateReader interface {
	ListByAuthor(ctx context.Context, author primitive.ObjectID) ([]models.Template, error)
}

type challengeReader interface {
	CountByAuthor(ctx context.Context, author primitive.ObjectID) (int64, error)
	CountSubmittedBy(ctx context.Context, author primitive.ObjectID) (int64, error)
}

type achievementStore interface {
	Insert(ctx context.Context, a models.Achievement) (bool, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Achievement, error)
}

// AchievementService evaluates badge rules over a user's history and
// performs at-most-once awarding.
type AchievementService struct {
	analyses   analysisReader
	posts      postReader
	templates  templateReader
	challenges challengeReader
	store      achievementStore
}

func NewAchievementService(
	analyses analysisReader,
	posts postReader,
	templates templateReader,
	challenges challengeReader,
	store achievementStore,
) *AchievementService {
	return &AchievementService{
		analyses:   analyses,
		posts:      posts,
		templates:  templates,
		challenges: challenges,
		store:      store,
	}
}

// Check returns the achievement definitions whose thresholds the user
// currently satisfies in the given category. An unknown or empty
// category checks all four categories and unions the results.
func (s *AchievementService) Check(ctx context.Context, userID primitive.ObjectID, category string) ([]achievements.Definition, error) {
	switch category {
	case models.AchievementCategoryAnalysis:
		return s.checkAnalysis(ctx, userID)
	case models.AchievementCategoryCommunity:
		return s.checkCommunity(ctx, userID)
	case models.AchievementCategoryTemplate:
		return s.checkTemplate(ctx, userID)
	case models.AchievementCategoryChallenge:
		return s.checkChallenge(ctx, userID)
	}

	var all []achievements.Definition
	for _, check := range []func(context.Context, primitive.ObjectID) ([]achievements.Definition, error){
		s.checkAnalysis, s.checkCommunity, s.checkTemplate, s.checkChallenge,
	} {
		defs, err := check(ctx, userID)
		if err != nil {
			return nil, err
		}
		all = append(all, defs...)
	}
	return all, nil
}

// Award persists one achievement. It reports false when the badge was
// already awarded; the unique (user_id, name) index makes this
// at-most-once even when two checks race.
func (s *AchievementService) Award(ctx context.Context, userID primitive.ObjectID, def achievements.Definition) (bool, error) {
	return s.store.Insert(ctx, models.Achievement{
		UserID:      userID,
		Name:        def.Name,
		Description: def.Description,
		Icon:        def.Icon,
		Category:    def.Category,
		EarnedAt:    time.Now(),
	})
}

// CheckAndAward evaluates the category rules and awards everything that
// qualifies, returning only the newly awarded definitions.
func (s *AchievementService) CheckAndAward(ctx context.Context, userID primitive.ObjectID, category string) ([]achievements.Definition, error) {
	qualified, err := s.Check(ctx, userID, category)
	if err != nil {
		return nil, err
	}

	awarded := make([]achievements.Definition, 0, len(qualified))
	for _, def := range qualified {
		isNew, err := s.Award(ctx, userID, def)
		if err != nil {
			return nil, err
		}
		if isNew {
			awarded = append(awarded, def)
		}
	}
	return awarded, nil
}

// ListForUser returns the user's earned achievements, newest first.
func (s *AchievementService) ListForUser(ctx context.Context, userID primitive.ObjectID) ([]models.Achievement, error) {
	return s.store.ListByUser(ctx, userID)
}

func (s *AchievementService) checkAnalysis(ctx context.Context, userID primitive.ObjectID) ([]achievements.Definition, error) {
	analyses, err := s.analyses.ListByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}

	var defs []achievements.Definition
	if len(analyses) == 1 {
		defs = append(defs, achievements.FirstAnalysis)
	}
	if len(analyses) == 10 {
		defs = append(defs, achievements.AnalysisMaster)
	}
	for _, a := range analyses {
		if hasPerfectScore(a.Scores) {
			defs = append(defs, achievements.PerfectScore)
			break
		}
	}
	return defs, nil
}

func hasPerfectScore(s models.Scores) bool {
	for _, v := range []float64{s.Style, s.Grammar, s.Creativity, s.Clarity, s.Relevance} {
		if v == 100 {
			return true
		}
	}
	return false
}

func (s *AchievementService) checkCommunity(ctx context.Context, userID primitive.ObjectID) ([]achievements.Definition, error) {
	posts, err := s.posts.ListByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}

	var defs []achievements.Definition
	if len(posts) == 1 {
		defs = append(defs, achievements.FirstPost)
	}
	for _, p := range posts {
		if len(p.Likes) >= 5 {
			defs = append(defs, achievements.PopularPost)
			break
		}
	}

	commentCount, err := s.posts.CountCommentsByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}
	if commentCount >= 5 {
		defs = append(defs, achievements.ActiveCommenter)
	}
	return defs, nil
}

func (s *AchievementService) checkTemplate(ctx context.Context, userID primitive.ObjectID) ([]achievements.Definition, error) {
	templates, err := s.templates.ListByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}

	var defs []achievements.Definition
	if len(templates) == 1 {
		defs = append(defs, achievements.TemplateCreator)
	}
	var totalUses int64
	for _, t := range templates {
		totalUses += t.UsageCount
	}
	if totalUses >= 10 {
		defs = append(defs, achievements.TemplateMaster)
	}
	return defs, nil
}

func (s *AchievementService) checkChallenge(ctx context.Context, userID primitive.ObjectID) ([]achievements.Definition, error) {
	created, err := s.challenges.CountByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}
	submitted, err := s.challenges.CountSubmittedBy(ctx, userID)
	if err != nil {
		return nil, err
	}

	var defs []achievements.Definition
	if created == 1 {
		defs = append(defs, achievements.Challenger)
	}
	if submitted >= 5 {
		defs = append(defs, achievements.ChallengeMaster)
	}
	return defs, nil
}
