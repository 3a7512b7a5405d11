// Package achievements holds the static badge catalog. Definitions are
// pure data; the evaluation rules live in the achievement service.
package achievements

import "prompt-judge/models"

// Definition describes one badge. Name is the identity: at most one
// Achievement document exists per (user, name).
type Definition struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Category    string `json:"category"`
}

var (
	FirstAnalysis = Definition{
		Name:        "First Analysis",
		Description: "Complete your first prompt analysis",
		Icon:        "🎯",
		Category:    models.AchievementCategoryAnalysis,
	}
	PerfectScore = Definition{
		Name:        "Perfect Score",
		Description: "Get a perfect score in any category",
		Icon:        "⭐",
		Category:    models.AchievementCategoryAnalysis,
	}
	AnalysisMaster = Definition{
		Name:        "Analysis Master",
		Description: "Complete 10 analyses",
		Icon:        "🎓",
		Category:    models.AchievementCategoryAnalysis,
	}
	FirstPost = Definition{
		Name:        "First Post",
		Description: "Create your first community post",
		Icon:        "📝",
		Category:    models.AchievementCategoryCommunity,
	}
	PopularPost = Definition{
		Name:        "Popular Post",
		Description: "Get 5 likes on a post",
		Icon:        "🔥",
		Category:    models.AchievementCategoryCommunity,
	}
	ActiveCommenter = Definition{
		Name:        "Active Commenter",
		Description: "Make 5 comments on community posts",
		Icon:        "💬",
		Category:    models.AchievementCategoryCommunity,
	}
	TemplateCreator = Definition{
		Name:        "Template Creator",
		Description: "Create your first template",
		Icon:        "📋",
		Category:    models.AchievementCategoryTemplate,
	}
	TemplateMaster = Definition{
		Name:        "Template Master",
		Description: "Have your templates used 10 times",
		Icon:        "🏆",
		Category:    models.AchievementCategoryTemplate,
	}
	Challenger = Definition{
		Name:        "Challenger",
		Description: "Create your first challenge",
		Icon:        "🎮",
		Category:    models.AchievementCategoryChallenge,
	}
	ChallengeMaster = Definition{
		Name:        "Challenge Master",
		Description: "Complete 5 challenges",
		Icon:        "🌟",
		Category:    models.AchievementCategoryChallenge,
	}
)

// All lists every badge in the catalog.
func All() []Definition {
	return []Definition{
		FirstAnalysis, PerfectScore, AnalysisMaster,
		FirstPost, PopularPost, ActiveCommenter,
		TemplateCreator, TemplateMaster,
		Challenger, ChallengeMaster,
	}
}
