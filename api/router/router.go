package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"prompt-judge/api/handlers"
	"prompt-judge/api/middleware"
	"prompt-judge/auth"
	"prompt-judge/db"
	"prompt-judge/services"
)

// Services bundles everything the routes need. The caller wires the
// concrete repositories in main.
type Services struct {
	Auth         *services.AuthService
	Analysis     *services.AnalysisService
	Dashboard    *services.DashboardService
	Achievements *services.AchievementService
	Posts        *services.PostService
	Templates    *services.TemplateService
	Challenges   *services.ChallengeService
	Tokens       *auth.JWTManager
}

func New(svcs Services) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestTrace())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := db.Client().Ping(ctx, readpref.Primary()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.POST("/auth/signup", handlers.SignupHandler(svcs.Auth))
		api.POST("/auth/login", handlers.LoginHandler(svcs.Auth))
		api.GET("/auth/me", middleware.AuthRequired(svcs.Tokens), handlers.MeHandler(svcs.Auth))

		api.POST("/analyze", middleware.OptionalAuth(svcs.Tokens), handlers.AnalyzeHandler(svcs.Analysis, svcs.Achievements))
		api.GET("/analyze/modes", handlers.ListModesHandler())

		api.GET("/user/analysis", middleware.AuthRequired(svcs.Tokens), handlers.DashboardHandler(svcs.Dashboard))

		api.GET("/achievements", middleware.AuthRequired(svcs.Tokens), handlers.ListAchievementsHandler(svcs.Achievements))
		api.POST("/achievements/check", middleware.AuthRequired(svcs.Tokens), handlers.CheckAchievementsHandler(svcs.Achievements))

		api.GET("/posts", handlers.ListPostsHandler(svcs.Posts))
		api.GET("/posts/:id", handlers.GetPostHandler(svcs.Posts))
		api.POST("/posts", middleware.AuthRequired(svcs.Tokens), handlers.CreatePostHandler(svcs.Posts, svcs.Achievements))
		api.DELETE("/posts/:id", middleware.AuthRequired(svcs.Tokens), handlers.DeletePostHandler(svcs.Posts))
		api.POST("/posts/:id/like", middleware.AuthRequired(svcs.Tokens), handlers.TogglePostLikeHandler(svcs.Posts))
		api.POST("/posts/:id/comments", middleware.AuthRequired(svcs.Tokens), handlers.AddCommentHandler(svcs.Posts, svcs.Achievements))
		api.DELETE("/posts/:id/comments/:commentId", middleware.AuthRequired(svcs.Tokens), handlers.DeleteCommentHandler(svcs.Posts))

		api.GET("/templates", handlers.ListTemplatesHandler(svcs.Templates))
		api.GET("/templates/:id", handlers.GetTemplateHandler(svcs.Templates))
		api.POST("/templates", middleware.AuthRequired(svcs.Tokens), handlers.CreateTemplateHandler(svcs.Templates, svcs.Achievements))
		api.DELETE("/templates/:id", middleware.AuthRequired(svcs.Tokens), handlers.DeleteTemplateHandler(svcs.Templates))
		api.POST("/templates/:id/like", middleware.AuthRequired(svcs.Tokens), handlers.ToggleTemplateLikeHandler(svcs.Templates))
		api.POST("/templates/:id/use", handlers.UseTemplateHandler(svcs.Templates, svcs.Achievements))

		api.GET("/challenges", handlers.ListChallengesHandler(svcs.Challenges))
		api.GET("/challenges/:id", handlers.GetChallengeHandler(svcs.Challenges))
		api.POST("/challenges", middleware.AuthRequired(svcs.Tokens), handlers.CreateChallengeHandler(svcs.Challenges, svcs.Achievements))
		api.DELETE("/challenges/:id", middleware.AuthRequired(svcs.Tokens), handlers.DeleteChallengeHandler(svcs.Challenges))
		api.POST("/challenges/:id/submit", middleware.AuthRequired(svcs.Tokens), handlers.SubmitChallengeHandler(svcs.Challenges, svcs.Achievements))
	}

	return r
}
