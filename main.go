package main

import (
	"context"
	"log"
	"net/http"

	"github.com/rs/cors"

	"prompt-judge/analyzer"
	"prompt-judge/api/router"
	"prompt-judge/auth"
	"prompt-judge/config"
	"prompt-judge/db"
	"prompt-judge/logger"
	"prompt-judge/quota"
	"prompt-judge/repositories"
	"prompt-judge/services"
)

func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	ctx := context.Background()
	if err := db.Init(ctx); err != nil {
		log.Fatal(err)
	}
	database := db.Database()

	modelClient, err := analyzer.NewClientFromEnv(ctx)
	if err != nil {
		log.Fatal(err)
	}
	tokens, err := auth.NewJWTManagerFromEnv()
	if err != nil {
		log.Fatal(err)
	}

	users := repositories.NewUserRepository(database)
	analyses := repositories.NewAnalysisRepository(database)
	achievementsRepo := repositories.NewAchievementRepository(database)
	posts := repositories.NewPostRepository(database)
	templates := repositories.NewTemplateRepository(database)
	challenges := repositories.NewChallengeRepository(database)
	aiLogs := repositories.NewAILogRepository(database)

	limiter := quota.NewFromConfig(cfg)

	svcs := router.Services{
		Auth:         services.NewAuthService(users, tokens),
		Analysis:     services.NewAnalysisService(modelClient, limiter, analyses, aiLogs),
		Dashboard:    services.NewDashboardService(analyses, achievementsRepo),
		Achievements: services.NewAchievementService(analyses, posts, templates, challenges, achievementsRepo),
		Posts:        services.NewPostService(posts),
		Templates:    services.NewTemplateService(templates),
		Challenges:   services.NewChallengeService(challenges),
		Tokens:       tokens,
	}

	r := router.New(svcs)

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
	})

	addr := cfg.Server.Addr
	if addr == "" {
		addr = ":8080"
	}
	logger.Log.Infof("listening on %s", addr)
	if err := http.ListenAndServe(addr, corsMiddleware.Handler(r)); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
