package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"prompt-judge/dto"
	"prompt-judge/models"
)

const (
	recentAnalysesLimit = 5
	trendMonths         = 6
)

type dashboardAnalysisStore interface {
	ListByAuthor(ctx context.Context, author primitive.ObjectID) ([]models.Analysis, error)
	ListRecentByAuthor(ctx context.Context, author primitive.ObjectID, limit int64) ([]models.Analysis, error)
	MonthlyTrend(ctx context.Context, author primitive.ObjectID, since time.Time) ([]models.MonthlyScore, error)
}

type achievementLister interface {
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Achievement, error)
}

// DashboardService assembles the dashboard payload: recent analyses,
// per-category averages, per-mode stats and the six-month score trend.
type DashboardService struct {
	analyses     dashboardAnalysisStore
	achievements achievementLister

	now func() time.Time
}

func NewDashboardService(analyses dashboardAnalysisStore, achievements achievementLister) *DashboardService {
	return &DashboardService{
		analyses:     analyses,
		achievements: achievements,
		now:          time.Now,
	}
}

// Overview builds the full dashboard for one user. A user with no
// analyses gets a complete zero-valued payload, with all six trend
// entries present at count 0.
func (s *DashboardService) Overview(ctx context.Context, userID primitive.ObjectID) (*dto.Dashboard, error) {
	recent, err := s.analyses.ListRecentByAuthor(ctx, userID, recentAnalysesLimit)
	if err != nil {
		return nil, err
	}

	all, err := s.analyses.ListByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}

	earned, err := s.achievements.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	since := monthStart(now).AddDate(0, -(trendMonths - 1), 0)
	buckets, err := s.analyses.MonthlyTrend(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	out := &dto.Dashboard{
		Analyses:     make([]dto.AnalysisDTO, 0, len(recent)),
		Achievements: make([]dto.AchievementDTO, 0, len(earned)),
		Stats:        computeStats(all),
		Trend:        fillTrend(buckets, now),
	}
	for _, a := range recent {
		out.Analyses = append(out.Analyses, dto.NewAnalysisDTO(a))
	}
	for _, a := range earned {
		out.Achievements = append(out.Achievements, dto.NewAchievementDTO(a))
	}
	return out, nil
}

// computeStats averages every category over the user's full history and
// groups overall scores by mode. Averages are rounded to two decimals.
func computeStats(all []models.Analysis) dto.DashboardStats {
	stats := dto.DashboardStats{
		TotalAnalyses: int64(len(all)),
		ModeStats:     map[string]dto.ModeStat{},
	}
	if len(all) == 0 {
		return stats
	}

	var sums models.Scores
	modeSums := map[string]float64{}
	modeCounts := map[string]int64{}
	for _, a := range all {
		sums.Style += a.Scores.Style
		sums.Grammar += a.Scores.Grammar
		sums.Creativity += a.Scores.Creativity
		sums.Clarity += a.Scores.Clarity
		sums.Relevance += a.Scores.Relevance

		modeSums[a.Mode] += a.Scores.Overall()
		modeCounts[a.Mode]++
	}

	n := float64(len(all))
	stats.AverageScores = models.Scores{
		Style:      round2(sums.Style / n),
		Grammar:    round2(sums.Grammar / n),
		Creativity: round2(sums.Creativity / n),
		Clarity:    round2(sums.Clarity / n),
		Relevance:  round2(sums.Relevance / n),
	}
	for mode, count := range modeCounts {
		stats.ModeStats[mode] = dto.ModeStat{
			Count:    count,
			AvgScore: round2(modeSums[mode] / float64(count)),
		}
	}
	return stats
}

// fillTrend expands the aggregation buckets into exactly six entries,
// oldest first, ending at the current month. Missing months get a
// zero-count entry.
func fillTrend(buckets []models.MonthlyScore, now time.Time) []dto.TrendPoint {
	byMonth := make(map[string]models.MonthlyScore, len(buckets))
	for _, b := range buckets {
		byMonth[fmt.Sprintf("%04d-%02d", b.Year, b.Month)] = b
	}

	trend := make([]dto.TrendPoint, 0, trendMonths)
	month := monthStart(now).AddDate(0, -(trendMonths - 1), 0)
	for i := 0; i < trendMonths; i++ {
		key := month.Format("2006-01")
		point := dto.TrendPoint{Date: key}
		if b, ok := byMonth[key]; ok {
			point.AvgScore = b.AvgScore
			point.Count = b.Count
		}
		trend = append(trend, point)
		month = month.AddDate(0, 1, 0)
	}
	return trend
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
