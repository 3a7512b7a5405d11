package services

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"prompt-judge/analyzer"
	"prompt-judge/dto"
	"prompt-judge/logger"
	"prompt-judge/models"
)

type modelCaller interface {
	Analyze(ctx context.Context, prompt, mode string) (*analyzer.Result, *analyzer.RequestLog, error)
}

type quotaReserver interface {
	WaitAndReserve(ctx context.Context) (bool, error)
}

type analysisInserter interface {
	Insert(ctx context.Context, a *models.Analysis) (primitive.ObjectID, error)
}

type aiLogInserter interface {
	Insert(ctx context.Context, l models.AILog) (*mongo.InsertOneResult, error)
}

// AnalysisService runs the analyze flow: validation, quota, model call,
// parsing, and conditional persistence.
type AnalysisService struct {
	caller   modelCaller
	quota    quotaReserver
	analyses analysisInserter
	aiLogs   aiLogInserter
}

func NewAnalysisService(caller modelCaller, quota quotaReserver, analyses analysisInserter, aiLogs aiLogInserter) *AnalysisService {
	return &AnalysisService{
		caller:   caller,
		quota:    quota,
		analyses: analyses,
		aiLogs:   aiLogs,
	}
}

// Analyze validates the prompt, reserves quota, calls the model and, for
// authenticated callers (author != NilObjectID), persists the result.
// A persistence failure is logged and the analysis is still returned
// with Saved false: the model call already cost tokens and the caller
// should not lose the result.
func (s *AnalysisService) Analyze(ctx context.Context, author primitive.ObjectID, prompt, mode string) (*dto.AnalysisResponse, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, ErrEmptyPrompt
	}
	if len([]rune(prompt)) > analyzer.MaxPromptChars {
		return nil, ErrPromptTooLong
	}

	ok, err := s.quota.WaitAndReserve(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrQuotaExhausted
	}

	result, reqLog, err := s.caller.Analyze(ctx, prompt, mode)
	if reqLog != nil {
		s.writeAILog(author, mode, reqLog)
	}
	if err != nil {
		return nil, err
	}

	resp := &dto.AnalysisResponse{
		Saved:        false,
		PromptResult: result.PromptResult,
		Response:     result.Response,
		Scores:       result.Scores,
		Suggestions:  result.Suggestions,
	}

	if author.IsZero() {
		return resp, nil
	}

	record := &models.Analysis{
		Author:       author,
		Prompt:       prompt,
		Mode:         mode,
		Scores:       result.Scores,
		PromptResult: result.PromptResult,
		Response:     result.Response,
		Suggestions:  result.Suggestions,
	}
	id, err := s.analyses.Insert(ctx, record)
	if err != nil {
		logger.ErrorWithFields("failed to persist analysis", logger.Fields{
			"author": author.Hex(),
			"error":  err.Error(),
		})
		return resp, nil
	}

	resp.ID = id.Hex()
	resp.Saved = true
	return resp, nil
}

// writeAILog records the model call on a detached context so a cancelled
// request still gets its usage logged.
func (s *AnalysisService) writeAILog(author primitive.ObjectID, mode string, reqLog *analyzer.RequestLog) {
	entry := models.AILog{
		Author:           author,
		Mode:             mode,
		Model:            reqLog.Model,
		PromptTokens:     reqLog.PromptTokens,
		CompletionTokens: reqLog.CompletionTokens,
		TotalTokens:      reqLog.TotalTokens,
		DurationMs:       reqLog.DurationMs,
		Success:          reqLog.Success,
		ResponseExcerpt:  reqLog.ResponseExcerpt,
		RequestedAt:      reqLog.RequestedAt,
		CompletedAt:      reqLog.CompletedAt,
	}
	if _, err := s.aiLogs.Insert(context.Background(), entry); err != nil {
		logger.WarnWithFields("failed to write ai log", logger.Fields{"error": err.Error()})
	}
}
