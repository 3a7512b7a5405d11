package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"prompt-judge/analyzer"
	"prompt-judge/models"
)

type fakeModelCaller struct {
	result *analyzer.Result
	reqLog *analyzer.RequestLog
	err    error

	calls int
}

func (f *fakeModelCaller) Analyze(_ context.Context, _, _ string) (*analyzer.Result, *analyzer.RequestLog, error) {
	f.calls++
	return f.result, f.reqLog, f.err
}

type fakeQuota struct {
	allowed bool
	err     error
}

func (f *fakeQuota) WaitAndReserve(_ context.Context) (bool, error) {
	return f.allowed, f.err
}

type fakeAnalysisInserter struct {
	inserted []models.Analysis
	err      error
}

func (f *fakeAnalysisInserter) Insert(_ context.Context, a *models.Analysis) (primitive.ObjectID, error) {
	if f.err != nil {
		return primitive.NilObjectID, f.err
	}
	id := primitive.NewObjectID()
	a.ID = id
	f.inserted = append(f.inserted, *a)
	return id, nil
}

type fakeAILogInserter struct {
	logs []models.AILog
}

func (f *fakeAILogInserter) Insert(_ context.Context, l models.AILog) (*mongo.InsertOneResult, error) {
	f.logs = append(f.logs, l)
	return &mongo.InsertOneResult{}, nil
}

func newAnalysisFixture() (*AnalysisService, *fakeModelCaller, *fakeQuota, *fakeAnalysisInserter, *fakeAILogInserter) {
	caller := &fakeModelCaller{
		result: &analyzer.Result{
			PromptResult: "Solid prompt.",
			Response:     "Here is the answer.",
			Scores:       models.Scores{Style: 70, Grammar: 80, Creativity: 60, Clarity: 75, Relevance: 85},
			Suggestions:  []string{"add context"},
		},
		reqLog: &analyzer.RequestLog{Model: "test-model", TotalTokens: 42, Success: true},
	}
	quota := &fakeQuota{allowed: true}
	analyses := &fakeAnalysisInserter{}
	aiLogs := &fakeAILogInserter{}
	svc := NewAnalysisService(caller, quota, analyses, aiLogs)
	return svc, caller, quota, analyses, aiLogs
}

func TestAnalyzeEmptyPrompt(t *testing.T) {
	svc, caller, _, _, _ := newAnalysisFixture()

	for _, prompt := range []string{"", "   ", "\n\t"} {
		_, err := svc.Analyze(context.Background(), primitive.NewObjectID(), prompt, models.ModeCasual)
		assert.ErrorIs(t, err, ErrEmptyPrompt)
	}
	assert.Zero(t, caller.calls)
}

func TestAnalyzePromptTooLong(t *testing.T) {
	svc, caller, _, _, _ := newAnalysisFixture()

	prompt := strings.Repeat("a", analyzer.MaxPromptChars+1)
	_, err := svc.Analyze(context.Background(), primitive.NewObjectID(), prompt, models.ModeCasual)
	assert.ErrorIs(t, err, ErrPromptTooLong)
	assert.Zero(t, caller.calls)
}

func TestAnalyzePromptAtLimitAccepted(t *testing.T) {
	svc, _, _, _, _ := newAnalysisFixture()

	prompt := strings.Repeat("a", analyzer.MaxPromptChars)
	resp, err := svc.Analyze(context.Background(), primitive.NewObjectID(), prompt, models.ModeCasual)
	require.NoError(t, err)
	assert.True(t, resp.Saved)
}

func TestAnalyzeQuotaExhaustedSkipsModelCall(t *testing.T) {
	svc, caller, quota, _, _ := newAnalysisFixture()
	quota.allowed = false

	_, err := svc.Analyze(context.Background(), primitive.NewObjectID(), "write a haiku", models.ModeCreative)
	assert.ErrorIs(t, err, ErrQuotaExhausted)
	assert.Zero(t, caller.calls)
}

func TestAnalyzeAuthenticatedPersists(t *testing.T) {
	svc, _, _, analyses, aiLogs := newAnalysisFixture()
	author := primitive.NewObjectID()

	resp, err := svc.Analyze(context.Background(), author, "  write a haiku  ", models.ModeCreative)
	require.NoError(t, err)

	assert.True(t, resp.Saved)
	assert.NotEmpty(t, resp.ID)
	require.Len(t, analyses.inserted, 1)
	assert.Equal(t, author, analyses.inserted[0].Author)
	assert.Equal(t, "write a haiku", analyses.inserted[0].Prompt)
	assert.Equal(t, models.ModeCreative, analyses.inserted[0].Mode)

	require.Len(t, aiLogs.logs, 1)
	assert.Equal(t, "test-model", aiLogs.logs[0].Model)
	assert.Equal(t, int64(42), aiLogs.logs[0].TotalTokens)
}

func TestAnalyzeAnonymousNotPersisted(t *testing.T) {
	svc, _, _, analyses, _ := newAnalysisFixture()

	resp, err := svc.Analyze(context.Background(), primitive.NilObjectID, "write a haiku", models.ModeCreative)
	require.NoError(t, err)

	assert.False(t, resp.Saved)
	assert.Empty(t, resp.ID)
	assert.Empty(t, analyses.inserted)
	assert.Equal(t, 70.0, resp.Scores.Style)
}

func TestAnalyzePersistFailureStillReturnsResult(t *testing.T) {
	svc, _, _, analyses, _ := newAnalysisFixture()
	analyses.err = errors.New("write conflict")

	resp, err := svc.Analyze(context.Background(), primitive.NewObjectID(), "write a haiku", models.ModeCreative)
	require.NoError(t, err)
	assert.False(t, resp.Saved)
	assert.Equal(t, "Here is the answer.", resp.Response)
}

func TestAnalyzeModelErrorPropagates(t *testing.T) {
	svc, caller, _, analyses, aiLogs := newAnalysisFixture()
	caller.result = nil
	caller.err = analyzer.ErrTimeout

	_, err := svc.Analyze(context.Background(), primitive.NewObjectID(), "write a haiku", models.ModeCreative)
	assert.ErrorIs(t, err, analyzer.ErrTimeout)
	assert.Empty(t, analyses.inserted)

	// the call itself completed, so its usage is still logged
	assert.Len(t, aiLogs.logs, 1)
}
