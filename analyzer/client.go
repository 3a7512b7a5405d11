package analyzer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"google.golang.org/genai"

	"prompt-judge/config"
)

// ErrTimeout marks a model call that exceeded the configured deadline.
// Callers report it as service-unavailable rather than a generic failure.
var ErrTimeout = errors.New("model call timed out")

const defaultTimeout = 45 * time.Second

const SYSTEM_INSTRUCTION = `
You are a prompt evaluation assistant. You judge the quality of prompts
written for AI models and answer them directly.
The response MUST be a single valid JSON object with exactly four keys:
promptResult, response, scores, suggestions.
You MUST NOT wrap the JSON output in a markdown code block (e.g. ` + "```json ... ```" + `).
The response should contain ONLY the raw JSON string.
`

// RequestLog captures one model call for the ai_logs collection.
type RequestLog struct {
	Model            string
	PromptTokens     int64
	CompletionTokens int64
	TotalTokens      int64
	DurationMs       int64
	Success          bool
	ResponseExcerpt  string
	RequestedAt      time.Time
	CompletedAt      time.Time
}

// Client wraps the generative-AI API for prompt analysis.
type Client struct {
	genai   *genai.Client
	model   string
	timeout time.Duration
}

// NewClientFromEnv builds a Client from GEMINI_API_KEY and the gemini
// section of config.yaml. A missing API key fails here, at startup, so
// it can never silently produce empty scores later.
func NewClientFromEnv(ctx context.Context) (*Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is not set")
	}

	cl, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, err
	}

	cfg := config.GetConfig().Gemini
	timeout := defaultTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}

	return &Client{genai: cl, model: cfg.Model, timeout: timeout}, nil
}

// Model returns the configured model name.
func (c *Client) Model() string { return c.model }

// Analyze sends the instruction built for (prompt, mode) to the model
// and parses the response. The returned RequestLog is non-nil whenever
// the call itself completed, even if parsing failed afterwards.
func (c *Client) Analyze(ctx context.Context, prompt, mode string) (*Result, *RequestLog, error) {
	instruction := BuildInstruction(prompt, mode)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	reqLog := &RequestLog{Model: c.model, RequestedAt: time.Now()}

	result, err := c.genai.Models.GenerateContent(
		ctx,
		c.model,
		genai.Text(instruction),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: SYSTEM_INSTRUCTION}}},
		},
	)
	reqLog.CompletedAt = time.Now()
	reqLog.DurationMs = reqLog.CompletedAt.Sub(reqLog.RequestedAt).Milliseconds()
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
			return nil, reqLog, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return nil, reqLog, err
	}

	raw := result.Text()
	reqLog.ResponseExcerpt = truncate(raw, 200)
	if result.UsageMetadata != nil {
		reqLog.PromptTokens = int64(result.UsageMetadata.PromptTokenCount)
		reqLog.CompletionTokens = int64(result.UsageMetadata.CandidatesTokenCount)
		reqLog.TotalTokens = int64(result.UsageMetadata.TotalTokenCount)
	}

	parsed, err := ParseResponse(raw)
	if err != nil {
		return nil, reqLog, err
	}

	reqLog.Success = true
	return parsed, reqLog, nil
}

// truncate returns s truncated to max runes.
func truncate(s string, max int) string {
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	return string(rs[:max])
}
