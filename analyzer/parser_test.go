package analyzer_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prompt-judge/analyzer"
	"prompt-judge/models"
)

const validBody = `{
	"promptResult": "The sky appears blue because of Rayleigh scattering.",
	"response": "Strengths: clear question. Areas for improvement: add desired depth.",
	"scores": {"style": 55, "grammar": 70, "creativity": 40, "clarity": 65, "relevance": 60},
	"suggestions": ["State the target audience", "Ask for an analogy"]
}`

func parseKind(t *testing.T, err error) *analyzer.ParseError {
	t.Helper()
	var pe *analyzer.ParseError
	require.True(t, errors.As(err, &pe), "expected ParseError, got %v", err)
	return pe
}

func TestParseResponseCleanJSON(t *testing.T) {
	res, err := analyzer.ParseResponse(validBody)
	require.NoError(t, err)

	assert.Equal(t, "The sky appears blue because of Rayleigh scattering.", res.PromptResult)
	assert.Equal(t, 55.0, res.Scores.Style)
	assert.Equal(t, 70.0, res.Scores.Grammar)
	assert.Equal(t, 40.0, res.Scores.Creativity)
	assert.Equal(t, 65.0, res.Scores.Clarity)
	assert.Equal(t, 60.0, res.Scores.Relevance)
	assert.Equal(t, []string{"State the target audience", "Ask for an analogy"}, res.Suggestions)
}

// Parsing the marshalled form of a valid result must reproduce it.
func TestParseResponseIdempotent(t *testing.T) {
	orig := &analyzer.Result{
		PromptResult: "answer",
		Response:     "analysis",
		Scores:       models.Scores{Style: 10, Grammar: 20, Creativity: 30, Clarity: 40, Relevance: 50},
		Suggestions:  []string{"a", "b"},
	}
	data, err := json.Marshal(orig)
	require.NoError(t, err)

	again, err := analyzer.ParseResponse(string(data))
	require.NoError(t, err)
	assert.Equal(t, orig, again)
}

func TestParseResponseSurroundingProse(t *testing.T) {
	wrapped := "Here is the result:\n```json\n" + validBody + "\n```\nHope this helps!"
	fromWrapped, err := analyzer.ParseResponse(wrapped)
	require.NoError(t, err)

	fromClean, err := analyzer.ParseResponse(validBody)
	require.NoError(t, err)

	assert.Equal(t, fromClean, fromWrapped)
}

func TestParseResponseStrayLanguageToken(t *testing.T) {
	res, err := analyzer.ParseResponse("JSON\n" + validBody)
	require.NoError(t, err)
	assert.Equal(t, 55.0, res.Scores.Style)
}

func TestParseResponseNestedBracesInFreeText(t *testing.T) {
	body := `{
		"promptResult": "Use a map like {\"key\": 1} for lookups.",
		"response": "The prompt mentions {braces} in passing.",
		"scores": {"style": 50, "grammar": 50, "creativity": 50, "clarity": 50, "relevance": 50},
		"suggestions": []
	}`
	res, err := analyzer.ParseResponse(body)
	require.NoError(t, err)
	assert.Contains(t, res.PromptResult, `{"key": 1}`)
	assert.Empty(t, res.Suggestions)
	assert.NotNil(t, res.Suggestions)
}

func TestParseResponseNoJSON(t *testing.T) {
	for _, raw := range []string{"", "no braces at all", "only } closing", "only { opening"} {
		_, err := analyzer.ParseResponse(raw)
		pe := parseKind(t, err)
		assert.Equal(t, analyzer.NoJSONFound, pe.Kind, "input %q", raw)
	}
}

func TestParseResponseMalformedJSON(t *testing.T) {
	_, err := analyzer.ParseResponse(`{"promptResult": "x", trailing garbage}`)
	pe := parseKind(t, err)
	assert.Equal(t, analyzer.MalformedJSON, pe.Kind)
}

// Prose after the payload that itself contains a closing brace widens
// the extracted span past the JSON end; that is reported as malformed.
func TestParseResponseTrailingBraceProse(t *testing.T) {
	_, err := analyzer.ParseResponse(validBody + "\nP.S. beware of stray } in prose")
	pe := parseKind(t, err)
	assert.Equal(t, analyzer.MalformedJSON, pe.Kind)
}

func TestParseResponseMissingFields(t *testing.T) {
	cases := []struct {
		name  string
		body  string
		field string
	}{
		{
			name:  "missing suggestions",
			body:  `{"promptResult": "x", "response": "y", "scores": {"style": 1, "grammar": 1, "creativity": 1, "clarity": 1, "relevance": 1}}`,
			field: "suggestions",
		},
		{
			name:  "missing promptResult",
			body:  `{"response": "y", "scores": {}, "suggestions": []}`,
			field: "promptResult",
		},
		{
			name:  "missing response",
			body:  `{"promptResult": "x", "scores": {}, "suggestions": []}`,
			field: "response",
		},
		{
			name:  "missing scores",
			body:  `{"promptResult": "x", "response": "y", "suggestions": []}`,
			field: "scores",
		},
		{
			name:  "suggestions not a list",
			body:  `{"promptResult": "x", "response": "y", "scores": {}, "suggestions": "improve it"}`,
			field: "suggestions",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := analyzer.ParseResponse(tc.body)
			pe := parseKind(t, err)
			assert.Equal(t, analyzer.MissingField, pe.Kind)
			assert.Equal(t, tc.field, pe.Field)
		})
	}
}

func TestParseResponseScoresNotAnObject(t *testing.T) {
	_, err := analyzer.ParseResponse(`{"promptResult": "x", "response": "y", "scores": [1, 2, 3], "suggestions": []}`)
	pe := parseKind(t, err)
	assert.Equal(t, analyzer.InvalidScore, pe.Kind)
	assert.Equal(t, "scores", pe.Field)
}

// Individual scores that are missing or non-numeric default to 0, and
// numeric values are clamped; the result is always within [0,100].
func TestParseResponseScorePolicy(t *testing.T) {
	body := `{
		"promptResult": "x",
		"response": "y",
		"scores": {"style": 150, "grammar": -10, "creativity": "high", "clarity": 65.5},
		"suggestions": []
	}`
	res, err := analyzer.ParseResponse(body)
	require.NoError(t, err)

	assert.Equal(t, 100.0, res.Scores.Style)    // clamped down
	assert.Equal(t, 0.0, res.Scores.Grammar)    // clamped up
	assert.Equal(t, 0.0, res.Scores.Creativity) // non-numeric
	assert.Equal(t, 65.5, res.Scores.Clarity)
	assert.Equal(t, 0.0, res.Scores.Relevance) // absent

	for _, v := range []float64{res.Scores.Style, res.Scores.Grammar, res.Scores.Creativity, res.Scores.Clarity, res.Scores.Relevance} {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 100.0)
	}
}

func TestParseResponseEmptyScoresObject(t *testing.T) {
	body := `{"promptResult": "x", "response": "y", "scores": {}, "suggestions": []}`
	res, err := analyzer.ParseResponse(body)
	require.NoError(t, err)
	assert.Equal(t, models.Scores{}, res.Scores)
}

func TestParseErrorMessage(t *testing.T) {
	_, err := analyzer.ParseResponse("nothing here")
	assert.ErrorContains(t, err, "no_json_found")

	_, err = analyzer.ParseResponse(`{"response": "y", "scores": {}, "suggestions": []}`)
	assert.ErrorContains(t, err, "promptResult")
}
