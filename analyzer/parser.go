package analyzer

import (
	"encoding/json"
	"fmt"
	"strings"

	"prompt-judge/models"
)

// ParseErrorKind classifies why a model response could not be reduced to
// a valid analysis result.
type ParseErrorKind string

const (
	// NoJSONFound means the cleaned response contains no '{' ... '}' span.
	NoJSONFound ParseErrorKind = "no_json_found"
	// MalformedJSON means the extracted span is not syntactically valid JSON.
	MalformedJSON ParseErrorKind = "malformed_json"
	// MissingField means a required top-level field is absent or has the
	// wrong shape.
	MissingField ParseErrorKind = "missing_field"
	// InvalidScore means the scores field is present but not a JSON object.
	InvalidScore ParseErrorKind = "invalid_score"
)

// ParseError reports a response that failed validation. The raw model
// text is logged by the caller; the error itself stays small.
type ParseError struct {
	Kind  ParseErrorKind
	Field string
	cause error
}

func (e *ParseError) Error() string {
	switch {
	case e.Field != "" && e.cause != nil:
		return fmt.Sprintf("parse analysis response: %s (%s): %v", e.Kind, e.Field, e.cause)
	case e.Field != "":
		return fmt.Sprintf("parse analysis response: %s (%s)", e.Kind, e.Field)
	case e.cause != nil:
		return fmt.Sprintf("parse analysis response: %s: %v", e.Kind, e.cause)
	default:
		return fmt.Sprintf("parse analysis response: %s", e.Kind)
	}
}

func (e *ParseError) Unwrap() error { return e.cause }

// Result is the validated shape of a model analysis response.
type Result struct {
	PromptResult string        `json:"promptResult"`
	Response     string        `json:"response"`
	Scores       models.Scores `json:"scores"`
	Suggestions  []string      `json:"suggestions"`
}

var requiredScoreKeys = []string{"style", "grammar", "creativity", "clarity", "relevance"}

// ParseResponse extracts a validated Result from the raw model text.
//
// The model output is treated as hostile input: markdown fences and a
// stray leading language token are stripped, the JSON payload is located
// between the first '{' and the last '}' (tolerating surrounding prose),
// and the shape is validated exhaustively. All four top-level fields
// must be present and `scores` must be a JSON object; an individual
// score that is missing or not numeric defaults to 0, and numeric
// values are clamped to [0,100]. Scores in the returned Result are
// therefore always within [0,100].
func ParseResponse(raw string) (*Result, error) {
	cleaned := stripMarkdown(raw)

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start < 0 || end < 0 || end < start {
		return nil, &ParseError{Kind: NoJSONFound}
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &payload); err != nil {
		return nil, &ParseError{Kind: MalformedJSON, cause: err}
	}

	res := &Result{}

	for _, field := range []string{"promptResult", "response", "scores", "suggestions"} {
		if _, ok := payload[field]; !ok {
			return nil, &ParseError{Kind: MissingField, Field: field}
		}
	}

	// A wrong-typed string field is treated the same as an absent one.
	if err := json.Unmarshal(payload["promptResult"], &res.PromptResult); err != nil {
		return nil, &ParseError{Kind: MissingField, Field: "promptResult", cause: err}
	}
	if err := json.Unmarshal(payload["response"], &res.Response); err != nil {
		return nil, &ParseError{Kind: MissingField, Field: "response", cause: err}
	}
	if err := json.Unmarshal(payload["suggestions"], &res.Suggestions); err != nil {
		return nil, &ParseError{Kind: MissingField, Field: "suggestions", cause: err}
	}
	if res.Suggestions == nil {
		res.Suggestions = []string{}
	}

	var rawScores map[string]json.RawMessage
	if err := json.Unmarshal(payload["scores"], &rawScores); err != nil || rawScores == nil {
		return nil, &ParseError{Kind: InvalidScore, Field: "scores", cause: err}
	}

	scores := make(map[string]float64, len(requiredScoreKeys))
	for _, key := range requiredScoreKeys {
		var v float64
		if rawMsg, ok := rawScores[key]; ok {
			if err := json.Unmarshal(rawMsg, &v); err != nil {
				v = 0
			}
		}
		scores[key] = clampScore(v)
	}
	res.Scores = models.Scores{
		Style:      scores["style"],
		Grammar:    scores["grammar"],
		Creativity: scores["creativity"],
		Clarity:    scores["clarity"],
		Relevance:  scores["relevance"],
	}

	return res, nil
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// stripMarkdown removes code-fence markers and a stray leading language
// token the model sometimes emits despite being told not to.
func stripMarkdown(raw string) string {
	s := strings.ReplaceAll(raw, "```json", "\n")
	s = strings.ReplaceAll(s, "```JSON", "\n")
	s = strings.ReplaceAll(s, "```", "\n")
	s = strings.TrimSpace(s)
	for _, prefix := range []string{"json", "JSON"} {
		if rest, ok := strings.CutPrefix(s, prefix); ok {
			s = strings.TrimSpace(rest)
			break
		}
	}
	return s
}
