package analyzer_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"prompt-judge/analyzer"
	"prompt-judge/rubric"
)

func TestBuildInstructionKnownMode(t *testing.T) {
	got := analyzer.BuildInstruction("Why do cats purr?", "casual")

	assert.Contains(t, got, `Prompt: "Why do cats purr?"`)
	assert.Contains(t, got, "Mode: casual")

	r, ok := rubric.Get("casual")
	assert.True(t, ok)
	assert.Contains(t, got, r.Criteria)
	for _, ex := range r.Examples {
		assert.Contains(t, got, ex)
	}

	// strict JSON contract
	for _, key := range []string{"promptResult", "response", "scores", "suggestions"} {
		assert.Contains(t, got, key)
	}
	for _, key := range []string{"style", "grammar", "creativity", "clarity", "relevance"} {
		assert.Contains(t, got, key)
	}
	assert.Contains(t, got, "ONLY the raw JSON string")

	// strictness rule for minimal prompts
	assert.Contains(t, got, `a one-word prompt like "hi" should score below 30`)
}

// An unknown mode builds a usable instruction without mode guidance.
func TestBuildInstructionUnknownMode(t *testing.T) {
	got := analyzer.BuildInstruction("hello", "philosophical")

	assert.Contains(t, got, "Mode: philosophical")
	assert.NotContains(t, got, "Mode criteria:")
	assert.NotContains(t, got, "Strong prompts in this mode")
	assert.Contains(t, got, "promptResult")
}

func TestBuildInstructionIsPure(t *testing.T) {
	a := analyzer.BuildInstruction("same prompt", "technical")
	b := analyzer.BuildInstruction("same prompt", "technical")
	assert.Equal(t, a, b)
}

func TestBuildInstructionEmbedsWeights(t *testing.T) {
	got := analyzer.BuildInstruction("p", "technical")
	r, _ := rubric.Get("technical")
	assert.Contains(t, got, "Category weights")
	assert.Contains(t, got, fmt.Sprintf("- clarity: %.2f", r.Weights.Clarity))
	assert.Contains(t, got, fmt.Sprintf("- relevance: %.2f", r.Weights.Relevance))
}
