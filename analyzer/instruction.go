// Package analyzer builds the model instruction for a prompt analysis and
// parses the model's raw text response into a validated result.
package analyzer

import (
	"fmt"
	"strings"

	"prompt-judge/rubric"
)

// MaxPromptChars is the longest user prompt accepted for analysis.
// Callers validate against it before building an instruction.
const MaxPromptChars = 1000

// BuildInstruction composes the full textual instruction sent to the
// model: a direct answer request, a structured analysis against the
// mode's weighted criteria, and a strict JSON contract. Pure string
// construction; no network call happens here.
//
// An unknown mode is not an error: the instruction is built without
// mode-specific criteria or examples.
func BuildInstruction(prompt, mode string) string {
	var b strings.Builder

	b.WriteString("Analyze the following prompt and provide a comprehensive evaluation.\n\n")
	fmt.Fprintf(&b, "Prompt: %q\n", prompt)
	fmt.Fprintf(&b, "Mode: %s\n\n", mode)

	if r, ok := rubric.Get(mode); ok {
		fmt.Fprintf(&b, "Mode criteria: %s\n\n", r.Criteria)
		b.WriteString("Category weights for the overall evaluation:\n")
		fmt.Fprintf(&b, "- style: %.2f\n", r.Weights.Style)
		fmt.Fprintf(&b, "- grammar: %.2f\n", r.Weights.Grammar)
		fmt.Fprintf(&b, "- creativity: %.2f\n", r.Weights.Creativity)
		fmt.Fprintf(&b, "- clarity: %.2f\n", r.Weights.Clarity)
		fmt.Fprintf(&b, "- relevance: %.2f\n\n", r.Weights.Relevance)
		b.WriteString("Strong prompts in this mode look like:\n")
		for _, ex := range r.Examples {
			fmt.Fprintf(&b, "- %s\n", ex)
		}
		b.WriteString("\n")
	}

	b.WriteString("Provide:\n")
	b.WriteString("1. A direct answer to the prompt, exactly as if the prompt had been sent to you.\n")
	b.WriteString("2. A detailed analysis of the prompt: strengths, areas for improvement, and fit for the chosen mode.\n")
	b.WriteString("3. A score from 0 to 100 for each category using the bands below.\n")
	b.WriteString("4. Specific, actionable improvement suggestions. No placeholders.\n\n")

	b.WriteString("IMPORTANT: Be very strict with scoring. A simple or minimal prompt should receive low scores.\n")
	b.WriteString("For example, a one-word prompt like \"hi\" should score below 30 in most categories.\n\n")

	b.WriteString(rubric.ScoringBands)
	b.WriteString("\n\n")

	b.WriteString("The response MUST be a single valid JSON object with exactly these keys:\n")
	b.WriteString("{\n")
	b.WriteString("  \"promptResult\": \"<the direct answer to the prompt>\",\n")
	b.WriteString("  \"response\": \"<the detailed analysis>\",\n")
	b.WriteString("  \"scores\": {\"style\": 0, \"grammar\": 0, \"creativity\": 0, \"clarity\": 0, \"relevance\": 0},\n")
	b.WriteString("  \"suggestions\": [\"<suggestion>\", \"...\"]\n")
	b.WriteString("}\n")
	b.WriteString("Do NOT wrap the JSON in a markdown code block. The response must contain ONLY the raw JSON string.\n")

	return b.String()
}
