// Package rubric holds the static per-mode scoring configuration used to
// build analysis instructions. The table is built once at process start
// and is read-only afterwards, so it is safe for concurrent use.
package rubric

// Weights are the per-category contribution of each score to the overall
// evaluation. The five fields sum to 1.0 for every mode.
type Weights struct {
	Style      float64
	Grammar    float64
	Creativity float64
	Clarity    float64
	Relevance  float64
}

// Rubric describes how prompts in one mode are judged.
type Rubric struct {
	// Criteria is a one-paragraph description of what the mode rewards.
	Criteria string

	// Weights of the five score categories, summing to 1.0.
	Weights Weights

	// Examples are 2-3 sample prompts shown to the user as guidance.
	Examples []string

	// Template is a multi-section skeleton guiding the user's own
	// prompt structure.
	Template string
}

// ScoringBands is the 0-100 band description shared by all modes. The
// model is told to be strict: a minimal prompt like "hi" must land in
// the lowest bands.
const ScoringBands = `Style (Score: X/100):
- 0-20: Minimal effort, single words, or basic greetings
- 21-40: Basic phrases with little style consideration
- 41-60: Clear writing with some style elements
- 61-80: Well-crafted with consistent tone and good expression
- 81-100: Exceptional writing with masterful style

Grammar (Score: X/100):
- 0-20: Incomplete sentences or single words
- 21-40: Basic complete sentences with potential errors
- 41-60: Proper sentences with standard grammar
- 61-80: Well-structured with varied sentence patterns
- 81-100: Perfect grammar with sophisticated structure

Creativity (Score: X/100):
- 0-20: Common words/phrases, no creative elements
- 21-40: Basic creative attempt
- 41-60: Some original elements
- 61-80: Unique and engaging approach
- 81-100: Highly innovative and original

Clarity (Score: X/100):
- 0-20: Unclear or too brief to convey meaning
- 21-40: Basic meaning conveyed but lacks detail
- 41-60: Clear meaning with adequate detail
- 61-80: Very clear with good detail and organization
- 81-100: Exceptionally clear and well-organized

Relevance (Score: X/100):
- 0-20: Minimal relevance to mode or purpose
- 21-40: Basic relevance but lacks focus
- 41-60: Relevant with room for improvement
- 61-80: Well-aligned with mode and purpose
- 81-100: Perfectly aligned with exceptional focus`

var rubrics = map[string]Rubric{
	"casual": {
		Criteria: "Friendly, informal prompts for everyday questions. Rewards an approachable tone, simple wording, and questions a layperson would actually ask.",
		Weights: Weights{
			Style:      0.25,
			Grammar:    0.15,
			Creativity: 0.20,
			Clarity:    0.25,
			Relevance:  0.15,
		},
		Examples: []string{
			"Explain why the sky is blue in simple terms",
			"What makes ice cream so delicious?",
			"Why do cats purr?",
		},
		Template: `Topic: what you are curious about
Tone: friendly and informal
Ask: one clear question, in plain words
Extra: any detail that narrows the answer down`,
	},
	"technical": {
		Criteria: "Precise prompts requesting detailed technical explanations. Rewards correct terminology, explicit scope, and a clearly stated depth of detail.",
		Weights: Weights{
			Style:      0.15,
			Grammar:    0.20,
			Creativity: 0.10,
			Clarity:    0.30,
			Relevance:  0.25,
		},
		Examples: []string{
			"Explain the principles of quantum computing",
			"How does blockchain technology work?",
			"Describe the process of photosynthesis in detail",
		},
		Template: `Subject: the system or concept to explain
Scope: which aspects to cover and which to skip
Depth: target audience and level of detail
Format: structure of the expected answer (steps, diagram, comparison)`,
	},
	"creative": {
		Criteria: "Imaginative prompts for stories and invented worlds. Rewards originality, vivid constraints, and an evocative premise.",
		Weights: Weights{
			Style:      0.20,
			Grammar:    0.10,
			Creativity: 0.35,
			Clarity:    0.15,
			Relevance:  0.20,
		},
		Examples: []string{
			"Write a story about a time-traveling coffee cup",
			"Describe a world where colors have sounds",
			"Create a tale about a library that comes alive at night",
		},
		Template: `Premise: the world or character at the center
Twist: the unusual element that makes it yours
Mood: the feeling the piece should leave behind
Constraints: length, perspective, or style limits`,
	},
}

// Get returns the rubric for a mode. Unknown modes return ok=false with a
// zero rubric; the mode is advisory, so callers proceed without guidance
// rather than failing.
func Get(mode string) (Rubric, bool) {
	r, ok := rubrics[mode]
	return r, ok
}

// Modes returns the known mode names.
func Modes() []string {
	out := make([]string, 0, len(rubrics))
	for m := range rubrics {
		out = append(out, m)
	}
	return out
}

// PromptTemplate returns the structure template for a mode, or the empty
// string when the mode is unknown.
func PromptTemplate(mode string) string {
	return rubrics[mode].Template
}

// Examples returns the example prompts for a mode, or nil when the mode
// is unknown.
func Examples(mode string) []string {
	return rubrics[mode].Examples
}
