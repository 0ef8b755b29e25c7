package packgen

// Config controls the behavior of the Generator.
type Config struct {
	// MaxTokens is the token budget for a full pack response.
	MaxTokens int

	// QuestionMaxTokens is the token budget for a generate-more response.
	QuestionMaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxPriorQuestions caps how many existing question texts go into a
	// generate-more prompt for deduplication.
	MaxPriorQuestions int

	// MaxSourceChars truncates pasted source material before prompting.
	MaxSourceChars int
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:         8192,
		QuestionMaxTokens: 2048,
		Temperature:       0.7,
		MaxPriorQuestions: 30,
		MaxSourceChars:    24000,
	}
}
