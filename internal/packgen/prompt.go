package packgen

import (
	"fmt"
	"strings"
)

const packSystemPrompt = `You are a medical educator creating study material for medical students and junior doctors.

Rules:
- Build a complete study pack for the given topic: a structured lesson, a standard quiz, an exam-style quiz, fill-in-the-blank exercises, and a glossary.
- When source material is provided, ground every fact in it. Do not invent content that contradicts the source.
- The lesson should progress from fundamentals to clinically relevant detail. Use headings to structure it, lists for enumerable facts, and tables for comparisons (drug classes, lab values, differentials).
- Standard quiz questions test recall and understanding. Exam-style questions are clinical vignettes in the register of licensing exams.
- Every question's correct_answers entries must repeat option texts verbatim. Most questions have one correct answer; use several only for genuine select-all-that-apply questions.
- Distractors should reflect plausible clinical confusions, not random terms.
- Each fill-in-the-blank sentence contains exactly one ___ placeholder.
- Use plain text throughout. No markdown syntax inside field values.`

const questionsSystemPrompt = `You are a medical educator writing additional quiz questions for an existing study pack.

Rules:
- Generate exactly the requested number of questions on the given topic.
- Do not repeat or trivially rephrase any question from the "already present" list.
- Every question's correct_answers entries must repeat option texts verbatim.
- Exam-style questions are clinical vignettes; standard questions test recall and understanding.
- Distractors should reflect plausible clinical confusions, not random terms.`

// buildPackUserMessage constructs the user message for full pack generation.
func buildPackUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Topic: %s\n", input.Topic)

	if input.SourceText != "" {
		src := input.SourceText
		if cfg.MaxSourceChars > 0 && len(src) > cfg.MaxSourceChars {
			src = src[:cfg.MaxSourceChars]
		}
		b.WriteString("\nSource material:\n")
		b.WriteString(src)
		b.WriteString("\n")
	}
	return b.String()
}

// buildQuestionsUserMessage constructs the user message for generate-more.
func buildQuestionsUserMessage(input QuestionsInput, cfg Config) string {
	style := "standard"
	if input.Exam {
		style = "exam-style clinical vignette"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Topic: %s\n", input.Topic)
	fmt.Fprintf(&b, "Count: %d\n", input.Count)
	fmt.Fprintf(&b, "Style: %s\n", style)

	b.WriteString("\nAlready present in this pack:\n")
	b.WriteString(buildDedup(input.PriorQuestions, cfg.MaxPriorQuestions))
	return b.String()
}

// buildDedup formats prior question texts for the prompt, keeping only the
// most recent N when over the limit.
func buildDedup(prior []string, max int) string {
	if len(prior) == 0 {
		return "None"
	}
	if max > 0 && len(prior) > max {
		prior = prior[len(prior)-max:]
	}

	var b strings.Builder
	for i, q := range prior {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}
