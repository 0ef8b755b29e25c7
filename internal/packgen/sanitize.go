package packgen

import (
	"github.com/google/uuid"

	"github.com/arnavsud/stethoquest/internal/profile"
)

// sanitizeQuestions maps raw LLM questions to domain questions, silently
// dropping any item that fails the structural checks: non-empty stem, at
// least two options, and correct_answers forming a non-empty subset of the
// options.
func sanitizeQuestions(raw []questionOut) []profile.QuizQuestion {
	out := make([]profile.QuizQuestion, 0, len(raw))
	for _, q := range raw {
		if q.Question == "" || len(q.Options) < 2 || len(q.CorrectAnswers) == 0 {
			continue
		}
		if !subsetOf(q.CorrectAnswers, q.Options) {
			continue
		}
		out = append(out, profile.QuizQuestion{
			ID:             uuid.New().String(),
			Question:       q.Question,
			Options:        q.Options,
			CorrectAnswers: q.CorrectAnswers,
			Difficulty:     parseDifficulty(q.Difficulty),
			Explanation:    q.Explanation,
		})
	}
	return out
}

func subsetOf(sub, super []string) bool {
	set := make(map[string]bool, len(super))
	for _, s := range super {
		set[s] = true
	}
	for _, s := range sub {
		if !set[s] {
			return false
		}
	}
	return true
}

// parseDifficulty maps the LLM enum to a Difficulty, defaulting unknown
// values to medium.
func parseDifficulty(s string) profile.Difficulty {
	switch profile.Difficulty(s) {
	case profile.DifficultyEasy:
		return profile.DifficultyEasy
	case profile.DifficultyHard:
		return profile.DifficultyHard
	default:
		return profile.DifficultyMedium
	}
}

// sanitizeLesson drops blocks with no usable content for their kind.
func sanitizeLesson(raw []lessonBlockOut) []profile.LessonBlock {
	out := make([]profile.LessonBlock, 0, len(raw))
	for _, b := range raw {
		switch b.Kind {
		case "heading", "text":
			if b.Text == "" {
				continue
			}
		case "list":
			if len(b.Items) == 0 {
				continue
			}
		case "table":
			if len(b.Rows) == 0 {
				continue
			}
		default:
			continue
		}
		out = append(out, profile.LessonBlock{
			Kind:    b.Kind,
			Text:    b.Text,
			Items:   b.Items,
			Headers: b.Headers,
			Rows:    b.Rows,
		})
	}
	return out
}

// sanitizeFillBlanks keeps only items whose sentence actually contains the
// placeholder and whose answer is non-empty.
func sanitizeFillBlanks(raw []fillBlankOut) []profile.FillBlankItem {
	out := make([]profile.FillBlankItem, 0, len(raw))
	for _, f := range raw {
		if f.Answer == "" || !containsBlank(f.Sentence) {
			continue
		}
		out = append(out, profile.FillBlankItem{
			ID:       uuid.New().String(),
			Sentence: f.Sentence,
			Answer:   f.Answer,
		})
	}
	return out
}

func containsBlank(s string) bool {
	for i := 0; i+3 <= len(s); i++ {
		if s[i:i+3] == "___" {
			return true
		}
	}
	return false
}

func sanitizeGlossary(raw []glossaryItemOut) []profile.GlossaryItem {
	out := make([]profile.GlossaryItem, 0, len(raw))
	for _, g := range raw {
		if g.Term == "" || g.Definition == "" {
			continue
		}
		out = append(out, profile.GlossaryItem{Term: g.Term, Definition: g.Definition})
	}
	return out
}
