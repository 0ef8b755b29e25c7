package profile

import (
	"math"
	"time"
)

// Difficulty is the difficulty tier of a quiz question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// QuizVariant selects which of a pack's two quiz collections a session
// operates on. Both variants share identical session mechanics.
type QuizVariant string

const (
	VariantStandard QuizVariant = "standard"
	VariantExam     QuizVariant = "exam"
)

// QuizQuestion is a single generated quiz item. CorrectAnswers is always a
// non-empty subset of Options (enforced at generation time).
type QuizQuestion struct {
	ID             string     `json:"id"`
	Question       string     `json:"question"`
	Options        []string   `json:"options"`
	CorrectAnswers []string   `json:"correctAnswers"`
	Difficulty     Difficulty `json:"difficulty"`
	Explanation    string     `json:"explanation,omitempty"`
}

// LessonBlock is one typed section of generated lesson content.
type LessonBlock struct {
	Kind     string     `json:"kind"` // "heading", "text", "list", "table"
	Text     string     `json:"text,omitempty"`
	Items    []string   `json:"items,omitempty"`
	Headers  []string   `json:"headers,omitempty"`
	Rows     [][]string `json:"rows,omitempty"`
}

// FillBlankItem is a fill-in-the-blank exercise.
type FillBlankItem struct {
	ID       string `json:"id"`
	Sentence string `json:"sentence"` // contains a "___" placeholder
	Answer   string `json:"answer"`
}

// GlossaryItem is a single term/definition pair.
type GlossaryItem struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// StudyPack is one bundle of generated learning content. Each content
// section is independently optional.
type StudyPack struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Color string `json:"color,omitempty"`
	Icon  string `json:"icon,omitempty"`

	Lesson        []LessonBlock   `json:"lesson,omitempty"`
	Quiz          []QuizQuestion  `json:"quiz,omitempty"`
	ExamQuiz      []QuizQuestion  `json:"examQuiz,omitempty"`
	FillBlanks    []FillBlankItem `json:"fillBlanks,omitempty"`
	Glossary      []GlossaryItem  `json:"glossary,omitempty"`

	// OriginalQuizCount is the standard quiz size at creation time. Progress
	// is derived against this count, not against later generated additions.
	OriginalQuizCount int `json:"originalQuizCount"`

	// Progress is derived and monotonic non-decreasing, 0-100.
	Progress int `json:"progress"`

	FolderID string `json:"folderId,omitempty"`

	Deleted   bool      `json:"deleted,omitempty"`
	DeletedAt time.Time `json:"deletedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`

	// Sessions are created lazily, one per quiz variant.
	QuizSession *QuizSession `json:"quizSession,omitempty"`
	ExamSession *QuizSession `json:"examSession,omitempty"`
}

// Questions returns the question list for the given variant.
func (sp *StudyPack) Questions(variant QuizVariant) []QuizQuestion {
	if variant == VariantExam {
		return sp.ExamQuiz
	}
	return sp.Quiz
}

// AppendQuestions adds generated questions to the variant's question list.
func (sp *StudyPack) AppendQuestions(variant QuizVariant, qs []QuizQuestion) {
	if variant == VariantExam {
		sp.ExamQuiz = append(sp.ExamQuiz, qs...)
		return
	}
	sp.Quiz = append(sp.Quiz, qs...)
}

// Question returns the question with the given id in the variant's list.
func (sp *StudyPack) Question(variant QuizVariant, id string) *QuizQuestion {
	qs := sp.Questions(variant)
	for i := range qs {
		if qs[i].ID == id {
			return &qs[i]
		}
	}
	return nil
}

// Session returns a pointer to the session slot for the variant, creating
// it lazily over the variant's full question list.
func (sp *StudyPack) Session(variant QuizVariant) *QuizSession {
	slot := &sp.QuizSession
	if variant == VariantExam {
		slot = &sp.ExamSession
	}
	if *slot == nil {
		*slot = NewQuizSession(questionIDs(sp.Questions(variant)))
	}
	return *slot
}

// ResetSession discards the session slot for the variant.
func (sp *StudyPack) ResetSession(variant QuizVariant) {
	if variant == VariantExam {
		sp.ExamSession = nil
		return
	}
	sp.QuizSession = nil
}

// UsesAllModes reports whether the pack carries all four learning modes.
func (sp *StudyPack) UsesAllModes() bool {
	return len(sp.Lesson) > 0 && len(sp.Quiz) > 0 && len(sp.FillBlanks) > 0 && len(sp.Glossary) > 0
}

// RecalcProgress rederives Progress from the global correct-answer set.
// Progress only ever moves up. Returns true when the pack newly reached 100.
func (sp *StudyPack) RecalcProgress(correctIDs map[string]bool) bool {
	if sp.OriginalQuizCount == 0 {
		return false
	}
	unique := 0
	for _, q := range sp.Quiz {
		if correctIDs[q.ID] {
			unique++
		}
	}
	pct := int(math.Round(float64(unique) / float64(sp.OriginalQuizCount) * 100))
	if pct > 100 {
		pct = 100
	}
	if pct <= sp.Progress {
		return false
	}
	prev := sp.Progress
	sp.Progress = pct
	return prev < 100 && pct == 100
}

// SoftDelete flags the pack deleted and records when.
func (sp *StudyPack) SoftDelete(now time.Time) {
	sp.Deleted = true
	sp.DeletedAt = now
}

// Restore clears the soft-delete flag.
func (sp *StudyPack) Restore() {
	sp.Deleted = false
	sp.DeletedAt = time.Time{}
}

func questionIDs(qs []QuizQuestion) []string {
	ids := make([]string, len(qs))
	for i, q := range qs {
		ids[i] = q.ID
	}
	return ids
}
