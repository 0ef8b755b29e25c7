// Package packgen turns source material into structured study packs via the
// LLM provider: lesson blocks, quizzes, fill-in-the-blanks, and a glossary.
package packgen

// GenerateInput describes what to build a pack from.
type GenerateInput struct {
	// Topic is the user's subject line, e.g. "Beta blockers".
	Topic string

	// SourceText is optional pasted or file-loaded material. When set, the
	// pack is grounded in it instead of general knowledge.
	SourceText string
}

// QuestionsInput describes a request for additional quiz questions on an
// existing pack.
type QuestionsInput struct {
	// Topic is the pack title.
	Topic string

	// Count is how many questions to generate.
	Count int

	// Exam selects the exam-style question register.
	Exam bool

	// PriorQuestions lists existing question texts so the LLM avoids
	// repeating them.
	PriorQuestions []string
}

// packOutput is the raw LLM pack response before sanitization.
type packOutput struct {
	Title      string            `json:"title"`
	Lesson     []lessonBlockOut  `json:"lesson"`
	Quiz       []questionOut     `json:"quiz"`
	ExamQuiz   []questionOut     `json:"exam_quiz"`
	FillBlanks []fillBlankOut    `json:"fill_blanks"`
	Glossary   []glossaryItemOut `json:"glossary"`
}

type lessonBlockOut struct {
	Kind    string     `json:"kind"`
	Text    string     `json:"text"`
	Items   []string   `json:"items"`
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

type questionOut struct {
	Question       string   `json:"question"`
	Options        []string `json:"options"`
	CorrectAnswers []string `json:"correct_answers"`
	Difficulty     string   `json:"difficulty"`
	Explanation    string   `json:"explanation"`
}

type fillBlankOut struct {
	Sentence string `json:"sentence"`
	Answer   string `json:"answer"`
}

type glossaryItemOut struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

type questionsOutput struct {
	Questions []questionOut `json:"questions"`
}
