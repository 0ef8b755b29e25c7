package profile

// SubmittedAnswer records one answer submission within a session.
type SubmittedAnswer struct {
	SelectedAnswers []string `json:"selectedAnswers"`
	IsCorrect       bool     `json:"isCorrect"`
}

// QuizSession is the per-pack, per-variant session value object. It holds
// navigation position, the working question subset, and per-session scoring
// state. Reward dedup is NOT session-local: it lives in the profile-wide
// CorrectlyAnsweredQuizIDs set.
type QuizSession struct {
	CurrentQuestionIndex int `json:"currentQuestionIndex"`

	// ComboCount counts consecutive correct answers; any miss resets it to 0.
	ComboCount int `json:"comboCount"`

	// SubmittedAnswers is append-only within a session pass.
	SubmittedAnswers map[string]SubmittedAnswer `json:"submittedAnswers"`

	// IncorrectlyAnsweredIDs keeps insertion order for retry passes. An id is
	// removed again once the question is answered correctly.
	IncorrectlyAnsweredIDs []string `json:"incorrectlyAnsweredIds"`

	// ActiveQuestionIDs is the working subset the session navigates over:
	// all questions, or only previously-incorrect ones during a retry pass.
	ActiveQuestionIDs []string `json:"activeQuestionIds"`

	// ShowingResults is set once the last active question has been passed.
	ShowingResults bool `json:"showingResults"`
}

// NewQuizSession creates a fresh session over the given question ids.
func NewQuizSession(questionIDs []string) *QuizSession {
	return &QuizSession{
		SubmittedAnswers:  make(map[string]SubmittedAnswer),
		ActiveQuestionIDs: questionIDs,
	}
}

// CurrentQuestionID returns the id at the navigation cursor, or "".
func (s *QuizSession) CurrentQuestionID() string {
	if s.CurrentQuestionIndex < 0 || s.CurrentQuestionIndex >= len(s.ActiveQuestionIDs) {
		return ""
	}
	return s.ActiveQuestionIDs[s.CurrentQuestionIndex]
}

// Answered reports whether the question already has a submission this pass.
func (s *QuizSession) Answered(questionID string) bool {
	_, ok := s.SubmittedAnswers[questionID]
	return ok
}

// MarkIncorrect appends the id to the incorrect list if not already present.
func (s *QuizSession) MarkIncorrect(questionID string) {
	for _, id := range s.IncorrectlyAnsweredIDs {
		if id == questionID {
			return
		}
	}
	s.IncorrectlyAnsweredIDs = append(s.IncorrectlyAnsweredIDs, questionID)
}

// ClearIncorrect removes the id from the incorrect list, preventing stale
// entries once a question is answered correctly.
func (s *QuizSession) ClearIncorrect(questionID string) {
	for i, id := range s.IncorrectlyAnsweredIDs {
		if id == questionID {
			s.IncorrectlyAnsweredIDs = append(s.IncorrectlyAnsweredIDs[:i], s.IncorrectlyAnsweredIDs[i+1:]...)
			return
		}
	}
}

// CorrectCount returns the number of correct submissions this pass.
func (s *QuizSession) CorrectCount() int {
	n := 0
	for _, a := range s.SubmittedAnswers {
		if a.IsCorrect {
			n++
		}
	}
	return n
}
