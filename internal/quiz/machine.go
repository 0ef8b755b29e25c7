// Package quiz runs a scored answering session over one study pack's
// question list: submission, navigation, retry passes, and completion.
package quiz

import (
	"context"

	"github.com/arnavsud/stethoquest/internal/badges"
	"github.com/arnavsud/stethoquest/internal/notify"
	"github.com/arnavsud/stethoquest/internal/profile"
	"github.com/arnavsud/stethoquest/internal/rewards"
	"github.com/arnavsud/stethoquest/internal/store"
	"github.com/arnavsud/stethoquest/internal/streak"
)

// Machine drives one pack/variant quiz session. All collaborators except
// Profile and Pack are nil-tolerant, which keeps the scoring logic testable
// in isolation.
type Machine struct {
	Profile *profile.UserProfile
	Pack    *profile.StudyPack
	Variant profile.QuizVariant

	Ledger   *rewards.Ledger
	Streak   *streak.Tracker
	Quests   rewards.QuestProgress
	Badges   *badges.Evaluator
	Notifier notify.Notifier
	Events   store.EventRepo
}

// NewMachine creates a machine over the given pack and variant.
func NewMachine(p *profile.UserProfile, pack *profile.StudyPack, variant profile.QuizVariant) *Machine {
	return &Machine{Profile: p, Pack: pack, Variant: variant}
}

// SubmitResult reports what a submission did.
type SubmitResult struct {
	Correct       bool
	XPGranted     int
	CoinsGranted  int
	Combo         int
	PackCompleted bool
}

// Session returns the live session, creating it lazily over the variant's
// full question list.
func (m *Machine) Session() *profile.QuizSession {
	return m.Pack.Session(m.Variant)
}

// CurrentQuestion returns the question under the navigation cursor, or nil.
func (m *Machine) CurrentQuestion() *profile.QuizQuestion {
	id := m.Session().CurrentQuestionID()
	if id == "" {
		return nil
	}
	return m.Pack.Question(m.Variant, id)
}

// Submit scores an answer for the current question. Returns nil when there
// is nothing to submit: results are showing, the cursor is out of range, or
// the question already has an answer this pass.
//
// A correct answer always advances the combo and the lifetime correct
// counter, but XP and coins are paid only the first time a question id is
// ever answered correctly, across all sessions.
func (m *Machine) Submit(ctx context.Context, selected []string) *SubmitResult {
	sess := m.Session()
	if sess.ShowingResults {
		return nil
	}
	qid := sess.CurrentQuestionID()
	if qid == "" || sess.Answered(qid) {
		return nil
	}
	q := m.Pack.Question(m.Variant, qid)
	if q == nil {
		return nil
	}

	correct := CheckAnswer(selected, q.CorrectAnswers)
	sess.SubmittedAnswers[qid] = profile.SubmittedAnswer{
		SelectedAnswers: selected,
		IsCorrect:       correct,
	}

	res := &SubmitResult{Correct: correct}
	if correct {
		sess.ComboCount++
		sess.ClearIncorrect(qid)
		m.Profile.TotalCorrectAnswers++

		if !m.Profile.CorrectlyAnsweredQuizIDs[qid] {
			m.Profile.CorrectlyAnsweredQuizIDs[qid] = true

			base := BaseCorrectXP + DifficultyPoints[q.Difficulty] + ComboBonus(sess.ComboCount)
			amount := float64(base) * StreakMultiplier(m.Profile.Streak)
			if m.Ledger != nil {
				res.XPGranted = m.Ledger.GrantXP(ctx, amount, m.Pack.ID)
				res.CoinsGranted = m.Ledger.GrantCoins(ctx, float64(DifficultyCoins[q.Difficulty]), "")
			}
			if m.Quests != nil {
				m.Quests.UpdateProgress(profile.CategoryAnswerCorrectly, 1)
			}
			if m.Pack.RecalcProgress(m.Profile.CorrectlyAnsweredQuizIDs) {
				res.PackCompleted = true
				if m.Ledger != nil {
					m.Ledger.GrantCoins(ctx, PackCompletionCoins, "Pack mastered")
				}
			}
		}

		if sess.ComboCount >= HotStreakCombo && m.Badges != nil {
			m.Badges.UnlockDirect(ctx, badges.HotStreak)
		}
	} else {
		sess.ComboCount = 0
		sess.MarkIncorrect(qid)
	}
	res.Combo = sess.ComboCount

	if m.Events != nil {
		_ = m.Events.AppendAnswerEvent(ctx, store.AnswerEventData{
			PackID:     m.Pack.ID,
			QuestionID: qid,
			Variant:    string(m.Variant),
			Correct:    correct,
			Difficulty: string(q.Difficulty),
			Combo:      sess.ComboCount,
		})
	}
	return res
}

// Next advances the cursor. At the last active question it transitions the
// session to results and runs completion handling once.
func (m *Machine) Next(ctx context.Context) {
	sess := m.Session()
	if sess.ShowingResults {
		return
	}
	if len(sess.ActiveQuestionIDs) == 0 {
		sess.ShowingResults = true
		return
	}
	if sess.CurrentQuestionIndex >= len(sess.ActiveQuestionIDs)-1 {
		sess.ShowingResults = true
		m.complete(ctx, sess)
		return
	}
	sess.CurrentQuestionIndex++
}

// Prev steps the cursor back, clamped at the first question. From the
// results view it returns to the last question instead.
func (m *Machine) Prev() {
	sess := m.Session()
	if sess.ShowingResults {
		sess.ShowingResults = false
		return
	}
	if sess.CurrentQuestionIndex > 0 {
		sess.CurrentQuestionIndex--
	}
}

// RetryIncorrect starts a fresh pass over only the questions answered
// incorrectly this session, in their original miss order. Returns false when
// there is nothing to retry.
func (m *Machine) RetryIncorrect() bool {
	sess := m.Session()
	if len(sess.IncorrectlyAnsweredIDs) == 0 {
		return false
	}
	sess.ActiveQuestionIDs = append([]string(nil), sess.IncorrectlyAnsweredIDs...)
	sess.IncorrectlyAnsweredIDs = nil
	sess.SubmittedAnswers = make(map[string]profile.SubmittedAnswer)
	sess.CurrentQuestionIndex = 0
	sess.ComboCount = 0
	sess.ShowingResults = false
	return true
}

// RestartAll discards the session and starts over across the pack's current
// full question list for the variant, including any generated additions.
func (m *Machine) RestartAll() {
	m.Pack.ResetSession(m.Variant)
	m.Session()
}

// ExtendActive appends newly generated question ids to the working subset so
// the session can continue past where it would have ended.
func (m *Machine) ExtendActive(ids []string) {
	if len(ids) == 0 {
		return
	}
	sess := m.Session()
	sess.ActiveQuestionIDs = append(sess.ActiveQuestionIDs, ids...)
	sess.ShowingResults = false
}

// complete runs once per pass, on the transition into the results view.
func (m *Machine) complete(ctx context.Context, sess *profile.QuizSession) {
	if m.Streak != nil {
		m.Streak.RecordActivity(ctx)
	}
	m.Profile.QuizzesCompleted++

	if perfectPass(sess) {
		m.Profile.PerfectQuizCompletions++
		m.notify(notify.KindReward, "Perfect run! Every question answered correctly")
		if m.hasHardQuestion(sess) && m.Badges != nil {
			m.Badges.UnlockDirect(ctx, badges.FlawlessVictory)
		}
	}

	if m.Quests != nil {
		m.Quests.UpdateProgress(profile.CategoryCompleteQuiz, 1)
	}
	if m.Badges != nil {
		m.Badges.Sweep(ctx)
	}
}

// perfectPass reports whether every active question was answered, all
// correctly, in this pass.
func perfectPass(sess *profile.QuizSession) bool {
	n := len(sess.ActiveQuestionIDs)
	return n > 0 && len(sess.SubmittedAnswers) == n && sess.CorrectCount() == n
}

func (m *Machine) hasHardQuestion(sess *profile.QuizSession) bool {
	for _, id := range sess.ActiveQuestionIDs {
		if q := m.Pack.Question(m.Variant, id); q != nil && q.Difficulty == profile.DifficultyHard {
			return true
		}
	}
	return false
}

func (m *Machine) notify(kind notify.Kind, msg string) {
	if m.Notifier != nil {
		m.Notifier.Notify(kind, msg)
	}
}
