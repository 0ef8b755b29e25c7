// Package quiz renders an interactive quiz session over the session machine.
package quiz

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arnavsud/stethoquest/internal/game"
	"github.com/arnavsud/stethoquest/internal/profile"
	engine "github.com/arnavsud/stethoquest/internal/quiz"
	"github.com/arnavsud/stethoquest/internal/router"
	"github.com/arnavsud/stethoquest/internal/screen"
	"github.com/arnavsud/stethoquest/internal/ui/components"
	"github.com/arnavsud/stethoquest/internal/ui/layout"
	"github.com/arnavsud/stethoquest/internal/ui/theme"
)

// QuizScreen plays one quiz session pass.
type QuizScreen struct {
	svc     *game.Service
	machine *engine.Machine
	variant profile.QuizVariant

	choice     components.MultiChoice
	lastResult *engine.SubmitResult
	feedback   bool
	errMsg     string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen over the pack's session for the given variant.
func New(svc *game.Service, packID string, variant profile.QuizVariant) *QuizScreen {
	q := &QuizScreen{svc: svc, variant: variant}
	m, err := svc.QuizMachine(packID, variant)
	if err != nil {
		q.errMsg = err.Error()
		return q
	}
	q.machine = m
	q.loadQuestion()
	return q
}

// loadQuestion rebuilds the choice component for the cursor question.
func (q *QuizScreen) loadQuestion() {
	qn := q.machine.CurrentQuestion()
	if qn == nil {
		return
	}
	q.choice = components.NewMultiChoice(qn.Question, qn.Options, qn.CorrectAnswers)
	q.feedback = false
	q.lastResult = nil
}

func (q *QuizScreen) Init() tea.Cmd {
	return nil
}

func (q *QuizScreen) Title() string {
	if q.variant == profile.VariantExam {
		return "Exam"
	}
	return "Quiz"
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	if q.machine == nil {
		return nil
	}
	sess := q.machine.Session()
	if sess.ShowingResults {
		hints := []layout.KeyHint{{Key: "a", Description: "Restart"}}
		if len(sess.IncorrectlyAnsweredIDs) > 0 {
			hints = append([]layout.KeyHint{{Key: "r", Description: "Retry missed"}}, hints...)
		}
		return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	}
	if q.feedback {
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	}
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Submit"},
	}
	if q.choice.MultiAnswer() {
		hints = append([]layout.KeyHint{{Key: "Space", Description: "Mark"}}, hints...)
	}
	return hints
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || q.machine == nil {
		return q, nil
	}
	if q.errMsg != "" {
		return q, func() tea.Msg { return router.PopScreenMsg{} }
	}

	ctx := context.Background()
	sess := q.machine.Session()

	if sess.ShowingResults {
		return q.updateResults(kmsg)
	}

	if q.feedback {
		q.machine.Next(ctx)
		if !q.machine.Session().ShowingResults {
			q.loadQuestion()
		}
		q.svc.Persist(ctx)
		return q, nil
	}

	var cmd tea.Cmd
	q.choice, cmd = q.choice.Update(kmsg)
	if q.choice.Submitted {
		q.lastResult = q.machine.Submit(ctx, q.choice.Selected())
		q.feedback = true
		q.svc.Persist(ctx)
	}
	return q, cmd
}

func (q *QuizScreen) updateResults(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	sess := q.machine.Session()
	switch msg.String() {
	case "r":
		if q.machine.RetryIncorrect() {
			q.loadQuestion()
			q.svc.Persist(context.Background())
		}
		return q, nil
	case "a":
		q.machine.RestartAll()
		q.loadQuestion()
		q.svc.Persist(context.Background())
		return q, nil
	case "left", "p":
		q.machine.Prev()
		if !sess.ShowingResults {
			q.loadQuestion()
		}
		return q, nil
	}
	return q, nil
}

func (q *QuizScreen) View(width, height int) string {
	if q.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render(q.errMsg))
	}

	sess := q.machine.Session()
	if sess.ShowingResults {
		return q.renderResults(width, height, sess)
	}
	if len(sess.ActiveQuestionIDs) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("No questions in this session"))
	}

	cw := components.ContentWidth(width)
	var sections []string

	// Position and combo line.
	pos := fmt.Sprintf("Question %d of %d", sess.CurrentQuestionIndex+1, len(sess.ActiveQuestionIDs))
	if sess.ComboCount > 1 {
		pos += lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
			Render(fmt.Sprintf("   🔥 %dx combo", sess.ComboCount))
	}
	sections = append(sections, lipgloss.NewStyle().Foreground(theme.TextDim).Render(pos))
	sections = append(sections, "")
	sections = append(sections, q.choice.View())

	if q.feedback {
		sections = append(sections, q.renderFeedback(cw))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (q *QuizScreen) renderFeedback(cw int) string {
	var lines []string

	res := q.lastResult
	qn := q.machine.CurrentQuestion()

	switch {
	case res == nil:
		// Already answered this pass; nothing was granted.
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("Already answered this round."))
	case res.Correct:
		msg := "✓ Correct!"
		if res.XPGranted > 0 {
			msg += fmt.Sprintf("  +%d XP", res.XPGranted)
		}
		if res.CoinsGranted > 0 {
			msg += fmt.Sprintf("  +%d ◉", res.CoinsGranted)
		}
		if res.XPGranted == 0 && res.CoinsGranted == 0 {
			msg += "  (already rewarded)"
		}
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(msg))
		if res.PackCompleted {
			lines = append(lines, lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
				Render("🏆 Pack mastered!"))
		}
	default:
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Error).Bold(true).
			Render("✗ Not quite."))
	}

	if qn != nil && qn.Explanation != "" {
		lines = append(lines, "")
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw).
			Render(qn.Explanation))
	}

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
		Render("press any key to continue"))

	return strings.Join(lines, "\n")
}

func (q *QuizScreen) renderResults(width, height int, sess *profile.QuizSession) string {
	total := len(sess.ActiveQuestionIDs)
	correct := sess.CorrectCount()

	var sections []string
	title := "Round complete!"
	if total > 0 && correct == total {
		title = "Perfect round! 🎉"
	}
	sections = append(sections, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(title))
	sections = append(sections, "")
	sections = append(sections, lipgloss.NewStyle().Foreground(theme.Text).
		Render(fmt.Sprintf("%d / %d correct", correct, total)))

	sections = append(sections, "")
	if len(sess.IncorrectlyAnsweredIDs) > 0 {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Text).
			Render(fmt.Sprintf("r  retry the %d you missed", len(sess.IncorrectlyAnsweredIDs))))
	}
	sections = append(sections, lipgloss.NewStyle().Foreground(theme.Text).
		Render("a  restart with all questions"))
	sections = append(sections, lipgloss.NewStyle().Foreground(theme.TextDim).
		Render("esc  back to pack"))

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
