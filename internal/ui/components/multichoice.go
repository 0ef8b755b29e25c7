package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arnavsud/stethoquest/internal/ui/theme"
)

// MultiChoice is a question selector. Questions with a single correct answer
// submit on enter; select-all-that-apply questions toggle options with space
// and submit the marked set on enter.
type MultiChoice struct {
	Question string
	Options  []string

	correct map[string]bool
	multi   bool

	Cursor    int
	Marked    map[int]bool
	Submitted bool
	chosen    map[int]bool
}

// NewMultiChoice creates a selector for the given options and correct answers.
func NewMultiChoice(question string, options, correctAnswers []string) MultiChoice {
	correct := make(map[string]bool, len(correctAnswers))
	for _, a := range correctAnswers {
		correct[a] = true
	}
	return MultiChoice{
		Question: question,
		Options:  options,
		correct:  correct,
		multi:    len(correct) > 1,
		Marked:   make(map[int]bool),
	}
}

// MultiAnswer reports whether the question expects more than one answer.
func (m MultiChoice) MultiAnswer() bool {
	return m.multi
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	case " ":
		if m.multi {
			m.Marked[m.Cursor] = !m.Marked[m.Cursor]
		}
	case "enter":
		chosen := make(map[int]bool)
		if m.multi {
			for i, on := range m.Marked {
				if on {
					chosen[i] = true
				}
			}
			if len(chosen) == 0 {
				return m, nil
			}
		} else {
			chosen[m.Cursor] = true
		}
		m.chosen = chosen
		m.Submitted = true
	}

	return m, nil
}

// Selected returns the submitted option texts.
func (m MultiChoice) Selected() []string {
	if !m.Submitted {
		return nil
	}
	var out []string
	for i, opt := range m.Options {
		if m.chosen[i] {
			out = append(out, opt)
		}
	}
	return out
}

// View renders the selector.
func (m MultiChoice) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(m.Question) + "\n"
	if m.multi && !m.Submitted {
		s += lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("Select all that apply (space to mark, enter to submit)") + "\n"
	}
	s += "\n"

	for i, opt := range m.Options {
		label := string(rune('A' + i))
		prefix := "  "
		if i == m.Cursor && !m.Submitted {
			prefix = "▸ "
		}

		mark := ""
		if m.multi && !m.Submitted {
			mark = "[ ] "
			if m.Marked[i] {
				mark = "[x] "
			}
		}

		line := fmt.Sprintf("%s%s%s)  %s", prefix, mark, label, opt)

		if m.Submitted {
			switch {
			case m.correct[opt]:
				s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
			case m.chosen[i]:
				s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
		} else {
			if i == m.Cursor {
				s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
			} else {
				s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
			}
		}
	}

	return s
}

// IsCorrect reports whether the submitted set matches the correct set exactly.
func (m MultiChoice) IsCorrect() bool {
	if !m.Submitted || len(m.chosen) != len(m.correct) {
		return false
	}
	for i := range m.chosen {
		if !m.correct[m.Options[i]] {
			return false
		}
	}
	return true
}
