// Package tutor is the ask-the-tutor chat view for one pack.
package tutor

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arnavsud/stethoquest/internal/game"
	"github.com/arnavsud/stethoquest/internal/screen"
	"github.com/arnavsud/stethoquest/internal/ui/components"
	"github.com/arnavsud/stethoquest/internal/ui/layout"
	"github.com/arnavsud/stethoquest/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

type spinnerTickMsg time.Time

type answerMsg struct {
	Answer string
	Err    error
}

// exchange is one asked question and its answer.
type exchange struct {
	Question string
	Answer   string
}

// TutorScreen lets the user ask free-form questions about a pack's lesson.
type TutorScreen struct {
	svc    *game.Service
	packID string

	input    components.TextInput
	history  []exchange
	waiting  bool
	frame    int
	scroll   int
}

var _ screen.Screen = (*TutorScreen)(nil)
var _ screen.KeyHintProvider = (*TutorScreen)(nil)

// New creates a TutorScreen for the given pack.
func New(svc *game.Service, packID string) *TutorScreen {
	return &TutorScreen{
		svc:    svc,
		packID: packID,
		input:  components.NewTextInput("Ask anything about this topic...", false, 200),
	}
}

func (t *TutorScreen) Init() tea.Cmd {
	return t.input.Init()
}

func (t *TutorScreen) Title() string {
	return "Tutor"
}

func (t *TutorScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Ask"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

// HandlesEsc keeps the router from popping while an answer is in flight.
func (t *TutorScreen) HandlesEsc() bool {
	return t.waiting
}

func (t *TutorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTickMsg:
		if !t.waiting {
			return t, nil
		}
		t.frame++
		return t, spinnerTick()

	case answerMsg:
		t.waiting = false
		if len(t.history) > 0 {
			t.history[len(t.history)-1].Answer = msg.Answer
		}
		return t, nil

	case tea.KeyPressMsg:
		if t.waiting {
			return t, nil
		}
		switch msg.String() {
		case "enter":
			question := strings.TrimSpace(t.input.Value())
			if question == "" {
				return t, nil
			}
			t.history = append(t.history, exchange{Question: question})
			t.waiting = true
			t.scroll = 0
			t.input = components.NewTextInput("Ask anything about this topic...", false, 200)
			return t, tea.Batch(t.ask(question), spinnerTick(), t.input.Init())
		case "up":
			t.scroll++
			return t, nil
		case "down":
			if t.scroll > 0 {
				t.scroll--
			}
			return t, nil
		}
		var cmd tea.Cmd
		t.input, cmd = t.input.Update(msg)
		return t, cmd
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return t, cmd
}

func (t *TutorScreen) ask(question string) tea.Cmd {
	svc := t.svc
	packID := t.packID
	return func() tea.Msg {
		// The service returns an apology string alongside provider errors,
		// so the answer is always displayable.
		answer, _ := svc.AskTutor(context.Background(), packID, "", question)
		return answerMsg{Answer: answer}
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (t *TutorScreen) View(width, height int) string {
	cw := width - 8
	if cw > 90 {
		cw = 90
	}
	if cw < 20 {
		cw = 20
	}

	qStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Width(cw)
	aStyle := lipgloss.NewStyle().Foreground(theme.Text).Width(cw)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var lines []string
	for _, ex := range t.history {
		lines = append(lines, strings.Split(qStyle.Render("You: "+ex.Question), "\n")...)
		lines = append(lines, "")
		if ex.Answer != "" {
			lines = append(lines, strings.Split(aStyle.Render(ex.Answer), "\n")...)
			lines = append(lines, "")
		}
	}
	if t.waiting {
		spinner := spinnerFrames[t.frame%len(spinnerFrames)]
		lines = append(lines, dimStyle.Render(spinner+" thinking..."))
	}
	if len(t.history) == 0 && !t.waiting {
		lines = append(lines, dimStyle.Italic(true).Render("The tutor knows this pack's lesson. Ask away."))
	}

	// Reserve rows for the input line; show the tail of the transcript,
	// offset by scroll.
	visible := height - 4
	if visible < 3 {
		visible = 3
	}
	end := len(lines) - t.scroll
	if end > len(lines) {
		end = len(lines)
	}
	if end < 0 {
		end = 0
	}
	start := end - visible
	if start < 0 {
		start = 0
	}

	body := strings.Join(lines[start:end], "\n")
	prompt := t.input.View()

	return lipgloss.NewStyle().Padding(1, 4).Render(body + "\n\n" + prompt)
}
