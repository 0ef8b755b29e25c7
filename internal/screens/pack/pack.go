// Package pack is the study-pack hub: mode selection, progress, and
// question generation.
package pack

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arnavsud/stethoquest/internal/game"
	"github.com/arnavsud/stethoquest/internal/profile"
	"github.com/arnavsud/stethoquest/internal/router"
	"github.com/arnavsud/stethoquest/internal/screen"
	"github.com/arnavsud/stethoquest/internal/screens/fillblanks"
	"github.com/arnavsud/stethoquest/internal/screens/glossary"
	"github.com/arnavsud/stethoquest/internal/screens/lesson"
	"github.com/arnavsud/stethoquest/internal/screens/quiz"
	"github.com/arnavsud/stethoquest/internal/screens/tutor"
	"github.com/arnavsud/stethoquest/internal/ui/components"
	"github.com/arnavsud/stethoquest/internal/ui/layout"
	"github.com/arnavsud/stethoquest/internal/ui/theme"
)

// GenerateBatch is how many extra questions one generation round adds.
const GenerateBatch = 5

type genDoneMsg struct {
	Count int
	Err   error
}

type spinnerTickMsg time.Time

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// PackScreen shows one pack's modes and progress.
type PackScreen struct {
	svc    *game.Service
	packID string

	menu       components.Menu
	menuLabels []string
	generating bool
	frame      int
	statusMsg  string
}

var _ screen.Screen = (*PackScreen)(nil)
var _ screen.KeyHintProvider = (*PackScreen)(nil)

// New creates a PackScreen for the given pack id.
func New(svc *game.Service, packID string) *PackScreen {
	p := &PackScreen{svc: svc, packID: packID}
	p.buildMenu()
	return p
}

func (p *PackScreen) pack() *profile.StudyPack {
	return p.svc.Profile.Pack(p.packID)
}

func (p *PackScreen) buildMenu() {
	sp := p.pack()
	if sp == nil {
		return
	}

	p.menuLabels = []string{
		"LESSON",
		fmt.Sprintf("QUIZ (%d questions)", len(sp.Quiz)),
		fmt.Sprintf("EXAM MODE (%d questions)", len(sp.ExamQuiz)),
		fmt.Sprintf("FILL IN THE BLANKS (%d)", len(sp.FillBlanks)),
		fmt.Sprintf("GLOSSARY (%d terms)", len(sp.Glossary)),
		"ASK THE TUTOR",
		"GENERATE MORE QUESTIONS",
		"RESET QUIZ SESSION",
	}

	svc := p.svc
	packID := p.packID

	items := []components.MenuItem{
		{Label: p.menuLabels[0], Disabled: len(sp.Lesson) == 0, Action: func() tea.Cmd {
			return pushCmd(lesson.New(svc, packID))
		}},
		{Label: p.menuLabels[1], Disabled: len(sp.Quiz) == 0, Action: func() tea.Cmd {
			return pushCmd(quiz.New(svc, packID, profile.VariantStandard))
		}},
		{Label: p.menuLabels[2], Disabled: len(sp.ExamQuiz) == 0, Action: func() tea.Cmd {
			return pushCmd(quiz.New(svc, packID, profile.VariantExam))
		}},
		{Label: p.menuLabels[3], Disabled: len(sp.FillBlanks) == 0, Action: func() tea.Cmd {
			return pushCmd(fillblanks.New(svc, packID))
		}},
		{Label: p.menuLabels[4], Disabled: len(sp.Glossary) == 0, Action: func() tea.Cmd {
			return pushCmd(glossary.New(svc, packID))
		}},
		{Label: p.menuLabels[5], Disabled: !svc.HasLLM(), Action: func() tea.Cmd {
			return pushCmd(tutor.New(svc, packID))
		}},
		{Label: p.menuLabels[6], Disabled: !svc.HasLLM(), Action: nil},
		{Label: p.menuLabels[7], Action: nil},
	}

	selected := p.menu.Selected
	p.menu = components.NewMenu(items)
	if selected > 0 && selected < len(items) {
		p.menu.Selected = selected
	}
}

func pushCmd(s screen.Screen) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: s}
	}
}

func (p *PackScreen) Init() tea.Cmd {
	return nil
}

func (p *PackScreen) Title() string {
	if sp := p.pack(); sp != nil {
		return sp.Title
	}
	return "Pack"
}

func (p *PackScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

// HandlesEsc keeps the router from popping mid-generation.
func (p *PackScreen) HandlesEsc() bool {
	return p.generating
}

func (p *PackScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTickMsg:
		if !p.generating {
			return p, nil
		}
		p.frame++
		return p, spinnerTick()

	case genDoneMsg:
		p.generating = false
		if msg.Err != nil {
			p.statusMsg = msg.Err.Error()
		} else {
			p.statusMsg = fmt.Sprintf("Added %d new questions", msg.Count)
			p.buildMenu()
		}
		return p, nil

	case tea.KeyPressMsg:
		if p.generating {
			return p, nil
		}
		// Generate-more and reset are handled here; the rest navigate
		// through menu actions.
		if msg.String() == "enter" {
			switch p.menu.Selected {
			case 6:
				if !p.svc.HasLLM() {
					return p, nil
				}
				p.generating = true
				p.statusMsg = ""
				return p, tea.Batch(p.generateMore(), spinnerTick())
			case 7:
				p.svc.ResetSession(context.Background(), p.packID, profile.VariantStandard)
				p.svc.ResetSession(context.Background(), p.packID, profile.VariantExam)
				p.statusMsg = "Quiz sessions reset"
				return p, nil
			}
		}
	}

	var cmd tea.Cmd
	p.menu, cmd = p.menu.Update(msg)
	return p, cmd
}

func (p *PackScreen) generateMore() tea.Cmd {
	svc := p.svc
	packID := p.packID
	return func() tea.Msg {
		qs, err := svc.GenerateMoreQuestions(context.Background(), packID, profile.VariantStandard, GenerateBatch)
		return genDoneMsg{Count: len(qs), Err: err}
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (p *PackScreen) View(width, height int) string {
	sp := p.pack()
	if sp == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render("Pack not found"))
	}

	cw := components.ContentWidth(width)
	var sections []string

	titleStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	sections = append(sections, lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).
		Render(titleStyle.Render(sp.Title)))

	bar := components.NewProgressBar("Mastery", float64(sp.Progress)/100, true, cw-4)
	sections = append(sections, lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).
		Render(bar.View()))

	if p.svc.Profile.PackBoosted(sp.ID) {
		sections = append(sections, lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).
			Foreground(theme.Accent).Render("⚡ Focus Boost active: double XP"))
	}

	sections = append(sections, p.menu.View())

	if p.generating {
		spinner := spinnerFrames[p.frame%len(spinnerFrames)]
		sections = append(sections, lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).
			Foreground(theme.Primary).Render(spinner+" Generating questions..."))
	} else if p.statusMsg != "" {
		sections = append(sections, lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).
			Foreground(theme.TextDim).Render(p.statusMsg))
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
