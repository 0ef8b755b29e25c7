// Package fillblanks runs a pack's fill-in-the-blank exercises. Checking is
// local and case-insensitive; these exercises grant no rewards.
package fillblanks

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arnavsud/stethoquest/internal/game"
	"github.com/arnavsud/stethoquest/internal/screen"
	"github.com/arnavsud/stethoquest/internal/ui/components"
	"github.com/arnavsud/stethoquest/internal/ui/layout"
	"github.com/arnavsud/stethoquest/internal/ui/theme"
)

// FillBlanksScreen steps through the exercises in order.
type FillBlanksScreen struct {
	svc    *game.Service
	packID string

	index     int
	input     components.TextInput
	submitted bool
	correct   bool
	score     int
	done      bool
}

var _ screen.Screen = (*FillBlanksScreen)(nil)
var _ screen.KeyHintProvider = (*FillBlanksScreen)(nil)

// New creates a FillBlanksScreen for the given pack.
func New(svc *game.Service, packID string) *FillBlanksScreen {
	return &FillBlanksScreen{
		svc:    svc,
		packID: packID,
		input:  components.NewTextInput("Fill in the blank...", false, 48),
	}
}

func (f *FillBlanksScreen) Init() tea.Cmd {
	return f.input.Init()
}

func (f *FillBlanksScreen) Title() string {
	return "Fill in the Blanks"
}

func (f *FillBlanksScreen) KeyHints() []layout.KeyHint {
	if f.done {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	if f.submitted {
		return []layout.KeyHint{{Key: "any key", Description: "Next"}}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Check"},
		{Key: "Esc", Description: "Back"},
	}
}

func (f *FillBlanksScreen) total() int {
	sp := f.svc.Profile.Pack(f.packID)
	if sp == nil {
		return 0
	}
	return len(sp.FillBlanks)
}

func (f *FillBlanksScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyPressMsg)
	if !isKey {
		if !f.submitted && !f.done {
			var cmd tea.Cmd
			f.input, cmd = f.input.Update(msg)
			return f, cmd
		}
		return f, nil
	}

	if f.done {
		return f, nil
	}

	if f.submitted {
		f.index++
		if f.index >= f.total() {
			f.done = true
			return f, nil
		}
		f.submitted = false
		f.input = components.NewTextInput("Fill in the blank...", false, 48)
		return f, f.input.Init()
	}

	if kmsg.String() == "enter" {
		answer := strings.TrimSpace(f.input.Value())
		if answer == "" {
			return f, nil
		}
		sp := f.svc.Profile.Pack(f.packID)
		if sp == nil || f.index >= len(sp.FillBlanks) {
			return f, nil
		}
		want := sp.FillBlanks[f.index].Answer
		f.correct = strings.EqualFold(answer, strings.TrimSpace(want))
		if f.correct {
			f.score++
		}
		f.submitted = true
		f.input.Submit(f.correct)
		return f, nil
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(kmsg)
	return f, cmd
}

func (f *FillBlanksScreen) View(width, height int) string {
	sp := f.svc.Profile.Pack(f.packID)
	if sp == nil || len(sp.FillBlanks) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("No exercises"))
	}

	if f.done {
		content := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
			Render("All done!") + "\n\n" +
			lipgloss.NewStyle().Foreground(theme.Text).
				Render(fmt.Sprintf("%d / %d filled correctly", f.score, len(sp.FillBlanks)))
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
	}

	item := sp.FillBlanks[f.index]
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d of %d", f.index+1, len(sp.FillBlanks))))
	sections = append(sections, "")
	sections = append(sections, lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(cw).
		Render(item.Sentence))
	sections = append(sections, "")
	sections = append(sections, f.input.View())

	if f.submitted {
		sections = append(sections, "")
		if f.correct {
			sections = append(sections, lipgloss.NewStyle().Foreground(theme.Success).Bold(true).
				Render("✓ Correct!"))
		} else {
			sections = append(sections, lipgloss.NewStyle().Foreground(theme.Error).Bold(true).
				Render(fmt.Sprintf("✗ The answer was: %s", item.Answer)))
		}
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("press any key for the next one"))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
