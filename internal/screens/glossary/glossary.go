// Package glossary renders a pack's term/definition pairs as flashcards.
package glossary

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

// GlossaryScreen flips through terms card by card.
type GlossaryScreen struct {
	svc      *game.Service
	packID   string
	index    int
	revealed bool
}

var _ screen.Screen = (*GlossaryScreen)(nil)
var _ screen.KeyHintProvider = (*GlossaryScreen)(nil)

// New creates a GlossaryScreen for the given pack.
func New(svc *game.Service, packID string) *GlossaryScreen {
	return &GlossaryScreen{svc: svc, packID: packID}
}

func (g *GlossaryScreen) Init() tea.Cmd {
	return nil
}

func (g *GlossaryScreen) Title() string {
	return "Glossary"
}

func (g *GlossaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Space", Description: "Flip"},
		{Key: "←→", Description: "Prev/Next"},
		{Key: "Esc", Description: "Back"},
	}
}

func (g *GlossaryScreen) items() int {
	sp := g.svc.Profile.Pack(g.packID)
	if sp == nil {
		return 0
	}
	return len(sp.Glossary)
}

func (g *GlossaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return g, nil
	}
	n := g.items()
	if n == 0 {
		return g, nil
	}
	switch kmsg.String() {
	case " ", "enter":
		g.revealed = !g.revealed
	case "right", "l", "down", "j":
		if g.index < n-1 {
			g.index++
			g.revealed = false
		}
	case "left", "h", "up", "k":
		if g.index > 0 {
			g.index--
			g.revealed = false
		}
	}
	return g, nil
}

func (g *GlossaryScreen) View(width, height int) string {
	sp := g.svc.Profile.Pack(g.packID)
	if sp == nil || len(sp.Glossary) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("No glossary terms"))
	}

	item := sp.Glossary[g.index]
	cw := components.ContentWidth(width)

	var inner []string
	inner = append(inner, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(item.Term))
	if g.revealed {
		inner = append(inner, "")
		inner = append(inner, lipgloss.NewStyle().Foreground(theme.Text).Width(cw-8).Render(item.Definition))
	} else {
		inner = append(inner, "")
		inner = append(inner, lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("space to reveal"))
	}

	card := components.PanelCard(strings.Join(inner, "\n"), cw)
	counter := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d / %d", g.index+1, len(sp.Glossary)))

	content := card + "\n\n" + lipgloss.PlaceHorizontal(lipgloss.Width(card), lipgloss.Center, counter)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
