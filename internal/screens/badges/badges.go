// Package badges displays the achievement gallery.
package badges

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arnavsud/stethoquest/internal/badges"
	"github.com/arnavsud/stethoquest/internal/game"
	"github.com/arnavsud/stethoquest/internal/screen"
	"github.com/arnavsud/stethoquest/internal/ui/layout"
	"github.com/arnavsud/stethoquest/internal/ui/theme"
)

type filter int

const (
	filterAll filter = iota
	filterUnlocked
	filterLocked
)

var filterNames = []string{"All", "Unlocked", "Locked"}

// BadgesScreen shows the badge catalog with unlock state.
type BadgesScreen struct {
	svc          *game.Service
	filter       filter
	scrollOffset int
}

var _ screen.Screen = (*BadgesScreen)(nil)
var _ screen.KeyHintProvider = (*BadgesScreen)(nil)

// New creates a BadgesScreen.
func New(svc *game.Service) *BadgesScreen {
	return &BadgesScreen{svc: svc}
}

func (s *BadgesScreen) Init() tea.Cmd {
	return nil
}

func (s *BadgesScreen) Title() string {
	return "Badges"
}

func (s *BadgesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Filter"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *BadgesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "tab":
		s.filter = (s.filter + 1) % 3
		s.scrollOffset = 0
	case "shift+tab":
		s.filter = (s.filter + 2) % 3
		s.scrollOffset = 0
	case "up", "k":
		if s.scrollOffset > 0 {
			s.scrollOffset--
		}
	case "down", "j":
		if s.scrollOffset < len(s.filtered())-1 {
			s.scrollOffset++
		}
	}
	return s, nil
}

func (s *BadgesScreen) filtered() []badges.Badge {
	var out []badges.Badge
	for _, b := range badges.Catalog {
		unlocked := s.svc.Profile.HasBadge(b.ID)
		switch s.filter {
		case filterUnlocked:
			if !unlocked {
				continue
			}
		case filterLocked:
			if unlocked {
				continue
			}
		}
		out = append(out, b)
	}
	return out
}

func (s *BadgesScreen) View(width, height int) string {
	var b strings.Builder

	unlockedCount := 0
	for _, badge := range badges.Catalog {
		if s.svc.Profile.HasBadge(badge.ID) {
			unlockedCount++
		}
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).
		Render(fmt.Sprintf("\n%d of %d badges earned\n", unlockedCount, len(badges.Catalog))))
	b.WriteString("\n")

	// Filter tabs.
	var tabs []string
	for i, name := range filterNames {
		if filter(i) == s.filter {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(name))
		} else {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.TextDim).Render(name))
		}
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(tabs, "     ")))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	filtered := s.filtered()
	if len(filtered) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("Nothing here yet"))
		return b.String()
	}

	maxVisible := height - 10
	if maxVisible < 3 {
		maxVisible = 3
	}
	start := s.scrollOffset
	end := start + maxVisible
	if end > len(filtered) {
		end = len(filtered)
	}

	for i := start; i < end; i++ {
		badge := filtered[i]
		unlocked := s.svc.Profile.HasBadge(badge.ID)

		mark := "○"
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if unlocked {
			mark = "●"
			style = lipgloss.NewStyle().Foreground(theme.Accent)
		}

		line := fmt.Sprintf("  %s %-20s %s", mark, badge.Name, badge.Description)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	if end < len(filtered) {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render(fmt.Sprintf("... %d more", len(filtered)-end)))
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
