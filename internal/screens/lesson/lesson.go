// Package lesson renders a pack's lesson content in a scrollable view.
package lesson

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arnavsud/stethoquest/internal/game"
	"github.com/arnavsud/stethoquest/internal/profile"
	"github.com/arnavsud/stethoquest/internal/screen"
	"github.com/arnavsud/stethoquest/internal/ui/layout"
	"github.com/arnavsud/stethoquest/internal/ui/theme"
)

// LessonScreen shows the generated lesson, scrollable by line.
type LessonScreen struct {
	svc    *game.Service
	packID string
	scroll int
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)

// New creates a LessonScreen for the given pack.
func New(svc *game.Service, packID string) *LessonScreen {
	return &LessonScreen{svc: svc, packID: packID}
}

func (l *LessonScreen) Init() tea.Cmd {
	return nil
}

func (l *LessonScreen) Title() string {
	return "Lesson"
}

func (l *LessonScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (l *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return l, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if l.scroll > 0 {
			l.scroll--
		}
	case "down", "j":
		l.scroll++
	case "home", "g":
		l.scroll = 0
	}
	return l, nil
}

func (l *LessonScreen) View(width, height int) string {
	sp := l.svc.Profile.Pack(l.packID)
	if sp == nil || len(sp.Lesson) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("No lesson content"))
	}

	cw := width - 8
	if cw > 80 {
		cw = 80
	}
	if cw < 20 {
		cw = 20
	}

	lines := renderBlocks(sp.Lesson, cw)

	// Clamp scroll to keep at least one line visible.
	maxScroll := len(lines) - 1
	if l.scroll > maxScroll {
		l.scroll = maxScroll
	}
	visible := height - 2
	if visible < 3 {
		visible = 3
	}
	end := l.scroll + visible
	if end > len(lines) {
		end = len(lines)
	}

	body := strings.Join(lines[l.scroll:end], "\n")
	return lipgloss.NewStyle().Padding(1, 4).Render(
		lipgloss.PlaceHorizontal(width-8, lipgloss.Center, body))
}

// renderBlocks flattens lesson blocks into styled, wrapped lines.
func renderBlocks(blocks []profile.LessonBlock, cw int) []string {
	headingStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Width(cw)
	textStyle := lipgloss.NewStyle().Foreground(theme.Text).Width(cw)
	itemStyle := lipgloss.NewStyle().Foreground(theme.Text).Width(cw)
	cellStyle := lipgloss.NewStyle().Foreground(theme.Secondary)

	var lines []string
	for _, b := range blocks {
		switch b.Kind {
		case "heading":
			lines = append(lines, headingStyle.Render(b.Text))
			lines = append(lines, "")
		case "text":
			lines = append(lines, strings.Split(textStyle.Render(b.Text), "\n")...)
			lines = append(lines, "")
		case "list":
			for _, item := range b.Items {
				lines = append(lines, strings.Split(itemStyle.Render("• "+item), "\n")...)
			}
			lines = append(lines, "")
		case "table":
			if len(b.Headers) > 0 {
				lines = append(lines, cellStyle.Bold(true).Render(strings.Join(b.Headers, "  │  ")))
			}
			for _, row := range b.Rows {
				lines = append(lines, cellStyle.Render(strings.Join(row, "  │  ")))
			}
			lines = append(lines, "")
		}
	}
	return lines
}
