// Package quests shows the active daily and weekly quests and claims rewards.
package quests

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arnavsud/stethoquest/internal/game"
	"github.com/arnavsud/stethoquest/internal/profile"
	"github.com/arnavsud/stethoquest/internal/screen"
	"github.com/arnavsud/stethoquest/internal/ui/components"
	"github.com/arnavsud/stethoquest/internal/ui/layout"
	"github.com/arnavsud/stethoquest/internal/ui/theme"
)

// QuestsScreen lists active quests with claim support.
type QuestsScreen struct {
	svc    *game.Service
	cursor int
}

var _ screen.Screen = (*QuestsScreen)(nil)
var _ screen.KeyHintProvider = (*QuestsScreen)(nil)

// New creates a QuestsScreen.
func New(svc *game.Service) *QuestsScreen {
	return &QuestsScreen{svc: svc}
}

func (s *QuestsScreen) Init() tea.Cmd {
	// Rotation happens on entry so stale quests never show.
	s.svc.Quests.Refresh(context.Background())
	return nil
}

func (s *QuestsScreen) Title() string {
	return "Quests"
}

func (s *QuestsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Claim"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *QuestsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	quests := s.svc.Profile.ActiveQuests
	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(quests)-1 {
			s.cursor++
		}
	case "enter":
		if s.cursor < len(quests) {
			s.svc.ClaimQuest(context.Background(), quests[s.cursor].ID)
		}
	}
	return s, nil
}

func (s *QuestsScreen) View(width, height int) string {
	quests := s.svc.Profile.ActiveQuests
	if len(quests) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("No active quests"))
	}

	cw := components.ContentWidth(width) + 10

	var sections []string
	sections = append(sections, renderGroup("DAILY", quests, profile.QuestDaily, s.cursor, cw))
	sections = append(sections, renderGroup("WEEKLY", quests, profile.QuestWeekly, s.cursor, cw))

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func renderGroup(label string, quests []*profile.Quest, qt profile.QuestType, cursor, cw int) string {
	var lines []string
	lines = append(lines, lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(label))

	for i, q := range quests {
		if q.Type != qt {
			continue
		}
		lines = append(lines, renderQuest(q, i == cursor, cw))
	}
	if len(lines) == 1 {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("  none"))
	}
	return strings.Join(lines, "\n")
}

func renderQuest(q *profile.Quest, selected bool, cw int) string {
	prefix := "  "
	if selected {
		prefix = "▸ "
	}

	status := fmt.Sprintf("%d/%d", q.Progress, q.Target)
	switch {
	case q.Claimed:
		status = "claimed ✓"
	case q.Claimable():
		status = "CLAIM! ◉" + fmt.Sprint(q.RewardCoins)
	}

	pct := float64(q.Progress) / float64(q.Target)
	if pct > 1 {
		pct = 1
	}
	bar := components.NewProgressBar("", pct, false, 20)

	line := fmt.Sprintf("%s%-34s %s  %s", prefix, q.Title, bar.View(), status)

	switch {
	case selected && q.Claimable():
		return lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(line)
	case selected:
		return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line)
	case q.Claimed:
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render(line)
	case q.Claimable():
		return lipgloss.NewStyle().Foreground(theme.Accent).Render(line)
	default:
		return lipgloss.NewStyle().Foreground(theme.Text).Render(line)
	}
}
