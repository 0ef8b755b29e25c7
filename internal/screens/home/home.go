package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/arnavsud/stethoquest/internal/game"
	"github.com/arnavsud/stethoquest/internal/level"
	"github.com/arnavsud/stethoquest/internal/router"
	"github.com/arnavsud/stethoquest/internal/screen"
	badgescreen "github.com/arnavsud/stethoquest/internal/screens/badges"
	"github.com/arnavsud/stethoquest/internal/screens/create"
	"github.com/arnavsud/stethoquest/internal/screens/library"
	"github.com/arnavsud/stethoquest/internal/screens/quests"
	"github.com/arnavsud/stethoquest/internal/screens/shop"
	"github.com/arnavsud/stethoquest/internal/ui/components"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	svc        *game.Service
	menu       components.Menu
	menuLabels []string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(svc *game.Service) *HomeScreen {
	menuLabels := []string{"STUDY LIBRARY", "NEW PACK", "DAILY QUESTS", "SHOP", "BADGES", "EXIT"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: library.New(svc)}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: create.New(svc)}
			}
		}, Disabled: !svc.HasLLM()},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quests.New(svc)}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: shop.New(svc)}
			}
		}},
		{Label: menuLabels[4], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: badgescreen.New(svc)}
			}
		}},
		{Label: menuLabels[5], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		svc:        svc,
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := components.ContentWidth(width)

	p := h.svc.Profile
	info := level.ForXP(p.XP)

	var sections []string

	sections = append(sections, renderTitle(cw, compact))

	if !compact {
		sections = append(sections, renderMascotBox(h.mascotVariant(), cw))
	}

	sections = append(sections, renderStatsBar(info, p.StethoCoins, p.Streak, cw, compact))

	disabled := map[int]bool{1: !h.svc.HasLLM()}
	if compact {
		sections = append(sections, renderMenuCompact(h.menuLabels, h.menu.Selected, cw, disabled))
	} else {
		sections = append(sections, renderMenu(h.menuLabels, h.menu.Selected, cw, disabled))
	}

	if !h.svc.HasLLM() {
		sections = append(sections, renderLLMBanner(cw))
	}

	content := strings.Join(sections, "\n\n")

	return components.PanelFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// mascotVariant picks the mascot mood from profile state: alert when quests
// wait to be claimed, celebrating on a healthy streak.
func (h *HomeScreen) mascotVariant() MascotVariant {
	for _, q := range h.svc.Profile.ActiveQuests {
		if q.Claimable() {
			return MascotAlert
		}
	}
	if h.svc.Profile.Streak >= 3 {
		return MascotCelebrating
	}
	return MascotIdle
}
