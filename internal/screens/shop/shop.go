// Package shop is the power-up store: purchase with StethoCoins, then
// activate owned items.
package shop

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arnavsud/stethoquest/internal/game"
	"github.com/arnavsud/stethoquest/internal/inventory"
	"github.com/arnavsud/stethoquest/internal/profile"
	"github.com/arnavsud/stethoquest/internal/screen"
	"github.com/arnavsud/stethoquest/internal/ui/layout"
	"github.com/arnavsud/stethoquest/internal/ui/theme"
)

// ShopScreen renders the power-up catalog.
type ShopScreen struct {
	svc       *game.Service
	cursor    int
	statusMsg string

	// picking selects the pack for a focus boost.
	picking    bool
	packCursor int
}

var _ screen.Screen = (*ShopScreen)(nil)
var _ screen.KeyHintProvider = (*ShopScreen)(nil)

// New creates a ShopScreen.
func New(svc *game.Service) *ShopScreen {
	return &ShopScreen{svc: svc}
}

func (s *ShopScreen) Init() tea.Cmd {
	return nil
}

func (s *ShopScreen) Title() string {
	return "Shop"
}

func (s *ShopScreen) KeyHints() []layout.KeyHint {
	if s.picking {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Boost pack"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Buy"},
		{Key: "a", Description: "Activate"},
		{Key: "Esc", Description: "Back"},
	}
}

// HandlesEsc keeps the router from popping while the pack picker is open.
func (s *ShopScreen) HandlesEsc() bool {
	return s.picking
}

// livePacks lists non-deleted, not-yet-boosted packs for focus boosting.
func (s *ShopScreen) livePacks() []*profile.StudyPack {
	var out []*profile.StudyPack
	for _, sp := range s.svc.Profile.StudyPacks {
		if !sp.Deleted && !s.svc.Profile.PackBoosted(sp.ID) {
			out = append(out, sp)
		}
	}
	return out
}

func (s *ShopScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	if s.picking {
		return s.updatePicking(kmsg)
	}

	ctx := context.Background()
	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(inventory.Catalog)-1 {
			s.cursor++
		}
	case "enter":
		item := inventory.Catalog[s.cursor]
		if s.svc.PurchasePowerUp(ctx, item.ID) {
			s.statusMsg = fmt.Sprintf("Bought %s", item.Name)
		} else {
			s.statusMsg = "Not enough coins"
		}
	case "a":
		item := inventory.Catalog[s.cursor]
		switch item.ID {
		case inventory.FocusBoost:
			if s.svc.Profile.Inventory[item.ID] == 0 {
				s.statusMsg = "You don't own a Focus Boost"
				return s, nil
			}
			if len(s.livePacks()) == 0 {
				s.statusMsg = "No packs to boost"
				return s, nil
			}
			s.picking = true
			s.packCursor = 0
		case inventory.DoubleXP, inventory.DoubleCoins:
			if s.svc.ActivateBoost(ctx, item.ID) {
				s.statusMsg = fmt.Sprintf("%s active for %d minutes", item.Name, int(inventory.BoostDuration.Minutes()))
			} else {
				s.statusMsg = fmt.Sprintf("You don't own a %s", item.Name)
			}
		default:
			s.statusMsg = "The shield works on its own: it saves your streak automatically"
		}
	}
	return s, nil
}

func (s *ShopScreen) updatePicking(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	packs := s.livePacks()
	switch msg.String() {
	case "esc":
		s.picking = false
	case "up", "k":
		if s.packCursor > 0 {
			s.packCursor--
		}
	case "down", "j":
		if s.packCursor < len(packs)-1 {
			s.packCursor++
		}
	case "enter":
		if s.packCursor < len(packs) {
			sp := packs[s.packCursor]
			if s.svc.ActivateFocusBoost(context.Background(), sp.ID) {
				s.statusMsg = fmt.Sprintf("%s now earns double XP forever", sp.Title)
			}
		}
		s.picking = false
	}
	return s, nil
}

func (s *ShopScreen) View(width, height int) string {
	if s.picking {
		return s.renderPicker(width, height)
	}

	p := s.svc.Profile
	now := time.Now()

	var sections []string
	sections = append(sections, lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
		Render(fmt.Sprintf("◉ %d StethoCoins", p.StethoCoins)))
	sections = append(sections, "")

	for i, item := range inventory.Catalog {
		sections = append(sections, s.renderItem(item, i == s.cursor))
	}

	var active []string
	if p.DoubleXPActive(now) {
		active = append(active, fmt.Sprintf("Double XP (%dm left)", int(time.Until(p.DoubleXPUntil).Minutes())+1))
	}
	if p.DoubleCoinsActive(now) {
		active = append(active, fmt.Sprintf("Double Coins (%dm left)", int(time.Until(p.DoubleCoinsUntil).Minutes())+1))
	}
	if len(active) > 0 {
		sections = append(sections, "")
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Success).
			Render("⚡ Active: "+strings.Join(active, ", ")))
	}

	if s.statusMsg != "" {
		sections = append(sections, "")
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.TextDim).Render(s.statusMsg))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *ShopScreen) renderItem(item inventory.PowerUp, selected bool) string {
	owned := s.svc.Profile.Inventory[item.ID]
	prefix := "  "
	if selected {
		prefix = "▸ "
	}

	line := fmt.Sprintf("%s%-14s ◉%-4d %-42s owned: %d",
		prefix, item.Name, item.Price, item.Description, owned)

	if selected {
		return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line)
	}
	if s.svc.Profile.StethoCoins < item.Price {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render(line)
	}
	return lipgloss.NewStyle().Foreground(theme.Text).Render(line)
}

func (s *ShopScreen) renderPicker(width, height int) string {
	packs := s.livePacks()

	var sections []string
	sections = append(sections, lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render("Which pack gets the Focus Boost?"))
	sections = append(sections, "")

	for i, sp := range packs {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.packCursor {
			prefix = "▸ "
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		sections = append(sections, style.Render(prefix+sp.Title))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
