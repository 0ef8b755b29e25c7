// Package app is the root Bubble Tea model: it owns the screen router, the
// header/footer frame, and the notification toast line.
package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arnavsud/stethoquest/internal/game"
	"github.com/arnavsud/stethoquest/internal/notify"
	"github.com/arnavsud/stethoquest/internal/router"
	"github.com/arnavsud/stethoquest/internal/screen"
	"github.com/arnavsud/stethoquest/internal/screens/home"
	"github.com/arnavsud/stethoquest/internal/screens/welcome"
	"github.com/arnavsud/stethoquest/internal/ui/layout"
	"github.com/arnavsud/stethoquest/internal/ui/theme"
)

// toastDuration is how long one notice stays on screen.
const toastDuration = 4 * time.Second

type toastTickMsg time.Time

// AppModel is the root Bubble Tea model.
type AppModel struct {
	svc    *game.Service
	router *router.Router
	width  int
	height int

	toasts []notify.Notice
}

// newAppModel creates an AppModel starting at the welcome screen.
func newAppModel(svc *game.Service) AppModel {
	welcomeScreen := welcome.New(svc, func() screen.Screen {
		return home.New(svc)
	})
	return AppModel{
		svc:    svc,
		router: router.New(welcomeScreen),
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.router.Active().Init(), toastTick())
}

func toastTick() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case toastTickMsg:
		m.drainFeed()
		m.expireToasts()
		return m, toastTick()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Screens with their own esc handling (inputs, dialogs) see the
			// key first; the router pop is the default.
			if handler, ok := m.router.Active().(EscHandler); ok && handler.HandlesEsc() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	m.drainFeed()
	return m, cmd
}

// EscHandler is implemented by screens that consume esc themselves (text
// entry, confirmation dialogs). When HandlesEsc reports true the router
// does not pop.
type EscHandler interface {
	HandlesEsc() bool
}

// drainFeed moves pending notices onto the toast line.
func (m *AppModel) drainFeed() {
	if m.svc == nil {
		return
	}
	for _, n := range m.svc.Feed.Drain() {
		m.toasts = append(m.toasts, n)
	}
	// Keep the tail; old toasts scroll away.
	if len(m.toasts) > 3 {
		m.toasts = m.toasts[len(m.toasts)-3:]
	}
}

func (m *AppModel) expireToasts() {
	cutoff := time.Now().Add(-toastDuration)
	kept := m.toasts[:0]
	for _, t := range m.toasts {
		if t.At.After(cutoff) {
			kept = append(kept, t)
		}
	}
	m.toasts = kept
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.svc.Profile.StethoCoins, m.svc.Profile.Streak, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}
	if footerHints == nil {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Back"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navigate"},
				{Key: "Enter", Description: "Select"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	toastLine := m.renderToasts()
	toastHeight := 0
	if toastLine != "" {
		toastHeight = 1
	}

	contentHeight := m.height - headerHeight - footerHeight - toastHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	styledContent := lipgloss.NewStyle().
		Width(m.width).
		Height(contentHeight).
		Render(content)

	parts := []string{header, styledContent}
	if toastLine != "" {
		parts = append(parts, toastLine)
	}
	parts = append(parts, footer)

	v.SetContent(strings.Join(parts, "\n"))
	return v
}

// renderToasts renders the newest notices on a single line.
func (m AppModel) renderToasts() string {
	if len(m.toasts) == 0 {
		return ""
	}

	var parts []string
	for _, t := range m.toasts {
		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch t.Kind {
		case notify.KindReward, notify.KindLevelUp:
			style = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
		case notify.KindBadge, notify.KindQuest:
			style = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
		case notify.KindError:
			style = lipgloss.NewStyle().Foreground(theme.Error)
		}
		parts = append(parts, style.Render(t.Message))
	}

	return lipgloss.NewStyle().
		Width(m.width).
		Align(lipgloss.Center).
		Render(strings.Join(parts, "   "))
}

// Run starts the Bubble Tea program over a loaded game service.
func Run(svc *game.Service) error {
	p := tea.NewProgram(newAppModel(svc))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
