// Package create is the new-pack flow: topic entry, optional source
// material, and the generation wait state.
package create

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arnavsud/stethoquest/internal/game"
	"github.com/arnavsud/stethoquest/internal/profile"
	"github.com/arnavsud/stethoquest/internal/router"
	"github.com/arnavsud/stethoquest/internal/screen"
	"github.com/arnavsud/stethoquest/internal/screens/pack"
	"github.com/arnavsud/stethoquest/internal/ui/components"
	"github.com/arnavsud/stethoquest/internal/ui/layout"
	"github.com/arnavsud/stethoquest/internal/ui/theme"
)

type step int

const (
	stepTopic step = iota
	stepSource
	stepGenerating
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

type spinnerTickMsg time.Time

type packDoneMsg struct {
	Pack *profile.StudyPack
	Err  error
}

// CreateScreen collects a topic and generates a study pack.
type CreateScreen struct {
	svc      *game.Service
	folderID string

	step        step
	topicInput  components.TextInput
	sourceInput components.TextInput
	topic       string
	frame       int
	errMsg      string
}

var _ screen.Screen = (*CreateScreen)(nil)
var _ screen.KeyHintProvider = (*CreateScreen)(nil)

// New creates a CreateScreen targeting the top level.
func New(svc *game.Service) *CreateScreen {
	return NewInFolder(svc, "")
}

// NewInFolder creates a CreateScreen whose pack lands in the given folder.
func NewInFolder(svc *game.Service, folderID string) *CreateScreen {
	return &CreateScreen{
		svc:         svc,
		folderID:    folderID,
		topicInput:  components.NewTextInput("e.g. Beta blockers in heart failure", false, 80),
		sourceInput: components.NewTextInput("Path to notes file (optional, enter to skip)", false, 200),
	}
}

func (c *CreateScreen) Init() tea.Cmd {
	return c.topicInput.Init()
}

func (c *CreateScreen) Title() string {
	return "New Pack"
}

func (c *CreateScreen) KeyHints() []layout.KeyHint {
	if c.step == stepGenerating {
		return []layout.KeyHint{}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Back"},
	}
}

// HandlesEsc keeps the router from popping mid-generation; the result
// message would be lost with the screen.
func (c *CreateScreen) HandlesEsc() bool {
	return c.step == stepGenerating
}

func (c *CreateScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTickMsg:
		if c.step != stepGenerating {
			return c, nil
		}
		c.frame++
		return c, spinnerTick()

	case packDoneMsg:
		if msg.Err != nil {
			c.errMsg = msg.Err.Error()
			c.step = stepTopic
			return c, c.topicInput.Init()
		}
		sp := msg.Pack
		return c, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: pack.New(c.svc, sp.ID)}
		}

	case tea.KeyPressMsg:
		return c.handleKey(msg)
	}

	return c.forwardToInput(msg)
}

func (c *CreateScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if c.step == stepGenerating {
		return c, nil
	}

	if msg.String() == "enter" {
		switch c.step {
		case stepTopic:
			topic := strings.TrimSpace(c.topicInput.Value())
			if topic == "" {
				return c, nil
			}
			c.topic = topic
			c.step = stepSource
			c.errMsg = ""
			return c, c.sourceInput.Init()
		case stepSource:
			source, err := c.readSource()
			if err != nil {
				c.errMsg = err.Error()
				return c, nil
			}
			c.step = stepGenerating
			c.errMsg = ""
			return c, tea.Batch(c.generate(source), spinnerTick())
		}
	}

	return c.forwardToInput(msg)
}

func (c *CreateScreen) forwardToInput(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	switch c.step {
	case stepTopic:
		c.topicInput, cmd = c.topicInput.Update(msg)
	case stepSource:
		c.sourceInput, cmd = c.sourceInput.Update(msg)
	}
	return c, cmd
}

// readSource loads the optional notes file named in the source input.
func (c *CreateScreen) readSource() (string, error) {
	path := strings.TrimSpace(c.sourceInput.Value())
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read source file: %w", err)
	}
	return string(data), nil
}

func (c *CreateScreen) generate(source string) tea.Cmd {
	svc := c.svc
	topic := c.topic
	folderID := c.folderID
	return func() tea.Msg {
		ctx := context.Background()
		sp, err := svc.CreatePack(ctx, topic, source)
		if err != nil {
			return packDoneMsg{Err: err}
		}
		if folderID != "" {
			_ = svc.MovePack(ctx, sp.ID, folderID)
		}
		return packDoneMsg{Pack: sp}
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (c *CreateScreen) View(width, height int) string {
	var sections []string

	title := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	switch c.step {
	case stepTopic:
		sections = append(sections, title.Render("What do you want to study?"))
		sections = append(sections, "")
		sections = append(sections, c.topicInput.View())
	case stepSource:
		sections = append(sections, title.Render("Add your own notes? (optional)"))
		sections = append(sections, dim.Render("The pack will be grounded in this file if given."))
		sections = append(sections, "")
		sections = append(sections, c.sourceInput.View())
	case stepGenerating:
		spinner := spinnerFrames[c.frame%len(spinnerFrames)]
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
			Render(fmt.Sprintf("%s Generating %q...", spinner, c.topic)))
		sections = append(sections, "")
		sections = append(sections, dim.Render("Building lesson, quiz, flashcards and glossary."))
		sections = append(sections, dim.Render("This can take a minute."))
	}

	if c.errMsg != "" {
		sections = append(sections, "")
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Error).Render(c.errMsg))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
