// Package library is the study-pack browser: folders, packs, and the bin of
// soft-deleted items.
package library

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arnavsud/stethoquest/internal/game"
	"github.com/arnavsud/stethoquest/internal/profile"
	"github.com/arnavsud/stethoquest/internal/router"
	"github.com/arnavsud/stethoquest/internal/screen"
	"github.com/arnavsud/stethoquest/internal/screens/create"
	"github.com/arnavsud/stethoquest/internal/screens/pack"
	"github.com/arnavsud/stethoquest/internal/ui/components"
	"github.com/arnavsud/stethoquest/internal/ui/layout"
	"github.com/arnavsud/stethoquest/internal/ui/theme"
)

// entry is one browsable row: a folder or a pack.
type entry struct {
	folder *profile.Folder
	pack   *profile.StudyPack
}

// LibraryScreen browses folders and packs.
type LibraryScreen struct {
	svc *game.Service

	// folderID is the folder being viewed; "" is the top level.
	folderID string
	cursor   int
	binView  bool

	// naming holds an in-progress folder creation or rename.
	naming      bool
	renameID    string
	renamePack  bool
	input       components.TextInput
	confirmWipe bool
}

var _ screen.Screen = (*LibraryScreen)(nil)
var _ screen.KeyHintProvider = (*LibraryScreen)(nil)

// New creates a LibraryScreen at the top level.
func New(svc *game.Service) *LibraryScreen {
	return &LibraryScreen{svc: svc}
}

func (l *LibraryScreen) Init() tea.Cmd {
	return nil
}

func (l *LibraryScreen) Title() string {
	if l.binView {
		return "Bin"
	}
	if f := l.svc.Profile.Folder(l.folderID); f != nil {
		return f.Name
	}
	return "Library"
}

func (l *LibraryScreen) KeyHints() []layout.KeyHint {
	if l.naming {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Save"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	if l.binView {
		return []layout.KeyHint{
			{Key: "u", Description: "Restore"},
			{Key: "b", Description: "Close bin"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Open"},
		{Key: "n", Description: "New pack"},
		{Key: "f", Description: "New folder"},
		{Key: "r", Description: "Rename"},
		{Key: "d", Description: "Delete"},
		{Key: "b", Description: "Bin"},
	}
}

// HandlesEsc keeps the router from popping while a name prompt is open.
func (l *LibraryScreen) HandlesEsc() bool {
	return l.naming
}

// entries returns the rows for the current view: folders first, then packs.
func (l *LibraryScreen) entries() []entry {
	p := l.svc.Profile
	var out []entry
	if l.binView {
		for _, sp := range p.StudyPacks {
			if sp.Deleted {
				out = append(out, entry{pack: sp})
			}
		}
		return out
	}
	for _, f := range p.Folders {
		if !f.Deleted && f.ParentID == l.folderID {
			out = append(out, entry{folder: f})
		}
	}
	for _, sp := range p.StudyPacks {
		if !sp.Deleted && sp.FolderID == l.folderID {
			out = append(out, entry{pack: sp})
		}
	}
	return out
}

func (l *LibraryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		if l.naming {
			var cmd tea.Cmd
			l.input, cmd = l.input.Update(msg)
			return l, cmd
		}
		return l, nil
	}

	if l.naming {
		return l.updateNaming(kmsg)
	}

	entries := l.entries()
	ctx := context.Background()

	switch kmsg.String() {
	case "up", "k":
		if l.cursor > 0 {
			l.cursor--
		}
	case "down", "j":
		if l.cursor < len(entries)-1 {
			l.cursor++
		}
	case "enter":
		if l.cursor >= len(entries) {
			return l, nil
		}
		e := entries[l.cursor]
		if e.folder != nil {
			l.folderID = e.folder.ID
			l.cursor = 0
			return l, nil
		}
		if e.pack != nil && !l.binView {
			sp := e.pack
			return l, func() tea.Msg {
				return router.PushScreenMsg{Screen: pack.New(l.svc, sp.ID)}
			}
		}
	case "left", "backspace":
		if l.binView {
			l.binView = false
			l.cursor = 0
			return l, nil
		}
		if l.folderID != "" {
			parent := ""
			if f := l.svc.Profile.Folder(l.folderID); f != nil {
				parent = f.ParentID
			}
			l.folderID = parent
			l.cursor = 0
		}
	case "n":
		if l.binView || !l.svc.HasLLM() {
			return l, nil
		}
		svc := l.svc
		folderID := l.folderID
		return l, func() tea.Msg {
			return router.PushScreenMsg{Screen: create.NewInFolder(svc, folderID)}
		}
	case "f":
		if l.binView {
			return l, nil
		}
		l.naming = true
		l.renameID = ""
		l.input = components.NewTextInput("Folder name", false, 32)
		return l, l.input.Init()
	case "r":
		if l.binView || l.cursor >= len(entries) {
			return l, nil
		}
		e := entries[l.cursor]
		l.naming = true
		if e.folder != nil {
			l.renameID = e.folder.ID
			l.renamePack = false
		} else {
			l.renameID = e.pack.ID
			l.renamePack = true
		}
		l.input = components.NewTextInput("New name", false, 48)
		return l, l.input.Init()
	case "d":
		if l.binView || l.cursor >= len(entries) {
			return l, nil
		}
		e := entries[l.cursor]
		if e.folder != nil {
			_ = l.svc.DeleteFolder(ctx, e.folder.ID)
		} else {
			_ = l.svc.DeletePack(ctx, e.pack.ID)
		}
		l.clampCursor()
	case "u":
		if !l.binView || l.cursor >= len(entries) {
			return l, nil
		}
		if e := entries[l.cursor]; e.pack != nil {
			_ = l.svc.RestorePack(ctx, e.pack.ID)
		}
		l.clampCursor()
	case "b":
		l.binView = !l.binView
		l.cursor = 0
	}

	return l, nil
}

func (l *LibraryScreen) updateNaming(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	ctx := context.Background()
	switch msg.String() {
	case "esc":
		l.naming = false
		return l, nil
	case "enter":
		name := strings.TrimSpace(l.input.Value())
		if name == "" {
			return l, nil
		}
		switch {
		case l.renameID == "":
			_, _ = l.svc.CreateFolder(ctx, name, l.folderID)
		case l.renamePack:
			_ = l.svc.RenamePack(ctx, l.renameID, name)
		default:
			_ = l.svc.RenameFolder(ctx, l.renameID, name)
		}
		l.naming = false
		return l, nil
	}
	var cmd tea.Cmd
	l.input, cmd = l.input.Update(msg)
	return l, cmd
}

func (l *LibraryScreen) clampCursor() {
	if n := len(l.entries()); l.cursor >= n && n > 0 {
		l.cursor = n - 1
	} else if n == 0 {
		l.cursor = 0
	}
}

func (l *LibraryScreen) View(width, height int) string {
	var b strings.Builder

	if l.naming {
		prompt := "New folder"
		if l.renameID != "" {
			prompt = "Rename"
		}
		content := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(prompt) +
			"\n\n" + l.input.View()
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
	}

	entries := l.entries()
	if len(entries) == 0 {
		msg := "No study packs yet.\n\nPress n to create your first pack!"
		if l.binView {
			msg = "The bin is empty."
		} else if !l.svc.HasLLM() {
			msg = "No study packs yet.\n\nSet an LLM API key to generate packs."
		}
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Align(lipgloss.Center).Render(msg))
	}

	b.WriteString("\n")
	maxVisible := height - 4
	if maxVisible < 3 {
		maxVisible = 3
	}
	start := 0
	if l.cursor >= maxVisible {
		start = l.cursor - maxVisible + 1
	}
	end := start + maxVisible
	if end > len(entries) {
		end = len(entries)
	}

	for i := start; i < end; i++ {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, l.renderRow(entries[i], i == l.cursor)))
		b.WriteString("\n")
	}

	if end < len(entries) {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render(fmt.Sprintf("... %d more", len(entries)-end)))
	}

	return b.String()
}

func (l *LibraryScreen) renderRow(e entry, selected bool) string {
	prefix := "  "
	if selected {
		prefix = "▸ "
	}

	var line string
	if e.folder != nil {
		line = fmt.Sprintf("%s▣ %-40s", prefix, e.folder.Name)
	} else {
		sp := e.pack
		line = fmt.Sprintf("%s◈ %-40s %3d%%  %d Qs", prefix, sp.Title, sp.Progress, len(sp.Quiz))
	}

	if selected {
		return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line)
	}
	if e.folder != nil {
		return lipgloss.NewStyle().Foreground(theme.Secondary).Render(line)
	}
	return lipgloss.NewStyle().Foreground(theme.Text).Render(line)
}
