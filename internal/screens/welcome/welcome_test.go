package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/arnavsud/stethoquest/internal/game"
	"github.com/arnavsud/stethoquest/internal/router"
	"github.com/arnavsud/stethoquest/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "home" }
func (s *stubScreen) Title() string                           { return "Home" }

func newTestWelcome(loggedIn bool) (*WelcomeScreen, *int) {
	svc := game.NewService(game.Options{})
	if loggedIn {
		svc.Profile.Name = "sam"
	}
	callCount := 0
	factory := func() screen.Screen {
		callCount++
		return &stubScreen{}
	}
	return New(svc, factory), &callCount
}

func sendTicks(w *WelcomeScreen, n int) {
	for i := 0; i < n; i++ {
		w.Update(tickMsg(time.Now()))
	}
}

func TestPhaseTransitions(t *testing.T) {
	w, _ := newTestWelcome(true)

	// Initially at phase 0, no banner visible
	view := w.View(80, 24)
	if strings.Contains(view, "Study medicine") {
		t.Error("tagline should not be visible at start")
	}

	sendTicks(w, 5)
	if w.elapsed != 500*time.Millisecond {
		t.Errorf("expected elapsed 500ms, got %v", w.elapsed)
	}

	sendTicks(w, 25)
	view = w.View(80, 24)
	if !strings.Contains(view, "Study medicine") {
		t.Error("tagline should be visible after the animation")
	}
}

func TestKeypressDuringAnimationSkipsAhead(t *testing.T) {
	w, callCount := newTestWelcome(true)

	sendTicks(w, 3)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd != nil {
		t.Fatal("first keypress should only skip the animation")
	}
	if w.elapsed != totalDur {
		t.Errorf("expected elapsed capped at %v, got %v", totalDur, w.elapsed)
	}

	// Second keypress transitions.
	_, cmd = w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("keypress after animation should trigger transition")
	}
	msg := cmd()
	if _, ok := msg.(router.ReplaceScreenMsg); !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if *callCount != 1 {
		t.Errorf("factory should be called once, got %d", *callCount)
	}
}

func TestFreshProfileAsksForName(t *testing.T) {
	w, callCount := newTestWelcome(false)

	sendTicks(w, 45)
	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("expected input focus command")
	}
	if !w.naming {
		t.Fatal("expected name entry mode")
	}

	// Type a name and submit.
	for _, r := range "sam" {
		w.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	_, cmd = w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected login command")
	}
	msg := cmd()
	done, ok := msg.(loginDoneMsg)
	if !ok {
		t.Fatalf("expected loginDoneMsg, got %T", msg)
	}
	if done.Err != nil {
		t.Fatalf("login failed: %v", done.Err)
	}
	if w.svc.Profile.Name != "sam" {
		t.Errorf("expected profile name sam, got %q", w.svc.Profile.Name)
	}

	// Login result triggers the transition.
	_, cmd = w.Update(done)
	if cmd == nil {
		t.Fatal("expected transition command")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatal("expected ReplaceScreenMsg after login")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called once, got %d", *callCount)
	}
}

func TestEmptyNameRejected(t *testing.T) {
	w, _ := newTestWelcome(false)
	sendTicks(w, 45)
	w.Update(tea.KeyPressMsg{Code: ' '})

	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("enter with empty name should do nothing")
	}
}

func TestFactoryCalledOnce(t *testing.T) {
	w, callCount := newTestWelcome(true)

	sendTicks(w, 45)
	w.Update(tea.KeyPressMsg{Code: 'a'})

	_, cmd := w.Update(tea.KeyPressMsg{Code: 'b'})
	if cmd != nil {
		t.Error("second keypress should not produce a command")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called exactly once, got %d", *callCount)
	}
}

func TestTitleEmpty(t *testing.T) {
	w, _ := newTestWelcome(true)
	if w.Title() != "" {
		t.Errorf("expected empty title, got %q", w.Title())
	}
}
