// Package notify carries user-visible notifications from the state layer to
// whatever surface is rendering (TUI screens drain a Feed).
package notify

import (
	"sync"
	"time"
)

// Kind classifies a notice for display styling.
type Kind string

const (
	KindInfo    Kind = "info"
	KindReward  Kind = "reward"
	KindLevelUp Kind = "levelup"
	KindBadge   Kind = "badge"
	KindQuest   Kind = "quest"
	KindError   Kind = "error"
)

// Notice is one user-visible message.
type Notice struct {
	Kind    Kind
	Message string
	At      time.Time
}

// Notifier is implemented by anything that can surface a notice.
type Notifier interface {
	Notify(kind Kind, message string)
}

// Feed is an in-memory Notifier that accumulates notices until the UI
// drains them. Safe for use from background goroutines.
type Feed struct {
	mu      sync.Mutex
	notices []Notice
}

// NewFeed creates an empty feed.
func NewFeed() *Feed {
	return &Feed{}
}

// Notify appends a notice to the feed.
func (f *Feed) Notify(kind Kind, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notices = append(f.notices, Notice{Kind: kind, Message: message, At: time.Now()})
}

// Drain returns all pending notices and clears the feed.
func (f *Feed) Drain() []Notice {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := f.notices
	f.notices = nil
	return out
}

// Pending returns the number of undrained notices.
func (f *Feed) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.notices)
}

// Discard is a Notifier that drops every notice. Useful in tests and
// headless commands.
type Discard struct{}

func (Discard) Notify(Kind, string) {}
