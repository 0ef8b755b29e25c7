// Package game wires the domain services around a single user profile and
// owns its persistence lifecycle.
package game

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/arnavsud/stethoquest/internal/badges"
	"github.com/arnavsud/stethoquest/internal/inventory"
	"github.com/arnavsud/stethoquest/internal/notify"
	"github.com/arnavsud/stethoquest/internal/packgen"
	"github.com/arnavsud/stethoquest/internal/profile"
	"github.com/arnavsud/stethoquest/internal/quests"
	"github.com/arnavsud/stethoquest/internal/quiz"
	"github.com/arnavsud/stethoquest/internal/rewards"
	"github.com/arnavsud/stethoquest/internal/store"
	"github.com/arnavsud/stethoquest/internal/streak"
	"github.com/arnavsud/stethoquest/internal/tutor"
)

const (
	// SnapshotRetention is how many profile snapshots are kept.
	SnapshotRetention = 20

	// GenTimeout bounds a single content-generation call, retries included.
	GenTimeout = 120 * time.Second
)

// Options carries the collaborators for a Service. Generator and Tutor are
// nil when no LLM provider is configured; the app runs without AI features.
type Options struct {
	SnapshotRepo store.SnapshotRepo
	EventRepo    store.EventRepo
	Generator    *packgen.Generator
	Tutor        *tutor.Service
}

// Service is the application orchestrator: every user-facing mutation goes
// through it so that rewards, quests, badges, streaks, and persistence stay
// consistent.
type Service struct {
	Profile   *profile.UserProfile
	Feed      *notify.Feed
	Ledger    *rewards.Ledger
	Quests    *quests.Engine
	Badges    *badges.Evaluator
	Streak    *streak.Tracker
	Inventory *inventory.Manager

	snapshots store.SnapshotRepo
	events    store.EventRepo
	generator *packgen.Generator
	tutor     *tutor.Service

	// generating is the single-flight guard for LLM calls.
	generating atomic.Bool

	// persistMu serializes snapshot writes from the fire-and-forget saver.
	persistMu sync.Mutex

	// Now is the clock; defaults to time.Now when nil.
	Now func() time.Time
}

// NewService builds the service graph over an empty profile. Call Load to
// restore persisted state.
func NewService(opts Options) *Service {
	p := profile.New("")
	feed := notify.NewFeed()

	s := &Service{
		Profile:   p,
		Feed:      feed,
		snapshots: opts.SnapshotRepo,
		events:    opts.EventRepo,
		generator: opts.Generator,
		tutor:     opts.Tutor,
	}

	s.Ledger = &rewards.Ledger{Profile: p, Notifier: feed, Events: opts.EventRepo}
	s.Quests = &quests.Engine{Profile: p, Ledger: s.Ledger, Notifier: feed, Events: opts.EventRepo}
	s.Ledger.Quests = s.Quests
	s.Badges = &badges.Evaluator{Profile: p, Notifier: feed, Events: opts.EventRepo}
	s.Streak = &streak.Tracker{
		Profile:  p,
		Ledger:   s.Ledger,
		Quests:   s.Quests,
		Badges:   s.Badges,
		Notifier: feed,
	}
	s.Inventory = &inventory.Manager{Profile: p, Ledger: s.Ledger, Notifier: feed}
	return s
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// rebind points every collaborator at a new profile value. Used after
// loading a snapshot or importing a backup.
func (s *Service) rebind(p *profile.UserProfile) {
	p.EnsureMaps()
	s.Profile = p
	s.Ledger.Profile = p
	s.Quests.Profile = p
	s.Badges.Profile = p
	s.Streak.Profile = p
	s.Inventory.Profile = p
}

// Load restores the latest snapshot and runs the startup sequence: purge
// expired soft-deletes, settle the daily streak, and rotate quests.
func (s *Service) Load(ctx context.Context) error {
	if s.snapshots != nil {
		snap, err := s.snapshots.Latest(ctx)
		if err != nil {
			return fmt.Errorf("load snapshot: %w", err)
		}
		if snap != nil && snap.Profile != nil {
			s.rebind(snap.Profile)
		}
	}

	if !s.Profile.LoggedIn() {
		return nil
	}

	if n := s.Profile.PurgeDeleted(s.now()); n > 0 {
		s.Feed.Notify(notify.KindInfo, fmt.Sprintf("Emptied %d expired item(s) from the bin", n))
	}
	s.Streak.CheckDaily(ctx)
	s.Quests.Refresh(ctx)
	s.Persist(ctx)
	return nil
}

// Login names the profile and starts its first streak day.
func (s *Service) Login(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("name must not be empty")
	}
	s.Profile.Name = name
	s.Streak.RecordActivity(ctx)
	s.Quests.Refresh(ctx)
	s.Persist(ctx)
	return nil
}

// Persist saves a profile snapshot in the background and prunes old ones.
// Persistence failures are reported on the feed, never propagated: losing a
// snapshot must not interrupt play.
func (s *Service) Persist(ctx context.Context) {
	if s.snapshots == nil {
		return
	}
	// Deep-copy on the caller's goroutine; the event loop keeps mutating
	// the live profile while the save runs.
	p, err := s.Profile.Clone()
	if err != nil {
		s.Feed.Notify(notify.KindError, fmt.Sprintf("Saving progress failed: %v", err))
		return
	}
	snap := &store.Snapshot{Timestamp: s.now(), Profile: p}
	go func() {
		s.persistMu.Lock()
		defer s.persistMu.Unlock()
		// Detach from the caller's lifetime: the TUI ctx may be gone.
		pctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.snapshots.Save(pctx, snap); err != nil {
			s.Feed.Notify(notify.KindError, fmt.Sprintf("Saving progress failed: %v", err))
			return
		}
		if err := s.snapshots.Prune(pctx, SnapshotRetention); err != nil {
			s.Feed.Notify(notify.KindError, fmt.Sprintf("Pruning snapshots failed: %v", err))
		}
	}()
}

// HasLLM reports whether an LLM provider is configured.
func (s *Service) HasLLM() bool {
	return s.generator != nil
}

// Generating reports whether an LLM call is in flight.
func (s *Service) Generating() bool {
	return s.generating.Load()
}

// beginGenerate acquires the single-flight guard.
func (s *Service) beginGenerate() error {
	if s.generator == nil {
		return fmt.Errorf("no LLM provider configured")
	}
	if !s.generating.CompareAndSwap(false, true) {
		return fmt.Errorf("another generation is already running")
	}
	return nil
}

// QuizMachine builds a fully wired session machine for the pack and variant.
func (s *Service) QuizMachine(packID string, variant profile.QuizVariant) (*quiz.Machine, error) {
	pack := s.Profile.Pack(packID)
	if pack == nil {
		return nil, fmt.Errorf("pack %s not found", packID)
	}
	return &quiz.Machine{
		Profile:  s.Profile,
		Pack:     pack,
		Variant:  variant,
		Ledger:   s.Ledger,
		Streak:   s.Streak,
		Quests:   s.Quests,
		Badges:   s.Badges,
		Notifier: s.Feed,
		Events:   s.events,
	}, nil
}

// ClaimQuest pays out a completed quest.
func (s *Service) ClaimQuest(ctx context.Context, questID string) bool {
	ok := s.Quests.Claim(ctx, questID)
	if ok {
		s.Badges.Sweep(ctx)
		s.Persist(ctx)
	}
	return ok
}

// PurchasePowerUp buys one unit from the shop.
func (s *Service) PurchasePowerUp(ctx context.Context, id profile.PowerUpID) bool {
	ok := s.Inventory.Purchase(ctx, id)
	if ok {
		s.Badges.Sweep(ctx)
		s.Persist(ctx)
	}
	return ok
}

// ActivateBoost triggers a timed boost.
func (s *Service) ActivateBoost(ctx context.Context, id profile.PowerUpID) bool {
	ok := s.Inventory.Activate(ctx, id)
	if ok {
		s.Persist(ctx)
	}
	return ok
}

// ActivateFocusBoost tags a pack for permanently doubled XP.
func (s *Service) ActivateFocusBoost(ctx context.Context, packID string) bool {
	ok := s.Inventory.ActivateFocusBoost(packID)
	if ok {
		s.Persist(ctx)
	}
	return ok
}
