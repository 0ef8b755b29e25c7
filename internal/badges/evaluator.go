package badges

import (
	"context"
	"fmt"

	"github.com/arnavsud/stethoquest/internal/notify"
	"github.com/arnavsud/stethoquest/internal/profile"
	"github.com/arnavsud/stethoquest/internal/store"
)

// Evaluator runs the badge sweep and direct unlocks. Notifier and Events
// are nil-tolerant.
type Evaluator struct {
	Profile  *profile.UserProfile
	Notifier notify.Notifier
	Events   store.EventRepo
}

// Sweep evaluates every catalog predicate against the current profile and
// unlocks all newly-satisfied badges in one batch. Returns the ids unlocked
// by this call.
func (e *Evaluator) Sweep(ctx context.Context) []profile.BadgeID {
	var unlocked []profile.BadgeID
	for i := range Catalog {
		b := &Catalog[i]
		if b.Predicate == nil || e.Profile.HasBadge(b.ID) {
			continue
		}
		if b.Predicate(e.Profile) {
			e.unlock(ctx, b)
			unlocked = append(unlocked, b.ID)
		}
	}
	return unlocked
}

// UnlockDirect unlocks a badge outside the sweep (hot streak, flawless
// victory, time-of-day badges). No-op if already unlocked or unknown.
func (e *Evaluator) UnlockDirect(ctx context.Context, id profile.BadgeID) bool {
	b := Lookup(id)
	if b == nil || e.Profile.HasBadge(id) {
		return false
	}
	e.unlock(ctx, b)
	return true
}

func (e *Evaluator) unlock(ctx context.Context, b *Badge) {
	e.Profile.UnlockBadge(b.ID)
	if e.Notifier != nil {
		e.Notifier.Notify(notify.KindBadge, fmt.Sprintf("Badge unlocked: %s — %s", b.Name, b.Description))
	}
	if e.Events != nil {
		_ = e.Events.AppendBadgeEvent(ctx, store.BadgeEventData{BadgeID: string(b.ID), Name: b.Name})
	}
}
