// Package quests maintains the two independently rotating quest lists and
// pays rewards on claim.
package quests

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/arnavsud/stethoquest/internal/notify"
	"github.com/arnavsud/stethoquest/internal/profile"
	"github.com/arnavsud/stethoquest/internal/rewards"
	"github.com/arnavsud/stethoquest/internal/store"
)

// WeekStartDay is the weekday on which weekly quests rotate.
const WeekStartDay = time.Monday

// Engine owns quest rotation, progress tracking, and claims. All
// collaborators except Profile are nil-tolerant.
type Engine struct {
	Profile  *profile.UserProfile
	Ledger   *rewards.Ledger
	Notifier notify.Notifier
	Events   store.EventRepo

	// Now is the clock; defaults to time.Now when nil.
	Now func() time.Time

	// IntN picks a random int in [0,n); defaults to math/rand/v2.
	IntN func(n int) int
}

var _ rewards.QuestProgress = (*Engine)(nil)

func (e *Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func (e *Engine) intN(n int) int {
	if e.IntN != nil {
		return e.IntN(n)
	}
	return rand.IntN(n)
}

// Refresh runs both rotations. Called once at startup and whenever the app
// regains focus on a new day.
func (e *Engine) Refresh(ctx context.Context) {
	e.refreshDaily(ctx)
	e.refreshWeekly(ctx)
}

// refreshDaily rotates the daily list when the stored refresh date is not
// today. Quests of the other type are untouched, claimed or not.
func (e *Engine) refreshDaily(ctx context.Context) {
	now := e.now()
	if sameDay(now, e.Profile.LastDailyQuestRefresh) {
		return
	}
	e.rotate(ctx, profile.QuestDaily, DailyTemplates, DailyCount)
	e.Profile.LastDailyQuestRefresh = now
}

// refreshWeekly rotates the weekly list on the week-start day, provided at
// least one day has passed since the last weekly rotation.
func (e *Engine) refreshWeekly(ctx context.Context) {
	now := e.now()
	if now.Weekday() != WeekStartDay {
		return
	}
	if !e.Profile.LastWeeklyQuestRefresh.IsZero() && wholeDays(e.Profile.LastWeeklyQuestRefresh, now) < 1 {
		return
	}
	e.rotate(ctx, profile.QuestWeekly, WeeklyTemplates, WeeklyCount)
	e.Profile.LastWeeklyQuestRefresh = now
}

// rotate drops every quest of the given type and appends fresh instances of
// n templates selected at random without replacement.
func (e *Engine) rotate(ctx context.Context, qt profile.QuestType, templates []Template, n int) {
	kept := e.Profile.ActiveQuests[:0]
	for _, q := range e.Profile.ActiveQuests {
		if q.Type != qt {
			kept = append(kept, q)
		}
	}
	e.Profile.ActiveQuests = kept

	for _, t := range e.pick(templates, n) {
		e.Profile.ActiveQuests = append(e.Profile.ActiveQuests, &profile.Quest{
			ID:          uuid.New().String(),
			Type:        t.Type,
			Category:    t.Category,
			Title:       t.Title,
			Target:      t.Target,
			RewardXP:    t.RewardXP,
			RewardCoins: t.RewardCoins,
		})
	}

	if e.Events != nil {
		_ = e.Events.AppendQuestEvent(ctx, store.QuestEventData{Action: "rotate", QuestType: string(qt)})
	}
}

// pick selects n templates without replacement.
func (e *Engine) pick(templates []Template, n int) []Template {
	pool := make([]Template, len(templates))
	copy(pool, templates)
	if n > len(pool) {
		n = len(pool)
	}
	out := make([]Template, 0, n)
	for range n {
		i := e.intN(len(pool))
		out = append(out, pool[i])
		pool = append(pool[:i], pool[i+1:]...)
	}
	return out
}

// UpdateProgress advances every active, unclaimed quest in the category.
// Streak maintenance takes the max of current and new; every other category
// accumulates.
func (e *Engine) UpdateProgress(category profile.QuestCategory, value int) {
	for _, q := range e.Profile.ActiveQuests {
		if q.Claimed || q.Category != category {
			continue
		}
		if category == profile.CategoryMaintainStreak {
			if value > q.Progress {
				q.Progress = value
			}
		} else {
			q.Progress += value
		}
	}
}

// Claim pays a quest's rewards and marks it claimed. No-op unless the quest
// exists, is unclaimed, and has met its target. Returns true when paid.
func (e *Engine) Claim(ctx context.Context, questID string) bool {
	q := e.Profile.Quest(questID)
	if q == nil || !q.Claimable() {
		return false
	}
	q.Claimed = true

	if e.Notifier != nil {
		e.Notifier.Notify(notify.KindQuest, fmt.Sprintf("Quest complete: %s", q.Title))
	}
	if e.Ledger != nil {
		e.Ledger.GrantXP(ctx, float64(q.RewardXP), "")
		e.Ledger.GrantCoins(ctx, float64(q.RewardCoins), "Quest reward")
	}
	if e.Events != nil {
		_ = e.Events.AppendQuestEvent(ctx, store.QuestEventData{
			Action:    "claim",
			QuestType: string(q.Type),
			QuestID:   q.ID,
			Category:  string(q.Category),
		})
	}
	return true
}

// sameDay reports whether a and b fall on the same local calendar day.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// wholeDays returns the number of whole calendar days from a to b.
func wholeDays(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	at := time.Date(ay, am, ad, 0, 0, 0, 0, time.Local)
	bt := time.Date(by, bm, bd, 0, 0, 0, 0, time.Local)
	return int(bt.Sub(at).Hours() / 24)
}
