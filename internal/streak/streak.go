// Package streak maintains the consecutive-day activity counter: increments
// on new-day activity, breaks on missed days unless shielded.
package streak

import (
	"context"
	"fmt"
	"time"

	"github.com/arnavsud/stethoquest/internal/badges"
	"github.com/arnavsud/stethoquest/internal/inventory"
	"github.com/arnavsud/stethoquest/internal/notify"
	"github.com/arnavsud/stethoquest/internal/profile"
	"github.com/arnavsud/stethoquest/internal/rewards"
)

const (
	// DailyStreakCoins is the coin bonus paid once per new streak day.
	DailyStreakCoins = 10

	// StreakXPBonusPerDay scales the XP bonus for continuing a streak:
	// bonus = streak * StreakXPBonusPerDay, paid from streak length 2 up.
	StreakXPBonusPerDay = 5

	// Time-of-day badge boundaries (local hours).
	nightOwlHour  = 22
	earlyBirdHour = 7
)

// Tracker applies streak rules to a profile. All collaborators except
// Profile are nil-tolerant.
type Tracker struct {
	Profile  *profile.UserProfile
	Ledger   *rewards.Ledger
	Quests   rewards.QuestProgress
	Badges   *badges.Evaluator
	Notifier notify.Notifier

	// Now is the clock; defaults to time.Now when nil.
	Now func() time.Time
}

func (t *Tracker) now() time.Time {
	if t.Now != nil {
		return t.Now()
	}
	return time.Now()
}

// CheckDaily runs once at startup for a named profile. A gap of more than
// one whole day breaks the streak, unless a streak shield is owned, in
// which case one shield is consumed and the last-activity date is backdated
// to yesterday so the streak survives.
func (t *Tracker) CheckDaily(ctx context.Context) {
	if !t.Profile.LoggedIn() || t.Profile.LastActivityDate.IsZero() {
		return
	}

	now := t.now()
	gap := wholeDays(t.Profile.LastActivityDate, now)
	if gap <= 1 {
		return
	}

	if t.Profile.Inventory[inventory.StreakShield] > 0 {
		t.Profile.Inventory[inventory.StreakShield]--
		t.Profile.LastActivityDate = startOfDay(now).AddDate(0, 0, -1)
		t.notify(notify.KindInfo, fmt.Sprintf("Streak Shield consumed — your %d-day streak survives!", t.Profile.Streak))
		return
	}

	if t.Profile.Streak > 0 {
		t.notify(notify.KindInfo, fmt.Sprintf("Your %d-day streak has ended", t.Profile.Streak))
	}
	t.Profile.Streak = 0
}

// RecordActivity runs on every qualifying user action (pack creation, quiz
// completion, tutor message). It advances or restarts the streak based on
// the whole-day gap since the last activity.
func (t *Tracker) RecordActivity(ctx context.Context) {
	now := t.now()
	last := t.Profile.LastActivityDate
	first := last.IsZero()
	gap := 0
	if !first {
		gap = wholeDays(last, now)
	}

	switch {
	case first || (gap > 1 && !first):
		// First-ever activity, or the streak broke: start a new one.
		t.Profile.Streak = 1
		t.Ledger.GrantCoins(ctx, DailyStreakCoins, "Daily streak")
		t.notify(notify.KindInfo, "New streak started!")

	case gap == 1:
		t.Profile.Streak++
		t.Ledger.GrantCoins(ctx, DailyStreakCoins, "Daily streak")
		if t.Profile.Streak >= 2 {
			bonus := t.Profile.Streak * StreakXPBonusPerDay
			t.Ledger.GrantXP(ctx, float64(bonus), "")
			t.notify(notify.KindReward, fmt.Sprintf("%d-day streak!", t.Profile.Streak))
		} else {
			t.notify(notify.KindInfo, fmt.Sprintf("%d-day streak", t.Profile.Streak))
		}

	default:
		// Same day: just refresh the timestamp.
	}

	t.Profile.LastActivityDate = now

	if t.Quests != nil {
		t.Quests.UpdateProgress(profile.CategoryMaintainStreak, t.Profile.Streak)
	}

	// Time-of-day badges; UnlockDirect is idempotent.
	if t.Badges != nil {
		hour := now.Hour()
		if hour >= nightOwlHour {
			t.Badges.UnlockDirect(ctx, badges.NightOwl)
		}
		if hour < earlyBirdHour {
			t.Badges.UnlockDirect(ctx, badges.EarlyBird)
		}
	}
}

func (t *Tracker) notify(kind notify.Kind, msg string) {
	if t.Notifier != nil {
		t.Notifier.Notify(kind, msg)
	}
}

// startOfDay truncates a time to local midnight.
func startOfDay(ts time.Time) time.Time {
	y, m, d := ts.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, ts.Location())
}

// wholeDays returns the number of whole calendar days from a to b.
func wholeDays(a, b time.Time) int {
	return int(startOfDay(b).Sub(startOfDay(a)).Hours() / 24)
}
