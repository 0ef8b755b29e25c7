// Package rewards mutates the profile's XP and coin balances, applying
// active boost multipliers and the level-up bonus.
package rewards

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/arnavsud/stethoquest/internal/level"
	"github.com/arnavsud/stethoquest/internal/notify"
	"github.com/arnavsud/stethoquest/internal/profile"
	"github.com/arnavsud/stethoquest/internal/store"
)

// LevelUpCoinMultiplier scales the coin bonus paid when a level is gained:
// coins = newLevel * LevelUpCoinMultiplier.
const LevelUpCoinMultiplier = 25

// QuestProgress receives quest-category progress updates. Implemented by
// quests.Engine; wired by the game layer to avoid a package cycle.
type QuestProgress interface {
	UpdateProgress(category profile.QuestCategory, value int)
}

// Ledger applies XP and coin grants to a profile. All collaborators except
// Profile are nil-tolerant.
type Ledger struct {
	Profile  *profile.UserProfile
	Notifier notify.Notifier
	Quests   QuestProgress
	Events   store.EventRepo

	// Now is the clock; defaults to time.Now when nil.
	Now func() time.Time
}

func (l *Ledger) now() time.Time {
	if l.Now != nil {
		return l.Now()
	}
	return time.Now()
}

// GrantXP rounds amount to the nearest integer and adds it to the profile's
// XP. Amounts <= 0 after rounding are ignored. The amount is doubled when
// the source pack is in the boost set or the double-XP boost is active
// (flat doubling applied after any streak multiplier the caller baked in).
// A level gain pays the coin bonus. Returns the XP actually granted.
func (l *Ledger) GrantXP(ctx context.Context, amount float64, sourcePackID string) int {
	granted := int(math.Round(amount))
	if granted <= 0 {
		return 0
	}

	boosted := false
	if sourcePackID != "" && l.Profile.PackBoosted(sourcePackID) {
		granted *= 2
		boosted = true
	}
	if l.Profile.DoubleXPActive(l.now()) {
		granted *= 2
		boosted = true
	}

	before := level.LevelForXP(l.Profile.XP)
	l.Profile.XP += granted
	after := level.LevelForXP(l.Profile.XP)

	if boosted {
		l.notify(notify.KindReward, fmt.Sprintf("+%d XP (boosted!)", granted))
	} else {
		l.notify(notify.KindReward, fmt.Sprintf("+%d XP", granted))
	}
	l.appendEvent(ctx, store.RewardEventData{Kind: "xp", Amount: granted, Boosted: boosted, Source: sourcePackID})

	if l.Quests != nil {
		l.Quests.UpdateProgress(profile.CategoryEarnXP, granted)
	}

	if after > before {
		info := level.ForXP(l.Profile.XP)
		l.notify(notify.KindLevelUp, fmt.Sprintf("Level up! You are now level %d: %s", info.Level, info.Name))
		l.GrantCoins(ctx, float64(after*LevelUpCoinMultiplier), "Level-up bonus")
	}

	return granted
}

// GrantCoins rounds amount and adds it to the coin balance. Amounts <= 0
// after rounding are ignored. Doubled while the double-coin boost is active.
// Returns the coins actually granted.
func (l *Ledger) GrantCoins(ctx context.Context, amount float64, message string) int {
	granted := int(math.Round(amount))
	if granted <= 0 {
		return 0
	}

	boosted := false
	if l.Profile.DoubleCoinsActive(l.now()) {
		granted *= 2
		boosted = true
	}

	l.Profile.StethoCoins += granted

	msg := fmt.Sprintf("+%d StethoCoins", granted)
	if message != "" {
		msg = fmt.Sprintf("%s: +%d StethoCoins", message, granted)
	}
	if boosted {
		msg += " (boosted!)"
	}
	l.notify(notify.KindReward, msg)
	l.appendEvent(ctx, store.RewardEventData{Kind: "coins", Amount: granted, Boosted: boosted})

	return granted
}

// SpendCoins deducts amount if the balance covers it. Returns false (and
// changes nothing) otherwise.
func (l *Ledger) SpendCoins(ctx context.Context, amount int) bool {
	if amount <= 0 || l.Profile.StethoCoins < amount {
		return false
	}
	l.Profile.StethoCoins -= amount
	l.appendEvent(ctx, store.RewardEventData{Kind: "coins", Amount: -amount})
	return true
}

func (l *Ledger) notify(kind notify.Kind, msg string) {
	if l.Notifier != nil {
		l.Notifier.Notify(kind, msg)
	}
}

func (l *Ledger) appendEvent(ctx context.Context, data store.RewardEventData) {
	if l.Events == nil {
		return
	}
	_ = l.Events.AppendRewardEvent(ctx, data)
}
