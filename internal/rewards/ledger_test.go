package rewards

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/arnavsud/stethoquest/internal/notify"
	"github.com/arnavsud/stethoquest/internal/profile"
)

var fixedNow = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.Local)

func testLedger() (*Ledger, *profile.UserProfile) {
	p := profile.New("sam")
	l := &Ledger{Profile: p, Now: func() time.Time { return fixedNow }}
	return l, p
}

// questRecorder captures progress updates routed to the quest engine.
type questRecorder struct {
	category profile.QuestCategory
	value    int
}

func (r *questRecorder) UpdateProgress(category profile.QuestCategory, value int) {
	r.category = category
	r.value += value
}

func TestGrantXPIgnoresNonPositive(t *testing.T) {
	l, p := testLedger()
	ctx := context.Background()

	assert.Equal(t, 0, l.GrantXP(ctx, 0, ""))
	assert.Equal(t, 0, l.GrantXP(ctx, -10, ""))
	assert.Equal(t, 0, l.GrantXP(ctx, 0.4, "")) // rounds to zero
	assert.Equal(t, 0, p.XP)
}

func TestGrantXPRounds(t *testing.T) {
	l, p := testLedger()
	ctx := context.Background()

	assert.Equal(t, 4, l.GrantXP(ctx, 4.4, ""))
	assert.Equal(t, 5, l.GrantXP(ctx, 4.5, ""))
	assert.Equal(t, 9, p.XP)
}

func TestGrantXPFocusBoostDoubles(t *testing.T) {
	l, p := testLedger()
	p.BoostedPackIDs["pack-1"] = true

	granted := l.GrantXP(context.Background(), 10, "pack-1")
	assert.Equal(t, 20, granted)
	assert.Equal(t, 20, p.XP)
}

func TestGrantXPBoostsStack(t *testing.T) {
	l, p := testLedger()
	p.BoostedPackIDs["pack-1"] = true
	p.DoubleXPUntil = fixedNow.Add(10 * time.Minute)

	granted := l.GrantXP(context.Background(), 10, "pack-1")
	assert.Equal(t, 40, granted)
}

func TestGrantXPExpiredBoostIgnored(t *testing.T) {
	l, p := testLedger()
	p.DoubleXPUntil = fixedNow.Add(-time.Minute)

	assert.Equal(t, 10, l.GrantXP(context.Background(), 10, ""))
}

func TestGrantXPLevelUpPaysCoinBonus(t *testing.T) {
	l, p := testLedger()
	feed := notify.NewFeed()
	l.Notifier = feed
	p.XP = 95

	l.GrantXP(context.Background(), 10, "")
	assert.Equal(t, 105, p.XP)
	// Reached level 2: bonus = 2 * 25.
	assert.Equal(t, 2*LevelUpCoinMultiplier, p.StethoCoins)

	kinds := make(map[notify.Kind]bool)
	for _, n := range feed.Drain() {
		kinds[n.Kind] = true
	}
	assert.True(t, kinds[notify.KindLevelUp])
	assert.True(t, kinds[notify.KindReward])
}

func TestGrantXPNoLevelUpNoBonus(t *testing.T) {
	l, p := testLedger()
	l.GrantXP(context.Background(), 50, "")
	assert.Equal(t, 0, p.StethoCoins)
}

func TestGrantXPFeedsQuestProgress(t *testing.T) {
	l, _ := testLedger()
	rec := &questRecorder{}
	l.Quests = rec

	l.GrantXP(context.Background(), 25, "")
	assert.Equal(t, profile.CategoryEarnXP, rec.category)
	assert.Equal(t, 25, rec.value)
}

func TestGrantCoinsDoublesWhileBoosted(t *testing.T) {
	l, p := testLedger()
	p.DoubleCoinsUntil = fixedNow.Add(10 * time.Minute)

	assert.Equal(t, 10, l.GrantCoins(context.Background(), 5, ""))
	assert.Equal(t, 10, p.StethoCoins)
}

func TestGrantCoinsIgnoresNonPositive(t *testing.T) {
	l, p := testLedger()
	assert.Equal(t, 0, l.GrantCoins(context.Background(), 0, ""))
	assert.Equal(t, 0, l.GrantCoins(context.Background(), -3, ""))
	assert.Equal(t, 0, p.StethoCoins)
}

func TestSpendCoins(t *testing.T) {
	l, p := testLedger()
	p.StethoCoins = 100
	ctx := context.Background()

	assert.False(t, l.SpendCoins(ctx, 150))
	assert.Equal(t, 100, p.StethoCoins)

	assert.True(t, l.SpendCoins(ctx, 60))
	assert.Equal(t, 40, p.StethoCoins)

	assert.False(t, l.SpendCoins(ctx, 0))
	assert.False(t, l.SpendCoins(ctx, -5))
	assert.Equal(t, 40, p.StethoCoins)
}
