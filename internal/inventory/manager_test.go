package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/arnavsud/stethoquest/internal/profile"
	"github.com/arnavsud/stethoquest/internal/rewards"
)

var fixedNow = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.Local)

func testManager() (*Manager, *profile.UserProfile) {
	p := profile.New("sam")
	clock := func() time.Time { return fixedNow }
	m := &Manager{
		Profile: p,
		Ledger:  &rewards.Ledger{Profile: p, Now: clock},
		Now:     clock,
	}
	return m, p
}

func TestPurchase(t *testing.T) {
	m, p := testManager()
	ctx := context.Background()
	p.StethoCoins = 100

	assert.False(t, m.Purchase(ctx, StreakShield)) // costs 150
	assert.Equal(t, 100, p.StethoCoins)
	assert.Zero(t, p.Inventory[StreakShield])

	p.StethoCoins = 200
	assert.True(t, m.Purchase(ctx, StreakShield))
	assert.Equal(t, 50, p.StethoCoins)
	assert.Equal(t, 1, p.Inventory[StreakShield])

	assert.False(t, m.Purchase(ctx, profile.PowerUpID("NO_SUCH_ITEM")))
}

func TestConsumeNeverGoesNegative(t *testing.T) {
	m, p := testManager()
	assert.False(t, m.Consume(DoubleXP))

	p.Inventory[DoubleXP] = 1
	assert.True(t, m.Consume(DoubleXP))
	assert.False(t, m.Consume(DoubleXP))
	assert.Zero(t, p.Inventory[DoubleXP])
}

func TestActivateTimedBoost(t *testing.T) {
	m, p := testManager()
	ctx := context.Background()

	assert.False(t, m.Activate(ctx, DoubleXP)) // none owned

	p.Inventory[DoubleXP] = 2
	assert.True(t, m.Activate(ctx, DoubleXP))
	assert.Equal(t, 1, p.Inventory[DoubleXP])
	assert.Equal(t, fixedNow.Add(BoostDuration), p.DoubleXPUntil)

	// Already active: no second unit consumed.
	assert.False(t, m.Activate(ctx, DoubleXP))
	assert.Equal(t, 1, p.Inventory[DoubleXP])
}

func TestActivateRejectsUntimedPowerUps(t *testing.T) {
	m, p := testManager()
	ctx := context.Background()
	p.Inventory[StreakShield] = 1
	p.Inventory[FocusBoost] = 1

	assert.False(t, m.Activate(ctx, StreakShield))
	assert.False(t, m.Activate(ctx, FocusBoost))
	assert.Equal(t, 1, p.Inventory[StreakShield])
}

func TestActivateFocusBoost(t *testing.T) {
	m, p := testManager()

	assert.False(t, m.ActivateFocusBoost("pack-1")) // none owned

	p.Inventory[FocusBoost] = 2
	assert.True(t, m.ActivateFocusBoost("pack-1"))
	assert.True(t, p.PackBoosted("pack-1"))
	assert.Equal(t, 1, p.Inventory[FocusBoost])

	// Boosting the same pack twice wastes nothing.
	assert.False(t, m.ActivateFocusBoost("pack-1"))
	assert.Equal(t, 1, p.Inventory[FocusBoost])
}

func TestLookup(t *testing.T) {
	pu := Lookup(DoubleCoins)
	assert.NotNil(t, pu)
	assert.Equal(t, BoostDuration, pu.Duration)
	assert.Nil(t, Lookup(profile.PowerUpID("NO_SUCH_ITEM")))
}
