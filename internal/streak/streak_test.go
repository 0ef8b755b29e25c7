package streak

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/arnavsud/stethoquest/internal/inventory"
	"github.com/arnavsud/stethoquest/internal/profile"
	"github.com/arnavsud/stethoquest/internal/rewards"
)

// noon avoids the time-of-day badge paths.
var noon = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.Local)

func testTracker(now time.Time) (*Tracker, *profile.UserProfile) {
	p := profile.New("sam")
	clock := func() time.Time { return now }
	ledger := &rewards.Ledger{Profile: p, Now: clock}
	return &Tracker{Profile: p, Ledger: ledger, Now: clock}, p
}

func TestRecordActivityFirstEver(t *testing.T) {
	tr, p := testTracker(noon)
	tr.RecordActivity(context.Background())

	assert.Equal(t, 1, p.Streak)
	assert.Equal(t, DailyStreakCoins, p.StethoCoins)
	assert.Equal(t, noon, p.LastActivityDate)
}

func TestRecordActivitySameDayIsIdempotent(t *testing.T) {
	tr, p := testTracker(noon)
	ctx := context.Background()
	tr.RecordActivity(ctx)
	tr.RecordActivity(ctx)

	assert.Equal(t, 1, p.Streak)
	assert.Equal(t, DailyStreakCoins, p.StethoCoins)
}

func TestRecordActivityNextDayExtends(t *testing.T) {
	tr, p := testTracker(noon)
	ctx := context.Background()
	p.Streak = 1
	p.LastActivityDate = noon.AddDate(0, 0, -1)

	tr.RecordActivity(ctx)
	assert.Equal(t, 2, p.Streak)
	assert.Equal(t, DailyStreakCoins, p.StethoCoins)
	assert.Equal(t, 2*StreakXPBonusPerDay, p.XP)
}

func TestRecordActivityGapRestarts(t *testing.T) {
	tr, p := testTracker(noon)
	p.Streak = 9
	p.LastActivityDate = noon.AddDate(0, 0, -3)

	tr.RecordActivity(context.Background())
	assert.Equal(t, 1, p.Streak)
}

func TestCheckDailyBreaksStreak(t *testing.T) {
	tr, p := testTracker(noon)
	p.Streak = 5
	p.LastActivityDate = noon.AddDate(0, 0, -3)

	tr.CheckDaily(context.Background())
	assert.Equal(t, 0, p.Streak)
}

func TestCheckDailyShieldSavesStreak(t *testing.T) {
	tr, p := testTracker(noon)
	p.Streak = 5
	p.LastActivityDate = noon.AddDate(0, 0, -3)
	p.Inventory[inventory.StreakShield] = 1

	tr.CheckDaily(context.Background())
	assert.Equal(t, 5, p.Streak)
	assert.Equal(t, 0, p.Inventory[inventory.StreakShield])

	// Backdated to yesterday: the next activity extends rather than restarts.
	tr.RecordActivity(context.Background())
	assert.Equal(t, 6, p.Streak)
}

func TestCheckDailyWithinOneDayIsNoop(t *testing.T) {
	tr, p := testTracker(noon)
	p.Streak = 4
	p.LastActivityDate = noon.AddDate(0, 0, -1)
	p.Inventory[inventory.StreakShield] = 1

	tr.CheckDaily(context.Background())
	assert.Equal(t, 4, p.Streak)
	assert.Equal(t, 1, p.Inventory[inventory.StreakShield])
}

func TestCheckDailySkipsFreshProfiles(t *testing.T) {
	tr, p := testTracker(noon)
	tr.CheckDaily(context.Background())
	assert.Equal(t, 0, p.Streak)

	p.Name = ""
	p.Streak = 3
	p.LastActivityDate = noon.AddDate(0, 0, -5)
	tr.CheckDaily(context.Background())
	assert.Equal(t, 3, p.Streak) // not logged in: untouched
}

func TestWholeDays(t *testing.T) {
	lateNight := time.Date(2026, time.March, 10, 23, 50, 0, 0, time.Local)
	nextMorning := time.Date(2026, time.March, 11, 0, 10, 0, 0, time.Local)

	// Twenty minutes apart but across midnight: one whole day.
	assert.Equal(t, 1, wholeDays(lateNight, nextMorning))
	assert.Equal(t, 0, wholeDays(noon, noon.Add(4*time.Hour)))
	assert.Equal(t, 3, wholeDays(noon.AddDate(0, 0, -3), noon))
}
