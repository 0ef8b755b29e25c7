package quests

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnavsud/stethoquest/internal/profile"
	"github.com/arnavsud/stethoquest/internal/rewards"
)

// tuesday keeps weekly rotation out of daily-focused tests.
var tuesday = time.Date(2026, time.August, 25, 12, 0, 0, 0, time.Local)
var monday = time.Date(2026, time.August, 24, 12, 0, 0, 0, time.Local)

func testEngine(now time.Time) (*Engine, *profile.UserProfile) {
	p := profile.New("sam")
	clock := func() time.Time { return now }
	e := &Engine{
		Profile: p,
		Ledger:  &rewards.Ledger{Profile: p, Now: clock},
		Now:     clock,
		IntN:    func(n int) int { return 0 },
	}
	return e, p
}

func TestRefreshFillsDailyQuests(t *testing.T) {
	e, p := testEngine(tuesday)
	e.Refresh(context.Background())

	require.Len(t, p.ActiveQuests, DailyCount)
	for _, q := range p.ActiveQuests {
		assert.Equal(t, profile.QuestDaily, q.Type)
		assert.NotEmpty(t, q.ID)
		assert.Zero(t, q.Progress)
	}
	assert.Equal(t, tuesday, p.LastDailyQuestRefresh)
}

func TestRefreshSameDayIsNoop(t *testing.T) {
	e, p := testEngine(tuesday)
	ctx := context.Background()
	e.Refresh(ctx)
	ids := questIDs(p)
	p.ActiveQuests[0].Progress = 5

	e.Refresh(ctx)
	assert.Equal(t, ids, questIDs(p))
	assert.Equal(t, 5, p.ActiveQuests[0].Progress)
}

func TestDailyRotationPreservesWeeklies(t *testing.T) {
	e, p := testEngine(tuesday)
	ctx := context.Background()
	p.LastDailyQuestRefresh = tuesday.AddDate(0, 0, -1)
	weekly := &profile.Quest{
		ID: "w1", Type: profile.QuestWeekly,
		Category: profile.CategoryEarnXP, Target: 1000, Progress: 400,
	}
	p.ActiveQuests = append(p.ActiveQuests, weekly)

	e.Refresh(ctx)
	require.Len(t, p.ActiveQuests, DailyCount+1)
	assert.Same(t, weekly, p.Quest("w1"))
	assert.Equal(t, 400, weekly.Progress)
}

func TestWeeklyRotatesOnlyOnWeekStart(t *testing.T) {
	e, p := testEngine(tuesday)
	ctx := context.Background()
	e.Refresh(ctx)
	assert.Len(t, p.ActiveQuests, DailyCount) // no weeklies on a Tuesday

	e2, p2 := testEngine(monday)
	e2.Refresh(ctx)
	assert.Len(t, p2.ActiveQuests, DailyCount+WeeklyCount)
	assert.Equal(t, monday, p2.LastWeeklyQuestRefresh)

	// Second refresh the same Monday must not rotate again.
	ids := questIDs(p2)
	e2.Refresh(ctx)
	assert.Equal(t, ids, questIDs(p2))
}

func TestUpdateProgressAccumulates(t *testing.T) {
	e, p := testEngine(tuesday)
	q := &profile.Quest{ID: "q1", Type: profile.QuestDaily, Category: profile.CategoryAnswerCorrectly, Target: 10}
	p.ActiveQuests = append(p.ActiveQuests, q)

	e.UpdateProgress(profile.CategoryAnswerCorrectly, 3)
	e.UpdateProgress(profile.CategoryAnswerCorrectly, 2)
	assert.Equal(t, 5, q.Progress)
}

func TestUpdateProgressStreakTakesMax(t *testing.T) {
	e, p := testEngine(tuesday)
	q := &profile.Quest{ID: "q1", Type: profile.QuestDaily, Category: profile.CategoryMaintainStreak, Target: 7}
	p.ActiveQuests = append(p.ActiveQuests, q)

	e.UpdateProgress(profile.CategoryMaintainStreak, 3)
	e.UpdateProgress(profile.CategoryMaintainStreak, 3)
	assert.Equal(t, 3, q.Progress)

	e.UpdateProgress(profile.CategoryMaintainStreak, 2)
	assert.Equal(t, 3, q.Progress) // never regresses

	e.UpdateProgress(profile.CategoryMaintainStreak, 4)
	assert.Equal(t, 4, q.Progress)
}

func TestUpdateProgressSkipsClaimed(t *testing.T) {
	e, p := testEngine(tuesday)
	q := &profile.Quest{ID: "q1", Category: profile.CategoryEarnXP, Target: 100, Progress: 100, Claimed: true}
	p.ActiveQuests = append(p.ActiveQuests, q)

	e.UpdateProgress(profile.CategoryEarnXP, 50)
	assert.Equal(t, 100, q.Progress)
}

func TestClaim(t *testing.T) {
	e, p := testEngine(tuesday)
	ctx := context.Background()
	q := &profile.Quest{
		ID: "q1", Type: profile.QuestDaily, Category: profile.CategoryCompleteQuiz,
		Target: 2, Progress: 1, RewardXP: 60, RewardCoins: 30,
	}
	p.ActiveQuests = append(p.ActiveQuests, q)

	assert.False(t, e.Claim(ctx, "q1")) // target not met
	assert.False(t, q.Claimed)

	q.Progress = 2
	assert.True(t, e.Claim(ctx, "q1"))
	assert.True(t, q.Claimed)
	assert.Equal(t, 60, p.XP)
	assert.Equal(t, 30, p.StethoCoins)

	// Claimed is terminal: no double payout.
	assert.False(t, e.Claim(ctx, "q1"))
	assert.Equal(t, 60, p.XP)

	assert.False(t, e.Claim(ctx, "missing"))
}

func TestPickWithoutReplacement(t *testing.T) {
	e, _ := testEngine(tuesday)
	picked := e.pick(DailyTemplates, DailyCount)
	require.Len(t, picked, DailyCount)

	seen := make(map[string]bool)
	for _, tpl := range picked {
		assert.False(t, seen[tpl.Key], tpl.Key)
		seen[tpl.Key] = true
	}

	// Asking for more than the catalog holds returns the whole catalog.
	assert.Len(t, e.pick(WeeklyTemplates, 99), len(WeeklyTemplates))
}

func questIDs(p *profile.UserProfile) []string {
	ids := make([]string, len(p.ActiveQuests))
	for i, q := range p.ActiveQuests {
		ids[i] = q.ID
	}
	return ids
}
