package badges

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arnavsud/stethoquest/internal/profile"
)

func TestSweepUnlocksSatisfiedBadges(t *testing.T) {
	p := profile.New("sam")
	p.StudyPacks = append(p.StudyPacks, &profile.StudyPack{ID: "pack-1", Title: "Cardiology"})
	e := &Evaluator{Profile: p}

	unlocked := e.Sweep(context.Background())
	assert.Equal(t, []profile.BadgeID{FirstPack}, unlocked)
	assert.True(t, p.HasBadge(FirstPack))
}

func TestSweepIsIdempotent(t *testing.T) {
	p := profile.New("sam")
	p.Streak = 7
	e := &Evaluator{Profile: p}
	ctx := context.Background()

	first := e.Sweep(ctx)
	assert.ElementsMatch(t, []profile.BadgeID{StreakStarter, WeekWarrior}, first)

	assert.Empty(t, e.Sweep(ctx))
}

func TestSweepIgnoresDeletedPacks(t *testing.T) {
	p := profile.New("sam")
	p.StudyPacks = append(p.StudyPacks, &profile.StudyPack{ID: "pack-1", Deleted: true})
	e := &Evaluator{Profile: p}

	assert.Empty(t, e.Sweep(context.Background()))
}

func TestSweepLevelBadges(t *testing.T) {
	p := profile.New("sam")
	p.XP = 1000 // level 5
	e := &Evaluator{Profile: p}

	unlocked := e.Sweep(context.Background())
	assert.Contains(t, unlocked, Resident)
	assert.NotContains(t, unlocked, Attending)
}

func TestUnlockDirect(t *testing.T) {
	p := profile.New("sam")
	e := &Evaluator{Profile: p}
	ctx := context.Background()

	assert.True(t, e.UnlockDirect(ctx, HotStreak))
	assert.False(t, e.UnlockDirect(ctx, HotStreak)) // already unlocked
	assert.False(t, e.UnlockDirect(ctx, profile.BadgeID("no_such_badge")))
}

func TestDirectBadgesHaveNoPredicate(t *testing.T) {
	for _, id := range []profile.BadgeID{FlawlessVictory, HotStreak, NightOwl, EarlyBird} {
		b := Lookup(id)
		assert.NotNil(t, b)
		assert.Nil(t, b.Predicate, string(id))
	}
}

func TestCatalogIDsAreUnique(t *testing.T) {
	seen := make(map[profile.BadgeID]bool)
	for _, b := range Catalog {
		assert.False(t, seen[b.ID], string(b.ID))
		seen[b.ID] = true
	}
}
