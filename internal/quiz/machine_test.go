package quiz

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnavsud/stethoquest/internal/badges"
	"github.com/arnavsud/stethoquest/internal/profile"
	"github.com/arnavsud/stethoquest/internal/rewards"
)

func testPack(difficulties ...profile.Difficulty) *profile.StudyPack {
	pack := &profile.StudyPack{ID: "pack-1", Title: "Cardiology"}
	for i, d := range difficulties {
		pack.Quiz = append(pack.Quiz, profile.QuizQuestion{
			ID:             fmt.Sprintf("q%d", i+1),
			Question:       fmt.Sprintf("Question %d", i+1),
			Options:        []string{"A", "B", "C", "D"},
			CorrectAnswers: []string{"A"},
			Difficulty:     d,
		})
	}
	pack.OriginalQuizCount = len(pack.Quiz)
	return pack
}

func testMachine(pack *profile.StudyPack) *Machine {
	p := profile.New("sam")
	p.StudyPacks = append(p.StudyPacks, pack)
	m := NewMachine(p, pack, profile.VariantStandard)
	m.Ledger = &rewards.Ledger{Profile: p}
	m.Badges = &badges.Evaluator{Profile: p}
	return m
}

func TestSubmitCorrectEasyQuestion(t *testing.T) {
	m := testMachine(testPack(profile.DifficultyEasy, profile.DifficultyEasy))

	res := m.Submit(context.Background(), []string{"A"})
	require.NotNil(t, res)
	assert.True(t, res.Correct)
	assert.Equal(t, 12, res.XPGranted) // base 10 + easy 2, no combo at 1
	assert.Equal(t, 2, res.CoinsGranted)
	assert.Equal(t, 1, res.Combo)
	assert.Equal(t, 12, m.Profile.XP)
	assert.Equal(t, 2, m.Profile.StethoCoins)
	assert.Equal(t, 1, m.Profile.TotalCorrectAnswers)
}

func TestSubmitComboBonusAndReset(t *testing.T) {
	m := testMachine(testPack(profile.DifficultyEasy, profile.DifficultyEasy, profile.DifficultyEasy))
	ctx := context.Background()

	m.Submit(ctx, []string{"A"})
	m.Next(ctx)
	res := m.Submit(ctx, []string{"A"})
	require.NotNil(t, res)
	assert.Equal(t, 2, res.Combo)
	assert.Equal(t, 14, res.XPGranted) // 10 + 2 + combo bonus 2*(2-1)

	m.Next(ctx)
	res = m.Submit(ctx, []string{"B"})
	require.NotNil(t, res)
	assert.False(t, res.Correct)
	assert.Equal(t, 0, res.Combo)
	assert.Equal(t, []string{"q3"}, m.Session().IncorrectlyAnsweredIDs)
}

func TestSubmitRewardDedupAcrossSessions(t *testing.T) {
	m := testMachine(testPack(profile.DifficultyMedium))
	ctx := context.Background()

	res := m.Submit(ctx, []string{"A"})
	require.NotNil(t, res)
	assert.Equal(t, 15, res.XPGranted)

	m.RestartAll()
	res = m.Submit(ctx, []string{"A"})
	require.NotNil(t, res)
	assert.True(t, res.Correct)
	assert.Equal(t, 0, res.XPGranted)
	assert.Equal(t, 0, res.CoinsGranted)
	assert.Equal(t, 15, m.Profile.XP)
	// The lifetime counter still moves.
	assert.Equal(t, 2, m.Profile.TotalCorrectAnswers)
}

func TestSubmitStreakMultiplier(t *testing.T) {
	m := testMachine(testPack(profile.DifficultyEasy))
	m.Profile.Streak = 3 // multiplier 1.4

	res := m.Submit(context.Background(), []string{"A"})
	require.NotNil(t, res)
	assert.Equal(t, 17, res.XPGranted) // round(12 * 1.4)
}

func TestSubmitIgnoresDoubleSubmission(t *testing.T) {
	m := testMachine(testPack(profile.DifficultyEasy))
	ctx := context.Background()

	require.NotNil(t, m.Submit(ctx, []string{"A"}))
	assert.Nil(t, m.Submit(ctx, []string{"A"}))
}

func TestPackCompletionBonus(t *testing.T) {
	m := testMachine(testPack(profile.DifficultyEasy, profile.DifficultyEasy))
	ctx := context.Background()

	res := m.Submit(ctx, []string{"A"})
	require.NotNil(t, res)
	assert.False(t, res.PackCompleted)
	assert.Equal(t, 50, m.Pack.Progress)

	m.Next(ctx)
	res = m.Submit(ctx, []string{"A"})
	require.NotNil(t, res)
	assert.True(t, res.PackCompleted)
	assert.Equal(t, 100, m.Pack.Progress)
	// 2 + 2 difficulty coins + 50 completion bonus
	assert.Equal(t, 54, m.Profile.StethoCoins)
}

func TestHotStreakBadgeAtComboFive(t *testing.T) {
	m := testMachine(testPack(
		profile.DifficultyEasy, profile.DifficultyEasy, profile.DifficultyEasy,
		profile.DifficultyEasy, profile.DifficultyEasy,
	))
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NotNil(t, m.Submit(ctx, []string{"A"}))
		if i < 4 {
			assert.False(t, m.Profile.HasBadge(badges.HotStreak))
			m.Next(ctx)
		}
	}
	assert.True(t, m.Profile.HasBadge(badges.HotStreak))
}

func TestNextCompletesSessionOnce(t *testing.T) {
	m := testMachine(testPack(profile.DifficultyHard))
	ctx := context.Background()

	m.Submit(ctx, []string{"A"})
	m.Next(ctx)
	assert.True(t, m.Session().ShowingResults)
	assert.Equal(t, 1, m.Profile.QuizzesCompleted)
	assert.Equal(t, 1, m.Profile.PerfectQuizCompletions)
	assert.True(t, m.Profile.HasBadge(badges.FlawlessVictory))

	// Next at the results view is inert.
	m.Next(ctx)
	assert.Equal(t, 1, m.Profile.QuizzesCompleted)
}

func TestImperfectPassSkipsPerfectRewards(t *testing.T) {
	m := testMachine(testPack(profile.DifficultyHard, profile.DifficultyHard))
	ctx := context.Background()

	m.Submit(ctx, []string{"B"})
	m.Next(ctx)
	m.Submit(ctx, []string{"A"})
	m.Next(ctx)

	assert.Equal(t, 1, m.Profile.QuizzesCompleted)
	assert.Equal(t, 0, m.Profile.PerfectQuizCompletions)
	assert.False(t, m.Profile.HasBadge(badges.FlawlessVictory))
}

func TestRetryIncorrect(t *testing.T) {
	m := testMachine(testPack(profile.DifficultyEasy, profile.DifficultyEasy, profile.DifficultyEasy))
	ctx := context.Background()

	m.Submit(ctx, []string{"B"})
	m.Next(ctx)
	m.Submit(ctx, []string{"A"})
	m.Next(ctx)
	m.Submit(ctx, []string{"B"})
	m.Next(ctx)
	require.True(t, m.Session().ShowingResults)

	require.True(t, m.RetryIncorrect())
	sess := m.Session()
	assert.Equal(t, []string{"q1", "q3"}, sess.ActiveQuestionIDs)
	assert.Equal(t, 0, sess.CurrentQuestionIndex)
	assert.Equal(t, 0, sess.ComboCount)
	assert.False(t, sess.ShowingResults)
	assert.Empty(t, sess.SubmittedAnswers)

	// Nothing to retry after a clean pass.
	m.Submit(ctx, []string{"A"})
	m.Next(ctx)
	m.Submit(ctx, []string{"A"})
	m.Next(ctx)
	assert.False(t, m.RetryIncorrect())
}

func TestRestartAllUsesCurrentQuestionList(t *testing.T) {
	pack := testPack(profile.DifficultyEasy)
	m := testMachine(pack)
	ctx := context.Background()

	m.Submit(ctx, []string{"A"})
	pack.AppendQuestions(profile.VariantStandard, []profile.QuizQuestion{{
		ID:             "q-new",
		Options:        []string{"A", "B"},
		CorrectAnswers: []string{"A"},
		Difficulty:     profile.DifficultyEasy,
	}})

	m.RestartAll()
	assert.Equal(t, []string{"q1", "q-new"}, m.Session().ActiveQuestionIDs)
}

func TestPrevClampsAndLeavesResults(t *testing.T) {
	m := testMachine(testPack(profile.DifficultyEasy, profile.DifficultyEasy))
	ctx := context.Background()

	m.Prev()
	assert.Equal(t, 0, m.Session().CurrentQuestionIndex)

	m.Submit(ctx, []string{"A"})
	m.Next(ctx)
	m.Submit(ctx, []string{"B"})
	m.Next(ctx)
	require.True(t, m.Session().ShowingResults)

	m.Prev()
	assert.False(t, m.Session().ShowingResults)
	assert.Equal(t, 1, m.Session().CurrentQuestionIndex)
}

func TestCheckAnswer(t *testing.T) {
	correct := []string{"A", "C"}
	assert.True(t, CheckAnswer([]string{"C", "A"}, correct))
	assert.False(t, CheckAnswer([]string{"A"}, correct))
	assert.False(t, CheckAnswer([]string{"A", "B"}, correct))
	assert.False(t, CheckAnswer([]string{"A", "C", "B"}, correct))
	assert.False(t, CheckAnswer([]string{"A", "A"}, correct))
	assert.False(t, CheckAnswer(nil, nil))
}

func TestStreakMultiplier(t *testing.T) {
	assert.Equal(t, 1.0, StreakMultiplier(0))
	assert.Equal(t, 1.0, StreakMultiplier(1))
	assert.InDelta(t, 1.2, StreakMultiplier(2), 1e-9)
	assert.InDelta(t, 2.8, StreakMultiplier(10), 1e-9)
}
