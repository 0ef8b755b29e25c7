package quiz

import "github.com/arnavsud/stethoquest/internal/profile"

// Scoring constants for correct answers.
const (
	// BaseCorrectXP is the flat XP for a first-ever correct answer.
	BaseCorrectXP = 10

	// ComboBonusXP scales the combo bonus: ComboBonusXP * (combo - 1),
	// applied once the combo exceeds 1.
	ComboBonusXP = 2

	// HotStreakCombo is the combo count that unlocks the hot-streak badge.
	HotStreakCombo = 5

	// PackCompletionCoins is the one-time bonus when a pack first hits 100%.
	PackCompletionCoins = 50
)

// DifficultyPoints is the XP added per difficulty tier.
var DifficultyPoints = map[profile.Difficulty]int{
	profile.DifficultyEasy:   2,
	profile.DifficultyMedium: 5,
	profile.DifficultyHard:   10,
}

// DifficultyCoins is the coin grant per difficulty tier.
var DifficultyCoins = map[profile.Difficulty]int{
	profile.DifficultyEasy:   2,
	profile.DifficultyMedium: 3,
	profile.DifficultyHard:   5,
}

// StreakMultiplier scales XP by the daily streak: 1 + (streak-1) * 0.2,
// uncapped. Streaks of 0 or 1 leave the amount unchanged.
func StreakMultiplier(streak int) float64 {
	if streak <= 1 {
		return 1
	}
	return 1 + float64(streak-1)*0.2
}

// ComboBonus returns the combo XP bonus for the given combo count.
func ComboBonus(combo int) int {
	if combo <= 1 {
		return 0
	}
	return ComboBonusXP * (combo - 1)
}

// CheckAnswer reports whether the selected answers exactly equal the
// question's correct-answer set, order-independent and same cardinality.
func CheckAnswer(selected, correct []string) bool {
	if len(selected) != len(correct) || len(correct) == 0 {
		return false
	}
	want := make(map[string]bool, len(correct))
	for _, c := range correct {
		want[c] = true
	}
	if len(want) != len(correct) {
		return false // duplicate correct answers never match
	}
	seen := make(map[string]bool, len(selected))
	for _, s := range selected {
		if !want[s] || seen[s] {
			return false
		}
		seen[s] = true
	}
	return true
}
