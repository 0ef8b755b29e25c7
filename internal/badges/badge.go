// Package badges evaluates permanent achievement unlocks against the full
// profile state. Unlocking is monotonic and idempotent: re-running the sweep
// with no new qualifying state is a no-op.
package badges

import (
	"github.com/arnavsud/stethoquest/internal/level"
	"github.com/arnavsud/stethoquest/internal/profile"
)

// Badge ids. Stable strings: they are persisted in the profile.
const (
	FirstPack       profile.BadgeID = "first_pack"
	PackCollector   profile.BadgeID = "pack_collector"
	Librarian       profile.BadgeID = "librarian"
	FirstQuiz       profile.BadgeID = "first_quiz"
	FlawlessVictory profile.BadgeID = "flawless_victory"
	Perfectionist   profile.BadgeID = "perfectionist"
	HotStreak       profile.BadgeID = "hot_streak"
	CuriousMind     profile.BadgeID = "curious_mind"
	Inquisitor      profile.BadgeID = "inquisitor"
	QuestionForge   profile.BadgeID = "question_forge"
	CenturyClub     profile.BadgeID = "century_club"
	Scholar         profile.BadgeID = "scholar"
	StreakStarter   profile.BadgeID = "streak_starter"
	WeekWarrior     profile.BadgeID = "week_warrior"
	Unstoppable     profile.BadgeID = "unstoppable"
	Resident        profile.BadgeID = "resident"
	Attending       profile.BadgeID = "attending"
	XPTitan         profile.BadgeID = "xp_titan"
	AllModes        profile.BadgeID = "all_modes"
	Completionist   profile.BadgeID = "completionist"
	NightOwl        profile.BadgeID = "night_owl"
	EarlyBird       profile.BadgeID = "early_bird"
)

// Badge defines a single achievement. Predicate is nil for badges unlocked
// directly by a specific code path (hot streak, flawless victory, the
// time-of-day badges) instead of by the sweep.
type Badge struct {
	ID          profile.BadgeID
	Name        string
	Description string
	Predicate   func(p *profile.UserProfile) bool
}

// Catalog lists every badge in display order.
var Catalog = []Badge{
	{FirstPack, "First Rotation", "Create your first study pack",
		func(p *profile.UserProfile) bool { return packCount(p) >= 1 }},
	{PackCollector, "Pack Collector", "Create 5 study packs",
		func(p *profile.UserProfile) bool { return packCount(p) >= 5 }},
	{Librarian, "Medical Librarian", "Create 10 study packs",
		func(p *profile.UserProfile) bool { return packCount(p) >= 10 }},
	{FirstQuiz, "White Coat", "Complete your first quiz",
		func(p *profile.UserProfile) bool { return p.QuizzesCompleted >= 1 }},
	{FlawlessVictory, "Flawless Victory", "Full marks on a quiz with a hard question", nil},
	{Perfectionist, "Perfectionist", "10 perfect quiz completions",
		func(p *profile.UserProfile) bool { return p.PerfectQuizCompletions >= 10 }},
	{HotStreak, "Hot Streak", "5 correct answers in a row", nil},
	{CuriousMind, "Curious Mind", "Ask the tutor 10 questions",
		func(p *profile.UserProfile) bool { return p.QuestionsAskedCount >= 10 }},
	{Inquisitor, "Inquisitor", "Ask the tutor 50 questions",
		func(p *profile.UserProfile) bool { return p.QuestionsAskedCount >= 50 }},
	{QuestionForge, "Question Forge", "Generate 25 extra quiz questions",
		func(p *profile.UserProfile) bool { return p.GeneratedQuestionCount >= 25 }},
	{CenturyClub, "Century Club", "100 correct answers",
		func(p *profile.UserProfile) bool { return p.TotalCorrectAnswers >= 100 }},
	{Scholar, "Scholar", "500 correct answers",
		func(p *profile.UserProfile) bool { return p.TotalCorrectAnswers >= 500 }},
	{StreakStarter, "Streak Starter", "3-day study streak",
		func(p *profile.UserProfile) bool { return p.Streak >= 3 }},
	{WeekWarrior, "Week Warrior", "7-day study streak",
		func(p *profile.UserProfile) bool { return p.Streak >= 7 }},
	{Unstoppable, "Unstoppable", "30-day study streak",
		func(p *profile.UserProfile) bool { return p.Streak >= 30 }},
	{Resident, "Resident", "Reach level 5",
		func(p *profile.UserProfile) bool { return level.LevelForXP(p.XP) >= 5 }},
	{Attending, "Attending", "Reach level 8",
		func(p *profile.UserProfile) bool { return level.LevelForXP(p.XP) >= 8 }},
	{XPTitan, "XP Titan", "Earn 10,000 total XP",
		func(p *profile.UserProfile) bool { return p.XP >= 10000 }},
	{AllModes, "Well Rounded", "One pack using all four learning modes",
		func(p *profile.UserProfile) bool {
			for _, sp := range p.StudyPacks {
				if !sp.Deleted && sp.UsesAllModes() {
					return true
				}
			}
			return false
		}},
	{Completionist, "Completionist", "Bring a pack to 100% progress",
		func(p *profile.UserProfile) bool {
			for _, sp := range p.StudyPacks {
				if sp.Progress >= 100 {
					return true
				}
			}
			return false
		}},
	{NightOwl, "Night Owl", "Study after 10pm", nil},
	{EarlyBird, "Early Bird", "Study before 7am", nil},
}

// Lookup returns the catalog entry for the given id, or nil.
func Lookup(id profile.BadgeID) *Badge {
	for i := range Catalog {
		if Catalog[i].ID == id {
			return &Catalog[i]
		}
	}
	return nil
}

func packCount(p *profile.UserProfile) int {
	n := 0
	for _, sp := range p.StudyPacks {
		if !sp.Deleted {
			n++
		}
	}
	return n
}
