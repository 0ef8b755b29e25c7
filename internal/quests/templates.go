package quests

import "github.com/arnavsud/stethoquest/internal/profile"

// Template is a quest blueprint. Rotations instantiate fresh Quest values
// from templates, so progress never leaks between rotations.
type Template struct {
	Key         string
	Type        profile.QuestType
	Category    profile.QuestCategory
	Title       string
	Target      int
	RewardXP    int
	RewardCoins int
}

// DailyCount is how many daily quests each rotation selects.
const DailyCount = 3

// WeeklyCount is how many weekly quests each rotation selects.
const WeeklyCount = 3

// DailyTemplates is the fixed catalog daily rotations draw from.
var DailyTemplates = []Template{
	{"daily-answer-10", profile.QuestDaily, profile.CategoryAnswerCorrectly,
		"Answer 10 questions correctly", 10, 50, 20},
	{"daily-earn-100", profile.QuestDaily, profile.CategoryEarnXP,
		"Earn 100 XP", 100, 40, 25},
	{"daily-complete-2", profile.QuestDaily, profile.CategoryCompleteQuiz,
		"Complete 2 quizzes", 2, 60, 30},
	{"daily-ask-3", profile.QuestDaily, profile.CategoryAskTutor,
		"Ask the tutor 3 questions", 3, 30, 15},
	{"daily-streak-3", profile.QuestDaily, profile.CategoryMaintainStreak,
		"Keep a 3-day streak going", 3, 40, 20},
	{"daily-create-1", profile.QuestDaily, profile.CategoryCreatePack,
		"Create a study pack", 1, 50, 20},
}

// WeeklyTemplates is the fixed catalog weekly rotations draw from.
var WeeklyTemplates = []Template{
	{"weekly-answer-75", profile.QuestWeekly, profile.CategoryAnswerCorrectly,
		"Answer 75 questions correctly", 75, 300, 120},
	{"weekly-earn-1000", profile.QuestWeekly, profile.CategoryEarnXP,
		"Earn 1,000 XP", 1000, 250, 150},
	{"weekly-complete-10", profile.QuestWeekly, profile.CategoryCompleteQuiz,
		"Complete 10 quizzes", 10, 350, 150},
	{"weekly-create-3", profile.QuestWeekly, profile.CategoryCreatePack,
		"Create 3 study packs", 3, 200, 100},
	{"weekly-streak-7", profile.QuestWeekly, profile.CategoryMaintainStreak,
		"Keep a 7-day streak going", 7, 400, 200},
}
