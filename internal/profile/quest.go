package profile

// QuestType distinguishes the two independently rotating quest lists.
type QuestType string

const (
	QuestDaily  QuestType = "daily"
	QuestWeekly QuestType = "weekly"
)

// QuestCategory names the action a quest tracks. Progress accumulates for
// every category except CategoryMaintainStreak, which takes the max.
type QuestCategory string

const (
	CategoryEarnXP          QuestCategory = "EARN_XP"
	CategoryAnswerCorrectly QuestCategory = "ANSWER_CORRECTLY"
	CategoryCompleteQuiz    QuestCategory = "COMPLETE_QUIZ"
	CategoryMaintainStreak  QuestCategory = "MAINTAIN_STREAK"
	CategoryCreatePack      QuestCategory = "CREATE_PACK"
	CategoryAskTutor        QuestCategory = "ASK_TUTOR"
)

// Quest is one time-boxed objective. Claimed is terminal: once true it is
// never reversed, and the quest never pays again.
type Quest struct {
	ID          string        `json:"id"`
	Type        QuestType     `json:"type"`
	Category    QuestCategory `json:"category"`
	Title       string        `json:"title"`
	Target      int           `json:"target"`
	Progress    int           `json:"progress"`
	Claimed     bool          `json:"claimed"`
	RewardXP    int           `json:"rewardXp"`
	RewardCoins int           `json:"rewardCoins"`
}

// Complete reports whether the quest has met its target.
func (q *Quest) Complete() bool {
	return q.Progress >= q.Target
}

// Claimable reports whether Claim would pay out.
func (q *Quest) Claimable() bool {
	return !q.Claimed && q.Complete()
}
