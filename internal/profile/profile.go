package profile

import "time"

// BadgeID identifies a permanent achievement unlock.
type BadgeID string

// PowerUpID identifies a purchasable power-up.
type PowerUpID string

// UserProfile is the root aggregate for a single local user. The whole
// profile is serialized on every mutation, so every field must be
// JSON-round-trippable.
type UserProfile struct {
	// Name identifies the local profile. Empty means not logged in.
	Name string `json:"name"`

	// XP never decreases. StethoCoins can be spent but never go negative.
	XP          int `json:"xp"`
	StethoCoins int `json:"stethoCoins"`

	Streak           int       `json:"streak"`
	LastActivityDate time.Time `json:"lastActivityDate"`

	// UnlockedBadges is append-only: a badge, once unlocked, is never removed.
	UnlockedBadges map[BadgeID]bool `json:"unlockedBadges"`

	StudyPacks []*StudyPack `json:"studyPacks"`
	Folders    []*Folder    `json:"folders"`

	// CorrectlyAnsweredQuizIDs is the global dedup set: a question's reward
	// is granted at most once ever, across retries and sessions.
	CorrectlyAnsweredQuizIDs map[string]bool `json:"correctlyAnsweredQuizIds"`

	Inventory map[PowerUpID]int `json:"inventory"`

	ActiveQuests []*Quest `json:"activeQuests"`

	LastDailyQuestRefresh  time.Time `json:"lastDailyQuestRefresh"`
	LastWeeklyQuestRefresh time.Time `json:"lastWeeklyQuestRefresh"`

	// Monotonic counters feeding badge predicates.
	PerfectQuizCompletions int `json:"perfectQuizCompletions"`
	TotalCorrectAnswers    int `json:"totalCorrectAnswers"`
	QuestionsAskedCount    int `json:"questionsAskedCount"`
	GeneratedQuestionCount int `json:"generatedQuestionCount"`
	QuizzesCompleted       int `json:"quizzesCompleted"`

	// Timed boost expiries and the per-pack XP boost membership set.
	DoubleXPUntil    time.Time       `json:"doubleXpUntil"`
	DoubleCoinsUntil time.Time       `json:"doubleCoinsUntil"`
	BoostedPackIDs   map[string]bool `json:"boostedPackIds"`
}

// New creates an empty profile with initialized collections.
func New(name string) *UserProfile {
	return &UserProfile{
		Name:                     name,
		UnlockedBadges:           make(map[BadgeID]bool),
		CorrectlyAnsweredQuizIDs: make(map[string]bool),
		Inventory:                make(map[PowerUpID]int),
		BoostedPackIDs:           make(map[string]bool),
	}
}

// LoggedIn reports whether the profile has been named.
func (p *UserProfile) LoggedIn() bool {
	return p.Name != ""
}

// EnsureMaps initializes nil collections after JSON decoding.
func (p *UserProfile) EnsureMaps() {
	if p.UnlockedBadges == nil {
		p.UnlockedBadges = make(map[BadgeID]bool)
	}
	if p.CorrectlyAnsweredQuizIDs == nil {
		p.CorrectlyAnsweredQuizIDs = make(map[string]bool)
	}
	if p.Inventory == nil {
		p.Inventory = make(map[PowerUpID]int)
	}
	if p.BoostedPackIDs == nil {
		p.BoostedPackIDs = make(map[string]bool)
	}
}

// HasBadge reports whether the badge is already unlocked.
func (p *UserProfile) HasBadge(id BadgeID) bool {
	return p.UnlockedBadges[id]
}

// UnlockBadge adds the badge to the unlocked set. Returns false if it was
// already unlocked (unlocking is idempotent).
func (p *UserProfile) UnlockBadge(id BadgeID) bool {
	if p.UnlockedBadges[id] {
		return false
	}
	p.UnlockedBadges[id] = true
	return true
}

// DoubleXPActive reports whether the double-XP boost covers the given time.
func (p *UserProfile) DoubleXPActive(now time.Time) bool {
	return p.DoubleXPUntil.After(now)
}

// DoubleCoinsActive reports whether the double-coin boost covers the given time.
func (p *UserProfile) DoubleCoinsActive(now time.Time) bool {
	return p.DoubleCoinsUntil.After(now)
}

// PackBoosted reports whether the pack is in the XP boost membership set.
func (p *UserProfile) PackBoosted(packID string) bool {
	return p.BoostedPackIDs[packID]
}

// Pack returns the study pack with the given id, or nil.
func (p *UserProfile) Pack(id string) *StudyPack {
	for _, sp := range p.StudyPacks {
		if sp.ID == id {
			return sp
		}
	}
	return nil
}

// Folder returns the folder with the given id, or nil.
func (p *UserProfile) Folder(id string) *Folder {
	for _, f := range p.Folders {
		if f.ID == id {
			return f
		}
	}
	return nil
}

// Quest returns the active quest with the given id, or nil.
func (p *UserProfile) Quest(id string) *Quest {
	for _, q := range p.ActiveQuests {
		if q.ID == id {
			return q
		}
	}
	return nil
}
