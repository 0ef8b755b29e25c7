package store

import (
	"context"
	"time"

	"github.com/arnavsud/stethoquest/internal/profile"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// Snapshot represents a point-in-time capture of the full user profile.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Profile   *profile.UserProfile
}

// SnapshotRepo manages profile snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// RewardEventData captures a single XP or coin balance change.
type RewardEventData struct {
	Kind    string // "xp" or "coins"
	Amount  int    // negative for coin spends
	Boosted bool
	Source  string // source pack id, when applicable
}

// AnswerEventData captures a single quiz answer submission.
type AnswerEventData struct {
	PackID     string
	QuestionID string
	Variant    string
	Correct    bool
	Difficulty string
	Combo      int
}

// BadgeEventData captures a badge unlock.
type BadgeEventData struct {
	BadgeID string
	Name    string
}

// QuestEventData captures a quest rotation or claim.
type QuestEventData struct {
	Action    string // "rotate" or "claim"
	QuestType string // "daily" or "weekly"
	QuestID   string // set for claims
	Category  string
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a recorded LLM request with its storage metadata.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStats aggregates LLM usage per purpose label.
type LLMUsageStats struct {
	Purpose      string
	Requests     int
	InputTokens  int
	OutputTokens int
	Failures     int
	AvgLatencyMs int
}

// LLMModelUsage aggregates LLM token usage per model, for cost estimation.
type LLMModelUsage struct {
	Model        string
	Requests     int
	InputTokens  int
	OutputTokens int
}

// AnswerStats aggregates answer submissions.
type AnswerStats struct {
	Total   int
	Correct int
}

// EventRepo provides append and aggregate access to domain events.
type EventRepo interface {
	// AppendRewardEvent records an XP or coin change.
	AppendRewardEvent(ctx context.Context, data RewardEventData) error

	// AppendAnswerEvent records a quiz answer submission.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendBadgeEvent records a badge unlock.
	AppendBadgeEvent(ctx context.Context, data BadgeEventData) error

	// AppendQuestEvent records a quest rotation or claim.
	AppendQuestEvent(ctx context.Context, data QuestEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AnswerTotals aggregates all recorded answer submissions.
	AnswerTotals(ctx context.Context) (AnswerStats, error)

	// LLMUsageByPurpose aggregates LLM usage grouped by purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// LLMUsageByModel aggregates LLM token usage grouped by model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)

	// LLMEvents lists recorded LLM requests, newest first.
	LLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// LLMEvent returns one recorded LLM request, or nil if absent.
	LLMEvent(ctx context.Context, id int) (*LLMEvent, error)
}
