// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/arnavsud/stethoquest/ent/answerevent"
	"github.com/arnavsud/stethoquest/ent/badgeevent"
	"github.com/arnavsud/stethoquest/ent/llmrequestevent"
	"github.com/arnavsud/stethoquest/ent/questevent"
	"github.com/arnavsud/stethoquest/ent/rewardevent"
	"github.com/arnavsud/stethoquest/ent/schema"
	"github.com/arnavsud/stethoquest/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescPackID is the schema descriptor for pack_id field.
	answereventDescPackID := answereventFields[0].Descriptor()
	// answerevent.PackIDValidator is a validator for the "pack_id" field. It is called by the builders before save.
	answerevent.PackIDValidator = answereventDescPackID.Validators[0].(func(string) error)
	// answereventDescQuestionID is the schema descriptor for question_id field.
	answereventDescQuestionID := answereventFields[1].Descriptor()
	// answerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(string) error)
	// answereventDescVariant is the schema descriptor for variant field.
	answereventDescVariant := answereventFields[2].Descriptor()
	// answerevent.VariantValidator is a validator for the "variant" field. It is called by the builders before save.
	answerevent.VariantValidator = answereventDescVariant.Validators[0].(func(string) error)
	// answereventDescDifficulty is the schema descriptor for difficulty field.
	answereventDescDifficulty := answereventFields[4].Descriptor()
	// answerevent.DefaultDifficulty holds the default value on creation for the difficulty field.
	answerevent.DefaultDifficulty = answereventDescDifficulty.Default.(string)
	// answereventDescCombo is the schema descriptor for combo field.
	answereventDescCombo := answereventFields[5].Descriptor()
	// answerevent.DefaultCombo holds the default value on creation for the combo field.
	answerevent.DefaultCombo = answereventDescCombo.Default.(int)
	badgeeventMixin := schema.BadgeEvent{}.Mixin()
	badgeeventMixinFields0 := badgeeventMixin[0].Fields()
	_ = badgeeventMixinFields0
	badgeeventFields := schema.BadgeEvent{}.Fields()
	_ = badgeeventFields
	// badgeeventDescTimestamp is the schema descriptor for timestamp field.
	badgeeventDescTimestamp := badgeeventMixinFields0[1].Descriptor()
	// badgeevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	badgeevent.DefaultTimestamp = badgeeventDescTimestamp.Default.(func() time.Time)
	// badgeeventDescBadgeID is the schema descriptor for badge_id field.
	badgeeventDescBadgeID := badgeeventFields[0].Descriptor()
	// badgeevent.BadgeIDValidator is a validator for the "badge_id" field. It is called by the builders before save.
	badgeevent.BadgeIDValidator = badgeeventDescBadgeID.Validators[0].(func(string) error)
	// badgeeventDescName is the schema descriptor for name field.
	badgeeventDescName := badgeeventFields[1].Descriptor()
	// badgeevent.NameValidator is a validator for the "name" field. It is called by the builders before save.
	badgeevent.NameValidator = badgeeventDescName.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	questeventMixin := schema.QuestEvent{}.Mixin()
	questeventMixinFields0 := questeventMixin[0].Fields()
	_ = questeventMixinFields0
	questeventFields := schema.QuestEvent{}.Fields()
	_ = questeventFields
	// questeventDescTimestamp is the schema descriptor for timestamp field.
	questeventDescTimestamp := questeventMixinFields0[1].Descriptor()
	// questevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	questevent.DefaultTimestamp = questeventDescTimestamp.Default.(func() time.Time)
	// questeventDescAction is the schema descriptor for action field.
	questeventDescAction := questeventFields[0].Descriptor()
	// questevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	questevent.ActionValidator = questeventDescAction.Validators[0].(func(string) error)
	// questeventDescQuestType is the schema descriptor for quest_type field.
	questeventDescQuestType := questeventFields[1].Descriptor()
	// questevent.QuestTypeValidator is a validator for the "quest_type" field. It is called by the builders before save.
	questevent.QuestTypeValidator = questeventDescQuestType.Validators[0].(func(string) error)
	// questeventDescQuestID is the schema descriptor for quest_id field.
	questeventDescQuestID := questeventFields[2].Descriptor()
	// questevent.DefaultQuestID holds the default value on creation for the quest_id field.
	questevent.DefaultQuestID = questeventDescQuestID.Default.(string)
	// questeventDescCategory is the schema descriptor for category field.
	questeventDescCategory := questeventFields[3].Descriptor()
	// questevent.DefaultCategory holds the default value on creation for the category field.
	questevent.DefaultCategory = questeventDescCategory.Default.(string)
	rewardeventMixin := schema.RewardEvent{}.Mixin()
	rewardeventMixinFields0 := rewardeventMixin[0].Fields()
	_ = rewardeventMixinFields0
	rewardeventFields := schema.RewardEvent{}.Fields()
	_ = rewardeventFields
	// rewardeventDescTimestamp is the schema descriptor for timestamp field.
	rewardeventDescTimestamp := rewardeventMixinFields0[1].Descriptor()
	// rewardevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	rewardevent.DefaultTimestamp = rewardeventDescTimestamp.Default.(func() time.Time)
	// rewardeventDescKind is the schema descriptor for kind field.
	rewardeventDescKind := rewardeventFields[0].Descriptor()
	// rewardevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	rewardevent.KindValidator = rewardeventDescKind.Validators[0].(func(string) error)
	// rewardeventDescBoosted is the schema descriptor for boosted field.
	rewardeventDescBoosted := rewardeventFields[2].Descriptor()
	// rewardevent.DefaultBoosted holds the default value on creation for the boosted field.
	rewardevent.DefaultBoosted = rewardeventDescBoosted.Default.(bool)
	// rewardeventDescSource is the schema descriptor for source field.
	rewardeventDescSource := rewardeventFields[3].Descriptor()
	// rewardevent.DefaultSource holds the default value on creation for the source field.
	rewardevent.DefaultSource = rewardeventDescSource.Default.(string)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
