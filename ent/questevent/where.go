// Code generated by ent, DO NOT EDIT.

package questevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/arnavsud/stethoquest/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldEQ(FieldAction, v))
}

// QuestType applies equality check predicate on the "quest_type" field. It's identical to QuestTypeEQ.
func QuestType(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldEQ(FieldQuestType, v))
}

// QuestID applies equality check predicate on the "quest_id" field. It's identical to QuestIDEQ.
func QuestID(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldEQ(FieldQuestID, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldEQ(FieldCategory, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldLTE(FieldTimestamp, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldContainsFold(FieldAction, v))
}

// QuestTypeEQ applies the EQ predicate on the "quest_type" field.
func QuestTypeEQ(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldEQ(FieldQuestType, v))
}

// QuestTypeNEQ applies the NEQ predicate on the "quest_type" field.
func QuestTypeNEQ(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldNEQ(FieldQuestType, v))
}

// QuestTypeIn applies the In predicate on the "quest_type" field.
func QuestTypeIn(vs ...string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldIn(FieldQuestType, vs...))
}

// QuestTypeNotIn applies the NotIn predicate on the "quest_type" field.
func QuestTypeNotIn(vs ...string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldNotIn(FieldQuestType, vs...))
}

// QuestTypeGT applies the GT predicate on the "quest_type" field.
func QuestTypeGT(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldGT(FieldQuestType, v))
}

// QuestTypeGTE applies the GTE predicate on the "quest_type" field.
func QuestTypeGTE(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldGTE(FieldQuestType, v))
}

// QuestTypeLT applies the LT predicate on the "quest_type" field.
func QuestTypeLT(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldLT(FieldQuestType, v))
}

// QuestTypeLTE applies the LTE predicate on the "quest_type" field.
func QuestTypeLTE(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldLTE(FieldQuestType, v))
}

// QuestTypeContains applies the Contains predicate on the "quest_type" field.
func QuestTypeContains(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldContains(FieldQuestType, v))
}

// QuestTypeHasPrefix applies the HasPrefix predicate on the "quest_type" field.
func QuestTypeHasPrefix(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldHasPrefix(FieldQuestType, v))
}

// QuestTypeHasSuffix applies the HasSuffix predicate on the "quest_type" field.
func QuestTypeHasSuffix(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldHasSuffix(FieldQuestType, v))
}

// QuestTypeEqualFold applies the EqualFold predicate on the "quest_type" field.
func QuestTypeEqualFold(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldEqualFold(FieldQuestType, v))
}

// QuestTypeContainsFold applies the ContainsFold predicate on the "quest_type" field.
func QuestTypeContainsFold(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldContainsFold(FieldQuestType, v))
}

// QuestIDEQ applies the EQ predicate on the "quest_id" field.
func QuestIDEQ(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldEQ(FieldQuestID, v))
}

// QuestIDNEQ applies the NEQ predicate on the "quest_id" field.
func QuestIDNEQ(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldNEQ(FieldQuestID, v))
}

// QuestIDIn applies the In predicate on the "quest_id" field.
func QuestIDIn(vs ...string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldIn(FieldQuestID, vs...))
}

// QuestIDNotIn applies the NotIn predicate on the "quest_id" field.
func QuestIDNotIn(vs ...string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldNotIn(FieldQuestID, vs...))
}

// QuestIDGT applies the GT predicate on the "quest_id" field.
func QuestIDGT(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldGT(FieldQuestID, v))
}

// QuestIDGTE applies the GTE predicate on the "quest_id" field.
func QuestIDGTE(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldGTE(FieldQuestID, v))
}

// QuestIDLT applies the LT predicate on the "quest_id" field.
func QuestIDLT(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldLT(FieldQuestID, v))
}

// QuestIDLTE applies the LTE predicate on the "quest_id" field.
func QuestIDLTE(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldLTE(FieldQuestID, v))
}

// QuestIDContains applies the Contains predicate on the "quest_id" field.
func QuestIDContains(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldContains(FieldQuestID, v))
}

// QuestIDHasPrefix applies the HasPrefix predicate on the "quest_id" field.
func QuestIDHasPrefix(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldHasPrefix(FieldQuestID, v))
}

// QuestIDHasSuffix applies the HasSuffix predicate on the "quest_id" field.
func QuestIDHasSuffix(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldHasSuffix(FieldQuestID, v))
}

// QuestIDEqualFold applies the EqualFold predicate on the "quest_id" field.
func QuestIDEqualFold(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldEqualFold(FieldQuestID, v))
}

// QuestIDContainsFold applies the ContainsFold predicate on the "quest_id" field.
func QuestIDContainsFold(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldContainsFold(FieldQuestID, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldContainsFold(FieldCategory, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuestEvent) predicate.QuestEvent {
	return predicate.QuestEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuestEvent) predicate.QuestEvent {
	return predicate.QuestEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuestEvent) predicate.QuestEvent {
	return predicate.QuestEvent(sql.NotPredicates(p))
}
