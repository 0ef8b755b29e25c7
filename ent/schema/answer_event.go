package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single quiz answer submission.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("pack_id").NotEmpty(),
		field.String("question_id").NotEmpty(),
		field.String("variant").
			NotEmpty().
			Comment("Quiz variant: standard or exam"),
		field.Bool("correct"),
		field.String("difficulty").
			Default("").
			Comment("easy, medium, hard"),
		field.Int("combo").
			Default(0).
			Comment("Combo count after this submission"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("pack_id"),
		index.Fields("correct"),
	}
}
