package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuestEvent records quest rotations and claims.
type QuestEvent struct {
	ent.Schema
}

func (QuestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("action").
			NotEmpty().
			Comment("rotate or claim"),
		field.String("quest_type").
			NotEmpty().
			Comment("daily or weekly"),
		field.String("quest_id").
			Default("").
			Comment("Set for claims"),
		field.String("category").Default(""),
	}
}

func (QuestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("action"),
		index.Fields("quest_type"),
	}
}
