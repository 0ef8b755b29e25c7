package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RewardEvent records an XP or coin balance change.
type RewardEvent struct {
	ent.Schema
}

func (RewardEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (RewardEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("kind").
			NotEmpty().
			Comment("xp or coins"),
		field.Int("amount").
			Comment("Amount granted; negative for coin spends"),
		field.Bool("boosted").
			Default(false).
			Comment("Whether a boost multiplier was applied"),
		field.String("source").
			Default("").
			Comment("Source pack id, when the grant came from a pack"),
	}
}

func (RewardEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind"),
	}
}
