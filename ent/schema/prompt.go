package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Prompt holds the schema definition for the Prompt entity.
type Prompt struct {
	ent.Schema
}

// Fields of the Prompt.
func (Prompt) Fields() []ent.Field {
	return []ent.Field{
		field.Int("account_id").
			Comment("Account that owns this prompt"),
		field.String("title").
			NotEmpty().
			MaxLen(200).
			Comment("Title, derived from the body when not supplied"),
		field.Text("body").
			NotEmpty().
			Comment("Prompt text"),
		field.String("model_used").
			NotEmpty().
			Comment("AI backend selector this prompt targets (chatgpt, claude, gemini, ...)"),
		field.JSON("tags", []string{}).
			Optional().
			Comment("Free-form labels"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last update timestamp"),
	}
}

// Edges of the Prompt.
func (Prompt) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", Account.Type).
			Ref("prompts").
			Field("account_id").
			Unique().
			Required().
			Comment("Owning account"),
	}
}

// Indexes of the Prompt.
func (Prompt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("account_id"),
		index.Fields("created_at"),
	}
}
