package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Account holds the schema definition for the Account entity.
type Account struct {
	ent.Schema
}

// Fields of the Account.
func (Account) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").
			NotEmpty().
			Comment("Email address supplied by the identity provider"),
		field.String("auth_provider_id").
			Unique().
			NotEmpty().
			Immutable().
			Comment("Subject identifier from the external identity provider"),
		field.Enum("plan_tier").
			Values("free", "pro").
			Default("free").
			Comment("Current entitlement tier"),
		field.String("stripe_customer_id").
			Optional().
			Nillable().
			Comment("Stripe customer ID, set on first checkout"),
		field.String("stripe_subscription_id").
			Optional().
			Nillable().
			Comment("Stripe subscription ID, set when a subscription exists"),
		field.String("subscription_status").
			Optional().
			Nillable().
			Comment("Last subscription status reported by Stripe, stored verbatim"),
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

// Edges of the Account.
func (Account) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("prompts", Prompt.Type).
			Comment("Prompts saved by this account"),
	}
}

// Indexes of the Account.
func (Account) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("auth_provider_id").Unique(),
		index.Fields("stripe_customer_id"),
		index.Fields("stripe_subscription_id"),
	}
}
