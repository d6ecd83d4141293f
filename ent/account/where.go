// Code generated by ent, DO NOT EDIT.

package account

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/prompthub/prompthub/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldID, id))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldEmail, v))
}

// AuthProviderID applies equality check predicate on the "auth_provider_id" field. It's identical to AuthProviderIDEQ.
func AuthProviderID(v string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldAuthProviderID, v))
}

// StripeCustomerID applies equality check predicate on the "stripe_customer_id" field. It's identical to StripeCustomerIDEQ.
func StripeCustomerID(v string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldStripeCustomerID, v))
}

// StripeSubscriptionID applies equality check predicate on the "stripe_subscription_id" field. It's identical to StripeSubscriptionIDEQ.
func StripeSubscriptionID(v string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldStripeSubscriptionID, v))
}

// SubscriptionStatus applies equality check predicate on the "subscription_status" field. It's identical to SubscriptionStatusEQ.
func SubscriptionStatus(v string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldSubscriptionStatus, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldUpdatedAt, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Account {
	return predicate.Account(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Account {
	return predicate.Account(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Account {
	return predicate.Account(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Account {
	return predicate.Account(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Account {
	return predicate.Account(sql.FieldContainsFold(FieldEmail, v))
}

// AuthProviderIDEQ applies the EQ predicate on the "auth_provider_id" field.
func AuthProviderIDEQ(v string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldAuthProviderID, v))
}

// AuthProviderIDNEQ applies the NEQ predicate on the "auth_provider_id" field.
func AuthProviderIDNEQ(v string) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldAuthProviderID, v))
}

// AuthProviderIDIn applies the In predicate on the "auth_provider_id" field.
func AuthProviderIDIn(vs ...string) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldAuthProviderID, vs...))
}

// AuthProviderIDNotIn applies the NotIn predicate on the "auth_provider_id" field.
func AuthProviderIDNotIn(vs ...string) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldAuthProviderID, vs...))
}

// AuthProviderIDGT applies the GT predicate on the "auth_provider_id" field.
func AuthProviderIDGT(v string) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldAuthProviderID, v))
}

// AuthProviderIDGTE applies the GTE predicate on the "auth_provider_id" field.
func AuthProviderIDGTE(v string) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldAuthProviderID, v))
}

// AuthProviderIDLT applies the LT predicate on the "auth_provider_id" field.
func AuthProviderIDLT(v string) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldAuthProviderID, v))
}

// AuthProviderIDLTE applies the LTE predicate on the "auth_provider_id" field.
func AuthProviderIDLTE(v string) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldAuthProviderID, v))
}

// AuthProviderIDContains applies the Contains predicate on the "auth_provider_id" field.
func AuthProviderIDContains(v string) predicate.Account {
	return predicate.Account(sql.FieldContains(FieldAuthProviderID, v))
}

// AuthProviderIDHasPrefix applies the HasPrefix predicate on the "auth_provider_id" field.
func AuthProviderIDHasPrefix(v string) predicate.Account {
	return predicate.Account(sql.FieldHasPrefix(FieldAuthProviderID, v))
}

// AuthProviderIDHasSuffix applies the HasSuffix predicate on the "auth_provider_id" field.
func AuthProviderIDHasSuffix(v string) predicate.Account {
	return predicate.Account(sql.FieldHasSuffix(FieldAuthProviderID, v))
}

// AuthProviderIDEqualFold applies the EqualFold predicate on the "auth_provider_id" field.
func AuthProviderIDEqualFold(v string) predicate.Account {
	return predicate.Account(sql.FieldEqualFold(FieldAuthProviderID, v))
}

// AuthProviderIDContainsFold applies the ContainsFold predicate on the "auth_provider_id" field.
func AuthProviderIDContainsFold(v string) predicate.Account {
	return predicate.Account(sql.FieldContainsFold(FieldAuthProviderID, v))
}

// PlanTierEQ applies the EQ predicate on the "plan_tier" field.
func PlanTierEQ(v PlanTier) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldPlanTier, v))
}

// PlanTierNEQ applies the NEQ predicate on the "plan_tier" field.
func PlanTierNEQ(v PlanTier) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldPlanTier, v))
}

// PlanTierIn applies the In predicate on the "plan_tier" field.
func PlanTierIn(vs ...PlanTier) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldPlanTier, vs...))
}

// PlanTierNotIn applies the NotIn predicate on the "plan_tier" field.
func PlanTierNotIn(vs ...PlanTier) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldPlanTier, vs...))
}

// StripeCustomerIDEQ applies the EQ predicate on the "stripe_customer_id" field.
func StripeCustomerIDEQ(v string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldStripeCustomerID, v))
}

// StripeCustomerIDNEQ applies the NEQ predicate on the "stripe_customer_id" field.
func StripeCustomerIDNEQ(v string) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldStripeCustomerID, v))
}

// StripeCustomerIDIn applies the In predicate on the "stripe_customer_id" field.
func StripeCustomerIDIn(vs ...string) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldStripeCustomerID, vs...))
}

// StripeCustomerIDNotIn applies the NotIn predicate on the "stripe_customer_id" field.
func StripeCustomerIDNotIn(vs ...string) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldStripeCustomerID, vs...))
}

// StripeCustomerIDGT applies the GT predicate on the "stripe_customer_id" field.
func StripeCustomerIDGT(v string) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldStripeCustomerID, v))
}

// StripeCustomerIDGTE applies the GTE predicate on the "stripe_customer_id" field.
func StripeCustomerIDGTE(v string) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldStripeCustomerID, v))
}

// StripeCustomerIDLT applies the LT predicate on the "stripe_customer_id" field.
func StripeCustomerIDLT(v string) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldStripeCustomerID, v))
}

// StripeCustomerIDLTE applies the LTE predicate on the "stripe_customer_id" field.
func StripeCustomerIDLTE(v string) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldStripeCustomerID, v))
}

// StripeCustomerIDContains applies the Contains predicate on the "stripe_customer_id" field.
func StripeCustomerIDContains(v string) predicate.Account {
	return predicate.Account(sql.FieldContains(FieldStripeCustomerID, v))
}

// StripeCustomerIDHasPrefix applies the HasPrefix predicate on the "stripe_customer_id" field.
func StripeCustomerIDHasPrefix(v string) predicate.Account {
	return predicate.Account(sql.FieldHasPrefix(FieldStripeCustomerID, v))
}

// StripeCustomerIDHasSuffix applies the HasSuffix predicate on the "stripe_customer_id" field.
func StripeCustomerIDHasSuffix(v string) predicate.Account {
	return predicate.Account(sql.FieldHasSuffix(FieldStripeCustomerID, v))
}

// StripeCustomerIDIsNil applies the IsNil predicate on the "stripe_customer_id" field.
func StripeCustomerIDIsNil() predicate.Account {
	return predicate.Account(sql.FieldIsNull(FieldStripeCustomerID))
}

// StripeCustomerIDNotNil applies the NotNil predicate on the "stripe_customer_id" field.
func StripeCustomerIDNotNil() predicate.Account {
	return predicate.Account(sql.FieldNotNull(FieldStripeCustomerID))
}

// StripeCustomerIDEqualFold applies the EqualFold predicate on the "stripe_customer_id" field.
func StripeCustomerIDEqualFold(v string) predicate.Account {
	return predicate.Account(sql.FieldEqualFold(FieldStripeCustomerID, v))
}

// StripeCustomerIDContainsFold applies the ContainsFold predicate on the "stripe_customer_id" field.
func StripeCustomerIDContainsFold(v string) predicate.Account {
	return predicate.Account(sql.FieldContainsFold(FieldStripeCustomerID, v))
}

// StripeSubscriptionIDEQ applies the EQ predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDEQ(v string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldStripeSubscriptionID, v))
}

// StripeSubscriptionIDNEQ applies the NEQ predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDNEQ(v string) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldStripeSubscriptionID, v))
}

// StripeSubscriptionIDIn applies the In predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDIn(vs ...string) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldStripeSubscriptionID, vs...))
}

// StripeSubscriptionIDNotIn applies the NotIn predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDNotIn(vs ...string) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldStripeSubscriptionID, vs...))
}

// StripeSubscriptionIDGT applies the GT predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDGT(v string) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldStripeSubscriptionID, v))
}

// StripeSubscriptionIDGTE applies the GTE predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDGTE(v string) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldStripeSubscriptionID, v))
}

// StripeSubscriptionIDLT applies the LT predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDLT(v string) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldStripeSubscriptionID, v))
}

// StripeSubscriptionIDLTE applies the LTE predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDLTE(v string) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldStripeSubscriptionID, v))
}

// StripeSubscriptionIDContains applies the Contains predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDContains(v string) predicate.Account {
	return predicate.Account(sql.FieldContains(FieldStripeSubscriptionID, v))
}

// StripeSubscriptionIDHasPrefix applies the HasPrefix predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDHasPrefix(v string) predicate.Account {
	return predicate.Account(sql.FieldHasPrefix(FieldStripeSubscriptionID, v))
}

// StripeSubscriptionIDHasSuffix applies the HasSuffix predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDHasSuffix(v string) predicate.Account {
	return predicate.Account(sql.FieldHasSuffix(FieldStripeSubscriptionID, v))
}

// StripeSubscriptionIDIsNil applies the IsNil predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDIsNil() predicate.Account {
	return predicate.Account(sql.FieldIsNull(FieldStripeSubscriptionID))
}

// StripeSubscriptionIDNotNil applies the NotNil predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDNotNil() predicate.Account {
	return predicate.Account(sql.FieldNotNull(FieldStripeSubscriptionID))
}

// StripeSubscriptionIDEqualFold applies the EqualFold predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDEqualFold(v string) predicate.Account {
	return predicate.Account(sql.FieldEqualFold(FieldStripeSubscriptionID, v))
}

// StripeSubscriptionIDContainsFold applies the ContainsFold predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDContainsFold(v string) predicate.Account {
	return predicate.Account(sql.FieldContainsFold(FieldStripeSubscriptionID, v))
}

// SubscriptionStatusEQ applies the EQ predicate on the "subscription_status" field.
func SubscriptionStatusEQ(v string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldSubscriptionStatus, v))
}

// SubscriptionStatusNEQ applies the NEQ predicate on the "subscription_status" field.
func SubscriptionStatusNEQ(v string) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldSubscriptionStatus, v))
}

// SubscriptionStatusIn applies the In predicate on the "subscription_status" field.
func SubscriptionStatusIn(vs ...string) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldSubscriptionStatus, vs...))
}

// SubscriptionStatusNotIn applies the NotIn predicate on the "subscription_status" field.
func SubscriptionStatusNotIn(vs ...string) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldSubscriptionStatus, vs...))
}

// SubscriptionStatusGT applies the GT predicate on the "subscription_status" field.
func SubscriptionStatusGT(v string) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldSubscriptionStatus, v))
}

// SubscriptionStatusGTE applies the GTE predicate on the "subscription_status" field.
func SubscriptionStatusGTE(v string) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldSubscriptionStatus, v))
}

// SubscriptionStatusLT applies the LT predicate on the "subscription_status" field.
func SubscriptionStatusLT(v string) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldSubscriptionStatus, v))
}

// SubscriptionStatusLTE applies the LTE predicate on the "subscription_status" field.
func SubscriptionStatusLTE(v string) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldSubscriptionStatus, v))
}

// SubscriptionStatusContains applies the Contains predicate on the "subscription_status" field.
func SubscriptionStatusContains(v string) predicate.Account {
	return predicate.Account(sql.FieldContains(FieldSubscriptionStatus, v))
}

// SubscriptionStatusHasPrefix applies the HasPrefix predicate on the "subscription_status" field.
func SubscriptionStatusHasPrefix(v string) predicate.Account {
	return predicate.Account(sql.FieldHasPrefix(FieldSubscriptionStatus, v))
}

// SubscriptionStatusHasSuffix applies the HasSuffix predicate on the "subscription_status" field.
func SubscriptionStatusHasSuffix(v string) predicate.Account {
	return predicate.Account(sql.FieldHasSuffix(FieldSubscriptionStatus, v))
}

// SubscriptionStatusIsNil applies the IsNil predicate on the "subscription_status" field.
func SubscriptionStatusIsNil() predicate.Account {
	return predicate.Account(sql.FieldIsNull(FieldSubscriptionStatus))
}

// SubscriptionStatusNotNil applies the NotNil predicate on the "subscription_status" field.
func SubscriptionStatusNotNil() predicate.Account {
	return predicate.Account(sql.FieldNotNull(FieldSubscriptionStatus))
}

// SubscriptionStatusEqualFold applies the EqualFold predicate on the "subscription_status" field.
func SubscriptionStatusEqualFold(v string) predicate.Account {
	return predicate.Account(sql.FieldEqualFold(FieldSubscriptionStatus, v))
}

// SubscriptionStatusContainsFold applies the ContainsFold predicate on the "subscription_status" field.
func SubscriptionStatusContainsFold(v string) predicate.Account {
	return predicate.Account(sql.FieldContainsFold(FieldSubscriptionStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasPrompts applies the HasEdge predicate on the "prompts" edge.
func HasPrompts() predicate.Account {
	return predicate.Account(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PromptsTable, PromptsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPromptsWith applies the HasEdge predicate on the "prompts" edge with a given conditions (other predicates).
func HasPromptsWith(preds ...predicate.Prompt) predicate.Account {
	return predicate.Account(func(s *sql.Selector) {
		step := newPromptsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Account) predicate.Account {
	return predicate.Account(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Account) predicate.Account {
	return predicate.Account(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Account) predicate.Account {
	return predicate.Account(sql.NotPredicates(p))
}
