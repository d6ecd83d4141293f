// Code generated by ent, DO NOT EDIT.

package account

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the account type in the database.
	Label = "account"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldAuthProviderID holds the string denoting the auth_provider_id field in the database.
	FieldAuthProviderID = "auth_provider_id"
	// FieldPlanTier holds the string denoting the plan_tier field in the database.
	FieldPlanTier = "plan_tier"
	// FieldStripeCustomerID holds the string denoting the stripe_customer_id field in the database.
	FieldStripeCustomerID = "stripe_customer_id"
	// FieldStripeSubscriptionID holds the string denoting the stripe_subscription_id field in the database.
	FieldStripeSubscriptionID = "stripe_subscription_id"
	// FieldSubscriptionStatus holds the string denoting the subscription_status field in the database.
	FieldSubscriptionStatus = "subscription_status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgePrompts holds the string denoting the prompts edge name in mutations.
	EdgePrompts = "prompts"
	// Table holds the table name of the account in the database.
	Table = "accounts"
	// PromptsTable is the table that holds the prompts relation/edge.
	PromptsTable = "prompts"
	// PromptsInverseTable is the table name for the Prompt entity.
	// It exists in this package in order to avoid circular dependency with the "prompt" package.
	PromptsInverseTable = "prompts"
	// PromptsColumn is the table column denoting the prompts relation/edge.
	PromptsColumn = "account_id"
)

// Columns holds all SQL columns for account fields.
var Columns = []string{
	FieldID,
	FieldEmail,
	FieldAuthProviderID,
	FieldPlanTier,
	FieldStripeCustomerID,
	FieldStripeSubscriptionID,
	FieldSubscriptionStatus,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// EmailValidator is a validator for the "email" field. It is called by the builders before save.
	EmailValidator func(string) error
	// AuthProviderIDValidator is a validator for the "auth_provider_id" field. It is called by the builders before save.
	AuthProviderIDValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// PlanTier defines the type for the "plan_tier" enum field.
type PlanTier string

// PlanTierFree is the default value of the PlanTier enum.
const DefaultPlanTier = PlanTierFree

// PlanTier values.
const (
	PlanTierFree PlanTier = "free"
	PlanTierPro  PlanTier = "pro"
)

func (pt PlanTier) String() string {
	return string(pt)
}

// PlanTierValidator is a validator for the "plan_tier" field enum values. It is called by the builders before save.
func PlanTierValidator(pt PlanTier) error {
	switch pt {
	case PlanTierFree, PlanTierPro:
		return nil
	default:
		return fmt.Errorf("account: invalid enum value for plan_tier field: %q", pt)
	}
}

// OrderOption defines the ordering options for the Account queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByAuthProviderID orders the results by the auth_provider_id field.
func ByAuthProviderID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthProviderID, opts...).ToFunc()
}

// ByPlanTier orders the results by the plan_tier field.
func ByPlanTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanTier, opts...).ToFunc()
}

// ByStripeCustomerID orders the results by the stripe_customer_id field.
func ByStripeCustomerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStripeCustomerID, opts...).ToFunc()
}

// ByStripeSubscriptionID orders the results by the stripe_subscription_id field.
func ByStripeSubscriptionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStripeSubscriptionID, opts...).ToFunc()
}

// BySubscriptionStatus orders the results by the subscription_status field.
func BySubscriptionStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubscriptionStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByPromptsCount orders the results by prompts count.
func ByPromptsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPromptsStep(), opts...)
	}
}

// ByPrompts orders the results by prompts terms.
func ByPrompts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPromptsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newPromptsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PromptsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PromptsTable, PromptsColumn),
	)
}
