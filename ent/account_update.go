// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/prompthub/prompthub/ent/account"
	"github.com/prompthub/prompthub/ent/predicate"
	"github.com/prompthub/prompthub/ent/prompt"
)

// AccountUpdate is the builder for updating Account entities.
type AccountUpdate struct {
	config
	hooks    []Hook
	mutation *AccountMutation
}

// Where appends a list predicates to the AccountUpdate builder.
func (_u *AccountUpdate) Where(ps ...predicate.Account) *AccountUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEmail sets the "email" field.
func (_u *AccountUpdate) SetEmail(v string) *AccountUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableEmail(v *string) *AccountUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPlanTier sets the "plan_tier" field.
func (_u *AccountUpdate) SetPlanTier(v account.PlanTier) *AccountUpdate {
	_u.mutation.SetPlanTier(v)
	return _u
}

// SetNillablePlanTier sets the "plan_tier" field if the given value is not nil.
func (_u *AccountUpdate) SetNillablePlanTier(v *account.PlanTier) *AccountUpdate {
	if v != nil {
		_u.SetPlanTier(*v)
	}
	return _u
}

// SetStripeCustomerID sets the "stripe_customer_id" field.
func (_u *AccountUpdate) SetStripeCustomerID(v string) *AccountUpdate {
	_u.mutation.SetStripeCustomerID(v)
	return _u
}

// SetNillableStripeCustomerID sets the "stripe_customer_id" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableStripeCustomerID(v *string) *AccountUpdate {
	if v != nil {
		_u.SetStripeCustomerID(*v)
	}
	return _u
}

// ClearStripeCustomerID clears the value of the "stripe_customer_id" field.
func (_u *AccountUpdate) ClearStripeCustomerID() *AccountUpdate {
	_u.mutation.ClearStripeCustomerID()
	return _u
}

// SetStripeSubscriptionID sets the "stripe_subscription_id" field.
func (_u *AccountUpdate) SetStripeSubscriptionID(v string) *AccountUpdate {
	_u.mutation.SetStripeSubscriptionID(v)
	return _u
}

// SetNillableStripeSubscriptionID sets the "stripe_subscription_id" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableStripeSubscriptionID(v *string) *AccountUpdate {
	if v != nil {
		_u.SetStripeSubscriptionID(*v)
	}
	return _u
}

// ClearStripeSubscriptionID clears the value of the "stripe_subscription_id" field.
func (_u *AccountUpdate) ClearStripeSubscriptionID() *AccountUpdate {
	_u.mutation.ClearStripeSubscriptionID()
	return _u
}

// SetSubscriptionStatus sets the "subscription_status" field.
func (_u *AccountUpdate) SetSubscriptionStatus(v string) *AccountUpdate {
	_u.mutation.SetSubscriptionStatus(v)
	return _u
}

// SetNillableSubscriptionStatus sets the "subscription_status" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableSubscriptionStatus(v *string) *AccountUpdate {
	if v != nil {
		_u.SetSubscriptionStatus(*v)
	}
	return _u
}

// ClearSubscriptionStatus clears the value of the "subscription_status" field.
func (_u *AccountUpdate) ClearSubscriptionStatus() *AccountUpdate {
	_u.mutation.ClearSubscriptionStatus()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AccountUpdate) SetUpdatedAt(v time.Time) *AccountUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddPromptIDs adds the "prompts" edge to the Prompt entity by IDs.
func (_u *AccountUpdate) AddPromptIDs(ids ...int) *AccountUpdate {
	_u.mutation.AddPromptIDs(ids...)
	return _u
}

// AddPrompts adds the "prompts" edges to the Prompt entity.
func (_u *AccountUpdate) AddPrompts(v ...*Prompt) *AccountUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPromptIDs(ids...)
}

// Mutation returns the AccountMutation object of the builder.
func (_u *AccountUpdate) Mutation() *AccountMutation {
	return _u.mutation
}

// ClearPrompts clears all "prompts" edges to the Prompt entity.
func (_u *AccountUpdate) ClearPrompts() *AccountUpdate {
	_u.mutation.ClearPrompts()
	return _u
}

// RemovePromptIDs removes the "prompts" edge to Prompt entities by IDs.
func (_u *AccountUpdate) RemovePromptIDs(ids ...int) *AccountUpdate {
	_u.mutation.RemovePromptIDs(ids...)
	return _u
}

// RemovePrompts removes "prompts" edges to Prompt entities.
func (_u *AccountUpdate) RemovePrompts(v ...*Prompt) *AccountUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePromptIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AccountUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AccountUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AccountUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AccountUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AccountUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := account.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AccountUpdate) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := account.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Account.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PlanTier(); ok {
		if err := account.PlanTierValidator(v); err != nil {
			return &ValidationError{Name: "plan_tier", err: fmt.Errorf(`ent: validator failed for field "Account.plan_tier": %w`, err)}
		}
	}
	return nil
}

func (_u *AccountUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(account.Table, account.Columns, sqlgraph.NewFieldSpec(account.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(account.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlanTier(); ok {
		_spec.SetField(account.FieldPlanTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StripeCustomerID(); ok {
		_spec.SetField(account.FieldStripeCustomerID, field.TypeString, value)
	}
	if _u.mutation.StripeCustomerIDCleared() {
		_spec.ClearField(account.FieldStripeCustomerID, field.TypeString)
	}
	if value, ok := _u.mutation.StripeSubscriptionID(); ok {
		_spec.SetField(account.FieldStripeSubscriptionID, field.TypeString, value)
	}
	if _u.mutation.StripeSubscriptionIDCleared() {
		_spec.ClearField(account.FieldStripeSubscriptionID, field.TypeString)
	}
	if value, ok := _u.mutation.SubscriptionStatus(); ok {
		_spec.SetField(account.FieldSubscriptionStatus, field.TypeString, value)
	}
	if _u.mutation.SubscriptionStatusCleared() {
		_spec.ClearField(account.FieldSubscriptionStatus, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(account.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.PromptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   account.PromptsTable,
			Columns: []string{account.PromptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prompt.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPromptsIDs(); len(nodes) > 0 && !_u.mutation.PromptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   account.PromptsTable,
			Columns: []string{account.PromptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prompt.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PromptsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   account.PromptsTable,
			Columns: []string{account.PromptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prompt.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{account.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AccountUpdateOne is the builder for updating a single Account entity.
type AccountUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AccountMutation
}

// SetEmail sets the "email" field.
func (_u *AccountUpdateOne) SetEmail(v string) *AccountUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableEmail(v *string) *AccountUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPlanTier sets the "plan_tier" field.
func (_u *AccountUpdateOne) SetPlanTier(v account.PlanTier) *AccountUpdateOne {
	_u.mutation.SetPlanTier(v)
	return _u
}

// SetNillablePlanTier sets the "plan_tier" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillablePlanTier(v *account.PlanTier) *AccountUpdateOne {
	if v != nil {
		_u.SetPlanTier(*v)
	}
	return _u
}

// SetStripeCustomerID sets the "stripe_customer_id" field.
func (_u *AccountUpdateOne) SetStripeCustomerID(v string) *AccountUpdateOne {
	_u.mutation.SetStripeCustomerID(v)
	return _u
}

// SetNillableStripeCustomerID sets the "stripe_customer_id" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableStripeCustomerID(v *string) *AccountUpdateOne {
	if v != nil {
		_u.SetStripeCustomerID(*v)
	}
	return _u
}

// ClearStripeCustomerID clears the value of the "stripe_customer_id" field.
func (_u *AccountUpdateOne) ClearStripeCustomerID() *AccountUpdateOne {
	_u.mutation.ClearStripeCustomerID()
	return _u
}

// SetStripeSubscriptionID sets the "stripe_subscription_id" field.
func (_u *AccountUpdateOne) SetStripeSubscriptionID(v string) *AccountUpdateOne {
	_u.mutation.SetStripeSubscriptionID(v)
	return _u
}

// SetNillableStripeSubscriptionID sets the "stripe_subscription_id" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableStripeSubscriptionID(v *string) *AccountUpdateOne {
	if v != nil {
		_u.SetStripeSubscriptionID(*v)
	}
	return _u
}

// ClearStripeSubscriptionID clears the value of the "stripe_subscription_id" field.
func (_u *AccountUpdateOne) ClearStripeSubscriptionID() *AccountUpdateOne {
	_u.mutation.ClearStripeSubscriptionID()
	return _u
}

// SetSubscriptionStatus sets the "subscription_status" field.
func (_u *AccountUpdateOne) SetSubscriptionStatus(v string) *AccountUpdateOne {
	_u.mutation.SetSubscriptionStatus(v)
	return _u
}

// SetNillableSubscriptionStatus sets the "subscription_status" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableSubscriptionStatus(v *string) *AccountUpdateOne {
	if v != nil {
		_u.SetSubscriptionStatus(*v)
	}
	return _u
}

// ClearSubscriptionStatus clears the value of the "subscription_status" field.
func (_u *AccountUpdateOne) ClearSubscriptionStatus() *AccountUpdateOne {
	_u.mutation.ClearSubscriptionStatus()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AccountUpdateOne) SetUpdatedAt(v time.Time) *AccountUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddPromptIDs adds the "prompts" edge to the Prompt entity by IDs.
func (_u *AccountUpdateOne) AddPromptIDs(ids ...int) *AccountUpdateOne {
	_u.mutation.AddPromptIDs(ids...)
	return _u
}

// AddPrompts adds the "prompts" edges to the Prompt entity.
func (_u *AccountUpdateOne) AddPrompts(v ...*Prompt) *AccountUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPromptIDs(ids...)
}

// Mutation returns the AccountMutation object of the builder.
func (_u *AccountUpdateOne) Mutation() *AccountMutation {
	return _u.mutation
}

// ClearPrompts clears all "prompts" edges to the Prompt entity.
func (_u *AccountUpdateOne) ClearPrompts() *AccountUpdateOne {
	_u.mutation.ClearPrompts()
	return _u
}

// RemovePromptIDs removes the "prompts" edge to Prompt entities by IDs.
func (_u *AccountUpdateOne) RemovePromptIDs(ids ...int) *AccountUpdateOne {
	_u.mutation.RemovePromptIDs(ids...)
	return _u
}

// RemovePrompts removes "prompts" edges to Prompt entities.
func (_u *AccountUpdateOne) RemovePrompts(v ...*Prompt) *AccountUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePromptIDs(ids...)
}

// Where appends a list predicates to the AccountUpdate builder.
func (_u *AccountUpdateOne) Where(ps ...predicate.Account) *AccountUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AccountUpdateOne) Select(field string, fields ...string) *AccountUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Account entity.
func (_u *AccountUpdateOne) Save(ctx context.Context) (*Account, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AccountUpdateOne) SaveX(ctx context.Context) *Account {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AccountUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AccountUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AccountUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := account.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AccountUpdateOne) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := account.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Account.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PlanTier(); ok {
		if err := account.PlanTierValidator(v); err != nil {
			return &ValidationError{Name: "plan_tier", err: fmt.Errorf(`ent: validator failed for field "Account.plan_tier": %w`, err)}
		}
	}
	return nil
}

func (_u *AccountUpdateOne) sqlSave(ctx context.Context) (_node *Account, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(account.Table, account.Columns, sqlgraph.NewFieldSpec(account.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Account.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, account.FieldID)
		for _, f := range fields {
			if !account.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != account.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(account.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlanTier(); ok {
		_spec.SetField(account.FieldPlanTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StripeCustomerID(); ok {
		_spec.SetField(account.FieldStripeCustomerID, field.TypeString, value)
	}
	if _u.mutation.StripeCustomerIDCleared() {
		_spec.ClearField(account.FieldStripeCustomerID, field.TypeString)
	}
	if value, ok := _u.mutation.StripeSubscriptionID(); ok {
		_spec.SetField(account.FieldStripeSubscriptionID, field.TypeString, value)
	}
	if _u.mutation.StripeSubscriptionIDCleared() {
		_spec.ClearField(account.FieldStripeSubscriptionID, field.TypeString)
	}
	if value, ok := _u.mutation.SubscriptionStatus(); ok {
		_spec.SetField(account.FieldSubscriptionStatus, field.TypeString, value)
	}
	if _u.mutation.SubscriptionStatusCleared() {
		_spec.ClearField(account.FieldSubscriptionStatus, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(account.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.PromptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   account.PromptsTable,
			Columns: []string{account.PromptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prompt.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPromptsIDs(); len(nodes) > 0 && !_u.mutation.PromptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   account.PromptsTable,
			Columns: []string{account.PromptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prompt.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PromptsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   account.PromptsTable,
			Columns: []string{account.PromptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prompt.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Account{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{account.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
