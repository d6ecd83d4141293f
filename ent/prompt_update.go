// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/prompthub/prompthub/ent/account"
	"github.com/prompthub/prompthub/ent/predicate"
	"github.com/prompthub/prompthub/ent/prompt"
)

// PromptUpdate is the builder for updating Prompt entities.
type PromptUpdate struct {
	config
	hooks    []Hook
	mutation *PromptMutation
}

// Where appends a list predicates to the PromptUpdate builder.
func (_u *PromptUpdate) Where(ps ...predicate.Prompt) *PromptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAccountID sets the "account_id" field.
func (_u *PromptUpdate) SetAccountID(v int) *PromptUpdate {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *PromptUpdate) SetNillableAccountID(v *int) *PromptUpdate {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *PromptUpdate) SetTitle(v string) *PromptUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PromptUpdate) SetNillableTitle(v *string) *PromptUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *PromptUpdate) SetBody(v string) *PromptUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *PromptUpdate) SetNillableBody(v *string) *PromptUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetModelUsed sets the "model_used" field.
func (_u *PromptUpdate) SetModelUsed(v string) *PromptUpdate {
	_u.mutation.SetModelUsed(v)
	return _u
}

// SetNillableModelUsed sets the "model_used" field if the given value is not nil.
func (_u *PromptUpdate) SetNillableModelUsed(v *string) *PromptUpdate {
	if v != nil {
		_u.SetModelUsed(*v)
	}
	return _u
}

// SetTags sets the "tags" field.
func (_u *PromptUpdate) SetTags(v []string) *PromptUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *PromptUpdate) AppendTags(v []string) *PromptUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *PromptUpdate) ClearTags() *PromptUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PromptUpdate) SetUpdatedAt(v time.Time) *PromptUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOwnerID sets the "owner" edge to the Account entity by ID.
func (_u *PromptUpdate) SetOwnerID(id int) *PromptUpdate {
	_u.mutation.SetOwnerID(id)
	return _u
}

// SetOwner sets the "owner" edge to the Account entity.
func (_u *PromptUpdate) SetOwner(v *Account) *PromptUpdate {
	return _u.SetOwnerID(v.ID)
}

// Mutation returns the PromptMutation object of the builder.
func (_u *PromptUpdate) Mutation() *PromptMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the Account entity.
func (_u *PromptUpdate) ClearOwner() *PromptUpdate {
	_u.mutation.ClearOwner()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PromptUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PromptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PromptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PromptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PromptUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := prompt.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PromptUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := prompt.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Prompt.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Body(); ok {
		if err := prompt.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "Prompt.body": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModelUsed(); ok {
		if err := prompt.ModelUsedValidator(v); err != nil {
			return &ValidationError{Name: "model_used", err: fmt.Errorf(`ent: validator failed for field "Prompt.model_used": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Prompt.owner"`)
	}
	return nil
}

func (_u *PromptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(prompt.Table, prompt.Columns, sqlgraph.NewFieldSpec(prompt.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(prompt.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(prompt.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelUsed(); ok {
		_spec.SetField(prompt.FieldModelUsed, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(prompt.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, prompt.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(prompt.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(prompt.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.OwnerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   prompt.OwnerTable,
			Columns: []string{prompt.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(account.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   prompt.OwnerTable,
			Columns: []string{prompt.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(account.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prompt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PromptUpdateOne is the builder for updating a single Prompt entity.
type PromptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PromptMutation
}

// SetAccountID sets the "account_id" field.
func (_u *PromptUpdateOne) SetAccountID(v int) *PromptUpdateOne {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *PromptUpdateOne) SetNillableAccountID(v *int) *PromptUpdateOne {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *PromptUpdateOne) SetTitle(v string) *PromptUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PromptUpdateOne) SetNillableTitle(v *string) *PromptUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *PromptUpdateOne) SetBody(v string) *PromptUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *PromptUpdateOne) SetNillableBody(v *string) *PromptUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetModelUsed sets the "model_used" field.
func (_u *PromptUpdateOne) SetModelUsed(v string) *PromptUpdateOne {
	_u.mutation.SetModelUsed(v)
	return _u
}

// SetNillableModelUsed sets the "model_used" field if the given value is not nil.
func (_u *PromptUpdateOne) SetNillableModelUsed(v *string) *PromptUpdateOne {
	if v != nil {
		_u.SetModelUsed(*v)
	}
	return _u
}

// SetTags sets the "tags" field.
func (_u *PromptUpdateOne) SetTags(v []string) *PromptUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *PromptUpdateOne) AppendTags(v []string) *PromptUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *PromptUpdateOne) ClearTags() *PromptUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PromptUpdateOne) SetUpdatedAt(v time.Time) *PromptUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOwnerID sets the "owner" edge to the Account entity by ID.
func (_u *PromptUpdateOne) SetOwnerID(id int) *PromptUpdateOne {
	_u.mutation.SetOwnerID(id)
	return _u
}

// SetOwner sets the "owner" edge to the Account entity.
func (_u *PromptUpdateOne) SetOwner(v *Account) *PromptUpdateOne {
	return _u.SetOwnerID(v.ID)
}

// Mutation returns the PromptMutation object of the builder.
func (_u *PromptUpdateOne) Mutation() *PromptMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the Account entity.
func (_u *PromptUpdateOne) ClearOwner() *PromptUpdateOne {
	_u.mutation.ClearOwner()
	return _u
}

// Where appends a list predicates to the PromptUpdate builder.
func (_u *PromptUpdateOne) Where(ps ...predicate.Prompt) *PromptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PromptUpdateOne) Select(field string, fields ...string) *PromptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Prompt entity.
func (_u *PromptUpdateOne) Save(ctx context.Context) (*Prompt, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PromptUpdateOne) SaveX(ctx context.Context) *Prompt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PromptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PromptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PromptUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := prompt.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PromptUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := prompt.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Prompt.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Body(); ok {
		if err := prompt.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "Prompt.body": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModelUsed(); ok {
		if err := prompt.ModelUsedValidator(v); err != nil {
			return &ValidationError{Name: "model_used", err: fmt.Errorf(`ent: validator failed for field "Prompt.model_used": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Prompt.owner"`)
	}
	return nil
}

func (_u *PromptUpdateOne) sqlSave(ctx context.Context) (_node *Prompt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(prompt.Table, prompt.Columns, sqlgraph.NewFieldSpec(prompt.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Prompt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, prompt.FieldID)
		for _, f := range fields {
			if !prompt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != prompt.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(prompt.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(prompt.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelUsed(); ok {
		_spec.SetField(prompt.FieldModelUsed, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(prompt.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, prompt.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(prompt.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(prompt.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.OwnerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   prompt.OwnerTable,
			Columns: []string{prompt.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(account.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   prompt.OwnerTable,
			Columns: []string{prompt.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(account.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Prompt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prompt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
