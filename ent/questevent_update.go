// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/arnavsud/stethoquest/ent/predicate"
	"github.com/arnavsud/stethoquest/ent/questevent"
)

// QuestEventUpdate is the builder for updating QuestEvent entities.
type QuestEventUpdate struct {
	config
	hooks    []Hook
	mutation *QuestEventMutation
}

// Where appends a list predicates to the QuestEventUpdate builder.
func (_u *QuestEventUpdate) Where(ps ...predicate.QuestEvent) *QuestEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAction sets the "action" field.
func (_u *QuestEventUpdate) SetAction(v string) *QuestEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *QuestEventUpdate) SetNillableAction(v *string) *QuestEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetQuestType sets the "quest_type" field.
func (_u *QuestEventUpdate) SetQuestType(v string) *QuestEventUpdate {
	_u.mutation.SetQuestType(v)
	return _u
}

// SetNillableQuestType sets the "quest_type" field if the given value is not nil.
func (_u *QuestEventUpdate) SetNillableQuestType(v *string) *QuestEventUpdate {
	if v != nil {
		_u.SetQuestType(*v)
	}
	return _u
}

// SetQuestID sets the "quest_id" field.
func (_u *QuestEventUpdate) SetQuestID(v string) *QuestEventUpdate {
	_u.mutation.SetQuestID(v)
	return _u
}

// SetNillableQuestID sets the "quest_id" field if the given value is not nil.
func (_u *QuestEventUpdate) SetNillableQuestID(v *string) *QuestEventUpdate {
	if v != nil {
		_u.SetQuestID(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *QuestEventUpdate) SetCategory(v string) *QuestEventUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *QuestEventUpdate) SetNillableCategory(v *string) *QuestEventUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// Mutation returns the QuestEventMutation object of the builder.
func (_u *QuestEventUpdate) Mutation() *QuestEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestEventUpdate) check() error {
	if v, ok := _u.mutation.Action(); ok {
		if err := questevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "QuestEvent.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestType(); ok {
		if err := questevent.QuestTypeValidator(v); err != nil {
			return &ValidationError{Name: "quest_type", err: fmt.Errorf(`ent: validator failed for field "QuestEvent.quest_type": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questevent.Table, questevent.Columns, sqlgraph.NewFieldSpec(questevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(questevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestType(); ok {
		_spec.SetField(questevent.FieldQuestType, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestID(); ok {
		_spec.SetField(questevent.FieldQuestID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(questevent.FieldCategory, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestEventUpdateOne is the builder for updating a single QuestEvent entity.
type QuestEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestEventMutation
}

// SetAction sets the "action" field.
func (_u *QuestEventUpdateOne) SetAction(v string) *QuestEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *QuestEventUpdateOne) SetNillableAction(v *string) *QuestEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetQuestType sets the "quest_type" field.
func (_u *QuestEventUpdateOne) SetQuestType(v string) *QuestEventUpdateOne {
	_u.mutation.SetQuestType(v)
	return _u
}

// SetNillableQuestType sets the "quest_type" field if the given value is not nil.
func (_u *QuestEventUpdateOne) SetNillableQuestType(v *string) *QuestEventUpdateOne {
	if v != nil {
		_u.SetQuestType(*v)
	}
	return _u
}

// SetQuestID sets the "quest_id" field.
func (_u *QuestEventUpdateOne) SetQuestID(v string) *QuestEventUpdateOne {
	_u.mutation.SetQuestID(v)
	return _u
}

// SetNillableQuestID sets the "quest_id" field if the given value is not nil.
func (_u *QuestEventUpdateOne) SetNillableQuestID(v *string) *QuestEventUpdateOne {
	if v != nil {
		_u.SetQuestID(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *QuestEventUpdateOne) SetCategory(v string) *QuestEventUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *QuestEventUpdateOne) SetNillableCategory(v *string) *QuestEventUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// Mutation returns the QuestEventMutation object of the builder.
func (_u *QuestEventUpdateOne) Mutation() *QuestEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuestEventUpdate builder.
func (_u *QuestEventUpdateOne) Where(ps ...predicate.QuestEvent) *QuestEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestEventUpdateOne) Select(field string, fields ...string) *QuestEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuestEvent entity.
func (_u *QuestEventUpdateOne) Save(ctx context.Context) (*QuestEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestEventUpdateOne) SaveX(ctx context.Context) *QuestEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestEventUpdateOne) check() error {
	if v, ok := _u.mutation.Action(); ok {
		if err := questevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "QuestEvent.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestType(); ok {
		if err := questevent.QuestTypeValidator(v); err != nil {
			return &ValidationError{Name: "quest_type", err: fmt.Errorf(`ent: validator failed for field "QuestEvent.quest_type": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestEventUpdateOne) sqlSave(ctx context.Context) (_node *QuestEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questevent.Table, questevent.Columns, sqlgraph.NewFieldSpec(questevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuestEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, questevent.FieldID)
		for _, f := range fields {
			if !questevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != questevent.FieldID {
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
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(questevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestType(); ok {
		_spec.SetField(questevent.FieldQuestType, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestID(); ok {
		_spec.SetField(questevent.FieldQuestID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(questevent.FieldCategory, field.TypeString, value)
	}
	_node = &QuestEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
