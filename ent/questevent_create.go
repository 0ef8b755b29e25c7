// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/arnavsud/stethoquest/ent/questevent"
)

// QuestEventCreate is the builder for creating a QuestEvent entity.
type QuestEventCreate struct {
	config
	mutation *QuestEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *QuestEventCreate) SetSequence(v int64) *QuestEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *QuestEventCreate) SetTimestamp(v time.Time) *QuestEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *QuestEventCreate) SetNillableTimestamp(v *time.Time) *QuestEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetAction sets the "action" field.
func (_c *QuestEventCreate) SetAction(v string) *QuestEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetQuestType sets the "quest_type" field.
func (_c *QuestEventCreate) SetQuestType(v string) *QuestEventCreate {
	_c.mutation.SetQuestType(v)
	return _c
}

// SetQuestID sets the "quest_id" field.
func (_c *QuestEventCreate) SetQuestID(v string) *QuestEventCreate {
	_c.mutation.SetQuestID(v)
	return _c
}

// SetNillableQuestID sets the "quest_id" field if the given value is not nil.
func (_c *QuestEventCreate) SetNillableQuestID(v *string) *QuestEventCreate {
	if v != nil {
		_c.SetQuestID(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *QuestEventCreate) SetCategory(v string) *QuestEventCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *QuestEventCreate) SetNillableCategory(v *string) *QuestEventCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// Mutation returns the QuestEventMutation object of the builder.
func (_c *QuestEventCreate) Mutation() *QuestEventMutation {
	return _c.mutation
}

// Save creates the QuestEvent in the database.
func (_c *QuestEventCreate) Save(ctx context.Context) (*QuestEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestEventCreate) SaveX(ctx context.Context) *QuestEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := questevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.QuestID(); !ok {
		v := questevent.DefaultQuestID
		_c.mutation.SetQuestID(v)
	}
	if _, ok := _c.mutation.Category(); !ok {
		v := questevent.DefaultCategory
		_c.mutation.SetCategory(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "QuestEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "QuestEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "QuestEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := questevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "QuestEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestType(); !ok {
		return &ValidationError{Name: "quest_type", err: errors.New(`ent: missing required field "QuestEvent.quest_type"`)}
	}
	if v, ok := _c.mutation.QuestType(); ok {
		if err := questevent.QuestTypeValidator(v); err != nil {
			return &ValidationError{Name: "quest_type", err: fmt.Errorf(`ent: validator failed for field "QuestEvent.quest_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestID(); !ok {
		return &ValidationError{Name: "quest_id", err: errors.New(`ent: missing required field "QuestEvent.quest_id"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "QuestEvent.category"`)}
	}
	return nil
}

func (_c *QuestEventCreate) sqlSave(ctx context.Context) (*QuestEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuestEventCreate) createSpec() (*QuestEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &QuestEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(questevent.Table, sqlgraph.NewFieldSpec(questevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(questevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(questevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(questevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.QuestType(); ok {
		_spec.SetField(questevent.FieldQuestType, field.TypeString, value)
		_node.QuestType = value
	}
	if value, ok := _c.mutation.QuestID(); ok {
		_spec.SetField(questevent.FieldQuestID, field.TypeString, value)
		_node.QuestID = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(questevent.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	return _node, _spec
}

// QuestEventCreateBulk is the builder for creating many QuestEvent entities in bulk.
type QuestEventCreateBulk struct {
	config
	err      error
	builders []*QuestEventCreate
}

// Save creates the QuestEvent entities in the database.
func (_c *QuestEventCreateBulk) Save(ctx context.Context) ([]*QuestEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuestEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *QuestEventCreateBulk) SaveX(ctx context.Context) []*QuestEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
