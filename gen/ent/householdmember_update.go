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
	"github.com/google/uuid"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/household"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/householdmember"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/predicate"
)

// HouseholdMemberUpdate is the builder for updating HouseholdMember entities.
type HouseholdMemberUpdate struct {
	config
	hooks    []Hook
	mutation *HouseholdMemberMutation
}

// Where appends a list predicates to the HouseholdMemberUpdate builder.
func (_u *HouseholdMemberUpdate) Where(ps ...predicate.HouseholdMember) *HouseholdMemberUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetHouseholdID sets the "household_id" field.
func (_u *HouseholdMemberUpdate) SetHouseholdID(v uuid.UUID) *HouseholdMemberUpdate {
	_u.mutation.SetHouseholdID(v)
	return _u
}

// SetNillableHouseholdID sets the "household_id" field if the given value is not nil.
func (_u *HouseholdMemberUpdate) SetNillableHouseholdID(v *uuid.UUID) *HouseholdMemberUpdate {
	if v != nil {
		_u.SetHouseholdID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *HouseholdMemberUpdate) SetUserID(v uuid.UUID) *HouseholdMemberUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *HouseholdMemberUpdate) SetNillableUserID(v *uuid.UUID) *HouseholdMemberUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *HouseholdMemberUpdate) SetRole(v string) *HouseholdMemberUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *HouseholdMemberUpdate) SetNillableRole(v *string) *HouseholdMemberUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetJoinedAt sets the "joined_at" field.
func (_u *HouseholdMemberUpdate) SetJoinedAt(v time.Time) *HouseholdMemberUpdate {
	_u.mutation.SetJoinedAt(v)
	return _u
}

// SetNillableJoinedAt sets the "joined_at" field if the given value is not nil.
func (_u *HouseholdMemberUpdate) SetNillableJoinedAt(v *time.Time) *HouseholdMemberUpdate {
	if v != nil {
		_u.SetJoinedAt(*v)
	}
	return _u
}

// SetHousehold sets the "household" edge to the Household entity.
func (_u *HouseholdMemberUpdate) SetHousehold(v *Household) *HouseholdMemberUpdate {
	return _u.SetHouseholdID(v.ID)
}

// Mutation returns the HouseholdMemberMutation object of the builder.
func (_u *HouseholdMemberUpdate) Mutation() *HouseholdMemberMutation {
	return _u.mutation
}

// ClearHousehold clears the "household" edge to the Household entity.
func (_u *HouseholdMemberUpdate) ClearHousehold() *HouseholdMemberUpdate {
	_u.mutation.ClearHousehold()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HouseholdMemberUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HouseholdMemberUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HouseholdMemberUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HouseholdMemberUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HouseholdMemberUpdate) check() error {
	if _u.mutation.HouseholdCleared() && len(_u.mutation.HouseholdIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "HouseholdMember.household"`)
	}
	return nil
}

func (_u *HouseholdMemberUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(householdmember.Table, householdmember.Columns, sqlgraph.NewFieldSpec(householdmember.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(householdmember.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(householdmember.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.JoinedAt(); ok {
		_spec.SetField(householdmember.FieldJoinedAt, field.TypeTime, value)
	}
	if _u.mutation.HouseholdCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   householdmember.HouseholdTable,
			Columns: []string{householdmember.HouseholdColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(household.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HouseholdIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   householdmember.HouseholdTable,
			Columns: []string{householdmember.HouseholdColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(household.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{householdmember.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HouseholdMemberUpdateOne is the builder for updating a single HouseholdMember entity.
type HouseholdMemberUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HouseholdMemberMutation
}

// SetHouseholdID sets the "household_id" field.
func (_u *HouseholdMemberUpdateOne) SetHouseholdID(v uuid.UUID) *HouseholdMemberUpdateOne {
	_u.mutation.SetHouseholdID(v)
	return _u
}

// SetNillableHouseholdID sets the "household_id" field if the given value is not nil.
func (_u *HouseholdMemberUpdateOne) SetNillableHouseholdID(v *uuid.UUID) *HouseholdMemberUpdateOne {
	if v != nil {
		_u.SetHouseholdID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *HouseholdMemberUpdateOne) SetUserID(v uuid.UUID) *HouseholdMemberUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *HouseholdMemberUpdateOne) SetNillableUserID(v *uuid.UUID) *HouseholdMemberUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *HouseholdMemberUpdateOne) SetRole(v string) *HouseholdMemberUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *HouseholdMemberUpdateOne) SetNillableRole(v *string) *HouseholdMemberUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetJoinedAt sets the "joined_at" field.
func (_u *HouseholdMemberUpdateOne) SetJoinedAt(v time.Time) *HouseholdMemberUpdateOne {
	_u.mutation.SetJoinedAt(v)
	return _u
}

// SetNillableJoinedAt sets the "joined_at" field if the given value is not nil.
func (_u *HouseholdMemberUpdateOne) SetNillableJoinedAt(v *time.Time) *HouseholdMemberUpdateOne {
	if v != nil {
		_u.SetJoinedAt(*v)
	}
	return _u
}

// SetHousehold sets the "household" edge to the Household entity.
func (_u *HouseholdMemberUpdateOne) SetHousehold(v *Household) *HouseholdMemberUpdateOne {
	return _u.SetHouseholdID(v.ID)
}

// Mutation returns the HouseholdMemberMutation object of the builder.
func (_u *HouseholdMemberUpdateOne) Mutation() *HouseholdMemberMutation {
	return _u.mutation
}

// ClearHousehold clears the "household" edge to the Household entity.
func (_u *HouseholdMemberUpdateOne) ClearHousehold() *HouseholdMemberUpdateOne {
	_u.mutation.ClearHousehold()
	return _u
}

// Where appends a list predicates to the HouseholdMemberUpdate builder.
func (_u *HouseholdMemberUpdateOne) Where(ps ...predicate.HouseholdMember) *HouseholdMemberUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HouseholdMemberUpdateOne) Select(field string, fields ...string) *HouseholdMemberUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HouseholdMember entity.
func (_u *HouseholdMemberUpdateOne) Save(ctx context.Context) (*HouseholdMember, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HouseholdMemberUpdateOne) SaveX(ctx context.Context) *HouseholdMember {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HouseholdMemberUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HouseholdMemberUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HouseholdMemberUpdateOne) check() error {
	if _u.mutation.HouseholdCleared() && len(_u.mutation.HouseholdIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "HouseholdMember.household"`)
	}
	return nil
}

func (_u *HouseholdMemberUpdateOne) sqlSave(ctx context.Context) (_node *HouseholdMember, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(householdmember.Table, householdmember.Columns, sqlgraph.NewFieldSpec(householdmember.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "HouseholdMember.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, householdmember.FieldID)
		for _, f := range fields {
			if !householdmember.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != householdmember.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(householdmember.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(householdmember.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.JoinedAt(); ok {
		_spec.SetField(householdmember.FieldJoinedAt, field.TypeTime, value)
	}
	if _u.mutation.HouseholdCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   householdmember.HouseholdTable,
			Columns: []string{householdmember.HouseholdColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(household.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HouseholdIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   householdmember.HouseholdTable,
			Columns: []string{householdmember.HouseholdColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(household.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &HouseholdMember{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{householdmember.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
