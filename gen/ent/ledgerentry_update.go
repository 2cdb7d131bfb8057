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
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/account"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/ledgerentry"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/predicate"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/transaction"
)

// LedgerEntryUpdate is the builder for updating LedgerEntry entities.
type LedgerEntryUpdate struct {
	config
	hooks    []Hook
	mutation *LedgerEntryMutation
}

// Where appends a list predicates to the LedgerEntryUpdate builder.
func (_u *LedgerEntryUpdate) Where(ps ...predicate.LedgerEntry) *LedgerEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTransactionID sets the "transaction_id" field.
func (_u *LedgerEntryUpdate) SetTransactionID(v uuid.UUID) *LedgerEntryUpdate {
	_u.mutation.SetTransactionID(v)
	return _u
}

// SetNillableTransactionID sets the "transaction_id" field if the given value is not nil.
func (_u *LedgerEntryUpdate) SetNillableTransactionID(v *uuid.UUID) *LedgerEntryUpdate {
	if v != nil {
		_u.SetTransactionID(*v)
	}
	return _u
}

// SetAccountID sets the "account_id" field.
func (_u *LedgerEntryUpdate) SetAccountID(v uuid.UUID) *LedgerEntryUpdate {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *LedgerEntryUpdate) SetNillableAccountID(v *uuid.UUID) *LedgerEntryUpdate {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// SetEntryType sets the "entry_type" field.
func (_u *LedgerEntryUpdate) SetEntryType(v string) *LedgerEntryUpdate {
	_u.mutation.SetEntryType(v)
	return _u
}

// SetNillableEntryType sets the "entry_type" field if the given value is not nil.
func (_u *LedgerEntryUpdate) SetNillableEntryType(v *string) *LedgerEntryUpdate {
	if v != nil {
		_u.SetEntryType(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *LedgerEntryUpdate) SetAmount(v float64) *LedgerEntryUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *LedgerEntryUpdate) SetNillableAmount(v *float64) *LedgerEntryUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *LedgerEntryUpdate) AddAmount(v float64) *LedgerEntryUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetCurrencyCode sets the "currency_code" field.
func (_u *LedgerEntryUpdate) SetCurrencyCode(v string) *LedgerEntryUpdate {
	_u.mutation.SetCurrencyCode(v)
	return _u
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_u *LedgerEntryUpdate) SetNillableCurrencyCode(v *string) *LedgerEntryUpdate {
	if v != nil {
		_u.SetCurrencyCode(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *LedgerEntryUpdate) SetCreatedAt(v time.Time) *LedgerEntryUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *LedgerEntryUpdate) SetNillableCreatedAt(v *time.Time) *LedgerEntryUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetTransaction sets the "transaction" edge to the Transaction entity.
func (_u *LedgerEntryUpdate) SetTransaction(v *Transaction) *LedgerEntryUpdate {
	return _u.SetTransactionID(v.ID)
}

// SetAccount sets the "account" edge to the Account entity.
func (_u *LedgerEntryUpdate) SetAccount(v *Account) *LedgerEntryUpdate {
	return _u.SetAccountID(v.ID)
}

// Mutation returns the LedgerEntryMutation object of the builder.
func (_u *LedgerEntryUpdate) Mutation() *LedgerEntryMutation {
	return _u.mutation
}

// ClearTransaction clears the "transaction" edge to the Transaction entity.
func (_u *LedgerEntryUpdate) ClearTransaction() *LedgerEntryUpdate {
	_u.mutation.ClearTransaction()
	return _u
}

// ClearAccount clears the "account" edge to the Account entity.
func (_u *LedgerEntryUpdate) ClearAccount() *LedgerEntryUpdate {
	_u.mutation.ClearAccount()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LedgerEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LedgerEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LedgerEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LedgerEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LedgerEntryUpdate) check() error {
	if v, ok := _u.mutation.EntryType(); ok {
		if err := ledgerentry.EntryTypeValidator(v); err != nil {
			return &ValidationError{Name: "entry_type", err: fmt.Errorf(`ent: validator failed for field "LedgerEntry.entry_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Amount(); ok {
		if err := ledgerentry.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`ent: validator failed for field "LedgerEntry.amount": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrencyCode(); ok {
		if err := ledgerentry.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "LedgerEntry.currency_code": %w`, err)}
		}
	}
	if _u.mutation.TransactionCleared() && len(_u.mutation.TransactionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LedgerEntry.transaction"`)
	}
	if _u.mutation.AccountCleared() && len(_u.mutation.AccountIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LedgerEntry.account"`)
	}
	return nil
}

func (_u *LedgerEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ledgerentry.Table, ledgerentry.Columns, sqlgraph.NewFieldSpec(ledgerentry.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EntryType(); ok {
		_spec.SetField(ledgerentry.FieldEntryType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(ledgerentry.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(ledgerentry.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CurrencyCode(); ok {
		_spec.SetField(ledgerentry.FieldCurrencyCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(ledgerentry.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.TransactionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ledgerentry.TransactionTable,
			Columns: []string{ledgerentry.TransactionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TransactionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ledgerentry.TransactionTable,
			Columns: []string{ledgerentry.TransactionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AccountCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ledgerentry.AccountTable,
			Columns: []string{ledgerentry.AccountColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(account.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AccountIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ledgerentry.AccountTable,
			Columns: []string{ledgerentry.AccountColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(account.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ledgerentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LedgerEntryUpdateOne is the builder for updating a single LedgerEntry entity.
type LedgerEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LedgerEntryMutation
}

// SetTransactionID sets the "transaction_id" field.
func (_u *LedgerEntryUpdateOne) SetTransactionID(v uuid.UUID) *LedgerEntryUpdateOne {
	_u.mutation.SetTransactionID(v)
	return _u
}

// SetNillableTransactionID sets the "transaction_id" field if the given value is not nil.
func (_u *LedgerEntryUpdateOne) SetNillableTransactionID(v *uuid.UUID) *LedgerEntryUpdateOne {
	if v != nil {
		_u.SetTransactionID(*v)
	}
	return _u
}

// SetAccountID sets the "account_id" field.
func (_u *LedgerEntryUpdateOne) SetAccountID(v uuid.UUID) *LedgerEntryUpdateOne {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *LedgerEntryUpdateOne) SetNillableAccountID(v *uuid.UUID) *LedgerEntryUpdateOne {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// SetEntryType sets the "entry_type" field.
func (_u *LedgerEntryUpdateOne) SetEntryType(v string) *LedgerEntryUpdateOne {
	_u.mutation.SetEntryType(v)
	return _u
}

// SetNillableEntryType sets the "entry_type" field if the given value is not nil.
func (_u *LedgerEntryUpdateOne) SetNillableEntryType(v *string) *LedgerEntryUpdateOne {
	if v != nil {
		_u.SetEntryType(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *LedgerEntryUpdateOne) SetAmount(v float64) *LedgerEntryUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *LedgerEntryUpdateOne) SetNillableAmount(v *float64) *LedgerEntryUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *LedgerEntryUpdateOne) AddAmount(v float64) *LedgerEntryUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetCurrencyCode sets the "currency_code" field.
func (_u *LedgerEntryUpdateOne) SetCurrencyCode(v string) *LedgerEntryUpdateOne {
	_u.mutation.SetCurrencyCode(v)
	return _u
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_u *LedgerEntryUpdateOne) SetNillableCurrencyCode(v *string) *LedgerEntryUpdateOne {
	if v != nil {
		_u.SetCurrencyCode(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *LedgerEntryUpdateOne) SetCreatedAt(v time.Time) *LedgerEntryUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *LedgerEntryUpdateOne) SetNillableCreatedAt(v *time.Time) *LedgerEntryUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetTransaction sets the "transaction" edge to the Transaction entity.
func (_u *LedgerEntryUpdateOne) SetTransaction(v *Transaction) *LedgerEntryUpdateOne {
	return _u.SetTransactionID(v.ID)
}

// SetAccount sets the "account" edge to the Account entity.
func (_u *LedgerEntryUpdateOne) SetAccount(v *Account) *LedgerEntryUpdateOne {
	return _u.SetAccountID(v.ID)
}

// Mutation returns the LedgerEntryMutation object of the builder.
func (_u *LedgerEntryUpdateOne) Mutation() *LedgerEntryMutation {
	return _u.mutation
}

// ClearTransaction clears the "transaction" edge to the Transaction entity.
func (_u *LedgerEntryUpdateOne) ClearTransaction() *LedgerEntryUpdateOne {
	_u.mutation.ClearTransaction()
	return _u
}

// ClearAccount clears the "account" edge to the Account entity.
func (_u *LedgerEntryUpdateOne) ClearAccount() *LedgerEntryUpdateOne {
	_u.mutation.ClearAccount()
	return _u
}

// Where appends a list predicates to the LedgerEntryUpdate builder.
func (_u *LedgerEntryUpdateOne) Where(ps ...predicate.LedgerEntry) *LedgerEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LedgerEntryUpdateOne) Select(field string, fields ...string) *LedgerEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LedgerEntry entity.
func (_u *LedgerEntryUpdateOne) Save(ctx context.Context) (*LedgerEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LedgerEntryUpdateOne) SaveX(ctx context.Context) *LedgerEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LedgerEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LedgerEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LedgerEntryUpdateOne) check() error {
	if v, ok := _u.mutation.EntryType(); ok {
		if err := ledgerentry.EntryTypeValidator(v); err != nil {
			return &ValidationError{Name: "entry_type", err: fmt.Errorf(`ent: validator failed for field "LedgerEntry.entry_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Amount(); ok {
		if err := ledgerentry.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`ent: validator failed for field "LedgerEntry.amount": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrencyCode(); ok {
		if err := ledgerentry.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "LedgerEntry.currency_code": %w`, err)}
		}
	}
	if _u.mutation.TransactionCleared() && len(_u.mutation.TransactionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LedgerEntry.transaction"`)
	}
	if _u.mutation.AccountCleared() && len(_u.mutation.AccountIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LedgerEntry.account"`)
	}
	return nil
}

func (_u *LedgerEntryUpdateOne) sqlSave(ctx context.Context) (_node *LedgerEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ledgerentry.Table, ledgerentry.Columns, sqlgraph.NewFieldSpec(ledgerentry.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LedgerEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ledgerentry.FieldID)
		for _, f := range fields {
			if !ledgerentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ledgerentry.FieldID {
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
	if value, ok := _u.mutation.EntryType(); ok {
		_spec.SetField(ledgerentry.FieldEntryType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(ledgerentry.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(ledgerentry.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CurrencyCode(); ok {
		_spec.SetField(ledgerentry.FieldCurrencyCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(ledgerentry.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.TransactionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ledgerentry.TransactionTable,
			Columns: []string{ledgerentry.TransactionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TransactionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ledgerentry.TransactionTable,
			Columns: []string{ledgerentry.TransactionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AccountCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ledgerentry.AccountTable,
			Columns: []string{ledgerentry.AccountColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(account.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AccountIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ledgerentry.AccountTable,
			Columns: []string{ledgerentry.AccountColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(account.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &LedgerEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ledgerentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
