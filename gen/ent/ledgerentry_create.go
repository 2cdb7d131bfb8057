// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/account"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/ledgerentry"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/transaction"
)

// LedgerEntryCreate is the builder for creating a LedgerEntry entity.
type LedgerEntryCreate struct {
	config
	mutation *LedgerEntryMutation
	hooks    []Hook
}

// SetTransactionID sets the "transaction_id" field.
func (_c *LedgerEntryCreate) SetTransactionID(v uuid.UUID) *LedgerEntryCreate {
	_c.mutation.SetTransactionID(v)
	return _c
}

// SetAccountID sets the "account_id" field.
func (_c *LedgerEntryCreate) SetAccountID(v uuid.UUID) *LedgerEntryCreate {
	_c.mutation.SetAccountID(v)
	return _c
}

// SetEntryType sets the "entry_type" field.
func (_c *LedgerEntryCreate) SetEntryType(v string) *LedgerEntryCreate {
	_c.mutation.SetEntryType(v)
	return _c
}

// SetAmount sets the "amount" field.
func (_c *LedgerEntryCreate) SetAmount(v float64) *LedgerEntryCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetCurrencyCode sets the "currency_code" field.
func (_c *LedgerEntryCreate) SetCurrencyCode(v string) *LedgerEntryCreate {
	_c.mutation.SetCurrencyCode(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LedgerEntryCreate) SetCreatedAt(v time.Time) *LedgerEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LedgerEntryCreate) SetNillableCreatedAt(v *time.Time) *LedgerEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LedgerEntryCreate) SetID(v uuid.UUID) *LedgerEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *LedgerEntryCreate) SetNillableID(v *uuid.UUID) *LedgerEntryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetTransaction sets the "transaction" edge to the Transaction entity.
func (_c *LedgerEntryCreate) SetTransaction(v *Transaction) *LedgerEntryCreate {
	return _c.SetTransactionID(v.ID)
}

// SetAccount sets the "account" edge to the Account entity.
func (_c *LedgerEntryCreate) SetAccount(v *Account) *LedgerEntryCreate {
	return _c.SetAccountID(v.ID)
}

// Mutation returns the LedgerEntryMutation object of the builder.
func (_c *LedgerEntryCreate) Mutation() *LedgerEntryMutation {
	return _c.mutation
}

// Save creates the LedgerEntry in the database.
func (_c *LedgerEntryCreate) Save(ctx context.Context) (*LedgerEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LedgerEntryCreate) SaveX(ctx context.Context) *LedgerEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LedgerEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LedgerEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LedgerEntryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := ledgerentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := ledgerentry.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LedgerEntryCreate) check() error {
	if _, ok := _c.mutation.TransactionID(); !ok {
		return &ValidationError{Name: "transaction_id", err: errors.New(`ent: missing required field "LedgerEntry.transaction_id"`)}
	}
	if _, ok := _c.mutation.AccountID(); !ok {
		return &ValidationError{Name: "account_id", err: errors.New(`ent: missing required field "LedgerEntry.account_id"`)}
	}
	if _, ok := _c.mutation.EntryType(); !ok {
		return &ValidationError{Name: "entry_type", err: errors.New(`ent: missing required field "LedgerEntry.entry_type"`)}
	}
	if v, ok := _c.mutation.EntryType(); ok {
		if err := ledgerentry.EntryTypeValidator(v); err != nil {
			return &ValidationError{Name: "entry_type", err: fmt.Errorf(`ent: validator failed for field "LedgerEntry.entry_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "LedgerEntry.amount"`)}
	}
	if v, ok := _c.mutation.Amount(); ok {
		if err := ledgerentry.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`ent: validator failed for field "LedgerEntry.amount": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CurrencyCode(); !ok {
		return &ValidationError{Name: "currency_code", err: errors.New(`ent: missing required field "LedgerEntry.currency_code"`)}
	}
	if v, ok := _c.mutation.CurrencyCode(); ok {
		if err := ledgerentry.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "LedgerEntry.currency_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LedgerEntry.created_at"`)}
	}
	if len(_c.mutation.TransactionIDs()) == 0 {
		return &ValidationError{Name: "transaction", err: errors.New(`ent: missing required edge "LedgerEntry.transaction"`)}
	}
	if len(_c.mutation.AccountIDs()) == 0 {
		return &ValidationError{Name: "account", err: errors.New(`ent: missing required edge "LedgerEntry.account"`)}
	}
	return nil
}

func (_c *LedgerEntryCreate) sqlSave(ctx context.Context) (*LedgerEntry, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LedgerEntryCreate) createSpec() (*LedgerEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &LedgerEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ledgerentry.Table, sqlgraph.NewFieldSpec(ledgerentry.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.EntryType(); ok {
		_spec.SetField(ledgerentry.FieldEntryType, field.TypeString, value)
		_node.EntryType = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(ledgerentry.FieldAmount, field.TypeFloat64, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.CurrencyCode(); ok {
		_spec.SetField(ledgerentry.FieldCurrencyCode, field.TypeString, value)
		_node.CurrencyCode = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(ledgerentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TransactionIDs(); len(nodes) > 0 {
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
		_node.TransactionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AccountIDs(); len(nodes) > 0 {
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
		_node.AccountID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// LedgerEntryCreateBulk is the builder for creating many LedgerEntry entities in bulk.
type LedgerEntryCreateBulk struct {
	config
	err      error
	builders []*LedgerEntryCreate
}

// Save creates the LedgerEntry entities in the database.
func (_c *LedgerEntryCreateBulk) Save(ctx context.Context) ([]*LedgerEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LedgerEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LedgerEntryMutation)
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
func (_c *LedgerEntryCreateBulk) SaveX(ctx context.Context) []*LedgerEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LedgerEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LedgerEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
