// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/account"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/category"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/document"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/household"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/householdmember"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/ledgerentry"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/ocrresult"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/predicate"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/suggestion"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/transaction"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAccount         = "Account"
	TypeCategory        = "Category"
	TypeDocument        = "Document"
	TypeHousehold       = "Household"
	TypeHouseholdMember = "HouseholdMember"
	TypeLedgerEntry     = "LedgerEntry"
	TypeOcrResult       = "OcrResult"
	TypeSuggestion      = "Suggestion"
	TypeTransaction     = "Transaction"
)

// AccountMutation represents an operation that mutates the Account nodes in the graph.
type AccountMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	name                *string
	account_type        *string
	currency_code       *string
	is_active           *bool
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	household           *uuid.UUID
	clearedhousehold    bool
	transactions        map[uuid.UUID]struct{}
	removedtransactions map[uuid.UUID]struct{}
	clearedtransactions bool
	entries             map[uuid.UUID]struct{}
	removedentries      map[uuid.UUID]struct{}
	clearedentries      bool
	done                bool
	oldValue            func(context.Context) (*Account, error)
	predicates          []predicate.Account
}

var _ ent.Mutation = (*AccountMutation)(nil)

// accountOption allows management of the mutation configuration using functional options.
type accountOption func(*AccountMutation)

// newAccountMutation creates new mutation for the Account entity.
func newAccountMutation(c config, op Op, opts ...accountOption) *AccountMutation {
	m := &AccountMutation{
		config:        c,
		op:            op,
		typ:           TypeAccount,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAccountID sets the ID field of the mutation.
func withAccountID(id uuid.UUID) accountOption {
	return func(m *AccountMutation) {
		var (
			err   error
			once  sync.Once
			value *Account
		)
		m.oldValue = func(ctx context.Context) (*Account, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Account.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAccount sets the old Account of the mutation.
func withAccount(node *Account) accountOption {
	return func(m *AccountMutation) {
		m.oldValue = func(context.Context) (*Account, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AccountMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AccountMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Account entities.
func (m *AccountMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AccountMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AccountMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Account.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetHouseholdID sets the "household_id" field.
func (m *AccountMutation) SetHouseholdID(u uuid.UUID) {
	m.household = &u
}

// HouseholdID returns the value of the "household_id" field in the mutation.
func (m *AccountMutation) HouseholdID() (r uuid.UUID, exists bool) {
	v := m.household
	if v == nil {
		return
	}
	return *v, true
}

// OldHouseholdID returns the old "household_id" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldHouseholdID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHouseholdID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHouseholdID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHouseholdID: %w", err)
	}
	return oldValue.HouseholdID, nil
}

// ResetHouseholdID resets all changes to the "household_id" field.
func (m *AccountMutation) ResetHouseholdID() {
	m.household = nil
}

// SetName sets the "name" field.
func (m *AccountMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AccountMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AccountMutation) ResetName() {
	m.name = nil
}

// SetAccountType sets the "account_type" field.
func (m *AccountMutation) SetAccountType(s string) {
	m.account_type = &s
}

// AccountType returns the value of the "account_type" field in the mutation.
func (m *AccountMutation) AccountType() (r string, exists bool) {
	v := m.account_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountType returns the old "account_type" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldAccountType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountType: %w", err)
	}
	return oldValue.AccountType, nil
}

// ResetAccountType resets all changes to the "account_type" field.
func (m *AccountMutation) ResetAccountType() {
	m.account_type = nil
}

// SetCurrencyCode sets the "currency_code" field.
func (m *AccountMutation) SetCurrencyCode(s string) {
	m.currency_code = &s
}

// CurrencyCode returns the value of the "currency_code" field in the mutation.
func (m *AccountMutation) CurrencyCode() (r string, exists bool) {
	v := m.currency_code
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrencyCode returns the old "currency_code" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldCurrencyCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrencyCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrencyCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrencyCode: %w", err)
	}
	return oldValue.CurrencyCode, nil
}

// ResetCurrencyCode resets all changes to the "currency_code" field.
func (m *AccountMutation) ResetCurrencyCode() {
	m.currency_code = nil
}

// SetIsActive sets the "is_active" field.
func (m *AccountMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *AccountMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *AccountMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AccountMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AccountMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AccountMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AccountMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AccountMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AccountMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearHousehold clears the "household" edge to the Household entity.
func (m *AccountMutation) ClearHousehold() {
	m.clearedhousehold = true
	m.clearedFields[account.FieldHouseholdID] = struct{}{}
}

// HouseholdCleared reports if the "household" edge to the Household entity was cleared.
func (m *AccountMutation) HouseholdCleared() bool {
	return m.clearedhousehold
}

// HouseholdIDs returns the "household" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// HouseholdID instead. It exists only for internal usage by the builders.
func (m *AccountMutation) HouseholdIDs() (ids []uuid.UUID) {
	if id := m.household; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetHousehold resets all changes to the "household" edge.
func (m *AccountMutation) ResetHousehold() {
	m.household = nil
	m.clearedhousehold = false
}

// AddTransactionIDs adds the "transactions" edge to the Transaction entity by ids.
func (m *AccountMutation) AddTransactionIDs(ids ...uuid.UUID) {
	if m.transactions == nil {
		m.transactions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.transactions[ids[i]] = struct{}{}
	}
}

// ClearTransactions clears the "transactions" edge to the Transaction entity.
func (m *AccountMutation) ClearTransactions() {
	m.clearedtransactions = true
}

// TransactionsCleared reports if the "transactions" edge to the Transaction entity was cleared.
func (m *AccountMutation) TransactionsCleared() bool {
	return m.clearedtransactions
}

// RemoveTransactionIDs removes the "transactions" edge to the Transaction entity by IDs.
func (m *AccountMutation) RemoveTransactionIDs(ids ...uuid.UUID) {
	if m.removedtransactions == nil {
		m.removedtransactions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.transactions, ids[i])
		m.removedtransactions[ids[i]] = struct{}{}
	}
}

// RemovedTransactions returns the removed IDs of the "transactions" edge to the Transaction entity.
func (m *AccountMutation) RemovedTransactionsIDs() (ids []uuid.UUID) {
	for id := range m.removedtransactions {
		ids = append(ids, id)
	}
	return
}

// TransactionsIDs returns the "transactions" edge IDs in the mutation.
func (m *AccountMutation) TransactionsIDs() (ids []uuid.UUID) {
	for id := range m.transactions {
		ids = append(ids, id)
	}
	return
}

// ResetTransactions resets all changes to the "transactions" edge.
func (m *AccountMutation) ResetTransactions() {
	m.transactions = nil
	m.clearedtransactions = false
	m.removedtransactions = nil
}

// AddEntryIDs adds the "entries" edge to the LedgerEntry entity by ids.
func (m *AccountMutation) AddEntryIDs(ids ...uuid.UUID) {
	if m.entries == nil {
		m.entries = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.entries[ids[i]] = struct{}{}
	}
}

// ClearEntries clears the "entries" edge to the LedgerEntry entity.
func (m *AccountMutation) ClearEntries() {
	m.clearedentries = true
}

// EntriesCleared reports if the "entries" edge to the LedgerEntry entity was cleared.
func (m *AccountMutation) EntriesCleared() bool {
	return m.clearedentries
}

// RemoveEntryIDs removes the "entries" edge to the LedgerEntry entity by IDs.
func (m *AccountMutation) RemoveEntryIDs(ids ...uuid.UUID) {
	if m.removedentries == nil {
		m.removedentries = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.entries, ids[i])
		m.removedentries[ids[i]] = struct{}{}
	}
}

// RemovedEntries returns the removed IDs of the "entries" edge to the LedgerEntry entity.
func (m *AccountMutation) RemovedEntriesIDs() (ids []uuid.UUID) {
	for id := range m.removedentries {
		ids = append(ids, id)
	}
	return
}

// EntriesIDs returns the "entries" edge IDs in the mutation.
func (m *AccountMutation) EntriesIDs() (ids []uuid.UUID) {
	for id := range m.entries {
		ids = append(ids, id)
	}
	return
}

// ResetEntries resets all changes to the "entries" edge.
func (m *AccountMutation) ResetEntries() {
	m.entries = nil
	m.clearedentries = false
	m.removedentries = nil
}

// Where appends a list predicates to the AccountMutation builder.
func (m *AccountMutation) Where(ps ...predicate.Account) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AccountMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AccountMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Account, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AccountMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AccountMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Account).
func (m *AccountMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AccountMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.household != nil {
		fields = append(fields, account.FieldHouseholdID)
	}
	if m.name != nil {
		fields = append(fields, account.FieldName)
	}
	if m.account_type != nil {
		fields = append(fields, account.FieldAccountType)
	}
	if m.currency_code != nil {
		fields = append(fields, account.FieldCurrencyCode)
	}
	if m.is_active != nil {
		fields = append(fields, account.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, account.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, account.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AccountMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case account.FieldHouseholdID:
		return m.HouseholdID()
	case account.FieldName:
		return m.Name()
	case account.FieldAccountType:
		return m.AccountType()
	case account.FieldCurrencyCode:
		return m.CurrencyCode()
	case account.FieldIsActive:
		return m.IsActive()
	case account.FieldCreatedAt:
		return m.CreatedAt()
	case account.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AccountMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case account.FieldHouseholdID:
		return m.OldHouseholdID(ctx)
	case account.FieldName:
		return m.OldName(ctx)
	case account.FieldAccountType:
		return m.OldAccountType(ctx)
	case account.FieldCurrencyCode:
		return m.OldCurrencyCode(ctx)
	case account.FieldIsActive:
		return m.OldIsActive(ctx)
	case account.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case account.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Account field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AccountMutation) SetField(name string, value ent.Value) error {
	switch name {
	case account.FieldHouseholdID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHouseholdID(v)
		return nil
	case account.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case account.FieldAccountType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountType(v)
		return nil
	case account.FieldCurrencyCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrencyCode(v)
		return nil
	case account.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case account.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case account.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Account field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AccountMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AccountMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AccountMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Account numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AccountMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AccountMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AccountMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Account nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AccountMutation) ResetField(name string) error {
	switch name {
	case account.FieldHouseholdID:
		m.ResetHouseholdID()
		return nil
	case account.FieldName:
		m.ResetName()
		return nil
	case account.FieldAccountType:
		m.ResetAccountType()
		return nil
	case account.FieldCurrencyCode:
		m.ResetCurrencyCode()
		return nil
	case account.FieldIsActive:
		m.ResetIsActive()
		return nil
	case account.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case account.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Account field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AccountMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.household != nil {
		edges = append(edges, account.EdgeHousehold)
	}
	if m.transactions != nil {
		edges = append(edges, account.EdgeTransactions)
	}
	if m.entries != nil {
		edges = append(edges, account.EdgeEntries)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AccountMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case account.EdgeHousehold:
		if id := m.household; id != nil {
			return []ent.Value{*id}
		}
	case account.EdgeTransactions:
		ids := make([]ent.Value, 0, len(m.transactions))
		for id := range m.transactions {
			ids = append(ids, id)
		}
		return ids
	case account.EdgeEntries:
		ids := make([]ent.Value, 0, len(m.entries))
		for id := range m.entries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AccountMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedtransactions != nil {
		edges = append(edges, account.EdgeTransactions)
	}
	if m.removedentries != nil {
		edges = append(edges, account.EdgeEntries)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AccountMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case account.EdgeTransactions:
		ids := make([]ent.Value, 0, len(m.removedtransactions))
		for id := range m.removedtransactions {
			ids = append(ids, id)
		}
		return ids
	case account.EdgeEntries:
		ids := make([]ent.Value, 0, len(m.removedentries))
		for id := range m.removedentries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AccountMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedhousehold {
		edges = append(edges, account.EdgeHousehold)
	}
	if m.clearedtransactions {
		edges = append(edges, account.EdgeTransactions)
	}
	if m.clearedentries {
		edges = append(edges, account.EdgeEntries)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AccountMutation) EdgeCleared(name string) bool {
	switch name {
	case account.EdgeHousehold:
		return m.clearedhousehold
	case account.EdgeTransactions:
		return m.clearedtransactions
	case account.EdgeEntries:
		return m.clearedentries
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AccountMutation) ClearEdge(name string) error {
	switch name {
	case account.EdgeHousehold:
		m.ClearHousehold()
		return nil
	}
	return fmt.Errorf("unknown Account unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AccountMutation) ResetEdge(name string) error {
	switch name {
	case account.EdgeHousehold:
		m.ResetHousehold()
		return nil
	case account.EdgeTransactions:
		m.ResetTransactions()
		return nil
	case account.EdgeEntries:
		m.ResetEntries()
		return nil
	}
	return fmt.Errorf("unknown Account edge %s", name)
}

// CategoryMutation represents an operation that mutates the Category nodes in the graph.
type CategoryMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	name                *string
	clearedFields       map[string]struct{}
	household           *uuid.UUID
	clearedhousehold    bool
	transactions        map[uuid.UUID]struct{}
	removedtransactions map[uuid.UUID]struct{}
	clearedtransactions bool
	done                bool
	oldValue            func(context.Context) (*Category, error)
	predicates          []predicate.Category
}

var _ ent.Mutation = (*CategoryMutation)(nil)

// categoryOption allows management of the mutation configuration using functional options.
type categoryOption func(*CategoryMutation)

// newCategoryMutation creates new mutation for the Category entity.
func newCategoryMutation(c config, op Op, opts ...categoryOption) *CategoryMutation {
	m := &CategoryMutation{
		config:        c,
		op:            op,
		typ:           TypeCategory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCategoryID sets the ID field of the mutation.
func withCategoryID(id uuid.UUID) categoryOption {
	return func(m *CategoryMutation) {
		var (
			err   error
			once  sync.Once
			value *Category
		)
		m.oldValue = func(ctx context.Context) (*Category, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Category.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCategory sets the old Category of the mutation.
func withCategory(node *Category) categoryOption {
	return func(m *CategoryMutation) {
		m.oldValue = func(context.Context) (*Category, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CategoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CategoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Category entities.
func (m *CategoryMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CategoryMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CategoryMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Category.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetHouseholdID sets the "household_id" field.
func (m *CategoryMutation) SetHouseholdID(u uuid.UUID) {
	m.household = &u
}

// HouseholdID returns the value of the "household_id" field in the mutation.
func (m *CategoryMutation) HouseholdID() (r uuid.UUID, exists bool) {
	v := m.household
	if v == nil {
		return
	}
	return *v, true
}

// OldHouseholdID returns the old "household_id" field's value of the Category entity.
// If the Category object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryMutation) OldHouseholdID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHouseholdID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHouseholdID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHouseholdID: %w", err)
	}
	return oldValue.HouseholdID, nil
}

// ResetHouseholdID resets all changes to the "household_id" field.
func (m *CategoryMutation) ResetHouseholdID() {
	m.household = nil
}

// SetName sets the "name" field.
func (m *CategoryMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CategoryMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Category entity.
// If the Category object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CategoryMutation) ResetName() {
	m.name = nil
}

// ClearHousehold clears the "household" edge to the Household entity.
func (m *CategoryMutation) ClearHousehold() {
	m.clearedhousehold = true
	m.clearedFields[category.FieldHouseholdID] = struct{}{}
}

// HouseholdCleared reports if the "household" edge to the Household entity was cleared.
func (m *CategoryMutation) HouseholdCleared() bool {
	return m.clearedhousehold
}

// HouseholdIDs returns the "household" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// HouseholdID instead. It exists only for internal usage by the builders.
func (m *CategoryMutation) HouseholdIDs() (ids []uuid.UUID) {
	if id := m.household; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetHousehold resets all changes to the "household" edge.
func (m *CategoryMutation) ResetHousehold() {
	m.household = nil
	m.clearedhousehold = false
}

// AddTransactionIDs adds the "transactions" edge to the Transaction entity by ids.
func (m *CategoryMutation) AddTransactionIDs(ids ...uuid.UUID) {
	if m.transactions == nil {
		m.transactions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.transactions[ids[i]] = struct{}{}
	}
}

// ClearTransactions clears the "transactions" edge to the Transaction entity.
func (m *CategoryMutation) ClearTransactions() {
	m.clearedtransactions = true
}

// TransactionsCleared reports if the "transactions" edge to the Transaction entity was cleared.
func (m *CategoryMutation) TransactionsCleared() bool {
	return m.clearedtransactions
}

// RemoveTransactionIDs removes the "transactions" edge to the Transaction entity by IDs.
func (m *CategoryMutation) RemoveTransactionIDs(ids ...uuid.UUID) {
	if m.removedtransactions == nil {
		m.removedtransactions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.transactions, ids[i])
		m.removedtransactions[ids[i]] = struct{}{}
	}
}

// RemovedTransactions returns the removed IDs of the "transactions" edge to the Transaction entity.
func (m *CategoryMutation) RemovedTransactionsIDs() (ids []uuid.UUID) {
	for id := range m.removedtransactions {
		ids = append(ids, id)
	}
	return
}

// TransactionsIDs returns the "transactions" edge IDs in the mutation.
func (m *CategoryMutation) TransactionsIDs() (ids []uuid.UUID) {
	for id := range m.transactions {
		ids = append(ids, id)
	}
	return
}

// ResetTransactions resets all changes to the "transactions" edge.
func (m *CategoryMutation) ResetTransactions() {
	m.transactions = nil
	m.clearedtransactions = false
	m.removedtransactions = nil
}

// Where appends a list predicates to the CategoryMutation builder.
func (m *CategoryMutation) Where(ps ...predicate.Category) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CategoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CategoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Category, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CategoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CategoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Category).
func (m *CategoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CategoryMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.household != nil {
		fields = append(fields, category.FieldHouseholdID)
	}
	if m.name != nil {
		fields = append(fields, category.FieldName)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CategoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case category.FieldHouseholdID:
		return m.HouseholdID()
	case category.FieldName:
		return m.Name()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CategoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case category.FieldHouseholdID:
		return m.OldHouseholdID(ctx)
	case category.FieldName:
		return m.OldName(ctx)
	}
	return nil, fmt.Errorf("unknown Category field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CategoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case category.FieldHouseholdID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHouseholdID(v)
		return nil
	case category.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	}
	return fmt.Errorf("unknown Category field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CategoryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CategoryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CategoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Category numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CategoryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CategoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CategoryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Category nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CategoryMutation) ResetField(name string) error {
	switch name {
	case category.FieldHouseholdID:
		m.ResetHouseholdID()
		return nil
	case category.FieldName:
		m.ResetName()
		return nil
	}
	return fmt.Errorf("unknown Category field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CategoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.household != nil {
		edges = append(edges, category.EdgeHousehold)
	}
	if m.transactions != nil {
		edges = append(edges, category.EdgeTransactions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CategoryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case category.EdgeHousehold:
		if id := m.household; id != nil {
			return []ent.Value{*id}
		}
	case category.EdgeTransactions:
		ids := make([]ent.Value, 0, len(m.transactions))
		for id := range m.transactions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CategoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedtransactions != nil {
		edges = append(edges, category.EdgeTransactions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CategoryMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case category.EdgeTransactions:
		ids := make([]ent.Value, 0, len(m.removedtransactions))
		for id := range m.removedtransactions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CategoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedhousehold {
		edges = append(edges, category.EdgeHousehold)
	}
	if m.clearedtransactions {
		edges = append(edges, category.EdgeTransactions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CategoryMutation) EdgeCleared(name string) bool {
	switch name {
	case category.EdgeHousehold:
		return m.clearedhousehold
	case category.EdgeTransactions:
		return m.clearedtransactions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CategoryMutation) ClearEdge(name string) error {
	switch name {
	case category.EdgeHousehold:
		m.ClearHousehold()
		return nil
	}
	return fmt.Errorf("unknown Category unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CategoryMutation) ResetEdge(name string) error {
	switch name {
	case category.EdgeHousehold:
		m.ResetHousehold()
		return nil
	case category.EdgeTransactions:
		m.ResetTransactions()
		return nil
	}
	return fmt.Errorf("unknown Category edge %s", name)
}

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	file_name          *string
	file_size          *int64
	addfile_size       *int64
	mime_type          *string
	document_type      *string
	status             *string
	description        *string
	storage_path       *string
	uploaded_by        *uuid.UUID
	uploaded_at        *time.Time
	processed_at       *time.Time
	failure_reason     *string
	clearedFields      map[string]struct{}
	household          *uuid.UUID
	clearedhousehold   bool
	ocr_results        map[uuid.UUID]struct{}
	removedocr_results map[uuid.UUID]struct{}
	clearedocr_results bool
	done               bool
	oldValue           func(context.Context) (*Document, error)
	predicates         []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id uuid.UUID) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetHouseholdID sets the "household_id" field.
func (m *DocumentMutation) SetHouseholdID(u uuid.UUID) {
	m.household = &u
}

// HouseholdID returns the value of the "household_id" field in the mutation.
func (m *DocumentMutation) HouseholdID() (r uuid.UUID, exists bool) {
	v := m.household
	if v == nil {
		return
	}
	return *v, true
}

// OldHouseholdID returns the old "household_id" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldHouseholdID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHouseholdID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHouseholdID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHouseholdID: %w", err)
	}
	return oldValue.HouseholdID, nil
}

// ResetHouseholdID resets all changes to the "household_id" field.
func (m *DocumentMutation) ResetHouseholdID() {
	m.household = nil
}

// SetFileName sets the "file_name" field.
func (m *DocumentMutation) SetFileName(s string) {
	m.file_name = &s
}

// FileName returns the value of the "file_name" field in the mutation.
func (m *DocumentMutation) FileName() (r string, exists bool) {
	v := m.file_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFileName returns the old "file_name" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFileName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileName: %w", err)
	}
	return oldValue.FileName, nil
}

// ResetFileName resets all changes to the "file_name" field.
func (m *DocumentMutation) ResetFileName() {
	m.file_name = nil
}

// SetFileSize sets the "file_size" field.
func (m *DocumentMutation) SetFileSize(i int64) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *DocumentMutation) FileSize() (r int64, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFileSize(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *DocumentMutation) AddFileSize(i int64) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *DocumentMutation) AddedFileSize() (r int64, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *DocumentMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetMimeType sets the "mime_type" field.
func (m *DocumentMutation) SetMimeType(s string) {
	m.mime_type = &s
}

// MimeType returns the value of the "mime_type" field in the mutation.
func (m *DocumentMutation) MimeType() (r string, exists bool) {
	v := m.mime_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMimeType returns the old "mime_type" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldMimeType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMimeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMimeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMimeType: %w", err)
	}
	return oldValue.MimeType, nil
}

// ResetMimeType resets all changes to the "mime_type" field.
func (m *DocumentMutation) ResetMimeType() {
	m.mime_type = nil
}

// SetDocumentType sets the "document_type" field.
func (m *DocumentMutation) SetDocumentType(s string) {
	m.document_type = &s
}

// DocumentType returns the value of the "document_type" field in the mutation.
func (m *DocumentMutation) DocumentType() (r string, exists bool) {
	v := m.document_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentType returns the old "document_type" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldDocumentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentType: %w", err)
	}
	return oldValue.DocumentType, nil
}

// ResetDocumentType resets all changes to the "document_type" field.
func (m *DocumentMutation) ResetDocumentType() {
	m.document_type = nil
}

// SetStatus sets the "status" field.
func (m *DocumentMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *DocumentMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DocumentMutation) ResetStatus() {
	m.status = nil
}

// SetDescription sets the "description" field.
func (m *DocumentMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *DocumentMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *DocumentMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[document.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *DocumentMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[document.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *DocumentMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, document.FieldDescription)
}

// SetStoragePath sets the "storage_path" field.
func (m *DocumentMutation) SetStoragePath(s string) {
	m.storage_path = &s
}

// StoragePath returns the value of the "storage_path" field in the mutation.
func (m *DocumentMutation) StoragePath() (r string, exists bool) {
	v := m.storage_path
	if v == nil {
		return
	}
	return *v, true
}

// OldStoragePath returns the old "storage_path" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStoragePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoragePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoragePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoragePath: %w", err)
	}
	return oldValue.StoragePath, nil
}

// ResetStoragePath resets all changes to the "storage_path" field.
func (m *DocumentMutation) ResetStoragePath() {
	m.storage_path = nil
}

// SetUploadedBy sets the "uploaded_by" field.
func (m *DocumentMutation) SetUploadedBy(u uuid.UUID) {
	m.uploaded_by = &u
}

// UploadedBy returns the value of the "uploaded_by" field in the mutation.
func (m *DocumentMutation) UploadedBy() (r uuid.UUID, exists bool) {
	v := m.uploaded_by
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedBy returns the old "uploaded_by" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldUploadedBy(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedBy: %w", err)
	}
	return oldValue.UploadedBy, nil
}

// ResetUploadedBy resets all changes to the "uploaded_by" field.
func (m *DocumentMutation) ResetUploadedBy() {
	m.uploaded_by = nil
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *DocumentMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *DocumentMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *DocumentMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// SetProcessedAt sets the "processed_at" field.
func (m *DocumentMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *DocumentMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldProcessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (m *DocumentMutation) ClearProcessedAt() {
	m.processed_at = nil
	m.clearedFields[document.FieldProcessedAt] = struct{}{}
}

// ProcessedAtCleared returns if the "processed_at" field was cleared in this mutation.
func (m *DocumentMutation) ProcessedAtCleared() bool {
	_, ok := m.clearedFields[document.FieldProcessedAt]
	return ok
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *DocumentMutation) ResetProcessedAt() {
	m.processed_at = nil
	delete(m.clearedFields, document.FieldProcessedAt)
}

// SetFailureReason sets the "failure_reason" field.
func (m *DocumentMutation) SetFailureReason(s string) {
	m.failure_reason = &s
}

// FailureReason returns the value of the "failure_reason" field in the mutation.
func (m *DocumentMutation) FailureReason() (r string, exists bool) {
	v := m.failure_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureReason returns the old "failure_reason" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFailureReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureReason: %w", err)
	}
	return oldValue.FailureReason, nil
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (m *DocumentMutation) ClearFailureReason() {
	m.failure_reason = nil
	m.clearedFields[document.FieldFailureReason] = struct{}{}
}

// FailureReasonCleared returns if the "failure_reason" field was cleared in this mutation.
func (m *DocumentMutation) FailureReasonCleared() bool {
	_, ok := m.clearedFields[document.FieldFailureReason]
	return ok
}

// ResetFailureReason resets all changes to the "failure_reason" field.
func (m *DocumentMutation) ResetFailureReason() {
	m.failure_reason = nil
	delete(m.clearedFields, document.FieldFailureReason)
}

// ClearHousehold clears the "household" edge to the Household entity.
func (m *DocumentMutation) ClearHousehold() {
	m.clearedhousehold = true
	m.clearedFields[document.FieldHouseholdID] = struct{}{}
}

// HouseholdCleared reports if the "household" edge to the Household entity was cleared.
func (m *DocumentMutation) HouseholdCleared() bool {
	return m.clearedhousehold
}

// HouseholdIDs returns the "household" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// HouseholdID instead. It exists only for internal usage by the builders.
func (m *DocumentMutation) HouseholdIDs() (ids []uuid.UUID) {
	if id := m.household; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetHousehold resets all changes to the "household" edge.
func (m *DocumentMutation) ResetHousehold() {
	m.household = nil
	m.clearedhousehold = false
}

// AddOcrResultIDs adds the "ocr_results" edge to the OcrResult entity by ids.
func (m *DocumentMutation) AddOcrResultIDs(ids ...uuid.UUID) {
	if m.ocr_results == nil {
		m.ocr_results = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.ocr_results[ids[i]] = struct{}{}
	}
}

// ClearOcrResults clears the "ocr_results" edge to the OcrResult entity.
func (m *DocumentMutation) ClearOcrResults() {
	m.clearedocr_results = true
}

// OcrResultsCleared reports if the "ocr_results" edge to the OcrResult entity was cleared.
func (m *DocumentMutation) OcrResultsCleared() bool {
	return m.clearedocr_results
}

// RemoveOcrResultIDs removes the "ocr_results" edge to the OcrResult entity by IDs.
func (m *DocumentMutation) RemoveOcrResultIDs(ids ...uuid.UUID) {
	if m.removedocr_results == nil {
		m.removedocr_results = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.ocr_results, ids[i])
		m.removedocr_results[ids[i]] = struct{}{}
	}
}

// RemovedOcrResults returns the removed IDs of the "ocr_results" edge to the OcrResult entity.
func (m *DocumentMutation) RemovedOcrResultsIDs() (ids []uuid.UUID) {
	for id := range m.removedocr_results {
		ids = append(ids, id)
	}
	return
}

// OcrResultsIDs returns the "ocr_results" edge IDs in the mutation.
func (m *DocumentMutation) OcrResultsIDs() (ids []uuid.UUID) {
	for id := range m.ocr_results {
		ids = append(ids, id)
	}
	return
}

// ResetOcrResults resets all changes to the "ocr_results" edge.
func (m *DocumentMutation) ResetOcrResults() {
	m.ocr_results = nil
	m.clearedocr_results = false
	m.removedocr_results = nil
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.household != nil {
		fields = append(fields, document.FieldHouseholdID)
	}
	if m.file_name != nil {
		fields = append(fields, document.FieldFileName)
	}
	if m.file_size != nil {
		fields = append(fields, document.FieldFileSize)
	}
	if m.mime_type != nil {
		fields = append(fields, document.FieldMimeType)
	}
	if m.document_type != nil {
		fields = append(fields, document.FieldDocumentType)
	}
	if m.status != nil {
		fields = append(fields, document.FieldStatus)
	}
	if m.description != nil {
		fields = append(fields, document.FieldDescription)
	}
	if m.storage_path != nil {
		fields = append(fields, document.FieldStoragePath)
	}
	if m.uploaded_by != nil {
		fields = append(fields, document.FieldUploadedBy)
	}
	if m.uploaded_at != nil {
		fields = append(fields, document.FieldUploadedAt)
	}
	if m.processed_at != nil {
		fields = append(fields, document.FieldProcessedAt)
	}
	if m.failure_reason != nil {
		fields = append(fields, document.FieldFailureReason)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldHouseholdID:
		return m.HouseholdID()
	case document.FieldFileName:
		return m.FileName()
	case document.FieldFileSize:
		return m.FileSize()
	case document.FieldMimeType:
		return m.MimeType()
	case document.FieldDocumentType:
		return m.DocumentType()
	case document.FieldStatus:
		return m.Status()
	case document.FieldDescription:
		return m.Description()
	case document.FieldStoragePath:
		return m.StoragePath()
	case document.FieldUploadedBy:
		return m.UploadedBy()
	case document.FieldUploadedAt:
		return m.UploadedAt()
	case document.FieldProcessedAt:
		return m.ProcessedAt()
	case document.FieldFailureReason:
		return m.FailureReason()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldHouseholdID:
		return m.OldHouseholdID(ctx)
	case document.FieldFileName:
		return m.OldFileName(ctx)
	case document.FieldFileSize:
		return m.OldFileSize(ctx)
	case document.FieldMimeType:
		return m.OldMimeType(ctx)
	case document.FieldDocumentType:
		return m.OldDocumentType(ctx)
	case document.FieldStatus:
		return m.OldStatus(ctx)
	case document.FieldDescription:
		return m.OldDescription(ctx)
	case document.FieldStoragePath:
		return m.OldStoragePath(ctx)
	case document.FieldUploadedBy:
		return m.OldUploadedBy(ctx)
	case document.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	case document.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	case document.FieldFailureReason:
		return m.OldFailureReason(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldHouseholdID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHouseholdID(v)
		return nil
	case document.FieldFileName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileName(v)
		return nil
	case document.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case document.FieldMimeType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMimeType(v)
		return nil
	case document.FieldDocumentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentType(v)
		return nil
	case document.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case document.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case document.FieldStoragePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoragePath(v)
		return nil
	case document.FieldUploadedBy:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedBy(v)
		return nil
	case document.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	case document.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	case document.FieldFailureReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureReason(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, document.FieldFileSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case document.FieldFileSize:
		return m.AddedFileSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case document.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldDescription) {
		fields = append(fields, document.FieldDescription)
	}
	if m.FieldCleared(document.FieldProcessedAt) {
		fields = append(fields, document.FieldProcessedAt)
	}
	if m.FieldCleared(document.FieldFailureReason) {
		fields = append(fields, document.FieldFailureReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldDescription:
		m.ClearDescription()
		return nil
	case document.FieldProcessedAt:
		m.ClearProcessedAt()
		return nil
	case document.FieldFailureReason:
		m.ClearFailureReason()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldHouseholdID:
		m.ResetHouseholdID()
		return nil
	case document.FieldFileName:
		m.ResetFileName()
		return nil
	case document.FieldFileSize:
		m.ResetFileSize()
		return nil
	case document.FieldMimeType:
		m.ResetMimeType()
		return nil
	case document.FieldDocumentType:
		m.ResetDocumentType()
		return nil
	case document.FieldStatus:
		m.ResetStatus()
		return nil
	case document.FieldDescription:
		m.ResetDescription()
		return nil
	case document.FieldStoragePath:
		m.ResetStoragePath()
		return nil
	case document.FieldUploadedBy:
		m.ResetUploadedBy()
		return nil
	case document.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	case document.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	case document.FieldFailureReason:
		m.ResetFailureReason()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.household != nil {
		edges = append(edges, document.EdgeHousehold)
	}
	if m.ocr_results != nil {
		edges = append(edges, document.EdgeOcrResults)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeHousehold:
		if id := m.household; id != nil {
			return []ent.Value{*id}
		}
	case document.EdgeOcrResults:
		ids := make([]ent.Value, 0, len(m.ocr_results))
		for id := range m.ocr_results {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedocr_results != nil {
		edges = append(edges, document.EdgeOcrResults)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeOcrResults:
		ids := make([]ent.Value, 0, len(m.removedocr_results))
		for id := range m.removedocr_results {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedhousehold {
		edges = append(edges, document.EdgeHousehold)
	}
	if m.clearedocr_results {
		edges = append(edges, document.EdgeOcrResults)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeHousehold:
		return m.clearedhousehold
	case document.EdgeOcrResults:
		return m.clearedocr_results
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	case document.EdgeHousehold:
		m.ClearHousehold()
		return nil
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeHousehold:
		m.ResetHousehold()
		return nil
	case document.EdgeOcrResults:
		m.ResetOcrResults()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// HouseholdMutation represents an operation that mutates the Household nodes in the graph.
type HouseholdMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	name                *string
	default_currency    *string
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	members             map[uuid.UUID]struct{}
	removedmembers      map[uuid.UUID]struct{}
	clearedmembers      bool
	documents           map[uuid.UUID]struct{}
	removeddocuments    map[uuid.UUID]struct{}
	cleareddocuments    bool
	accounts            map[uuid.UUID]struct{}
	removedaccounts     map[uuid.UUID]struct{}
	clearedaccounts     bool
	categories          map[uuid.UUID]struct{}
	removedcategories   map[uuid.UUID]struct{}
	clearedcategories   bool
	transactions        map[uuid.UUID]struct{}
	removedtransactions map[uuid.UUID]struct{}
	clearedtransactions bool
	done                bool
	oldValue            func(context.Context) (*Household, error)
	predicates          []predicate.Household
}

var _ ent.Mutation = (*HouseholdMutation)(nil)

// householdOption allows management of the mutation configuration using functional options.
type householdOption func(*HouseholdMutation)

// newHouseholdMutation creates new mutation for the Household entity.
func newHouseholdMutation(c config, op Op, opts ...householdOption) *HouseholdMutation {
	m := &HouseholdMutation{
		config:        c,
		op:            op,
		typ:           TypeHousehold,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withHouseholdID sets the ID field of the mutation.
func withHouseholdID(id uuid.UUID) householdOption {
	return func(m *HouseholdMutation) {
		var (
			err   error
			once  sync.Once
			value *Household
		)
		m.oldValue = func(ctx context.Context) (*Household, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Household.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withHousehold sets the old Household of the mutation.
func withHousehold(node *Household) householdOption {
	return func(m *HouseholdMutation) {
		m.oldValue = func(context.Context) (*Household, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m HouseholdMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m HouseholdMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Household entities.
func (m *HouseholdMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *HouseholdMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *HouseholdMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Household.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *HouseholdMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *HouseholdMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Household entity.
// If the Household object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HouseholdMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *HouseholdMutation) ResetName() {
	m.name = nil
}

// SetDefaultCurrency sets the "default_currency" field.
func (m *HouseholdMutation) SetDefaultCurrency(s string) {
	m.default_currency = &s
}

// DefaultCurrency returns the value of the "default_currency" field in the mutation.
func (m *HouseholdMutation) DefaultCurrency() (r string, exists bool) {
	v := m.default_currency
	if v == nil {
		return
	}
	return *v, true
}

// OldDefaultCurrency returns the old "default_currency" field's value of the Household entity.
// If the Household object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HouseholdMutation) OldDefaultCurrency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefaultCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefaultCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefaultCurrency: %w", err)
	}
	return oldValue.DefaultCurrency, nil
}

// ResetDefaultCurrency resets all changes to the "default_currency" field.
func (m *HouseholdMutation) ResetDefaultCurrency() {
	m.default_currency = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *HouseholdMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *HouseholdMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Household entity.
// If the Household object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HouseholdMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *HouseholdMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *HouseholdMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *HouseholdMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Household entity.
// If the Household object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HouseholdMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *HouseholdMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddMemberIDs adds the "members" edge to the HouseholdMember entity by ids.
func (m *HouseholdMutation) AddMemberIDs(ids ...uuid.UUID) {
	if m.members == nil {
		m.members = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.members[ids[i]] = struct{}{}
	}
}

// ClearMembers clears the "members" edge to the HouseholdMember entity.
func (m *HouseholdMutation) ClearMembers() {
	m.clearedmembers = true
}

// MembersCleared reports if the "members" edge to the HouseholdMember entity was cleared.
func (m *HouseholdMutation) MembersCleared() bool {
	return m.clearedmembers
}

// RemoveMemberIDs removes the "members" edge to the HouseholdMember entity by IDs.
func (m *HouseholdMutation) RemoveMemberIDs(ids ...uuid.UUID) {
	if m.removedmembers == nil {
		m.removedmembers = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.members, ids[i])
		m.removedmembers[ids[i]] = struct{}{}
	}
}

// RemovedMembers returns the removed IDs of the "members" edge to the HouseholdMember entity.
func (m *HouseholdMutation) RemovedMembersIDs() (ids []uuid.UUID) {
	for id := range m.removedmembers {
		ids = append(ids, id)
	}
	return
}

// MembersIDs returns the "members" edge IDs in the mutation.
func (m *HouseholdMutation) MembersIDs() (ids []uuid.UUID) {
	for id := range m.members {
		ids = append(ids, id)
	}
	return
}

// ResetMembers resets all changes to the "members" edge.
func (m *HouseholdMutation) ResetMembers() {
	m.members = nil
	m.clearedmembers = false
	m.removedmembers = nil
}

// AddDocumentIDs adds the "documents" edge to the Document entity by ids.
func (m *HouseholdMutation) AddDocumentIDs(ids ...uuid.UUID) {
	if m.documents == nil {
		m.documents = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.documents[ids[i]] = struct{}{}
	}
}

// ClearDocuments clears the "documents" edge to the Document entity.
func (m *HouseholdMutation) ClearDocuments() {
	m.cleareddocuments = true
}

// DocumentsCleared reports if the "documents" edge to the Document entity was cleared.
func (m *HouseholdMutation) DocumentsCleared() bool {
	return m.cleareddocuments
}

// RemoveDocumentIDs removes the "documents" edge to the Document entity by IDs.
func (m *HouseholdMutation) RemoveDocumentIDs(ids ...uuid.UUID) {
	if m.removeddocuments == nil {
		m.removeddocuments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.documents, ids[i])
		m.removeddocuments[ids[i]] = struct{}{}
	}
}

// RemovedDocuments returns the removed IDs of the "documents" edge to the Document entity.
func (m *HouseholdMutation) RemovedDocumentsIDs() (ids []uuid.UUID) {
	for id := range m.removeddocuments {
		ids = append(ids, id)
	}
	return
}

// DocumentsIDs returns the "documents" edge IDs in the mutation.
func (m *HouseholdMutation) DocumentsIDs() (ids []uuid.UUID) {
	for id := range m.documents {
		ids = append(ids, id)
	}
	return
}

// ResetDocuments resets all changes to the "documents" edge.
func (m *HouseholdMutation) ResetDocuments() {
	m.documents = nil
	m.cleareddocuments = false
	m.removeddocuments = nil
}

// AddAccountIDs adds the "accounts" edge to the Account entity by ids.
func (m *HouseholdMutation) AddAccountIDs(ids ...uuid.UUID) {
	if m.accounts == nil {
		m.accounts = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.accounts[ids[i]] = struct{}{}
	}
}

// ClearAccounts clears the "accounts" edge to the Account entity.
func (m *HouseholdMutation) ClearAccounts() {
	m.clearedaccounts = true
}

// AccountsCleared reports if the "accounts" edge to the Account entity was cleared.
func (m *HouseholdMutation) AccountsCleared() bool {
	return m.clearedaccounts
}

// RemoveAccountIDs removes the "accounts" edge to the Account entity by IDs.
func (m *HouseholdMutation) RemoveAccountIDs(ids ...uuid.UUID) {
	if m.removedaccounts == nil {
		m.removedaccounts = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.accounts, ids[i])
		m.removedaccounts[ids[i]] = struct{}{}
	}
}

// RemovedAccounts returns the removed IDs of the "accounts" edge to the Account entity.
func (m *HouseholdMutation) RemovedAccountsIDs() (ids []uuid.UUID) {
	for id := range m.removedaccounts {
		ids = append(ids, id)
	}
	return
}

// AccountsIDs returns the "accounts" edge IDs in the mutation.
func (m *HouseholdMutation) AccountsIDs() (ids []uuid.UUID) {
	for id := range m.accounts {
		ids = append(ids, id)
	}
	return
}

// ResetAccounts resets all changes to the "accounts" edge.
func (m *HouseholdMutation) ResetAccounts() {
	m.accounts = nil
	m.clearedaccounts = false
	m.removedaccounts = nil
}

// AddCategoryIDs adds the "categories" edge to the Category entity by ids.
func (m *HouseholdMutation) AddCategoryIDs(ids ...uuid.UUID) {
	if m.categories == nil {
		m.categories = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.categories[ids[i]] = struct{}{}
	}
}

// ClearCategories clears the "categories" edge to the Category entity.
func (m *HouseholdMutation) ClearCategories() {
	m.clearedcategories = true
}

// CategoriesCleared reports if the "categories" edge to the Category entity was cleared.
func (m *HouseholdMutation) CategoriesCleared() bool {
	return m.clearedcategories
}

// RemoveCategoryIDs removes the "categories" edge to the Category entity by IDs.
func (m *HouseholdMutation) RemoveCategoryIDs(ids ...uuid.UUID) {
	if m.removedcategories == nil {
		m.removedcategories = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.categories, ids[i])
		m.removedcategories[ids[i]] = struct{}{}
	}
}

// RemovedCategories returns the removed IDs of the "categories" edge to the Category entity.
func (m *HouseholdMutation) RemovedCategoriesIDs() (ids []uuid.UUID) {
	for id := range m.removedcategories {
		ids = append(ids, id)
	}
	return
}

// CategoriesIDs returns the "categories" edge IDs in the mutation.
func (m *HouseholdMutation) CategoriesIDs() (ids []uuid.UUID) {
	for id := range m.categories {
		ids = append(ids, id)
	}
	return
}

// ResetCategories resets all changes to the "categories" edge.
func (m *HouseholdMutation) ResetCategories() {
	m.categories = nil
	m.clearedcategories = false
	m.removedcategories = nil
}

// AddTransactionIDs adds the "transactions" edge to the Transaction entity by ids.
func (m *HouseholdMutation) AddTransactionIDs(ids ...uuid.UUID) {
	if m.transactions == nil {
		m.transactions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.transactions[ids[i]] = struct{}{}
	}
}

// ClearTransactions clears the "transactions" edge to the Transaction entity.
func (m *HouseholdMutation) ClearTransactions() {
	m.clearedtransactions = true
}

// TransactionsCleared reports if the "transactions" edge to the Transaction entity was cleared.
func (m *HouseholdMutation) TransactionsCleared() bool {
	return m.clearedtransactions
}

// RemoveTransactionIDs removes the "transactions" edge to the Transaction entity by IDs.
func (m *HouseholdMutation) RemoveTransactionIDs(ids ...uuid.UUID) {
	if m.removedtransactions == nil {
		m.removedtransactions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.transactions, ids[i])
		m.removedtransactions[ids[i]] = struct{}{}
	}
}

// RemovedTransactions returns the removed IDs of the "transactions" edge to the Transaction entity.
func (m *HouseholdMutation) RemovedTransactionsIDs() (ids []uuid.UUID) {
	for id := range m.removedtransactions {
		ids = append(ids, id)
	}
	return
}

// TransactionsIDs returns the "transactions" edge IDs in the mutation.
func (m *HouseholdMutation) TransactionsIDs() (ids []uuid.UUID) {
	for id := range m.transactions {
		ids = append(ids, id)
	}
	return
}

// ResetTransactions resets all changes to the "transactions" edge.
func (m *HouseholdMutation) ResetTransactions() {
	m.transactions = nil
	m.clearedtransactions = false
	m.removedtransactions = nil
}

// Where appends a list predicates to the HouseholdMutation builder.
func (m *HouseholdMutation) Where(ps ...predicate.Household) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the HouseholdMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *HouseholdMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Household, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *HouseholdMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *HouseholdMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Household).
func (m *HouseholdMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *HouseholdMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.name != nil {
		fields = append(fields, household.FieldName)
	}
	if m.default_currency != nil {
		fields = append(fields, household.FieldDefaultCurrency)
	}
	if m.created_at != nil {
		fields = append(fields, household.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, household.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *HouseholdMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case household.FieldName:
		return m.Name()
	case household.FieldDefaultCurrency:
		return m.DefaultCurrency()
	case household.FieldCreatedAt:
		return m.CreatedAt()
	case household.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *HouseholdMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case household.FieldName:
		return m.OldName(ctx)
	case household.FieldDefaultCurrency:
		return m.OldDefaultCurrency(ctx)
	case household.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case household.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Household field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HouseholdMutation) SetField(name string, value ent.Value) error {
	switch name {
	case household.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case household.FieldDefaultCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefaultCurrency(v)
		return nil
	case household.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case household.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Household field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *HouseholdMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *HouseholdMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HouseholdMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Household numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *HouseholdMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *HouseholdMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *HouseholdMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Household nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *HouseholdMutation) ResetField(name string) error {
	switch name {
	case household.FieldName:
		m.ResetName()
		return nil
	case household.FieldDefaultCurrency:
		m.ResetDefaultCurrency()
		return nil
	case household.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case household.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Household field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *HouseholdMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.members != nil {
		edges = append(edges, household.EdgeMembers)
	}
	if m.documents != nil {
		edges = append(edges, household.EdgeDocuments)
	}
	if m.accounts != nil {
		edges = append(edges, household.EdgeAccounts)
	}
	if m.categories != nil {
		edges = append(edges, household.EdgeCategories)
	}
	if m.transactions != nil {
		edges = append(edges, household.EdgeTransactions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *HouseholdMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case household.EdgeMembers:
		ids := make([]ent.Value, 0, len(m.members))
		for id := range m.members {
			ids = append(ids, id)
		}
		return ids
	case household.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.documents))
		for id := range m.documents {
			ids = append(ids, id)
		}
		return ids
	case household.EdgeAccounts:
		ids := make([]ent.Value, 0, len(m.accounts))
		for id := range m.accounts {
			ids = append(ids, id)
		}
		return ids
	case household.EdgeCategories:
		ids := make([]ent.Value, 0, len(m.categories))
		for id := range m.categories {
			ids = append(ids, id)
		}
		return ids
	case household.EdgeTransactions:
		ids := make([]ent.Value, 0, len(m.transactions))
		for id := range m.transactions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *HouseholdMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedmembers != nil {
		edges = append(edges, household.EdgeMembers)
	}
	if m.removeddocuments != nil {
		edges = append(edges, household.EdgeDocuments)
	}
	if m.removedaccounts != nil {
		edges = append(edges, household.EdgeAccounts)
	}
	if m.removedcategories != nil {
		edges = append(edges, household.EdgeCategories)
	}
	if m.removedtransactions != nil {
		edges = append(edges, household.EdgeTransactions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *HouseholdMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case household.EdgeMembers:
		ids := make([]ent.Value, 0, len(m.removedmembers))
		for id := range m.removedmembers {
			ids = append(ids, id)
		}
		return ids
	case household.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.removeddocuments))
		for id := range m.removeddocuments {
			ids = append(ids, id)
		}
		return ids
	case household.EdgeAccounts:
		ids := make([]ent.Value, 0, len(m.removedaccounts))
		for id := range m.removedaccounts {
			ids = append(ids, id)
		}
		return ids
	case household.EdgeCategories:
		ids := make([]ent.Value, 0, len(m.removedcategories))
		for id := range m.removedcategories {
			ids = append(ids, id)
		}
		return ids
	case household.EdgeTransactions:
		ids := make([]ent.Value, 0, len(m.removedtransactions))
		for id := range m.removedtransactions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *HouseholdMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedmembers {
		edges = append(edges, household.EdgeMembers)
	}
	if m.cleareddocuments {
		edges = append(edges, household.EdgeDocuments)
	}
	if m.clearedaccounts {
		edges = append(edges, household.EdgeAccounts)
	}
	if m.clearedcategories {
		edges = append(edges, household.EdgeCategories)
	}
	if m.clearedtransactions {
		edges = append(edges, household.EdgeTransactions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *HouseholdMutation) EdgeCleared(name string) bool {
	switch name {
	case household.EdgeMembers:
		return m.clearedmembers
	case household.EdgeDocuments:
		return m.cleareddocuments
	case household.EdgeAccounts:
		return m.clearedaccounts
	case household.EdgeCategories:
		return m.clearedcategories
	case household.EdgeTransactions:
		return m.clearedtransactions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *HouseholdMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Household unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *HouseholdMutation) ResetEdge(name string) error {
	switch name {
	case household.EdgeMembers:
		m.ResetMembers()
		return nil
	case household.EdgeDocuments:
		m.ResetDocuments()
		return nil
	case household.EdgeAccounts:
		m.ResetAccounts()
		return nil
	case household.EdgeCategories:
		m.ResetCategories()
		return nil
	case household.EdgeTransactions:
		m.ResetTransactions()
		return nil
	}
	return fmt.Errorf("unknown Household edge %s", name)
}

// HouseholdMemberMutation represents an operation that mutates the HouseholdMember nodes in the graph.
type HouseholdMemberMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	user_id          *uuid.UUID
	role             *string
	joined_at        *time.Time
	clearedFields    map[string]struct{}
	household        *uuid.UUID
	clearedhousehold bool
	done             bool
	oldValue         func(context.Context) (*HouseholdMember, error)
	predicates       []predicate.HouseholdMember
}

var _ ent.Mutation = (*HouseholdMemberMutation)(nil)

// householdmemberOption allows management of the mutation configuration using functional options.
type householdmemberOption func(*HouseholdMemberMutation)

// newHouseholdMemberMutation creates new mutation for the HouseholdMember entity.
func newHouseholdMemberMutation(c config, op Op, opts ...householdmemberOption) *HouseholdMemberMutation {
	m := &HouseholdMemberMutation{
		config:        c,
		op:            op,
		typ:           TypeHouseholdMember,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withHouseholdMemberID sets the ID field of the mutation.
func withHouseholdMemberID(id uuid.UUID) householdmemberOption {
	return func(m *HouseholdMemberMutation) {
		var (
			err   error
			once  sync.Once
			value *HouseholdMember
		)
		m.oldValue = func(ctx context.Context) (*HouseholdMember, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().HouseholdMember.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withHouseholdMember sets the old HouseholdMember of the mutation.
func withHouseholdMember(node *HouseholdMember) householdmemberOption {
	return func(m *HouseholdMemberMutation) {
		m.oldValue = func(context.Context) (*HouseholdMember, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m HouseholdMemberMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m HouseholdMemberMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of HouseholdMember entities.
func (m *HouseholdMemberMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *HouseholdMemberMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *HouseholdMemberMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().HouseholdMember.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetHouseholdID sets the "household_id" field.
func (m *HouseholdMemberMutation) SetHouseholdID(u uuid.UUID) {
	m.household = &u
}

// HouseholdID returns the value of the "household_id" field in the mutation.
func (m *HouseholdMemberMutation) HouseholdID() (r uuid.UUID, exists bool) {
	v := m.household
	if v == nil {
		return
	}
	return *v, true
}

// OldHouseholdID returns the old "household_id" field's value of the HouseholdMember entity.
// If the HouseholdMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HouseholdMemberMutation) OldHouseholdID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHouseholdID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHouseholdID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHouseholdID: %w", err)
	}
	return oldValue.HouseholdID, nil
}

// ResetHouseholdID resets all changes to the "household_id" field.
func (m *HouseholdMemberMutation) ResetHouseholdID() {
	m.household = nil
}

// SetUserID sets the "user_id" field.
func (m *HouseholdMemberMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *HouseholdMemberMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the HouseholdMember entity.
// If the HouseholdMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HouseholdMemberMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *HouseholdMemberMutation) ResetUserID() {
	m.user_id = nil
}

// SetRole sets the "role" field.
func (m *HouseholdMemberMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *HouseholdMemberMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the HouseholdMember entity.
// If the HouseholdMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HouseholdMemberMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *HouseholdMemberMutation) ResetRole() {
	m.role = nil
}

// SetJoinedAt sets the "joined_at" field.
func (m *HouseholdMemberMutation) SetJoinedAt(t time.Time) {
	m.joined_at = &t
}

// JoinedAt returns the value of the "joined_at" field in the mutation.
func (m *HouseholdMemberMutation) JoinedAt() (r time.Time, exists bool) {
	v := m.joined_at
	if v == nil {
		return
	}
	return *v, true
}

// OldJoinedAt returns the old "joined_at" field's value of the HouseholdMember entity.
// If the HouseholdMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HouseholdMemberMutation) OldJoinedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJoinedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJoinedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJoinedAt: %w", err)
	}
	return oldValue.JoinedAt, nil
}

// ResetJoinedAt resets all changes to the "joined_at" field.
func (m *HouseholdMemberMutation) ResetJoinedAt() {
	m.joined_at = nil
}

// ClearHousehold clears the "household" edge to the Household entity.
func (m *HouseholdMemberMutation) ClearHousehold() {
	m.clearedhousehold = true
	m.clearedFields[householdmember.FieldHouseholdID] = struct{}{}
}

// HouseholdCleared reports if the "household" edge to the Household entity was cleared.
func (m *HouseholdMemberMutation) HouseholdCleared() bool {
	return m.clearedhousehold
}

// HouseholdIDs returns the "household" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// HouseholdID instead. It exists only for internal usage by the builders.
func (m *HouseholdMemberMutation) HouseholdIDs() (ids []uuid.UUID) {
	if id := m.household; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetHousehold resets all changes to the "household" edge.
func (m *HouseholdMemberMutation) ResetHousehold() {
	m.household = nil
	m.clearedhousehold = false
}

// Where appends a list predicates to the HouseholdMemberMutation builder.
func (m *HouseholdMemberMutation) Where(ps ...predicate.HouseholdMember) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the HouseholdMemberMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *HouseholdMemberMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.HouseholdMember, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *HouseholdMemberMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *HouseholdMemberMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (HouseholdMember).
func (m *HouseholdMemberMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *HouseholdMemberMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.household != nil {
		fields = append(fields, householdmember.FieldHouseholdID)
	}
	if m.user_id != nil {
		fields = append(fields, householdmember.FieldUserID)
	}
	if m.role != nil {
		fields = append(fields, householdmember.FieldRole)
	}
	if m.joined_at != nil {
		fields = append(fields, householdmember.FieldJoinedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *HouseholdMemberMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case householdmember.FieldHouseholdID:
		return m.HouseholdID()
	case householdmember.FieldUserID:
		return m.UserID()
	case householdmember.FieldRole:
		return m.Role()
	case householdmember.FieldJoinedAt:
		return m.JoinedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *HouseholdMemberMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case householdmember.FieldHouseholdID:
		return m.OldHouseholdID(ctx)
	case householdmember.FieldUserID:
		return m.OldUserID(ctx)
	case householdmember.FieldRole:
		return m.OldRole(ctx)
	case householdmember.FieldJoinedAt:
		return m.OldJoinedAt(ctx)
	}
	return nil, fmt.Errorf("unknown HouseholdMember field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HouseholdMemberMutation) SetField(name string, value ent.Value) error {
	switch name {
	case householdmember.FieldHouseholdID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHouseholdID(v)
		return nil
	case householdmember.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case householdmember.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case householdmember.FieldJoinedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJoinedAt(v)
		return nil
	}
	return fmt.Errorf("unknown HouseholdMember field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *HouseholdMemberMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *HouseholdMemberMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HouseholdMemberMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown HouseholdMember numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *HouseholdMemberMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *HouseholdMemberMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *HouseholdMemberMutation) ClearField(name string) error {
	return fmt.Errorf("unknown HouseholdMember nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *HouseholdMemberMutation) ResetField(name string) error {
	switch name {
	case householdmember.FieldHouseholdID:
		m.ResetHouseholdID()
		return nil
	case householdmember.FieldUserID:
		m.ResetUserID()
		return nil
	case householdmember.FieldRole:
		m.ResetRole()
		return nil
	case householdmember.FieldJoinedAt:
		m.ResetJoinedAt()
		return nil
	}
	return fmt.Errorf("unknown HouseholdMember field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *HouseholdMemberMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.household != nil {
		edges = append(edges, householdmember.EdgeHousehold)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *HouseholdMemberMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case householdmember.EdgeHousehold:
		if id := m.household; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *HouseholdMemberMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *HouseholdMemberMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *HouseholdMemberMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedhousehold {
		edges = append(edges, householdmember.EdgeHousehold)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *HouseholdMemberMutation) EdgeCleared(name string) bool {
	switch name {
	case householdmember.EdgeHousehold:
		return m.clearedhousehold
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *HouseholdMemberMutation) ClearEdge(name string) error {
	switch name {
	case householdmember.EdgeHousehold:
		m.ClearHousehold()
		return nil
	}
	return fmt.Errorf("unknown HouseholdMember unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *HouseholdMemberMutation) ResetEdge(name string) error {
	switch name {
	case householdmember.EdgeHousehold:
		m.ResetHousehold()
		return nil
	}
	return fmt.Errorf("unknown HouseholdMember edge %s", name)
}

// LedgerEntryMutation represents an operation that mutates the LedgerEntry nodes in the graph.
type LedgerEntryMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	entry_type         *string
	amount             *float64
	addamount          *float64
	currency_code      *string
	created_at         *time.Time
	clearedFields      map[string]struct{}
	transaction        *uuid.UUID
	clearedtransaction bool
	account            *uuid.UUID
	clearedaccount     bool
	done               bool
	oldValue           func(context.Context) (*LedgerEntry, error)
	predicates         []predicate.LedgerEntry
}

var _ ent.Mutation = (*LedgerEntryMutation)(nil)

// ledgerentryOption allows management of the mutation configuration using functional options.
type ledgerentryOption func(*LedgerEntryMutation)

// newLedgerEntryMutation creates new mutation for the LedgerEntry entity.
func newLedgerEntryMutation(c config, op Op, opts ...ledgerentryOption) *LedgerEntryMutation {
	m := &LedgerEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeLedgerEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLedgerEntryID sets the ID field of the mutation.
func withLedgerEntryID(id uuid.UUID) ledgerentryOption {
	return func(m *LedgerEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *LedgerEntry
		)
		m.oldValue = func(ctx context.Context) (*LedgerEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LedgerEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLedgerEntry sets the old LedgerEntry of the mutation.
func withLedgerEntry(node *LedgerEntry) ledgerentryOption {
	return func(m *LedgerEntryMutation) {
		m.oldValue = func(context.Context) (*LedgerEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LedgerEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LedgerEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LedgerEntry entities.
func (m *LedgerEntryMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LedgerEntryMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LedgerEntryMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LedgerEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTransactionID sets the "transaction_id" field.
func (m *LedgerEntryMutation) SetTransactionID(u uuid.UUID) {
	m.transaction = &u
}

// TransactionID returns the value of the "transaction_id" field in the mutation.
func (m *LedgerEntryMutation) TransactionID() (r uuid.UUID, exists bool) {
	v := m.transaction
	if v == nil {
		return
	}
	return *v, true
}

// OldTransactionID returns the old "transaction_id" field's value of the LedgerEntry entity.
// If the LedgerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LedgerEntryMutation) OldTransactionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTransactionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTransactionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTransactionID: %w", err)
	}
	return oldValue.TransactionID, nil
}

// ResetTransactionID resets all changes to the "transaction_id" field.
func (m *LedgerEntryMutation) ResetTransactionID() {
	m.transaction = nil
}

// SetAccountID sets the "account_id" field.
func (m *LedgerEntryMutation) SetAccountID(u uuid.UUID) {
	m.account = &u
}

// AccountID returns the value of the "account_id" field in the mutation.
func (m *LedgerEntryMutation) AccountID() (r uuid.UUID, exists bool) {
	v := m.account
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountID returns the old "account_id" field's value of the LedgerEntry entity.
// If the LedgerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LedgerEntryMutation) OldAccountID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountID: %w", err)
	}
	return oldValue.AccountID, nil
}

// ResetAccountID resets all changes to the "account_id" field.
func (m *LedgerEntryMutation) ResetAccountID() {
	m.account = nil
}

// SetEntryType sets the "entry_type" field.
func (m *LedgerEntryMutation) SetEntryType(s string) {
	m.entry_type = &s
}

// EntryType returns the value of the "entry_type" field in the mutation.
func (m *LedgerEntryMutation) EntryType() (r string, exists bool) {
	v := m.entry_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntryType returns the old "entry_type" field's value of the LedgerEntry entity.
// If the LedgerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LedgerEntryMutation) OldEntryType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntryType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntryType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntryType: %w", err)
	}
	return oldValue.EntryType, nil
}

// ResetEntryType resets all changes to the "entry_type" field.
func (m *LedgerEntryMutation) ResetEntryType() {
	m.entry_type = nil
}

// SetAmount sets the "amount" field.
func (m *LedgerEntryMutation) SetAmount(f float64) {
	m.amount = &f
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *LedgerEntryMutation) Amount() (r float64, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the LedgerEntry entity.
// If the LedgerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LedgerEntryMutation) OldAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds f to the "amount" field.
func (m *LedgerEntryMutation) AddAmount(f float64) {
	if m.addamount != nil {
		*m.addamount += f
	} else {
		m.addamount = &f
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *LedgerEntryMutation) AddedAmount() (r float64, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmount resets all changes to the "amount" field.
func (m *LedgerEntryMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
}

// SetCurrencyCode sets the "currency_code" field.
func (m *LedgerEntryMutation) SetCurrencyCode(s string) {
	m.currency_code = &s
}

// CurrencyCode returns the value of the "currency_code" field in the mutation.
func (m *LedgerEntryMutation) CurrencyCode() (r string, exists bool) {
	v := m.currency_code
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrencyCode returns the old "currency_code" field's value of the LedgerEntry entity.
// If the LedgerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LedgerEntryMutation) OldCurrencyCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrencyCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrencyCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrencyCode: %w", err)
	}
	return oldValue.CurrencyCode, nil
}

// ResetCurrencyCode resets all changes to the "currency_code" field.
func (m *LedgerEntryMutation) ResetCurrencyCode() {
	m.currency_code = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *LedgerEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LedgerEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LedgerEntry entity.
// If the LedgerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LedgerEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LedgerEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTransaction clears the "transaction" edge to the Transaction entity.
func (m *LedgerEntryMutation) ClearTransaction() {
	m.clearedtransaction = true
	m.clearedFields[ledgerentry.FieldTransactionID] = struct{}{}
}

// TransactionCleared reports if the "transaction" edge to the Transaction entity was cleared.
func (m *LedgerEntryMutation) TransactionCleared() bool {
	return m.clearedtransaction
}

// TransactionIDs returns the "transaction" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TransactionID instead. It exists only for internal usage by the builders.
func (m *LedgerEntryMutation) TransactionIDs() (ids []uuid.UUID) {
	if id := m.transaction; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTransaction resets all changes to the "transaction" edge.
func (m *LedgerEntryMutation) ResetTransaction() {
	m.transaction = nil
	m.clearedtransaction = false
}

// ClearAccount clears the "account" edge to the Account entity.
func (m *LedgerEntryMutation) ClearAccount() {
	m.clearedaccount = true
	m.clearedFields[ledgerentry.FieldAccountID] = struct{}{}
}

// AccountCleared reports if the "account" edge to the Account entity was cleared.
func (m *LedgerEntryMutation) AccountCleared() bool {
	return m.clearedaccount
}

// AccountIDs returns the "account" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AccountID instead. It exists only for internal usage by the builders.
func (m *LedgerEntryMutation) AccountIDs() (ids []uuid.UUID) {
	if id := m.account; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAccount resets all changes to the "account" edge.
func (m *LedgerEntryMutation) ResetAccount() {
	m.account = nil
	m.clearedaccount = false
}

// Where appends a list predicates to the LedgerEntryMutation builder.
func (m *LedgerEntryMutation) Where(ps ...predicate.LedgerEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LedgerEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LedgerEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LedgerEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LedgerEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LedgerEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LedgerEntry).
func (m *LedgerEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LedgerEntryMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.transaction != nil {
		fields = append(fields, ledgerentry.FieldTransactionID)
	}
	if m.account != nil {
		fields = append(fields, ledgerentry.FieldAccountID)
	}
	if m.entry_type != nil {
		fields = append(fields, ledgerentry.FieldEntryType)
	}
	if m.amount != nil {
		fields = append(fields, ledgerentry.FieldAmount)
	}
	if m.currency_code != nil {
		fields = append(fields, ledgerentry.FieldCurrencyCode)
	}
	if m.created_at != nil {
		fields = append(fields, ledgerentry.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LedgerEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ledgerentry.FieldTransactionID:
		return m.TransactionID()
	case ledgerentry.FieldAccountID:
		return m.AccountID()
	case ledgerentry.FieldEntryType:
		return m.EntryType()
	case ledgerentry.FieldAmount:
		return m.Amount()
	case ledgerentry.FieldCurrencyCode:
		return m.CurrencyCode()
	case ledgerentry.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LedgerEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ledgerentry.FieldTransactionID:
		return m.OldTransactionID(ctx)
	case ledgerentry.FieldAccountID:
		return m.OldAccountID(ctx)
	case ledgerentry.FieldEntryType:
		return m.OldEntryType(ctx)
	case ledgerentry.FieldAmount:
		return m.OldAmount(ctx)
	case ledgerentry.FieldCurrencyCode:
		return m.OldCurrencyCode(ctx)
	case ledgerentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LedgerEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LedgerEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ledgerentry.FieldTransactionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTransactionID(v)
		return nil
	case ledgerentry.FieldAccountID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountID(v)
		return nil
	case ledgerentry.FieldEntryType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntryType(v)
		return nil
	case ledgerentry.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case ledgerentry.FieldCurrencyCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrencyCode(v)
		return nil
	case ledgerentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LedgerEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LedgerEntryMutation) AddedFields() []string {
	var fields []string
	if m.addamount != nil {
		fields = append(fields, ledgerentry.FieldAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LedgerEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case ledgerentry.FieldAmount:
		return m.AddedAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LedgerEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case ledgerentry.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	}
	return fmt.Errorf("unknown LedgerEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LedgerEntryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LedgerEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LedgerEntryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LedgerEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LedgerEntryMutation) ResetField(name string) error {
	switch name {
	case ledgerentry.FieldTransactionID:
		m.ResetTransactionID()
		return nil
	case ledgerentry.FieldAccountID:
		m.ResetAccountID()
		return nil
	case ledgerentry.FieldEntryType:
		m.ResetEntryType()
		return nil
	case ledgerentry.FieldAmount:
		m.ResetAmount()
		return nil
	case ledgerentry.FieldCurrencyCode:
		m.ResetCurrencyCode()
		return nil
	case ledgerentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown LedgerEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LedgerEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.transaction != nil {
		edges = append(edges, ledgerentry.EdgeTransaction)
	}
	if m.account != nil {
		edges = append(edges, ledgerentry.EdgeAccount)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LedgerEntryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case ledgerentry.EdgeTransaction:
		if id := m.transaction; id != nil {
			return []ent.Value{*id}
		}
	case ledgerentry.EdgeAccount:
		if id := m.account; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LedgerEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LedgerEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LedgerEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedtransaction {
		edges = append(edges, ledgerentry.EdgeTransaction)
	}
	if m.clearedaccount {
		edges = append(edges, ledgerentry.EdgeAccount)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LedgerEntryMutation) EdgeCleared(name string) bool {
	switch name {
	case ledgerentry.EdgeTransaction:
		return m.clearedtransaction
	case ledgerentry.EdgeAccount:
		return m.clearedaccount
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LedgerEntryMutation) ClearEdge(name string) error {
	switch name {
	case ledgerentry.EdgeTransaction:
		m.ClearTransaction()
		return nil
	case ledgerentry.EdgeAccount:
		m.ClearAccount()
		return nil
	}
	return fmt.Errorf("unknown LedgerEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LedgerEntryMutation) ResetEdge(name string) error {
	switch name {
	case ledgerentry.EdgeTransaction:
		m.ResetTransaction()
		return nil
	case ledgerentry.EdgeAccount:
		m.ResetAccount()
		return nil
	}
	return fmt.Errorf("unknown LedgerEntry edge %s", name)
}

// OcrResultMutation represents an operation that mutates the OcrResult nodes in the graph.
type OcrResultMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	document_type        *string
	confidence           *float32
	addconfidence        *float32
	raw_text             *string
	extracted_json       *json.RawMessage
	appendextracted_json json.RawMessage
	engine_name          *string
	format               *string
	page_count           *int
	addpage_count        *int
	duration_ms          *int64
	addduration_ms       *int64
	created_at           *time.Time
	clearedFields        map[string]struct{}
	document             *uuid.UUID
	cleareddocument      bool
	suggestions          map[uuid.UUID]struct{}
	removedsuggestions   map[uuid.UUID]struct{}
	clearedsuggestions   bool
	done                 bool
	oldValue             func(context.Context) (*OcrResult, error)
	predicates           []predicate.OcrResult
}

var _ ent.Mutation = (*OcrResultMutation)(nil)

// ocrresultOption allows management of the mutation configuration using functional options.
type ocrresultOption func(*OcrResultMutation)

// newOcrResultMutation creates new mutation for the OcrResult entity.
func newOcrResultMutation(c config, op Op, opts ...ocrresultOption) *OcrResultMutation {
	m := &OcrResultMutation{
		config:        c,
		op:            op,
		typ:           TypeOcrResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOcrResultID sets the ID field of the mutation.
func withOcrResultID(id uuid.UUID) ocrresultOption {
	return func(m *OcrResultMutation) {
		var (
			err   error
			once  sync.Once
			value *OcrResult
		)
		m.oldValue = func(ctx context.Context) (*OcrResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OcrResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOcrResult sets the old OcrResult of the mutation.
func withOcrResult(node *OcrResult) ocrresultOption {
	return func(m *OcrResultMutation) {
		m.oldValue = func(context.Context) (*OcrResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OcrResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OcrResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of OcrResult entities.
func (m *OcrResultMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OcrResultMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OcrResultMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OcrResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *OcrResultMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *OcrResultMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the OcrResult entity.
// If the OcrResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OcrResultMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *OcrResultMutation) ResetDocumentID() {
	m.document = nil
}

// SetDocumentType sets the "document_type" field.
func (m *OcrResultMutation) SetDocumentType(s string) {
	m.document_type = &s
}

// DocumentType returns the value of the "document_type" field in the mutation.
func (m *OcrResultMutation) DocumentType() (r string, exists bool) {
	v := m.document_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentType returns the old "document_type" field's value of the OcrResult entity.
// If the OcrResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OcrResultMutation) OldDocumentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentType: %w", err)
	}
	return oldValue.DocumentType, nil
}

// ResetDocumentType resets all changes to the "document_type" field.
func (m *OcrResultMutation) ResetDocumentType() {
	m.document_type = nil
}

// SetConfidence sets the "confidence" field.
func (m *OcrResultMutation) SetConfidence(f float32) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *OcrResultMutation) Confidence() (r float32, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the OcrResult entity.
// If the OcrResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OcrResultMutation) OldConfidence(ctx context.Context) (v float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *OcrResultMutation) AddConfidence(f float32) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *OcrResultMutation) AddedConfidence() (r float32, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *OcrResultMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetRawText sets the "raw_text" field.
func (m *OcrResultMutation) SetRawText(s string) {
	m.raw_text = &s
}

// RawText returns the value of the "raw_text" field in the mutation.
func (m *OcrResultMutation) RawText() (r string, exists bool) {
	v := m.raw_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRawText returns the old "raw_text" field's value of the OcrResult entity.
// If the OcrResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OcrResultMutation) OldRawText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawText: %w", err)
	}
	return oldValue.RawText, nil
}

// ResetRawText resets all changes to the "raw_text" field.
func (m *OcrResultMutation) ResetRawText() {
	m.raw_text = nil
}

// SetExtractedJSON sets the "extracted_json" field.
func (m *OcrResultMutation) SetExtractedJSON(jm json.RawMessage) {
	m.extracted_json = &jm
	m.appendextracted_json = nil
}

// ExtractedJSON returns the value of the "extracted_json" field in the mutation.
func (m *OcrResultMutation) ExtractedJSON() (r json.RawMessage, exists bool) {
	v := m.extracted_json
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedJSON returns the old "extracted_json" field's value of the OcrResult entity.
// If the OcrResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OcrResultMutation) OldExtractedJSON(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedJSON: %w", err)
	}
	return oldValue.ExtractedJSON, nil
}

// AppendExtractedJSON adds jm to the "extracted_json" field.
func (m *OcrResultMutation) AppendExtractedJSON(jm json.RawMessage) {
	m.appendextracted_json = append(m.appendextracted_json, jm...)
}

// AppendedExtractedJSON returns the list of values that were appended to the "extracted_json" field in this mutation.
func (m *OcrResultMutation) AppendedExtractedJSON() (json.RawMessage, bool) {
	if len(m.appendextracted_json) == 0 {
		return nil, false
	}
	return m.appendextracted_json, true
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (m *OcrResultMutation) ClearExtractedJSON() {
	m.extracted_json = nil
	m.appendextracted_json = nil
	m.clearedFields[ocrresult.FieldExtractedJSON] = struct{}{}
}

// ExtractedJSONCleared returns if the "extracted_json" field was cleared in this mutation.
func (m *OcrResultMutation) ExtractedJSONCleared() bool {
	_, ok := m.clearedFields[ocrresult.FieldExtractedJSON]
	return ok
}

// ResetExtractedJSON resets all changes to the "extracted_json" field.
func (m *OcrResultMutation) ResetExtractedJSON() {
	m.extracted_json = nil
	m.appendextracted_json = nil
	delete(m.clearedFields, ocrresult.FieldExtractedJSON)
}

// SetEngineName sets the "engine_name" field.
func (m *OcrResultMutation) SetEngineName(s string) {
	m.engine_name = &s
}

// EngineName returns the value of the "engine_name" field in the mutation.
func (m *OcrResultMutation) EngineName() (r string, exists bool) {
	v := m.engine_name
	if v == nil {
		return
	}
	return *v, true
}

// OldEngineName returns the old "engine_name" field's value of the OcrResult entity.
// If the OcrResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OcrResultMutation) OldEngineName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngineName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngineName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngineName: %w", err)
	}
	return oldValue.EngineName, nil
}

// ResetEngineName resets all changes to the "engine_name" field.
func (m *OcrResultMutation) ResetEngineName() {
	m.engine_name = nil
}

// SetFormat sets the "format" field.
func (m *OcrResultMutation) SetFormat(s string) {
	m.format = &s
}

// Format returns the value of the "format" field in the mutation.
func (m *OcrResultMutation) Format() (r string, exists bool) {
	v := m.format
	if v == nil {
		return
	}
	return *v, true
}

// OldFormat returns the old "format" field's value of the OcrResult entity.
// If the OcrResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OcrResultMutation) OldFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormat: %w", err)
	}
	return oldValue.Format, nil
}

// ClearFormat clears the value of the "format" field.
func (m *OcrResultMutation) ClearFormat() {
	m.format = nil
	m.clearedFields[ocrresult.FieldFormat] = struct{}{}
}

// FormatCleared returns if the "format" field was cleared in this mutation.
func (m *OcrResultMutation) FormatCleared() bool {
	_, ok := m.clearedFields[ocrresult.FieldFormat]
	return ok
}

// ResetFormat resets all changes to the "format" field.
func (m *OcrResultMutation) ResetFormat() {
	m.format = nil
	delete(m.clearedFields, ocrresult.FieldFormat)
}

// SetPageCount sets the "page_count" field.
func (m *OcrResultMutation) SetPageCount(i int) {
	m.page_count = &i
	m.addpage_count = nil
}

// PageCount returns the value of the "page_count" field in the mutation.
func (m *OcrResultMutation) PageCount() (r int, exists bool) {
	v := m.page_count
	if v == nil {
		return
	}
	return *v, true
}

// OldPageCount returns the old "page_count" field's value of the OcrResult entity.
// If the OcrResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OcrResultMutation) OldPageCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageCount: %w", err)
	}
	return oldValue.PageCount, nil
}

// AddPageCount adds i to the "page_count" field.
func (m *OcrResultMutation) AddPageCount(i int) {
	if m.addpage_count != nil {
		*m.addpage_count += i
	} else {
		m.addpage_count = &i
	}
}

// AddedPageCount returns the value that was added to the "page_count" field in this mutation.
func (m *OcrResultMutation) AddedPageCount() (r int, exists bool) {
	v := m.addpage_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetPageCount resets all changes to the "page_count" field.
func (m *OcrResultMutation) ResetPageCount() {
	m.page_count = nil
	m.addpage_count = nil
}

// SetDurationMs sets the "duration_ms" field.
func (m *OcrResultMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *OcrResultMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the OcrResult entity.
// If the OcrResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OcrResultMutation) OldDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *OcrResultMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *OcrResultMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *OcrResultMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *OcrResultMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OcrResultMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the OcrResult entity.
// If the OcrResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OcrResultMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OcrResultMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *OcrResultMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[ocrresult.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *OcrResultMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *OcrResultMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *OcrResultMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// AddSuggestionIDs adds the "suggestions" edge to the Suggestion entity by ids.
func (m *OcrResultMutation) AddSuggestionIDs(ids ...uuid.UUID) {
	if m.suggestions == nil {
		m.suggestions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.suggestions[ids[i]] = struct{}{}
	}
}

// ClearSuggestions clears the "suggestions" edge to the Suggestion entity.
func (m *OcrResultMutation) ClearSuggestions() {
	m.clearedsuggestions = true
}

// SuggestionsCleared reports if the "suggestions" edge to the Suggestion entity was cleared.
func (m *OcrResultMutation) SuggestionsCleared() bool {
	return m.clearedsuggestions
}

// RemoveSuggestionIDs removes the "suggestions" edge to the Suggestion entity by IDs.
func (m *OcrResultMutation) RemoveSuggestionIDs(ids ...uuid.UUID) {
	if m.removedsuggestions == nil {
		m.removedsuggestions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.suggestions, ids[i])
		m.removedsuggestions[ids[i]] = struct{}{}
	}
}

// RemovedSuggestions returns the removed IDs of the "suggestions" edge to the Suggestion entity.
func (m *OcrResultMutation) RemovedSuggestionsIDs() (ids []uuid.UUID) {
	for id := range m.removedsuggestions {
		ids = append(ids, id)
	}
	return
}

// SuggestionsIDs returns the "suggestions" edge IDs in the mutation.
func (m *OcrResultMutation) SuggestionsIDs() (ids []uuid.UUID) {
	for id := range m.suggestions {
		ids = append(ids, id)
	}
	return
}

// ResetSuggestions resets all changes to the "suggestions" edge.
func (m *OcrResultMutation) ResetSuggestions() {
	m.suggestions = nil
	m.clearedsuggestions = false
	m.removedsuggestions = nil
}

// Where appends a list predicates to the OcrResultMutation builder.
func (m *OcrResultMutation) Where(ps ...predicate.OcrResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OcrResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OcrResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OcrResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OcrResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OcrResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OcrResult).
func (m *OcrResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OcrResultMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.document != nil {
		fields = append(fields, ocrresult.FieldDocumentID)
	}
	if m.document_type != nil {
		fields = append(fields, ocrresult.FieldDocumentType)
	}
	if m.confidence != nil {
		fields = append(fields, ocrresult.FieldConfidence)
	}
	if m.raw_text != nil {
		fields = append(fields, ocrresult.FieldRawText)
	}
	if m.extracted_json != nil {
		fields = append(fields, ocrresult.FieldExtractedJSON)
	}
	if m.engine_name != nil {
		fields = append(fields, ocrresult.FieldEngineName)
	}
	if m.format != nil {
		fields = append(fields, ocrresult.FieldFormat)
	}
	if m.page_count != nil {
		fields = append(fields, ocrresult.FieldPageCount)
	}
	if m.duration_ms != nil {
		fields = append(fields, ocrresult.FieldDurationMs)
	}
	if m.created_at != nil {
		fields = append(fields, ocrresult.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OcrResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ocrresult.FieldDocumentID:
		return m.DocumentID()
	case ocrresult.FieldDocumentType:
		return m.DocumentType()
	case ocrresult.FieldConfidence:
		return m.Confidence()
	case ocrresult.FieldRawText:
		return m.RawText()
	case ocrresult.FieldExtractedJSON:
		return m.ExtractedJSON()
	case ocrresult.FieldEngineName:
		return m.EngineName()
	case ocrresult.FieldFormat:
		return m.Format()
	case ocrresult.FieldPageCount:
		return m.PageCount()
	case ocrresult.FieldDurationMs:
		return m.DurationMs()
	case ocrresult.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OcrResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ocrresult.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case ocrresult.FieldDocumentType:
		return m.OldDocumentType(ctx)
	case ocrresult.FieldConfidence:
		return m.OldConfidence(ctx)
	case ocrresult.FieldRawText:
		return m.OldRawText(ctx)
	case ocrresult.FieldExtractedJSON:
		return m.OldExtractedJSON(ctx)
	case ocrresult.FieldEngineName:
		return m.OldEngineName(ctx)
	case ocrresult.FieldFormat:
		return m.OldFormat(ctx)
	case ocrresult.FieldPageCount:
		return m.OldPageCount(ctx)
	case ocrresult.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case ocrresult.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown OcrResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OcrResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ocrresult.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case ocrresult.FieldDocumentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentType(v)
		return nil
	case ocrresult.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case ocrresult.FieldRawText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawText(v)
		return nil
	case ocrresult.FieldExtractedJSON:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedJSON(v)
		return nil
	case ocrresult.FieldEngineName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngineName(v)
		return nil
	case ocrresult.FieldFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormat(v)
		return nil
	case ocrresult.FieldPageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageCount(v)
		return nil
	case ocrresult.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case ocrresult.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown OcrResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OcrResultMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, ocrresult.FieldConfidence)
	}
	if m.addpage_count != nil {
		fields = append(fields, ocrresult.FieldPageCount)
	}
	if m.addduration_ms != nil {
		fields = append(fields, ocrresult.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OcrResultMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case ocrresult.FieldConfidence:
		return m.AddedConfidence()
	case ocrresult.FieldPageCount:
		return m.AddedPageCount()
	case ocrresult.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OcrResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	case ocrresult.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case ocrresult.FieldPageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPageCount(v)
		return nil
	case ocrresult.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown OcrResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OcrResultMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(ocrresult.FieldExtractedJSON) {
		fields = append(fields, ocrresult.FieldExtractedJSON)
	}
	if m.FieldCleared(ocrresult.FieldFormat) {
		fields = append(fields, ocrresult.FieldFormat)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OcrResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OcrResultMutation) ClearField(name string) error {
	switch name {
	case ocrresult.FieldExtractedJSON:
		m.ClearExtractedJSON()
		return nil
	case ocrresult.FieldFormat:
		m.ClearFormat()
		return nil
	}
	return fmt.Errorf("unknown OcrResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OcrResultMutation) ResetField(name string) error {
	switch name {
	case ocrresult.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case ocrresult.FieldDocumentType:
		m.ResetDocumentType()
		return nil
	case ocrresult.FieldConfidence:
		m.ResetConfidence()
		return nil
	case ocrresult.FieldRawText:
		m.ResetRawText()
		return nil
	case ocrresult.FieldExtractedJSON:
		m.ResetExtractedJSON()
		return nil
	case ocrresult.FieldEngineName:
		m.ResetEngineName()
		return nil
	case ocrresult.FieldFormat:
		m.ResetFormat()
		return nil
	case ocrresult.FieldPageCount:
		m.ResetPageCount()
		return nil
	case ocrresult.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case ocrresult.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown OcrResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OcrResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.document != nil {
		edges = append(edges, ocrresult.EdgeDocument)
	}
	if m.suggestions != nil {
		edges = append(edges, ocrresult.EdgeSuggestions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OcrResultMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case ocrresult.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	case ocrresult.EdgeSuggestions:
		ids := make([]ent.Value, 0, len(m.suggestions))
		for id := range m.suggestions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OcrResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedsuggestions != nil {
		edges = append(edges, ocrresult.EdgeSuggestions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OcrResultMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case ocrresult.EdgeSuggestions:
		ids := make([]ent.Value, 0, len(m.removedsuggestions))
		for id := range m.removedsuggestions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OcrResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddocument {
		edges = append(edges, ocrresult.EdgeDocument)
	}
	if m.clearedsuggestions {
		edges = append(edges, ocrresult.EdgeSuggestions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OcrResultMutation) EdgeCleared(name string) bool {
	switch name {
	case ocrresult.EdgeDocument:
		return m.cleareddocument
	case ocrresult.EdgeSuggestions:
		return m.clearedsuggestions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OcrResultMutation) ClearEdge(name string) error {
	switch name {
	case ocrresult.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown OcrResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OcrResultMutation) ResetEdge(name string) error {
	switch name {
	case ocrresult.EdgeDocument:
		m.ResetDocument()
		return nil
	case ocrresult.EdgeSuggestions:
		m.ResetSuggestions()
		return nil
	}
	return fmt.Errorf("unknown OcrResult edge %s", name)
}

// SuggestionMutation represents an operation that mutates the Suggestion nodes in the graph.
type SuggestionMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	document_id        *uuid.UUID
	description        *string
	amount             *float64
	addamount          *float64
	currency_code      *string
	tx_date            *time.Time
	merchant           *string
	category_id        *uuid.UUID
	category_name      *string
	confidence         *float32
	addconfidence      *float32
	source_type        *string
	line_item_index    *int
	addline_item_index *int
	original_text      *string
	approved           *bool
	approved_at        *time.Time
	transaction_id     *uuid.UUID
	created_at         *time.Time
	clearedFields      map[string]struct{}
	ocr_result         *uuid.UUID
	clearedocr_result  bool
	done               bool
	oldValue           func(context.Context) (*Suggestion, error)
	predicates         []predicate.Suggestion
}

var _ ent.Mutation = (*SuggestionMutation)(nil)

// suggestionOption allows management of the mutation configuration using functional options.
type suggestionOption func(*SuggestionMutation)

// newSuggestionMutation creates new mutation for the Suggestion entity.
func newSuggestionMutation(c config, op Op, opts ...suggestionOption) *SuggestionMutation {
	m := &SuggestionMutation{
		config:        c,
		op:            op,
		typ:           TypeSuggestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSuggestionID sets the ID field of the mutation.
func withSuggestionID(id uuid.UUID) suggestionOption {
	return func(m *SuggestionMutation) {
		var (
			err   error
			once  sync.Once
			value *Suggestion
		)
		m.oldValue = func(ctx context.Context) (*Suggestion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Suggestion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSuggestion sets the old Suggestion of the mutation.
func withSuggestion(node *Suggestion) suggestionOption {
	return func(m *SuggestionMutation) {
		m.oldValue = func(context.Context) (*Suggestion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SuggestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SuggestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Suggestion entities.
func (m *SuggestionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SuggestionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SuggestionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Suggestion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOcrResultID sets the "ocr_result_id" field.
func (m *SuggestionMutation) SetOcrResultID(u uuid.UUID) {
	m.ocr_result = &u
}

// OcrResultID returns the value of the "ocr_result_id" field in the mutation.
func (m *SuggestionMutation) OcrResultID() (r uuid.UUID, exists bool) {
	v := m.ocr_result
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrResultID returns the old "ocr_result_id" field's value of the Suggestion entity.
// If the Suggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionMutation) OldOcrResultID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrResultID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrResultID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrResultID: %w", err)
	}
	return oldValue.OcrResultID, nil
}

// ResetOcrResultID resets all changes to the "ocr_result_id" field.
func (m *SuggestionMutation) ResetOcrResultID() {
	m.ocr_result = nil
}

// SetDocumentID sets the "document_id" field.
func (m *SuggestionMutation) SetDocumentID(u uuid.UUID) {
	m.document_id = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *SuggestionMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the Suggestion entity.
// If the Suggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *SuggestionMutation) ResetDocumentID() {
	m.document_id = nil
}

// SetDescription sets the "description" field.
func (m *SuggestionMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *SuggestionMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Suggestion entity.
// If the Suggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *SuggestionMutation) ResetDescription() {
	m.description = nil
}

// SetAmount sets the "amount" field.
func (m *SuggestionMutation) SetAmount(f float64) {
	m.amount = &f
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *SuggestionMutation) Amount() (r float64, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the Suggestion entity.
// If the Suggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionMutation) OldAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds f to the "amount" field.
func (m *SuggestionMutation) AddAmount(f float64) {
	if m.addamount != nil {
		*m.addamount += f
	} else {
		m.addamount = &f
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *SuggestionMutation) AddedAmount() (r float64, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmount resets all changes to the "amount" field.
func (m *SuggestionMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
}

// SetCurrencyCode sets the "currency_code" field.
func (m *SuggestionMutation) SetCurrencyCode(s string) {
	m.currency_code = &s
}

// CurrencyCode returns the value of the "currency_code" field in the mutation.
func (m *SuggestionMutation) CurrencyCode() (r string, exists bool) {
	v := m.currency_code
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrencyCode returns the old "currency_code" field's value of the Suggestion entity.
// If the Suggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionMutation) OldCurrencyCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrencyCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrencyCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrencyCode: %w", err)
	}
	return oldValue.CurrencyCode, nil
}

// ResetCurrencyCode resets all changes to the "currency_code" field.
func (m *SuggestionMutation) ResetCurrencyCode() {
	m.currency_code = nil
}

// SetTxDate sets the "tx_date" field.
func (m *SuggestionMutation) SetTxDate(t time.Time) {
	m.tx_date = &t
}

// TxDate returns the value of the "tx_date" field in the mutation.
func (m *SuggestionMutation) TxDate() (r time.Time, exists bool) {
	v := m.tx_date
	if v == nil {
		return
	}
	return *v, true
}

// OldTxDate returns the old "tx_date" field's value of the Suggestion entity.
// If the Suggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionMutation) OldTxDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTxDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTxDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTxDate: %w", err)
	}
	return oldValue.TxDate, nil
}

// ResetTxDate resets all changes to the "tx_date" field.
func (m *SuggestionMutation) ResetTxDate() {
	m.tx_date = nil
}

// SetMerchant sets the "merchant" field.
func (m *SuggestionMutation) SetMerchant(s string) {
	m.merchant = &s
}

// Merchant returns the value of the "merchant" field in the mutation.
func (m *SuggestionMutation) Merchant() (r string, exists bool) {
	v := m.merchant
	if v == nil {
		return
	}
	return *v, true
}

// OldMerchant returns the old "merchant" field's value of the Suggestion entity.
// If the Suggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionMutation) OldMerchant(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMerchant is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMerchant requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMerchant: %w", err)
	}
	return oldValue.Merchant, nil
}

// ClearMerchant clears the value of the "merchant" field.
func (m *SuggestionMutation) ClearMerchant() {
	m.merchant = nil
	m.clearedFields[suggestion.FieldMerchant] = struct{}{}
}

// MerchantCleared returns if the "merchant" field was cleared in this mutation.
func (m *SuggestionMutation) MerchantCleared() bool {
	_, ok := m.clearedFields[suggestion.FieldMerchant]
	return ok
}

// ResetMerchant resets all changes to the "merchant" field.
func (m *SuggestionMutation) ResetMerchant() {
	m.merchant = nil
	delete(m.clearedFields, suggestion.FieldMerchant)
}

// SetCategoryID sets the "category_id" field.
func (m *SuggestionMutation) SetCategoryID(u uuid.UUID) {
	m.category_id = &u
}

// CategoryID returns the value of the "category_id" field in the mutation.
func (m *SuggestionMutation) CategoryID() (r uuid.UUID, exists bool) {
	v := m.category_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCategoryID returns the old "category_id" field's value of the Suggestion entity.
// If the Suggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionMutation) OldCategoryID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategoryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategoryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategoryID: %w", err)
	}
	return oldValue.CategoryID, nil
}

// ClearCategoryID clears the value of the "category_id" field.
func (m *SuggestionMutation) ClearCategoryID() {
	m.category_id = nil
	m.clearedFields[suggestion.FieldCategoryID] = struct{}{}
}

// CategoryIDCleared returns if the "category_id" field was cleared in this mutation.
func (m *SuggestionMutation) CategoryIDCleared() bool {
	_, ok := m.clearedFields[suggestion.FieldCategoryID]
	return ok
}

// ResetCategoryID resets all changes to the "category_id" field.
func (m *SuggestionMutation) ResetCategoryID() {
	m.category_id = nil
	delete(m.clearedFields, suggestion.FieldCategoryID)
}

// SetCategoryName sets the "category_name" field.
func (m *SuggestionMutation) SetCategoryName(s string) {
	m.category_name = &s
}

// CategoryName returns the value of the "category_name" field in the mutation.
func (m *SuggestionMutation) CategoryName() (r string, exists bool) {
	v := m.category_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCategoryName returns the old "category_name" field's value of the Suggestion entity.
// If the Suggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionMutation) OldCategoryName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategoryName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategoryName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategoryName: %w", err)
	}
	return oldValue.CategoryName, nil
}

// ClearCategoryName clears the value of the "category_name" field.
func (m *SuggestionMutation) ClearCategoryName() {
	m.category_name = nil
	m.clearedFields[suggestion.FieldCategoryName] = struct{}{}
}

// CategoryNameCleared returns if the "category_name" field was cleared in this mutation.
func (m *SuggestionMutation) CategoryNameCleared() bool {
	_, ok := m.clearedFields[suggestion.FieldCategoryName]
	return ok
}

// ResetCategoryName resets all changes to the "category_name" field.
func (m *SuggestionMutation) ResetCategoryName() {
	m.category_name = nil
	delete(m.clearedFields, suggestion.FieldCategoryName)
}

// SetConfidence sets the "confidence" field.
func (m *SuggestionMutation) SetConfidence(f float32) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *SuggestionMutation) Confidence() (r float32, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Suggestion entity.
// If the Suggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionMutation) OldConfidence(ctx context.Context) (v float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *SuggestionMutation) AddConfidence(f float32) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *SuggestionMutation) AddedConfidence() (r float32, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *SuggestionMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetSourceType sets the "source_type" field.
func (m *SuggestionMutation) SetSourceType(s string) {
	m.source_type = &s
}

// SourceType returns the value of the "source_type" field in the mutation.
func (m *SuggestionMutation) SourceType() (r string, exists bool) {
	v := m.source_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceType returns the old "source_type" field's value of the Suggestion entity.
// If the Suggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionMutation) OldSourceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceType: %w", err)
	}
	return oldValue.SourceType, nil
}

// ResetSourceType resets all changes to the "source_type" field.
func (m *SuggestionMutation) ResetSourceType() {
	m.source_type = nil
}

// SetLineItemIndex sets the "line_item_index" field.
func (m *SuggestionMutation) SetLineItemIndex(i int) {
	m.line_item_index = &i
	m.addline_item_index = nil
}

// LineItemIndex returns the value of the "line_item_index" field in the mutation.
func (m *SuggestionMutation) LineItemIndex() (r int, exists bool) {
	v := m.line_item_index
	if v == nil {
		return
	}
	return *v, true
}

// OldLineItemIndex returns the old "line_item_index" field's value of the Suggestion entity.
// If the Suggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionMutation) OldLineItemIndex(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLineItemIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLineItemIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLineItemIndex: %w", err)
	}
	return oldValue.LineItemIndex, nil
}

// AddLineItemIndex adds i to the "line_item_index" field.
func (m *SuggestionMutation) AddLineItemIndex(i int) {
	if m.addline_item_index != nil {
		*m.addline_item_index += i
	} else {
		m.addline_item_index = &i
	}
}

// AddedLineItemIndex returns the value that was added to the "line_item_index" field in this mutation.
func (m *SuggestionMutation) AddedLineItemIndex() (r int, exists bool) {
	v := m.addline_item_index
	if v == nil {
		return
	}
	return *v, true
}

// ClearLineItemIndex clears the value of the "line_item_index" field.
func (m *SuggestionMutation) ClearLineItemIndex() {
	m.line_item_index = nil
	m.addline_item_index = nil
	m.clearedFields[suggestion.FieldLineItemIndex] = struct{}{}
}

// LineItemIndexCleared returns if the "line_item_index" field was cleared in this mutation.
func (m *SuggestionMutation) LineItemIndexCleared() bool {
	_, ok := m.clearedFields[suggestion.FieldLineItemIndex]
	return ok
}

// ResetLineItemIndex resets all changes to the "line_item_index" field.
func (m *SuggestionMutation) ResetLineItemIndex() {
	m.line_item_index = nil
	m.addline_item_index = nil
	delete(m.clearedFields, suggestion.FieldLineItemIndex)
}

// SetOriginalText sets the "original_text" field.
func (m *SuggestionMutation) SetOriginalText(s string) {
	m.original_text = &s
}

// OriginalText returns the value of the "original_text" field in the mutation.
func (m *SuggestionMutation) OriginalText() (r string, exists bool) {
	v := m.original_text
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalText returns the old "original_text" field's value of the Suggestion entity.
// If the Suggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionMutation) OldOriginalText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalText: %w", err)
	}
	return oldValue.OriginalText, nil
}

// ClearOriginalText clears the value of the "original_text" field.
func (m *SuggestionMutation) ClearOriginalText() {
	m.original_text = nil
	m.clearedFields[suggestion.FieldOriginalText] = struct{}{}
}

// OriginalTextCleared returns if the "original_text" field was cleared in this mutation.
func (m *SuggestionMutation) OriginalTextCleared() bool {
	_, ok := m.clearedFields[suggestion.FieldOriginalText]
	return ok
}

// ResetOriginalText resets all changes to the "original_text" field.
func (m *SuggestionMutation) ResetOriginalText() {
	m.original_text = nil
	delete(m.clearedFields, suggestion.FieldOriginalText)
}

// SetApproved sets the "approved" field.
func (m *SuggestionMutation) SetApproved(b bool) {
	m.approved = &b
}

// Approved returns the value of the "approved" field in the mutation.
func (m *SuggestionMutation) Approved() (r bool, exists bool) {
	v := m.approved
	if v == nil {
		return
	}
	return *v, true
}

// OldApproved returns the old "approved" field's value of the Suggestion entity.
// If the Suggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionMutation) OldApproved(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApproved is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApproved requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApproved: %w", err)
	}
	return oldValue.Approved, nil
}

// ResetApproved resets all changes to the "approved" field.
func (m *SuggestionMutation) ResetApproved() {
	m.approved = nil
}

// SetApprovedAt sets the "approved_at" field.
func (m *SuggestionMutation) SetApprovedAt(t time.Time) {
	m.approved_at = &t
}

// ApprovedAt returns the value of the "approved_at" field in the mutation.
func (m *SuggestionMutation) ApprovedAt() (r time.Time, exists bool) {
	v := m.approved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovedAt returns the old "approved_at" field's value of the Suggestion entity.
// If the Suggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionMutation) OldApprovedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovedAt: %w", err)
	}
	return oldValue.ApprovedAt, nil
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (m *SuggestionMutation) ClearApprovedAt() {
	m.approved_at = nil
	m.clearedFields[suggestion.FieldApprovedAt] = struct{}{}
}

// ApprovedAtCleared returns if the "approved_at" field was cleared in this mutation.
func (m *SuggestionMutation) ApprovedAtCleared() bool {
	_, ok := m.clearedFields[suggestion.FieldApprovedAt]
	return ok
}

// ResetApprovedAt resets all changes to the "approved_at" field.
func (m *SuggestionMutation) ResetApprovedAt() {
	m.approved_at = nil
	delete(m.clearedFields, suggestion.FieldApprovedAt)
}

// SetTransactionID sets the "transaction_id" field.
func (m *SuggestionMutation) SetTransactionID(u uuid.UUID) {
	m.transaction_id = &u
}

// TransactionID returns the value of the "transaction_id" field in the mutation.
func (m *SuggestionMutation) TransactionID() (r uuid.UUID, exists bool) {
	v := m.transaction_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTransactionID returns the old "transaction_id" field's value of the Suggestion entity.
// If the Suggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionMutation) OldTransactionID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTransactionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTransactionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTransactionID: %w", err)
	}
	return oldValue.TransactionID, nil
}

// ClearTransactionID clears the value of the "transaction_id" field.
func (m *SuggestionMutation) ClearTransactionID() {
	m.transaction_id = nil
	m.clearedFields[suggestion.FieldTransactionID] = struct{}{}
}

// TransactionIDCleared returns if the "transaction_id" field was cleared in this mutation.
func (m *SuggestionMutation) TransactionIDCleared() bool {
	_, ok := m.clearedFields[suggestion.FieldTransactionID]
	return ok
}

// ResetTransactionID resets all changes to the "transaction_id" field.
func (m *SuggestionMutation) ResetTransactionID() {
	m.transaction_id = nil
	delete(m.clearedFields, suggestion.FieldTransactionID)
}

// SetCreatedAt sets the "created_at" field.
func (m *SuggestionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SuggestionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Suggestion entity.
// If the Suggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SuggestionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearOcrResult clears the "ocr_result" edge to the OcrResult entity.
func (m *SuggestionMutation) ClearOcrResult() {
	m.clearedocr_result = true
	m.clearedFields[suggestion.FieldOcrResultID] = struct{}{}
}

// OcrResultCleared reports if the "ocr_result" edge to the OcrResult entity was cleared.
func (m *SuggestionMutation) OcrResultCleared() bool {
	return m.clearedocr_result
}

// OcrResultIDs returns the "ocr_result" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OcrResultID instead. It exists only for internal usage by the builders.
func (m *SuggestionMutation) OcrResultIDs() (ids []uuid.UUID) {
	if id := m.ocr_result; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOcrResult resets all changes to the "ocr_result" edge.
func (m *SuggestionMutation) ResetOcrResult() {
	m.ocr_result = nil
	m.clearedocr_result = false
}

// Where appends a list predicates to the SuggestionMutation builder.
func (m *SuggestionMutation) Where(ps ...predicate.Suggestion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SuggestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SuggestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Suggestion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SuggestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SuggestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Suggestion).
func (m *SuggestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SuggestionMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.ocr_result != nil {
		fields = append(fields, suggestion.FieldOcrResultID)
	}
	if m.document_id != nil {
		fields = append(fields, suggestion.FieldDocumentID)
	}
	if m.description != nil {
		fields = append(fields, suggestion.FieldDescription)
	}
	if m.amount != nil {
		fields = append(fields, suggestion.FieldAmount)
	}
	if m.currency_code != nil {
		fields = append(fields, suggestion.FieldCurrencyCode)
	}
	if m.tx_date != nil {
		fields = append(fields, suggestion.FieldTxDate)
	}
	if m.merchant != nil {
		fields = append(fields, suggestion.FieldMerchant)
	}
	if m.category_id != nil {
		fields = append(fields, suggestion.FieldCategoryID)
	}
	if m.category_name != nil {
		fields = append(fields, suggestion.FieldCategoryName)
	}
	if m.confidence != nil {
		fields = append(fields, suggestion.FieldConfidence)
	}
	if m.source_type != nil {
		fields = append(fields, suggestion.FieldSourceType)
	}
	if m.line_item_index != nil {
		fields = append(fields, suggestion.FieldLineItemIndex)
	}
	if m.original_text != nil {
		fields = append(fields, suggestion.FieldOriginalText)
	}
	if m.approved != nil {
		fields = append(fields, suggestion.FieldApproved)
	}
	if m.approved_at != nil {
		fields = append(fields, suggestion.FieldApprovedAt)
	}
	if m.transaction_id != nil {
		fields = append(fields, suggestion.FieldTransactionID)
	}
	if m.created_at != nil {
		fields = append(fields, suggestion.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SuggestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case suggestion.FieldOcrResultID:
		return m.OcrResultID()
	case suggestion.FieldDocumentID:
		return m.DocumentID()
	case suggestion.FieldDescription:
		return m.Description()
	case suggestion.FieldAmount:
		return m.Amount()
	case suggestion.FieldCurrencyCode:
		return m.CurrencyCode()
	case suggestion.FieldTxDate:
		return m.TxDate()
	case suggestion.FieldMerchant:
		return m.Merchant()
	case suggestion.FieldCategoryID:
		return m.CategoryID()
	case suggestion.FieldCategoryName:
		return m.CategoryName()
	case suggestion.FieldConfidence:
		return m.Confidence()
	case suggestion.FieldSourceType:
		return m.SourceType()
	case suggestion.FieldLineItemIndex:
		return m.LineItemIndex()
	case suggestion.FieldOriginalText:
		return m.OriginalText()
	case suggestion.FieldApproved:
		return m.Approved()
	case suggestion.FieldApprovedAt:
		return m.ApprovedAt()
	case suggestion.FieldTransactionID:
		return m.TransactionID()
	case suggestion.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SuggestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case suggestion.FieldOcrResultID:
		return m.OldOcrResultID(ctx)
	case suggestion.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case suggestion.FieldDescription:
		return m.OldDescription(ctx)
	case suggestion.FieldAmount:
		return m.OldAmount(ctx)
	case suggestion.FieldCurrencyCode:
		return m.OldCurrencyCode(ctx)
	case suggestion.FieldTxDate:
		return m.OldTxDate(ctx)
	case suggestion.FieldMerchant:
		return m.OldMerchant(ctx)
	case suggestion.FieldCategoryID:
		return m.OldCategoryID(ctx)
	case suggestion.FieldCategoryName:
		return m.OldCategoryName(ctx)
	case suggestion.FieldConfidence:
		return m.OldConfidence(ctx)
	case suggestion.FieldSourceType:
		return m.OldSourceType(ctx)
	case suggestion.FieldLineItemIndex:
		return m.OldLineItemIndex(ctx)
	case suggestion.FieldOriginalText:
		return m.OldOriginalText(ctx)
	case suggestion.FieldApproved:
		return m.OldApproved(ctx)
	case suggestion.FieldApprovedAt:
		return m.OldApprovedAt(ctx)
	case suggestion.FieldTransactionID:
		return m.OldTransactionID(ctx)
	case suggestion.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Suggestion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SuggestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case suggestion.FieldOcrResultID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrResultID(v)
		return nil
	case suggestion.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case suggestion.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case suggestion.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case suggestion.FieldCurrencyCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrencyCode(v)
		return nil
	case suggestion.FieldTxDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTxDate(v)
		return nil
	case suggestion.FieldMerchant:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMerchant(v)
		return nil
	case suggestion.FieldCategoryID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategoryID(v)
		return nil
	case suggestion.FieldCategoryName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategoryName(v)
		return nil
	case suggestion.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case suggestion.FieldSourceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceType(v)
		return nil
	case suggestion.FieldLineItemIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLineItemIndex(v)
		return nil
	case suggestion.FieldOriginalText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalText(v)
		return nil
	case suggestion.FieldApproved:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApproved(v)
		return nil
	case suggestion.FieldApprovedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovedAt(v)
		return nil
	case suggestion.FieldTransactionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTransactionID(v)
		return nil
	case suggestion.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Suggestion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SuggestionMutation) AddedFields() []string {
	var fields []string
	if m.addamount != nil {
		fields = append(fields, suggestion.FieldAmount)
	}
	if m.addconfidence != nil {
		fields = append(fields, suggestion.FieldConfidence)
	}
	if m.addline_item_index != nil {
		fields = append(fields, suggestion.FieldLineItemIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SuggestionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case suggestion.FieldAmount:
		return m.AddedAmount()
	case suggestion.FieldConfidence:
		return m.AddedConfidence()
	case suggestion.FieldLineItemIndex:
		return m.AddedLineItemIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SuggestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case suggestion.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	case suggestion.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case suggestion.FieldLineItemIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLineItemIndex(v)
		return nil
	}
	return fmt.Errorf("unknown Suggestion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SuggestionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(suggestion.FieldMerchant) {
		fields = append(fields, suggestion.FieldMerchant)
	}
	if m.FieldCleared(suggestion.FieldCategoryID) {
		fields = append(fields, suggestion.FieldCategoryID)
	}
	if m.FieldCleared(suggestion.FieldCategoryName) {
		fields = append(fields, suggestion.FieldCategoryName)
	}
	if m.FieldCleared(suggestion.FieldLineItemIndex) {
		fields = append(fields, suggestion.FieldLineItemIndex)
	}
	if m.FieldCleared(suggestion.FieldOriginalText) {
		fields = append(fields, suggestion.FieldOriginalText)
	}
	if m.FieldCleared(suggestion.FieldApprovedAt) {
		fields = append(fields, suggestion.FieldApprovedAt)
	}
	if m.FieldCleared(suggestion.FieldTransactionID) {
		fields = append(fields, suggestion.FieldTransactionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SuggestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SuggestionMutation) ClearField(name string) error {
	switch name {
	case suggestion.FieldMerchant:
		m.ClearMerchant()
		return nil
	case suggestion.FieldCategoryID:
		m.ClearCategoryID()
		return nil
	case suggestion.FieldCategoryName:
		m.ClearCategoryName()
		return nil
	case suggestion.FieldLineItemIndex:
		m.ClearLineItemIndex()
		return nil
	case suggestion.FieldOriginalText:
		m.ClearOriginalText()
		return nil
	case suggestion.FieldApprovedAt:
		m.ClearApprovedAt()
		return nil
	case suggestion.FieldTransactionID:
		m.ClearTransactionID()
		return nil
	}
	return fmt.Errorf("unknown Suggestion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SuggestionMutation) ResetField(name string) error {
	switch name {
	case suggestion.FieldOcrResultID:
		m.ResetOcrResultID()
		return nil
	case suggestion.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case suggestion.FieldDescription:
		m.ResetDescription()
		return nil
	case suggestion.FieldAmount:
		m.ResetAmount()
		return nil
	case suggestion.FieldCurrencyCode:
		m.ResetCurrencyCode()
		return nil
	case suggestion.FieldTxDate:
		m.ResetTxDate()
		return nil
	case suggestion.FieldMerchant:
		m.ResetMerchant()
		return nil
	case suggestion.FieldCategoryID:
		m.ResetCategoryID()
		return nil
	case suggestion.FieldCategoryName:
		m.ResetCategoryName()
		return nil
	case suggestion.FieldConfidence:
		m.ResetConfidence()
		return nil
	case suggestion.FieldSourceType:
		m.ResetSourceType()
		return nil
	case suggestion.FieldLineItemIndex:
		m.ResetLineItemIndex()
		return nil
	case suggestion.FieldOriginalText:
		m.ResetOriginalText()
		return nil
	case suggestion.FieldApproved:
		m.ResetApproved()
		return nil
	case suggestion.FieldApprovedAt:
		m.ResetApprovedAt()
		return nil
	case suggestion.FieldTransactionID:
		m.ResetTransactionID()
		return nil
	case suggestion.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Suggestion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SuggestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.ocr_result != nil {
		edges = append(edges, suggestion.EdgeOcrResult)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SuggestionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case suggestion.EdgeOcrResult:
		if id := m.ocr_result; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SuggestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SuggestionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SuggestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedocr_result {
		edges = append(edges, suggestion.EdgeOcrResult)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SuggestionMutation) EdgeCleared(name string) bool {
	switch name {
	case suggestion.EdgeOcrResult:
		return m.clearedocr_result
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SuggestionMutation) ClearEdge(name string) error {
	switch name {
	case suggestion.EdgeOcrResult:
		m.ClearOcrResult()
		return nil
	}
	return fmt.Errorf("unknown Suggestion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SuggestionMutation) ResetEdge(name string) error {
	switch name {
	case suggestion.EdgeOcrResult:
		m.ResetOcrResult()
		return nil
	}
	return fmt.Errorf("unknown Suggestion edge %s", name)
}

// TransactionMutation represents an operation that mutates the Transaction nodes in the graph.
type TransactionMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	suggestion_id    *uuid.UUID
	description      *string
	amount           *float64
	addamount        *float64
	currency_code    *string
	flow             *string
	merchant         *string
	tx_date          *time.Time
	created_by       *uuid.UUID
	created_at       *time.Time
	clearedFields    map[string]struct{}
	household        *uuid.UUID
	clearedhousehold bool
	account          *uuid.UUID
	clearedaccount   bool
	category         *uuid.UUID
	clearedcategory  bool
	entries          map[uuid.UUID]struct{}
	removedentries   map[uuid.UUID]struct{}
	clearedentries   bool
	done             bool
	oldValue         func(context.Context) (*Transaction, error)
	predicates       []predicate.Transaction
}

var _ ent.Mutation = (*TransactionMutation)(nil)

// transactionOption allows management of the mutation configuration using functional options.
type transactionOption func(*TransactionMutation)

// newTransactionMutation creates new mutation for the Transaction entity.
func newTransactionMutation(c config, op Op, opts ...transactionOption) *TransactionMutation {
	m := &TransactionMutation{
		config:        c,
		op:            op,
		typ:           TypeTransaction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTransactionID sets the ID field of the mutation.
func withTransactionID(id uuid.UUID) transactionOption {
	return func(m *TransactionMutation) {
		var (
			err   error
			once  sync.Once
			value *Transaction
		)
		m.oldValue = func(ctx context.Context) (*Transaction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Transaction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTransaction sets the old Transaction of the mutation.
func withTransaction(node *Transaction) transactionOption {
	return func(m *TransactionMutation) {
		m.oldValue = func(context.Context) (*Transaction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TransactionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TransactionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Transaction entities.
func (m *TransactionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TransactionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TransactionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Transaction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetHouseholdID sets the "household_id" field.
func (m *TransactionMutation) SetHouseholdID(u uuid.UUID) {
	m.household = &u
}

// HouseholdID returns the value of the "household_id" field in the mutation.
func (m *TransactionMutation) HouseholdID() (r uuid.UUID, exists bool) {
	v := m.household
	if v == nil {
		return
	}
	return *v, true
}

// OldHouseholdID returns the old "household_id" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldHouseholdID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHouseholdID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHouseholdID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHouseholdID: %w", err)
	}
	return oldValue.HouseholdID, nil
}

// ResetHouseholdID resets all changes to the "household_id" field.
func (m *TransactionMutation) ResetHouseholdID() {
	m.household = nil
}

// SetAccountID sets the "account_id" field.
func (m *TransactionMutation) SetAccountID(u uuid.UUID) {
	m.account = &u
}

// AccountID returns the value of the "account_id" field in the mutation.
func (m *TransactionMutation) AccountID() (r uuid.UUID, exists bool) {
	v := m.account
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountID returns the old "account_id" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldAccountID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountID: %w", err)
	}
	return oldValue.AccountID, nil
}

// ResetAccountID resets all changes to the "account_id" field.
func (m *TransactionMutation) ResetAccountID() {
	m.account = nil
}

// SetCategoryID sets the "category_id" field.
func (m *TransactionMutation) SetCategoryID(u uuid.UUID) {
	m.category = &u
}

// CategoryID returns the value of the "category_id" field in the mutation.
func (m *TransactionMutation) CategoryID() (r uuid.UUID, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategoryID returns the old "category_id" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldCategoryID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategoryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategoryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategoryID: %w", err)
	}
	return oldValue.CategoryID, nil
}

// ClearCategoryID clears the value of the "category_id" field.
func (m *TransactionMutation) ClearCategoryID() {
	m.category = nil
	m.clearedFields[transaction.FieldCategoryID] = struct{}{}
}

// CategoryIDCleared returns if the "category_id" field was cleared in this mutation.
func (m *TransactionMutation) CategoryIDCleared() bool {
	_, ok := m.clearedFields[transaction.FieldCategoryID]
	return ok
}

// ResetCategoryID resets all changes to the "category_id" field.
func (m *TransactionMutation) ResetCategoryID() {
	m.category = nil
	delete(m.clearedFields, transaction.FieldCategoryID)
}

// SetSuggestionID sets the "suggestion_id" field.
func (m *TransactionMutation) SetSuggestionID(u uuid.UUID) {
	m.suggestion_id = &u
}

// SuggestionID returns the value of the "suggestion_id" field in the mutation.
func (m *TransactionMutation) SuggestionID() (r uuid.UUID, exists bool) {
	v := m.suggestion_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSuggestionID returns the old "suggestion_id" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldSuggestionID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuggestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuggestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuggestionID: %w", err)
	}
	return oldValue.SuggestionID, nil
}

// ClearSuggestionID clears the value of the "suggestion_id" field.
func (m *TransactionMutation) ClearSuggestionID() {
	m.suggestion_id = nil
	m.clearedFields[transaction.FieldSuggestionID] = struct{}{}
}

// SuggestionIDCleared returns if the "suggestion_id" field was cleared in this mutation.
func (m *TransactionMutation) SuggestionIDCleared() bool {
	_, ok := m.clearedFields[transaction.FieldSuggestionID]
	return ok
}

// ResetSuggestionID resets all changes to the "suggestion_id" field.
func (m *TransactionMutation) ResetSuggestionID() {
	m.suggestion_id = nil
	delete(m.clearedFields, transaction.FieldSuggestionID)
}

// SetDescription sets the "description" field.
func (m *TransactionMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TransactionMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *TransactionMutation) ResetDescription() {
	m.description = nil
}

// SetAmount sets the "amount" field.
func (m *TransactionMutation) SetAmount(f float64) {
	m.amount = &f
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *TransactionMutation) Amount() (r float64, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds f to the "amount" field.
func (m *TransactionMutation) AddAmount(f float64) {
	if m.addamount != nil {
		*m.addamount += f
	} else {
		m.addamount = &f
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *TransactionMutation) AddedAmount() (r float64, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmount resets all changes to the "amount" field.
func (m *TransactionMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
}

// SetCurrencyCode sets the "currency_code" field.
func (m *TransactionMutation) SetCurrencyCode(s string) {
	m.currency_code = &s
}

// CurrencyCode returns the value of the "currency_code" field in the mutation.
func (m *TransactionMutation) CurrencyCode() (r string, exists bool) {
	v := m.currency_code
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrencyCode returns the old "currency_code" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldCurrencyCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrencyCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrencyCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrencyCode: %w", err)
	}
	return oldValue.CurrencyCode, nil
}

// ResetCurrencyCode resets all changes to the "currency_code" field.
func (m *TransactionMutation) ResetCurrencyCode() {
	m.currency_code = nil
}

// SetFlow sets the "flow" field.
func (m *TransactionMutation) SetFlow(s string) {
	m.flow = &s
}

// Flow returns the value of the "flow" field in the mutation.
func (m *TransactionMutation) Flow() (r string, exists bool) {
	v := m.flow
	if v == nil {
		return
	}
	return *v, true
}

// OldFlow returns the old "flow" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldFlow(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFlow is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFlow requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFlow: %w", err)
	}
	return oldValue.Flow, nil
}

// ResetFlow resets all changes to the "flow" field.
func (m *TransactionMutation) ResetFlow() {
	m.flow = nil
}

// SetMerchant sets the "merchant" field.
func (m *TransactionMutation) SetMerchant(s string) {
	m.merchant = &s
}

// Merchant returns the value of the "merchant" field in the mutation.
func (m *TransactionMutation) Merchant() (r string, exists bool) {
	v := m.merchant
	if v == nil {
		return
	}
	return *v, true
}

// OldMerchant returns the old "merchant" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldMerchant(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMerchant is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMerchant requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMerchant: %w", err)
	}
	return oldValue.Merchant, nil
}

// ClearMerchant clears the value of the "merchant" field.
func (m *TransactionMutation) ClearMerchant() {
	m.merchant = nil
	m.clearedFields[transaction.FieldMerchant] = struct{}{}
}

// MerchantCleared returns if the "merchant" field was cleared in this mutation.
func (m *TransactionMutation) MerchantCleared() bool {
	_, ok := m.clearedFields[transaction.FieldMerchant]
	return ok
}

// ResetMerchant resets all changes to the "merchant" field.
func (m *TransactionMutation) ResetMerchant() {
	m.merchant = nil
	delete(m.clearedFields, transaction.FieldMerchant)
}

// SetTxDate sets the "tx_date" field.
func (m *TransactionMutation) SetTxDate(t time.Time) {
	m.tx_date = &t
}

// TxDate returns the value of the "tx_date" field in the mutation.
func (m *TransactionMutation) TxDate() (r time.Time, exists bool) {
	v := m.tx_date
	if v == nil {
		return
	}
	return *v, true
}

// OldTxDate returns the old "tx_date" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldTxDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTxDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTxDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTxDate: %w", err)
	}
	return oldValue.TxDate, nil
}

// ResetTxDate resets all changes to the "tx_date" field.
func (m *TransactionMutation) ResetTxDate() {
	m.tx_date = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *TransactionMutation) SetCreatedBy(u uuid.UUID) {
	m.created_by = &u
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *TransactionMutation) CreatedBy() (r uuid.UUID, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldCreatedBy(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *TransactionMutation) ResetCreatedBy() {
	m.created_by = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TransactionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TransactionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TransactionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearHousehold clears the "household" edge to the Household entity.
func (m *TransactionMutation) ClearHousehold() {
	m.clearedhousehold = true
	m.clearedFields[transaction.FieldHouseholdID] = struct{}{}
}

// HouseholdCleared reports if the "household" edge to the Household entity was cleared.
func (m *TransactionMutation) HouseholdCleared() bool {
	return m.clearedhousehold
}

// HouseholdIDs returns the "household" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// HouseholdID instead. It exists only for internal usage by the builders.
func (m *TransactionMutation) HouseholdIDs() (ids []uuid.UUID) {
	if id := m.household; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetHousehold resets all changes to the "household" edge.
func (m *TransactionMutation) ResetHousehold() {
	m.household = nil
	m.clearedhousehold = false
}

// ClearAccount clears the "account" edge to the Account entity.
func (m *TransactionMutation) ClearAccount() {
	m.clearedaccount = true
	m.clearedFields[transaction.FieldAccountID] = struct{}{}
}

// AccountCleared reports if the "account" edge to the Account entity was cleared.
func (m *TransactionMutation) AccountCleared() bool {
	return m.clearedaccount
}

// AccountIDs returns the "account" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AccountID instead. It exists only for internal usage by the builders.
func (m *TransactionMutation) AccountIDs() (ids []uuid.UUID) {
	if id := m.account; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAccount resets all changes to the "account" edge.
func (m *TransactionMutation) ResetAccount() {
	m.account = nil
	m.clearedaccount = false
}

// ClearCategory clears the "category" edge to the Category entity.
func (m *TransactionMutation) ClearCategory() {
	m.clearedcategory = true
	m.clearedFields[transaction.FieldCategoryID] = struct{}{}
}

// CategoryCleared reports if the "category" edge to the Category entity was cleared.
func (m *TransactionMutation) CategoryCleared() bool {
	return m.CategoryIDCleared() || m.clearedcategory
}

// CategoryIDs returns the "category" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CategoryID instead. It exists only for internal usage by the builders.
func (m *TransactionMutation) CategoryIDs() (ids []uuid.UUID) {
	if id := m.category; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCategory resets all changes to the "category" edge.
func (m *TransactionMutation) ResetCategory() {
	m.category = nil
	m.clearedcategory = false
}

// AddEntryIDs adds the "entries" edge to the LedgerEntry entity by ids.
func (m *TransactionMutation) AddEntryIDs(ids ...uuid.UUID) {
	if m.entries == nil {
		m.entries = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.entries[ids[i]] = struct{}{}
	}
}

// ClearEntries clears the "entries" edge to the LedgerEntry entity.
func (m *TransactionMutation) ClearEntries() {
	m.clearedentries = true
}

// EntriesCleared reports if the "entries" edge to the LedgerEntry entity was cleared.
func (m *TransactionMutation) EntriesCleared() bool {
	return m.clearedentries
}

// RemoveEntryIDs removes the "entries" edge to the LedgerEntry entity by IDs.
func (m *TransactionMutation) RemoveEntryIDs(ids ...uuid.UUID) {
	if m.removedentries == nil {
		m.removedentries = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.entries, ids[i])
		m.removedentries[ids[i]] = struct{}{}
	}
}

// RemovedEntries returns the removed IDs of the "entries" edge to the LedgerEntry entity.
func (m *TransactionMutation) RemovedEntriesIDs() (ids []uuid.UUID) {
	for id := range m.removedentries {
		ids = append(ids, id)
	}
	return
}

// EntriesIDs returns the "entries" edge IDs in the mutation.
func (m *TransactionMutation) EntriesIDs() (ids []uuid.UUID) {
	for id := range m.entries {
		ids = append(ids, id)
	}
	return
}

// ResetEntries resets all changes to the "entries" edge.
func (m *TransactionMutation) ResetEntries() {
	m.entries = nil
	m.clearedentries = false
	m.removedentries = nil
}

// Where appends a list predicates to the TransactionMutation builder.
func (m *TransactionMutation) Where(ps ...predicate.Transaction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TransactionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TransactionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Transaction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TransactionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TransactionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Transaction).
func (m *TransactionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TransactionMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.household != nil {
		fields = append(fields, transaction.FieldHouseholdID)
	}
	if m.account != nil {
		fields = append(fields, transaction.FieldAccountID)
	}
	if m.category != nil {
		fields = append(fields, transaction.FieldCategoryID)
	}
	if m.suggestion_id != nil {
		fields = append(fields, transaction.FieldSuggestionID)
	}
	if m.description != nil {
		fields = append(fields, transaction.FieldDescription)
	}
	if m.amount != nil {
		fields = append(fields, transaction.FieldAmount)
	}
	if m.currency_code != nil {
		fields = append(fields, transaction.FieldCurrencyCode)
	}
	if m.flow != nil {
		fields = append(fields, transaction.FieldFlow)
	}
	if m.merchant != nil {
		fields = append(fields, transaction.FieldMerchant)
	}
	if m.tx_date != nil {
		fields = append(fields, transaction.FieldTxDate)
	}
	if m.created_by != nil {
		fields = append(fields, transaction.FieldCreatedBy)
	}
	if m.created_at != nil {
		fields = append(fields, transaction.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TransactionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case transaction.FieldHouseholdID:
		return m.HouseholdID()
	case transaction.FieldAccountID:
		return m.AccountID()
	case transaction.FieldCategoryID:
		return m.CategoryID()
	case transaction.FieldSuggestionID:
		return m.SuggestionID()
	case transaction.FieldDescription:
		return m.Description()
	case transaction.FieldAmount:
		return m.Amount()
	case transaction.FieldCurrencyCode:
		return m.CurrencyCode()
	case transaction.FieldFlow:
		return m.Flow()
	case transaction.FieldMerchant:
		return m.Merchant()
	case transaction.FieldTxDate:
		return m.TxDate()
	case transaction.FieldCreatedBy:
		return m.CreatedBy()
	case transaction.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TransactionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case transaction.FieldHouseholdID:
		return m.OldHouseholdID(ctx)
	case transaction.FieldAccountID:
		return m.OldAccountID(ctx)
	case transaction.FieldCategoryID:
		return m.OldCategoryID(ctx)
	case transaction.FieldSuggestionID:
		return m.OldSuggestionID(ctx)
	case transaction.FieldDescription:
		return m.OldDescription(ctx)
	case transaction.FieldAmount:
		return m.OldAmount(ctx)
	case transaction.FieldCurrencyCode:
		return m.OldCurrencyCode(ctx)
	case transaction.FieldFlow:
		return m.OldFlow(ctx)
	case transaction.FieldMerchant:
		return m.OldMerchant(ctx)
	case transaction.FieldTxDate:
		return m.OldTxDate(ctx)
	case transaction.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case transaction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Transaction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TransactionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case transaction.FieldHouseholdID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHouseholdID(v)
		return nil
	case transaction.FieldAccountID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountID(v)
		return nil
	case transaction.FieldCategoryID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategoryID(v)
		return nil
	case transaction.FieldSuggestionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuggestionID(v)
		return nil
	case transaction.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case transaction.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case transaction.FieldCurrencyCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrencyCode(v)
		return nil
	case transaction.FieldFlow:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFlow(v)
		return nil
	case transaction.FieldMerchant:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMerchant(v)
		return nil
	case transaction.FieldTxDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTxDate(v)
		return nil
	case transaction.FieldCreatedBy:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case transaction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Transaction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TransactionMutation) AddedFields() []string {
	var fields []string
	if m.addamount != nil {
		fields = append(fields, transaction.FieldAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TransactionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case transaction.FieldAmount:
		return m.AddedAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TransactionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case transaction.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	}
	return fmt.Errorf("unknown Transaction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TransactionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(transaction.FieldCategoryID) {
		fields = append(fields, transaction.FieldCategoryID)
	}
	if m.FieldCleared(transaction.FieldSuggestionID) {
		fields = append(fields, transaction.FieldSuggestionID)
	}
	if m.FieldCleared(transaction.FieldMerchant) {
		fields = append(fields, transaction.FieldMerchant)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TransactionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TransactionMutation) ClearField(name string) error {
	switch name {
	case transaction.FieldCategoryID:
		m.ClearCategoryID()
		return nil
	case transaction.FieldSuggestionID:
		m.ClearSuggestionID()
		return nil
	case transaction.FieldMerchant:
		m.ClearMerchant()
		return nil
	}
	return fmt.Errorf("unknown Transaction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TransactionMutation) ResetField(name string) error {
	switch name {
	case transaction.FieldHouseholdID:
		m.ResetHouseholdID()
		return nil
	case transaction.FieldAccountID:
		m.ResetAccountID()
		return nil
	case transaction.FieldCategoryID:
		m.ResetCategoryID()
		return nil
	case transaction.FieldSuggestionID:
		m.ResetSuggestionID()
		return nil
	case transaction.FieldDescription:
		m.ResetDescription()
		return nil
	case transaction.FieldAmount:
		m.ResetAmount()
		return nil
	case transaction.FieldCurrencyCode:
		m.ResetCurrencyCode()
		return nil
	case transaction.FieldFlow:
		m.ResetFlow()
		return nil
	case transaction.FieldMerchant:
		m.ResetMerchant()
		return nil
	case transaction.FieldTxDate:
		m.ResetTxDate()
		return nil
	case transaction.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case transaction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Transaction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TransactionMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.household != nil {
		edges = append(edges, transaction.EdgeHousehold)
	}
	if m.account != nil {
		edges = append(edges, transaction.EdgeAccount)
	}
	if m.category != nil {
		edges = append(edges, transaction.EdgeCategory)
	}
	if m.entries != nil {
		edges = append(edges, transaction.EdgeEntries)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TransactionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case transaction.EdgeHousehold:
		if id := m.household; id != nil {
			return []ent.Value{*id}
		}
	case transaction.EdgeAccount:
		if id := m.account; id != nil {
			return []ent.Value{*id}
		}
	case transaction.EdgeCategory:
		if id := m.category; id != nil {
			return []ent.Value{*id}
		}
	case transaction.EdgeEntries:
		ids := make([]ent.Value, 0, len(m.entries))
		for id := range m.entries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TransactionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedentries != nil {
		edges = append(edges, transaction.EdgeEntries)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TransactionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case transaction.EdgeEntries:
		ids := make([]ent.Value, 0, len(m.removedentries))
		for id := range m.removedentries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TransactionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedhousehold {
		edges = append(edges, transaction.EdgeHousehold)
	}
	if m.clearedaccount {
		edges = append(edges, transaction.EdgeAccount)
	}
	if m.clearedcategory {
		edges = append(edges, transaction.EdgeCategory)
	}
	if m.clearedentries {
		edges = append(edges, transaction.EdgeEntries)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TransactionMutation) EdgeCleared(name string) bool {
	switch name {
	case transaction.EdgeHousehold:
		return m.clearedhousehold
	case transaction.EdgeAccount:
		return m.clearedaccount
	case transaction.EdgeCategory:
		return m.clearedcategory
	case transaction.EdgeEntries:
		return m.clearedentries
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TransactionMutation) ClearEdge(name string) error {
	switch name {
	case transaction.EdgeHousehold:
		m.ClearHousehold()
		return nil
	case transaction.EdgeAccount:
		m.ClearAccount()
		return nil
	case transaction.EdgeCategory:
		m.ClearCategory()
		return nil
	}
	return fmt.Errorf("unknown Transaction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TransactionMutation) ResetEdge(name string) error {
	switch name {
	case transaction.EdgeHousehold:
		m.ResetHousehold()
		return nil
	case transaction.EdgeAccount:
		m.ResetAccount()
		return nil
	case transaction.EdgeCategory:
		m.ResetCategory()
		return nil
	case transaction.EdgeEntries:
		m.ResetEntries()
		return nil
	}
	return fmt.Errorf("unknown Transaction edge %s", name)
}
