// Code generated by ent, DO NOT EDIT.

package ledgerentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldLTE(FieldID, id))
}

// TransactionID applies equality check predicate on the "transaction_id" field. It's identical to TransactionIDEQ.
func TransactionID(v uuid.UUID) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldEQ(FieldTransactionID, v))
}

// AccountID applies equality check predicate on the "account_id" field. It's identical to AccountIDEQ.
func AccountID(v uuid.UUID) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldEQ(FieldAccountID, v))
}

// EntryType applies equality check predicate on the "entry_type" field. It's identical to EntryTypeEQ.
func EntryType(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldEQ(FieldEntryType, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v float64) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldEQ(FieldAmount, v))
}

// CurrencyCode applies equality check predicate on the "currency_code" field. It's identical to CurrencyCodeEQ.
func CurrencyCode(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldEQ(FieldCurrencyCode, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// TransactionIDEQ applies the EQ predicate on the "transaction_id" field.
func TransactionIDEQ(v uuid.UUID) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldEQ(FieldTransactionID, v))
}

// TransactionIDNEQ applies the NEQ predicate on the "transaction_id" field.
func TransactionIDNEQ(v uuid.UUID) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldNEQ(FieldTransactionID, v))
}

// TransactionIDIn applies the In predicate on the "transaction_id" field.
func TransactionIDIn(vs ...uuid.UUID) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldIn(FieldTransactionID, vs...))
}

// TransactionIDNotIn applies the NotIn predicate on the "transaction_id" field.
func TransactionIDNotIn(vs ...uuid.UUID) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldNotIn(FieldTransactionID, vs...))
}

// AccountIDEQ applies the EQ predicate on the "account_id" field.
func AccountIDEQ(v uuid.UUID) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldEQ(FieldAccountID, v))
}

// AccountIDNEQ applies the NEQ predicate on the "account_id" field.
func AccountIDNEQ(v uuid.UUID) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldNEQ(FieldAccountID, v))
}

// AccountIDIn applies the In predicate on the "account_id" field.
func AccountIDIn(vs ...uuid.UUID) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldIn(FieldAccountID, vs...))
}

// AccountIDNotIn applies the NotIn predicate on the "account_id" field.
func AccountIDNotIn(vs ...uuid.UUID) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldNotIn(FieldAccountID, vs...))
}

// EntryTypeEQ applies the EQ predicate on the "entry_type" field.
func EntryTypeEQ(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldEQ(FieldEntryType, v))
}

// EntryTypeNEQ applies the NEQ predicate on the "entry_type" field.
func EntryTypeNEQ(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldNEQ(FieldEntryType, v))
}

// EntryTypeIn applies the In predicate on the "entry_type" field.
func EntryTypeIn(vs ...string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldIn(FieldEntryType, vs...))
}

// EntryTypeNotIn applies the NotIn predicate on the "entry_type" field.
func EntryTypeNotIn(vs ...string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldNotIn(FieldEntryType, vs...))
}

// EntryTypeGT applies the GT predicate on the "entry_type" field.
func EntryTypeGT(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldGT(FieldEntryType, v))
}

// EntryTypeGTE applies the GTE predicate on the "entry_type" field.
func EntryTypeGTE(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldGTE(FieldEntryType, v))
}

// EntryTypeLT applies the LT predicate on the "entry_type" field.
func EntryTypeLT(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldLT(FieldEntryType, v))
}

// EntryTypeLTE applies the LTE predicate on the "entry_type" field.
func EntryTypeLTE(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldLTE(FieldEntryType, v))
}

// EntryTypeContains applies the Contains predicate on the "entry_type" field.
func EntryTypeContains(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldContains(FieldEntryType, v))
}

// EntryTypeHasPrefix applies the HasPrefix predicate on the "entry_type" field.
func EntryTypeHasPrefix(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldHasPrefix(FieldEntryType, v))
}

// EntryTypeHasSuffix applies the HasSuffix predicate on the "entry_type" field.
func EntryTypeHasSuffix(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldHasSuffix(FieldEntryType, v))
}

// EntryTypeEqualFold applies the EqualFold predicate on the "entry_type" field.
func EntryTypeEqualFold(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldEqualFold(FieldEntryType, v))
}

// EntryTypeContainsFold applies the ContainsFold predicate on the "entry_type" field.
func EntryTypeContainsFold(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldContainsFold(FieldEntryType, v))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v float64) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v float64) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...float64) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...float64) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v float64) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v float64) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v float64) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v float64) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldLTE(FieldAmount, v))
}

// CurrencyCodeEQ applies the EQ predicate on the "currency_code" field.
func CurrencyCodeEQ(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldEQ(FieldCurrencyCode, v))
}

// CurrencyCodeNEQ applies the NEQ predicate on the "currency_code" field.
func CurrencyCodeNEQ(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldNEQ(FieldCurrencyCode, v))
}

// CurrencyCodeIn applies the In predicate on the "currency_code" field.
func CurrencyCodeIn(vs ...string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldIn(FieldCurrencyCode, vs...))
}

// CurrencyCodeNotIn applies the NotIn predicate on the "currency_code" field.
func CurrencyCodeNotIn(vs ...string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldNotIn(FieldCurrencyCode, vs...))
}

// CurrencyCodeGT applies the GT predicate on the "currency_code" field.
func CurrencyCodeGT(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldGT(FieldCurrencyCode, v))
}

// CurrencyCodeGTE applies the GTE predicate on the "currency_code" field.
func CurrencyCodeGTE(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldGTE(FieldCurrencyCode, v))
}

// CurrencyCodeLT applies the LT predicate on the "currency_code" field.
func CurrencyCodeLT(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldLT(FieldCurrencyCode, v))
}

// CurrencyCodeLTE applies the LTE predicate on the "currency_code" field.
func CurrencyCodeLTE(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldLTE(FieldCurrencyCode, v))
}

// CurrencyCodeContains applies the Contains predicate on the "currency_code" field.
func CurrencyCodeContains(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldContains(FieldCurrencyCode, v))
}

// CurrencyCodeHasPrefix applies the HasPrefix predicate on the "currency_code" field.
func CurrencyCodeHasPrefix(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldHasPrefix(FieldCurrencyCode, v))
}

// CurrencyCodeHasSuffix applies the HasSuffix predicate on the "currency_code" field.
func CurrencyCodeHasSuffix(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldHasSuffix(FieldCurrencyCode, v))
}

// CurrencyCodeEqualFold applies the EqualFold predicate on the "currency_code" field.
func CurrencyCodeEqualFold(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldEqualFold(FieldCurrencyCode, v))
}

// CurrencyCodeContainsFold applies the ContainsFold predicate on the "currency_code" field.
func CurrencyCodeContainsFold(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldContainsFold(FieldCurrencyCode, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// HasTransaction applies the HasEdge predicate on the "transaction" edge.
func HasTransaction() predicate.LedgerEntry {
	return predicate.LedgerEntry(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TransactionTable, TransactionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTransactionWith applies the HasEdge predicate on the "transaction" edge with a given conditions (other predicates).
func HasTransactionWith(preds ...predicate.Transaction) predicate.LedgerEntry {
	return predicate.LedgerEntry(func(s *sql.Selector) {
		step := newTransactionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAccount applies the HasEdge predicate on the "account" edge.
func HasAccount() predicate.LedgerEntry {
	return predicate.LedgerEntry(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AccountTable, AccountColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAccountWith applies the HasEdge predicate on the "account" edge with a given conditions (other predicates).
func HasAccountWith(preds ...predicate.Account) predicate.LedgerEntry {
	return predicate.LedgerEntry(func(s *sql.Selector) {
		step := newAccountStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LedgerEntry) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LedgerEntry) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LedgerEntry) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.NotPredicates(p))
}
