// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Account is the predicate function for account builders.
type Account func(*sql.Selector)

// Category is the predicate function for category builders.
type Category func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// Household is the predicate function for household builders.
type Household func(*sql.Selector)

// HouseholdMember is the predicate function for householdmember builders.
type HouseholdMember func(*sql.Selector)

// LedgerEntry is the predicate function for ledgerentry builders.
type LedgerEntry func(*sql.Selector)

// OcrResult is the predicate function for ocrresult builders.
type OcrResult func(*sql.Selector)

// Suggestion is the predicate function for suggestion builders.
type Suggestion func(*sql.Selector)

// Transaction is the predicate function for transaction builders.
type Transaction func(*sql.Selector)
