package constants

// DocumentStatus is the canonical processing status for rows in documents.
type DocumentStatus string

// Stable values (store these exact strings in DB).
const (
	StatusPending        DocumentStatus = "PENDING"         // uploaded, not yet processed
	StatusProcessing     DocumentStatus = "PROCESSING"      // extraction in progress
	StatusCompleted      DocumentStatus = "COMPLETED"       // terminal success
	StatusFailed         DocumentStatus = "FAILED"          // terminal failure
	StatusRequiresReview DocumentStatus = "REQUIRES_REVIEW" // terminal, low-confidence result
)

// TransactionFlow carries the sign of a committed transaction; the stored
// amount is always the absolute value.
type TransactionFlow string

const (
	FlowExpense TransactionFlow = "EXPENSE"
	FlowIncome  TransactionFlow = "INCOME"
)

// EntryType is one leg of a double-entry record.
type EntryType string

const (
	EntryDebit  EntryType = "DEBIT"
	EntryCredit EntryType = "CREDIT"
)

// SuggestionSource identifies which extraction path produced a suggestion.
type SuggestionSource string

const (
	SourceReceipt       SuggestionSource = "RECEIPT"
	SourceBankStatement SuggestionSource = "BANK_STATEMENT"
)
