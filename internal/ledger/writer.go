// Package ledger turns approved suggestions into double-entry
// transactions. Approval is atomic: the suggestion flip, the
// transaction row and its ledger entry commit together or not at all.
package ledger

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/prasetyo-adi/kas-keluarga/constants"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/householdmember"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/suggestion"
	"github.com/prasetyo-adi/kas-keluarga/internal/common"
)

// Corrections overrides suggestion fields at approval time. Nil fields
// keep the suggested value.
type Corrections struct {
	Description *string
	Amount      *float64
	TxDate      *time.Time
	CategoryID  *uuid.UUID
	Merchant    *string
}

type ApproveParams struct {
	SuggestionID uuid.UUID
	AccountID    uuid.UUID
	UserID       uuid.UUID
	Corrections  *Corrections
}

type Writer struct {
	client *ent.Client
	logger *slog.Logger
	now    func() time.Time
}

func NewWriter(client *ent.Client, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{
		client: client,
		logger: logger.With("component", "ledger_writer"),
		now:    time.Now,
	}
}

// Approve flips the suggestion to approved and writes the transaction
// and its ledger entry in one database transaction. A suggestion can be
// approved exactly once; the flip is a conditional update so concurrent
// approvals race on the row and the loser gets ALREADY_APPROVED.
func (w *Writer) Approve(ctx context.Context, p ApproveParams) (*ent.Transaction, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, common.InternalError("begin approval transaction", err)
	}
	txn, err := w.approve(ctx, tx, p)
	if err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			w.logger.Error("failed to roll back approval", "error", rerr)
		}
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, common.InternalError("commit approval", err)
	}
	w.logger.Info("suggestion approved",
		"suggestion_id", p.SuggestionID,
		"transaction_id", txn.ID,
		"amount", txn.Amount,
		"flow", txn.Flow)
	return txn, nil
}

func (w *Writer) approve(ctx context.Context, tx *ent.Tx, p ApproveParams) (*ent.Transaction, error) {
	sugg, err := tx.Suggestion.Get(ctx, p.SuggestionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("suggestion", p.SuggestionID.String())
		}
		return nil, common.InternalError("load suggestion", err)
	}
	if sugg.Approved {
		return nil, common.NewAppError(common.CodeAlreadyApproved,
			"suggestion "+p.SuggestionID.String()+" is already approved", nil)
	}

	doc, err := tx.Document.Get(ctx, sugg.DocumentID)
	if err != nil {
		return nil, common.InternalError("load suggestion document", err)
	}

	member, err := tx.HouseholdMember.Query().
		Where(
			householdmember.HouseholdID(doc.HouseholdID),
			householdmember.UserID(p.UserID),
		).
		Exist(ctx)
	if err != nil {
		return nil, common.InternalError("check household membership", err)
	}
	if !member {
		return nil, common.NewAppError(common.CodeDenied,
			"user is not a member of the document's household", nil)
	}

	acct, err := tx.Account.Get(ctx, p.AccountID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("account", p.AccountID.String())
		}
		return nil, common.InternalError("load account", err)
	}
	// Accounts from other households look like missing accounts.
	if acct.HouseholdID != doc.HouseholdID {
		return nil, common.NotFoundError("account", p.AccountID.String())
	}
	if !acct.IsActive {
		return nil, common.NewAppError(common.CodeInvalidState,
			"account "+acct.Name+" is inactive", nil)
	}

	desc, amount, txDate, categoryID, merchant := resolve(sugg, p.Corrections)
	if desc == "" {
		return nil, common.ValidationError("description must not be empty")
	}
	if amount == 0 {
		return nil, common.NewAppError(common.CodeInvalidAmount,
			"transaction amount must be non-zero", nil)
	}

	// The conditional update is the approval lock.
	n, err := tx.Suggestion.Update().
		Where(suggestion.ID(sugg.ID), suggestion.Approved(false)).
		SetApproved(true).
		SetApprovedAt(w.now().UTC()).
		Save(ctx)
	if err != nil {
		return nil, common.InternalError("flip suggestion approval", err)
	}
	if n == 0 {
		return nil, common.NewAppError(common.CodeAlreadyApproved,
			"suggestion "+p.SuggestionID.String()+" is already approved", nil)
	}

	flow := constants.FlowIncome
	entryType := constants.EntryDebit
	if amount < 0 {
		flow = constants.FlowExpense
		entryType = constants.EntryCredit
	}

	create := tx.Transaction.Create().
		SetHouseholdID(doc.HouseholdID).
		SetAccountID(acct.ID).
		SetSuggestionID(sugg.ID).
		SetDescription(desc).
		SetAmount(math.Abs(amount)).
		SetCurrencyCode(sugg.CurrencyCode).
		SetFlow(string(flow)).
		SetTxDate(txDate).
		SetCreatedBy(p.UserID)
	if categoryID != nil {
		create.SetCategoryID(*categoryID)
	}
	if merchant != "" {
		create.SetMerchant(merchant)
	}
	txn, err := create.Save(ctx)
	if err != nil {
		return nil, common.InternalError("create transaction", err)
	}

	if _, err := tx.LedgerEntry.Create().
		SetTransactionID(txn.ID).
		SetAccountID(acct.ID).
		SetEntryType(string(entryType)).
		SetAmount(math.Abs(amount)).
		SetCurrencyCode(sugg.CurrencyCode).
		Save(ctx); err != nil {
		return nil, common.InternalError("create ledger entry", err)
	}

	if _, err := tx.Suggestion.UpdateOneID(sugg.ID).
		SetTransactionID(txn.ID).
		Save(ctx); err != nil {
		return nil, common.InternalError("link suggestion transaction", err)
	}
	return txn, nil
}

// resolve merges corrections over the suggested values.
func resolve(sugg *ent.Suggestion, c *Corrections) (desc string, amount float64, txDate time.Time, categoryID *uuid.UUID, merchant string) {
	desc = sugg.Description
	amount = sugg.Amount
	txDate = sugg.TxDate
	categoryID = sugg.CategoryID
	if sugg.Merchant != nil {
		merchant = *sugg.Merchant
	}
	if c == nil {
		return
	}
	if c.Description != nil {
		desc = *c.Description
	}
	if c.Amount != nil {
		amount = *c.Amount
	}
	if c.TxDate != nil {
		txDate = *c.TxDate
	}
	if c.CategoryID != nil {
		categoryID = c.CategoryID
	}
	if c.Merchant != nil {
		merchant = *c.Merchant
	}
	return
}
