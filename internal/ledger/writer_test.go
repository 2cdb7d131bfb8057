package ledger

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/prasetyo-adi/kas-keluarga/constants"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/ledgerentry"
	"github.com/prasetyo-adi/kas-keluarga/internal/common"
	"github.com/prasetyo-adi/kas-keluarga/internal/testutil"
)

type fixture struct {
	client     *ent.Client
	household  uuid.UUID
	user       uuid.UUID
	account    *ent.Account
	suggestion *ent.Suggestion
}

func newFixture(t *testing.T, amount float64) *fixture {
	t.Helper()
	ctx := context.Background()
	client := testutil.NewEntClient(t)

	hh := client.Household.Create().
		SetName("Keluarga Prasetyo").
		SetDefaultCurrency("IDR").
		SaveX(ctx)
	user := uuid.New()
	client.HouseholdMember.Create().
		SetHouseholdID(hh.ID).
		SetUserID(user).
		SaveX(ctx)
	acct := client.Account.Create().
		SetHouseholdID(hh.ID).
		SetName("Kas Utama").
		SetCurrencyCode("IDR").
		SaveX(ctx)
	doc := client.Document.Create().
		SetHouseholdID(hh.ID).
		SetFileName("struk.jpg").
		SetMimeType("image/jpeg").
		SetFileSize(1024).
		SetDocumentType(string(constants.DocTypeReceipt)).
		SetStoragePath(hh.ID.String() + "/abc123.jpg").
		SetUploadedBy(user).
		SaveX(ctx)
	ocr := client.OcrResult.Create().
		SetDocumentID(doc.ID).
		SetDocumentType(string(constants.DocTypeReceipt)).
		SetConfidence(0.9).
		SetRawText("TOKO SUMBER REZEKI").
		SetEngineName("tesseract").
		SaveX(ctx)
	sugg := client.Suggestion.Create().
		SetOcrResultID(ocr.ID).
		SetDocumentID(doc.ID).
		SetDescription("TOKO SUMBER REZEKI").
		SetAmount(amount).
		SetCurrencyCode("IDR").
		SetTxDate(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)).
		SetConfidence(0.9).
		SetSourceType(string(constants.SourceReceipt)).
		SaveX(ctx)

	return &fixture{client: client, household: hh.ID, user: user, account: acct, suggestion: sugg}
}

func TestApproveExpense(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, -64380)
	w := NewWriter(f.client, nil)

	txn, err := w.Approve(ctx, ApproveParams{
		SuggestionID: f.suggestion.ID,
		AccountID:    f.account.ID,
		UserID:       f.user,
	})
	if err != nil {
		t.Fatalf("Approve() error = %v", err)
	}
	if txn.Flow != string(constants.FlowExpense) {
		t.Errorf("flow = %q, want EXPENSE", txn.Flow)
	}
	if txn.Amount != 64380 {
		t.Errorf("amount = %v, want absolute 64380", txn.Amount)
	}

	entry := f.client.LedgerEntry.Query().
		Where(ledgerentry.TransactionID(txn.ID)).
		OnlyX(ctx)
	if entry.EntryType != string(constants.EntryCredit) {
		t.Errorf("entry_type = %q, want CREDIT for an outflow", entry.EntryType)
	}
	if entry.AccountID != f.account.ID {
		t.Errorf("entry account = %v, want %v", entry.AccountID, f.account.ID)
	}

	sugg := f.client.Suggestion.GetX(ctx, f.suggestion.ID)
	if !sugg.Approved {
		t.Error("suggestion not flipped to approved")
	}
	if sugg.TransactionID == nil || *sugg.TransactionID != txn.ID {
		t.Error("suggestion not linked to the created transaction")
	}
}

func TestApproveIncomeIsDebit(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 5000000)
	w := NewWriter(f.client, nil)

	txn, err := w.Approve(ctx, ApproveParams{
		SuggestionID: f.suggestion.ID,
		AccountID:    f.account.ID,
		UserID:       f.user,
	})
	if err != nil {
		t.Fatalf("Approve() error = %v", err)
	}
	if txn.Flow != string(constants.FlowIncome) {
		t.Errorf("flow = %q, want INCOME", txn.Flow)
	}
	entry := f.client.LedgerEntry.Query().
		Where(ledgerentry.TransactionID(txn.ID)).
		OnlyX(ctx)
	if entry.EntryType != string(constants.EntryDebit) {
		t.Errorf("entry_type = %q, want DEBIT for an inflow", entry.EntryType)
	}
}

func TestApproveTwiceFails(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, -10000)
	w := NewWriter(f.client, nil)

	p := ApproveParams{SuggestionID: f.suggestion.ID, AccountID: f.account.ID, UserID: f.user}
	if _, err := w.Approve(ctx, p); err != nil {
		t.Fatalf("first Approve() error = %v", err)
	}
	_, err := w.Approve(ctx, p)
	if !common.IsCode(err, common.CodeAlreadyApproved) {
		t.Errorf("second Approve() error = %v, want ALREADY_APPROVED", err)
	}
	// still exactly one transaction
	if n := f.client.Transaction.Query().CountX(ctx); n != 1 {
		t.Errorf("transaction count = %d, want 1", n)
	}
}

func TestApproveConcurrent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, -10000)
	w := NewWriter(f.client, nil)
	p := ApproveParams{SuggestionID: f.suggestion.ID, AccountID: f.account.ID, UserID: f.user}

	var wg sync.WaitGroup
	errs := make([]error, 4)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = w.Approve(ctx, p)
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
		} else if !common.IsCode(err, common.CodeAlreadyApproved) {
			t.Errorf("unexpected error: %v", err)
		}
	}
	if wins != 1 {
		t.Errorf("winners = %d, want exactly 1", wins)
	}
	if n := f.client.Transaction.Query().CountX(ctx); n != 1 {
		t.Errorf("transaction count = %d, want 1", n)
	}
}

func TestApproveInactiveAccount(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, -10000)
	f.client.Account.UpdateOneID(f.account.ID).SetIsActive(false).SaveX(ctx)
	w := NewWriter(f.client, nil)

	_, err := w.Approve(ctx, ApproveParams{SuggestionID: f.suggestion.ID, AccountID: f.account.ID, UserID: f.user})
	if !common.IsCode(err, common.CodeInvalidState) {
		t.Errorf("error = %v, want INVALID_STATE", err)
	}
	if f.client.Suggestion.GetX(ctx, f.suggestion.ID).Approved {
		t.Error("suggestion must stay unapproved after a rejected approval")
	}
}

func TestApproveZeroAmount(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, -10000)
	w := NewWriter(f.client, nil)

	zero := 0.0
	_, err := w.Approve(ctx, ApproveParams{
		SuggestionID: f.suggestion.ID,
		AccountID:    f.account.ID,
		UserID:       f.user,
		Corrections:  &Corrections{Amount: &zero},
	})
	if !common.IsCode(err, common.CodeInvalidAmount) {
		t.Errorf("error = %v, want INVALID_AMOUNT", err)
	}
}

func TestApproveNonMemberDenied(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, -10000)
	w := NewWriter(f.client, nil)

	_, err := w.Approve(ctx, ApproveParams{SuggestionID: f.suggestion.ID, AccountID: f.account.ID, UserID: uuid.New()})
	if !common.IsCode(err, common.CodeDenied) {
		t.Errorf("error = %v, want DENIED", err)
	}
}

func TestApproveForeignAccountLooksMissing(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, -10000)
	other := f.client.Household.Create().SetName("Tetangga").SaveX(ctx)
	foreign := f.client.Account.Create().
		SetHouseholdID(other.ID).
		SetName("Rekening Lain").
		SetCurrencyCode("IDR").
		SaveX(ctx)
	w := NewWriter(f.client, nil)

	_, err := w.Approve(ctx, ApproveParams{SuggestionID: f.suggestion.ID, AccountID: foreign.ID, UserID: f.user})
	if !common.IsCode(err, common.CodeNotFound) {
		t.Errorf("error = %v, want NOT_FOUND", err)
	}
}

func TestApproveCorrections(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, -64380)
	w := NewWriter(f.client, nil)

	desc := "Belanja mingguan"
	amount := -60000.0
	txDate := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	txn, err := w.Approve(ctx, ApproveParams{
		SuggestionID: f.suggestion.ID,
		AccountID:    f.account.ID,
		UserID:       f.user,
		Corrections:  &Corrections{Description: &desc, Amount: &amount, TxDate: &txDate},
	})
	if err != nil {
		t.Fatalf("Approve() error = %v", err)
	}
	if txn.Description != desc {
		t.Errorf("description = %q, want correction applied", txn.Description)
	}
	if txn.Amount != 60000 {
		t.Errorf("amount = %v, want corrected 60000", txn.Amount)
	}
	if !txn.TxDate.Equal(txDate) {
		t.Errorf("tx_date = %v, want %v", txn.TxDate, txDate)
	}
}

func TestApproveMissingSuggestion(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, -10000)
	w := NewWriter(f.client, nil)

	_, err := w.Approve(ctx, ApproveParams{SuggestionID: uuid.New(), AccountID: f.account.ID, UserID: f.user})
	if !common.IsCode(err, common.CodeNotFound) {
		t.Errorf("error = %v, want NOT_FOUND", err)
	}
}
