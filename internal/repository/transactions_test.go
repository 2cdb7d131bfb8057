package repository

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/prasetyo-adi/kas-keluarga/constants"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent"
	"github.com/prasetyo-adi/kas-keluarga/internal/testutil"
)

type ledgerSeed struct {
	client    *ent.Client
	household *ent.Household
	account   *ent.Account
	groceries *ent.Category
}

func seedLedger(t *testing.T) *ledgerSeed {
	t.Helper()
	ctx := context.Background()
	client := testutil.NewEntClient(t)
	hh := client.Household.Create().SetName("Keluarga").SaveX(ctx)
	acct := client.Account.Create().
		SetHouseholdID(hh.ID).
		SetName("Kas Utama").
		SetCurrencyCode("IDR").
		SaveX(ctx)
	cat := client.Category.Create().
		SetHouseholdID(hh.ID).
		SetName("Groceries").
		SaveX(ctx)
	return &ledgerSeed{client: client, household: hh, account: acct, groceries: cat}
}

func (s *ledgerSeed) addTransaction(t *testing.T, desc, merchant, currency string, amount float64, flow constants.TransactionFlow, txDate time.Time, category *uuid.UUID) *ent.Transaction {
	t.Helper()
	b := s.client.Transaction.Create().
		SetHouseholdID(s.household.ID).
		SetAccountID(s.account.ID).
		SetDescription(desc).
		SetAmount(amount).
		SetCurrencyCode(currency).
		SetFlow(string(flow)).
		SetTxDate(txDate).
		SetCreatedBy(uuid.New())
	if merchant != "" {
		b.SetMerchant(merchant)
	}
	if category != nil {
		b.SetCategoryID(*category)
	}
	return b.SaveX(context.Background())
}

func TestSumByHouseholdNetsPerCurrency(t *testing.T) {
	s := seedLedger(t)
	repo := NewTransactionRepository(s.client, slog.Default())
	day := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	s.addTransaction(t, "Belanja", "INDOMARET", "IDR", 150000, constants.FlowExpense, day, nil)
	s.addTransaction(t, "Gaji", "", "IDR", 5000000, constants.FlowIncome, day, nil)
	s.addTransaction(t, "Software", "", "USD", 12, constants.FlowExpense, day, nil)

	sums, err := repo.SumByHousehold(context.Background(), s.household.ID, time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("SumByHousehold() error = %v", err)
	}
	byCurrency := make(map[string]HouseholdSum)
	for _, sum := range sums {
		byCurrency[sum.CurrencyCode] = sum
	}
	if got := byCurrency["IDR"]; got.Net != 4850000 || got.Count != 2 {
		t.Errorf("IDR = %+v, want net 4850000 over 2 transactions", got)
	}
	// currencies are never mixed into one total
	if got := byCurrency["USD"]; got.Net != -12 || got.Count != 1 {
		t.Errorf("USD = %+v, want net -12 over 1 transaction", got)
	}
}

func TestSumByHouseholdDateWindow(t *testing.T) {
	s := seedLedger(t)
	repo := NewTransactionRepository(s.client, slog.Default())

	s.addTransaction(t, "Old", "", "IDR", 100, constants.FlowExpense,
		time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), nil)
	s.addTransaction(t, "New", "", "IDR", 200, constants.FlowExpense,
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), nil)

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sums, err := repo.SumByHousehold(context.Background(), s.household.ID, from, time.Time{})
	if err != nil {
		t.Fatalf("SumByHousehold() error = %v", err)
	}
	if len(sums) != 1 || sums[0].Net != -200 || sums[0].Count != 1 {
		t.Errorf("sums = %+v, want only the 2024 transaction", sums)
	}
}

func TestHistoryCategoryForMerchant(t *testing.T) {
	s := seedLedger(t)
	h := NewTransactionHistory(s.client, slog.Default())
	day := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	s.addTransaction(t, "Belanja bulanan", "INDOMARET TEBET", "IDR", 150000,
		constants.FlowExpense, day, &s.groceries.ID)

	ref, err := h.CategoryForMerchant(context.Background(), s.household.ID, "indomaret")
	if err != nil {
		t.Fatalf("CategoryForMerchant() error = %v", err)
	}
	if ref == nil || ref.Name != "Groceries" {
		t.Fatalf("ref = %+v, want Groceries from history", ref)
	}

	ref, err = h.CategoryForMerchant(context.Background(), s.household.ID, "warung baru")
	if err != nil {
		t.Fatalf("CategoryForMerchant() error = %v", err)
	}
	if ref != nil {
		t.Errorf("ref = %+v, want nil for unseen merchant", ref)
	}
}

func TestHistoryCategoryByName(t *testing.T) {
	s := seedLedger(t)
	h := NewTransactionHistory(s.client, slog.Default())

	ref, err := h.CategoryByName(context.Background(), s.household.ID, "groceries")
	if err != nil {
		t.Fatalf("CategoryByName() error = %v", err)
	}
	if ref == nil || ref.ID != s.groceries.ID {
		t.Fatalf("ref = %+v, want the seeded category", ref)
	}

	ref, err = h.CategoryByName(context.Background(), s.household.ID, "Utilities")
	if err != nil {
		t.Fatalf("CategoryByName() error = %v", err)
	}
	if ref != nil {
		t.Errorf("ref = %+v, want nil for a missing category", ref)
	}
}
