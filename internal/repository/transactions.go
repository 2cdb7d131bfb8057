package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/prasetyo-adi/kas-keluarga/constants"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/transaction"
	"github.com/prasetyo-adi/kas-keluarga/internal/common"
	"github.com/prasetyo-adi/kas-keluarga/internal/suggest"
)

// HouseholdSum is a signed net total over one currency. Currencies are
// never mixed; each gets its own row.
type HouseholdSum struct {
	CurrencyCode string
	Net          float64
	Count        int
}

type TransactionRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Transaction, error)
	ListByHousehold(ctx context.Context, householdID uuid.UUID, from, to time.Time) ([]*ent.Transaction, error)
	// SumByHousehold nets EXPENSE against INCOME per currency over the
	// given date range.
	SumByHousehold(ctx context.Context, householdID uuid.UUID, from, to time.Time) ([]HouseholdSum, error)
}

type transactionRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewTransactionRepository(client *ent.Client, logger *slog.Logger) TransactionRepository {
	return &transactionRepository{client: client, logger: logger.With("component", "transaction_repository")}
}

func (r *transactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Transaction, error) {
	t, err := r.client.Transaction.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("transaction", id.String())
		}
		return nil, common.InternalError("get transaction", err)
	}
	return t, nil
}

func (r *transactionRepository) ListByHousehold(ctx context.Context, householdID uuid.UUID, from, to time.Time) ([]*ent.Transaction, error) {
	q := r.client.Transaction.Query().
		Where(transaction.HouseholdID(householdID))
	if !from.IsZero() {
		q.Where(transaction.TxDateGTE(from))
	}
	if !to.IsZero() {
		q.Where(transaction.TxDateLTE(to))
	}
	rows, err := q.Order(ent.Desc(transaction.FieldTxDate), ent.Desc(transaction.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, common.InternalError("list transactions", err)
	}
	return rows, nil
}

func (r *transactionRepository) SumByHousehold(ctx context.Context, householdID uuid.UUID, from, to time.Time) ([]HouseholdSum, error) {
	rows, err := r.ListByHousehold(ctx, householdID, from, to)
	if err != nil {
		return nil, err
	}
	totals := make(map[string]*HouseholdSum)
	order := make([]string, 0, 2)
	for _, t := range rows {
		sum, ok := totals[t.CurrencyCode]
		if !ok {
			sum = &HouseholdSum{CurrencyCode: t.CurrencyCode}
			totals[t.CurrencyCode] = sum
			order = append(order, t.CurrencyCode)
		}
		if t.Flow == string(constants.FlowExpense) {
			sum.Net -= t.Amount
		} else {
			sum.Net += t.Amount
		}
		sum.Count++
	}
	out := make([]HouseholdSum, 0, len(order))
	for _, code := range order {
		out = append(out, *totals[code])
	}
	return out, nil
}

// TransactionHistory adapts the ledger tables to the suggestion
// generator's read interface.
type TransactionHistory struct {
	client *ent.Client
	logger *slog.Logger
}

func NewTransactionHistory(client *ent.Client, logger *slog.Logger) *TransactionHistory {
	return &TransactionHistory{client: client, logger: logger.With("component", "transaction_history")}
}

func (h *TransactionHistory) CategoryForMerchant(ctx context.Context, householdID uuid.UUID, needle string) (*suggest.CategoryRef, error) {
	if needle == "" {
		return nil, nil
	}
	t, err := h.client.Transaction.Query().
		Where(
			transaction.HouseholdID(householdID),
			transaction.CategoryIDNotNil(),
			transaction.Or(
				transaction.MerchantContainsFold(needle),
				transaction.DescriptionContainsFold(needle),
			),
		).
		Order(ent.Desc(transaction.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, common.InternalError("lookup merchant history", err)
	}
	cat, err := t.QueryCategory().Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, common.InternalError("load history category", err)
	}
	return &suggest.CategoryRef{ID: cat.ID, Name: cat.Name}, nil
}

func (h *TransactionHistory) CategoryByName(ctx context.Context, householdID uuid.UUID, name string) (*suggest.CategoryRef, error) {
	cat, err := NewCategoryRepository(h.client, h.logger).FindByName(ctx, householdID, name)
	if err != nil {
		if common.IsCode(err, common.CodeNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &suggest.CategoryRef{ID: cat.ID, Name: cat.Name}, nil
}
