package server

import (
	"context"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/prasetyo-adi/kas-keluarga/gen/ent"
	v1 "github.com/prasetyo-adi/kas-keluarga/gen/proto/kaskeluarga/v1"
	"github.com/prasetyo-adi/kas-keluarga/internal/common"
	"github.com/prasetyo-adi/kas-keluarga/internal/ledger"
	"github.com/prasetyo-adi/kas-keluarga/internal/repository"
)

type ApprovalService struct {
	v1.UnimplementedApprovalServiceServer
	writer       *ledger.Writer
	transactions repository.TransactionRepository
	logger       *slog.Logger
}

func NewApprovalService(writer *ledger.Writer, transactions repository.TransactionRepository, logger *slog.Logger) *ApprovalService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ApprovalService{
		writer:       writer,
		transactions: transactions,
		logger:       logger,
	}
}

func (s *ApprovalService) ApproveSuggestion(ctx context.Context, req *v1.ApproveSuggestionRequest) (*v1.ApproveSuggestionResponse, error) {
	suggestionID, err := parseUUIDField(req.GetSuggestionId(), "suggestion_id")
	if err != nil {
		return nil, err
	}
	accountID, err := parseUUIDField(req.GetAccountId(), "account_id")
	if err != nil {
		return nil, err
	}
	userID, err := parseUUIDField(req.GetUserId(), "user_id")
	if err != nil {
		return nil, err
	}
	corrections, err := parseCorrections(req.GetCorrections())
	if err != nil {
		return nil, err
	}

	txn, err := s.writer.Approve(ctx, ledger.ApproveParams{
		SuggestionID: suggestionID,
		AccountID:    accountID,
		UserID:       userID,
		Corrections:  corrections,
	})
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	return &v1.ApproveSuggestionResponse{Transaction: toProtoTransaction(txn)}, nil
}

func (s *ApprovalService) GetHouseholdSummary(ctx context.Context, req *v1.GetHouseholdSummaryRequest) (*v1.GetHouseholdSummaryResponse, error) {
	householdID, err := parseUUIDField(req.GetHouseholdId(), "household_id")
	if err != nil {
		return nil, err
	}
	from, err := parseDateField(req.GetFromDate(), "from_date")
	if err != nil {
		return nil, err
	}
	to, err := parseDateField(req.GetToDate(), "to_date")
	if err != nil {
		return nil, err
	}

	sums, err := s.transactions.SumByHousehold(ctx, householdID, from, to)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	out := make([]*v1.CurrencyTotal, 0, len(sums))
	for _, sum := range sums {
		out = append(out, &v1.CurrencyTotal{
			CurrencyCode:     sum.CurrencyCode,
			Net:              sum.Net,
			TransactionCount: int32(sum.Count),
		})
	}
	return &v1.GetHouseholdSummaryResponse{Totals: out}, nil
}

func parseCorrections(c *v1.SuggestionCorrections) (*ledger.Corrections, error) {
	if c == nil {
		return nil, nil
	}
	out := &ledger.Corrections{
		Description: c.Description,
		Amount:      c.Amount,
		Merchant:    c.Merchant,
	}
	if c.TxDate != nil {
		t, err := time.Parse("2006-01-02", strings.TrimSpace(*c.TxDate))
		if err != nil {
			return nil, common.InvalidArgumentError("corrections.tx_date must be YYYY-MM-DD")
		}
		out.TxDate = &t
	}
	if c.CategoryId != nil {
		id, err := uuid.Parse(strings.TrimSpace(*c.CategoryId))
		if err != nil {
			return nil, common.InvalidArgumentError("corrections.category_id must be a UUID")
		}
		out.CategoryID = &id
	}
	return out, nil
}

// parseDateField parses an optional YYYY-MM-DD field; empty means unset.
func parseDateField(raw, field string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, common.InvalidArgumentErrorf("%s must be YYYY-MM-DD", field)
	}
	return t, nil
}

func toProtoTransaction(t *ent.Transaction) *v1.Transaction {
	out := &v1.Transaction{
		Id:           t.ID.String(),
		HouseholdId:  t.HouseholdID.String(),
		AccountId:    t.AccountID.String(),
		Description:  t.Description,
		Amount:       t.Amount,
		CurrencyCode: t.CurrencyCode,
		Flow:         t.Flow,
		TxDate:       t.TxDate.Format("2006-01-02"),
	}
	if t.CategoryID != nil {
		out.CategoryId = t.CategoryID.String()
	}
	if t.Merchant != nil {
		out.Merchant = *t.Merchant
	}
	return out
}
