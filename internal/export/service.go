package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/prasetyo-adi/kas-keluarga/constants"
	"github.com/prasetyo-adi/kas-keluarga/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	transactions repository.TransactionRepository
	accounts     repository.AccountRepository
	categories   repository.CategoryRepository
	logger       *slog.Logger
}

func NewService(transactions repository.TransactionRepository, accounts repository.AccountRepository, categories repository.CategoryRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		transactions: transactions,
		accounts:     accounts,
		categories:   categories,
		logger:       logger,
	}
}

// ExportTransactionsXLSX returns an XLSX workbook (as bytes) for the given
// household and date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all household transactions.
func (s *Service) ExportTransactionsXLSX(ctx context.Context, householdID uuid.UUID, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	var fromDate, toDate time.Time
	if from != nil {
		fromDate = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	}
	if to != nil {
		toDate = time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	}
	if from != nil && to == nil {
		today := time.Now().UTC()
		toDate = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	}

	recs, err := s.transactions.ListByHousehold(ctx, householdID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}

	accountNames := make(map[uuid.UUID]string)
	for _, a := range mustList(s.accounts.ListByHousehold(ctx, householdID)) {
		accountNames[a.ID] = a.Name
	}
	categoryNames := make(map[uuid.UUID]string)
	for _, c := range mustList(s.categories.ListByHousehold(ctx, householdID)) {
		categoryNames[c.ID] = c.Name
	}

	f := excelize.NewFile()
	const sheet = "Transactions"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Date",
		"Description",
		"Merchant",
		"Category",
		"Account",
		"Amount",
		"Currency",
		"Flow",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range recs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, r.TxDate.Format("2006-01-02"))
		write(2, truncate(r.Description, 140))
		if r.Merchant != nil {
			write(3, *r.Merchant)
		}
		if r.CategoryID != nil {
			write(4, categoryNames[*r.CategoryID])
		}
		write(5, accountNames[r.AccountID])

		// Amount is stored absolute; re-apply the sign for the sheet.
		amount := r.Amount
		if r.Flow == string(constants.FlowExpense) {
			amount = -amount
		}
		write(6, amount)
		write(7, r.CurrencyCode)
		write(8, r.Flow)

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 12) // date
	_ = f.SetColWidth(sheet, "B", "B", 48) // description
	_ = f.SetColWidth(sheet, "C", "C", 28) // merchant
	_ = f.SetColWidth(sheet, "D", "E", 22) // category, account
	_ = f.SetColWidth(sheet, "F", "F", 14) // amount

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"household_id", householdID.String(),
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// mustList swallows lookup errors: missing names degrade to blank cells
// rather than failing the export.
func mustList[T any](rows []T, err error) []T {
	if err != nil {
		return nil
	}
	return rows
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
