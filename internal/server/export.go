package server

import (
	"context"
	"time"

	"log/slog"

	v1 "github.com/prasetyo-adi/kas-keluarga/gen/proto/kaskeluarga/v1"
	"github.com/prasetyo-adi/kas-keluarga/internal/common"
	"github.com/prasetyo-adi/kas-keluarga/internal/export"
)

type ExportService struct {
	v1.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportService(svc *export.Service, logger *slog.Logger) *ExportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportService{svc: svc, logger: logger}
}

func (s *ExportService) ExportTransactions(ctx context.Context, req *v1.ExportTransactionsRequest) (*v1.ExportTransactionsResponse, error) {
	householdID, err := parseUUIDField(req.GetHouseholdId(), "household_id")
	if err != nil {
		return nil, err
	}

	var fromPtr, toPtr *time.Time
	if t, err := parseDateField(req.GetFromDate(), "from_date"); err != nil {
		return nil, err
	} else if !t.IsZero() {
		fromPtr = &t
	}
	if t, err := parseDateField(req.GetToDate(), "to_date"); err != nil {
		return nil, err
	} else if !t.IsZero() {
		toPtr = &t
	}

	xlsx, err := s.svc.ExportTransactionsXLSX(ctx, householdID, fromPtr, toPtr)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "household_id", householdID, "err", err)
		return nil, common.GRPCStatus(err)
	}
	return &v1.ExportTransactionsResponse{Xlsx: xlsx}, nil
}
