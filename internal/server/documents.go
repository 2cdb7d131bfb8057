package server

import (
	"context"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/prasetyo-adi/kas-keluarga/constants"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent"
	v1 "github.com/prasetyo-adi/kas-keluarga/gen/proto/kaskeluarga/v1"
	"github.com/prasetyo-adi/kas-keluarga/internal/async"
	"github.com/prasetyo-adi/kas-keluarga/internal/common"
	"github.com/prasetyo-adi/kas-keluarga/internal/ingest"
	"github.com/prasetyo-adi/kas-keluarga/internal/repository"
)

type DocumentService struct {
	v1.UnimplementedDocumentServiceServer
	ingest *ingest.Service
	docs   repository.DocumentRepository
	suggs  repository.SuggestionRepository
	queue  async.Queue
	logger *slog.Logger
}

func NewDocumentService(ing *ingest.Service, docs repository.DocumentRepository, suggs repository.SuggestionRepository, queue async.Queue, logger *slog.Logger) *DocumentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DocumentService{
		ingest: ing,
		docs:   docs,
		suggs:  suggs,
		queue:  queue,
		logger: logger,
	}
}

func (s *DocumentService) UploadDocument(ctx context.Context, req *v1.UploadDocumentRequest) (*v1.UploadDocumentResponse, error) {
	householdID, err := parseUUIDField(req.GetHouseholdId(), "household_id")
	if err != nil {
		return nil, err
	}
	uploadedBy, err := parseUUIDField(req.GetUploadedBy(), "uploaded_by")
	if err != nil {
		return nil, err
	}
	docType, ok := constants.ParseDocumentType(req.GetDocumentType())
	if !ok && strings.TrimSpace(req.GetDocumentType()) != "" {
		return nil, common.InvalidArgumentErrorf("unknown document_type %q", req.GetDocumentType())
	}

	doc, err := s.ingest.Upload(ctx, ingest.UploadRequest{
		HouseholdID:  householdID,
		UploadedBy:   uploadedBy,
		FileName:     req.GetFileName(),
		MimeType:     req.GetMimeType(),
		DocumentType: docType,
		Content:      req.GetContent(),
		Description:  req.GetDescription(),
	})
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	return &v1.UploadDocumentResponse{Document: toProtoDocument(doc)}, nil
}

func (s *DocumentService) GetDocument(ctx context.Context, req *v1.GetDocumentRequest) (*v1.GetDocumentResponse, error) {
	id, err := parseUUIDField(req.GetDocumentId(), "document_id")
	if err != nil {
		return nil, err
	}
	doc, err := s.docs.GetByID(ctx, id)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	return &v1.GetDocumentResponse{Document: toProtoDocument(doc)}, nil
}

func (s *DocumentService) ListDocuments(ctx context.Context, req *v1.ListDocumentsRequest) (*v1.ListDocumentsResponse, error) {
	householdID, err := parseUUIDField(req.GetHouseholdId(), "household_id")
	if err != nil {
		return nil, err
	}
	docs, err := s.docs.ListByHousehold(ctx, householdID)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	out := make([]*v1.Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, toProtoDocument(d))
	}
	return &v1.ListDocumentsResponse{Documents: out}, nil
}

// ProcessDocument queues extraction for the document. The status check
// happens inside the pipeline, so a queued duplicate is rejected when
// the worker picks it up.
func (s *DocumentService) ProcessDocument(ctx context.Context, req *v1.ProcessDocumentRequest) (*v1.ProcessDocumentResponse, error) {
	id, err := parseUUIDField(req.GetDocumentId(), "document_id")
	if err != nil {
		return nil, err
	}
	doc, err := s.docs.GetByID(ctx, id)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	if doc.Status == string(constants.StatusProcessing) && !req.GetForceReprocess() {
		return nil, common.GRPCStatus(common.NewAppError(common.CodeAlreadyProcessing,
			"document "+id.String()+" is already being processed", nil))
	}

	if err := s.queue.Enqueue(ctx, async.Job{
		DocumentID:  id,
		Force:       req.GetForceReprocess(),
		SubmittedAt: time.Now(),
		TraceID:     common.RequestIDFromContext(ctx),
	}); err != nil {
		return nil, common.GRPCStatus(err)
	}
	s.logger.Info("document queued for processing", "document_id", id, "force", req.GetForceReprocess())
	return &v1.ProcessDocumentResponse{Document: toProtoDocument(doc)}, nil
}

func (s *DocumentService) GetSuggestions(ctx context.Context, req *v1.GetSuggestionsRequest) (*v1.GetSuggestionsResponse, error) {
	id, err := parseUUIDField(req.GetDocumentId(), "document_id")
	if err != nil {
		return nil, err
	}
	if _, err := s.docs.GetByID(ctx, id); err != nil {
		return nil, common.GRPCStatus(err)
	}
	rows, err := s.suggs.ListByDocument(ctx, id)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	out := make([]*v1.Suggestion, 0, len(rows))
	for _, r := range rows {
		out = append(out, toProtoSuggestion(r))
	}
	return &v1.GetSuggestionsResponse{Suggestions: out}, nil
}

func parseUUIDField(raw, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, common.InvalidArgumentErrorf("%s must be a UUID", field)
	}
	return id, nil
}

func toProtoDocument(d *ent.Document) *v1.Document {
	out := &v1.Document{
		Id:           d.ID.String(),
		HouseholdId:  d.HouseholdID.String(),
		FileName:     d.FileName,
		MimeType:     d.MimeType,
		FileSize:     d.FileSize,
		DocumentType: d.DocumentType,
		Status:       d.Status,
		UploadedBy:   d.UploadedBy.String(),
		UploadedAt:   d.UploadedAt.UTC().Format(time.RFC3339),
	}
	if d.Description != nil {
		out.Description = *d.Description
	}
	if d.ProcessedAt != nil {
		out.ProcessedAt = d.ProcessedAt.UTC().Format(time.RFC3339)
	}
	if d.FailureReason != nil {
		out.FailureReason = *d.FailureReason
	}
	return out
}

func toProtoSuggestion(s *ent.Suggestion) *v1.Suggestion {
	out := &v1.Suggestion{
		Id:            s.ID.String(),
		DocumentId:    s.DocumentID.String(),
		Description:   s.Description,
		Amount:        s.Amount,
		CurrencyCode:  s.CurrencyCode,
		TxDate:        s.TxDate.Format("2006-01-02"),
		Confidence:    s.Confidence,
		SourceType:    s.SourceType,
		LineItemIndex: -1,
		Approved:      s.Approved,
	}
	if s.Merchant != nil {
		out.Merchant = *s.Merchant
	}
	if s.CategoryID != nil {
		out.CategoryId = s.CategoryID.String()
	}
	if s.CategoryName != nil {
		out.CategoryName = *s.CategoryName
	}
	if s.LineItemIndex != nil {
		out.LineItemIndex = int32(*s.LineItemIndex)
	}
	if s.TransactionID != nil {
		out.TransactionId = s.TransactionID.String()
	}
	return out
}
