// Package ingest accepts document uploads: validation, storage and the
// PENDING database row, then a queued processing job.
package ingest

import (
	"context"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/prasetyo-adi/kas-keluarga/constants"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent"
	"github.com/prasetyo-adi/kas-keluarga/internal/async"
	"github.com/prasetyo-adi/kas-keluarga/internal/common"
	"github.com/prasetyo-adi/kas-keluarga/internal/repository"
)

// BlobStore is the write side of document storage.
type BlobStore interface {
	Store(data []byte, householdID, ext string) (string, error)
	Delete(token string) error
}

// UploadRequest carries one upload.
type UploadRequest struct {
	HouseholdID  uuid.UUID
	UploadedBy   uuid.UUID
	FileName     string
	MimeType     string
	DocumentType constants.DocumentType
	Content      []byte
	Description  string
}

// Service handles upload business logic.
type Service struct {
	store      BlobStore
	docs       repository.DocumentRepository
	households repository.HouseholdRepository
	queue      async.Queue
	logger     *slog.Logger
}

func NewService(store BlobStore, docs repository.DocumentRepository, households repository.HouseholdRepository, queue async.Queue, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:      store,
		docs:       docs,
		households: households,
		queue:      queue,
		logger:     logger.With("component", "ingest"),
	}
}

// Upload validates the request, writes the bytes to storage, records the
// PENDING document and queues it for processing. A failed database write
// removes the stored bytes again.
func (s *Service) Upload(ctx context.Context, req UploadRequest) (*ent.Document, error) {
	if err := validateUpload(req); err != nil {
		s.logger.Warn("upload rejected",
			"household_id", req.HouseholdID,
			"file_name", req.FileName,
			"error", err)
		return nil, err
	}

	member, err := s.households.IsMember(ctx, req.HouseholdID, req.UploadedBy)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, common.NewAppError(common.CodeDenied,
			"user is not a member of the household", nil)
	}

	ext := constants.ExtensionFromMIME(req.MimeType)
	token, err := s.store.Store(req.Content, req.HouseholdID.String(), ext)
	if err != nil {
		return nil, err
	}

	doc, err := s.docs.Create(ctx, repository.CreateDocumentParams{
		HouseholdID:  req.HouseholdID,
		FileName:     strings.TrimSpace(req.FileName),
		MimeType:     req.MimeType,
		FileSize:     int64(len(req.Content)),
		DocumentType: req.DocumentType,
		StoragePath:  token,
		UploadedBy:   req.UploadedBy,
		Description:  req.Description,
	})
	if err != nil {
		// best effort: do not leave orphaned bytes behind
		if derr := s.store.Delete(token); derr != nil {
			s.logger.Error("failed to clean up stored document", "token", token, "error", derr)
		}
		return nil, err
	}

	if err := s.queue.Enqueue(ctx, async.Job{
		DocumentID:  doc.ID,
		SubmittedAt: time.Now(),
		TraceID:     common.RequestIDFromContext(ctx),
	}); err != nil {
		s.logger.Error("failed to enqueue document", "document_id", doc.ID, "error", err)
	}

	s.logger.Info("document uploaded",
		"document_id", doc.ID,
		"household_id", req.HouseholdID,
		"file_name", doc.FileName,
		"size_bytes", doc.FileSize)
	return doc, nil
}
