package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/prasetyo-adi/kas-keluarga/constants"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/document"
	"github.com/prasetyo-adi/kas-keluarga/internal/common"
)

// CreateDocumentParams carries the fields set at upload time.
type CreateDocumentParams struct {
	HouseholdID  uuid.UUID
	FileName     string
	MimeType     string
	FileSize     int64
	DocumentType constants.DocumentType
	StoragePath  string
	UploadedBy   uuid.UUID
	Description  string
}

// DocumentRepository persists uploaded documents and drives their
// status transitions.
type DocumentRepository interface {
	Create(ctx context.Context, p CreateDocumentParams) (*ent.Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Document, error)
	ListByHousehold(ctx context.Context, householdID uuid.UUID) ([]*ent.Document, error)
	// MarkProcessing transitions the document into PROCESSING. Without
	// force the transition is rejected when another worker already holds
	// the document.
	MarkProcessing(ctx context.Context, id uuid.UUID, force bool) error
	MarkCompleted(ctx context.Context, id uuid.UUID, status constants.DocumentStatus) error
	MarkFailed(ctx context.Context, id uuid.UUID, reason string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type documentRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(client *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepository{client: client, logger: logger.With("component", "document_repository")}
}

func (r *documentRepository) Create(ctx context.Context, p CreateDocumentParams) (*ent.Document, error) {
	b := r.client.Document.Create().
		SetHouseholdID(p.HouseholdID).
		SetFileName(p.FileName).
		SetMimeType(p.MimeType).
		SetFileSize(p.FileSize).
		SetDocumentType(string(p.DocumentType)).
		SetStoragePath(p.StoragePath).
		SetUploadedBy(p.UploadedBy)
	if p.Description != "" {
		b.SetDescription(p.Description)
	}
	doc, err := b.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create document", "error", err, "household_id", p.HouseholdID)
		return nil, common.InternalError("create document", err)
	}
	r.logger.Info("document created", "document_id", doc.ID, "file_name", p.FileName)
	return doc, nil
}

func (r *documentRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Document, error) {
	doc, err := r.client.Document.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("document", id.String())
		}
		return nil, common.InternalError("get document", err)
	}
	return doc, nil
}

func (r *documentRepository) ListByHousehold(ctx context.Context, householdID uuid.UUID) ([]*ent.Document, error) {
	docs, err := r.client.Document.Query().
		Where(document.HouseholdID(householdID)).
		Order(ent.Desc(document.FieldUploadedAt)).
		All(ctx)
	if err != nil {
		return nil, common.InternalError("list documents", err)
	}
	return docs, nil
}

func (r *documentRepository) MarkProcessing(ctx context.Context, id uuid.UUID, force bool) error {
	q := r.client.Document.Update().
		SetStatus(string(constants.StatusProcessing)).
		ClearFailureReason()
	if force {
		q.Where(document.ID(id))
	} else {
		q.Where(document.ID(id), document.StatusNEQ(string(constants.StatusProcessing)))
	}
	n, err := q.Save(ctx)
	if err != nil {
		return common.InternalError("mark document processing", err)
	}
	if n == 0 {
		// Either the row is gone or another worker holds it.
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return &common.AppError{
			Code:    common.CodeAlreadyProcessing,
			Message: "document " + id.String() + " is already being processed",
		}
	}
	return nil
}

func (r *documentRepository) MarkCompleted(ctx context.Context, id uuid.UUID, status constants.DocumentStatus) error {
	n, err := r.client.Document.Update().
		Where(document.ID(id)).
		SetStatus(string(status)).
		SetProcessedAt(time.Now().UTC()).
		ClearFailureReason().
		Save(ctx)
	if err != nil {
		return common.InternalError("mark document completed", err)
	}
	if n == 0 {
		return common.NotFoundError("document", id.String())
	}
	return nil
}

func (r *documentRepository) MarkFailed(ctx context.Context, id uuid.UUID, reason string) error {
	n, err := r.client.Document.Update().
		Where(document.ID(id)).
		SetStatus(string(constants.StatusFailed)).
		SetFailureReason(reason).
		Save(ctx)
	if err != nil {
		return common.InternalError("mark document failed", err)
	}
	if n == 0 {
		return common.NotFoundError("document", id.String())
	}
	return nil
}

func (r *documentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Document.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return common.NotFoundError("document", id.String())
		}
		return common.InternalError("delete document", err)
	}
	return nil
}
