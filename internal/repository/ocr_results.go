package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/prasetyo-adi/kas-keluarga/gen/ent"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/ocrresult"
	"github.com/prasetyo-adi/kas-keluarga/internal/common"
)

type CreateOCRResultParams struct {
	DocumentID    uuid.UUID
	DocumentType  string
	Confidence    float32
	RawText       string
	ExtractedJSON json.RawMessage
	EngineName    string
	Format        string
	PageCount     int
	DurationMS    int64
}

type OCRResultRepository interface {
	Create(ctx context.Context, p CreateOCRResultParams) (*ent.OcrResult, error)
	// LatestByDocument returns the newest result for the document, which
	// is the authoritative one after a reprocess.
	LatestByDocument(ctx context.Context, documentID uuid.UUID) (*ent.OcrResult, error)
}

type ocrResultRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewOCRResultRepository(client *ent.Client, logger *slog.Logger) OCRResultRepository {
	return &ocrResultRepository{client: client, logger: logger.With("component", "ocr_result_repository")}
}

func (r *ocrResultRepository) Create(ctx context.Context, p CreateOCRResultParams) (*ent.OcrResult, error) {
	res, err := r.client.OcrResult.Create().
		SetDocumentID(p.DocumentID).
		SetDocumentType(p.DocumentType).
		SetConfidence(p.Confidence).
		SetRawText(p.RawText).
		SetExtractedJSON(p.ExtractedJSON).
		SetEngineName(p.EngineName).
		SetFormat(p.Format).
		SetPageCount(p.PageCount).
		SetDurationMs(p.DurationMS).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create ocr result", "error", err, "document_id", p.DocumentID)
		return nil, common.InternalError("create ocr result", err)
	}
	return res, nil
}

func (r *ocrResultRepository) LatestByDocument(ctx context.Context, documentID uuid.UUID) (*ent.OcrResult, error) {
	res, err := r.client.OcrResult.Query().
		Where(ocrresult.DocumentID(documentID)).
		Order(ent.Desc(ocrresult.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("ocr result for document", documentID.String())
		}
		return nil, common.InternalError("get ocr result", err)
	}
	return res, nil
}
