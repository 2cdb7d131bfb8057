// Package pipeline drives a document from PENDING through extraction to
// a terminal status, with bounded retries on transient failures.
package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/prasetyo-adi/kas-keluarga/constants"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent"
	"github.com/prasetyo-adi/kas-keluarga/internal/common"
	"github.com/prasetyo-adi/kas-keluarga/internal/extract"
	"github.com/prasetyo-adi/kas-keluarga/internal/repository"
	"github.com/prasetyo-adi/kas-keluarga/internal/suggest"
)

// BlobStore is the read side of document storage.
type BlobStore interface {
	Retrieve(token string) ([]byte, error)
}

// SuggestionGenerator turns extracted data into candidate transactions.
type SuggestionGenerator interface {
	Generate(ctx context.Context, householdID uuid.UUID, in suggest.Input) ([]suggest.Suggestion, error)
}

// Engines maps document categories to their extraction engine.
// Receipts, invoices and uncategorized documents share the receipt
// engine.
type Engines struct {
	Receipt       extract.Engine
	BankStatement extract.Engine
}

func (e Engines) forType(t constants.DocumentType) extract.Engine {
	if t == constants.DocTypeBankStatement {
		return e.BankStatement
	}
	return e.Receipt
}

type Orchestrator struct {
	docs       repository.DocumentRepository
	results    repository.OCRResultRepository
	suggs      repository.SuggestionRepository
	households repository.HouseholdRepository
	store      BlobStore
	engines    Engines
	gen        SuggestionGenerator
	schema     *jsonschema.Schema
	cfg        common.PipelineConfig
	sleeper    Sleeper
	logger     *slog.Logger
}

func NewOrchestrator(
	docs repository.DocumentRepository,
	results repository.OCRResultRepository,
	suggs repository.SuggestionRepository,
	households repository.HouseholdRepository,
	store BlobStore,
	engines Engines,
	gen SuggestionGenerator,
	cfg common.PipelineConfig,
	logger *slog.Logger,
) (*Orchestrator, error) {
	schema, err := compileSchema()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		docs:       docs,
		results:    results,
		suggs:      suggs,
		households: households,
		store:      store,
		engines:    engines,
		gen:        gen,
		schema:     schema,
		cfg:        cfg,
		sleeper:    realSleeper{},
		logger:     logger.With("component", "pipeline"),
	}, nil
}

// Process runs the document through extraction. The document moves to
// PROCESSING up front; on success it lands in COMPLETED (or
// REQUIRES_REVIEW when low-confidence flagging is on), on exhausted or
// non-retryable failure in FAILED with the reason recorded.
func (o *Orchestrator) Process(ctx context.Context, documentID uuid.UUID, force bool) error {
	doc, err := o.docs.GetByID(ctx, documentID)
	if err != nil {
		return err
	}
	if err := o.docs.MarkProcessing(ctx, doc.ID, force); err != nil {
		return err
	}
	o.logger.Info("processing document",
		"document_id", doc.ID,
		"document_type", doc.DocumentType,
		"force", force)

	var lastErr error
	for attempt := 1; attempt <= o.cfg.MaxAttempts; attempt++ {
		lastErr = o.runOnce(ctx, doc)
		if lastErr == nil {
			return nil
		}
		if !common.IsRetryable(lastErr) {
			break
		}
		if attempt == o.cfg.MaxAttempts {
			break
		}
		backoff := time.Duration(1<<attempt) * time.Second
		o.logger.Warn("extraction attempt failed, retrying",
			"document_id", doc.ID,
			"attempt", attempt,
			"backoff", backoff,
			"error", lastErr)
		if err := o.sleeper.Sleep(ctx, backoff); err != nil {
			lastErr = common.TimeoutError("processing cancelled during backoff", err)
			break
		}
	}

	o.logger.Error("document processing failed",
		"document_id", doc.ID,
		"error", lastErr)
	if err := o.docs.MarkFailed(ctx, doc.ID, lastErr.Error()); err != nil {
		o.logger.Error("failed to record failure", "document_id", doc.ID, "error", err)
	}
	return lastErr
}

// runOnce is a single extraction attempt.
func (o *Orchestrator) runOnce(ctx context.Context, doc *ent.Document) error {
	data, err := o.store.Retrieve(doc.StoragePath)
	if err != nil {
		return err
	}

	docType, _ := constants.ParseDocumentType(doc.DocumentType)
	engine := o.engines.forType(docType)

	ectx, cancel := context.WithTimeout(ctx, o.cfg.ProcessTimeout)
	defer cancel()
	res, err := engine.Extract(ectx, data, doc.MimeType)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ectx.Err(), context.DeadlineExceeded) {
			return common.TimeoutError(
				fmt.Sprintf("extraction exceeded %s", o.cfg.ProcessTimeout), err)
		}
		return err
	}

	payload, err := json.Marshal(res.Data)
	if err != nil {
		return common.InternalError("marshal extracted data", err)
	}
	if err := validatePayload(o.schema, payload); err != nil {
		return common.ExtractionError("extracted data failed validation", err)
	}

	ocr, err := o.results.Create(ctx, repository.CreateOCRResultParams{
		DocumentID:    doc.ID,
		DocumentType:  doc.DocumentType,
		Confidence:    res.Confidence,
		RawText:       res.RawText,
		ExtractedJSON: payload,
		EngineName:    res.Engine,
		Format:        res.Format,
		PageCount:     res.Pages,
		DurationMS:    res.Duration.Milliseconds(),
	})
	if err != nil {
		return err
	}

	currency := "IDR"
	if hh, err := o.households.GetByID(ctx, doc.HouseholdID); err == nil {
		currency = hh.DefaultCurrency
	}
	suggestions, err := o.gen.Generate(ctx, doc.HouseholdID, suggest.Input{
		DocumentType: docType,
		Data:         res.Data,
		Currency:     currency,
	})
	if err != nil {
		return err
	}
	if _, err := o.suggs.CreateBatch(ctx, ocr.ID, doc.ID, suggestions); err != nil {
		return err
	}

	status := constants.StatusCompleted
	if o.cfg.FlagLowConfidence && res.Confidence < o.cfg.ReviewThreshold {
		status = constants.StatusRequiresReview
	}
	if err := o.docs.MarkCompleted(ctx, doc.ID, status); err != nil {
		return err
	}
	o.logger.Info("document processed",
		"document_id", doc.ID,
		"status", status,
		"confidence", res.Confidence,
		"suggestions", len(suggestions))
	return nil
}
