package pipeline

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/prasetyo-adi/kas-keluarga/constants"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent"
	"github.com/prasetyo-adi/kas-keluarga/internal/common"
	"github.com/prasetyo-adi/kas-keluarga/internal/extract"
	"github.com/prasetyo-adi/kas-keluarga/internal/repository"
	"github.com/prasetyo-adi/kas-keluarga/internal/suggest"
)

const fixtureReceipt = `TOKO SUMBER REZEKI
Jl. Sudirman No. 12 Jakarta
Telp 081234567890

02/01/2024

2 Indomie Goreng  7.000
1 Teh Botol  5.000

Subtotal 12.000
TOTAL 12.000
Terima kasih`

// --- fakes ---

type fakeDocs struct {
	mu       sync.Mutex
	doc      *ent.Document
	statuses []string
	failure  string
}

func newFakeDocs(docType constants.DocumentType, status constants.DocumentStatus) *fakeDocs {
	return &fakeDocs{doc: &ent.Document{
		ID:           uuid.New(),
		HouseholdID:  uuid.New(),
		FileName:     "struk.jpg",
		MimeType:     "image/jpeg",
		DocumentType: string(docType),
		Status:       string(status),
		StoragePath:  "h1/abc123.jpg",
	}}
}

func (f *fakeDocs) Create(ctx context.Context, p repository.CreateDocumentParams) (*ent.Document, error) {
	return f.doc, nil
}

func (f *fakeDocs) GetByID(ctx context.Context, id uuid.UUID) (*ent.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if id != f.doc.ID {
		return nil, common.NotFoundError("document", id.String())
	}
	cp := *f.doc
	return &cp, nil
}

func (f *fakeDocs) ListByHousehold(ctx context.Context, householdID uuid.UUID) ([]*ent.Document, error) {
	return []*ent.Document{f.doc}, nil
}

func (f *fakeDocs) MarkProcessing(ctx context.Context, id uuid.UUID, force bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.doc.Status == string(constants.StatusProcessing) && !force {
		return common.NewAppError(common.CodeAlreadyProcessing, "document is already being processed", nil)
	}
	f.setStatus(constants.StatusProcessing)
	return nil
}

func (f *fakeDocs) MarkCompleted(ctx context.Context, id uuid.UUID, status constants.DocumentStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setStatus(status)
	return nil
}

func (f *fakeDocs) MarkFailed(ctx context.Context, id uuid.UUID, reason string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setStatus(constants.StatusFailed)
	f.failure = reason
	return nil
}

func (f *fakeDocs) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakeDocs) setStatus(s constants.DocumentStatus) {
	f.doc.Status = string(s)
	f.statuses = append(f.statuses, string(s))
}

type fakeResults struct {
	mu      sync.Mutex
	created []repository.CreateOCRResultParams
}

func (f *fakeResults) Create(ctx context.Context, p repository.CreateOCRResultParams) (*ent.OcrResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, p)
	return &ent.OcrResult{ID: uuid.New(), DocumentID: p.DocumentID, Confidence: p.Confidence}, nil
}

func (f *fakeResults) LatestByDocument(ctx context.Context, documentID uuid.UUID) (*ent.OcrResult, error) {
	return nil, common.NotFoundError("ocr result for document", documentID.String())
}

type fakeSuggs struct {
	mu      sync.Mutex
	batches [][]suggest.Suggestion
}

func (f *fakeSuggs) CreateBatch(ctx context.Context, ocrResultID, documentID uuid.UUID, items []suggest.Suggestion) ([]*ent.Suggestion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.batches = append(f.batches, items)
	return nil, nil
}

func (f *fakeSuggs) GetByID(ctx context.Context, id uuid.UUID) (*ent.Suggestion, error) {
	return nil, common.NotFoundError("suggestion", id.String())
}

func (f *fakeSuggs) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]*ent.Suggestion, error) {
	return nil, nil
}

type fakeHouseholds struct{}

func (fakeHouseholds) GetByID(ctx context.Context, id uuid.UUID) (*ent.Household, error) {
	return &ent.Household{ID: id, Name: "Keluarga", DefaultCurrency: "IDR"}, nil
}

func (fakeHouseholds) IsMember(ctx context.Context, householdID, userID uuid.UUID) (bool, error) {
	return true, nil
}

type fakeStore struct {
	data map[string][]byte
}

func (f *fakeStore) Retrieve(token string) ([]byte, error) {
	b, ok := f.data[token]
	if !ok {
		return nil, common.NotFoundError("document", token)
	}
	return b, nil
}

type engineFunc func(ctx context.Context, data []byte, mimeType string) (*extract.Result, error)

func (f engineFunc) Extract(ctx context.Context, data []byte, mimeType string) (*extract.Result, error) {
	return f(ctx, data, mimeType)
}

type fakeSleeper struct {
	mu    sync.Mutex
	slept []time.Duration
}

func (f *fakeSleeper) Sleep(ctx context.Context, d time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.slept = append(f.slept, d)
	return nil
}

type stubHistory struct{}

func (stubHistory) CategoryForMerchant(ctx context.Context, householdID uuid.UUID, needle string) (*suggest.CategoryRef, error) {
	return nil, nil
}

func (stubHistory) CategoryByName(ctx context.Context, householdID uuid.UUID, name string) (*suggest.CategoryRef, error) {
	return nil, nil
}

// --- harness ---

type harness struct {
	orch    *Orchestrator
	docs    *fakeDocs
	results *fakeResults
	suggs   *fakeSuggs
	sleeper *fakeSleeper
}

func newHarness(t *testing.T, docs *fakeDocs, engine extract.Engine, cfg common.PipelineConfig) *harness {
	t.Helper()
	results := &fakeResults{}
	suggs := &fakeSuggs{}
	store := &fakeStore{data: map[string][]byte{docs.doc.StoragePath: []byte("jpeg bytes")}}
	gen := suggest.NewGenerator(stubHistory{}, nil)
	orch, err := NewOrchestrator(docs, results, suggs, fakeHouseholds{}, store,
		Engines{Receipt: engine, BankStatement: engine}, gen, cfg, nil)
	if err != nil {
		t.Fatalf("NewOrchestrator() error = %v", err)
	}
	sleeper := &fakeSleeper{}
	orch.sleeper = sleeper
	return &harness{orch: orch, docs: docs, results: results, suggs: suggs, sleeper: sleeper}
}

func defaultCfg() common.PipelineConfig {
	return common.PipelineConfig{
		ProcessTimeout:  30 * time.Second,
		MaxAttempts:     3,
		ReviewThreshold: 0.60,
	}
}

func receiptEngine() extract.Engine {
	return extract.NewReceiptEngine(extract.RecognizerFunc(
		func(ctx context.Context, data []byte, mimeType string) (extract.Recognition, error) {
			return extract.Recognition{Text: fixtureReceipt, Pages: 1}, nil
		}), nil)
}

// --- tests ---

func TestProcessReceiptToCompleted(t *testing.T) {
	docs := newFakeDocs(constants.DocTypeReceipt, constants.StatusPending)
	h := newHarness(t, docs, receiptEngine(), defaultCfg())

	if err := h.orch.Process(context.Background(), docs.doc.ID, false); err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if got := docs.doc.Status; got != string(constants.StatusCompleted) {
		t.Fatalf("status = %q, want COMPLETED", got)
	}
	if want := []string{"PROCESSING", "COMPLETED"}; len(docs.statuses) != 2 ||
		docs.statuses[0] != want[0] || docs.statuses[1] != want[1] {
		t.Errorf("transitions = %v, want %v", docs.statuses, want)
	}
	if len(h.results.created) != 1 {
		t.Fatalf("ocr results = %d, want 1", len(h.results.created))
	}
	if len(h.results.created[0].ExtractedJSON) == 0 {
		t.Error("extracted payload not persisted")
	}
	if len(h.suggs.batches) != 1 || len(h.suggs.batches[0]) == 0 {
		t.Fatalf("no suggestions persisted")
	}
	main := h.suggs.batches[0][0]
	if main.Amount != -12000 {
		t.Errorf("main suggestion amount = %v, want -12000", main.Amount)
	}
	if main.Merchant != "TOKO SUMBER REZEKI" {
		t.Errorf("merchant = %q", main.Merchant)
	}
}

func TestProcessRejectsAlreadyProcessing(t *testing.T) {
	docs := newFakeDocs(constants.DocTypeReceipt, constants.StatusProcessing)
	h := newHarness(t, docs, receiptEngine(), defaultCfg())

	err := h.orch.Process(context.Background(), docs.doc.ID, false)
	if !common.IsCode(err, common.CodeAlreadyProcessing) {
		t.Fatalf("error = %v, want ALREADY_PROCESSING", err)
	}
	if len(h.results.created) != 0 {
		t.Error("no extraction may run for a held document")
	}
}

func TestProcessForceReprocesses(t *testing.T) {
	docs := newFakeDocs(constants.DocTypeReceipt, constants.StatusProcessing)
	h := newHarness(t, docs, receiptEngine(), defaultCfg())

	if err := h.orch.Process(context.Background(), docs.doc.ID, true); err != nil {
		t.Fatalf("Process(force) error = %v", err)
	}
	if docs.doc.Status != string(constants.StatusCompleted) {
		t.Errorf("status = %q, want COMPLETED", docs.doc.Status)
	}
}

func TestProcessRetriesWithBackoff(t *testing.T) {
	docs := newFakeDocs(constants.DocTypeReceipt, constants.StatusPending)
	attempts := 0
	failing := engineFunc(func(ctx context.Context, data []byte, mimeType string) (*extract.Result, error) {
		attempts++
		return nil, common.ExtractionError("engine crashed", errors.New("boom"))
	})
	h := newHarness(t, docs, failing, defaultCfg())

	err := h.orch.Process(context.Background(), docs.doc.ID, false)
	if !common.IsCode(err, common.CodeExtraction) {
		t.Fatalf("error = %v, want EXTRACTION_FAILURE", err)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
	want := []time.Duration{2 * time.Second, 4 * time.Second}
	if len(h.sleeper.slept) != len(want) || h.sleeper.slept[0] != want[0] || h.sleeper.slept[1] != want[1] {
		t.Errorf("backoff = %v, want %v", h.sleeper.slept, want)
	}
	if docs.doc.Status != string(constants.StatusFailed) {
		t.Errorf("status = %q, want FAILED", docs.doc.Status)
	}
	if docs.failure == "" {
		t.Error("failure reason not recorded")
	}
}

func TestProcessDoesNotRetryValidationErrors(t *testing.T) {
	docs := newFakeDocs(constants.DocTypeReceipt, constants.StatusPending)
	attempts := 0
	failing := engineFunc(func(ctx context.Context, data []byte, mimeType string) (*extract.Result, error) {
		attempts++
		return nil, common.ValidationError("document is empty")
	})
	h := newHarness(t, docs, failing, defaultCfg())

	err := h.orch.Process(context.Background(), docs.doc.ID, false)
	if !common.IsCode(err, common.CodeValidation) {
		t.Fatalf("error = %v, want VALIDATION", err)
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1 for a non-retryable error", attempts)
	}
	if len(h.sleeper.slept) != 0 {
		t.Errorf("slept %v, want no backoff", h.sleeper.slept)
	}
}

func TestProcessTimesOut(t *testing.T) {
	docs := newFakeDocs(constants.DocTypeReceipt, constants.StatusPending)
	hanging := engineFunc(func(ctx context.Context, data []byte, mimeType string) (*extract.Result, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	cfg := defaultCfg()
	cfg.ProcessTimeout = 10 * time.Millisecond
	cfg.MaxAttempts = 1
	h := newHarness(t, docs, hanging, cfg)

	err := h.orch.Process(context.Background(), docs.doc.ID, false)
	if !common.IsCode(err, common.CodeTimeout) {
		t.Fatalf("error = %v, want TIMEOUT", err)
	}
	if docs.doc.Status != string(constants.StatusFailed) {
		t.Errorf("status = %q, want FAILED", docs.doc.Status)
	}
}

func TestProcessFlagsLowConfidence(t *testing.T) {
	docs := newFakeDocs(constants.DocTypeReceipt, constants.StatusPending)
	weak := engineFunc(func(ctx context.Context, data []byte, mimeType string) (*extract.Result, error) {
		return &extract.Result{RawText: "garbled", Confidence: 0.4, Engine: "tesseract"}, nil
	})
	cfg := defaultCfg()
	cfg.FlagLowConfidence = true
	h := newHarness(t, docs, weak, cfg)

	if err := h.orch.Process(context.Background(), docs.doc.ID, false); err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if docs.doc.Status != string(constants.StatusRequiresReview) {
		t.Errorf("status = %q, want REQUIRES_REVIEW", docs.doc.Status)
	}
}

func TestProcessMissingDocument(t *testing.T) {
	docs := newFakeDocs(constants.DocTypeReceipt, constants.StatusPending)
	h := newHarness(t, docs, receiptEngine(), defaultCfg())

	err := h.orch.Process(context.Background(), uuid.New(), false)
	if !common.IsCode(err, common.CodeNotFound) {
		t.Fatalf("error = %v, want NOT_FOUND", err)
	}
}
