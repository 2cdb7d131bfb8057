package repository

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/prasetyo-adi/kas-keluarga/constants"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent"
	"github.com/prasetyo-adi/kas-keluarga/internal/common"
	"github.com/prasetyo-adi/kas-keluarga/internal/testutil"
)

func seedHousehold(t *testing.T, client *ent.Client) *ent.Household {
	t.Helper()
	return client.Household.Create().
		SetName("Keluarga Prasetyo").
		SetDefaultCurrency("IDR").
		SaveX(context.Background())
}

func createParams(householdID uuid.UUID) CreateDocumentParams {
	return CreateDocumentParams{
		HouseholdID:  householdID,
		FileName:     "struk.jpg",
		MimeType:     "image/jpeg",
		FileSize:     2048,
		DocumentType: constants.DocTypeReceipt,
		StoragePath:  householdID.String() + "/abc123.jpg",
		UploadedBy:   uuid.New(),
	}
}

func TestDocumentLifecycle(t *testing.T) {
	ctx := context.Background()
	client := testutil.NewEntClient(t)
	hh := seedHousehold(t, client)
	repo := NewDocumentRepository(client, slog.Default())

	doc, err := repo.Create(ctx, createParams(hh.ID))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if doc.Status != string(constants.StatusPending) {
		t.Fatalf("new document status = %q, want PENDING", doc.Status)
	}

	if err := repo.MarkProcessing(ctx, doc.ID, false); err != nil {
		t.Fatalf("MarkProcessing() error = %v", err)
	}
	if err := repo.MarkProcessing(ctx, doc.ID, false); !common.IsCode(err, common.CodeAlreadyProcessing) {
		t.Fatalf("second MarkProcessing() error = %v, want ALREADY_PROCESSING", err)
	}
	if err := repo.MarkProcessing(ctx, doc.ID, true); err != nil {
		t.Fatalf("forced MarkProcessing() error = %v", err)
	}

	if err := repo.MarkCompleted(ctx, doc.ID, constants.StatusCompleted); err != nil {
		t.Fatalf("MarkCompleted() error = %v", err)
	}
	got, err := repo.GetByID(ctx, doc.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Status != string(constants.StatusCompleted) {
		t.Errorf("status = %q, want COMPLETED", got.Status)
	}
	if got.ProcessedAt == nil {
		t.Error("processed_at not set on completion")
	}

	if err := repo.MarkFailed(ctx, doc.ID, "extraction exceeded 30s"); err != nil {
		t.Fatalf("MarkFailed() error = %v", err)
	}
	got, _ = repo.GetByID(ctx, doc.ID)
	if got.FailureReason == nil || *got.FailureReason == "" {
		t.Error("failure_reason not recorded")
	}
}

func TestDocumentProcessingClearsFailure(t *testing.T) {
	ctx := context.Background()
	client := testutil.NewEntClient(t)
	hh := seedHousehold(t, client)
	repo := NewDocumentRepository(client, slog.Default())

	doc, _ := repo.Create(ctx, createParams(hh.ID))
	if err := repo.MarkFailed(ctx, doc.ID, "boom"); err != nil {
		t.Fatalf("MarkFailed() error = %v", err)
	}
	if err := repo.MarkProcessing(ctx, doc.ID, false); err != nil {
		t.Fatalf("MarkProcessing() after failure error = %v", err)
	}
	got, _ := repo.GetByID(ctx, doc.ID)
	if got.FailureReason != nil {
		t.Errorf("failure_reason = %v, want cleared on reprocess", *got.FailureReason)
	}
}

func TestDocumentListNewestFirst(t *testing.T) {
	ctx := context.Background()
	client := testutil.NewEntClient(t)
	hh := seedHousehold(t, client)
	repo := NewDocumentRepository(client, slog.Default())

	base := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		d := client.Document.Create().
			SetHouseholdID(hh.ID).
			SetFileName("doc.jpg").
			SetMimeType("image/jpeg").
			SetFileSize(10).
			SetDocumentType(string(constants.DocTypeReceipt)).
			SetStoragePath(hh.ID.String() + "/f" + string(rune('0'+i)) + ".jpg").
			SetUploadedBy(uuid.New()).
			SetUploadedAt(base.Add(time.Duration(i) * time.Hour)).
			SaveX(ctx)
		ids = append(ids, d.ID)
	}

	docs, err := repo.ListByHousehold(ctx, hh.ID)
	if err != nil {
		t.Fatalf("ListByHousehold() error = %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("len = %d, want 3", len(docs))
	}
	if docs[0].ID != ids[2] || docs[2].ID != ids[0] {
		t.Error("documents not ordered newest first")
	}
}

func TestDocumentGetMissing(t *testing.T) {
	client := testutil.NewEntClient(t)
	repo := NewDocumentRepository(client, slog.Default())

	if _, err := repo.GetByID(context.Background(), uuid.New()); !common.IsCode(err, common.CodeNotFound) {
		t.Fatalf("error = %v, want NOT_FOUND", err)
	}
}
