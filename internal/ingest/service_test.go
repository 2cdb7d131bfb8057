package ingest

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/prasetyo-adi/kas-keluarga/constants"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent"
	"github.com/prasetyo-adi/kas-keluarga/internal/async"
	"github.com/prasetyo-adi/kas-keluarga/internal/common"
	"github.com/prasetyo-adi/kas-keluarga/internal/repository"
)

var jpegBytes = append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, bytes.Repeat([]byte{0x00}, 64)...)

type fakeStore struct {
	stored  map[string][]byte
	deleted []string
	seq     int
}

func newFakeStore() *fakeStore {
	return &fakeStore{stored: make(map[string][]byte)}
}

func (f *fakeStore) Store(data []byte, householdID, ext string) (string, error) {
	f.seq++
	token := householdID + "/file" + string(rune('0'+f.seq)) + "." + ext
	f.stored[token] = data
	return token, nil
}

func (f *fakeStore) Delete(token string) error {
	delete(f.stored, token)
	f.deleted = append(f.deleted, token)
	return nil
}

type fakeDocs struct {
	created []repository.CreateDocumentParams
	fail    error
}

func (f *fakeDocs) Create(ctx context.Context, p repository.CreateDocumentParams) (*ent.Document, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	f.created = append(f.created, p)
	return &ent.Document{
		ID:          uuid.New(),
		HouseholdID: p.HouseholdID,
		FileName:    p.FileName,
		FileSize:    p.FileSize,
		StoragePath: p.StoragePath,
		Status:      string(constants.StatusPending),
	}, nil
}

func (f *fakeDocs) GetByID(ctx context.Context, id uuid.UUID) (*ent.Document, error) {
	return nil, common.NotFoundError("document", id.String())
}
func (f *fakeDocs) ListByHousehold(ctx context.Context, householdID uuid.UUID) ([]*ent.Document, error) {
	return nil, nil
}
func (f *fakeDocs) MarkProcessing(ctx context.Context, id uuid.UUID, force bool) error { return nil }
func (f *fakeDocs) MarkCompleted(ctx context.Context, id uuid.UUID, status constants.DocumentStatus) error {
	return nil
}
func (f *fakeDocs) MarkFailed(ctx context.Context, id uuid.UUID, reason string) error { return nil }
func (f *fakeDocs) Delete(ctx context.Context, id uuid.UUID) error                    { return nil }

type fakeHouseholds struct {
	member bool
}

func (f *fakeHouseholds) GetByID(ctx context.Context, id uuid.UUID) (*ent.Household, error) {
	return &ent.Household{ID: id}, nil
}
func (f *fakeHouseholds) IsMember(ctx context.Context, householdID, userID uuid.UUID) (bool, error) {
	return f.member, nil
}

type fakeQueue struct {
	jobs []async.Job
}

func (f *fakeQueue) Enqueue(ctx context.Context, job async.Job) error {
	f.jobs = append(f.jobs, job)
	return nil
}
func (f *fakeQueue) Shutdown(ctx context.Context) {}

func validRequest() UploadRequest {
	return UploadRequest{
		HouseholdID:  uuid.New(),
		UploadedBy:   uuid.New(),
		FileName:     "struk-belanja.jpg",
		MimeType:     "image/jpeg",
		DocumentType: constants.DocTypeReceipt,
		Content:      jpegBytes,
	}
}

func TestUploadHappyPath(t *testing.T) {
	store := newFakeStore()
	docs := &fakeDocs{}
	queue := &fakeQueue{}
	s := NewService(store, docs, &fakeHouseholds{member: true}, queue, nil)

	doc, err := s.Upload(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	if doc.Status != string(constants.StatusPending) {
		t.Errorf("status = %q, want PENDING", doc.Status)
	}
	if len(store.stored) != 1 {
		t.Errorf("stored blobs = %d, want 1", len(store.stored))
	}
	if len(docs.created) != 1 {
		t.Fatalf("created rows = %d, want 1", len(docs.created))
	}
	if docs.created[0].StoragePath == "" {
		t.Error("storage token not recorded on the document row")
	}
	if len(queue.jobs) != 1 || queue.jobs[0].DocumentID != doc.ID {
		t.Errorf("job not enqueued for the new document")
	}
}

func TestUploadOversizedRejectedBeforeStorage(t *testing.T) {
	store := newFakeStore()
	s := NewService(store, &fakeDocs{}, &fakeHouseholds{member: true}, &fakeQueue{}, nil)

	req := validRequest()
	req.Content = append([]byte{0xFF, 0xD8, 0xFF}, make([]byte, 15<<20)...)
	_, err := s.Upload(context.Background(), req)
	if !common.IsCode(err, common.CodeValidation) {
		t.Fatalf("error = %v, want VALIDATION", err)
	}
	if len(store.stored) != 0 {
		t.Error("oversized upload must not reach storage")
	}
}

func TestUploadRejectsUnsupportedMediaType(t *testing.T) {
	s := NewService(newFakeStore(), &fakeDocs{}, &fakeHouseholds{member: true}, &fakeQueue{}, nil)

	req := validRequest()
	req.FileName = "notes.txt"
	req.MimeType = "text/plain"
	_, err := s.Upload(context.Background(), req)
	if !common.IsCode(err, common.CodeValidation) {
		t.Fatalf("error = %v, want VALIDATION", err)
	}
}

func TestUploadRejectsStatementImage(t *testing.T) {
	s := NewService(newFakeStore(), &fakeDocs{}, &fakeHouseholds{member: true}, &fakeQueue{}, nil)

	req := validRequest()
	req.DocumentType = constants.DocTypeBankStatement
	_, err := s.Upload(context.Background(), req)
	if !common.IsCode(err, common.CodeValidation) {
		t.Fatalf("error = %v, want VALIDATION for image statement", err)
	}
}

func TestUploadRejectsSignatureMismatch(t *testing.T) {
	s := NewService(newFakeStore(), &fakeDocs{}, &fakeHouseholds{member: true}, &fakeQueue{}, nil)

	req := validRequest()
	req.Content = []byte("plain text pretending to be a jpeg")
	_, err := s.Upload(context.Background(), req)
	if !common.IsCode(err, common.CodeValidation) {
		t.Fatalf("error = %v, want VALIDATION for signature mismatch", err)
	}
}

func TestUploadRejectsBadFileNames(t *testing.T) {
	s := NewService(newFakeStore(), &fakeDocs{}, &fakeHouseholds{member: true}, &fakeQueue{}, nil)

	for _, name := range []string{"", "../../etc/passwd", `dir\file.jpg`, strings.Repeat("a", 300) + ".jpg"} {
		req := validRequest()
		req.FileName = name
		if _, err := s.Upload(context.Background(), req); !common.IsCode(err, common.CodeValidation) {
			t.Errorf("file name %q: error = %v, want VALIDATION", name, err)
		}
	}
}

func TestUploadNonMemberDenied(t *testing.T) {
	s := NewService(newFakeStore(), &fakeDocs{}, &fakeHouseholds{member: false}, &fakeQueue{}, nil)

	_, err := s.Upload(context.Background(), validRequest())
	if !common.IsCode(err, common.CodeDenied) {
		t.Fatalf("error = %v, want DENIED", err)
	}
}

func TestUploadCleansUpStorageOnDBFailure(t *testing.T) {
	store := newFakeStore()
	docs := &fakeDocs{fail: common.InternalError("create document", errors.New("db down"))}
	queue := &fakeQueue{}
	s := NewService(store, docs, &fakeHouseholds{member: true}, queue, nil)

	_, err := s.Upload(context.Background(), validRequest())
	if err == nil {
		t.Fatal("Upload() must fail when the database write fails")
	}
	if len(store.stored) != 0 || len(store.deleted) != 1 {
		t.Errorf("stored bytes not cleaned up: stored=%d deleted=%d", len(store.stored), len(store.deleted))
	}
	if len(queue.jobs) != 0 {
		t.Error("nothing may be queued when the upload fails")
	}
}
