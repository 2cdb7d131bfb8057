package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prasetyo-adi/kas-keluarga/internal/common"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func TestStoreRetrieveRoundTrip(t *testing.T) {
	s := newTestStore(t)
	content := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x01, 0x02, 0x03}

	token, err := s.Store(content, "household-1", "jpg")
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	if filepath.IsAbs(token) {
		t.Errorf("token must be relative, got %q", token)
	}
	if !strings.HasPrefix(token, "household-1/") {
		t.Errorf("token not partitioned by household: %q", token)
	}

	got, err := s.Retrieve(token)
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Errorf("retrieved bytes differ: got %v want %v", got, content)
	}
}

func TestStoreRandomNames(t *testing.T) {
	s := newTestStore(t)
	t1, err := s.Store([]byte("a"), "h1", "pdf")
	if err != nil {
		t.Fatal(err)
	}
	t2, err := s.Store([]byte("a"), "h1", "pdf")
	if err != nil {
		t.Fatal(err)
	}
	if t1 == t2 {
		t.Errorf("identical tokens for two writes: %q", t1)
	}
}

func TestStoreRejectsEmptyInput(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Store(nil, "h1", "jpg"); !common.IsCode(err, common.CodeValidation) {
		t.Errorf("want VALIDATION, got %v", err)
	}
}

func TestStoreRejectsBadHouseholdID(t *testing.T) {
	s := newTestStore(t)
	for _, id := range []string{"../evil", "a/b", `a\b`, "a b", "", "a..b/"} {
		if _, err := s.Store([]byte("x"), id, "jpg"); !common.IsCode(err, common.CodeInvalidIdentifier) {
			t.Errorf("household id %q: want INVALID_IDENTIFIER, got %v", id, err)
		}
	}
}

func TestRetrieveRejectsTraversalTokens(t *testing.T) {
	s := newTestStore(t)
	outside := filepath.Join(filepath.Dir(s.root), "secret.txt")
	if err := os.WriteFile(outside, []byte("secret"), 0o600); err != nil {
		t.Fatal(err)
	}

	for _, token := range []string{
		"../secret.txt",
		"h1/../../secret.txt",
		"/etc/passwd",
		`h1\..\secret.txt`,
		"~/secret.txt",
	} {
		if _, err := s.Retrieve(token); !common.IsCode(err, common.CodePathTraversal) {
			t.Errorf("token %q: want PATH_TRAVERSAL, got %v", token, err)
		}
	}
}

func TestRetrieveMissingIsNotFound(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Retrieve("h1/deadbeef.jpg"); !common.IsCode(err, common.CodeNotFound) {
		t.Errorf("want NOT_FOUND, got %v", err)
	}
}

func TestMetadataInfersMIMEFromExtension(t *testing.T) {
	s := newTestStore(t)
	token, err := s.Store([]byte("%PDF-1.4"), "h1", "pdf")
	if err != nil {
		t.Fatal(err)
	}
	md, err := s.Metadata(token)
	if err != nil {
		t.Fatalf("Metadata: %v", err)
	}
	if md.MIMEType != "application/pdf" {
		t.Errorf("mime = %q, want application/pdf", md.MIMEType)
	}
	if md.Size != int64(len("%PDF-1.4")) {
		t.Errorf("size = %d", md.Size)
	}
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	token, err := s.Store([]byte("x"), "h1", "png")
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(token); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Retrieve(token); !common.IsCode(err, common.CodeNotFound) {
		t.Errorf("want NOT_FOUND after delete, got %v", err)
	}
	// deleting again is best-effort and quiet
	if err := s.Delete(token); err != nil {
		t.Errorf("second Delete: %v", err)
	}
}
