package storage

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/prasetyo-adi/kas-keluarga/constants"
	"github.com/prasetyo-adi/kas-keluarga/internal/common"
)

// reHouseholdID allow-lists household identifiers used as directory names.
var reHouseholdID = regexp.MustCompile(`^[A-Za-z0-9-]+$`)

// reExtension allow-lists the preserved file extension.
var reExtension = regexp.MustCompile(`^[a-z0-9]{1,8}$`)

// Store persists uploaded document bytes under a configured root directory,
// partitioned per household. Every operation is confined to the root; tokens
// are relative slash-separated paths and never absolute.
type Store struct {
	root   string
	logger *slog.Logger
}

// Metadata describes a stored document without exposing its bytes.
type Metadata struct {
	Size         int64
	MIMEType     string
	LastModified time.Time
}

func NewStore(root string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve storage root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o700); err != nil {
		return nil, fmt.Errorf("create storage root: %w", err)
	}
	return &Store{root: abs, logger: logger}, nil
}

// Store writes data under the household's directory with a random file name
// preserving ext, and returns the relative storage token.
func (s *Store) Store(data []byte, householdID, ext string) (string, error) {
	if len(data) == 0 {
		return "", common.ValidationError("empty file content")
	}
	if !reHouseholdID.MatchString(householdID) {
		s.logger.Warn("rejected household identifier", "household_id", householdID)
		return "", common.InvalidIdentifierError("household id contains disallowed characters")
	}
	ext = constants.NormalizeExt(ext)
	if ext == "" || !reExtension.MatchString(ext) {
		ext = "bin"
	}

	var buf [16]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", fmt.Errorf("generate file name: %w", err)
	}
	name := hex.EncodeToString(buf[:]) + "." + ext

	dir := filepath.Join(s.root, householdID)
	target := filepath.Join(dir, name)
	if !s.within(target) {
		s.logger.Warn("storage path escaped root", "household_id", householdID)
		return "", common.PathTraversalError("resolved path escapes storage root")
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("create household dir: %w", err)
	}
	if err := os.WriteFile(target, data, 0o600); err != nil {
		return "", fmt.Errorf("write document: %w", err)
	}

	token := householdID + "/" + name
	s.logger.Debug("stored document", "token", token, "bytes", len(data))
	return token, nil
}

// Retrieve reads the bytes behind a storage token.
func (s *Store) Retrieve(token string) ([]byte, error) {
	target, err := s.resolve(token)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(target)
	if err != nil {
		return nil, common.NewAppError(common.CodeNotFound, "document not found in storage", err)
	}
	return data, nil
}

// Metadata returns size, inferred MIME type and mtime for a stored document.
// The MIME type comes from the extension lookup table, never from the caller.
func (s *Store) Metadata(token string) (Metadata, error) {
	target, err := s.resolve(token)
	if err != nil {
		return Metadata{}, err
	}
	info, err := os.Stat(target)
	if err != nil {
		return Metadata{}, common.NewAppError(common.CodeNotFound, "document not found in storage", err)
	}
	return Metadata{
		Size:         info.Size(),
		MIMEType:     constants.MIMEFromExtension(filepath.Ext(target)),
		LastModified: info.ModTime(),
	}, nil
}

// Delete removes a stored document. Best-effort: a missing file is not an
// error, other I/O failures propagate.
func (s *Store) Delete(token string) error {
	target, err := s.resolve(token)
	if err != nil {
		return err
	}
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}

// resolve validates a token and maps it to an absolute path inside the root.
func (s *Store) resolve(token string) (string, error) {
	if token == "" {
		return "", common.ValidationError("empty storage token")
	}
	if strings.Contains(token, "..") || strings.Contains(token, "~") ||
		strings.Contains(token, `\`) || strings.HasPrefix(token, "/") ||
		filepath.IsAbs(token) {
		s.logger.Warn("rejected storage token", "token", token)
		return "", common.PathTraversalError("storage token contains disallowed path markers")
	}
	target := filepath.Join(s.root, filepath.FromSlash(token))
	if !s.within(target) {
		s.logger.Warn("storage token escaped root", "token", token)
		return "", common.PathTraversalError("resolved path escapes storage root")
	}
	return target, nil
}

// within reports whether the cleaned path is a descendant of the root.
func (s *Store) within(path string) bool {
	rel, err := filepath.Rel(s.root, filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
