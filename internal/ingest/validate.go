package ingest

import (
	"strings"

	"github.com/prasetyo-adi/kas-keluarga/constants"
	"github.com/prasetyo-adi/kas-keluarga/internal/common"
)

// validateUpload rejects a request before any bytes touch storage.
func validateUpload(req UploadRequest) error {
	name := strings.TrimSpace(req.FileName)
	if name == "" {
		return common.ValidationError("file_name is required")
	}
	if len(name) > constants.MaxFileNameLength {
		return common.ValidationError("file_name exceeds %d characters", constants.MaxFileNameLength)
	}
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return common.ValidationError("file_name must not contain path separators")
	}

	if len(req.Content) == 0 {
		return common.ValidationError("file content is empty")
	}
	if int64(len(req.Content)) > constants.MaxUploadBytes {
		return common.ValidationError("file size %d exceeds the %d byte limit",
			len(req.Content), constants.MaxUploadBytes)
	}

	if !constants.MIMEAllowed(req.DocumentType, req.MimeType) {
		return common.ValidationError("content type %q is not accepted for %s documents",
			req.MimeType, req.DocumentType)
	}
	if !constants.SignatureMatches(req.MimeType, req.Content) {
		return common.ValidationError("file content does not match declared type %q", req.MimeType)
	}
	return nil
}
