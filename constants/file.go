package constants

import (
	"bytes"
	"strings"
)

// MaxUploadBytes caps accepted uploads at 10 MiB.
const MaxUploadBytes = 10 << 20

// MaxFileNameLength caps the declared file name.
const MaxFileNameLength = 255

// allowedMIMETypes maps each document type to its accepted declared MIME types.
var allowedMIMETypes = map[DocumentType]map[string]struct{}{
	DocTypeReceipt: {
		"image/jpeg":      {},
		"image/png":       {},
		"image/webp":      {},
		"application/pdf": {},
	},
	DocTypeInvoice: {
		"image/jpeg":      {},
		"image/png":       {},
		"image/webp":      {},
		"application/pdf": {},
	},
	DocTypeOther: {
		"image/jpeg":      {},
		"image/png":       {},
		"image/webp":      {},
		"application/pdf": {},
	},
	DocTypeBankStatement: {
		"application/pdf": {},
	},
}

// MIMEAllowed reports whether mimeType is accepted for the given document type.
func MIMEAllowed(docType DocumentType, mimeType string) bool {
	allow, ok := allowedMIMETypes[docType]
	if !ok {
		return false
	}
	_, ok = allow[strings.ToLower(strings.TrimSpace(mimeType))]
	return ok
}

// magicNumbers holds the leading byte signature for each accepted MIME type.
var magicNumbers = map[string][]byte{
	"image/jpeg":      {0xFF, 0xD8, 0xFF},
	"image/png":       {0x89, 0x50, 0x4E, 0x47},
	"image/webp":      {0x52, 0x49, 0x46, 0x46},
	"application/pdf": {0x25, 0x50, 0x44, 0x46},
}

// SignatureMatches checks the first bytes of data against the magic number
// table for the declared MIME type. Unknown MIME types never match.
func SignatureMatches(mimeType string, data []byte) bool {
	magic, ok := magicNumbers[strings.ToLower(strings.TrimSpace(mimeType))]
	if !ok {
		return false
	}
	return len(data) >= len(magic) && bytes.Equal(data[:len(magic)], magic)
}

// extToMIME is the fixed extension lookup used for stored-file metadata.
// Extensions are lowercased without the dot.
var extToMIME = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"webp": "image/webp",
	"pdf":  "application/pdf",
}

// MIMEFromExtension infers a MIME type from a file extension; falls back to
// application/octet-stream.
func MIMEFromExtension(ext string) string {
	if m, ok := extToMIME[NormalizeExt(ext)]; ok {
		return m
	}
	return "application/octet-stream"
}

// ExtensionFromMIME returns the canonical extension for a declared MIME type.
func ExtensionFromMIME(mimeType string) string {
	switch strings.ToLower(strings.TrimSpace(mimeType)) {
	case "image/jpeg":
		return "jpg"
	case "image/png":
		return "png"
	case "image/webp":
		return "webp"
	case "application/pdf":
		return "pdf"
	}
	return "bin"
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}
