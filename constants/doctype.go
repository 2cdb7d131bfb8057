package constants

import "strings"

// DocumentType classifies an uploaded financial document.
type DocumentType string

const (
	DocTypeReceipt       DocumentType = "RECEIPT"
	DocTypeBankStatement DocumentType = "BANK_STATEMENT"
	DocTypeInvoice       DocumentType = "INVOICE"
	DocTypeOther         DocumentType = "OTHER"
)

var allDocumentTypes = []DocumentType{
	DocTypeReceipt,
	DocTypeBankStatement,
	DocTypeInvoice,
	DocTypeOther,
}

// DocumentTypes returns the stable string values for the document_type field.
func DocumentTypes() []string {
	result := make([]string, len(allDocumentTypes))
	for i, t := range allDocumentTypes {
		result[i] = string(t)
	}
	return result
}

// ParseDocumentType maps a case-insensitive label to a DocumentType.
func ParseDocumentType(input string) (DocumentType, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(input))
	for _, t := range allDocumentTypes {
		if normalized == string(t) {
			return t, true
		}
	}
	return DocTypeOther, false
}
