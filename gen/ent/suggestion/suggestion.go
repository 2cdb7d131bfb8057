// Code generated by ent, DO NOT EDIT.

package suggestion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the suggestion type in the database.
	Label = "suggestion"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldOcrResultID holds the string denoting the ocr_result_id field in the database.
	FieldOcrResultID = "ocr_result_id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldAmount holds the string denoting the amount field in the database.
	FieldAmount = "amount"
	// FieldCurrencyCode holds the string denoting the currency_code field in the database.
	FieldCurrencyCode = "currency_code"
	// FieldTxDate holds the string denoting the tx_date field in the database.
	FieldTxDate = "tx_date"
	// FieldMerchant holds the string denoting the merchant field in the database.
	FieldMerchant = "merchant"
	// FieldCategoryID holds the string denoting the category_id field in the database.
	FieldCategoryID = "category_id"
	// FieldCategoryName holds the string denoting the category_name field in the database.
	FieldCategoryName = "category_name"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldSourceType holds the string denoting the source_type field in the database.
	FieldSourceType = "source_type"
	// FieldLineItemIndex holds the string denoting the line_item_index field in the database.
	FieldLineItemIndex = "line_item_index"
	// FieldOriginalText holds the string denoting the original_text field in the database.
	FieldOriginalText = "original_text"
	// FieldApproved holds the string denoting the approved field in the database.
	FieldApproved = "approved"
	// FieldApprovedAt holds the string denoting the approved_at field in the database.
	FieldApprovedAt = "approved_at"
	// FieldTransactionID holds the string denoting the transaction_id field in the database.
	FieldTransactionID = "transaction_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeOcrResult holds the string denoting the ocr_result edge name in mutations.
	EdgeOcrResult = "ocr_result"
	// Table holds the table name of the suggestion in the database.
	Table = "transaction_suggestions"
	// OcrResultTable is the table that holds the ocr_result relation/edge.
	OcrResultTable = "transaction_suggestions"
	// OcrResultInverseTable is the table name for the OcrResult entity.
	// It exists in this package in order to avoid circular dependency with the "ocrresult" package.
	OcrResultInverseTable = "ocr_results"
	// OcrResultColumn is the table column denoting the ocr_result relation/edge.
	OcrResultColumn = "ocr_result_id"
)

// Columns holds all SQL columns for suggestion fields.
var Columns = []string{
	FieldID,
	FieldOcrResultID,
	FieldDocumentID,
	FieldDescription,
	FieldAmount,
	FieldCurrencyCode,
	FieldTxDate,
	FieldMerchant,
	FieldCategoryID,
	FieldCategoryName,
	FieldConfidence,
	FieldSourceType,
	FieldLineItemIndex,
	FieldOriginalText,
	FieldApproved,
	FieldApprovedAt,
	FieldTransactionID,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	DescriptionValidator func(string) error
	// CurrencyCodeValidator is a validator for the "currency_code" field. It is called by the builders before save.
	CurrencyCodeValidator func(string) error
	// ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	ConfidenceValidator func(float32) error
	// SourceTypeValidator is a validator for the "source_type" field. It is called by the builders before save.
	SourceTypeValidator func(string) error
	// DefaultApproved holds the default value on creation for the "approved" field.
	DefaultApproved bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Suggestion queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOcrResultID orders the results by the ocr_result_id field.
func ByOcrResultID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOcrResultID, opts...).ToFunc()
}

// ByDocumentID orders the results by the document_id field.
func ByDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentID, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByAmount orders the results by the amount field.
func ByAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAmount, opts...).ToFunc()
}

// ByCurrencyCode orders the results by the currency_code field.
func ByCurrencyCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrencyCode, opts...).ToFunc()
}

// ByTxDate orders the results by the tx_date field.
func ByTxDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTxDate, opts...).ToFunc()
}

// ByMerchant orders the results by the merchant field.
func ByMerchant(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMerchant, opts...).ToFunc()
}

// ByCategoryID orders the results by the category_id field.
func ByCategoryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategoryID, opts...).ToFunc()
}

// ByCategoryName orders the results by the category_name field.
func ByCategoryName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategoryName, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// BySourceType orders the results by the source_type field.
func BySourceType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceType, opts...).ToFunc()
}

// ByLineItemIndex orders the results by the line_item_index field.
func ByLineItemIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLineItemIndex, opts...).ToFunc()
}

// ByOriginalText orders the results by the original_text field.
func ByOriginalText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalText, opts...).ToFunc()
}

// ByApproved orders the results by the approved field.
func ByApproved(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApproved, opts...).ToFunc()
}

// ByApprovedAt orders the results by the approved_at field.
func ByApprovedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApprovedAt, opts...).ToFunc()
}

// ByTransactionID orders the results by the transaction_id field.
func ByTransactionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTransactionID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByOcrResultField orders the results by ocr_result field.
func ByOcrResultField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOcrResultStep(), sql.OrderByField(field, opts...))
	}
}
func newOcrResultStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OcrResultInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, OcrResultTable, OcrResultColumn),
	)
}
