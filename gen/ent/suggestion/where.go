// Code generated by ent, DO NOT EDIT.

package suggestion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLTE(FieldID, id))
}

// OcrResultID applies equality check predicate on the "ocr_result_id" field. It's identical to OcrResultIDEQ.
func OcrResultID(v uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldOcrResultID, v))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldDocumentID, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldDescription, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v float64) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldAmount, v))
}

// CurrencyCode applies equality check predicate on the "currency_code" field. It's identical to CurrencyCodeEQ.
func CurrencyCode(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldCurrencyCode, v))
}

// TxDate applies equality check predicate on the "tx_date" field. It's identical to TxDateEQ.
func TxDate(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldTxDate, v))
}

// Merchant applies equality check predicate on the "merchant" field. It's identical to MerchantEQ.
func Merchant(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldMerchant, v))
}

// CategoryID applies equality check predicate on the "category_id" field. It's identical to CategoryIDEQ.
func CategoryID(v uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldCategoryID, v))
}

// CategoryName applies equality check predicate on the "category_name" field. It's identical to CategoryNameEQ.
func CategoryName(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldCategoryName, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float32) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldConfidence, v))
}

// SourceType applies equality check predicate on the "source_type" field. It's identical to SourceTypeEQ.
func SourceType(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldSourceType, v))
}

// LineItemIndex applies equality check predicate on the "line_item_index" field. It's identical to LineItemIndexEQ.
func LineItemIndex(v int) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldLineItemIndex, v))
}

// OriginalText applies equality check predicate on the "original_text" field. It's identical to OriginalTextEQ.
func OriginalText(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldOriginalText, v))
}

// Approved applies equality check predicate on the "approved" field. It's identical to ApprovedEQ.
func Approved(v bool) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldApproved, v))
}

// ApprovedAt applies equality check predicate on the "approved_at" field. It's identical to ApprovedAtEQ.
func ApprovedAt(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldApprovedAt, v))
}

// TransactionID applies equality check predicate on the "transaction_id" field. It's identical to TransactionIDEQ.
func TransactionID(v uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldTransactionID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldCreatedAt, v))
}

// OcrResultIDEQ applies the EQ predicate on the "ocr_result_id" field.
func OcrResultIDEQ(v uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldOcrResultID, v))
}

// OcrResultIDNEQ applies the NEQ predicate on the "ocr_result_id" field.
func OcrResultIDNEQ(v uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNEQ(FieldOcrResultID, v))
}

// OcrResultIDIn applies the In predicate on the "ocr_result_id" field.
func OcrResultIDIn(vs ...uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIn(FieldOcrResultID, vs...))
}

// OcrResultIDNotIn applies the NotIn predicate on the "ocr_result_id" field.
func OcrResultIDNotIn(vs ...uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotIn(FieldOcrResultID, vs...))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotIn(FieldDocumentID, vs...))
}

// DocumentIDGT applies the GT predicate on the "document_id" field.
func DocumentIDGT(v uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGT(FieldDocumentID, v))
}

// DocumentIDGTE applies the GTE predicate on the "document_id" field.
func DocumentIDGTE(v uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGTE(FieldDocumentID, v))
}

// DocumentIDLT applies the LT predicate on the "document_id" field.
func DocumentIDLT(v uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLT(FieldDocumentID, v))
}

// DocumentIDLTE applies the LTE predicate on the "document_id" field.
func DocumentIDLTE(v uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLTE(FieldDocumentID, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldContainsFold(FieldDescription, v))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v float64) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v float64) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...float64) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...float64) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v float64) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v float64) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v float64) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v float64) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLTE(FieldAmount, v))
}

// CurrencyCodeEQ applies the EQ predicate on the "currency_code" field.
func CurrencyCodeEQ(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldCurrencyCode, v))
}

// CurrencyCodeNEQ applies the NEQ predicate on the "currency_code" field.
func CurrencyCodeNEQ(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNEQ(FieldCurrencyCode, v))
}

// CurrencyCodeIn applies the In predicate on the "currency_code" field.
func CurrencyCodeIn(vs ...string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIn(FieldCurrencyCode, vs...))
}

// CurrencyCodeNotIn applies the NotIn predicate on the "currency_code" field.
func CurrencyCodeNotIn(vs ...string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotIn(FieldCurrencyCode, vs...))
}

// CurrencyCodeGT applies the GT predicate on the "currency_code" field.
func CurrencyCodeGT(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGT(FieldCurrencyCode, v))
}

// CurrencyCodeGTE applies the GTE predicate on the "currency_code" field.
func CurrencyCodeGTE(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGTE(FieldCurrencyCode, v))
}

// CurrencyCodeLT applies the LT predicate on the "currency_code" field.
func CurrencyCodeLT(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLT(FieldCurrencyCode, v))
}

// CurrencyCodeLTE applies the LTE predicate on the "currency_code" field.
func CurrencyCodeLTE(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLTE(FieldCurrencyCode, v))
}

// CurrencyCodeContains applies the Contains predicate on the "currency_code" field.
func CurrencyCodeContains(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldContains(FieldCurrencyCode, v))
}

// CurrencyCodeHasPrefix applies the HasPrefix predicate on the "currency_code" field.
func CurrencyCodeHasPrefix(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldHasPrefix(FieldCurrencyCode, v))
}

// CurrencyCodeHasSuffix applies the HasSuffix predicate on the "currency_code" field.
func CurrencyCodeHasSuffix(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldHasSuffix(FieldCurrencyCode, v))
}

// CurrencyCodeEqualFold applies the EqualFold predicate on the "currency_code" field.
func CurrencyCodeEqualFold(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEqualFold(FieldCurrencyCode, v))
}

// CurrencyCodeContainsFold applies the ContainsFold predicate on the "currency_code" field.
func CurrencyCodeContainsFold(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldContainsFold(FieldCurrencyCode, v))
}

// TxDateEQ applies the EQ predicate on the "tx_date" field.
func TxDateEQ(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldTxDate, v))
}

// TxDateNEQ applies the NEQ predicate on the "tx_date" field.
func TxDateNEQ(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNEQ(FieldTxDate, v))
}

// TxDateIn applies the In predicate on the "tx_date" field.
func TxDateIn(vs ...time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIn(FieldTxDate, vs...))
}

// TxDateNotIn applies the NotIn predicate on the "tx_date" field.
func TxDateNotIn(vs ...time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotIn(FieldTxDate, vs...))
}

// TxDateGT applies the GT predicate on the "tx_date" field.
func TxDateGT(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGT(FieldTxDate, v))
}

// TxDateGTE applies the GTE predicate on the "tx_date" field.
func TxDateGTE(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGTE(FieldTxDate, v))
}

// TxDateLT applies the LT predicate on the "tx_date" field.
func TxDateLT(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLT(FieldTxDate, v))
}

// TxDateLTE applies the LTE predicate on the "tx_date" field.
func TxDateLTE(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLTE(FieldTxDate, v))
}

// MerchantEQ applies the EQ predicate on the "merchant" field.
func MerchantEQ(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldMerchant, v))
}

// MerchantNEQ applies the NEQ predicate on the "merchant" field.
func MerchantNEQ(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNEQ(FieldMerchant, v))
}

// MerchantIn applies the In predicate on the "merchant" field.
func MerchantIn(vs ...string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIn(FieldMerchant, vs...))
}

// MerchantNotIn applies the NotIn predicate on the "merchant" field.
func MerchantNotIn(vs ...string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotIn(FieldMerchant, vs...))
}

// MerchantGT applies the GT predicate on the "merchant" field.
func MerchantGT(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGT(FieldMerchant, v))
}

// MerchantGTE applies the GTE predicate on the "merchant" field.
func MerchantGTE(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGTE(FieldMerchant, v))
}

// MerchantLT applies the LT predicate on the "merchant" field.
func MerchantLT(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLT(FieldMerchant, v))
}

// MerchantLTE applies the LTE predicate on the "merchant" field.
func MerchantLTE(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLTE(FieldMerchant, v))
}

// MerchantContains applies the Contains predicate on the "merchant" field.
func MerchantContains(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldContains(FieldMerchant, v))
}

// MerchantHasPrefix applies the HasPrefix predicate on the "merchant" field.
func MerchantHasPrefix(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldHasPrefix(FieldMerchant, v))
}

// MerchantHasSuffix applies the HasSuffix predicate on the "merchant" field.
func MerchantHasSuffix(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldHasSuffix(FieldMerchant, v))
}

// MerchantIsNil applies the IsNil predicate on the "merchant" field.
func MerchantIsNil() predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIsNull(FieldMerchant))
}

// MerchantNotNil applies the NotNil predicate on the "merchant" field.
func MerchantNotNil() predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotNull(FieldMerchant))
}

// MerchantEqualFold applies the EqualFold predicate on the "merchant" field.
func MerchantEqualFold(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEqualFold(FieldMerchant, v))
}

// MerchantContainsFold applies the ContainsFold predicate on the "merchant" field.
func MerchantContainsFold(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldContainsFold(FieldMerchant, v))
}

// CategoryIDEQ applies the EQ predicate on the "category_id" field.
func CategoryIDEQ(v uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldCategoryID, v))
}

// CategoryIDNEQ applies the NEQ predicate on the "category_id" field.
func CategoryIDNEQ(v uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNEQ(FieldCategoryID, v))
}

// CategoryIDIn applies the In predicate on the "category_id" field.
func CategoryIDIn(vs ...uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIn(FieldCategoryID, vs...))
}

// CategoryIDNotIn applies the NotIn predicate on the "category_id" field.
func CategoryIDNotIn(vs ...uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotIn(FieldCategoryID, vs...))
}

// CategoryIDGT applies the GT predicate on the "category_id" field.
func CategoryIDGT(v uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGT(FieldCategoryID, v))
}

// CategoryIDGTE applies the GTE predicate on the "category_id" field.
func CategoryIDGTE(v uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGTE(FieldCategoryID, v))
}

// CategoryIDLT applies the LT predicate on the "category_id" field.
func CategoryIDLT(v uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLT(FieldCategoryID, v))
}

// CategoryIDLTE applies the LTE predicate on the "category_id" field.
func CategoryIDLTE(v uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLTE(FieldCategoryID, v))
}

// CategoryIDIsNil applies the IsNil predicate on the "category_id" field.
func CategoryIDIsNil() predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIsNull(FieldCategoryID))
}

// CategoryIDNotNil applies the NotNil predicate on the "category_id" field.
func CategoryIDNotNil() predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotNull(FieldCategoryID))
}

// CategoryNameEQ applies the EQ predicate on the "category_name" field.
func CategoryNameEQ(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldCategoryName, v))
}

// CategoryNameNEQ applies the NEQ predicate on the "category_name" field.
func CategoryNameNEQ(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNEQ(FieldCategoryName, v))
}

// CategoryNameIn applies the In predicate on the "category_name" field.
func CategoryNameIn(vs ...string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIn(FieldCategoryName, vs...))
}

// CategoryNameNotIn applies the NotIn predicate on the "category_name" field.
func CategoryNameNotIn(vs ...string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotIn(FieldCategoryName, vs...))
}

// CategoryNameGT applies the GT predicate on the "category_name" field.
func CategoryNameGT(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGT(FieldCategoryName, v))
}

// CategoryNameGTE applies the GTE predicate on the "category_name" field.
func CategoryNameGTE(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGTE(FieldCategoryName, v))
}

// CategoryNameLT applies the LT predicate on the "category_name" field.
func CategoryNameLT(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLT(FieldCategoryName, v))
}

// CategoryNameLTE applies the LTE predicate on the "category_name" field.
func CategoryNameLTE(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLTE(FieldCategoryName, v))
}

// CategoryNameContains applies the Contains predicate on the "category_name" field.
func CategoryNameContains(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldContains(FieldCategoryName, v))
}

// CategoryNameHasPrefix applies the HasPrefix predicate on the "category_name" field.
func CategoryNameHasPrefix(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldHasPrefix(FieldCategoryName, v))
}

// CategoryNameHasSuffix applies the HasSuffix predicate on the "category_name" field.
func CategoryNameHasSuffix(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldHasSuffix(FieldCategoryName, v))
}

// CategoryNameIsNil applies the IsNil predicate on the "category_name" field.
func CategoryNameIsNil() predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIsNull(FieldCategoryName))
}

// CategoryNameNotNil applies the NotNil predicate on the "category_name" field.
func CategoryNameNotNil() predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotNull(FieldCategoryName))
}

// CategoryNameEqualFold applies the EqualFold predicate on the "category_name" field.
func CategoryNameEqualFold(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEqualFold(FieldCategoryName, v))
}

// CategoryNameContainsFold applies the ContainsFold predicate on the "category_name" field.
func CategoryNameContainsFold(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldContainsFold(FieldCategoryName, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float32) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float32) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float32) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float32) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float32) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float32) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float32) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float32) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLTE(FieldConfidence, v))
}

// SourceTypeEQ applies the EQ predicate on the "source_type" field.
func SourceTypeEQ(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldSourceType, v))
}

// SourceTypeNEQ applies the NEQ predicate on the "source_type" field.
func SourceTypeNEQ(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNEQ(FieldSourceType, v))
}

// SourceTypeIn applies the In predicate on the "source_type" field.
func SourceTypeIn(vs ...string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIn(FieldSourceType, vs...))
}

// SourceTypeNotIn applies the NotIn predicate on the "source_type" field.
func SourceTypeNotIn(vs ...string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotIn(FieldSourceType, vs...))
}

// SourceTypeGT applies the GT predicate on the "source_type" field.
func SourceTypeGT(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGT(FieldSourceType, v))
}

// SourceTypeGTE applies the GTE predicate on the "source_type" field.
func SourceTypeGTE(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGTE(FieldSourceType, v))
}

// SourceTypeLT applies the LT predicate on the "source_type" field.
func SourceTypeLT(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLT(FieldSourceType, v))
}

// SourceTypeLTE applies the LTE predicate on the "source_type" field.
func SourceTypeLTE(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLTE(FieldSourceType, v))
}

// SourceTypeContains applies the Contains predicate on the "source_type" field.
func SourceTypeContains(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldContains(FieldSourceType, v))
}

// SourceTypeHasPrefix applies the HasPrefix predicate on the "source_type" field.
func SourceTypeHasPrefix(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldHasPrefix(FieldSourceType, v))
}

// SourceTypeHasSuffix applies the HasSuffix predicate on the "source_type" field.
func SourceTypeHasSuffix(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldHasSuffix(FieldSourceType, v))
}

// SourceTypeEqualFold applies the EqualFold predicate on the "source_type" field.
func SourceTypeEqualFold(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEqualFold(FieldSourceType, v))
}

// SourceTypeContainsFold applies the ContainsFold predicate on the "source_type" field.
func SourceTypeContainsFold(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldContainsFold(FieldSourceType, v))
}

// LineItemIndexEQ applies the EQ predicate on the "line_item_index" field.
func LineItemIndexEQ(v int) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldLineItemIndex, v))
}

// LineItemIndexNEQ applies the NEQ predicate on the "line_item_index" field.
func LineItemIndexNEQ(v int) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNEQ(FieldLineItemIndex, v))
}

// LineItemIndexIn applies the In predicate on the "line_item_index" field.
func LineItemIndexIn(vs ...int) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIn(FieldLineItemIndex, vs...))
}

// LineItemIndexNotIn applies the NotIn predicate on the "line_item_index" field.
func LineItemIndexNotIn(vs ...int) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotIn(FieldLineItemIndex, vs...))
}

// LineItemIndexGT applies the GT predicate on the "line_item_index" field.
func LineItemIndexGT(v int) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGT(FieldLineItemIndex, v))
}

// LineItemIndexGTE applies the GTE predicate on the "line_item_index" field.
func LineItemIndexGTE(v int) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGTE(FieldLineItemIndex, v))
}

// LineItemIndexLT applies the LT predicate on the "line_item_index" field.
func LineItemIndexLT(v int) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLT(FieldLineItemIndex, v))
}

// LineItemIndexLTE applies the LTE predicate on the "line_item_index" field.
func LineItemIndexLTE(v int) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLTE(FieldLineItemIndex, v))
}

// LineItemIndexIsNil applies the IsNil predicate on the "line_item_index" field.
func LineItemIndexIsNil() predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIsNull(FieldLineItemIndex))
}

// LineItemIndexNotNil applies the NotNil predicate on the "line_item_index" field.
func LineItemIndexNotNil() predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotNull(FieldLineItemIndex))
}

// OriginalTextEQ applies the EQ predicate on the "original_text" field.
func OriginalTextEQ(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldOriginalText, v))
}

// OriginalTextNEQ applies the NEQ predicate on the "original_text" field.
func OriginalTextNEQ(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNEQ(FieldOriginalText, v))
}

// OriginalTextIn applies the In predicate on the "original_text" field.
func OriginalTextIn(vs ...string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIn(FieldOriginalText, vs...))
}

// OriginalTextNotIn applies the NotIn predicate on the "original_text" field.
func OriginalTextNotIn(vs ...string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotIn(FieldOriginalText, vs...))
}

// OriginalTextGT applies the GT predicate on the "original_text" field.
func OriginalTextGT(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGT(FieldOriginalText, v))
}

// OriginalTextGTE applies the GTE predicate on the "original_text" field.
func OriginalTextGTE(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGTE(FieldOriginalText, v))
}

// OriginalTextLT applies the LT predicate on the "original_text" field.
func OriginalTextLT(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLT(FieldOriginalText, v))
}

// OriginalTextLTE applies the LTE predicate on the "original_text" field.
func OriginalTextLTE(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLTE(FieldOriginalText, v))
}

// OriginalTextContains applies the Contains predicate on the "original_text" field.
func OriginalTextContains(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldContains(FieldOriginalText, v))
}

// OriginalTextHasPrefix applies the HasPrefix predicate on the "original_text" field.
func OriginalTextHasPrefix(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldHasPrefix(FieldOriginalText, v))
}

// OriginalTextHasSuffix applies the HasSuffix predicate on the "original_text" field.
func OriginalTextHasSuffix(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldHasSuffix(FieldOriginalText, v))
}

// OriginalTextIsNil applies the IsNil predicate on the "original_text" field.
func OriginalTextIsNil() predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIsNull(FieldOriginalText))
}

// OriginalTextNotNil applies the NotNil predicate on the "original_text" field.
func OriginalTextNotNil() predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotNull(FieldOriginalText))
}

// OriginalTextEqualFold applies the EqualFold predicate on the "original_text" field.
func OriginalTextEqualFold(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEqualFold(FieldOriginalText, v))
}

// OriginalTextContainsFold applies the ContainsFold predicate on the "original_text" field.
func OriginalTextContainsFold(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldContainsFold(FieldOriginalText, v))
}

// ApprovedEQ applies the EQ predicate on the "approved" field.
func ApprovedEQ(v bool) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldApproved, v))
}

// ApprovedNEQ applies the NEQ predicate on the "approved" field.
func ApprovedNEQ(v bool) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNEQ(FieldApproved, v))
}

// ApprovedAtEQ applies the EQ predicate on the "approved_at" field.
func ApprovedAtEQ(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldApprovedAt, v))
}

// ApprovedAtNEQ applies the NEQ predicate on the "approved_at" field.
func ApprovedAtNEQ(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNEQ(FieldApprovedAt, v))
}

// ApprovedAtIn applies the In predicate on the "approved_at" field.
func ApprovedAtIn(vs ...time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIn(FieldApprovedAt, vs...))
}

// ApprovedAtNotIn applies the NotIn predicate on the "approved_at" field.
func ApprovedAtNotIn(vs ...time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotIn(FieldApprovedAt, vs...))
}

// ApprovedAtGT applies the GT predicate on the "approved_at" field.
func ApprovedAtGT(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGT(FieldApprovedAt, v))
}

// ApprovedAtGTE applies the GTE predicate on the "approved_at" field.
func ApprovedAtGTE(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGTE(FieldApprovedAt, v))
}

// ApprovedAtLT applies the LT predicate on the "approved_at" field.
func ApprovedAtLT(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLT(FieldApprovedAt, v))
}

// ApprovedAtLTE applies the LTE predicate on the "approved_at" field.
func ApprovedAtLTE(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLTE(FieldApprovedAt, v))
}

// ApprovedAtIsNil applies the IsNil predicate on the "approved_at" field.
func ApprovedAtIsNil() predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIsNull(FieldApprovedAt))
}

// ApprovedAtNotNil applies the NotNil predicate on the "approved_at" field.
func ApprovedAtNotNil() predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotNull(FieldApprovedAt))
}

// TransactionIDEQ applies the EQ predicate on the "transaction_id" field.
func TransactionIDEQ(v uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldTransactionID, v))
}

// TransactionIDNEQ applies the NEQ predicate on the "transaction_id" field.
func TransactionIDNEQ(v uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNEQ(FieldTransactionID, v))
}

// TransactionIDIn applies the In predicate on the "transaction_id" field.
func TransactionIDIn(vs ...uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIn(FieldTransactionID, vs...))
}

// TransactionIDNotIn applies the NotIn predicate on the "transaction_id" field.
func TransactionIDNotIn(vs ...uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotIn(FieldTransactionID, vs...))
}

// TransactionIDGT applies the GT predicate on the "transaction_id" field.
func TransactionIDGT(v uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGT(FieldTransactionID, v))
}

// TransactionIDGTE applies the GTE predicate on the "transaction_id" field.
func TransactionIDGTE(v uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGTE(FieldTransactionID, v))
}

// TransactionIDLT applies the LT predicate on the "transaction_id" field.
func TransactionIDLT(v uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLT(FieldTransactionID, v))
}

// TransactionIDLTE applies the LTE predicate on the "transaction_id" field.
func TransactionIDLTE(v uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLTE(FieldTransactionID, v))
}

// TransactionIDIsNil applies the IsNil predicate on the "transaction_id" field.
func TransactionIDIsNil() predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIsNull(FieldTransactionID))
}

// TransactionIDNotNil applies the NotNil predicate on the "transaction_id" field.
func TransactionIDNotNil() predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotNull(FieldTransactionID))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLTE(FieldCreatedAt, v))
}

// HasOcrResult applies the HasEdge predicate on the "ocr_result" edge.
func HasOcrResult() predicate.Suggestion {
	return predicate.Suggestion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, OcrResultTable, OcrResultColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOcrResultWith applies the HasEdge predicate on the "ocr_result" edge with a given conditions (other predicates).
func HasOcrResultWith(preds ...predicate.OcrResult) predicate.Suggestion {
	return predicate.Suggestion(func(s *sql.Selector) {
		step := newOcrResultStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Suggestion) predicate.Suggestion {
	return predicate.Suggestion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Suggestion) predicate.Suggestion {
	return predicate.Suggestion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Suggestion) predicate.Suggestion {
	return predicate.Suggestion(sql.NotPredicates(p))
}
