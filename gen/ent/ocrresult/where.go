// Code generated by ent, DO NOT EDIT.

package ocrresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldLTE(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v uuid.UUID) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentType applies equality check predicate on the "document_type" field. It's identical to DocumentTypeEQ.
func DocumentType(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEQ(FieldDocumentType, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float32) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEQ(FieldConfidence, v))
}

// RawText applies equality check predicate on the "raw_text" field. It's identical to RawTextEQ.
func RawText(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEQ(FieldRawText, v))
}

// EngineName applies equality check predicate on the "engine_name" field. It's identical to EngineNameEQ.
func EngineName(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEQ(FieldEngineName, v))
}

// Format applies equality check predicate on the "format" field. It's identical to FormatEQ.
func Format(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEQ(FieldFormat, v))
}

// PageCount applies equality check predicate on the "page_count" field. It's identical to PageCountEQ.
func PageCount(v int) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEQ(FieldPageCount, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEQ(FieldDurationMs, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEQ(FieldCreatedAt, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v uuid.UUID) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v uuid.UUID) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...uuid.UUID) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...uuid.UUID) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldNotIn(FieldDocumentID, vs...))
}

// DocumentTypeEQ applies the EQ predicate on the "document_type" field.
func DocumentTypeEQ(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEQ(FieldDocumentType, v))
}

// DocumentTypeNEQ applies the NEQ predicate on the "document_type" field.
func DocumentTypeNEQ(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldNEQ(FieldDocumentType, v))
}

// DocumentTypeIn applies the In predicate on the "document_type" field.
func DocumentTypeIn(vs ...string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldIn(FieldDocumentType, vs...))
}

// DocumentTypeNotIn applies the NotIn predicate on the "document_type" field.
func DocumentTypeNotIn(vs ...string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldNotIn(FieldDocumentType, vs...))
}

// DocumentTypeGT applies the GT predicate on the "document_type" field.
func DocumentTypeGT(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldGT(FieldDocumentType, v))
}

// DocumentTypeGTE applies the GTE predicate on the "document_type" field.
func DocumentTypeGTE(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldGTE(FieldDocumentType, v))
}

// DocumentTypeLT applies the LT predicate on the "document_type" field.
func DocumentTypeLT(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldLT(FieldDocumentType, v))
}

// DocumentTypeLTE applies the LTE predicate on the "document_type" field.
func DocumentTypeLTE(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldLTE(FieldDocumentType, v))
}

// DocumentTypeContains applies the Contains predicate on the "document_type" field.
func DocumentTypeContains(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldContains(FieldDocumentType, v))
}

// DocumentTypeHasPrefix applies the HasPrefix predicate on the "document_type" field.
func DocumentTypeHasPrefix(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldHasPrefix(FieldDocumentType, v))
}

// DocumentTypeHasSuffix applies the HasSuffix predicate on the "document_type" field.
func DocumentTypeHasSuffix(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldHasSuffix(FieldDocumentType, v))
}

// DocumentTypeEqualFold applies the EqualFold predicate on the "document_type" field.
func DocumentTypeEqualFold(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEqualFold(FieldDocumentType, v))
}

// DocumentTypeContainsFold applies the ContainsFold predicate on the "document_type" field.
func DocumentTypeContainsFold(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldContainsFold(FieldDocumentType, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float32) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float32) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float32) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float32) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float32) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float32) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float32) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float32) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldLTE(FieldConfidence, v))
}

// RawTextEQ applies the EQ predicate on the "raw_text" field.
func RawTextEQ(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEQ(FieldRawText, v))
}

// RawTextNEQ applies the NEQ predicate on the "raw_text" field.
func RawTextNEQ(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldNEQ(FieldRawText, v))
}

// RawTextIn applies the In predicate on the "raw_text" field.
func RawTextIn(vs ...string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldIn(FieldRawText, vs...))
}

// RawTextNotIn applies the NotIn predicate on the "raw_text" field.
func RawTextNotIn(vs ...string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldNotIn(FieldRawText, vs...))
}

// RawTextGT applies the GT predicate on the "raw_text" field.
func RawTextGT(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldGT(FieldRawText, v))
}

// RawTextGTE applies the GTE predicate on the "raw_text" field.
func RawTextGTE(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldGTE(FieldRawText, v))
}

// RawTextLT applies the LT predicate on the "raw_text" field.
func RawTextLT(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldLT(FieldRawText, v))
}

// RawTextLTE applies the LTE predicate on the "raw_text" field.
func RawTextLTE(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldLTE(FieldRawText, v))
}

// RawTextContains applies the Contains predicate on the "raw_text" field.
func RawTextContains(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldContains(FieldRawText, v))
}

// RawTextHasPrefix applies the HasPrefix predicate on the "raw_text" field.
func RawTextHasPrefix(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldHasPrefix(FieldRawText, v))
}

// RawTextHasSuffix applies the HasSuffix predicate on the "raw_text" field.
func RawTextHasSuffix(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldHasSuffix(FieldRawText, v))
}

// RawTextEqualFold applies the EqualFold predicate on the "raw_text" field.
func RawTextEqualFold(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEqualFold(FieldRawText, v))
}

// RawTextContainsFold applies the ContainsFold predicate on the "raw_text" field.
func RawTextContainsFold(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldContainsFold(FieldRawText, v))
}

// ExtractedJSONIsNil applies the IsNil predicate on the "extracted_json" field.
func ExtractedJSONIsNil() predicate.OcrResult {
	return predicate.OcrResult(sql.FieldIsNull(FieldExtractedJSON))
}

// ExtractedJSONNotNil applies the NotNil predicate on the "extracted_json" field.
func ExtractedJSONNotNil() predicate.OcrResult {
	return predicate.OcrResult(sql.FieldNotNull(FieldExtractedJSON))
}

// EngineNameEQ applies the EQ predicate on the "engine_name" field.
func EngineNameEQ(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEQ(FieldEngineName, v))
}

// EngineNameNEQ applies the NEQ predicate on the "engine_name" field.
func EngineNameNEQ(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldNEQ(FieldEngineName, v))
}

// EngineNameIn applies the In predicate on the "engine_name" field.
func EngineNameIn(vs ...string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldIn(FieldEngineName, vs...))
}

// EngineNameNotIn applies the NotIn predicate on the "engine_name" field.
func EngineNameNotIn(vs ...string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldNotIn(FieldEngineName, vs...))
}

// EngineNameGT applies the GT predicate on the "engine_name" field.
func EngineNameGT(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldGT(FieldEngineName, v))
}

// EngineNameGTE applies the GTE predicate on the "engine_name" field.
func EngineNameGTE(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldGTE(FieldEngineName, v))
}

// EngineNameLT applies the LT predicate on the "engine_name" field.
func EngineNameLT(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldLT(FieldEngineName, v))
}

// EngineNameLTE applies the LTE predicate on the "engine_name" field.
func EngineNameLTE(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldLTE(FieldEngineName, v))
}

// EngineNameContains applies the Contains predicate on the "engine_name" field.
func EngineNameContains(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldContains(FieldEngineName, v))
}

// EngineNameHasPrefix applies the HasPrefix predicate on the "engine_name" field.
func EngineNameHasPrefix(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldHasPrefix(FieldEngineName, v))
}

// EngineNameHasSuffix applies the HasSuffix predicate on the "engine_name" field.
func EngineNameHasSuffix(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldHasSuffix(FieldEngineName, v))
}

// EngineNameEqualFold applies the EqualFold predicate on the "engine_name" field.
func EngineNameEqualFold(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEqualFold(FieldEngineName, v))
}

// EngineNameContainsFold applies the ContainsFold predicate on the "engine_name" field.
func EngineNameContainsFold(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldContainsFold(FieldEngineName, v))
}

// FormatEQ applies the EQ predicate on the "format" field.
func FormatEQ(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEQ(FieldFormat, v))
}

// FormatNEQ applies the NEQ predicate on the "format" field.
func FormatNEQ(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldNEQ(FieldFormat, v))
}

// FormatIn applies the In predicate on the "format" field.
func FormatIn(vs ...string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldIn(FieldFormat, vs...))
}

// FormatNotIn applies the NotIn predicate on the "format" field.
func FormatNotIn(vs ...string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldNotIn(FieldFormat, vs...))
}

// FormatGT applies the GT predicate on the "format" field.
func FormatGT(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldGT(FieldFormat, v))
}

// FormatGTE applies the GTE predicate on the "format" field.
func FormatGTE(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldGTE(FieldFormat, v))
}

// FormatLT applies the LT predicate on the "format" field.
func FormatLT(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldLT(FieldFormat, v))
}

// FormatLTE applies the LTE predicate on the "format" field.
func FormatLTE(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldLTE(FieldFormat, v))
}

// FormatContains applies the Contains predicate on the "format" field.
func FormatContains(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldContains(FieldFormat, v))
}

// FormatHasPrefix applies the HasPrefix predicate on the "format" field.
func FormatHasPrefix(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldHasPrefix(FieldFormat, v))
}

// FormatHasSuffix applies the HasSuffix predicate on the "format" field.
func FormatHasSuffix(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldHasSuffix(FieldFormat, v))
}

// FormatIsNil applies the IsNil predicate on the "format" field.
func FormatIsNil() predicate.OcrResult {
	return predicate.OcrResult(sql.FieldIsNull(FieldFormat))
}

// FormatNotNil applies the NotNil predicate on the "format" field.
func FormatNotNil() predicate.OcrResult {
	return predicate.OcrResult(sql.FieldNotNull(FieldFormat))
}

// FormatEqualFold applies the EqualFold predicate on the "format" field.
func FormatEqualFold(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEqualFold(FieldFormat, v))
}

// FormatContainsFold applies the ContainsFold predicate on the "format" field.
func FormatContainsFold(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldContainsFold(FieldFormat, v))
}

// PageCountEQ applies the EQ predicate on the "page_count" field.
func PageCountEQ(v int) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEQ(FieldPageCount, v))
}

// PageCountNEQ applies the NEQ predicate on the "page_count" field.
func PageCountNEQ(v int) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldNEQ(FieldPageCount, v))
}

// PageCountIn applies the In predicate on the "page_count" field.
func PageCountIn(vs ...int) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldIn(FieldPageCount, vs...))
}

// PageCountNotIn applies the NotIn predicate on the "page_count" field.
func PageCountNotIn(vs ...int) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldNotIn(FieldPageCount, vs...))
}

// PageCountGT applies the GT predicate on the "page_count" field.
func PageCountGT(v int) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldGT(FieldPageCount, v))
}

// PageCountGTE applies the GTE predicate on the "page_count" field.
func PageCountGTE(v int) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldGTE(FieldPageCount, v))
}

// PageCountLT applies the LT predicate on the "page_count" field.
func PageCountLT(v int) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldLT(FieldPageCount, v))
}

// PageCountLTE applies the LTE predicate on the "page_count" field.
func PageCountLTE(v int) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldLTE(FieldPageCount, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldLTE(FieldDurationMs, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldLTE(FieldCreatedAt, v))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.OcrResult {
	return predicate.OcrResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.OcrResult {
	return predicate.OcrResult(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSuggestions applies the HasEdge predicate on the "suggestions" edge.
func HasSuggestions() predicate.OcrResult {
	return predicate.OcrResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SuggestionsTable, SuggestionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSuggestionsWith applies the HasEdge predicate on the "suggestions" edge with a given conditions (other predicates).
func HasSuggestionsWith(preds ...predicate.Suggestion) predicate.OcrResult {
	return predicate.OcrResult(func(s *sql.Selector) {
		step := newSuggestionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.OcrResult) predicate.OcrResult {
	return predicate.OcrResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.OcrResult) predicate.OcrResult {
	return predicate.OcrResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.OcrResult) predicate.OcrResult {
	return predicate.OcrResult(sql.NotPredicates(p))
}
