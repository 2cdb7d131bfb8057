// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/ocrresult"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/predicate"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/suggestion"
)

// SuggestionUpdate is the builder for updating Suggestion entities.
type SuggestionUpdate struct {
	config
	hooks    []Hook
	mutation *SuggestionMutation
}

// Where appends a list predicates to the SuggestionUpdate builder.
func (_u *SuggestionUpdate) Where(ps ...predicate.Suggestion) *SuggestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOcrResultID sets the "ocr_result_id" field.
func (_u *SuggestionUpdate) SetOcrResultID(v uuid.UUID) *SuggestionUpdate {
	_u.mutation.SetOcrResultID(v)
	return _u
}

// SetNillableOcrResultID sets the "ocr_result_id" field if the given value is not nil.
func (_u *SuggestionUpdate) SetNillableOcrResultID(v *uuid.UUID) *SuggestionUpdate {
	if v != nil {
		_u.SetOcrResultID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *SuggestionUpdate) SetDocumentID(v uuid.UUID) *SuggestionUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *SuggestionUpdate) SetNillableDocumentID(v *uuid.UUID) *SuggestionUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SuggestionUpdate) SetDescription(v string) *SuggestionUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SuggestionUpdate) SetNillableDescription(v *string) *SuggestionUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *SuggestionUpdate) SetAmount(v float64) *SuggestionUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *SuggestionUpdate) SetNillableAmount(v *float64) *SuggestionUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *SuggestionUpdate) AddAmount(v float64) *SuggestionUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetCurrencyCode sets the "currency_code" field.
func (_u *SuggestionUpdate) SetCurrencyCode(v string) *SuggestionUpdate {
	_u.mutation.SetCurrencyCode(v)
	return _u
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_u *SuggestionUpdate) SetNillableCurrencyCode(v *string) *SuggestionUpdate {
	if v != nil {
		_u.SetCurrencyCode(*v)
	}
	return _u
}

// SetTxDate sets the "tx_date" field.
func (_u *SuggestionUpdate) SetTxDate(v time.Time) *SuggestionUpdate {
	_u.mutation.SetTxDate(v)
	return _u
}

// SetNillableTxDate sets the "tx_date" field if the given value is not nil.
func (_u *SuggestionUpdate) SetNillableTxDate(v *time.Time) *SuggestionUpdate {
	if v != nil {
		_u.SetTxDate(*v)
	}
	return _u
}

// SetMerchant sets the "merchant" field.
func (_u *SuggestionUpdate) SetMerchant(v string) *SuggestionUpdate {
	_u.mutation.SetMerchant(v)
	return _u
}

// SetNillableMerchant sets the "merchant" field if the given value is not nil.
func (_u *SuggestionUpdate) SetNillableMerchant(v *string) *SuggestionUpdate {
	if v != nil {
		_u.SetMerchant(*v)
	}
	return _u
}

// ClearMerchant clears the value of the "merchant" field.
func (_u *SuggestionUpdate) ClearMerchant() *SuggestionUpdate {
	_u.mutation.ClearMerchant()
	return _u
}

// SetCategoryID sets the "category_id" field.
func (_u *SuggestionUpdate) SetCategoryID(v uuid.UUID) *SuggestionUpdate {
	_u.mutation.SetCategoryID(v)
	return _u
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_u *SuggestionUpdate) SetNillableCategoryID(v *uuid.UUID) *SuggestionUpdate {
	if v != nil {
		_u.SetCategoryID(*v)
	}
	return _u
}

// ClearCategoryID clears the value of the "category_id" field.
func (_u *SuggestionUpdate) ClearCategoryID() *SuggestionUpdate {
	_u.mutation.ClearCategoryID()
	return _u
}

// SetCategoryName sets the "category_name" field.
func (_u *SuggestionUpdate) SetCategoryName(v string) *SuggestionUpdate {
	_u.mutation.SetCategoryName(v)
	return _u
}

// SetNillableCategoryName sets the "category_name" field if the given value is not nil.
func (_u *SuggestionUpdate) SetNillableCategoryName(v *string) *SuggestionUpdate {
	if v != nil {
		_u.SetCategoryName(*v)
	}
	return _u
}

// ClearCategoryName clears the value of the "category_name" field.
func (_u *SuggestionUpdate) ClearCategoryName() *SuggestionUpdate {
	_u.mutation.ClearCategoryName()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *SuggestionUpdate) SetConfidence(v float32) *SuggestionUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *SuggestionUpdate) SetNillableConfidence(v *float32) *SuggestionUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *SuggestionUpdate) AddConfidence(v float32) *SuggestionUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *SuggestionUpdate) SetSourceType(v string) *SuggestionUpdate {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *SuggestionUpdate) SetNillableSourceType(v *string) *SuggestionUpdate {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetLineItemIndex sets the "line_item_index" field.
func (_u *SuggestionUpdate) SetLineItemIndex(v int) *SuggestionUpdate {
	_u.mutation.ResetLineItemIndex()
	_u.mutation.SetLineItemIndex(v)
	return _u
}

// SetNillableLineItemIndex sets the "line_item_index" field if the given value is not nil.
func (_u *SuggestionUpdate) SetNillableLineItemIndex(v *int) *SuggestionUpdate {
	if v != nil {
		_u.SetLineItemIndex(*v)
	}
	return _u
}

// AddLineItemIndex adds value to the "line_item_index" field.
func (_u *SuggestionUpdate) AddLineItemIndex(v int) *SuggestionUpdate {
	_u.mutation.AddLineItemIndex(v)
	return _u
}

// ClearLineItemIndex clears the value of the "line_item_index" field.
func (_u *SuggestionUpdate) ClearLineItemIndex() *SuggestionUpdate {
	_u.mutation.ClearLineItemIndex()
	return _u
}

// SetOriginalText sets the "original_text" field.
func (_u *SuggestionUpdate) SetOriginalText(v string) *SuggestionUpdate {
	_u.mutation.SetOriginalText(v)
	return _u
}

// SetNillableOriginalText sets the "original_text" field if the given value is not nil.
func (_u *SuggestionUpdate) SetNillableOriginalText(v *string) *SuggestionUpdate {
	if v != nil {
		_u.SetOriginalText(*v)
	}
	return _u
}

// ClearOriginalText clears the value of the "original_text" field.
func (_u *SuggestionUpdate) ClearOriginalText() *SuggestionUpdate {
	_u.mutation.ClearOriginalText()
	return _u
}

// SetApproved sets the "approved" field.
func (_u *SuggestionUpdate) SetApproved(v bool) *SuggestionUpdate {
	_u.mutation.SetApproved(v)
	return _u
}

// SetNillableApproved sets the "approved" field if the given value is not nil.
func (_u *SuggestionUpdate) SetNillableApproved(v *bool) *SuggestionUpdate {
	if v != nil {
		_u.SetApproved(*v)
	}
	return _u
}

// SetApprovedAt sets the "approved_at" field.
func (_u *SuggestionUpdate) SetApprovedAt(v time.Time) *SuggestionUpdate {
	_u.mutation.SetApprovedAt(v)
	return _u
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_u *SuggestionUpdate) SetNillableApprovedAt(v *time.Time) *SuggestionUpdate {
	if v != nil {
		_u.SetApprovedAt(*v)
	}
	return _u
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (_u *SuggestionUpdate) ClearApprovedAt() *SuggestionUpdate {
	_u.mutation.ClearApprovedAt()
	return _u
}

// SetTransactionID sets the "transaction_id" field.
func (_u *SuggestionUpdate) SetTransactionID(v uuid.UUID) *SuggestionUpdate {
	_u.mutation.SetTransactionID(v)
	return _u
}

// SetNillableTransactionID sets the "transaction_id" field if the given value is not nil.
func (_u *SuggestionUpdate) SetNillableTransactionID(v *uuid.UUID) *SuggestionUpdate {
	if v != nil {
		_u.SetTransactionID(*v)
	}
	return _u
}

// ClearTransactionID clears the value of the "transaction_id" field.
func (_u *SuggestionUpdate) ClearTransactionID() *SuggestionUpdate {
	_u.mutation.ClearTransactionID()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SuggestionUpdate) SetCreatedAt(v time.Time) *SuggestionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SuggestionUpdate) SetNillableCreatedAt(v *time.Time) *SuggestionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetOcrResult sets the "ocr_result" edge to the OcrResult entity.
func (_u *SuggestionUpdate) SetOcrResult(v *OcrResult) *SuggestionUpdate {
	return _u.SetOcrResultID(v.ID)
}

// Mutation returns the SuggestionMutation object of the builder.
func (_u *SuggestionUpdate) Mutation() *SuggestionMutation {
	return _u.mutation
}

// ClearOcrResult clears the "ocr_result" edge to the OcrResult entity.
func (_u *SuggestionUpdate) ClearOcrResult() *SuggestionUpdate {
	_u.mutation.ClearOcrResult()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SuggestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SuggestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SuggestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SuggestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SuggestionUpdate) check() error {
	if v, ok := _u.mutation.Description(); ok {
		if err := suggestion.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Suggestion.description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrencyCode(); ok {
		if err := suggestion.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "Suggestion.currency_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := suggestion.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "Suggestion.confidence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceType(); ok {
		if err := suggestion.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "Suggestion.source_type": %w`, err)}
		}
	}
	if _u.mutation.OcrResultCleared() && len(_u.mutation.OcrResultIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Suggestion.ocr_result"`)
	}
	return nil
}

func (_u *SuggestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(suggestion.Table, suggestion.Columns, sqlgraph.NewFieldSpec(suggestion.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocumentID(); ok {
		_spec.SetField(suggestion.FieldDocumentID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(suggestion.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(suggestion.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(suggestion.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CurrencyCode(); ok {
		_spec.SetField(suggestion.FieldCurrencyCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.TxDate(); ok {
		_spec.SetField(suggestion.FieldTxDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Merchant(); ok {
		_spec.SetField(suggestion.FieldMerchant, field.TypeString, value)
	}
	if _u.mutation.MerchantCleared() {
		_spec.ClearField(suggestion.FieldMerchant, field.TypeString)
	}
	if value, ok := _u.mutation.CategoryID(); ok {
		_spec.SetField(suggestion.FieldCategoryID, field.TypeUUID, value)
	}
	if _u.mutation.CategoryIDCleared() {
		_spec.ClearField(suggestion.FieldCategoryID, field.TypeUUID)
	}
	if value, ok := _u.mutation.CategoryName(); ok {
		_spec.SetField(suggestion.FieldCategoryName, field.TypeString, value)
	}
	if _u.mutation.CategoryNameCleared() {
		_spec.ClearField(suggestion.FieldCategoryName, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(suggestion.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(suggestion.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(suggestion.FieldSourceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.LineItemIndex(); ok {
		_spec.SetField(suggestion.FieldLineItemIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLineItemIndex(); ok {
		_spec.AddField(suggestion.FieldLineItemIndex, field.TypeInt, value)
	}
	if _u.mutation.LineItemIndexCleared() {
		_spec.ClearField(suggestion.FieldLineItemIndex, field.TypeInt)
	}
	if value, ok := _u.mutation.OriginalText(); ok {
		_spec.SetField(suggestion.FieldOriginalText, field.TypeString, value)
	}
	if _u.mutation.OriginalTextCleared() {
		_spec.ClearField(suggestion.FieldOriginalText, field.TypeString)
	}
	if value, ok := _u.mutation.Approved(); ok {
		_spec.SetField(suggestion.FieldApproved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ApprovedAt(); ok {
		_spec.SetField(suggestion.FieldApprovedAt, field.TypeTime, value)
	}
	if _u.mutation.ApprovedAtCleared() {
		_spec.ClearField(suggestion.FieldApprovedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TransactionID(); ok {
		_spec.SetField(suggestion.FieldTransactionID, field.TypeUUID, value)
	}
	if _u.mutation.TransactionIDCleared() {
		_spec.ClearField(suggestion.FieldTransactionID, field.TypeUUID)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(suggestion.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.OcrResultCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   suggestion.OcrResultTable,
			Columns: []string{suggestion.OcrResultColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ocrresult.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OcrResultIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   suggestion.OcrResultTable,
			Columns: []string{suggestion.OcrResultColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ocrresult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{suggestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SuggestionUpdateOne is the builder for updating a single Suggestion entity.
type SuggestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SuggestionMutation
}

// SetOcrResultID sets the "ocr_result_id" field.
func (_u *SuggestionUpdateOne) SetOcrResultID(v uuid.UUID) *SuggestionUpdateOne {
	_u.mutation.SetOcrResultID(v)
	return _u
}

// SetNillableOcrResultID sets the "ocr_result_id" field if the given value is not nil.
func (_u *SuggestionUpdateOne) SetNillableOcrResultID(v *uuid.UUID) *SuggestionUpdateOne {
	if v != nil {
		_u.SetOcrResultID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *SuggestionUpdateOne) SetDocumentID(v uuid.UUID) *SuggestionUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *SuggestionUpdateOne) SetNillableDocumentID(v *uuid.UUID) *SuggestionUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SuggestionUpdateOne) SetDescription(v string) *SuggestionUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SuggestionUpdateOne) SetNillableDescription(v *string) *SuggestionUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *SuggestionUpdateOne) SetAmount(v float64) *SuggestionUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *SuggestionUpdateOne) SetNillableAmount(v *float64) *SuggestionUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *SuggestionUpdateOne) AddAmount(v float64) *SuggestionUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetCurrencyCode sets the "currency_code" field.
func (_u *SuggestionUpdateOne) SetCurrencyCode(v string) *SuggestionUpdateOne {
	_u.mutation.SetCurrencyCode(v)
	return _u
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_u *SuggestionUpdateOne) SetNillableCurrencyCode(v *string) *SuggestionUpdateOne {
	if v != nil {
		_u.SetCurrencyCode(*v)
	}
	return _u
}

// SetTxDate sets the "tx_date" field.
func (_u *SuggestionUpdateOne) SetTxDate(v time.Time) *SuggestionUpdateOne {
	_u.mutation.SetTxDate(v)
	return _u
}

// SetNillableTxDate sets the "tx_date" field if the given value is not nil.
func (_u *SuggestionUpdateOne) SetNillableTxDate(v *time.Time) *SuggestionUpdateOne {
	if v != nil {
		_u.SetTxDate(*v)
	}
	return _u
}

// SetMerchant sets the "merchant" field.
func (_u *SuggestionUpdateOne) SetMerchant(v string) *SuggestionUpdateOne {
	_u.mutation.SetMerchant(v)
	return _u
}

// SetNillableMerchant sets the "merchant" field if the given value is not nil.
func (_u *SuggestionUpdateOne) SetNillableMerchant(v *string) *SuggestionUpdateOne {
	if v != nil {
		_u.SetMerchant(*v)
	}
	return _u
}

// ClearMerchant clears the value of the "merchant" field.
func (_u *SuggestionUpdateOne) ClearMerchant() *SuggestionUpdateOne {
	_u.mutation.ClearMerchant()
	return _u
}

// SetCategoryID sets the "category_id" field.
func (_u *SuggestionUpdateOne) SetCategoryID(v uuid.UUID) *SuggestionUpdateOne {
	_u.mutation.SetCategoryID(v)
	return _u
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_u *SuggestionUpdateOne) SetNillableCategoryID(v *uuid.UUID) *SuggestionUpdateOne {
	if v != nil {
		_u.SetCategoryID(*v)
	}
	return _u
}

// ClearCategoryID clears the value of the "category_id" field.
func (_u *SuggestionUpdateOne) ClearCategoryID() *SuggestionUpdateOne {
	_u.mutation.ClearCategoryID()
	return _u
}

// SetCategoryName sets the "category_name" field.
func (_u *SuggestionUpdateOne) SetCategoryName(v string) *SuggestionUpdateOne {
	_u.mutation.SetCategoryName(v)
	return _u
}

// SetNillableCategoryName sets the "category_name" field if the given value is not nil.
func (_u *SuggestionUpdateOne) SetNillableCategoryName(v *string) *SuggestionUpdateOne {
	if v != nil {
		_u.SetCategoryName(*v)
	}
	return _u
}

// ClearCategoryName clears the value of the "category_name" field.
func (_u *SuggestionUpdateOne) ClearCategoryName() *SuggestionUpdateOne {
	_u.mutation.ClearCategoryName()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *SuggestionUpdateOne) SetConfidence(v float32) *SuggestionUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *SuggestionUpdateOne) SetNillableConfidence(v *float32) *SuggestionUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *SuggestionUpdateOne) AddConfidence(v float32) *SuggestionUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *SuggestionUpdateOne) SetSourceType(v string) *SuggestionUpdateOne {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *SuggestionUpdateOne) SetNillableSourceType(v *string) *SuggestionUpdateOne {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetLineItemIndex sets the "line_item_index" field.
func (_u *SuggestionUpdateOne) SetLineItemIndex(v int) *SuggestionUpdateOne {
	_u.mutation.ResetLineItemIndex()
	_u.mutation.SetLineItemIndex(v)
	return _u
}

// SetNillableLineItemIndex sets the "line_item_index" field if the given value is not nil.
func (_u *SuggestionUpdateOne) SetNillableLineItemIndex(v *int) *SuggestionUpdateOne {
	if v != nil {
		_u.SetLineItemIndex(*v)
	}
	return _u
}

// AddLineItemIndex adds value to the "line_item_index" field.
func (_u *SuggestionUpdateOne) AddLineItemIndex(v int) *SuggestionUpdateOne {
	_u.mutation.AddLineItemIndex(v)
	return _u
}

// ClearLineItemIndex clears the value of the "line_item_index" field.
func (_u *SuggestionUpdateOne) ClearLineItemIndex() *SuggestionUpdateOne {
	_u.mutation.ClearLineItemIndex()
	return _u
}

// SetOriginalText sets the "original_text" field.
func (_u *SuggestionUpdateOne) SetOriginalText(v string) *SuggestionUpdateOne {
	_u.mutation.SetOriginalText(v)
	return _u
}

// SetNillableOriginalText sets the "original_text" field if the given value is not nil.
func (_u *SuggestionUpdateOne) SetNillableOriginalText(v *string) *SuggestionUpdateOne {
	if v != nil {
		_u.SetOriginalText(*v)
	}
	return _u
}

// ClearOriginalText clears the value of the "original_text" field.
func (_u *SuggestionUpdateOne) ClearOriginalText() *SuggestionUpdateOne {
	_u.mutation.ClearOriginalText()
	return _u
}

// SetApproved sets the "approved" field.
func (_u *SuggestionUpdateOne) SetApproved(v bool) *SuggestionUpdateOne {
	_u.mutation.SetApproved(v)
	return _u
}

// SetNillableApproved sets the "approved" field if the given value is not nil.
func (_u *SuggestionUpdateOne) SetNillableApproved(v *bool) *SuggestionUpdateOne {
	if v != nil {
		_u.SetApproved(*v)
	}
	return _u
}

// SetApprovedAt sets the "approved_at" field.
func (_u *SuggestionUpdateOne) SetApprovedAt(v time.Time) *SuggestionUpdateOne {
	_u.mutation.SetApprovedAt(v)
	return _u
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_u *SuggestionUpdateOne) SetNillableApprovedAt(v *time.Time) *SuggestionUpdateOne {
	if v != nil {
		_u.SetApprovedAt(*v)
	}
	return _u
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (_u *SuggestionUpdateOne) ClearApprovedAt() *SuggestionUpdateOne {
	_u.mutation.ClearApprovedAt()
	return _u
}

// SetTransactionID sets the "transaction_id" field.
func (_u *SuggestionUpdateOne) SetTransactionID(v uuid.UUID) *SuggestionUpdateOne {
	_u.mutation.SetTransactionID(v)
	return _u
}

// SetNillableTransactionID sets the "transaction_id" field if the given value is not nil.
func (_u *SuggestionUpdateOne) SetNillableTransactionID(v *uuid.UUID) *SuggestionUpdateOne {
	if v != nil {
		_u.SetTransactionID(*v)
	}
	return _u
}

// ClearTransactionID clears the value of the "transaction_id" field.
func (_u *SuggestionUpdateOne) ClearTransactionID() *SuggestionUpdateOne {
	_u.mutation.ClearTransactionID()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SuggestionUpdateOne) SetCreatedAt(v time.Time) *SuggestionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SuggestionUpdateOne) SetNillableCreatedAt(v *time.Time) *SuggestionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetOcrResult sets the "ocr_result" edge to the OcrResult entity.
func (_u *SuggestionUpdateOne) SetOcrResult(v *OcrResult) *SuggestionUpdateOne {
	return _u.SetOcrResultID(v.ID)
}

// Mutation returns the SuggestionMutation object of the builder.
func (_u *SuggestionUpdateOne) Mutation() *SuggestionMutation {
	return _u.mutation
}

// ClearOcrResult clears the "ocr_result" edge to the OcrResult entity.
func (_u *SuggestionUpdateOne) ClearOcrResult() *SuggestionUpdateOne {
	_u.mutation.ClearOcrResult()
	return _u
}

// Where appends a list predicates to the SuggestionUpdate builder.
func (_u *SuggestionUpdateOne) Where(ps ...predicate.Suggestion) *SuggestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SuggestionUpdateOne) Select(field string, fields ...string) *SuggestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Suggestion entity.
func (_u *SuggestionUpdateOne) Save(ctx context.Context) (*Suggestion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SuggestionUpdateOne) SaveX(ctx context.Context) *Suggestion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SuggestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SuggestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SuggestionUpdateOne) check() error {
	if v, ok := _u.mutation.Description(); ok {
		if err := suggestion.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Suggestion.description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrencyCode(); ok {
		if err := suggestion.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "Suggestion.currency_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := suggestion.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "Suggestion.confidence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceType(); ok {
		if err := suggestion.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "Suggestion.source_type": %w`, err)}
		}
	}
	if _u.mutation.OcrResultCleared() && len(_u.mutation.OcrResultIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Suggestion.ocr_result"`)
	}
	return nil
}

func (_u *SuggestionUpdateOne) sqlSave(ctx context.Context) (_node *Suggestion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(suggestion.Table, suggestion.Columns, sqlgraph.NewFieldSpec(suggestion.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Suggestion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, suggestion.FieldID)
		for _, f := range fields {
			if !suggestion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != suggestion.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocumentID(); ok {
		_spec.SetField(suggestion.FieldDocumentID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(suggestion.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(suggestion.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(suggestion.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CurrencyCode(); ok {
		_spec.SetField(suggestion.FieldCurrencyCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.TxDate(); ok {
		_spec.SetField(suggestion.FieldTxDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Merchant(); ok {
		_spec.SetField(suggestion.FieldMerchant, field.TypeString, value)
	}
	if _u.mutation.MerchantCleared() {
		_spec.ClearField(suggestion.FieldMerchant, field.TypeString)
	}
	if value, ok := _u.mutation.CategoryID(); ok {
		_spec.SetField(suggestion.FieldCategoryID, field.TypeUUID, value)
	}
	if _u.mutation.CategoryIDCleared() {
		_spec.ClearField(suggestion.FieldCategoryID, field.TypeUUID)
	}
	if value, ok := _u.mutation.CategoryName(); ok {
		_spec.SetField(suggestion.FieldCategoryName, field.TypeString, value)
	}
	if _u.mutation.CategoryNameCleared() {
		_spec.ClearField(suggestion.FieldCategoryName, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(suggestion.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(suggestion.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(suggestion.FieldSourceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.LineItemIndex(); ok {
		_spec.SetField(suggestion.FieldLineItemIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLineItemIndex(); ok {
		_spec.AddField(suggestion.FieldLineItemIndex, field.TypeInt, value)
	}
	if _u.mutation.LineItemIndexCleared() {
		_spec.ClearField(suggestion.FieldLineItemIndex, field.TypeInt)
	}
	if value, ok := _u.mutation.OriginalText(); ok {
		_spec.SetField(suggestion.FieldOriginalText, field.TypeString, value)
	}
	if _u.mutation.OriginalTextCleared() {
		_spec.ClearField(suggestion.FieldOriginalText, field.TypeString)
	}
	if value, ok := _u.mutation.Approved(); ok {
		_spec.SetField(suggestion.FieldApproved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ApprovedAt(); ok {
		_spec.SetField(suggestion.FieldApprovedAt, field.TypeTime, value)
	}
	if _u.mutation.ApprovedAtCleared() {
		_spec.ClearField(suggestion.FieldApprovedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TransactionID(); ok {
		_spec.SetField(suggestion.FieldTransactionID, field.TypeUUID, value)
	}
	if _u.mutation.TransactionIDCleared() {
		_spec.ClearField(suggestion.FieldTransactionID, field.TypeUUID)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(suggestion.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.OcrResultCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   suggestion.OcrResultTable,
			Columns: []string{suggestion.OcrResultColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ocrresult.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OcrResultIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   suggestion.OcrResultTable,
			Columns: []string{suggestion.OcrResultColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ocrresult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Suggestion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{suggestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
