// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/ocrresult"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/suggestion"
)

// SuggestionCreate is the builder for creating a Suggestion entity.
type SuggestionCreate struct {
	config
	mutation *SuggestionMutation
	hooks    []Hook
}

// SetOcrResultID sets the "ocr_result_id" field.
func (_c *SuggestionCreate) SetOcrResultID(v uuid.UUID) *SuggestionCreate {
	_c.mutation.SetOcrResultID(v)
	return _c
}

// SetDocumentID sets the "document_id" field.
func (_c *SuggestionCreate) SetDocumentID(v uuid.UUID) *SuggestionCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *SuggestionCreate) SetDescription(v string) *SuggestionCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetAmount sets the "amount" field.
func (_c *SuggestionCreate) SetAmount(v float64) *SuggestionCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetCurrencyCode sets the "currency_code" field.
func (_c *SuggestionCreate) SetCurrencyCode(v string) *SuggestionCreate {
	_c.mutation.SetCurrencyCode(v)
	return _c
}

// SetTxDate sets the "tx_date" field.
func (_c *SuggestionCreate) SetTxDate(v time.Time) *SuggestionCreate {
	_c.mutation.SetTxDate(v)
	return _c
}

// SetMerchant sets the "merchant" field.
func (_c *SuggestionCreate) SetMerchant(v string) *SuggestionCreate {
	_c.mutation.SetMerchant(v)
	return _c
}

// SetNillableMerchant sets the "merchant" field if the given value is not nil.
func (_c *SuggestionCreate) SetNillableMerchant(v *string) *SuggestionCreate {
	if v != nil {
		_c.SetMerchant(*v)
	}
	return _c
}

// SetCategoryID sets the "category_id" field.
func (_c *SuggestionCreate) SetCategoryID(v uuid.UUID) *SuggestionCreate {
	_c.mutation.SetCategoryID(v)
	return _c
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_c *SuggestionCreate) SetNillableCategoryID(v *uuid.UUID) *SuggestionCreate {
	if v != nil {
		_c.SetCategoryID(*v)
	}
	return _c
}

// SetCategoryName sets the "category_name" field.
func (_c *SuggestionCreate) SetCategoryName(v string) *SuggestionCreate {
	_c.mutation.SetCategoryName(v)
	return _c
}

// SetNillableCategoryName sets the "category_name" field if the given value is not nil.
func (_c *SuggestionCreate) SetNillableCategoryName(v *string) *SuggestionCreate {
	if v != nil {
		_c.SetCategoryName(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *SuggestionCreate) SetConfidence(v float32) *SuggestionCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetSourceType sets the "source_type" field.
func (_c *SuggestionCreate) SetSourceType(v string) *SuggestionCreate {
	_c.mutation.SetSourceType(v)
	return _c
}

// SetLineItemIndex sets the "line_item_index" field.
func (_c *SuggestionCreate) SetLineItemIndex(v int) *SuggestionCreate {
	_c.mutation.SetLineItemIndex(v)
	return _c
}

// SetNillableLineItemIndex sets the "line_item_index" field if the given value is not nil.
func (_c *SuggestionCreate) SetNillableLineItemIndex(v *int) *SuggestionCreate {
	if v != nil {
		_c.SetLineItemIndex(*v)
	}
	return _c
}

// SetOriginalText sets the "original_text" field.
func (_c *SuggestionCreate) SetOriginalText(v string) *SuggestionCreate {
	_c.mutation.SetOriginalText(v)
	return _c
}

// SetNillableOriginalText sets the "original_text" field if the given value is not nil.
func (_c *SuggestionCreate) SetNillableOriginalText(v *string) *SuggestionCreate {
	if v != nil {
		_c.SetOriginalText(*v)
	}
	return _c
}

// SetApproved sets the "approved" field.
func (_c *SuggestionCreate) SetApproved(v bool) *SuggestionCreate {
	_c.mutation.SetApproved(v)
	return _c
}

// SetNillableApproved sets the "approved" field if the given value is not nil.
func (_c *SuggestionCreate) SetNillableApproved(v *bool) *SuggestionCreate {
	if v != nil {
		_c.SetApproved(*v)
	}
	return _c
}

// SetApprovedAt sets the "approved_at" field.
func (_c *SuggestionCreate) SetApprovedAt(v time.Time) *SuggestionCreate {
	_c.mutation.SetApprovedAt(v)
	return _c
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_c *SuggestionCreate) SetNillableApprovedAt(v *time.Time) *SuggestionCreate {
	if v != nil {
		_c.SetApprovedAt(*v)
	}
	return _c
}

// SetTransactionID sets the "transaction_id" field.
func (_c *SuggestionCreate) SetTransactionID(v uuid.UUID) *SuggestionCreate {
	_c.mutation.SetTransactionID(v)
	return _c
}

// SetNillableTransactionID sets the "transaction_id" field if the given value is not nil.
func (_c *SuggestionCreate) SetNillableTransactionID(v *uuid.UUID) *SuggestionCreate {
	if v != nil {
		_c.SetTransactionID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SuggestionCreate) SetCreatedAt(v time.Time) *SuggestionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SuggestionCreate) SetNillableCreatedAt(v *time.Time) *SuggestionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SuggestionCreate) SetID(v uuid.UUID) *SuggestionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SuggestionCreate) SetNillableID(v *uuid.UUID) *SuggestionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetOcrResult sets the "ocr_result" edge to the OcrResult entity.
func (_c *SuggestionCreate) SetOcrResult(v *OcrResult) *SuggestionCreate {
	return _c.SetOcrResultID(v.ID)
}

// Mutation returns the SuggestionMutation object of the builder.
func (_c *SuggestionCreate) Mutation() *SuggestionMutation {
	return _c.mutation
}

// Save creates the Suggestion in the database.
func (_c *SuggestionCreate) Save(ctx context.Context) (*Suggestion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SuggestionCreate) SaveX(ctx context.Context) *Suggestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SuggestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SuggestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SuggestionCreate) defaults() {
	if _, ok := _c.mutation.Approved(); !ok {
		v := suggestion.DefaultApproved
		_c.mutation.SetApproved(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := suggestion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := suggestion.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SuggestionCreate) check() error {
	if _, ok := _c.mutation.OcrResultID(); !ok {
		return &ValidationError{Name: "ocr_result_id", err: errors.New(`ent: missing required field "Suggestion.ocr_result_id"`)}
	}
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "Suggestion.document_id"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Suggestion.description"`)}
	}
	if v, ok := _c.mutation.Description(); ok {
		if err := suggestion.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Suggestion.description": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "Suggestion.amount"`)}
	}
	if _, ok := _c.mutation.CurrencyCode(); !ok {
		return &ValidationError{Name: "currency_code", err: errors.New(`ent: missing required field "Suggestion.currency_code"`)}
	}
	if v, ok := _c.mutation.CurrencyCode(); ok {
		if err := suggestion.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "Suggestion.currency_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TxDate(); !ok {
		return &ValidationError{Name: "tx_date", err: errors.New(`ent: missing required field "Suggestion.tx_date"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "Suggestion.confidence"`)}
	}
	if v, ok := _c.mutation.Confidence(); ok {
		if err := suggestion.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "Suggestion.confidence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceType(); !ok {
		return &ValidationError{Name: "source_type", err: errors.New(`ent: missing required field "Suggestion.source_type"`)}
	}
	if v, ok := _c.mutation.SourceType(); ok {
		if err := suggestion.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "Suggestion.source_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Approved(); !ok {
		return &ValidationError{Name: "approved", err: errors.New(`ent: missing required field "Suggestion.approved"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Suggestion.created_at"`)}
	}
	if len(_c.mutation.OcrResultIDs()) == 0 {
		return &ValidationError{Name: "ocr_result", err: errors.New(`ent: missing required edge "Suggestion.ocr_result"`)}
	}
	return nil
}

func (_c *SuggestionCreate) sqlSave(ctx context.Context) (*Suggestion, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SuggestionCreate) createSpec() (*Suggestion, *sqlgraph.CreateSpec) {
	var (
		_node = &Suggestion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(suggestion.Table, sqlgraph.NewFieldSpec(suggestion.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.DocumentID(); ok {
		_spec.SetField(suggestion.FieldDocumentID, field.TypeUUID, value)
		_node.DocumentID = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(suggestion.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(suggestion.FieldAmount, field.TypeFloat64, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.CurrencyCode(); ok {
		_spec.SetField(suggestion.FieldCurrencyCode, field.TypeString, value)
		_node.CurrencyCode = value
	}
	if value, ok := _c.mutation.TxDate(); ok {
		_spec.SetField(suggestion.FieldTxDate, field.TypeTime, value)
		_node.TxDate = value
	}
	if value, ok := _c.mutation.Merchant(); ok {
		_spec.SetField(suggestion.FieldMerchant, field.TypeString, value)
		_node.Merchant = &value
	}
	if value, ok := _c.mutation.CategoryID(); ok {
		_spec.SetField(suggestion.FieldCategoryID, field.TypeUUID, value)
		_node.CategoryID = &value
	}
	if value, ok := _c.mutation.CategoryName(); ok {
		_spec.SetField(suggestion.FieldCategoryName, field.TypeString, value)
		_node.CategoryName = &value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(suggestion.FieldConfidence, field.TypeFloat32, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.SourceType(); ok {
		_spec.SetField(suggestion.FieldSourceType, field.TypeString, value)
		_node.SourceType = value
	}
	if value, ok := _c.mutation.LineItemIndex(); ok {
		_spec.SetField(suggestion.FieldLineItemIndex, field.TypeInt, value)
		_node.LineItemIndex = &value
	}
	if value, ok := _c.mutation.OriginalText(); ok {
		_spec.SetField(suggestion.FieldOriginalText, field.TypeString, value)
		_node.OriginalText = &value
	}
	if value, ok := _c.mutation.Approved(); ok {
		_spec.SetField(suggestion.FieldApproved, field.TypeBool, value)
		_node.Approved = value
	}
	if value, ok := _c.mutation.ApprovedAt(); ok {
		_spec.SetField(suggestion.FieldApprovedAt, field.TypeTime, value)
		_node.ApprovedAt = &value
	}
	if value, ok := _c.mutation.TransactionID(); ok {
		_spec.SetField(suggestion.FieldTransactionID, field.TypeUUID, value)
		_node.TransactionID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(suggestion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.OcrResultIDs(); len(nodes) > 0 {
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
		_node.OcrResultID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SuggestionCreateBulk is the builder for creating many Suggestion entities in bulk.
type SuggestionCreateBulk struct {
	config
	err      error
	builders []*SuggestionCreate
}

// Save creates the Suggestion entities in the database.
func (_c *SuggestionCreateBulk) Save(ctx context.Context) ([]*Suggestion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Suggestion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SuggestionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SuggestionCreateBulk) SaveX(ctx context.Context) []*Suggestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SuggestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SuggestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
