// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/document"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/ocrresult"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/suggestion"
)

// OcrResultCreate is the builder for creating a OcrResult entity.
type OcrResultCreate struct {
	config
	mutation *OcrResultMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *OcrResultCreate) SetDocumentID(v uuid.UUID) *OcrResultCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetDocumentType sets the "document_type" field.
func (_c *OcrResultCreate) SetDocumentType(v string) *OcrResultCreate {
	_c.mutation.SetDocumentType(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *OcrResultCreate) SetConfidence(v float32) *OcrResultCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetRawText sets the "raw_text" field.
func (_c *OcrResultCreate) SetRawText(v string) *OcrResultCreate {
	_c.mutation.SetRawText(v)
	return _c
}

// SetExtractedJSON sets the "extracted_json" field.
func (_c *OcrResultCreate) SetExtractedJSON(v json.RawMessage) *OcrResultCreate {
	_c.mutation.SetExtractedJSON(v)
	return _c
}

// SetEngineName sets the "engine_name" field.
func (_c *OcrResultCreate) SetEngineName(v string) *OcrResultCreate {
	_c.mutation.SetEngineName(v)
	return _c
}

// SetFormat sets the "format" field.
func (_c *OcrResultCreate) SetFormat(v string) *OcrResultCreate {
	_c.mutation.SetFormat(v)
	return _c
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_c *OcrResultCreate) SetNillableFormat(v *string) *OcrResultCreate {
	if v != nil {
		_c.SetFormat(*v)
	}
	return _c
}

// SetPageCount sets the "page_count" field.
func (_c *OcrResultCreate) SetPageCount(v int) *OcrResultCreate {
	_c.mutation.SetPageCount(v)
	return _c
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_c *OcrResultCreate) SetNillablePageCount(v *int) *OcrResultCreate {
	if v != nil {
		_c.SetPageCount(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *OcrResultCreate) SetDurationMs(v int64) *OcrResultCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *OcrResultCreate) SetNillableDurationMs(v *int64) *OcrResultCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *OcrResultCreate) SetCreatedAt(v time.Time) *OcrResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OcrResultCreate) SetNillableCreatedAt(v *time.Time) *OcrResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OcrResultCreate) SetID(v uuid.UUID) *OcrResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *OcrResultCreate) SetNillableID(v *uuid.UUID) *OcrResultCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *OcrResultCreate) SetDocument(v *Document) *OcrResultCreate {
	return _c.SetDocumentID(v.ID)
}

// AddSuggestionIDs adds the "suggestions" edge to the Suggestion entity by IDs.
func (_c *OcrResultCreate) AddSuggestionIDs(ids ...uuid.UUID) *OcrResultCreate {
	_c.mutation.AddSuggestionIDs(ids...)
	return _c
}

// AddSuggestions adds the "suggestions" edges to the Suggestion entity.
func (_c *OcrResultCreate) AddSuggestions(v ...*Suggestion) *OcrResultCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSuggestionIDs(ids...)
}

// Mutation returns the OcrResultMutation object of the builder.
func (_c *OcrResultCreate) Mutation() *OcrResultMutation {
	return _c.mutation
}

// Save creates the OcrResult in the database.
func (_c *OcrResultCreate) Save(ctx context.Context) (*OcrResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OcrResultCreate) SaveX(ctx context.Context) *OcrResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OcrResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OcrResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OcrResultCreate) defaults() {
	if _, ok := _c.mutation.PageCount(); !ok {
		v := ocrresult.DefaultPageCount
		_c.mutation.SetPageCount(v)
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := ocrresult.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := ocrresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := ocrresult.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OcrResultCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "OcrResult.document_id"`)}
	}
	if _, ok := _c.mutation.DocumentType(); !ok {
		return &ValidationError{Name: "document_type", err: errors.New(`ent: missing required field "OcrResult.document_type"`)}
	}
	if v, ok := _c.mutation.DocumentType(); ok {
		if err := ocrresult.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "OcrResult.document_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "OcrResult.confidence"`)}
	}
	if v, ok := _c.mutation.Confidence(); ok {
		if err := ocrresult.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "OcrResult.confidence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RawText(); !ok {
		return &ValidationError{Name: "raw_text", err: errors.New(`ent: missing required field "OcrResult.raw_text"`)}
	}
	if _, ok := _c.mutation.EngineName(); !ok {
		return &ValidationError{Name: "engine_name", err: errors.New(`ent: missing required field "OcrResult.engine_name"`)}
	}
	if v, ok := _c.mutation.EngineName(); ok {
		if err := ocrresult.EngineNameValidator(v); err != nil {
			return &ValidationError{Name: "engine_name", err: fmt.Errorf(`ent: validator failed for field "OcrResult.engine_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PageCount(); !ok {
		return &ValidationError{Name: "page_count", err: errors.New(`ent: missing required field "OcrResult.page_count"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "OcrResult.duration_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "OcrResult.created_at"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "OcrResult.document"`)}
	}
	return nil
}

func (_c *OcrResultCreate) sqlSave(ctx context.Context) (*OcrResult, error) {
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

func (_c *OcrResultCreate) createSpec() (*OcrResult, *sqlgraph.CreateSpec) {
	var (
		_node = &OcrResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ocrresult.Table, sqlgraph.NewFieldSpec(ocrresult.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.DocumentType(); ok {
		_spec.SetField(ocrresult.FieldDocumentType, field.TypeString, value)
		_node.DocumentType = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(ocrresult.FieldConfidence, field.TypeFloat32, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.RawText(); ok {
		_spec.SetField(ocrresult.FieldRawText, field.TypeString, value)
		_node.RawText = value
	}
	if value, ok := _c.mutation.ExtractedJSON(); ok {
		_spec.SetField(ocrresult.FieldExtractedJSON, field.TypeJSON, value)
		_node.ExtractedJSON = value
	}
	if value, ok := _c.mutation.EngineName(); ok {
		_spec.SetField(ocrresult.FieldEngineName, field.TypeString, value)
		_node.EngineName = value
	}
	if value, ok := _c.mutation.Format(); ok {
		_spec.SetField(ocrresult.FieldFormat, field.TypeString, value)
		_node.Format = value
	}
	if value, ok := _c.mutation.PageCount(); ok {
		_spec.SetField(ocrresult.FieldPageCount, field.TypeInt, value)
		_node.PageCount = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(ocrresult.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(ocrresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ocrresult.DocumentTable,
			Columns: []string{ocrresult.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SuggestionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   ocrresult.SuggestionsTable,
			Columns: []string{ocrresult.SuggestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(suggestion.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OcrResultCreateBulk is the builder for creating many OcrResult entities in bulk.
type OcrResultCreateBulk struct {
	config
	err      error
	builders []*OcrResultCreate
}

// Save creates the OcrResult entities in the database.
func (_c *OcrResultCreateBulk) Save(ctx context.Context) ([]*OcrResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OcrResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OcrResultMutation)
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
func (_c *OcrResultCreateBulk) SaveX(ctx context.Context) []*OcrResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OcrResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OcrResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
