// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/document"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/ocrresult"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/predicate"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/suggestion"
)

// OcrResultUpdate is the builder for updating OcrResult entities.
type OcrResultUpdate struct {
	config
	hooks    []Hook
	mutation *OcrResultMutation
}

// Where appends a list predicates to the OcrResultUpdate builder.
func (_u *OcrResultUpdate) Where(ps ...predicate.OcrResult) *OcrResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *OcrResultUpdate) SetDocumentID(v uuid.UUID) *OcrResultUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *OcrResultUpdate) SetNillableDocumentID(v *uuid.UUID) *OcrResultUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *OcrResultUpdate) SetDocumentType(v string) *OcrResultUpdate {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *OcrResultUpdate) SetNillableDocumentType(v *string) *OcrResultUpdate {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *OcrResultUpdate) SetConfidence(v float32) *OcrResultUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *OcrResultUpdate) SetNillableConfidence(v *float32) *OcrResultUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *OcrResultUpdate) AddConfidence(v float32) *OcrResultUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *OcrResultUpdate) SetRawText(v string) *OcrResultUpdate {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *OcrResultUpdate) SetNillableRawText(v *string) *OcrResultUpdate {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// SetExtractedJSON sets the "extracted_json" field.
func (_u *OcrResultUpdate) SetExtractedJSON(v json.RawMessage) *OcrResultUpdate {
	_u.mutation.SetExtractedJSON(v)
	return _u
}

// AppendExtractedJSON appends value to the "extracted_json" field.
func (_u *OcrResultUpdate) AppendExtractedJSON(v json.RawMessage) *OcrResultUpdate {
	_u.mutation.AppendExtractedJSON(v)
	return _u
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (_u *OcrResultUpdate) ClearExtractedJSON() *OcrResultUpdate {
	_u.mutation.ClearExtractedJSON()
	return _u
}

// SetEngineName sets the "engine_name" field.
func (_u *OcrResultUpdate) SetEngineName(v string) *OcrResultUpdate {
	_u.mutation.SetEngineName(v)
	return _u
}

// SetNillableEngineName sets the "engine_name" field if the given value is not nil.
func (_u *OcrResultUpdate) SetNillableEngineName(v *string) *OcrResultUpdate {
	if v != nil {
		_u.SetEngineName(*v)
	}
	return _u
}

// SetFormat sets the "format" field.
func (_u *OcrResultUpdate) SetFormat(v string) *OcrResultUpdate {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *OcrResultUpdate) SetNillableFormat(v *string) *OcrResultUpdate {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// ClearFormat clears the value of the "format" field.
func (_u *OcrResultUpdate) ClearFormat() *OcrResultUpdate {
	_u.mutation.ClearFormat()
	return _u
}

// SetPageCount sets the "page_count" field.
func (_u *OcrResultUpdate) SetPageCount(v int) *OcrResultUpdate {
	_u.mutation.ResetPageCount()
	_u.mutation.SetPageCount(v)
	return _u
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_u *OcrResultUpdate) SetNillablePageCount(v *int) *OcrResultUpdate {
	if v != nil {
		_u.SetPageCount(*v)
	}
	return _u
}

// AddPageCount adds value to the "page_count" field.
func (_u *OcrResultUpdate) AddPageCount(v int) *OcrResultUpdate {
	_u.mutation.AddPageCount(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *OcrResultUpdate) SetDurationMs(v int64) *OcrResultUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *OcrResultUpdate) SetNillableDurationMs(v *int64) *OcrResultUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *OcrResultUpdate) AddDurationMs(v int64) *OcrResultUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *OcrResultUpdate) SetCreatedAt(v time.Time) *OcrResultUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *OcrResultUpdate) SetNillableCreatedAt(v *time.Time) *OcrResultUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *OcrResultUpdate) SetDocument(v *Document) *OcrResultUpdate {
	return _u.SetDocumentID(v.ID)
}

// AddSuggestionIDs adds the "suggestions" edge to the Suggestion entity by IDs.
func (_u *OcrResultUpdate) AddSuggestionIDs(ids ...uuid.UUID) *OcrResultUpdate {
	_u.mutation.AddSuggestionIDs(ids...)
	return _u
}

// AddSuggestions adds the "suggestions" edges to the Suggestion entity.
func (_u *OcrResultUpdate) AddSuggestions(v ...*Suggestion) *OcrResultUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSuggestionIDs(ids...)
}

// Mutation returns the OcrResultMutation object of the builder.
func (_u *OcrResultUpdate) Mutation() *OcrResultMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *OcrResultUpdate) ClearDocument() *OcrResultUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// ClearSuggestions clears all "suggestions" edges to the Suggestion entity.
func (_u *OcrResultUpdate) ClearSuggestions() *OcrResultUpdate {
	_u.mutation.ClearSuggestions()
	return _u
}

// RemoveSuggestionIDs removes the "suggestions" edge to Suggestion entities by IDs.
func (_u *OcrResultUpdate) RemoveSuggestionIDs(ids ...uuid.UUID) *OcrResultUpdate {
	_u.mutation.RemoveSuggestionIDs(ids...)
	return _u
}

// RemoveSuggestions removes "suggestions" edges to Suggestion entities.
func (_u *OcrResultUpdate) RemoveSuggestions(v ...*Suggestion) *OcrResultUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSuggestionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OcrResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OcrResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OcrResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OcrResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OcrResultUpdate) check() error {
	if v, ok := _u.mutation.DocumentType(); ok {
		if err := ocrresult.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "OcrResult.document_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := ocrresult.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "OcrResult.confidence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EngineName(); ok {
		if err := ocrresult.EngineNameValidator(v); err != nil {
			return &ValidationError{Name: "engine_name", err: fmt.Errorf(`ent: validator failed for field "OcrResult.engine_name": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OcrResult.document"`)
	}
	return nil
}

func (_u *OcrResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ocrresult.Table, ocrresult.Columns, sqlgraph.NewFieldSpec(ocrresult.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(ocrresult.FieldDocumentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(ocrresult.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(ocrresult.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(ocrresult.FieldRawText, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedJSON(); ok {
		_spec.SetField(ocrresult.FieldExtractedJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ocrresult.FieldExtractedJSON, value)
		})
	}
	if _u.mutation.ExtractedJSONCleared() {
		_spec.ClearField(ocrresult.FieldExtractedJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.EngineName(); ok {
		_spec.SetField(ocrresult.FieldEngineName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(ocrresult.FieldFormat, field.TypeString, value)
	}
	if _u.mutation.FormatCleared() {
		_spec.ClearField(ocrresult.FieldFormat, field.TypeString)
	}
	if value, ok := _u.mutation.PageCount(); ok {
		_spec.SetField(ocrresult.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageCount(); ok {
		_spec.AddField(ocrresult.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(ocrresult.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(ocrresult.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(ocrresult.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SuggestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSuggestionsIDs(); len(nodes) > 0 && !_u.mutation.SuggestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SuggestionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ocrresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OcrResultUpdateOne is the builder for updating a single OcrResult entity.
type OcrResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OcrResultMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *OcrResultUpdateOne) SetDocumentID(v uuid.UUID) *OcrResultUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *OcrResultUpdateOne) SetNillableDocumentID(v *uuid.UUID) *OcrResultUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *OcrResultUpdateOne) SetDocumentType(v string) *OcrResultUpdateOne {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *OcrResultUpdateOne) SetNillableDocumentType(v *string) *OcrResultUpdateOne {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *OcrResultUpdateOne) SetConfidence(v float32) *OcrResultUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *OcrResultUpdateOne) SetNillableConfidence(v *float32) *OcrResultUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *OcrResultUpdateOne) AddConfidence(v float32) *OcrResultUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *OcrResultUpdateOne) SetRawText(v string) *OcrResultUpdateOne {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *OcrResultUpdateOne) SetNillableRawText(v *string) *OcrResultUpdateOne {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// SetExtractedJSON sets the "extracted_json" field.
func (_u *OcrResultUpdateOne) SetExtractedJSON(v json.RawMessage) *OcrResultUpdateOne {
	_u.mutation.SetExtractedJSON(v)
	return _u
}

// AppendExtractedJSON appends value to the "extracted_json" field.
func (_u *OcrResultUpdateOne) AppendExtractedJSON(v json.RawMessage) *OcrResultUpdateOne {
	_u.mutation.AppendExtractedJSON(v)
	return _u
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (_u *OcrResultUpdateOne) ClearExtractedJSON() *OcrResultUpdateOne {
	_u.mutation.ClearExtractedJSON()
	return _u
}

// SetEngineName sets the "engine_name" field.
func (_u *OcrResultUpdateOne) SetEngineName(v string) *OcrResultUpdateOne {
	_u.mutation.SetEngineName(v)
	return _u
}

// SetNillableEngineName sets the "engine_name" field if the given value is not nil.
func (_u *OcrResultUpdateOne) SetNillableEngineName(v *string) *OcrResultUpdateOne {
	if v != nil {
		_u.SetEngineName(*v)
	}
	return _u
}

// SetFormat sets the "format" field.
func (_u *OcrResultUpdateOne) SetFormat(v string) *OcrResultUpdateOne {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *OcrResultUpdateOne) SetNillableFormat(v *string) *OcrResultUpdateOne {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// ClearFormat clears the value of the "format" field.
func (_u *OcrResultUpdateOne) ClearFormat() *OcrResultUpdateOne {
	_u.mutation.ClearFormat()
	return _u
}

// SetPageCount sets the "page_count" field.
func (_u *OcrResultUpdateOne) SetPageCount(v int) *OcrResultUpdateOne {
	_u.mutation.ResetPageCount()
	_u.mutation.SetPageCount(v)
	return _u
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_u *OcrResultUpdateOne) SetNillablePageCount(v *int) *OcrResultUpdateOne {
	if v != nil {
		_u.SetPageCount(*v)
	}
	return _u
}

// AddPageCount adds value to the "page_count" field.
func (_u *OcrResultUpdateOne) AddPageCount(v int) *OcrResultUpdateOne {
	_u.mutation.AddPageCount(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *OcrResultUpdateOne) SetDurationMs(v int64) *OcrResultUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *OcrResultUpdateOne) SetNillableDurationMs(v *int64) *OcrResultUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *OcrResultUpdateOne) AddDurationMs(v int64) *OcrResultUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *OcrResultUpdateOne) SetCreatedAt(v time.Time) *OcrResultUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *OcrResultUpdateOne) SetNillableCreatedAt(v *time.Time) *OcrResultUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *OcrResultUpdateOne) SetDocument(v *Document) *OcrResultUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// AddSuggestionIDs adds the "suggestions" edge to the Suggestion entity by IDs.
func (_u *OcrResultUpdateOne) AddSuggestionIDs(ids ...uuid.UUID) *OcrResultUpdateOne {
	_u.mutation.AddSuggestionIDs(ids...)
	return _u
}

// AddSuggestions adds the "suggestions" edges to the Suggestion entity.
func (_u *OcrResultUpdateOne) AddSuggestions(v ...*Suggestion) *OcrResultUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSuggestionIDs(ids...)
}

// Mutation returns the OcrResultMutation object of the builder.
func (_u *OcrResultUpdateOne) Mutation() *OcrResultMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *OcrResultUpdateOne) ClearDocument() *OcrResultUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// ClearSuggestions clears all "suggestions" edges to the Suggestion entity.
func (_u *OcrResultUpdateOne) ClearSuggestions() *OcrResultUpdateOne {
	_u.mutation.ClearSuggestions()
	return _u
}

// RemoveSuggestionIDs removes the "suggestions" edge to Suggestion entities by IDs.
func (_u *OcrResultUpdateOne) RemoveSuggestionIDs(ids ...uuid.UUID) *OcrResultUpdateOne {
	_u.mutation.RemoveSuggestionIDs(ids...)
	return _u
}

// RemoveSuggestions removes "suggestions" edges to Suggestion entities.
func (_u *OcrResultUpdateOne) RemoveSuggestions(v ...*Suggestion) *OcrResultUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSuggestionIDs(ids...)
}

// Where appends a list predicates to the OcrResultUpdate builder.
func (_u *OcrResultUpdateOne) Where(ps ...predicate.OcrResult) *OcrResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OcrResultUpdateOne) Select(field string, fields ...string) *OcrResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OcrResult entity.
func (_u *OcrResultUpdateOne) Save(ctx context.Context) (*OcrResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OcrResultUpdateOne) SaveX(ctx context.Context) *OcrResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OcrResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OcrResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OcrResultUpdateOne) check() error {
	if v, ok := _u.mutation.DocumentType(); ok {
		if err := ocrresult.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "OcrResult.document_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := ocrresult.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "OcrResult.confidence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EngineName(); ok {
		if err := ocrresult.EngineNameValidator(v); err != nil {
			return &ValidationError{Name: "engine_name", err: fmt.Errorf(`ent: validator failed for field "OcrResult.engine_name": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OcrResult.document"`)
	}
	return nil
}

func (_u *OcrResultUpdateOne) sqlSave(ctx context.Context) (_node *OcrResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ocrresult.Table, ocrresult.Columns, sqlgraph.NewFieldSpec(ocrresult.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OcrResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ocrresult.FieldID)
		for _, f := range fields {
			if !ocrresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ocrresult.FieldID {
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
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(ocrresult.FieldDocumentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(ocrresult.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(ocrresult.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(ocrresult.FieldRawText, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedJSON(); ok {
		_spec.SetField(ocrresult.FieldExtractedJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ocrresult.FieldExtractedJSON, value)
		})
	}
	if _u.mutation.ExtractedJSONCleared() {
		_spec.ClearField(ocrresult.FieldExtractedJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.EngineName(); ok {
		_spec.SetField(ocrresult.FieldEngineName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(ocrresult.FieldFormat, field.TypeString, value)
	}
	if _u.mutation.FormatCleared() {
		_spec.ClearField(ocrresult.FieldFormat, field.TypeString)
	}
	if value, ok := _u.mutation.PageCount(); ok {
		_spec.SetField(ocrresult.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageCount(); ok {
		_spec.AddField(ocrresult.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(ocrresult.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(ocrresult.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(ocrresult.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SuggestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSuggestionsIDs(); len(nodes) > 0 && !_u.mutation.SuggestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SuggestionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &OcrResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ocrresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
