// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/ocrresult"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/suggestion"
)

// Suggestion is the model entity for the Suggestion schema.
type Suggestion struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// OcrResultID holds the value of the "ocr_result_id" field.
	OcrResultID uuid.UUID `json:"ocr_result_id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID uuid.UUID `json:"document_id,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Amount holds the value of the "amount" field.
	Amount float64 `json:"amount,omitempty"`
	// CurrencyCode holds the value of the "currency_code" field.
	CurrencyCode string `json:"currency_code,omitempty"`
	// TxDate holds the value of the "tx_date" field.
	TxDate time.Time `json:"tx_date,omitempty"`
	// Merchant holds the value of the "merchant" field.
	Merchant *string `json:"merchant,omitempty"`
	// CategoryID holds the value of the "category_id" field.
	CategoryID *uuid.UUID `json:"category_id,omitempty"`
	// CategoryName holds the value of the "category_name" field.
	CategoryName *string `json:"category_name,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float32 `json:"confidence,omitempty"`
	// SourceType holds the value of the "source_type" field.
	SourceType string `json:"source_type,omitempty"`
	// LineItemIndex holds the value of the "line_item_index" field.
	LineItemIndex *int `json:"line_item_index,omitempty"`
	// OriginalText holds the value of the "original_text" field.
	OriginalText *string `json:"original_text,omitempty"`
	// Approved holds the value of the "approved" field.
	Approved bool `json:"approved,omitempty"`
	// ApprovedAt holds the value of the "approved_at" field.
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	// TransactionID holds the value of the "transaction_id" field.
	TransactionID *uuid.UUID `json:"transaction_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SuggestionQuery when eager-loading is set.
	Edges        SuggestionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SuggestionEdges holds the relations/edges for other nodes in the graph.
type SuggestionEdges struct {
	// OcrResult holds the value of the ocr_result edge.
	OcrResult *OcrResult `json:"ocr_result,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// OcrResultOrErr returns the OcrResult value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SuggestionEdges) OcrResultOrErr() (*OcrResult, error) {
	if e.OcrResult != nil {
		return e.OcrResult, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: ocrresult.Label}
	}
	return nil, &NotLoadedError{edge: "ocr_result"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Suggestion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case suggestion.FieldCategoryID, suggestion.FieldTransactionID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case suggestion.FieldApproved:
			values[i] = new(sql.NullBool)
		case suggestion.FieldAmount, suggestion.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case suggestion.FieldLineItemIndex:
			values[i] = new(sql.NullInt64)
		case suggestion.FieldDescription, suggestion.FieldCurrencyCode, suggestion.FieldMerchant, suggestion.FieldCategoryName, suggestion.FieldSourceType, suggestion.FieldOriginalText:
			values[i] = new(sql.NullString)
		case suggestion.FieldTxDate, suggestion.FieldApprovedAt, suggestion.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case suggestion.FieldID, suggestion.FieldOcrResultID, suggestion.FieldDocumentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Suggestion fields.
func (_m *Suggestion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case suggestion.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case suggestion.FieldOcrResultID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field ocr_result_id", values[i])
			} else if value != nil {
				_m.OcrResultID = *value
			}
		case suggestion.FieldDocumentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value != nil {
				_m.DocumentID = *value
			}
		case suggestion.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case suggestion.FieldAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field amount", values[i])
			} else if value.Valid {
				_m.Amount = value.Float64
			}
		case suggestion.FieldCurrencyCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field currency_code", values[i])
			} else if value.Valid {
				_m.CurrencyCode = value.String
			}
		case suggestion.FieldTxDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field tx_date", values[i])
			} else if value.Valid {
				_m.TxDate = value.Time
			}
		case suggestion.FieldMerchant:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field merchant", values[i])
			} else if value.Valid {
				_m.Merchant = new(string)
				*_m.Merchant = value.String
			}
		case suggestion.FieldCategoryID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field category_id", values[i])
			} else if value.Valid {
				_m.CategoryID = new(uuid.UUID)
				*_m.CategoryID = *value.S.(*uuid.UUID)
			}
		case suggestion.FieldCategoryName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category_name", values[i])
			} else if value.Valid {
				_m.CategoryName = new(string)
				*_m.CategoryName = value.String
			}
		case suggestion.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = float32(value.Float64)
			}
		case suggestion.FieldSourceType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_type", values[i])
			} else if value.Valid {
				_m.SourceType = value.String
			}
		case suggestion.FieldLineItemIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field line_item_index", values[i])
			} else if value.Valid {
				_m.LineItemIndex = new(int)
				*_m.LineItemIndex = int(value.Int64)
			}
		case suggestion.FieldOriginalText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field original_text", values[i])
			} else if value.Valid {
				_m.OriginalText = new(string)
				*_m.OriginalText = value.String
			}
		case suggestion.FieldApproved:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field approved", values[i])
			} else if value.Valid {
				_m.Approved = value.Bool
			}
		case suggestion.FieldApprovedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field approved_at", values[i])
			} else if value.Valid {
				_m.ApprovedAt = new(time.Time)
				*_m.ApprovedAt = value.Time
			}
		case suggestion.FieldTransactionID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field transaction_id", values[i])
			} else if value.Valid {
				_m.TransactionID = new(uuid.UUID)
				*_m.TransactionID = *value.S.(*uuid.UUID)
			}
		case suggestion.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Suggestion.
// This includes values selected through modifiers, order, etc.
func (_m *Suggestion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryOcrResult queries the "ocr_result" edge of the Suggestion entity.
func (_m *Suggestion) QueryOcrResult() *OcrResultQuery {
	return NewSuggestionClient(_m.config).QueryOcrResult(_m)
}

// Update returns a builder for updating this Suggestion.
// Note that you need to call Suggestion.Unwrap() before calling this method if this Suggestion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Suggestion) Update() *SuggestionUpdateOne {
	return NewSuggestionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Suggestion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Suggestion) Unwrap() *Suggestion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Suggestion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Suggestion) String() string {
	var builder strings.Builder
	builder.WriteString("Suggestion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("ocr_result_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OcrResultID))
	builder.WriteString(", ")
	builder.WriteString("document_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentID))
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.Amount))
	builder.WriteString(", ")
	builder.WriteString("currency_code=")
	builder.WriteString(_m.CurrencyCode)
	builder.WriteString(", ")
	builder.WriteString("tx_date=")
	builder.WriteString(_m.TxDate.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.Merchant; v != nil {
		builder.WriteString("merchant=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CategoryID; v != nil {
		builder.WriteString("category_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CategoryName; v != nil {
		builder.WriteString("category_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("source_type=")
	builder.WriteString(_m.SourceType)
	builder.WriteString(", ")
	if v := _m.LineItemIndex; v != nil {
		builder.WriteString("line_item_index=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.OriginalText; v != nil {
		builder.WriteString("original_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("approved=")
	builder.WriteString(fmt.Sprintf("%v", _m.Approved))
	builder.WriteString(", ")
	if v := _m.ApprovedAt; v != nil {
		builder.WriteString("approved_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.TransactionID; v != nil {
		builder.WriteString("transaction_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Suggestions is a parsable slice of Suggestion.
type Suggestions []*Suggestion
