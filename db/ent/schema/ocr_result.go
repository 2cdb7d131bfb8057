package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/prasetyo-adi/kas-keluarga/constants"
	"github.com/prasetyo-adi/kas-keluarga/db/ent/schema/utils"
)

type OcrResult struct{ ent.Schema }

func (OcrResult) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "ocr_results"},
	}
}

func (OcrResult) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("document_id", uuid.UUID{}),
		field.String("document_type").NotEmpty().
			Validate(utils.EnumValidator(constants.DocumentTypes()...)),
		field.Float32("confidence").
			Min(0).Max(1),
		field.String("raw_text").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("extracted_json", json.RawMessage{}).
			Optional(),
		field.String("engine_name").NotEmpty(),
		field.String("format").Optional(),
		field.Int("page_count").Default(0),
		field.Int64("duration_ms").Default(0),
		field.Time("created_at").Default(time.Now),
	}
}

func (OcrResult) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("ocr_results").
			Field("document_id").
			Required().
			Unique(),
		edge.To("suggestions", Suggestion.Type),
	}
}

func (OcrResult) Indexes() []ent.Index {
	return []ent.Index{
		// the newest row per document is the authoritative result
		index.Fields("document_id", "created_at"),
	}
}
