package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/prasetyo-adi/kas-keluarga/db/ent/schema/utils"
)

type Suggestion struct{ ent.Schema }

func (Suggestion) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "transaction_suggestions"},
	}
}

func (Suggestion) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("ocr_result_id", uuid.UUID{}),
		// denormalized for the get-suggestions-by-document query
		field.UUID("document_id", uuid.UUID{}),
		field.String("description").NotEmpty(),
		// signed: negative = outflow
		field.Float("amount").
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.String("currency_code").NotEmpty().MinLen(3).MaxLen(3).
			SchemaType(map[string]string{dialect.Postgres: "char(3)"}),
		field.Time("tx_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("merchant").Optional().Nillable(),
		field.UUID("category_id", uuid.UUID{}).Optional().Nillable(),
		field.String("category_name").Optional().Nillable(),
		field.Float32("confidence").Min(0).Max(1),
		field.String("source_type").NotEmpty().
			Validate(utils.EnumValidator("RECEIPT", "BANK_STATEMENT")),
		field.Int("line_item_index").Optional().Nillable(),
		field.String("original_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Bool("approved").Default(false),
		field.Time("approved_at").Optional().Nillable(),
		field.UUID("transaction_id", uuid.UUID{}).Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
	}
}

func (Suggestion) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("ocr_result", OcrResult.Type).
			Ref("suggestions").
			Field("ocr_result_id").
			Required().
			Unique(),
	}
}

func (Suggestion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id"),
		index.Fields("ocr_result_id"),
		index.Fields("approved"),
	}
}
