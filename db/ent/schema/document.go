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
	"github.com/prasetyo-adi/kas-keluarga/constants"
	"github.com/prasetyo-adi/kas-keluarga/db/ent/schema/utils"
)

type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("household_id", uuid.UUID{}),
		field.String("file_name").NotEmpty(),
		field.Int64("file_size").NonNegative(),
		field.String("mime_type").NotEmpty(),
		field.String("document_type").NotEmpty().
			Validate(utils.EnumValidator(constants.DocumentTypes()...)),
		field.String("status").Default(string(constants.StatusPending)),
		field.String("description").Optional().Nillable(),
		// storage token is set once at creation and never rewritten
		field.String("storage_path").NotEmpty().Immutable(),
		field.UUID("uploaded_by", uuid.UUID{}),
		field.Time("uploaded_at").Default(time.Now),
		field.Time("processed_at").Optional().Nillable(),
		field.String("failure_reason").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("household", Household.Type).
			Ref("documents").
			Field("household_id").
			Required().
			Unique(),
		edge.To("ocr_results", OcrResult.Type),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("household_id", "uploaded_at"),
		index.Fields("household_id", "status"),
	}
}
