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
)

type Household struct{ ent.Schema }

func (Household) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "households"},
	}
}

func (Household) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty(),
		field.String("default_currency").NotEmpty().MinLen(3).MaxLen(3).
			SchemaType(map[string]string{dialect.Postgres: "char(3)"}).
			Default("IDR"),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Household) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("members", HouseholdMember.Type),
		edge.To("documents", Document.Type),
		edge.To("accounts", Account.Type),
		edge.To("categories", Category.Type),
		edge.To("transactions", Transaction.Type),
	}
}

type HouseholdMember struct{ ent.Schema }

func (HouseholdMember) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "household_members"},
	}
}

func (HouseholdMember) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("household_id", uuid.UUID{}),
		field.UUID("user_id", uuid.UUID{}),
		field.String("role").Default("member"),
		field.Time("joined_at").Default(time.Now),
	}
}

func (HouseholdMember) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("household", Household.Type).
			Ref("members").
			Field("household_id").
			Required().
			Unique(),
	}
}

func (HouseholdMember) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("household_id", "user_id").Unique(),
	}
}
