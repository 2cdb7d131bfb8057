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

type Transaction struct{ ent.Schema }

func (Transaction) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "transactions"},
	}
}

func (Transaction) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("household_id", uuid.UUID{}),
		field.UUID("account_id", uuid.UUID{}),
		field.UUID("category_id", uuid.UUID{}).Optional().Nillable(),
		field.UUID("suggestion_id", uuid.UUID{}).Optional().Nillable().Unique(),
		field.String("description").NotEmpty(),
		// absolute value; the sign lives in "flow"
		field.Float("amount").Positive().
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.String("currency_code").NotEmpty().MinLen(3).MaxLen(3).
			SchemaType(map[string]string{dialect.Postgres: "char(3)"}),
		field.String("flow").NotEmpty().
			Validate(utils.EnumValidator("EXPENSE", "INCOME")),
		field.String("merchant").Optional().Nillable(),
		field.Time("tx_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.UUID("created_by", uuid.UUID{}),
		field.Time("created_at").Default(time.Now),
	}
}

func (Transaction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("household", Household.Type).
			Ref("transactions").
			Field("household_id").
			Required().
			Unique(),
		edge.From("account", Account.Type).
			Ref("transactions").
			Field("account_id").
			Required().
			Unique(),
		edge.From("category", Category.Type).
			Ref("transactions").
			Field("category_id").
			Unique(),
		edge.To("entries", LedgerEntry.Type),
	}
}

func (Transaction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("household_id", "tx_date"),
		index.Fields("account_id"),
	}
}

type LedgerEntry struct{ ent.Schema }

func (LedgerEntry) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "ledger_entries"},
	}
}

func (LedgerEntry) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("transaction_id", uuid.UUID{}),
		field.UUID("account_id", uuid.UUID{}),
		field.String("entry_type").NotEmpty().
			Validate(utils.EnumValidator("DEBIT", "CREDIT")),
		field.Float("amount").Positive().
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.String("currency_code").NotEmpty().MinLen(3).MaxLen(3).
			SchemaType(map[string]string{dialect.Postgres: "char(3)"}),
		field.Time("created_at").Default(time.Now),
	}
}

func (LedgerEntry) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("transaction", Transaction.Type).
			Ref("entries").
			Field("transaction_id").
			Required().
			Unique(),
		edge.From("account", Account.Type).
			Ref("entries").
			Field("account_id").
			Required().
			Unique(),
	}
}

func (LedgerEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("transaction_id"),
		index.Fields("account_id"),
	}
}
