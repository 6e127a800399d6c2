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
	"github.com/pvillanueva/fup-consult/constants"
	"github.com/pvillanueva/fup-consult/utils"

	"github.com/google/uuid"
)

type BatchItem struct{ ent.Schema }

func (BatchItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "batch_items"},
	}
}

func (BatchItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK so we can define the composite unique index
		field.UUID("job_id", uuid.UUID{}),
		field.String("ruc").NotEmpty().MaxLen(11),
		field.String("status").
			Default(string(constants.ItemStatusPending)).
			Validate(utils.EnumValidator(constants.ItemStatuses...)),
		field.Int("retry_count").Default(0).NonNegative(),
		field.Int("max_retries").Default(3).NonNegative(),
		field.String("error_message").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("result_data", json.RawMessage{}).
			Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("processed_at").Optional().Nillable(),
	}
}

func (BatchItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", BatchJob.Type).
			Ref("items").
			Field("job_id").
			Unique().
			Required(),
	}
}

func (BatchItem) Indexes() []ent.Index {
	return []ent.Index{
		// duplicate RUCs in one job are rejected at ingestion, the DB backs that up
		index.Fields("job_id", "ruc").Unique(),
		index.Fields("job_id", "status"),
		index.Fields("ruc"),
	}
}
