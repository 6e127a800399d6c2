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
	"github.com/pvillanueva/fup-consult/constants"
	"github.com/pvillanueva/fup-consult/utils"

	"github.com/google/uuid"
)

type BatchJob struct{ ent.Schema }

func (BatchJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "batch_jobs"},
	}
}

func (BatchJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("filename").NotEmpty(),
		field.String("status").
			Default(string(constants.JobStatusPending)).
			Validate(utils.EnumValidator(constants.JobStatuses...)),
		// total_items is fixed at creation; only the counters move.
		field.Int("total_items").NonNegative().Immutable(),
		field.Int("completed_items").Default(0).NonNegative(),
		field.Int("failed_items").Default(0).NonNegative(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("started_at").Optional().Nillable(),
		field.Time("completed_at").Optional().Nillable(),
		field.String("result_file").Optional().Nillable(),
		field.String("error_message").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
	}
}

func (BatchJob) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE job -> MANY items; items die with the job.
		edge.To("items", BatchItem.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (BatchJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
	}
}
