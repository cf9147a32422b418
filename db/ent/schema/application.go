package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/oguzakin/eligibility-tracker/constants"
	"github.com/oguzakin/eligibility-tracker/db/ent/schema/utils"
)

type Application struct{ ent.Schema }

func (Application) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "applications"},
	}
}

func (Application) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// Upstream identity of the application in the source system.
		field.Int64("source_id").Unique(),
		field.String("tracking_no").NotEmpty().Unique(),
		field.String("service_id").NotEmpty().
			Validate(utils.EnumValidator(constants.ServiceIDs...)),
		field.String("service_name").Optional(),
		field.String("applicant_name").Optional(),
		field.String("national_id").MaxLen(11),
		field.String("status").
			Default(string(constants.AppStatusPending)).
			Validate(utils.EnumValidator(
				string(constants.AppStatusPending),
				string(constants.AppStatusProcessing),
				string(constants.AppStatusDone),
				string(constants.AppStatusFailed),
			)),
		field.String("error_message").Optional().Nillable(),
		field.Time("submitted_at").Optional().Nillable(),
		field.Time("processing_from").Optional().Nillable(),
		field.Time("processed_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
	}
}

func (Application) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE application -> MANY documents
		edge.To("documents", Document.Type),
		// ONE application -> MANY analysis runs
		edge.To("results", AnalysisResult.Type),
	}
}

func (Application) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
	}
}
