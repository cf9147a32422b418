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
)

// AnalysisResult is one persisted reconciliation run. Runs are append-only;
// the newest row per application is the current record.
type AnalysisResult struct{ ent.Schema }

func (AnalysisResult) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "analysis_results"},
	}
}

func (AnalysisResult) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.UUID("application_id", uuid.UUID{}),
		field.JSON("fields", json.RawMessage{}),
		field.JSON("provenance", json.RawMessage{}).Optional(),
		field.JSON("conflicts", json.RawMessage{}).Optional(),
		field.JSON("findings", json.RawMessage{}).Optional(),
		field.Bool("docs_complete").Default(false),
		field.JSON("missing_docs", []string{}).Optional(),
		field.String("validation_status").Optional().
			SchemaType(map[string]string{dialect.Postgres: "varchar(16)"}),
		field.Time("analyzed_at").Default(time.Now),
		field.Float("elapsed_sec").Default(0),
	}
}

func (AnalysisResult) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY runs -> ONE application (FK: analysis_results.application_id)
		edge.From("application", Application.Type).
			Ref("results").
			Field("application_id").
			Required().
			Unique(),
	}
}

func (AnalysisResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("application_id", "analyzed_at"),
	}
}
