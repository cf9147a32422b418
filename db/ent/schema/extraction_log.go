package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// ExtractionLog keeps every accepted per-segment model output for audit.
type ExtractionLog struct{ ent.Schema }

func (ExtractionLog) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extraction_log"},
	}
}

func (ExtractionLog) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.UUID("document_id", uuid.UUID{}),
		field.Int("segment_index").Default(0),
		field.Int("segment_start").Default(0),
		field.Int("segment_end").Default(0),
		field.JSON("fields", json.RawMessage{}).Optional(),
		field.JSON("raw_json", json.RawMessage{}).Optional(),
		field.String("model_name").Optional().Nillable(),
		field.Int64("duration_ms").Default(0),
		field.Bool("success").Default(false),
		field.Time("created_at").Default(time.Now),
	}
}

func (ExtractionLog) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY log rows -> ONE document (FK: extraction_log.document_id)
		edge.From("document", Document.Type).
			Ref("extractions").
			Field("document_id").
			Required().
			Unique(),
	}
}

func (ExtractionLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id", "segment_index"),
	}
}
