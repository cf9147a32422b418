package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/oguzakin/eligibility-tracker/constants"
	"github.com/oguzakin/eligibility-tracker/db/ent/schema/utils"
)

type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.UUID("application_id", uuid.UUID{}),
		field.String("filename").NotEmpty(),
		// Upstream label; empty when the source system sent null.
		field.String("declared_type").Optional(),
		field.String("doc_type").Optional(),
		field.String("extension").Optional(),
		field.Int64("size_bytes").Default(0),
		field.Bytes("content").Optional().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.String("status").
			Default(string(constants.DocStatusPending)).
			Validate(utils.EnumValidator(
				string(constants.DocStatusPending),
				string(constants.DocStatusAnalyzed),
				string(constants.DocStatusSkipped),
				string(constants.DocStatusFailed),
			)),
		field.String("note").Optional().Nillable(),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY documents -> ONE application (FK: documents.application_id)
		edge.From("application", Application.Type).
			Ref("documents").
			Field("application_id").
			Required().
			Unique(),
		// ONE document -> MANY extraction log rows
		edge.To("extractions", ExtractionLog.Type),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("application_id", "doc_type"),
		index.Fields("application_id", "status"),
	}
}
