// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnalysisResultsColumns holds the columns for the "analysis_results" table.
	AnalysisResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "fields", Type: field.TypeJSON},
		{Name: "provenance", Type: field.TypeJSON, Nullable: true},
		{Name: "conflicts", Type: field.TypeJSON, Nullable: true},
		{Name: "findings", Type: field.TypeJSON, Nullable: true},
		{Name: "docs_complete", Type: field.TypeBool, Default: false},
		{Name: "missing_docs", Type: field.TypeJSON, Nullable: true},
		{Name: "validation_status", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "varchar(16)"}},
		{Name: "analyzed_at", Type: field.TypeTime},
		{Name: "elapsed_sec", Type: field.TypeFloat64, Default: 0},
		{Name: "application_id", Type: field.TypeUUID},
	}
	// AnalysisResultsTable holds the schema information for the "analysis_results" table.
	AnalysisResultsTable = &schema.Table{
		Name:       "analysis_results",
		Columns:    AnalysisResultsColumns,
		PrimaryKey: []*schema.Column{AnalysisResultsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "analysis_results_applications_results",
				Columns:    []*schema.Column{AnalysisResultsColumns[10]},
				RefColumns: []*schema.Column{ApplicationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "analysisresult_application_id_analyzed_at",
				Unique:  false,
				Columns: []*schema.Column{AnalysisResultsColumns[10], AnalysisResultsColumns[8]},
			},
		},
	}
	// ApplicationsColumns holds the columns for the "applications" table.
	ApplicationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_id", Type: field.TypeInt64, Unique: true},
		{Name: "tracking_no", Type: field.TypeString, Unique: true},
		{Name: "service_id", Type: field.TypeString},
		{Name: "service_name", Type: field.TypeString, Nullable: true},
		{Name: "applicant_name", Type: field.TypeString, Nullable: true},
		{Name: "national_id", Type: field.TypeString, Size: 11},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "submitted_at", Type: field.TypeTime, Nullable: true},
		{Name: "processing_from", Type: field.TypeTime, Nullable: true},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ApplicationsTable holds the schema information for the "applications" table.
	ApplicationsTable = &schema.Table{
		Name:       "applications",
		Columns:    ApplicationsColumns,
		PrimaryKey: []*schema.Column{ApplicationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "application_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ApplicationsColumns[7], ApplicationsColumns[12]},
			},
		},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "declared_type", Type: field.TypeString, Nullable: true},
		{Name: "doc_type", Type: field.TypeString, Nullable: true},
		{Name: "extension", Type: field.TypeString, Nullable: true},
		{Name: "size_bytes", Type: field.TypeInt64, Default: 0},
		{Name: "content", Type: field.TypeBytes, Nullable: true, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "note", Type: field.TypeString, Nullable: true},
		{Name: "application_id", Type: field.TypeUUID},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "documents_applications_documents",
				Columns:    []*schema.Column{DocumentsColumns[9]},
				RefColumns: []*schema.Column{ApplicationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "document_application_id_doc_type",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[9], DocumentsColumns[3]},
			},
			{
				Name:    "document_application_id_status",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[9], DocumentsColumns[7]},
			},
		},
	}
	// ExtractionLogColumns holds the columns for the "extraction_log" table.
	ExtractionLogColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "segment_index", Type: field.TypeInt, Default: 0},
		{Name: "segment_start", Type: field.TypeInt, Default: 0},
		{Name: "segment_end", Type: field.TypeInt, Default: 0},
		{Name: "fields", Type: field.TypeJSON, Nullable: true},
		{Name: "raw_json", Type: field.TypeJSON, Nullable: true},
		{Name: "model_name", Type: field.TypeString, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// ExtractionLogTable holds the schema information for the "extraction_log" table.
	ExtractionLogTable = &schema.Table{
		Name:       "extraction_log",
		Columns:    ExtractionLogColumns,
		PrimaryKey: []*schema.Column{ExtractionLogColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extraction_log_documents_extractions",
				Columns:    []*schema.Column{ExtractionLogColumns[10]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractionlog_document_id_segment_index",
				Unique:  false,
				Columns: []*schema.Column{ExtractionLogColumns[10], ExtractionLogColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnalysisResultsTable,
		ApplicationsTable,
		DocumentsTable,
		ExtractionLogTable,
	}
)

func init() {
	AnalysisResultsTable.ForeignKeys[0].RefTable = ApplicationsTable
	AnalysisResultsTable.Annotation = &entsql.Annotation{
		Table: "analysis_results",
	}
	ApplicationsTable.Annotation = &entsql.Annotation{
		Table: "applications",
	}
	DocumentsTable.ForeignKeys[0].RefTable = ApplicationsTable
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	ExtractionLogTable.ForeignKeys[0].RefTable = DocumentsTable
	ExtractionLogTable.Annotation = &entsql.Annotation{
		Table: "extraction_log",
	}
}
