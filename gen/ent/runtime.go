// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/oguzakin/eligibility-tracker/db/ent/schema"
	"github.com/oguzakin/eligibility-tracker/gen/ent/analysisresult"
	"github.com/oguzakin/eligibility-tracker/gen/ent/application"
	"github.com/oguzakin/eligibility-tracker/gen/ent/document"
	"github.com/oguzakin/eligibility-tracker/gen/ent/extractionlog"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	analysisresultFields := schema.AnalysisResult{}.Fields()
	_ = analysisresultFields
	// analysisresultDescDocsComplete is the schema descriptor for docs_complete field.
	analysisresultDescDocsComplete := analysisresultFields[6].Descriptor()
	// analysisresult.DefaultDocsComplete holds the default value on creation for the docs_complete field.
	analysisresult.DefaultDocsComplete = analysisresultDescDocsComplete.Default.(bool)
	// analysisresultDescAnalyzedAt is the schema descriptor for analyzed_at field.
	analysisresultDescAnalyzedAt := analysisresultFields[9].Descriptor()
	// analysisresult.DefaultAnalyzedAt holds the default value on creation for the analyzed_at field.
	analysisresult.DefaultAnalyzedAt = analysisresultDescAnalyzedAt.Default.(func() time.Time)
	// analysisresultDescElapsedSec is the schema descriptor for elapsed_sec field.
	analysisresultDescElapsedSec := analysisresultFields[10].Descriptor()
	// analysisresult.DefaultElapsedSec holds the default value on creation for the elapsed_sec field.
	analysisresult.DefaultElapsedSec = analysisresultDescElapsedSec.Default.(float64)
	// analysisresultDescID is the schema descriptor for id field.
	analysisresultDescID := analysisresultFields[0].Descriptor()
	// analysisresult.DefaultID holds the default value on creation for the id field.
	analysisresult.DefaultID = analysisresultDescID.Default.(func() uuid.UUID)
	applicationFields := schema.Application{}.Fields()
	_ = applicationFields
	// applicationDescTrackingNo is the schema descriptor for tracking_no field.
	applicationDescTrackingNo := applicationFields[2].Descriptor()
	// application.TrackingNoValidator is a validator for the "tracking_no" field. It is called by the builders before save.
	application.TrackingNoValidator = applicationDescTrackingNo.Validators[0].(func(string) error)
	// applicationDescServiceID is the schema descriptor for service_id field.
	applicationDescServiceID := applicationFields[3].Descriptor()
	// application.ServiceIDValidator is a validator for the "service_id" field. It is called by the builders before save.
	application.ServiceIDValidator = func() func(string) error {
		validators := applicationDescServiceID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(service_id string) error {
			for _, fn := range fns {
				if err := fn(service_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// applicationDescNationalID is the schema descriptor for national_id field.
	applicationDescNationalID := applicationFields[6].Descriptor()
	// application.NationalIDValidator is a validator for the "national_id" field. It is called by the builders before save.
	application.NationalIDValidator = applicationDescNationalID.Validators[0].(func(string) error)
	// applicationDescStatus is the schema descriptor for status field.
	applicationDescStatus := applicationFields[7].Descriptor()
	// application.DefaultStatus holds the default value on creation for the status field.
	application.DefaultStatus = applicationDescStatus.Default.(string)
	// application.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	application.StatusValidator = applicationDescStatus.Validators[0].(func(string) error)
	// applicationDescCreatedAt is the schema descriptor for created_at field.
	applicationDescCreatedAt := applicationFields[12].Descriptor()
	// application.DefaultCreatedAt holds the default value on creation for the created_at field.
	application.DefaultCreatedAt = applicationDescCreatedAt.Default.(func() time.Time)
	// applicationDescID is the schema descriptor for id field.
	applicationDescID := applicationFields[0].Descriptor()
	// application.DefaultID holds the default value on creation for the id field.
	application.DefaultID = applicationDescID.Default.(func() uuid.UUID)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescFilename is the schema descriptor for filename field.
	documentDescFilename := documentFields[2].Descriptor()
	// document.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	document.FilenameValidator = documentDescFilename.Validators[0].(func(string) error)
	// documentDescSizeBytes is the schema descriptor for size_bytes field.
	documentDescSizeBytes := documentFields[6].Descriptor()
	// document.DefaultSizeBytes holds the default value on creation for the size_bytes field.
	document.DefaultSizeBytes = documentDescSizeBytes.Default.(int64)
	// documentDescStatus is the schema descriptor for status field.
	documentDescStatus := documentFields[8].Descriptor()
	// document.DefaultStatus holds the default value on creation for the status field.
	document.DefaultStatus = documentDescStatus.Default.(string)
	// document.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	document.StatusValidator = documentDescStatus.Validators[0].(func(string) error)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	extractionlogFields := schema.ExtractionLog{}.Fields()
	_ = extractionlogFields
	// extractionlogDescSegmentIndex is the schema descriptor for segment_index field.
	extractionlogDescSegmentIndex := extractionlogFields[2].Descriptor()
	// extractionlog.DefaultSegmentIndex holds the default value on creation for the segment_index field.
	extractionlog.DefaultSegmentIndex = extractionlogDescSegmentIndex.Default.(int)
	// extractionlogDescSegmentStart is the schema descriptor for segment_start field.
	extractionlogDescSegmentStart := extractionlogFields[3].Descriptor()
	// extractionlog.DefaultSegmentStart holds the default value on creation for the segment_start field.
	extractionlog.DefaultSegmentStart = extractionlogDescSegmentStart.Default.(int)
	// extractionlogDescSegmentEnd is the schema descriptor for segment_end field.
	extractionlogDescSegmentEnd := extractionlogFields[4].Descriptor()
	// extractionlog.DefaultSegmentEnd holds the default value on creation for the segment_end field.
	extractionlog.DefaultSegmentEnd = extractionlogDescSegmentEnd.Default.(int)
	// extractionlogDescDurationMs is the schema descriptor for duration_ms field.
	extractionlogDescDurationMs := extractionlogFields[8].Descriptor()
	// extractionlog.DefaultDurationMs holds the default value on creation for the duration_ms field.
	extractionlog.DefaultDurationMs = extractionlogDescDurationMs.Default.(int64)
	// extractionlogDescSuccess is the schema descriptor for success field.
	extractionlogDescSuccess := extractionlogFields[9].Descriptor()
	// extractionlog.DefaultSuccess holds the default value on creation for the success field.
	extractionlog.DefaultSuccess = extractionlogDescSuccess.Default.(bool)
	// extractionlogDescCreatedAt is the schema descriptor for created_at field.
	extractionlogDescCreatedAt := extractionlogFields[10].Descriptor()
	// extractionlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	extractionlog.DefaultCreatedAt = extractionlogDescCreatedAt.Default.(func() time.Time)
	// extractionlogDescID is the schema descriptor for id field.
	extractionlogDescID := extractionlogFields[0].Descriptor()
	// extractionlog.DefaultID holds the default value on creation for the id field.
	extractionlog.DefaultID = extractionlogDescID.Default.(func() uuid.UUID)
}
