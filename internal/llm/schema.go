package llm

import "github.com/oguzakin/eligibility-tracker/constants"

// nullable builds a property that accepts the given type or null. Models are
// told to emit null for anything the document does not state, so every field
// schema has to admit it.
func nullable(types ...string) map[string]any {
	return map[string]any{"type": append(types, "null")}
}

func object(props map[string]any, required ...string) map[string]any {
	s := map[string]any{
		"type":                 "object",
		"properties":           props,
		"additionalProperties": false,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

var projectItemSchema = object(map[string]any{
	"type":  nullable("string"),
	"title": nullable("string"),
	"year":  nullable("integer"),
})

// BuildFieldSchema returns the JSON schema the extraction output must match
// for the given document type. Unknown types get a permissive object so the
// merge can still pick up whatever the model found.
func BuildFieldSchema(docType constants.DocType) map[string]any {
	switch docType {
	case constants.CV:
		props := map[string]any{
			"full_name":               nullable("string"),
			"university":              nullable("string"),
			"department":              nullable("string"),
			"graduation_year":         nullable("integer"),
			"total_experience_years":  nullable("integer"),
			"total_experience_months": nullable("integer"),
			"projects": map[string]any{
				"type":  []string{"array", "null"},
				"items": projectItemSchema,
			},
		}
		for _, s := range constants.AllSectors() {
			props[constants.ExperienceField(s)] = nullable("integer", "number")
		}
		return object(props)

	case constants.Diploma:
		return object(map[string]any{
			"diplomas": map[string]any{
				"type": "array",
				"items": object(map[string]any{
					"national_id":     nullable("string"),
					"first_name":      nullable("string"),
					"last_name":       nullable("string"),
					"university":      nullable("string"),
					"faculty":         nullable("string"),
					"department":      nullable("string"),
					"graduation_date": nullable("string"),
					"diploma_no":      nullable("string"),
					"gpa":             nullable("number"),
					"status":          nullable("string"),
				}),
			},
		}, "diplomas")

	case constants.CriminalRecord:
		return object(map[string]any{
			"has_criminal_record": nullable("boolean"),
			"record_code":         nullable("string"),
		}, "has_criminal_record")

	case constants.ProjectFile:
		return object(map[string]any{
			"project_type": nullable("string"),
			"title":        nullable("string"),
			"year":         nullable("integer"),
		})

	case constants.SectorCertificate:
		return object(map[string]any{
			"sector":           nullable("string"),
			"company":          nullable("string"),
			"full_name":        nullable("string"),
			"position":         nullable("string"),
			"start_date":       nullable("string"),
			"end_date":         nullable("string"),
			"duration_years":   nullable("integer"),
			"duration_months":  nullable("integer"),
			"certificate_date": nullable("string"),
			"issuer":           nullable("string"),
		})
	}

	// ServiceRecord fallback extraction, ministry records, and anything
	// declared as Other: accept any object.
	return map[string]any{"type": "object"}
}
