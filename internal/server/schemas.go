package server

import (
	"github.com/xeipuuv/gojsonschema"

	"github.com/arthik444/procheck/internal/common/errors"
)

// Request schemas for the JSON endpoints. Validation runs before decoding so
// malformed payloads are rejected with a stable error shape.

const intelligentSearchSchema = `{
	"type": "object",
	"required": ["query"],
	"properties": {
		"query": {"type": "string", "minLength": 1},
		"size": {"type": "integer", "minimum": 1, "maximum": 100},
		"filters": {
			"type": "object",
			"properties": {
				"region": {"type": "array", "items": {"type": "string"}},
				"year": {"type": "array", "items": {"type": "string"}},
				"organization": {"type": "array", "items": {"type": "string"}},
				"tags": {"type": "array", "items": {"type": "string"}},
				"disease": {"type": "array", "items": {"type": "string"}}
			},
			"additionalProperties": false
		}
	},
	"additionalProperties": false
}`

const suggestionsSchema = `{
	"type": "object",
	"required": ["query"],
	"properties": {
		"query": {"type": "string", "minLength": 1}
	},
	"additionalProperties": false
}`

const riskAssessmentSchema = `{
	"type": "object",
	"required": ["protocolContent"],
	"properties": {
		"protocolContent": {"type": "string"},
		"patientContext": {
			"type": "object",
			"properties": {
				"age": {"type": "integer", "minimum": 0, "maximum": 150},
				"gender": {"type": "string"},
				"weight": {"type": "number", "minimum": 0},
				"allergies": {"type": "array", "items": {"type": "string"}},
				"medicalHistory": {"type": "array", "items": {"type": "string"}},
				"currentMedications": {"type": "array", "items": {"type": "string"}},
				"pregnancyStatus": {"type": "string"},
				"setting": {"type": "string"}
			},
			"additionalProperties": false
		}
	},
	"additionalProperties": false
}`

const knowledgeGraphSchema = `{
	"type": "object",
	"required": ["query"],
	"properties": {
		"query": {"type": "string", "minLength": 1}
	},
	"additionalProperties": false
}`

// validateAgainstSchema checks a raw JSON document against one of the schema
// strings above.
func validateAgainstSchema(schema string, document []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(document),
	)
	if err != nil {
		return errors.NewInvalidRequestFormatError(err.Error())
	}

	if !result.Valid() {
		details := ""
		for i, desc := range result.Errors() {
			if i > 0 {
				details += "; "
			}
			details += desc.String()
		}
		return errors.NewRequestValidationError(details)
	}

	return nil
}
