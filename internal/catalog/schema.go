package catalog

import (
	"fmt"
	"strings"
)

// overrideSchema is the JSON Schema for catalog override files.
const overrideSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["position_types"],
  "additionalProperties": false,
  "properties": {
    "position_types": {
      "type": "object",
      "additionalProperties": {
        "type": "array",
        "items": {
          "type": "object",
          "required": ["document_type", "required"],
          "additionalProperties": false,
          "properties": {
            "document_type": {"type": "string", "minLength": 1},
            "required": {"type": "boolean"}
          }
        }
      }
    }
  }
}`

// FieldError is a single schema violation at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates all schema violations of an override file.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("catalog validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}
