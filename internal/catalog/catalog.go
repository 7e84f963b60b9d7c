// Package catalog supplies the document requirements per position type:
// which document types an applicant must upload before applying and
// which are merely recommended. A built-in default table can be replaced
// by a JSON file validated against an embedded JSON Schema.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"

	"github.com/talentbruecke/placement-backend/internal/domain"
)

// DocumentRequirement is one catalog entry for a position type.
type DocumentRequirement struct {
	Type     domain.DocumentType `json:"document_type"`
	Required bool                `json:"required"`
}

// Catalog maps position types to their ordered document requirements.
type Catalog struct {
	requirements map[domain.PositionType][]DocumentRequirement
}

// Default returns the built-in requirements catalog.
func Default() *Catalog {
	return &Catalog{requirements: map[domain.PositionType][]DocumentRequirement{
		domain.PositionStudentenferienjob: {
			{Type: domain.DocPassport, Required: true},
			{Type: domain.DocCV, Required: true},
			{Type: domain.DocPhoto, Required: true},
			{Type: domain.DocEnrollmentCert, Required: true},
			{Type: domain.DocEnrollmentTrans, Required: true},
			{Type: domain.DocBADeclaration, Required: true},
			{Type: domain.DocLanguageCert, Required: false},
			{Type: domain.DocWorkReference, Required: false},
		},
		domain.PositionSaisonjob: {
			{Type: domain.DocPassport, Required: true},
			{Type: domain.DocCV, Required: true},
			{Type: domain.DocPhoto, Required: true},
			{Type: domain.DocWorkReference, Required: false},
			{Type: domain.DocLanguageCert, Required: false},
		},
		domain.PositionWorkAndHoliday: {
			{Type: domain.DocPassport, Required: true},
			{Type: domain.DocCV, Required: true},
			{Type: domain.DocPhoto, Required: true},
			{Type: domain.DocLanguageCert, Required: false},
		},
		domain.PositionFachkraft: {
			{Type: domain.DocPassport, Required: true},
			{Type: domain.DocCV, Required: true},
			{Type: domain.DocDiploma, Required: true},
			{Type: domain.DocLanguageCert, Required: false},
			{Type: domain.DocWorkReference, Required: false},
		},
		domain.PositionAusbildung: {
			{Type: domain.DocPassport, Required: true},
			{Type: domain.DocCV, Required: true},
			{Type: domain.DocSchoolCert, Required: true},
			{Type: domain.DocLanguageCert, Required: false},
		},
	}}
}

// Requirements returns the ordered requirements for a position type.
// Unknown position types have no requirements.
func (c *Catalog) Requirements(t domain.PositionType) []DocumentRequirement {
	return c.requirements[t]
}

// Required returns only the mandatory document types for a position type.
func (c *Catalog) Required(t domain.PositionType) []domain.DocumentType {
	return c.filter(t, true)
}

// Recommended returns only the advisory document types for a position
// type. This is the view the eligibility checker consumes.
func (c *Catalog) Recommended(t domain.PositionType) []domain.DocumentType {
	return c.filter(t, false)
}

func (c *Catalog) filter(t domain.PositionType, required bool) []domain.DocumentType {
	var out []domain.DocumentType
	for _, req := range c.requirements[t] {
		if req.Required == required {
			out = append(out, req.Type)
		}
	}
	return out
}

// overrideFile is the on-disk shape of a catalog override.
type overrideFile struct {
	PositionTypes map[string][]DocumentRequirement `json:"position_types"`
}

// Load reads a catalog override from a JSON file, validates it against
// the embedded schema and returns the resulting catalog. Position types
// absent from the file keep the built-in defaults.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	if err := validateOverride(string(data)); err != nil {
		return nil, err
	}

	var file overrideFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}

	catalog := Default()
	for name, requirements := range file.PositionTypes {
		positionType, err := domain.ParsePositionType(name)
		if err != nil {
			return nil, fmt.Errorf("invalid catalog entry: %w", err)
		}
		for _, req := range requirements {
			if !req.Type.Valid() {
				return nil, fmt.Errorf("invalid catalog entry for %s: unknown document type %q", name, req.Type)
			}
		}
		catalog.requirements[positionType] = requirements
	}

	return catalog, nil
}

// validateOverride checks the raw JSON against the embedded schema.
func validateOverride(content string) error {
	schemaLoader := gojsonschema.NewStringLoader(overrideSchema)
	documentLoader := gojsonschema.NewStringLoader(content)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to validate catalog file: %w", err)
	}
	if result.Valid() {
		return nil
	}

	verr := &ValidationError{}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		verr.Errors = append(verr.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	return verr
}
