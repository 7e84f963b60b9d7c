package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentbruecke/placement-backend/internal/domain"
)

func TestDefaultCatalogCoversAllPositionTypes(t *testing.T) {
	c := Default()
	for _, positionType := range domain.AllPositionTypes() {
		assert.NotEmpty(t, c.Requirements(positionType), "position type %s", positionType)
	}
}

func TestDefaultCatalogStudentenferienjob(t *testing.T) {
	c := Default()

	required := c.Required(domain.PositionStudentenferienjob)
	assert.Contains(t, required, domain.DocPassport)
	assert.Contains(t, required, domain.DocEnrollmentCert)
	assert.Contains(t, required, domain.DocBADeclaration)

	recommended := c.Recommended(domain.PositionStudentenferienjob)
	assert.Equal(t, []domain.DocumentType{domain.DocLanguageCert, domain.DocWorkReference}, recommended)
}

func TestRequirementsUnknownPositionTypeIsEmpty(t *testing.T) {
	c := Default()
	assert.Empty(t, c.Requirements("unknown"))
	assert.Empty(t, c.Recommended("unknown"))
}

func writeTempCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadOverrideReplacesEntry(t *testing.T) {
	path := writeTempCatalog(t, `{
		"position_types": {
			"saisonjob": [
				{"document_type": "passport", "required": true},
				{"document_type": "language_cert", "required": false}
			]
		}
	}`)

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []domain.DocumentType{domain.DocPassport}, c.Required(domain.PositionSaisonjob))
	assert.Equal(t, []domain.DocumentType{domain.DocLanguageCert}, c.Recommended(domain.PositionSaisonjob))

	// Untouched position types keep their defaults.
	assert.NotEmpty(t, c.Required(domain.PositionFachkraft))
}

func TestLoadRejectsSchemaViolations(t *testing.T) {
	path := writeTempCatalog(t, `{
		"position_types": {
			"saisonjob": [{"document_type": "passport"}]
		}
	}`)

	_, err := Load(path)
	require.Error(t, err)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestLoadRejectsUnknownPositionType(t *testing.T) {
	path := writeTempCatalog(t, `{
		"position_types": {
			"gig_work": [{"document_type": "passport", "required": true}]
		}
	}`)

	_, err := Load(path)
	assert.ErrorContains(t, err, "unknown position type")
}

func TestLoadRejectsUnknownDocumentType(t *testing.T) {
	path := writeTempCatalog(t, `{
		"position_types": {
			"saisonjob": [{"document_type": "drivers_license", "required": true}]
		}
	}`)

	_, err := Load(path)
	assert.ErrorContains(t, err, "unknown document type")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
