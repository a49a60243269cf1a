package schemas

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogSchemaPath(t *testing.T) string {
	t.Helper()
	path := ResolveSchemaPath(CatalogSchema)
	if path == "" {
		t.Skip("catalog schema not present")
	}
	return path
}

func TestResolveSchemaPath_FindsRepoSchema(t *testing.T) {
	path := ResolveSchemaPath(CatalogSchema)
	require.NotEmpty(t, path)
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestResolveSchemaPath_MissingFile(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath("schemas/does_not_exist.json"))
}

func TestValidateBytes_ValidCatalog(t *testing.T) {
	doc := []byte(`{"careers": [{"id": "a", "title": "Backend Engineer", "requiredSkills": ["Go"]}]}`)
	assert.NoError(t, ValidateBytes(catalogSchemaPath(t), doc))
}

func TestValidateBytes_ValidBareArray(t *testing.T) {
	doc := []byte(`[{"title": "Backend Engineer", "skills": ["Go"]}]`)
	assert.NoError(t, ValidateBytes(catalogSchemaPath(t), doc))
}

func TestValidateBytes_MissingTitle(t *testing.T) {
	doc := []byte(`[{"id": "no-title"}]`)
	err := ValidateBytes(catalogSchemaPath(t), doc)
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidateBytes_SchemaNotFound(t *testing.T) {
	err := ValidateBytes(filepath.Join(t.TempDir(), "missing.json"), []byte(`[]`))

	var loadErr *SchemaLoadError
	require.True(t, errors.As(err, &loadErr))
}
