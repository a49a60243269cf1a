package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_BareArray(t *testing.T) {
	data := []byte(`[
		{"id": "backend", "title": "Backend Engineer", "requiredSkills": ["Go", "SQL"]},
		{"id": "frontend", "title": "Frontend Engineer", "requiredSkills": ["React"]}
	]`)

	careers, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, careers, 2)
	assert.Equal(t, "backend", careers[0].ID)
	assert.Equal(t, []string{"Go", "SQL"}, careers[0].RequiredSkills)
}

func TestParse_CareersWrapper(t *testing.T) {
	data := []byte(`{"careers": [{"id": "a", "title": "A", "requiredSkills": ["Go"]}]}`)

	careers, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, careers, 1)
	assert.Equal(t, "A", careers[0].Title)
}

func TestParse_SkillFieldVariants(t *testing.T) {
	data := []byte(`[
		{"title": "Camel", "requiredSkills": ["a"]},
		{"title": "Snake", "required_skills": ["b"]},
		{"title": "Plain", "skills": ["c"]}
	]`)

	careers, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, careers, 3)
	assert.Equal(t, []string{"a"}, careers[0].RequiredSkills)
	assert.Equal(t, []string{"b"}, careers[1].RequiredSkills)
	assert.Equal(t, []string{"c"}, careers[2].RequiredSkills)
}

func TestParse_MissingIDGetsPositionalKey(t *testing.T) {
	data := []byte(`[
		{"title": "First"},
		{"title": "Second"}
	]`)

	careers, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, "career-1", careers[0].ID)
	assert.Equal(t, "career-2", careers[1].ID)
	assert.Equal(t, []string{}, careers[0].RequiredSkills)
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := Parse([]byte(`{"careers": 42}`))
	assert.Error(t, err)

	_, err = Parse([]byte(`not json`))
	assert.Error(t, err)
}

func TestLoadFile_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	content := `{"careers": [{"id": "cloud", "title": "Cloud Engineer", "requiredSkills": ["AWS", "Docker"]}]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	careers, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, careers, 1)
	assert.Equal(t, "Cloud Engineer", careers[0].Title)
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadFile_SchemaRejectsMalformedCatalog(t *testing.T) {
	schemaPath := filepath.Join("..", "..", "schemas", "career_catalog.schema.json")
	if _, err := os.Stat(schemaPath); err != nil {
		t.Skip("catalog schema not present")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	// title is required by the schema
	require.NoError(t, os.WriteFile(path, []byte(`[{"id": "no-title"}]`), 0o644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}
