// Package catalog loads career catalogs from JSON files and PostgreSQL.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/career-match/internal/schemas"
	"github.com/jonathan/career-match/internal/types"
)

// record mirrors the upstream catalog record shapes. Upstream sources
// disagree on the required-skill field name, so every known variant is
// accepted and coerced to Career.RequiredSkills.
type record struct {
	ID                  string   `json:"id"`
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	RequiredSkills      []string `json:"requiredSkills"`
	RequiredSkillsSnake []string `json:"required_skills"`
	Skills              []string `json:"skills"`
}

// toCareer coerces a raw record to the engine's Career shape. A record
// without an id gets a deterministic positional key so repeated loads of
// the same file produce identical catalogs.
func (r record) toCareer(position int) types.Career {
	required := r.RequiredSkills
	if required == nil {
		required = r.RequiredSkillsSnake
	}
	if required == nil {
		required = r.Skills
	}
	if required == nil {
		required = []string{}
	}

	id := r.ID
	if id == "" {
		id = fmt.Sprintf("career-%d", position+1)
	}

	return types.Career{
		ID:             id,
		Title:          r.Title,
		Description:    r.Description,
		RequiredSkills: required,
	}
}

// Parse decodes catalog JSON: either a bare array of career records or an
// object wrapping them under "careers".
func Parse(data []byte) ([]types.Career, error) {
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		var wrapper struct {
			Careers []record `json:"careers"`
		}
		if wrapErr := json.Unmarshal(data, &wrapper); wrapErr != nil || wrapper.Careers == nil {
			return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
		}
		records = wrapper.Careers
	}

	careers := make([]types.Career, 0, len(records))
	for i, rec := range records {
		careers = append(careers, rec.toCareer(i))
	}
	return careers, nil
}

// LoadFile reads and parses a catalog file, validating it against the
// career catalog JSON Schema when the schema file can be located.
func LoadFile(path string) ([]types.Career, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	if schemaPath := schemas.ResolveSchemaPath(schemas.CatalogSchema); schemaPath != "" {
		if err := schemas.ValidateBytes(schemaPath, data); err != nil {
			return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
		}
	}

	return Parse(data)
}
