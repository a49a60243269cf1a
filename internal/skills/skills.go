// Package skills normalizes raw candidate skill input and tokenizes skill text.
package skills

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Input is candidate skill input at the API boundary: either an explicit
// list of skill strings or a single comma-separated string. Callers resolve
// the union once via Normalize rather than branching on shape downstream.
type Input struct {
	list   []string
	raw    string
	isList bool
}

// FromList builds an Input from an explicit list of skill strings.
func FromList(skills []string) Input {
	return Input{list: skills, isList: true}
}

// FromString builds an Input from a comma-separated skill string.
func FromString(raw string) Input {
	return Input{raw: raw}
}

// UnmarshalJSON accepts either a JSON array of strings or a single
// comma-separated JSON string.
func (in *Input) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*in = FromList(list)
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		*in = FromString(raw)
		return nil
	}

	return fmt.Errorf("skills must be a string or an array of strings")
}

// MarshalJSON serializes the resolved list form.
func (in Input) MarshalJSON() ([]byte, error) {
	return json.Marshal(in.Normalize())
}

// Normalize resolves the union to a deduplicated list of trimmed,
// non-empty skill strings. A raw string is split on commas; a list is
// used as-is. Missing or empty input yields an empty list, never an error.
func (in Input) Normalize() []string {
	var pieces []string
	if in.isList {
		pieces = in.list
	} else if in.raw != "" {
		pieces = strings.Split(in.raw, ",")
	}

	normalized := make([]string, 0, len(pieces))
	seen := make(map[string]bool, len(pieces))
	for _, piece := range pieces {
		skill := strings.TrimSpace(piece)
		if skill == "" || seen[skill] {
			continue
		}
		seen[skill] = true
		normalized = append(normalized, skill)
	}
	return normalized
}

// Dedupe removes exact duplicates from a skill list, preserving first-seen
// order. Used for required-skill lists, which are treated as sets.
func Dedupe(list []string) []string {
	deduped := make([]string, 0, len(list))
	seen := make(map[string]bool, len(list))
	for _, skill := range list {
		if seen[skill] {
			continue
		}
		seen[skill] = true
		deduped = append(deduped, skill)
	}
	return deduped
}
