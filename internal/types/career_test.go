package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCareer_Validate(t *testing.T) {
	career := Career{
		ID:             "backend",
		Title:          "Backend Engineer",
		RequiredSkills: []string{"Go", "SQL"},
	}
	assert.NoError(t, career.Validate())
}

func TestCareer_ValidateMissingTitle(t *testing.T) {
	career := Career{ID: "x"}
	assert.Error(t, career.Validate())
}

func TestCareer_ValidateTitleTooShort(t *testing.T) {
	career := Career{Title: "A"}
	assert.Error(t, career.Validate())
}

func TestCareer_EmptySkillsAllowed(t *testing.T) {
	career := Career{Title: "Unstaffed Role"}
	assert.NoError(t, career.Validate())
}
