package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-match/internal/skills"
	"github.com/jonathan/career-match/internal/types"
)

func sampleCatalog() []types.Career {
	return []types.Career{
		{
			ID:             "full-stack-developer",
			Title:          "Full Stack Developer",
			RequiredSkills: []string{"JavaScript", "React", "Node.js", "SQL", "NoSQL"},
		},
		{
			ID:             "data-science",
			Title:          "Data Scientist",
			RequiredSkills: []string{"Python", "Machine Learning", "Statistics", "SQL"},
		},
		{
			ID:             "ui-ux-designer",
			Title:          "UI/UX Designer",
			RequiredSkills: []string{"Figma", "Prototyping", "User Research"},
		},
	}
}

func TestRun_EndToEnd(t *testing.T) {
	result := Run(skills.FromString("React, Node.js, SQL"), sampleCatalog(), RunOptions{})

	require.Len(t, result.Results, 2)
	assert.Equal(t, "Full Stack Developer", result.Results[0].Title)
	assert.Equal(t, 60, result.Results[0].Score)
	assert.Equal(t, 1, result.Results[0].Rank)
	assert.Equal(t, "Data Scientist", result.Results[1].Title)
	assert.Equal(t, 25, result.Results[1].Score)
	assert.Equal(t, 2, result.Results[1].Rank)

	assert.Equal(t, "Full Stack Developer", result.Summary.BestMatchTitle)
	assert.Equal(t, 1, result.Summary.CountAtOrAboveThreshold)
}

func TestRun_EmptySkillsYieldsEmptyRanking(t *testing.T) {
	result := Run(skills.FromString(""), sampleCatalog(), RunOptions{})

	assert.Empty(t, result.Results)
	assert.Equal(t, types.NoBestMatch, result.Summary.BestMatchTitle)
	assert.Equal(t, 0, result.Summary.AverageScore)
}

func TestRun_EmptyCatalog(t *testing.T) {
	result := Run(skills.FromString("Go"), nil, RunOptions{})
	assert.Empty(t, result.Results)
	assert.Equal(t, types.NoBestMatch, result.Summary.BestMatchTitle)
}

func TestRun_Idempotent(t *testing.T) {
	candidate := skills.FromString("Python, SQL, Figma")
	first := Run(candidate, sampleCatalog(), RunOptions{})
	second := Run(candidate, sampleCatalog(), RunOptions{})
	assert.Equal(t, first, second)
}

func TestRun_DedupesVariantTitles(t *testing.T) {
	catalog := []types.Career{
		{ID: "a", Title: "Data Analytics (46)", RequiredSkills: []string{"SQL", "Python", "Excel", "Tableau"}},
		{ID: "b", Title: "Data Analytics (12)", RequiredSkills: []string{"SQL", "R"}},
	}

	result := Run(skills.FromString("SQL, Python, Excel"), catalog, RunOptions{})
	require.Len(t, result.Results, 1)
	assert.Equal(t, "Data Analytics", result.Results[0].Title)
	assert.Equal(t, 75, result.Results[0].Score)
}

func TestRun_NilThresholdSelectsDefault(t *testing.T) {
	catalog := []types.Career{
		{ID: "a", Title: "A", RequiredSkills: []string{"go", "sql", "kafka"}},
	}

	// one of three matched = 33, below the default cutoff of 40
	result := Run(skills.FromString("go"), catalog, RunOptions{})
	assert.Equal(t, 0, result.Summary.CountAtOrAboveThreshold)
	assert.Equal(t, []string{"A (33%)"}, result.Summary.BelowThresholdEntries)
}

func TestRun_ExplicitZeroThreshold(t *testing.T) {
	catalog := []types.Career{
		{ID: "a", Title: "A", RequiredSkills: []string{"go", "sql", "kafka"}},
	}

	// An explicit 0 is honored, not swapped for the default cutoff
	threshold := 0
	result := Run(skills.FromString("go"), catalog, RunOptions{Threshold: &threshold})
	assert.Equal(t, 1, result.Summary.CountAtOrAboveThreshold)
	assert.Empty(t, result.Summary.BelowThresholdEntries)
}

func TestRun_LimitAndMinScore(t *testing.T) {
	result := Run(
		skills.FromString("React, Node.js, SQL, Python, Machine Learning, Statistics"),
		sampleCatalog(),
		RunOptions{MinScore: 50, Limit: 1},
	)

	require.Len(t, result.Results, 1)
	assert.Equal(t, "Data Scientist", result.Results[0].Title)
	assert.Equal(t, 100, result.Results[0].Score)
}
