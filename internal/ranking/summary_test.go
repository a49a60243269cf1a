package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-match/internal/types"
)

func entry(rank int, title string, score int) types.RankedEntry {
	return types.RankedEntry{
		MatchResult: types.MatchResult{Title: title, Score: score},
		Rank:        rank,
	}
}

func TestSummarize_FiveCareerSpread(t *testing.T) {
	entries := []types.RankedEntry{
		entry(1, "Data Scientist", 90),
		entry(2, "ML Engineer", 90),
		entry(3, "Data Analyst", 70),
		entry(4, "BI Developer", 40),
		entry(5, "Designer", 10),
	}

	summary := Summarize(entries, DefaultThreshold)
	assert.Equal(t, "Data Scientist", summary.BestMatchTitle)
	assert.Equal(t, 60, summary.AverageScore)
	assert.Equal(t, 4, summary.CountAtOrAboveThreshold)
	require.Len(t, summary.BelowThresholdEntries, 1)
	assert.Equal(t, "Designer (10%)", summary.BelowThresholdEntries[0])
}

func TestSummarize_ThresholdBoundaryIsInclusive(t *testing.T) {
	entries := []types.RankedEntry{
		entry(1, "At Threshold", 40),
		entry(2, "Just Below", 39),
	}

	summary := Summarize(entries, 40)
	assert.Equal(t, 1, summary.CountAtOrAboveThreshold)
	assert.Equal(t, []string{"Just Below (39%)"}, summary.BelowThresholdEntries)
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil, DefaultThreshold)
	assert.Equal(t, types.NoBestMatch, summary.BestMatchTitle)
	assert.Equal(t, 0, summary.AverageScore)
	assert.Equal(t, 0, summary.CountAtOrAboveThreshold)
	assert.Empty(t, summary.BelowThresholdEntries)
}

func TestSummarize_AverageRoundsHalfUp(t *testing.T) {
	entries := []types.RankedEntry{
		entry(1, "A", 50),
		entry(2, "B", 49),
	}
	// mean 49.5 rounds to 50
	assert.Equal(t, 50, Summarize(entries, DefaultThreshold).AverageScore)
}

func TestSummarize_CustomThreshold(t *testing.T) {
	entries := []types.RankedEntry{
		entry(1, "A", 90),
		entry(2, "B", 60),
		entry(3, "C", 30),
	}

	summary := Summarize(entries, 70)
	assert.Equal(t, 1, summary.CountAtOrAboveThreshold)
	assert.Len(t, summary.BelowThresholdEntries, 2)
}
