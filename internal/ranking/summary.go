package ranking

import (
	"fmt"
	"math"

	"github.com/jonathan/career-match/internal/types"
)

// DefaultThreshold is the observed cutoff for counting a career as a
// viable match. Callers may supply their own.
const DefaultThreshold = 40

// Summarize derives display-ready statistics from a ranked result set:
// the rank-1 title (or the "N/A" sentinel when empty), the rounded mean
// score, the count of entries at or above threshold, and the
// complementary entries rendered as "<title> (<score>%)".
func Summarize(entries []types.RankedEntry, threshold int) types.Summary {
	summary := types.Summary{
		BestMatchTitle:        types.NoBestMatch,
		BelowThresholdEntries: []string{},
	}
	if len(entries) == 0 {
		return summary
	}

	total := 0
	for _, entry := range entries {
		total += entry.Score
		if entry.Rank == 1 {
			summary.BestMatchTitle = entry.Title
		}
		if entry.Score >= threshold {
			summary.CountAtOrAboveThreshold++
		} else {
			summary.BelowThresholdEntries = append(summary.BelowThresholdEntries,
				fmt.Sprintf("%s (%d%%)", entry.Title, entry.Score))
		}
	}

	summary.AverageScore = int(math.Round(float64(total) / float64(len(entries))))
	return summary
}
