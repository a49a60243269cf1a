package ranking

import (
	"sort"

	"github.com/jonathan/career-match/internal/types"
)

// Options control filtering and truncation before ranks are assigned.
type Options struct {
	// MinScore drops entries with Score <= MinScore before ranking.
	// The default of 0 excludes zero-score careers entirely.
	MinScore int
	// Limit caps the number of returned entries when > 0.
	Limit int
}

// Rank filters scored careers by MinScore, sorts them by score descending
// and assigns dense 1-based ranks. The sort is stable: ties preserve
// relative input order, which after Dedupe reflects catalog order. There
// is deliberately no secondary sort key; behavior stays predictable from
// catalog ordering.
func Rank(results []types.MatchResult, opts Options) []types.RankedEntry {
	filtered := make([]types.MatchResult, 0, len(results))
	for _, result := range results {
		if result.Score > opts.MinScore {
			filtered = append(filtered, result)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Score > filtered[j].Score
	})

	if opts.Limit > 0 && len(filtered) > opts.Limit {
		filtered = filtered[:opts.Limit]
	}

	ranked := make([]types.RankedEntry, 0, len(filtered))
	for i, result := range filtered {
		ranked = append(ranked, types.RankedEntry{MatchResult: result, Rank: i + 1})
	}
	return ranked
}
