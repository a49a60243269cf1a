// Package ranking deduplicates, orders and summarizes scored careers.
package ranking

import (
	"regexp"
	"strings"

	"github.com/jonathan/career-match/internal/types"
)

// titleSuffix matches one trailing "(<digits>)" disambiguation suffix
// preceded by whitespace, e.g. "Data Analytics (46)".
var titleSuffix = regexp.MustCompile(`\s+\(\d+\)\s*$`)

// NormalizeTitle strips one optional trailing "(<digits>)" suffix and
// trims surrounding whitespace. Titles without the suffix are returned
// unchanged apart from the trim.
func NormalizeTitle(title string) string {
	return strings.TrimSpace(titleSuffix.ReplaceAllString(title, ""))
}

// Dedupe collapses results whose titles normalize to the same canonical
// title, keeping the highest-scoring variant per group; score ties keep
// the first variant encountered in input order. The surviving entry's
// title is rewritten to the canonical form, all other fields come from
// the winning variant. Output preserves first-occurrence group order;
// final ordering is the ranker's job.
func Dedupe(results []types.MatchResult) []types.MatchResult {
	deduped := make([]types.MatchResult, 0, len(results))
	index := make(map[string]int, len(results))

	for _, result := range results {
		canonical := NormalizeTitle(result.Title)
		result.Title = canonical

		i, seen := index[canonical]
		if !seen {
			index[canonical] = len(deduped)
			deduped = append(deduped, result)
			continue
		}
		if result.Score > deduped[i].Score {
			deduped[i] = result
		}
	}

	return deduped
}
