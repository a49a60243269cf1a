// Package pipeline runs the full career-match flow: score every career,
// deduplicate near-identical titles, rank, and summarize.
package pipeline

import (
	"github.com/jonathan/career-match/internal/matching"
	"github.com/jonathan/career-match/internal/ranking"
	"github.com/jonathan/career-match/internal/skills"
	"github.com/jonathan/career-match/internal/types"
)

// RunOptions configure one pipeline invocation.
type RunOptions struct {
	// MinScore drops entries with score <= MinScore before ranking.
	MinScore int
	// Threshold is the summary cutoff; nil selects
	// ranking.DefaultThreshold. An explicit 0 counts every ranked entry.
	Threshold *int
	// Limit caps the ranked entries when > 0.
	Limit int
}

// Result bundles the ranked careers with their derived summary.
type Result struct {
	Results []types.RankedEntry `json:"results"`
	Summary types.Summary       `json:"summary"`
}

// Run recomputes the entire match from scratch. It holds no state between
// invocations and performs no I/O; identical inputs yield identical
// output.
func Run(candidate skills.Input, catalog []types.Career, opts RunOptions) Result {
	threshold := ranking.DefaultThreshold
	if opts.Threshold != nil {
		threshold = *opts.Threshold
	}

	scored := matching.ScoreCatalog(candidate, catalog)
	deduped := ranking.Dedupe(scored)
	entries := ranking.Rank(deduped, ranking.Options{MinScore: opts.MinScore, Limit: opts.Limit})

	return Result{
		Results: entries,
		Summary: ranking.Summarize(entries, threshold),
	}
}
