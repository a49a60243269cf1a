// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/career-match/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRankedCareers outputs the ranked careers with scores and matched skills.
func (p *Printer) PrintRankedCareers(entries []types.RankedEntry) {
	if len(entries) == 0 {
		p.printBox("CAREER MATCHES", "No careers matched the given skills.")
		return
	}

	var sb strings.Builder
	for _, entry := range entries {
		sb.WriteString(fmt.Sprintf("%2d. %s — %d%%\n", entry.Rank, entry.Title, entry.Score))
		if len(entry.MatchedSkills) > 0 {
			matched := entry.MatchedSkills
			if len(matched) > maxItemsToShow {
				matched = matched[:maxItemsToShow]
			}
			sb.WriteString(fmt.Sprintf("    matched: %s\n", strings.Join(matched, ", ")))
		}
		if len(entry.MissingSkills) > 0 {
			missing := entry.MissingSkills
			if len(missing) > maxItemsToShow {
				missing = missing[:maxItemsToShow]
			}
			sb.WriteString(fmt.Sprintf("    missing: %s\n", strings.Join(missing, ", ")))
		}
	}

	p.printBox("CAREER MATCHES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSummary outputs the derived summary statistics.
func (p *Printer) PrintSummary(summary types.Summary, threshold int) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Best match:     %s\n", summary.BestMatchTitle))
	sb.WriteString(fmt.Sprintf("Average score:  %d%%\n", summary.AverageScore))
	sb.WriteString(fmt.Sprintf("At/above %d%%:   %d\n", threshold, summary.CountAtOrAboveThreshold))

	if len(summary.BelowThresholdEntries) > 0 {
		sb.WriteString("Below threshold:\n")
		count := min(len(summary.BelowThresholdEntries), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", summary.BelowThresholdEntries[i]))
		}
		if len(summary.BelowThresholdEntries) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(summary.BelowThresholdEntries)-maxItemsToShow))
		}
	}

	p.printBox("MATCH SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}
