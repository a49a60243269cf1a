package types

// MatchResult is the per-career outcome of scoring a candidate's skills
// against the career's required skills, before deduplication and ranking.
//
// Score is an integer percentage in [0, 100]. MatchedSkills and
// MissingSkills partition the deduplicated required-skill list.
type MatchResult struct {
	CareerID      string   `json:"career_id"`
	Title         string   `json:"title"`
	Description   string   `json:"description,omitempty"`
	Score         int      `json:"score"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
}

// RankedEntry is a MatchResult with its dense rank (1 = best score).
type RankedEntry struct {
	MatchResult
	Rank int `json:"rank"`
}

// NoBestMatch is the sentinel title reported when a summary is derived
// from an empty ranking.
const NoBestMatch = "N/A"

// Summary holds display-ready statistics derived from a ranked result set.
type Summary struct {
	BestMatchTitle string `json:"best_match_title"`
	AverageScore   int    `json:"average_score"`
	// CountAtOrAboveThreshold counts entries with Score >= the threshold
	// the summary was computed with.
	CountAtOrAboveThreshold int `json:"count_at_or_above_threshold"`
	// BelowThresholdEntries lists the complementary entries rendered as
	// "<title> (<score>%)", for informational display.
	BelowThresholdEntries []string `json:"below_threshold_entries"`
}
