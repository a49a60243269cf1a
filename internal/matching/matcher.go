// Package matching computes skill-coverage match scores between a
// candidate's skill set and career required-skill lists.
package matching

import (
	"math"
	"strings"

	"github.com/jonathan/career-match/internal/skills"
	"github.com/jonathan/career-match/internal/types"
)

// tokenKeys expands a token list into the lookup set used for coverage:
// each token, its dot-stripped form, and its dot-separated segments. A
// dotted token like "node.js" therefore answers to "node", "js" and
// "nodejs", without loosening matches between unrelated tokens ("sql"
// never answers to "nosql").
func tokenKeys(tokens []string) map[string]bool {
	keys := make(map[string]bool, len(tokens))
	for _, token := range tokens {
		keys[token] = true
		if strings.ContainsRune(token, '.') {
			stripped := strings.ReplaceAll(token, ".", "")
			if stripped != "" {
				keys[stripped] = true
			}
			for _, segment := range strings.Split(token, ".") {
				if segment != "" {
					keys[segment] = true
				}
			}
		}
	}
	return keys
}

// Covers reports whether haystack covers needle: at least one of needle's
// tokens appears in haystack's token set. The relation is asymmetric per
// call; MatchSkills calls it in both directions and treats a match as
// established if either direction succeeds, so "React.js" covers "React"
// and vice versa. Either side tokenizing to nothing means no coverage.
func Covers(haystack, needle string) bool {
	needleTokens := skills.Tokenize(needle)
	haystackTokens := skills.Tokenize(haystack)
	if len(needleTokens) == 0 || len(haystackTokens) == 0 {
		return false
	}

	keys := tokenKeys(haystackTokens)
	for _, token := range needleTokens {
		if keys[token] {
			return true
		}
		if stripped := strings.ReplaceAll(token, ".", ""); stripped != "" && keys[stripped] {
			return true
		}
	}
	return false
}

// SkillMatch is the outcome of scoring a candidate skill set against one
// required-skill list. Matched and Missing partition the deduplicated
// required list, preserving its order.
type SkillMatch struct {
	Score   int
	Matched []string
	Missing []string
}

// MatchSkills scores how well the candidate's skills cover the required
// list. The score is round-half-up of 100 * |matched| / |required| over
// the set-deduplicated required list. If either side normalizes to an
// empty list the score is 0 and every required skill is missing.
func MatchSkills(candidate skills.Input, required []string) SkillMatch {
	requiredSet := skills.Dedupe(required)
	candidateSkills := candidate.Normalize()

	if len(requiredSet) == 0 || len(candidateSkills) == 0 {
		return SkillMatch{Score: 0, Matched: []string{}, Missing: requiredSet}
	}

	matched := make([]string, 0, len(requiredSet))
	missing := make([]string, 0)
	for _, req := range requiredSet {
		covered := false
		for _, candidateSkill := range candidateSkills {
			if Covers(candidateSkill, req) || Covers(req, candidateSkill) {
				covered = true
				break
			}
		}
		if covered {
			matched = append(matched, req)
		} else {
			missing = append(missing, req)
		}
	}

	score := int(math.Round(100 * float64(len(matched)) / float64(len(requiredSet))))
	return SkillMatch{Score: score, Matched: matched, Missing: missing}
}

// ScoreCatalog computes one MatchResult per career, in catalog order.
// Careers with no required skills score 0 but are never skipped.
func ScoreCatalog(candidate skills.Input, catalog []types.Career) []types.MatchResult {
	results := make([]types.MatchResult, 0, len(catalog))
	for _, career := range catalog {
		match := MatchSkills(candidate, career.RequiredSkills)
		results = append(results, types.MatchResult{
			CareerID:      career.ID,
			Title:         career.Title,
			Description:   career.Description,
			Score:         match.Score,
			MatchedSkills: match.Matched,
			MissingSkills: match.Missing,
		})
	}
	return results
}
