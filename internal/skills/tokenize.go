package skills

import "strings"

// isTokenRune reports whether r belongs inside a skill token. The charset
// keeps '+', '#' and '.' so forms like "c++", "c#" and "node.js" survive
// tokenization intact.
func isTokenRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '+' || r == '#' || r == '.'
}

// Tokenize lowercases text and splits it into tokens on every run of
// characters outside the token charset. Empty fragments are discarded, so
// empty or missing text yields an empty token list.
func Tokenize(text string) []string {
	var tokens []string
	var word strings.Builder

	flush := func() {
		if word.Len() > 0 {
			tokens = append(tokens, word.String())
			word.Reset()
		}
	}

	for _, r := range strings.ToLower(text) {
		if isTokenRune(r) {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	return tokens
}
