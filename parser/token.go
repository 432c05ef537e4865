package parser

import "unicode"

// Tokenize splits normalized (lowercased, trimmed) text into word tokens.
// Tokens break on whitespace and punctuation, except that an apostrophe
// between two letters stays inside its token, so "don't" survives as a
// single token. Duplicates are retained and order is preserved.
func Tokenize(text string) []string {
	runes := []rune(text)
	var tokens []string

	current := 0
	for current < len(runes) {
		if !isWordRune(runes[current]) {
			current++
			continue
		}

		start := current
		for current < len(runes) {
			r := runes[current]
			switch {
			case isWordRune(r):
				current++
			case r == '\'' && current > start && current+1 < len(runes) && isWordRune(runes[current+1]):
				// Contraction apostrophe: letter on both sides.
				current += 2
			default:
				goto done
			}
		}
	done:
		tokens = append(tokens, string(runes[start:current]))
	}

	return tokens
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
