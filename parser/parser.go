// Package parser translates freeform dietary restriction text into
// diet.Restriction values.
//
// Parsing is a single rule-based pass: normalize and tokenize, short-circuit
// known "no restriction" phrases, match tokens against a fixed keyword
// table, fall back to fuzzy matching for everything else, and union the
// matched exclusion sets. The parser never fails on malformed input: the
// worst case is a nil restriction with a low confidence score, and callers
// are expected to check the score before trusting the result.
package parser

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/mealfit/mealfit/diet"
)

// DefaultFuzzThreshold is the minimum 0–100 similarity for a token to be
// accepted as a fuzzy keyword match.
const DefaultFuzzThreshold = 75

// unmatchedFloor is the confidence reported for non-empty input that
// matched nothing at all: low, but distinct from the zero value so callers
// can tell "parsed to nothing" from "never parsed".
const unmatchedFloor = 0.1

// Options configures a Parser.
type Options struct {
	// FuzzThreshold overrides DefaultFuzzThreshold when > 0.
	FuzzThreshold int
	// Logger receives debug-level match traces. Defaults to a nop logger.
	Logger *zap.Logger
}

// Parser converts freeform text into restrictions. The zero value is not
// usable; construct with New.
type Parser struct {
	threshold int
	logger    *zap.Logger
}

// New creates a Parser. A nil opts selects the defaults.
func New(opts *Options) *Parser {
	p := &Parser{threshold: DefaultFuzzThreshold, logger: zap.NewNop()}
	if opts != nil {
		if opts.FuzzThreshold > 0 {
			p.threshold = opts.FuzzThreshold
		}
		if opts.Logger != nil {
			p.logger = opts.Logger
		}
	}
	return p
}

// FuzzyMatch records a token accepted via fuzzy matching: the input token,
// the vocabulary keyword it matched, and the 0–100 similarity score.
type FuzzyMatch struct {
	Token   string `json:"token"`
	Keyword string `json:"keyword"`
	Score   int    `json:"score"`
}

// Trace records how a parse arrived at its result. The field set is a
// stable contract consumed by external tooling.
type Trace struct {
	Input        string       `json:"input"`
	Normalized   string       `json:"normalized"`
	MatchedTerms []string     `json:"matched_terms"`
	FuzzyMatches []FuzzyMatch `json:"fuzzy_matches"`
	Exclusions   []string     `json:"exclusions"`
	Score        float64      `json:"score"`
	Reason       string       `json:"reason"`
}

// Parse converts text into a restriction, or nil when the text either
// declares no restriction or matched no keyword.
func (p *Parser) Parse(text string) *diet.Restriction {
	restriction, _ := p.ParseWithTrace(text)
	return restriction
}

// ParseWithTrace is Parse plus the debug trace describing the decision.
func (p *Parser) ParseWithTrace(text string) (*diet.Restriction, Trace) {
	normalized := strings.ToLower(strings.TrimSpace(text))

	trace := Trace{
		Input:        text,
		Normalized:   normalized,
		MatchedTerms: []string{},
		FuzzyMatches: []FuzzyMatch{},
		Exclusions:   []string{},
	}

	if noRestrictionPhrases[normalized] {
		trace.Score = 1.0
		trace.Reason = "matched known unrestricted phrase"
		p.logger.Debug("parsed unrestricted phrase", zap.String("input", text))
		return nil, trace
	}

	tokens := Tokenize(normalized)
	exclusions := make(map[string]bool)

	// Exact keyword matching, in vocabulary order.
	tokenSet := make(map[string]bool, len(tokens))
	for _, token := range tokens {
		tokenSet[token] = true
	}
	matched := make(map[string]bool)
	for _, entry := range vocabulary {
		if tokenSet[entry.keyword] {
			matched[entry.keyword] = true
			trace.MatchedTerms = append(trace.MatchedTerms, entry.keyword)
			for _, name := range entry.exclusions {
				exclusions[name] = true
			}
		}
	}

	// Fuzzy matching for whatever the keyword table missed.
	fuzzySeen := make(map[string]bool)
	for _, token := range tokens {
		if matched[token] || stopWords[token] || fuzzySeen[token] {
			continue
		}
		fuzzySeen[token] = true
		if m, ok := p.bestFuzzyMatch(token); ok {
			trace.FuzzyMatches = append(trace.FuzzyMatches, m)
			for _, name := range keywordExclusions[m.Keyword] {
				exclusions[name] = true
			}
		}
	}

	trace.Exclusions = sortedNames(exclusions)
	trace.Score = confidence(tokens, trace.MatchedTerms, trace.FuzzyMatches)

	if len(exclusions) == 0 {
		trace.Reason = "no exclusions matched"
		p.logger.Debug("parsed no restriction",
			zap.String("input", text),
			zap.Float64("score", trace.Score))
		return nil, trace
	}

	trace.Reason = "matched exclusions via keyword and/or fuzzy matching"
	restriction := diet.NewRestriction(trace.Exclusions...)

	p.logger.Debug("parsed restriction",
		zap.String("input", text),
		zap.Strings("exclusions", trace.Exclusions),
		zap.Strings("matched_terms", trace.MatchedTerms),
		zap.Int("fuzzy_matches", len(trace.FuzzyMatches)),
		zap.Float64("score", trace.Score))

	return &restriction, trace
}

// bestFuzzyMatch scans the vocabulary for the keyword most similar to the
// token. Ties prefer the longer keyword, then the earlier vocabulary entry.
func (p *Parser) bestFuzzyMatch(token string) (FuzzyMatch, bool) {
	best := FuzzyMatch{Token: token}
	found := false
	for _, entry := range vocabulary {
		score := Similarity(token, entry.keyword)
		if score < p.threshold {
			continue
		}
		if !found || score > best.Score ||
			(score == best.Score && len(entry.keyword) > len(best.Keyword)) {
			best.Keyword = entry.keyword
			best.Score = score
			found = true
		}
	}
	return best, found
}

// confidence is the matched share of non-stop-word tokens, with fuzzy hits
// weighted by their similarity. More and better matches always raise the
// score; unrecognized non-empty input bottoms out at a small non-zero
// floor.
func confidence(tokens, matchedTerms []string, fuzzy []FuzzyMatch) float64 {
	eligible := 0
	for _, token := range tokens {
		if !stopWords[token] {
			eligible++
		}
	}

	weight := float64(len(matchedTerms))
	for _, m := range fuzzy {
		weight += float64(m.Score) / 100
	}

	if weight == 0 {
		return unmatchedFloor
	}
	if eligible == 0 {
		eligible = len(matchedTerms) + len(fuzzy)
	}
	score := weight / float64(eligible)
	if score > 1.0 {
		score = 1.0
	}
	return score
}

func sortedNames(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
