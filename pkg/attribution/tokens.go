// Package attribution implements the pure classification core: event
// scoring against candidate features, prompt classification, meta and
// diagnostic tool detection, completion criteria, stuckness heuristics,
// and deterministic event IDs. No I/O; callers supply snapshots of the
// graph state.
package attribution

import (
	"strings"
	"unicode"
)

// stopWords are excluded from keyword matching. The list deliberately
// includes common imperative verbs (add, fix, update, ...) that appear in
// nearly every feature description and carry no signal.
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "is": {}, "are": {}, "to": {}, "of": {},
	"in": {}, "for": {}, "on": {}, "with": {}, "and": {}, "or": {}, "not": {},
	"this": {}, "that": {}, "it": {}, "be": {}, "as": {}, "at": {}, "by": {},
	"from": {}, "has": {}, "have": {}, "had": {}, "do": {}, "does": {},
	"did": {}, "will": {}, "would": {}, "could": {}, "should": {}, "may": {},
	"might": {}, "must": {}, "shall": {}, "can": {}, "add": {}, "update": {},
	"fix": {}, "implement": {}, "create": {}, "remove": {}, "delete": {},
	"change": {},
}

// Tokenize lowercases text, splits on non-alphanumeric runes, and drops
// stop words and tokens shorter than three characters.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) < 3 {
			continue
		}
		if _, stop := stopWords[f]; stop {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// TokenSet returns Tokenize output as a set.
func TokenSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range Tokenize(text) {
		set[tok] = struct{}{}
	}
	return set
}

// overlapCount counts tokens present in both sets.
func overlapCount(a, b map[string]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for tok := range a {
		if _, ok := b[tok]; ok {
			n++
		}
	}
	return n
}

// SharesTokens reports whether the two texts share at least one
// non-stop-word token. Used by checkpoint drift detection.
func SharesTokens(a, b string) bool {
	return overlapCount(TokenSet(a), TokenSet(b)) > 0
}
