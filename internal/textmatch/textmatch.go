// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textmatch implements the fuzzy text matching used by trial search
// and the free-text filters. A query matches a target when any of the
// query's generated variations is a literal substring of the normalized
// target, or when enough query words appear inside target words to clear
// the acceptance threshold.
package textmatch

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultThreshold is the word-overlap ratio a query must reach when no
// variation matches as a substring.
const DefaultThreshold = 0.8

// Normalize lowercases text, replaces every character that is not a letter,
// digit, or underscore with a space, collapses whitespace runs, and trims.
// It never fails; empty input yields empty output.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Variations returns the normalized term plus, for multi-word terms, the
// initials acronym, the hyphen-joined form, and the no-space concatenation.
// Duplicates collapse; order is not significant.
func Variations(term string) []string {
	normalized := Normalize(term)
	variations := []string{normalized}
	seen := map[string]bool{normalized: true}

	words := strings.Split(normalized, " ")
	if len(words) > 1 {
		var acronym strings.Builder
		for _, w := range words {
			r, _ := utf8.DecodeRuneInString(w)
			acronym.WriteRune(r)
		}
		for _, v := range []string{acronym.String(), strings.Join(words, "-"), strings.Join(words, "")} {
			if !seen[v] {
				seen[v] = true
				variations = append(variations, v)
			}
		}
	}
	return variations
}

// Match reports whether query matches target at the default threshold.
func Match(query, target string) bool {
	return MatchThreshold(query, target, DefaultThreshold)
}

// MatchThreshold reports whether query matches target. It first checks each
// query variation for a literal substring hit in the normalized target,
// then falls back to the word-overlap ratio: a query word longer than two
// characters scores a hit when some target word contains it, and the match
// succeeds when hits/totalQueryWords reaches threshold.
//
// A query that normalizes to the empty string always matches: its only
// variation is "", which is a substring of every target. Callers treat such
// queries as "no constraint".
func MatchThreshold(query, target string, threshold float64) bool {
	normalizedTarget := Normalize(target)
	for _, v := range Variations(query) {
		if strings.Contains(normalizedTarget, v) {
			return true
		}
	}

	queryWords := strings.Fields(Normalize(query))
	targetWords := strings.Fields(normalizedTarget)

	hits := 0
	for _, qw := range queryWords {
		if len(qw) <= 2 {
			continue
		}
		for _, tw := range targetWords {
			if strings.Contains(tw, qw) {
				hits++
				break
			}
		}
	}

	return float64(hits)/float64(len(queryWords)) >= threshold
}
