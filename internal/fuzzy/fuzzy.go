// Package fuzzy implements case-insensitive subsequence matching with
// relevance scoring. A query matches when its characters appear in order,
// possibly non-contiguously, within the candidate text.
package fuzzy

import (
	"strings"
	"unicode"
)

// Match reports whether query is a subsequence of text and returns a
// relevance score (higher is better) plus the rune indices of matched
// characters. Matching is case-insensitive. An empty query matches nothing.
func Match(query, text string) (score int, matches []int, ok bool) {
	if query == "" || text == "" {
		return 0, nil, false
	}

	queryRunes := []rune(strings.ToLower(query))
	originalRunes := []rune(text)
	textRunes := []rune(strings.ToLower(text))

	matches = make([]int, 0, len(queryRunes))
	qi := 0
	for i := 0; i < len(textRunes) && qi < len(queryRunes); i++ {
		if textRunes[i] == queryRunes[qi] {
			matches = append(matches, i)
			qi++
		}
	}

	// All query characters must match
	if qi != len(queryRunes) {
		return 0, nil, false
	}

	return scoreMatch(queryRunes, originalRunes, textRunes, matches), matches, true
}

// scoreMatch computes a relevance score from the match positions.
func scoreMatch(queryRunes, originalRunes, textRunes []rune, matches []int) int {
	score := 100 // Base score for matching

	// Bonus for consecutive matches
	for i := 1; i < len(matches); i++ {
		if matches[i] == matches[i-1]+1 {
			score += 20
		}
	}

	// Bonus for matches at word boundaries
	for _, idx := range matches {
		if isWordBoundary(originalRunes, idx) {
			score += 15
		}
	}

	// Bonus for prefix match (first match at position 0)
	if matches[0] == 0 {
		score += 25
	}

	// Penalty for gaps between matches
	if len(matches) > 1 {
		totalGap := matches[len(matches)-1] - matches[0] - len(matches) + 1
		if totalGap > 0 {
			score -= totalGap * 2
		}
	}

	// Penalty for matches far from start
	score -= matches[0]

	// Bonus for shorter text (more specific match)
	if len(textRunes) < 20 {
		score += 20 - len(textRunes)
	}

	// Bonus for exact prefix match
	if len(textRunes) >= len(queryRunes) {
		isPrefix := true
		for i, qr := range queryRunes {
			if textRunes[i] != qr {
				isPrefix = false
				break
			}
		}
		if isPrefix {
			score += 50
		}
	}

	if score < 1 {
		score = 1
	}
	return score
}

// isWordBoundary checks if the rune at idx starts a word.
func isWordBoundary(runes []rune, idx int) bool {
	if idx == 0 {
		return true
	}
	if idx >= len(runes) {
		return false
	}

	prev := runes[idx-1]
	curr := runes[idx]

	if unicode.IsSpace(prev) || unicode.IsPunct(prev) {
		return true
	}

	// CamelCase boundary (lowercase followed by uppercase)
	if unicode.IsLower(prev) && unicode.IsUpper(curr) {
		return true
	}

	return false
}
