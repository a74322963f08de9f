package command

import (
	"sort"
	"strings"

	"github.com/dshills/cmdpal/internal/fuzzy"
)

// Score tier bases. Exact title substring matches always outrank keyword
// matches, which always outrank fuzzy subsequence matches. Position
// penalties and fuzzy scores are clamped so the tiers never overlap, no
// matter how long the matched text or query is: the deepest title match
// stays above every keyword match, and the highest fuzzy score stays below
// every keyword match.
const (
	scoreTitle   = 100000
	scoreKeyword = 50000

	maxIndexPenalty = 9999
	maxFuzzyScore   = scoreKeyword - maxIndexPenalty - 1
)

// MatchKind identifies which field and strategy produced a search match.
type MatchKind uint8

const (
	// MatchNone indicates no match (empty-query listing).
	MatchNone MatchKind = iota

	// MatchTitle is a case-insensitive substring match in the title.
	MatchTitle

	// MatchKeyword is a case-insensitive substring match in a keyword.
	MatchKeyword

	// MatchFuzzy is an in-order subsequence match within the title.
	MatchFuzzy
)

// String returns a human-readable match kind name.
func (k MatchKind) String() string {
	switch k {
	case MatchTitle:
		return "title"
	case MatchKeyword:
		return "keyword"
	case MatchFuzzy:
		return "fuzzy"
	default:
		return "none"
	}
}

// SearchResult is a matched command with scoring information.
type SearchResult struct {
	// Command is the matched command.
	Command Command

	// Score is the match score (higher is better). Zero for empty-query
	// listings.
	Score int

	// Kind identifies the match strategy that produced the score.
	Kind MatchKind
}

// Search scores and ranks the currently-available commands against a
// free-text query.
//
// An empty or whitespace-only query lists every available command grouped
// by category (in the closed set's fixed order) and by registration order
// within each category. A non-empty query produces only matching commands,
// sorted by descending score with ties broken by registration order.
//
// Search is pure: it never mutates command state, and repeated calls with
// unchanged registry state return identical ordered results.
func (r *Registry) Search(query string) []SearchResult {
	entries := r.snapshot()

	query = strings.TrimSpace(query)
	if query == "" {
		return listByCategory(entries)
	}

	lowerQuery := strings.ToLower(query)

	results := make([]SearchResult, 0, len(entries))
	for i := range entries {
		cmd := &entries[i].cmd
		if !cmd.IsAvailable() {
			continue
		}

		score, kind := scoreCommand(lowerQuery, query, cmd)
		if kind == MatchNone {
			continue
		}
		results = append(results, SearchResult{
			Command: *cmd,
			Score:   score,
			Kind:    kind,
		})
	}

	// Stable sort keeps registration order for equal scores; id string
	// order never participates.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results
}

// scoreCommand computes the best score for one command. Fuzzy matching is
// only attempted when neither substring form matched.
func scoreCommand(lowerQuery, query string, cmd *Command) (int, MatchKind) {
	if idx := strings.Index(strings.ToLower(cmd.Title), lowerQuery); idx >= 0 {
		return scoreTitle - min(idx, maxIndexPenalty), MatchTitle
	}

	for _, kw := range cmd.Keywords {
		if idx := strings.Index(strings.ToLower(kw), lowerQuery); idx >= 0 {
			return scoreKeyword - min(idx, maxIndexPenalty), MatchKeyword
		}
	}

	if score, _, ok := fuzzy.Match(query, cmd.Title); ok {
		return min(score, maxFuzzyScore), MatchFuzzy
	}

	return 0, MatchNone
}

// listByCategory returns all available commands grouped by category order,
// registration order within each group.
func listByCategory(entries []entry) []SearchResult {
	results := make([]SearchResult, 0, len(entries))
	for _, cat := range Categories() {
		for i := range entries {
			cmd := &entries[i].cmd
			if cmd.Category != cat || !cmd.IsAvailable() {
				continue
			}
			results = append(results, SearchResult{Command: *cmd})
		}
	}
	return results
}
