package command

import (
	"reflect"
	"strings"
	"testing"

	"github.com/dshills/cmdpal/internal/input/key"
)

func newTestRegistry(t *testing.T, cmds ...Command) *Registry {
	t.Helper()
	reg := NewRegistry()
	if err := reg.RegisterAll(cmds); err != nil {
		t.Fatalf("RegisterAll() error = %v", err)
	}
	return reg
}

func resultIDs(results []SearchResult) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Command.ID
	}
	return out
}

func TestSearchEmptyQueryGroupsByCategory(t *testing.T) {
	// Registered interleaved across categories; the empty query must list
	// category by category, registration order within each.
	reg := newTestRegistry(t,
		testCmd("help.docs", "Open Documentation", CategoryHelp),
		testCmd("file.open", "Open File", CategoryFile),
		testCmd("view.split", "Split View", CategoryView),
		testCmd("file.save", "Save File", CategoryFile),
	)

	for _, query := range []string{"", "   ", "\t"} {
		got := resultIDs(reg.Search(query))
		want := []string{"file.open", "file.save", "view.split", "help.docs"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Search(%q) = %v, want %v", query, got, want)
		}
	}
}

func TestSearchFiltersUnavailable(t *testing.T) {
	hidden := testCmd("session.end", "End Session", CategorySession)
	hidden.Available = func() bool { return false }
	shown := testCmd("session.new", "New Session", CategorySession)
	shown.Available = func() bool { return true }

	reg := newTestRegistry(t, hidden, shown,
		testCmd("session.list", "List Sessions", CategorySession))

	// Unavailable commands never appear, even on empty query.
	got := resultIDs(reg.Search(""))
	want := []string{"session.new", "session.list"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Search(\"\") = %v, want %v", got, want)
	}

	got = resultIDs(reg.Search("session"))
	for _, id := range got {
		if id == "session.end" {
			t.Error("unavailable command appeared in query results")
		}
	}
}

func TestSearchScoringTiers(t *testing.T) {
	title := testCmd("a.title", "Export Report", CategoryFile)

	keyword := testCmd("b.keyword", "Send Copy", CategoryFile)
	keyword.Keywords = []string{"export", "share"}

	fuzzyOnly := testCmd("c.fuzzy", "Execute Postponed Orders Today", CategoryTools)

	miss := testCmd("d.miss", "Quit", CategorySession)

	reg := newTestRegistry(t, miss, fuzzyOnly, keyword, title)

	results := reg.Search("export")
	got := resultIDs(results)
	want := []string{"a.title", "b.keyword", "c.fuzzy"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Search(\"export\") = %v, want %v", got, want)
	}

	kinds := []MatchKind{MatchTitle, MatchKeyword, MatchFuzzy}
	for i, k := range kinds {
		if results[i].Kind != k {
			t.Errorf("results[%d].Kind = %v, want %v", i, results[i].Kind, k)
		}
	}
	if results[0].Score <= results[1].Score || results[1].Score <= results[2].Score {
		t.Errorf("scores not strictly tiered: %d, %d, %d",
			results[0].Score, results[1].Score, results[2].Score)
	}
}

// Tier ordering must hold for arbitrarily long titles, keywords, and
// queries: a match buried deep in a title still outranks every keyword
// match, and a huge fuzzy score never climbs into the keyword tier.
func TestSearchTierSeparationExtremes(t *testing.T) {
	t.Run("deep title match outranks keyword", func(t *testing.T) {
		deep := testCmd("file.export", strings.Repeat("x ", 10000)+"Export", CategoryFile)
		byKeyword := testCmd("file.share", "Share", CategoryFile)
		byKeyword.Keywords = []string{"export"}

		reg := newTestRegistry(t, byKeyword, deep)

		results := reg.Search("export")
		got := resultIDs(results)
		if !reflect.DeepEqual(got, []string{"file.export", "file.share"}) {
			t.Fatalf("Search(\"export\") = %v, want title match first", got)
		}
		if results[0].Kind != MatchTitle || results[1].Kind != MatchKeyword {
			t.Errorf("kinds = %v, %v, want title, keyword", results[0].Kind, results[1].Kind)
		}
	})

	t.Run("long fuzzy match stays below keyword tier", func(t *testing.T) {
		query := strings.Repeat("ab", 2000) + "z"
		byFuzzy := testCmd("tools.fuzzy", strings.Repeat("ab", 2000)+" z", CategoryTools)
		byKeyword := testCmd("tools.keyword", "zzz", CategoryTools)
		byKeyword.Keywords = []string{query}

		reg := newTestRegistry(t, byFuzzy, byKeyword)

		results := reg.Search(query)
		got := resultIDs(results)
		if !reflect.DeepEqual(got, []string{"tools.keyword", "tools.fuzzy"}) {
			t.Fatalf("Search(long query) = %v, want keyword match first", got)
		}
		if results[1].Kind != MatchFuzzy {
			t.Errorf("kind = %v, want fuzzy", results[1].Kind)
		}
	})
}

func TestSearchNoFalsePositives(t *testing.T) {
	reg := newTestRegistry(t,
		testCmd("file.save", "Save File", CategoryFile),
		testCmd("view.zoom", "Zoom In", CategoryView),
	)

	if got := reg.Search("xyzzy"); len(got) != 0 {
		t.Errorf("Search(\"xyzzy\") = %v, want no results", resultIDs(got))
	}
}

func TestSearchSingleCharFuzzy(t *testing.T) {
	reg := newTestRegistry(t,
		testCmd("theme.dark", "Dark Theme", CategoryTheme),
		testCmd("session.quit", "Quit", CategorySession),
	)

	// One-character queries still match: substring of "Dark Theme" and
	// fuzzy/substring of "Quit".
	got := resultIDs(reg.Search("q"))
	if len(got) != 1 || got[0] != "session.quit" {
		t.Errorf("Search(\"q\") = %v, want [session.quit]", got)
	}
}

func TestSearchRegistrationOrderTieBreak(t *testing.T) {
	// Both titles contain "save" at index 0; the tie must break by
	// registration order, never by id string order ("file.a..." sorts
	// after "file.z..." here on purpose).
	reg := newTestRegistry(t,
		testCmd("file.z", "Save File", CategoryFile),
		testCmd("file.a", "Save As", CategoryFile),
	)

	got := resultIDs(reg.Search("save"))
	want := []string{"file.z", "file.a"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Search(\"save\") = %v, want registration order %v", got, want)
	}
}

func TestSearchSaveScenario(t *testing.T) {
	reg := newTestRegistry(t,
		Command{ID: "file.save", Title: "Save File", Category: CategoryFile,
			Shortcut: mustChord(t, "Ctrl+S"), Run: noop},
		Command{ID: "file.saveAs", Title: "Save As", Category: CategoryFile,
			Shortcut: mustChord(t, "Ctrl+Shift+S"), Run: noop},
	)

	got := resultIDs(reg.Search("save"))
	want := []string{"file.save", "file.saveAs"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Search(\"save\") = %v, want %v", got, want)
	}
}

func TestSearchIdempotent(t *testing.T) {
	reg := newTestRegistry(t,
		testCmd("file.save", "Save File", CategoryFile),
		testCmd("file.open", "Open File", CategoryFile),
		testCmd("view.full", "Full Screen", CategoryView),
	)

	first := reg.Search("f")
	second := reg.Search("f")

	if !reflect.DeepEqual(resultIDs(first), resultIDs(second)) {
		t.Error("repeated Search with unchanged registry returned different ordering")
	}
	for i := range first {
		if first[i].Score != second[i].Score || first[i].Kind != second[i].Kind {
			t.Errorf("result %d differs between identical searches", i)
		}
	}
}

func noop() error { return nil }

func mustChord(t *testing.T, spec string) key.Chord {
	t.Helper()
	c, err := key.Parse(spec)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", spec, err)
	}
	return c
}
