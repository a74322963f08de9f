package fuzzy

import "testing"

func TestMatchSubsequence(t *testing.T) {
	tests := []struct {
		name  string
		query string
		text  string
		want  bool
	}{
		{"exact", "save", "Save File", true},
		{"subsequence", "sf", "Save File", true},
		{"case insensitive", "SAVE", "save file", true},
		{"single char", "v", "Save File", true},
		{"reversed order", "fs", "Save File", false},
		{"missing char", "savex", "Save File", false},
		{"empty query", "", "Save File", false},
		{"empty text", "save", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, ok := Match(tt.query, tt.text)
			if ok != tt.want {
				t.Errorf("Match(%q, %q) ok = %v, want %v", tt.query, tt.text, ok, tt.want)
			}
		})
	}
}

func TestMatchIndices(t *testing.T) {
	_, matches, ok := Match("sf", "Save File")
	if !ok {
		t.Fatal("expected match")
	}
	want := []int{0, 5}
	if len(matches) != len(want) {
		t.Fatalf("matches = %v, want %v", matches, want)
	}
	for i := range want {
		if matches[i] != want[i] {
			t.Errorf("matches = %v, want %v", matches, want)
			break
		}
	}
}

func TestScoreOrdering(t *testing.T) {
	// A prefix match should outrank a scattered match of the same query.
	prefixScore, _, ok := Match("save", "Save File")
	if !ok {
		t.Fatal("expected prefix match")
	}
	scatteredScore, _, ok := Match("save", "Search and Validate Everything")
	if !ok {
		t.Fatal("expected scattered match")
	}
	if prefixScore <= scatteredScore {
		t.Errorf("prefix score %d should exceed scattered score %d", prefixScore, scatteredScore)
	}

	// Consecutive matches outrank gapped matches.
	tight, _, _ := Match("file", "File List")
	loose, _, _ := Match("file", "Find Recently Closed")
	if tight <= loose {
		t.Errorf("consecutive score %d should exceed gapped score %d", tight, loose)
	}
}

func TestScoreAlwaysPositive(t *testing.T) {
	score, _, ok := Match("z", "a long piece of text ending in the letter z")
	if !ok {
		t.Fatal("expected match")
	}
	if score < 1 {
		t.Errorf("score = %d, want >= 1", score)
	}
}
