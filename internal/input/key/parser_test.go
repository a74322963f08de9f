package key

import (
	"errors"
	"testing"
)

func TestParseModifierStyle(t *testing.T) {
	tests := []struct {
		spec string
		want Chord
	}{
		{"Ctrl+S", Chord{Key: KeyRune, Rune: 's', Modifiers: ModCtrl}},
		{"ctrl+s", Chord{Key: KeyRune, Rune: 's', Modifiers: ModCtrl}},
		{"Ctrl+Shift+S", Chord{Key: KeyRune, Rune: 's', Modifiers: ModCtrl | ModShift}},
		{"Shift+Ctrl+S", Chord{Key: KeyRune, Rune: 's', Modifiers: ModCtrl | ModShift}},
		{"Alt+F4", Chord{Key: KeyF4, Modifiers: ModAlt}},
		{"Cmd+P", Chord{Key: KeyRune, Rune: 'p', Modifiers: ModMeta}},
		{"Ctrl+Enter", Chord{Key: KeyEnter, Modifiers: ModCtrl}},
		{"Ctrl+Space", Chord{Key: KeyRune, Rune: ' ', Modifiers: ModCtrl}},
		{"Ctrl++", Chord{Key: KeyRune, Rune: '+', Modifiers: ModCtrl}},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.spec, err)
			}
			if !got.Equals(tt.want) {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseVimStyle(t *testing.T) {
	tests := []struct {
		spec string
		want Chord
	}{
		{"<C-s>", Chord{Key: KeyRune, Rune: 's', Modifiers: ModCtrl}},
		{"<C-S-p>", Chord{Key: KeyRune, Rune: 'p', Modifiers: ModCtrl | ModShift}},
		{"<S-C-p>", Chord{Key: KeyRune, Rune: 'p', Modifiers: ModCtrl | ModShift}},
		{"<CR>", Chord{Key: KeyEnter}},
		{"<Esc>", Chord{Key: KeyEscape}},
		{"<A-Left>", Chord{Key: KeyLeft, Modifiers: ModAlt}},
		{"<C-lt>", Chord{Key: KeyRune, Rune: '<', Modifiers: ModCtrl}},
		{"<D-s>", Chord{Key: KeyRune, Rune: 's', Modifiers: ModMeta}},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.spec, err)
			}
			if !got.Equals(tt.want) {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseSingle(t *testing.T) {
	tests := []struct {
		spec string
		want Chord
	}{
		{"a", Chord{Key: KeyRune, Rune: 'a'}},
		{"A", Chord{Key: KeyRune, Rune: 'a'}},
		{"1", Chord{Key: KeyRune, Rune: '1'}},
		{"@", Chord{Key: KeyRune, Rune: '@'}},
		{"Enter", Chord{Key: KeyEnter}},
		{"escape", Chord{Key: KeyEscape}},
		{"F12", Chord{Key: KeyF12}},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.spec, err)
			}
			if !got.Equals(tt.want) {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want error
	}{
		{"empty", "", ErrEmptySpec},
		{"whitespace", "   ", ErrEmptySpec},
		{"unknown modifier", "Hyper+S", ErrInvalidSpec},
		{"unknown key", "Ctrl+Banana", ErrInvalidSpec},
		{"garbage", "notakey", ErrInvalidSpec},
		{"trailing plus", "Ctrl+", ErrInvalidSpec},
		{"trailing plus two mods", "Ctrl+Shift+", ErrInvalidSpec},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.spec)
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.spec, err, tt.want)
			}
		})
	}
}

func TestChordCanonicalString(t *testing.T) {
	tests := []struct {
		specs []string
		want  string
	}{
		{[]string{"Ctrl+S", "ctrl+s", "<C-s>", "Ctrl+s"}, "Ctrl+S"},
		{[]string{"Ctrl+Shift+S", "shift+ctrl+S", "<C-S-s>"}, "Ctrl+Shift+S"},
		{[]string{"Alt+Enter", "alt+enter"}, "Alt+Enter"},
		{[]string{"a", "A"}, "A"},
		{[]string{"Cmd+Shift+P", "shift+meta+p"}, "Shift+Meta+P"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			for _, spec := range tt.specs {
				got := MustParse(spec).String()
				if got != tt.want {
					t.Errorf("MustParse(%q).String() = %q, want %q", spec, got, tt.want)
				}
			}
		})
	}
}

func TestNormalizeSpec(t *testing.T) {
	got, err := NormalizeSpec("shift+ctrl+p")
	if err != nil {
		t.Fatalf("NormalizeSpec() error = %v", err)
	}
	if got != "Ctrl+Shift+P" {
		t.Errorf("NormalizeSpec() = %q, want %q", got, "Ctrl+Shift+P")
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse did not panic on invalid spec")
		}
	}()
	MustParse("Hyper+X")
}
