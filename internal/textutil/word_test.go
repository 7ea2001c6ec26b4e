package textutil

import "testing"

func TestIndexWord(t *testing.T) {
	tests := []struct {
		name string
		s    string
		word string
		want int
	}{
		{"standalone", "an TS zur Kenntnis", "TS", 3},
		{"glued to digits", "151/20TS", "TS", -1},
		{"second occurrence standalone", "TSV und TS", "TS", 8},
		{"umlaut neighbour", "ÄTS", "TS", -1},
		{"punctuation neighbour", "(TS)", "TS", 1},
		{"empty word", "abc", "", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IndexWord(tt.s, tt.word); got != tt.want {
				t.Fatalf("IndexWord(%q, %q) = %d, want %d", tt.s, tt.word, got, tt.want)
			}
		})
	}
}

func TestIndexWordFold(t *testing.T) {
	if IndexWordFold("Die KÜNDIGUNG vom", "Kündigung") < 0 {
		t.Fatal("expected case-insensitive match")
	}
	if IndexWordFold("Kündigungsschutzklage", "Kündigung") >= 0 {
		t.Fatal("compound word must not match")
	}
}

func TestCompact(t *testing.T) {
	if got := Compact(" 151\u00a0/ 20\n"); got != "151/20" {
		t.Fatalf("Compact = %q", got)
	}
}

func TestRuneWindow(t *testing.T) {
	if got := RuneWindow("xxüüüü", 2, 3); got != "üüü" {
		t.Fatalf("RuneWindow = %q", got)
	}
	if got := RuneWindow("abc", 1, 10); got != "bc" {
		t.Fatalf("RuneWindow = %q", got)
	}
}

func TestHasWordPrefixFold(t *testing.T) {
	tests := []struct {
		s, prefix string
		want      bool
	}{
		{"Ihr Verkehrsunfall", "verkehrsunfall", true},
		{"Nebenkostenabrechnung 2023", "nebenkosten", true},
		{"Unfallbericht", "unfall", true},
		{"Arbeitsunfall im Lager", "unfall", false},
		{"Gewerbeanmeldung der Firma", "erbe", false},
		{"die Erbengemeinschaft", "erbe", true},
	}
	for _, tt := range tests {
		if got := HasWordPrefixFold(tt.s, tt.prefix); got != tt.want {
			t.Errorf("HasWordPrefixFold(%q, %q) = %v, want %v", tt.s, tt.prefix, got, tt.want)
		}
	}
}

func TestHasWordSuffixFold(t *testing.T) {
	tests := []struct {
		s, suffix string
		want      bool
	}{
		{"Finanzgericht Köln", "gericht", true},
		{"AMTSGERICHT", "amtsgericht", true},
		{"with courtesy", "court", false},
		{"the court of appeal", "court", true},
		{"Haftpflichtversicherung", "versicherung", true},
		{"Versicherungsschein", "versicherung", false},
	}
	for _, tt := range tests {
		if got := HasWordSuffixFold(tt.s, tt.suffix); got != tt.want {
			t.Errorf("HasWordSuffixFold(%q, %q) = %v, want %v", tt.s, tt.suffix, got, tt.want)
		}
	}
}
