package pdftext

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
)

type stubRunner struct {
	out  string
	err  error
	args []string
}

func (s *stubRunner) Run(_ context.Context, name string, _ *slog.Logger, args ...string) ([]byte, []byte, error) {
	s.args = append([]string{name}, args...)
	if s.err != nil {
		return nil, []byte("boom"), s.err
	}
	return []byte(s.out), nil, nil
}

func TestSplitPages(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"terminated", "eins\fzwei\f", []string{"eins", "zwei"}},
		{"blank middle page", "eins\f\fdrei\f", []string{"eins", "", "drei"}},
		{"unterminated", "eins\fzwei", []string{"eins", "zwei"}},
		{"blank last page", "eins\f\f", []string{"eins", ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitPages(tt.in)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") || len(got) != len(tt.want) {
				t.Fatalf("SplitPages(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtractPagesUsesPdftotext(t *testing.T) {
	// The path does not exist, so pdfcpu cannot count pages and the
	// pdftotext split decides the page count.
	r := &stubRunner{out: "Schreiben\f  T  \f\fAnlage\f"}
	e := NewExtractorWithRunner(Config{}, r, nil)

	res, err := e.ExtractPages(context.Background(), filepath.Join(t.TempDir(), "missing.pdf"))
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if res.Method != "pdftotext" {
		t.Fatalf("method = %q", res.Method)
	}
	if len(res.Pages) != 4 {
		t.Fatalf("pages = %d, want 4: %q", len(res.Pages), res.Pages)
	}
	if r.args[0] != "pdftotext" || r.args[len(r.args)-1] != "-" {
		t.Fatalf("unexpected command line %v", r.args)
	}
}

func TestExtractPagesFailsWithoutAnySource(t *testing.T) {
	r := &stubRunner{err: errors.New("not installed")}
	e := NewExtractorWithRunner(Config{}, r, nil)

	if _, err := e.ExtractPages(context.Background(), filepath.Join(t.TempDir(), "missing.pdf")); err == nil {
		t.Fatal("expected error when neither pdftotext nor pdfcpu can read the file")
	}
}

func TestExtractPagesMaxPages(t *testing.T) {
	r := &stubRunner{out: "a\fb\fc\f"}
	e := NewExtractorWithRunner(Config{MaxPages: 2}, r, nil)

	res, err := e.ExtractPages(context.Background(), filepath.Join(t.TempDir(), "missing.pdf"))
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(res.Pages) != 2 {
		t.Fatalf("pages = %d, want 2", len(res.Pages))
	}
}

func TestNormalize(t *testing.T) {
	in := "Amtsgericht   Köln\r\n\tAz.  4 C 12/24\n\n\n\n-----\nEnde   "
	got := Normalize(in)
	want := "Amtsgericht Köln\n Az. 4 C 12/24\n\nEnde"
	if got != want {
		t.Fatalf("Normalize = %q, want %q", got, want)
	}
}

func TestTextFromStream(t *testing.T) {
	stream := []byte("BT\n/F1 12 Tf\n72 700 Td\n(Frist bis zum 10.12.2024) Tj\nT*\n[(Ihr Zeichen: ) -20 (151/20TS)] TJ\nET\n")
	got := textFromStream(stream)
	if !strings.Contains(got, "Frist bis zum 10.12.2024") || !strings.Contains(got, "Ihr Zeichen: 151/20TS") {
		t.Fatalf("unexpected text %q", got)
	}
	if decodePDFString([]byte(`a\(b\)\101`)) != "a(b)A" {
		t.Fatal("escape decoding broken")
	}
}

func TestTruncateKeepsRunes(t *testing.T) {
	// byte 12 is inside "ü"
	if got := truncate("Fehler: ungültig", 12); got != "Fehler: ung…" {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("kurz", 10); got != "kurz" {
		t.Fatalf("truncate = %q", got)
	}
}
