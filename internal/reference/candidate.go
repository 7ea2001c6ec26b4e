// Package reference finds the firm's own case references ("151/20TS") and
// third-party file numbers in document text.
package reference

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/joseph-ayodele/posteingang/internal/registry"
	"github.com/joseph-ayodele/posteingang/internal/rules"
	"github.com/joseph-ayodele/posteingang/internal/textutil"
)

// markerWindow is how far after a marker phrase a reference is looked for, in runes.
const markerWindow = 80

// Candidate is one internal reference occurrence. It is a plain value;
// nothing in this package mutates a Candidate after FindCandidates built it.
type Candidate struct {
	Stem string // "number/yy", whitespace removed
	Code string // staff code glued to the stem, "" for the bare form
	Tail string // disambiguating character after the code
	Raw  string // text as matched
}

// Suffix is the staff code plus tail, e.g. "CVa".
func (c Candidate) Suffix() string {
	return c.Code + c.Tail
}

// Ref is stem plus suffix.
func (c Candidate) Ref() string {
	return c.Stem + c.Suffix()
}

// Extractor holds the compiled patterns for one rule set. Safe for concurrent use.
type Extractor struct {
	reCoded   *regexp.Regexp
	reBare    *regexp.Regexp
	reLoose   *regexp.Regexp
	reLead    *regexp.Regexp
	reMarkers *regexp.Regexp
	reLabels  *regexp.Regexp
}

func NewExtractor(r *rules.Rules) *Extractor {
	codes := alternation(r.StaffCodesByLength())
	loose := `(\d{1,5})\s*/\s*(\d{2})(?:(` + codes + `)([A-Za-z0-9]?))?`
	return &Extractor{
		reCoded:   regexp.MustCompile(`(\d{1,5})/(\d{2})(` + codes + `)([A-Za-z0-9]?)`),
		reBare:    regexp.MustCompile(`(\d{1,5})/(\d{2})`),
		reLoose:   regexp.MustCompile(loose),
		reLead:    regexp.MustCompile(`^\s*` + loose),
		reMarkers: regexp.MustCompile(`(?i)(?:` + alternation(byLength(r.ReferenceMarkers)) + `)`),
		reLabels:  regexp.MustCompile(`(?i)(?:` + alternation(byLength(r.ExternalLabels)) + `)`),
	}
}

// FindCandidates scans text for internal references: first the coded form
// "151/20TS", then the bare "151/20" for stems not seen yet, then the
// window after every marker phrase ("Ihr Zeichen") for raw texts not seen yet.
func (x *Extractor) FindCandidates(text string) []Candidate {
	var out []Candidate
	stems := map[string]bool{}
	raws := map[string]bool{}
	add := func(c Candidate) {
		out = append(out, c)
		stems[c.Stem] = true
		raws[c.Raw] = true
	}

	for _, m := range x.reCoded.FindAllStringSubmatchIndex(text, -1) {
		if !leftBounded(text, m[0]) {
			continue
		}
		add(coded(text, m))
	}

	for _, m := range x.reBare.FindAllStringSubmatchIndex(text, -1) {
		if !leftBounded(text, m[0]) || !rightBounded(text, m[1], true) {
			continue
		}
		stem := registry.NormalizeKey(text[m[2]:m[3]] + "/" + text[m[4]:m[5]])
		if stems[stem] {
			continue
		}
		add(Candidate{Stem: stem, Raw: text[m[0]:m[1]]})
	}

	for _, mk := range x.reMarkers.FindAllStringIndex(text, -1) {
		window := textutil.RuneWindow(text, mk[1], markerWindow)
		c, ok := x.firstLoose(window)
		if !ok || raws[c.Raw] {
			continue
		}
		add(c)
	}
	return out
}

// firstLoose finds the first reference in window, tolerating blanks around the slash.
func (x *Extractor) firstLoose(window string) (Candidate, bool) {
	for _, m := range x.reLoose.FindAllStringSubmatchIndex(window, -1) {
		if !leftBounded(window, m[0]) {
			continue
		}
		if m[6] >= 0 {
			return coded(window, m), true
		}
		if !rightBounded(window, m[1], true) {
			continue
		}
		return Candidate{
			Stem: registry.NormalizeKey(window[m[2]:m[3]] + "/" + window[m[4]:m[5]]),
			Raw:  window[m[0]:m[1]],
		}, true
	}
	return Candidate{}, false
}

// coded builds a candidate from a match with a staff code. When more text is
// glued to the tail ("151/20TSab") the tail is dropped and stem plus code kept.
func coded(s string, m []int) Candidate {
	c := Candidate{
		Stem: registry.NormalizeKey(s[m[2]:m[3]] + "/" + s[m[4]:m[5]]),
		Code: s[m[6]:m[7]],
		Tail: s[m[8]:m[9]],
		Raw:  s[m[0]:m[1]],
	}
	if !rightBounded(s, m[1], false) {
		c.Tail = ""
		c.Raw = s[m[0]:m[7]]
	}
	return c
}

// StartsInternal reports whether s begins with an internal reference in
// either shape, blanks around the slash allowed. Text after it is ignored:
// "151/20TS vom 05.03.2024" is still our own file number.
func (x *Extractor) StartsInternal(s string) bool {
	m := x.reLead.FindStringSubmatchIndex(s)
	if m == nil {
		return false
	}
	return m[6] >= 0 || rightBounded(s, m[1], true)
}

// leftBounded: the number must not continue a longer number, word or path.
func leftBounded(s string, start int) bool {
	if start == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:start])
	return !textutil.IsWordRune(r) && r != '/'
}

// rightBounded: nothing alphanumeric may follow; for the bare form another
// slash would make it a date or a path.
func rightBounded(s string, end int, bare bool) bool {
	if end >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[end:])
	if textutil.IsWordRune(r) {
		return false
	}
	return !bare || r != '/'
}

func alternation(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(quoted, "|")
}

// byLength orders phrases longest first so that alternation prefers "Unser Az." over "Az.".
func byLength(words []string) []string {
	out := make([]string, len(words))
	copy(out, words)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && utf8.RuneCountInString(out[j]) > utf8.RuneCountInString(out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}
