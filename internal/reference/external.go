package reference

import (
	"strings"
	"unicode/utf8"

	"github.com/joseph-ayodele/posteingang/internal/textutil"
)

// externalWindow caps the free text taken after a label, in runes.
const externalWindow = 40

// ExternalReferences returns the file numbers third parties quote after
// labels such as "Unser Zeichen" or "claim no.", de-duplicated in
// first-seen order. Values that begin with an internal reference are skipped.
func (x *Extractor) ExternalReferences(text string) []string {
	var out []string
	seen := map[string]bool{}
	for _, m := range x.reLabels.FindAllStringIndex(text, -1) {
		if m[0] > 0 {
			if r, _ := utf8.DecodeLastRuneInString(text[:m[0]]); textutil.IsWordRune(r) {
				continue
			}
		}
		v := labelValue(text[m[1]:])
		if v == "" || x.StartsInternal(v) || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// labelValue takes the free text after a label: separators skipped, at most
// externalWindow runes, cut at the line end or a list delimiter.
func labelValue(rest string) string {
	rest = strings.TrimLeft(rest, " \t")
	rest = strings.TrimPrefix(rest, ":")
	rest = strings.TrimPrefix(rest, "#")
	rest = strings.TrimLeft(rest, " \t")

	v := textutil.RuneWindow(rest, 0, externalWindow)
	if i := strings.IndexAny(v, "\r\n\f,;"); i >= 0 {
		v = v[:i]
	}
	return strings.TrimSpace(v)
}
